// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markcost

import "github.com/cyclemark/perf/marklog"

// DefaultErgsPerGas is the standard conversion rate from ergs to gas.
const DefaultErgsPerGas = 256

// A Model computes cost metrics from matched marker and gas records.
// The zero Model is not useful; construct one with explicit Weights
// and ErgsPerGas (typically DefaultWeights and DefaultErgsPerGas).
type Model struct {
	Weights    Weights
	ErgsPerGas int64
}

// A Metric is the derived cost of one matched (marker, gas) pair.
type Metric struct {
	Name        string
	Cycles      int64
	Delegations map[int64]int64
	Ergs        int64

	Weighted  int64   // weighted cycle-equivalent cost of all delegations
	Effective int64   // Cycles + Weighted
	Gas       float64 // Ergs / ErgsPerGas
	Ratio     float64 // Effective / Gas; meaningless when Gas == 0
}

// HasRatio reports whether m.Ratio is defined. Metrics for which gas
// is zero have no ratio; they are excluded from ratio statistics but
// still carry cycle values.
func (m Metric) HasRatio() bool {
	return m.Gas > 0
}

// Metric derives the cost metric for a marker matched with a gas
// record of the same name.
func (c Model) Metric(mk marklog.Marker, g marklog.Gas) Metric {
	m := Metric{
		Name:        mk.Name,
		Cycles:      mk.Cycles,
		Delegations: mk.Delegations,
		Ergs:        g.Ergs,
	}
	m.Weighted = c.Weights.Cost(mk.Delegations)
	m.Effective = m.Cycles + m.Weighted
	m.Gas = float64(g.Ergs) / float64(c.ErgsPerGas)
	if m.Gas > 0 {
		m.Ratio = float64(m.Effective) / m.Gas
	}
	return m
}

// MatchRun pairs each of a run's markers with a gas record of the same
// name and returns the derived metrics in marker document order.
//
// Matching is strictly FIFO per name: the i-th marker named X pairs
// with the i-th gas record named X. A marker whose name has no gas
// record left is dropped; the harness measures some regions without
// gas accounting, so this is normal rather than an error.
func (c Model) MatchRun(run *marklog.Run) []Metric {
	var queues map[string][]marklog.Gas
	if len(run.Gas) > 0 {
		queues = make(map[string][]marklog.Gas, len(run.Gas))
		for _, g := range run.Gas {
			queues[g.Name] = append(queues[g.Name], g)
		}
	}

	var metrics []Metric
	for _, mk := range run.Markers {
		q := queues[mk.Name]
		if len(q) == 0 {
			continue
		}
		queues[mk.Name] = q[1:]
		metrics = append(metrics, c.Metric(mk, q[0]))
	}
	return metrics
}
