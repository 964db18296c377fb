// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markcost

import (
	"testing"

	"github.com/cyclemark/perf/marklog"
)

func defaultModel() Model {
	return Model{Weights: DefaultWeights(), ErgsPerGas: DefaultErgsPerGas}
}

func TestMetric(t *testing.T) {
	mk := marklog.Marker{Name: "mul", Cycles: 100, Delegations: map[int64]int64{TargetU256BigInt: 2}}
	g := marklog.Gas{Name: "mul", Ergs: 256}

	m := defaultModel().Metric(mk, g)
	if m.Weighted != 8 {
		t.Errorf("Weighted = %d, want 8", m.Weighted)
	}
	if m.Effective != 108 {
		t.Errorf("Effective = %d, want 108", m.Effective)
	}
	if m.Gas != 1.0 {
		t.Errorf("Gas = %v, want 1.0", m.Gas)
	}
	if m.Ratio != 108.0 {
		t.Errorf("Ratio = %v, want 108.0", m.Ratio)
	}
	if !m.HasRatio() {
		t.Error("HasRatio() = false, want true")
	}
}

func TestMetricZeroGas(t *testing.T) {
	m := defaultModel().Metric(
		marklog.Marker{Name: "free", Cycles: 10},
		marklog.Gas{Name: "free", Ergs: 0},
	)
	if m.HasRatio() {
		t.Error("HasRatio() = true for zero gas, want false")
	}
	if m.Effective != 10 {
		t.Errorf("Effective = %d, want 10", m.Effective)
	}
}

func TestParsedRunScenario(t *testing.T) {
	const block = "Params: width:4\n" +
		"Spent ergs for [mul]: 256\n" +
		"=== Cycle markers:\n" +
		"mul: net cycles: 100, net delegations: {1994: 2}\n" +
		"Total delegations: 2\n"
	run := marklog.ParseRun(block)
	metrics := defaultModel().MatchRun(&run)
	if len(metrics) != 1 {
		t.Fatalf("got %d metrics, want 1", len(metrics))
	}
	m := metrics[0]
	if m.Name != "mul" || m.Cycles != 100 || m.Ergs != 256 ||
		m.Weighted != 8 || m.Effective != 108 || m.Gas != 1.0 || m.Ratio != 108.0 {
		t.Errorf("got %+v, want {mul 100 cycles 256 ergs weighted 8 effective 108 gas 1 ratio 108}", m)
	}
}

func TestMatchRunFIFO(t *testing.T) {
	run := &marklog.Run{
		Markers: []marklog.Marker{
			{Name: "A", Cycles: 1},
			{Name: "A", Cycles: 2},
			{Name: "B", Cycles: 3},
		},
		Gas: []marklog.Gas{
			{Name: "A", Ergs: 10},
			{Name: "A", Ergs: 20},
			{Name: "B", Ergs: 5},
		},
	}
	metrics := defaultModel().MatchRun(run)
	if len(metrics) != 3 {
		t.Fatalf("got %d metrics, want 3", len(metrics))
	}
	wantErgs := []int64{10, 20, 5}
	for i, m := range metrics {
		if m.Ergs != wantErgs[i] {
			t.Errorf("metric %d (%s): ergs = %d, want %d", i, m.Name, m.Ergs, wantErgs[i])
		}
	}
}

func TestMatchRunUnmatchedDropped(t *testing.T) {
	run := &marklog.Run{
		Markers: []marklog.Marker{
			{Name: "A", Cycles: 1},
			{Name: "A", Cycles: 2},
			{Name: "C", Cycles: 3},
		},
		Gas: []marklog.Gas{{Name: "A", Ergs: 10}},
	}
	metrics := defaultModel().MatchRun(run)
	if len(metrics) != 1 {
		t.Fatalf("got %d metrics, want 1", len(metrics))
	}
	if metrics[0].Name != "A" || metrics[0].Cycles != 1 {
		t.Errorf("got %+v, want first A marker", metrics[0])
	}
}

func TestMatchRunInterleaved(t *testing.T) {
	// Gas order per name is what matters, not global interleaving.
	run := &marklog.Run{
		Markers: []marklog.Marker{
			{Name: "B", Cycles: 1},
			{Name: "A", Cycles: 2},
		},
		Gas: []marklog.Gas{
			{Name: "A", Ergs: 7},
			{Name: "B", Ergs: 9},
		},
	}
	metrics := defaultModel().MatchRun(run)
	if len(metrics) != 2 {
		t.Fatalf("got %d metrics, want 2", len(metrics))
	}
	if metrics[0].Name != "B" || metrics[0].Ergs != 9 {
		t.Errorf("metric 0 = %+v, want B matched with 9 ergs", metrics[0])
	}
	if metrics[1].Name != "A" || metrics[1].Ergs != 7 {
		t.Errorf("metric 1 = %+v, want A matched with 7 ergs", metrics[1])
	}
}
