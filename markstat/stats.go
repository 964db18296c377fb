// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package markstat aggregates cost metrics across runs.
//
// It has two independent reductions: statistics mode, which summarizes
// the cycle/gas ratio distribution per region across one dataset, and
// comparison mode, which lines a base dataset up against a head
// dataset keeping the worst-case cost per region.
package markstat

import (
	"sort"

	"github.com/aclements/go-moremath/stats"

	"github.com/cyclemark/perf/markcost"
)

// A Summary describes the distribution of cycle/gas ratios observed
// for one region across a dataset.
type Summary struct {
	Name   string
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
}

// Summarize groups metrics by region name and summarizes each group's
// ratio distribution. Metrics without a defined ratio are skipped;
// a region whose every metric has gas == 0 produces no Summary.
// Groups are returned in order of first appearance.
func Summarize(metrics []markcost.Metric) []Summary {
	ratios := make(map[string][]float64)
	var names []string
	for _, m := range metrics {
		if !m.HasRatio() {
			continue
		}
		if _, ok := ratios[m.Name]; !ok {
			names = append(names, m.Name)
		}
		ratios[m.Name] = append(ratios[m.Name], m.Ratio)
	}

	summaries := make([]Summary, 0, len(names))
	for _, name := range names {
		xs := ratios[name]
		sort.Float64s(xs)
		min, max := stats.Bounds(xs)
		summaries = append(summaries, Summary{
			Name:   name,
			Count:  len(xs),
			Min:    min,
			Max:    max,
			Mean:   stats.Mean(xs),
			Median: median(xs),
		})
	}
	return summaries
}

// median returns the median of a sorted, non-empty slice: the middle
// value, or the average of the two middle values for an even count.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
