// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markstat

import (
	"math"
	"sort"

	"github.com/cyclemark/perf/markcost"
	"github.com/cyclemark/perf/marklog"
)

// BestLanes reduces a dataset to one cost-lane tuple per region name,
// keeping the marker with the largest effective-cycle value. Ties keep
// the first marker seen. This is worst-case selection: when a region
// is invoked repeatedly, its peak cost is what matters for comparison,
// not the average.
//
// Gas records play no part here. A marker that was measured without
// gas accounting still contributes its cycle values.
func BestLanes(runs []marklog.Run, w markcost.Weights) map[string]markcost.Lanes {
	best := make(map[string]markcost.Lanes)
	for i := range runs {
		for _, mk := range runs[i].Markers {
			lanes := w.Lanes(mk)
			if prev, ok := best[mk.Name]; !ok || lanes.Effective > prev.Effective {
				best[mk.Name] = lanes
			}
		}
	}
	return best
}

// PctChange returns the signed percentage change from old to new.
//
// Zero handling is asymmetric on purpose: a value that went from
// nothing to something is reported as +Inf, distinct from one that
// stayed at nothing, which is 0.
func PctChange(old, new float64) float64 {
	if old == 0 {
		if new > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return (new - old) / old * 100
}

// A Row is one line of a base-vs-head comparison report: the cost
// lanes of one region under one benchmark, on both sides, with signed
// percentage changes.
type Row struct {
	Benchmark string
	Name      string
	Base      markcost.Lanes
	Head      markcost.Lanes

	RawPct       float64
	BlakePct     float64
	BigIntPct    float64
	EffectivePct float64
}

// Compare builds comparison rows for one benchmark from its base and
// head datasets, as reduced by BestLanes. If target is non-empty, only
// that region is reported; otherwise rows cover the union of region
// names on both sides, sorted alphabetically. A region absent from one
// side contributes zero lanes on that side.
func Compare(benchmark string, base, head map[string]markcost.Lanes, target string) []Row {
	var names []string
	if target != "" {
		names = []string{target}
	} else {
		seen := make(map[string]bool)
		for name := range base {
			seen[name] = true
		}
		for name := range head {
			seen[name] = true
		}
		for name := range seen {
			names = append(names, name)
		}
		sort.Strings(names)
	}

	rows := make([]Row, 0, len(names))
	for _, name := range names {
		b, h := base[name], head[name]
		rows = append(rows, Row{
			Benchmark:    benchmark,
			Name:         name,
			Base:         b,
			Head:         h,
			RawPct:       PctChange(float64(b.Raw), float64(h.Raw)),
			BlakePct:     PctChange(float64(b.Blake), float64(h.Blake)),
			BigIntPct:    PctChange(float64(b.BigInt), float64(h.BigInt)),
			EffectivePct: PctChange(float64(b.Effective), float64(h.Effective)),
		})
	}
	return rows
}
