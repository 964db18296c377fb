// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markstat

import (
	"sort"

	"github.com/cyclemark/perf/markcost"
	"github.com/cyclemark/perf/marklog"
)

// A Point is one observation of a swept-parameter series: the
// parameter value tagging a run and the cycle/gas ratio of the target
// region in that run.
type Point struct {
	Param int64
	Ratio float64
}

// Series extracts the (parameter, ratio) series for one region from a
// sweep dataset.
//
// The parameter key is taken from the first run that carries a Params
// line; runs tagged with a different key are skipped, as are runs with
// no parameter, no matched metric for target, or a metric with gas of
// zero. Points are sorted by ascending parameter value. The returned
// key is "" if no run had a parameter.
func Series(runs []marklog.Run, target string, model markcost.Model) (key string, pts []Point) {
	for i := range runs {
		run := &runs[i]
		if run.Param == nil {
			continue
		}
		if key == "" {
			key = run.Param.Key
		} else if run.Param.Key != key {
			continue
		}
		for _, m := range model.MatchRun(run) {
			if m.Name == target && m.HasRatio() {
				pts = append(pts, Point{Param: run.Param.Value, Ratio: m.Ratio})
				break
			}
		}
	}
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].Param < pts[j].Param })
	return key, pts
}
