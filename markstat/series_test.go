// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markstat

import (
	"reflect"
	"testing"

	"github.com/cyclemark/perf/markcost"
	"github.com/cyclemark/perf/marklog"
)

func sweepRun(key string, val int64, name string, cycles, ergs int64) marklog.Run {
	return marklog.Run{
		Param:   &marklog.Param{Key: key, Value: val},
		Markers: []marklog.Marker{{Name: name, Cycles: cycles}},
		Gas:     []marklog.Gas{{Name: name, Ergs: ergs}},
	}
}

func TestSeries(t *testing.T) {
	model := markcost.Model{Weights: markcost.DefaultWeights(), ErgsPerGas: markcost.DefaultErgsPerGas}
	runs := []marklog.Run{
		sweepRun("width", 8, "mul", 512, 256),
		sweepRun("width", 2, "mul", 128, 256),
		sweepRun("height", 4, "mul", 999, 256), // different key, skipped
		sweepRun("width", 4, "mul", 256, 256),
		sweepRun("width", 16, "other", 1, 256), // no target marker
		sweepRun("width", 32, "mul", 100, 0),   // gas == 0, no ratio
		{Markers: []marklog.Marker{{Name: "mul", Cycles: 1}}}, // no param
	}
	key, pts := Series(runs, "mul", model)
	if key != "width" {
		t.Errorf("key = %q, want width", key)
	}
	want := []Point{{Param: 2, Ratio: 128}, {Param: 4, Ratio: 256}, {Param: 8, Ratio: 512}}
	if !reflect.DeepEqual(pts, want) {
		t.Errorf("points = %+v, want %+v", pts, want)
	}
}

func TestSeriesEmpty(t *testing.T) {
	model := markcost.Model{Weights: markcost.DefaultWeights(), ErgsPerGas: markcost.DefaultErgsPerGas}
	key, pts := Series(nil, "mul", model)
	if key != "" || len(pts) != 0 {
		t.Errorf("got key %q, %d points; want empty", key, len(pts))
	}
}
