// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markreport

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/cyclemark/perf/markstat"
	"github.com/cyclemark/perf/opfreq"
)

// RatioChart draws the cycle/gas ratio of one region against the swept
// parameter and saves it to path (format chosen by extension). The
// x-axis is log scale, base 2, with a tick at each power of two up to
// and including the largest observed parameter. Points with a
// nonpositive parameter cannot be placed on a log axis and are
// dropped.
func RatioChart(path, marker, paramName string, pts []markstat.Point) error {
	xys := make(plotter.XYs, 0, len(pts))
	var maxParam int64
	for _, pt := range pts {
		if pt.Param <= 0 {
			continue
		}
		xys = append(xys, plotter.XY{X: float64(pt.Param), Y: pt.Ratio})
		if pt.Param > maxParam {
			maxParam = pt.Param
		}
	}
	if len(xys) == 0 {
		return fmt.Errorf("no data points for marker %q", marker)
	}

	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("Ratio vs %s for %q", paramName, marker)
	pl.X.Label.Text = paramName
	pl.Y.Label.Text = "cycle/gas ratio"
	pl.X.Scale = plot.LogScale{}
	pl.X.Tick.Marker = powerOfTwoTicks{max: maxParam}
	pl.Add(plotter.NewGrid())

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return err
	}
	pl.Add(line, points)

	return pl.Save(8*vg.Inch, 5*vg.Inch, path)
}

// powerOfTwoTicks marks 1, 2, 4, ... up to max, plus max itself when
// it is not a power of two.
type powerOfTwoTicks struct {
	max int64
}

func (t powerOfTwoTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for v := int64(1); v > 0 && v <= t.max; v *= 2 {
		ticks = append(ticks, plot.Tick{Value: float64(v), Label: strconv.FormatInt(v, 10)})
	}
	if t.max > 0 && t.max&(t.max-1) != 0 {
		ticks = append(ticks, plot.Tick{Value: float64(t.max), Label: strconv.FormatInt(t.max, 10)})
	}
	return ticks
}

// OpcodeChart draws opcode usage as a bar chart of relative
// percentages in descending order and saves it to path.
func OpcodeChart(path string, counts []opfreq.Count) error {
	if len(counts) == 0 {
		return fmt.Errorf("no opcode counts")
	}
	total := opfreq.Total(counts)

	sorted := make([]opfreq.Count, len(counts))
	copy(sorted, counts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return opfreq.Percentage(sorted[i], total) > opfreq.Percentage(sorted[j], total)
	})

	values := make(plotter.Values, len(sorted))
	labels := make([]string, len(sorted))
	for i, c := range sorted {
		values[i] = opfreq.Percentage(c, total)
		labels[i] = c.Name
	}

	pl := plot.New()
	pl.Title.Text = "Opcode frequency (relative %)"
	pl.Y.Label.Text = "opcode usage (%)"

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return err
	}
	bars.LineStyle.Width = vg.Length(0)
	pl.Add(bars)
	pl.NominalX(labels...)
	pl.X.Tick.Label.Rotation = -math.Pi / 8
	pl.X.Tick.Label.YAlign = draw.YTop
	pl.X.Tick.Label.XAlign = draw.XLeft

	return pl.Save(12*vg.Inch, 6*vg.Inch, path)
}
