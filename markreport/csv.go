// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markreport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/cyclemark/perf/markstat"
	"github.com/cyclemark/perf/opfreq"
)

// WriteSummaryCSV writes per-region ratio statistics with the header
// "marker,count,max,min,mean,median".
func WriteSummaryCSV(w io.Writer, summaries []markstat.Summary) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"marker", "count", "max", "min", "mean", "median"})
	for _, s := range summaries {
		cw.Write([]string{
			s.Name,
			strconv.Itoa(s.Count),
			strof(s.Max),
			strof(s.Min),
			strof(s.Mean),
			strof(s.Median),
		})
	}
	cw.Flush()
	return cw.Error()
}

// WriteOpcodeCSV writes opcode counts and their relative share with
// the header "opcode,count,percentage". Percentages have two decimal
// places.
func WriteOpcodeCSV(w io.Writer, counts []opfreq.Count) error {
	total := opfreq.Total(counts)
	cw := csv.NewWriter(w)
	cw.Write([]string{"opcode", "count", "percentage"})
	for _, c := range counts {
		cw.Write([]string{
			c.Name,
			strconv.FormatInt(c.Count, 10),
			fmt.Sprintf("%.2f", opfreq.Percentage(c, total)),
		})
	}
	cw.Flush()
	return cw.Error()
}
