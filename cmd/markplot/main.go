// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Markplot charts the cycle/gas ratio of one region against a swept
// parameter.
//
// Usage:
//
//	markplot [-o file] [-blake-weight n] [-bigint-weight n] [-ergs-per-gas n] marker file.txt [file.txt ...]
//
// Each run in the input logs is expected to carry a "Params: key:n"
// line tagging it with the swept parameter value. For every run whose
// parameter key matches the first one seen, markplot computes the
// target marker's cycle/gas ratio and plots the resulting series on a
// log-base-2 x-axis with a tick at each power of two.
//
// The big-integer weight is configurable because historical gas-model
// sweeps have been run with a weight of 8 where comparison reports
// used 4.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cyclemark/perf/markcost"
	"github.com/cyclemark/perf/marklog"
	"github.com/cyclemark/perf/markreport"
	"github.com/cyclemark/perf/markstat"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: markplot [options] marker file.txt [file.txt ...]\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

var (
	flagOut = flag.String("o", "ratios.png", "write the chart to `file`")

	flagBlakeWeight  = flag.Int64("blake-weight", markcost.DefaultWeights().Blake2Round, "cycle `weight` of one Blake2-round delegation")
	flagBigIntWeight = flag.Int64("bigint-weight", markcost.DefaultWeights().U256BigInt, "cycle `weight` of one big-integer delegation")
	flagErgsPerGas   = flag.Int64("ergs-per-gas", markcost.DefaultErgsPerGas, "ergs per unit of `gas`")
)

func main() {
	log.SetPrefix("markplot: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 2 {
		flag.Usage()
	}
	marker := flag.Arg(0)

	model := markcost.Model{
		Weights: markcost.Weights{
			Blake2Round: *flagBlakeWeight,
			U256BigInt:  *flagBigIntWeight,
		},
		ErgsPerGas: *flagErgsPerGas,
	}

	files := marklog.Files{Paths: flag.Args()[1:]}
	var runs []marklog.Run
	for files.Scan() {
		runs = append(runs, *files.Run())
	}
	if err := files.Err(); err != nil {
		log.Fatal(err)
	}

	paramName, pts := markstat.Series(runs, marker, model)
	if len(pts) == 0 {
		fmt.Printf("No data found for marker %q\n", marker)
		return
	}

	if err := markreport.RatioChart(*flagOut, marker, paramName, pts); err != nil {
		log.Fatal(err)
	}
}
