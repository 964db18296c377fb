// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Markcmp compares cycle-marker logs from two versions of a system
// under test and prints a Markdown report.
//
// Usage:
//
//	markcmp [-target symbol] [-html file] [-blake-weight n] [-bigint-weight n] label base.txt head.txt [label base.txt head.txt ...]
//
// Each triple names one benchmark and its base and head logs. Within
// each dataset the marker with the largest effective cycle count is
// kept per region, so repeated invocations compare at their peak cost.
// A missing log file is treated as an empty dataset, which reports
// every region on the other side against zero.
//
// By default every region seen on either side is reported, sorted by
// name; -target restricts the report to a single region.
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
	fmt.Fprintf(os.Stderr, "usage: markcmp [options] label base.txt head.txt [label base.txt head.txt ...]\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

var (
	flagTarget = flag.String("target", "", "report only the region named `symbol`")
	flagHTML   = flag.String("html", "", "also write the report as HTML to `file`")

	flagBlakeWeight  = flag.Int64("blake-weight", markcost.DefaultWeights().Blake2Round, "cycle `weight` of one Blake2-round delegation")
	flagBigIntWeight = flag.Int64("bigint-weight", markcost.DefaultWeights().U256BigInt, "cycle `weight` of one big-integer delegation")
)

func main() {
	log.SetPrefix("markcmp: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 3 || flag.NArg()%3 != 0 {
		flag.Usage()
	}

	weights := markcost.Weights{
		Blake2Round: *flagBlakeWeight,
		U256BigInt:  *flagBigIntWeight,
	}

	var rows []markstat.Row
	args := flag.Args()
	for i := 0; i < len(args); i += 3 {
		label, basePath, headPath := args[i], args[i+1], args[i+2]
		base := markstat.BestLanes(readRuns(basePath), weights)
		head := markstat.BestLanes(readRuns(headPath), weights)
		rows = append(rows, markstat.Compare(label, base, head, *flagTarget)...)
	}

	if err := markreport.WriteMarkdown(os.Stdout, rows); err != nil {
		log.Fatal(err)
	}
	if *flagHTML != "" {
		f, err := os.Create(*flagHTML)
		if err != nil {
			log.Fatal(err)
		}
		if err := markreport.WriteHTML(f, rows); err != nil {
			log.Fatal(err)
		}
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
	}
}

// readRuns parses every run in the log at path. A nonexistent file is
// an empty dataset; any other read error is fatal.
func readRuns(path string) []marklog.Run {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		log.Fatal(err)
	}
	blocks := marklog.SplitRuns(string(data))
	runs := make([]marklog.Run, 0, len(blocks))
	for _, block := range blocks {
		runs = append(runs, marklog.ParseRun(block))
	}
	return runs
}
