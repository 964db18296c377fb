// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Markstat summarizes cycle/gas ratios from cycle-marker benchmark logs.
//
// Usage:
//
//	markstat [-csv file] [-db dsn] [-db-driver driver] [-blake-weight n] [-bigint-weight n] [-ergs-per-gas n] file.txt [file.txt ...]
//
// Each input file is a cycle-marker log with any number of runs.
// Markers are matched FIFO with the spent-erg records of the same
// region within each run; for every matched pair the effective cycle
// count (raw cycles plus weighted delegations) is divided by the gas
// charged. Markstat prints count, max, min, mean, and median of that
// ratio per region and writes the same table as CSV.
//
// With -db, the statistics are also archived in a SQL database
// (sqlite3 by default) for later cross-invocation comparison.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/go-sql-driver/mysql"

	"github.com/cyclemark/perf/markcost"
	"github.com/cyclemark/perf/markdb"
	_ "github.com/cyclemark/perf/markdb/sqlite3"
	"github.com/cyclemark/perf/marklog"
	"github.com/cyclemark/perf/markreport"
	"github.com/cyclemark/perf/markstat"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: markstat [options] file.txt [file.txt ...]\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

var (
	flagCSV      = flag.String("csv", "ratios.csv", "write per-marker statistics to `file`; empty to disable")
	flagDB       = flag.String("db", "", "archive statistics in the database at `dsn`")
	flagDBDriver = flag.String("db-driver", "sqlite3", "database `driver`: sqlite3 or mysql")

	flagBlakeWeight  = flag.Int64("blake-weight", markcost.DefaultWeights().Blake2Round, "cycle `weight` of one Blake2-round delegation")
	flagBigIntWeight = flag.Int64("bigint-weight", markcost.DefaultWeights().U256BigInt, "cycle `weight` of one big-integer delegation")
	flagErgsPerGas   = flag.Int64("ergs-per-gas", markcost.DefaultErgsPerGas, "ergs per unit of `gas`")
)

func main() {
	log.SetPrefix("markstat: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
	}

	model := markcost.Model{
		Weights: markcost.Weights{
			Blake2Round: *flagBlakeWeight,
			U256BigInt:  *flagBigIntWeight,
		},
		ErgsPerGas: *flagErgsPerGas,
	}

	files := marklog.Files{Paths: flag.Args(), AllowStdin: true}
	var metrics []markcost.Metric
	for files.Scan() {
		metrics = append(metrics, model.MatchRun(files.Run())...)
	}
	if err := files.Err(); err != nil {
		log.Fatal(err)
	}

	summaries := markstat.Summarize(metrics)
	for _, s := range summaries {
		fmt.Printf("%s (count: %d):\n", s.Name, s.Count)
		fmt.Printf("  max:    %.2f\n", s.Max)
		fmt.Printf("  min:    %.2f\n", s.Min)
		fmt.Printf("  mean:   %.2f\n", s.Mean)
		fmt.Printf("  median: %.2f\n", s.Median)
	}

	if *flagCSV != "" {
		f, err := os.Create(*flagCSV)
		if err != nil {
			log.Fatal(err)
		}
		if err := markreport.WriteSummaryCSV(f, summaries); err != nil {
			log.Fatal(err)
		}
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
	}

	if *flagDB != "" {
		db, err := markdb.OpenSQL(*flagDBDriver, *flagDB)
		if err != nil {
			log.Fatal(err)
		}
		if _, err := db.InsertSummaries(strings.Join(flag.Args(), " "), summaries); err != nil {
			log.Fatal(err)
		}
		if err := db.Close(); err != nil {
			log.Fatal(err)
		}
	}
}
