// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Opstat turns an opcode-frequency log into a CSV table and a bar
// chart of relative usage.
//
// Usage:
//
//	opstat input.txt output.csv output.png
//
// The input contains lines of the form "Opcode ADD: used 1_234 times";
// anything else is ignored.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cyclemark/perf/markreport"
	"github.com/cyclemark/perf/opfreq"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: opstat input.txt output.csv output.png\n")
	os.Exit(2)
}

func main() {
	log.SetPrefix("opstat: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 3 {
		flag.Usage()
	}
	input, csvOut, pngOut := flag.Arg(0), flag.Arg(1), flag.Arg(2)

	f, err := os.Open(input)
	if err != nil {
		log.Fatal(err)
	}
	counts, err := opfreq.Parse(f)
	f.Close()
	if err != nil {
		log.Fatal(err)
	}

	out, err := os.Create(csvOut)
	if err != nil {
		log.Fatal(err)
	}
	if err := markreport.WriteOpcodeCSV(out, counts); err != nil {
		log.Fatal(err)
	}
	if err := out.Close(); err != nil {
		log.Fatal(err)
	}

	if err := markreport.OpcodeChart(pngOut, counts); err != nil {
		log.Fatal(err)
	}
}
