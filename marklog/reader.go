// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package marklog

import (
	"fmt"
	"io"
)

// A Reader reads runs from a cycle-marker log.
//
// Its API is modeled on bufio.Scanner: call Scan to advance to the
// next run and Run to retrieve it. Logs are small relative to memory,
// so the whole input is read eagerly; Scan never performs I/O.
type Reader struct {
	runs []Run
	pos  int
	err  error
}

// NewReader constructs a Reader that parses the log in r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	rd := &Reader{pos: -1}
	data, err := io.ReadAll(r)
	if err != nil {
		if fileName == "" {
			fileName = "<unknown>"
		}
		rd.err = fmt.Errorf("%s: %w", fileName, err)
		return rd
	}
	for _, block := range SplitRuns(string(data)) {
		rd.runs = append(rd.runs, ParseRun(block))
	}
	return rd
}

// Scan advances the reader to the next run and reports whether one is
// available. Every block yields a run, including blocks with no
// recognized records.
func (r *Reader) Scan() bool {
	if r.err != nil || r.pos+1 >= len(r.runs) {
		return false
	}
	r.pos++
	return true
}

// Run returns the run that was just read by Scan. The returned Run is
// owned by the caller; the Reader does not reuse it.
func (r *Reader) Run() *Run {
	return &r.runs[r.pos]
}

// Err returns the I/O error encountered while reading the input, if
// any.
func (r *Reader) Err() error {
	return r.err
}
