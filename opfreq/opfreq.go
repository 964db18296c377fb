// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package opfreq parses opcode-frequency logs.
//
// The format is one line per opcode:
//
//	Opcode ADD: used 1_234_567 times
//
// Digit groups may use "_" or "," separators, which are stripped
// before parsing. Lines that do not match are ignored.
package opfreq

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// A Count is the number of times one opcode was executed.
type Count struct {
	Name  string
	Count int64
}

var lineRE = regexp.MustCompile(`^Opcode (\w+): used ([\d_,]+) times$`)

// Parse reads an opcode-frequency log, returning the counts in
// document order.
func Parse(r io.Reader) ([]Count, error) {
	var counts []Count
	s := bufio.NewScanner(r)
	for s.Scan() {
		m := lineRE.FindStringSubmatch(strings.TrimSpace(s.Text()))
		if m == nil {
			continue
		}
		digits := strings.NewReplacer("_", "", ",", "").Replace(m[2])
		n, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			continue
		}
		counts = append(counts, Count{Name: m[1], Count: n})
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

// Total returns the sum of all counts.
func Total(counts []Count) int64 {
	var total int64
	for _, c := range counts {
		total += c.Count
	}
	return total
}

// Percentage returns c's share of total as a percentage, or 0 if
// total is 0.
func Percentage(c Count, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(c.Count) / float64(total) * 100
}
