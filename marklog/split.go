// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package marklog parses cycle-marker benchmark logs.
//
// A log is a sequence of runs separated by a fixed delimiter line.
// Each run may contain a cycle-marker section, any number of spent-erg
// lines, and an optional swept-parameter line:
//
//	==================
//	Params: width:4
//	Spent ergs for [mul]: 256
//	=== Cycle markers:
//	mul: net cycles: 100, net delegations: {1994: 2}
//	Total delegations: 2
//
// Lines that match none of the recognized patterns are ignored.
package marklog

import "strings"

// RunDelimiter is the line separating runs in a log.
const RunDelimiter = "=================="

// SplitRuns splits text into run blocks on RunDelimiter. It preserves
// order and keeps empty leading and trailing blocks, so joining the
// result with RunDelimiter reconstructs text exactly. A text with no
// delimiter yields a single block.
func SplitRuns(text string) []string {
	return strings.Split(text, RunDelimiter)
}
