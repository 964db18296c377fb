// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package marklog

import (
	"regexp"
	"strconv"
	"strings"
)

// A Marker is one instrumented region's measurement within a run: the
// cycles attributed directly to the region, excluding delegated work,
// plus a count of delegated operations per delegate-target id.
//
// A name may repeat within a run when the region was invoked more than
// once.
type Marker struct {
	Name        string
	Cycles      int64
	Delegations map[int64]int64
}

// A Gas is the erg cost charged for one invocation of a region.
// Repeated invocations produce repeated records in document order.
type Gas struct {
	Name string
	Ergs int64
}

// A Param is the swept-parameter tag of a run, e.g. "width:4".
type Param struct {
	Key   string
	Value int64
}

// A Run holds all records extracted from one delimiter-separated block
// of a log.
type Run struct {
	Markers []Marker
	Gas     []Gas
	Param   *Param // nil if the block has no Params line
}

const (
	markerHeader     = "=== Cycle markers:"
	markerTerminator = "Total delegations"
)

var (
	markerRE = regexp.MustCompile(`^(\w+): net cycles: (\d+), net delegations: (\{.*\})$`)
	gasRE    = regexp.MustCompile(`Spent ergs for \[(\w+)\]: (\d+)`)
	paramRE  = regexp.MustCompile(`Params: (\w+):(\d+)`)
)

// ParseRun extracts the records of a single run block.
//
// Markers come from the first cycle-marker section, which starts at
// the markerHeader line and ends at the markerTerminator line or the
// end of the block. Gas records come from every spent-ergs line
// anywhere in the block, in document order. The Param comes from the
// first Params line; later ones are ignored. Lines that match nothing
// are skipped, as are marker lines whose delegation literal does not
// parse. A block with no records at all is a valid, empty Run.
func ParseRun(block string) Run {
	var run Run

	for _, m := range gasRE.FindAllStringSubmatch(block, -1) {
		ergs, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			continue
		}
		run.Gas = append(run.Gas, Gas{Name: m[1], Ergs: ergs})
	}

	if m := paramRE.FindStringSubmatch(block); m != nil {
		val, err := strconv.ParseInt(m[2], 10, 64)
		if err == nil {
			run.Param = &Param{Key: m[1], Value: val}
		}
	}

	run.Markers = parseMarkers(block)
	return run
}

// parseMarkers extracts MarkerRecords from the first cycle-marker
// section of block.
func parseMarkers(block string) []Marker {
	var markers []Marker
	inSection := false
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if !inSection {
			if line == markerHeader {
				inSection = true
			}
			continue
		}
		if strings.HasPrefix(line, markerTerminator) {
			break
		}
		m := markerRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		cycles, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			continue
		}
		delegs, err := ParseDelegations(m[3])
		if err != nil {
			continue
		}
		markers = append(markers, Marker{Name: m[1], Cycles: cycles, Delegations: delegs})
	}
	return markers
}
