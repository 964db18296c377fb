// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package markcost converts parsed cycle-marker records into weighted
// cost metrics.
//
// Work delegated to a co-processor circuit does not show up in a
// region's raw cycle count, so raw cycles are not comparable between
// regions that delegate and regions that do not. This package folds
// delegation counts into a cycle-equivalent cost using a per-target
// weight table and derives a single effective-cycle number per region,
// along with its ratio to the gas charged for the region.
package markcost

import "github.com/cyclemark/perf/marklog"

// Reserved delegate-target ids with non-unit default weights.
const (
	// TargetBlake2Round is the extended Blake2 hash round circuit.
	TargetBlake2Round = 1991
	// TargetU256BigInt is the 256-bit big-integer arithmetic circuit.
	TargetU256BigInt = 1994
)

// Weights is the cycle-equivalent weight table for delegated
// operations. It is plain configuration: construct one at the top
// level and thread it into everything that needs it. Delegate targets
// not covered by any field weigh 1.
type Weights struct {
	// Blake2Round is the weight of one TargetBlake2Round delegation.
	Blake2Round int64

	// U256BigInt is the weight of one TargetU256BigInt delegation.
	U256BigInt int64

	// Other gives weights for additional delegate targets. It may
	// be nil. Entries for the reserved targets are ignored.
	Other map[int64]int64
}

// DefaultWeights returns the standard weight table.
//
// The big-integer weight has historically been measured as both 4 and
// 8 depending on the hardware generation under test; 4 is the default
// and callers wanting 8 must say so explicitly.
func DefaultWeights() Weights {
	return Weights{Blake2Round: 16, U256BigInt: 4}
}

// Weight returns the cycle-equivalent weight of one delegation to
// target.
func (w Weights) Weight(target int64) int64 {
	switch target {
	case TargetBlake2Round:
		return w.Blake2Round
	case TargetU256BigInt:
		return w.U256BigInt
	}
	if wt, ok := w.Other[target]; ok {
		return wt
	}
	return 1
}

// Cost returns the total weighted cycle-equivalent cost of a
// delegation-count map. Cost of an empty or nil map is 0.
func (w Weights) Cost(delegations map[int64]int64) int64 {
	var sum int64
	for target, count := range delegations {
		sum += count * w.Weight(target)
	}
	return sum
}

// Lanes breaks a marker's cost into the lanes reported by comparison
// tables: the raw cycle count, the per-reserved-target delegation
// counts, and the effective total.
type Lanes struct {
	Raw       int64 // cycles excluding delegated work
	Blake     int64 // TargetBlake2Round delegation count
	BigInt    int64 // TargetU256BigInt delegation count
	Effective int64 // Raw plus the weighted cost of all delegations
}

// Lanes computes the cost lanes of a marker under w.
func (w Weights) Lanes(m marklog.Marker) Lanes {
	return Lanes{
		Raw:       m.Cycles,
		Blake:     m.Delegations[TargetBlake2Round],
		BigInt:    m.Delegations[TargetU256BigInt],
		Effective: m.Cycles + w.Cost(m.Delegations),
	}
}
