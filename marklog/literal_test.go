// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package marklog

import (
	"reflect"
	"testing"
)

func TestParseDelegations(t *testing.T) {
	tests := []struct {
		lit  string
		want map[int64]int64
	}{
		{"{}", nil},
		{"{1994: 2}", map[int64]int64{1994: 2}},
		{"{1991: 12, 1994: 3}", map[int64]int64{1991: 12, 1994: 3}},
		{"{ 7 : 1 , 8 : 2 }", map[int64]int64{7: 1, 8: 2}},
		{"{1: 2,}", map[int64]int64{1: 2}},
		{"{-1: -2}", map[int64]int64{-1: -2}},
	}
	for _, test := range tests {
		got, err := ParseDelegations(test.lit)
		if err != nil {
			t.Errorf("%s: unexpected error %v", test.lit, err)
			continue
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("%s: got %v, want %v", test.lit, got, test.want)
		}
	}
}

func TestParseDelegationsRejects(t *testing.T) {
	// The harness prints delegation maps in its implementation
	// language's literal syntax. Anything beyond integer maps,
	// lists, and sets must be rejected, never evaluated.
	bad := []string{
		"",
		"{",
		"{1: }",
		"{1 2}",
		"{1: 2} extra",
		"{'a': 1}",
		`{"a": 1}`,
		"{1: {2: 3}}",          // nested map
		"{1: [2]}",             // nested list
		"os.system('rm -rf')",  // identifiers
		"__import__('os')",     // calls
		"{1: 2 for x in y}",    // comprehensions
		"{0x10: 1}",            // only decimal integers
		"{1: 99999999999999999999999999}", // overflow
	}
	for _, lit := range bad {
		if got, err := ParseDelegations(lit); err == nil {
			t.Errorf("%s: expected error, got %v", lit, got)
		}
	}
	// Well-formed sets and lists parse but are not valid
	// delegation maps.
	for _, lit := range []string{"{1, 2}", "[1, 2]", "[]", "42"} {
		_, err := ParseDelegations(lit)
		if err == nil {
			t.Errorf("%s: expected not-a-map error", lit)
		}
	}
}
