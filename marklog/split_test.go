// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package marklog

import (
	"strings"
	"testing"
)

func TestSplitRuns(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"noDelimiter", "just one block\n", 1},
		{"empty", "", 1},
		{"twoRuns", "a\n" + RunDelimiter + "\nb\n", 2},
		{"leadingAndTrailing", RunDelimiter + "\nmid\n" + RunDelimiter, 3},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			blocks := SplitRuns(test.text)
			if len(blocks) != test.want {
				t.Errorf("got %d blocks, want %d", len(blocks), test.want)
			}
			if rejoined := strings.Join(blocks, RunDelimiter); rejoined != test.text {
				t.Errorf("round trip mismatch:\ngot  %q\nwant %q", rejoined, test.text)
			}
		})
	}
}
