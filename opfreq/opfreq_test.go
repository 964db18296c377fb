// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opfreq

import (
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
Opcode ADD: used 1_234_567 times
Opcode MUL: used 2,048 times
Opcode SUB: used 10 times
noise line
Opcode BAD: used xyz times
`
	got, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	want := []Count{
		{Name: "ADD", Count: 1234567},
		{Name: "MUL", Count: 2048},
		{Name: "SUB", Count: 10},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestPercentage(t *testing.T) {
	counts := []Count{{Name: "A", Count: 75}, {Name: "B", Count: 25}}
	total := Total(counts)
	if total != 100 {
		t.Fatalf("Total = %d, want 100", total)
	}
	if got := Percentage(counts[0], total); got != 75 {
		t.Errorf("Percentage(A) = %v, want 75", got)
	}
	if got := Percentage(counts[0], 0); got != 0 {
		t.Errorf("Percentage with zero total = %v, want 0", got)
	}
}
