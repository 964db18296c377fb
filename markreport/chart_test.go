// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markreport

import (
	"reflect"
	"testing"
)

func tickValues(max int64) []float64 {
	var vals []float64
	for _, tk := range (powerOfTwoTicks{max: max}).Ticks(1, float64(max)) {
		vals = append(vals, tk.Value)
	}
	return vals
}

func TestPowerOfTwoTicks(t *testing.T) {
	tests := []struct {
		max  int64
		want []float64
	}{
		{1, []float64{1}},
		{8, []float64{1, 2, 4, 8}},
		// A non-power-of-two maximum still gets its own tick.
		{20, []float64{1, 2, 4, 8, 16, 20}},
	}
	for _, test := range tests {
		if got := tickValues(test.max); !reflect.DeepEqual(got, test.want) {
			t.Errorf("ticks for max %d: got %v, want %v", test.max, got, test.want)
		}
	}
}
