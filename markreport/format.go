// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package markreport renders aggregated cycle-marker metrics as CSV,
// Markdown, HTML, and charts. It is a pure rendering layer; all
// numbers arrive already computed.
package markreport

import (
	"fmt"
	"math"
	"strconv"
)

// group formats n with "," thousands separators.
func group(n int64) string {
	s := strconv.FormatInt(n, 10)
	start := 0
	if s[0] == '-' {
		start = 1
	}
	if len(s)-start <= 3 {
		return s
	}
	var out []byte
	out = append(out, s[:start]...)
	lead := (len(s) - start) % 3
	if lead > 0 {
		out = append(out, s[start:start+lead]...)
	}
	for i := start + lead; i < len(s); i += 3 {
		if len(out) > start {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}

// pct formats a signed two-decimal percentage. Infinite changes are
// rendered as "+inf%".
func pct(p float64) string {
	if math.IsInf(p, 1) {
		return "+inf%"
	}
	return fmt.Sprintf("%+.2f%%", p)
}

// strof formats a float for CSV output.
func strof(x float64) string {
	return fmt.Sprintf("%f", x)
}
