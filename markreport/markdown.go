// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markreport

import (
	"bufio"
	"fmt"
	"io"

	"github.com/cyclemark/perf/markstat"
)

// WriteMarkdown writes comparison rows as a Markdown table. Base and
// head values are grouped with thousands separators; each head value
// carries a signed two-decimal percent change.
func WriteMarkdown(w io.Writer, rows []markstat.Row) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "### Benchmark report\n\n")
	fmt.Fprintf(bw, "| Benchmark | Symbol | Base Eff | Head Eff (%%) | Base Raw | Head Raw (%%) | Base Blake | Head Blake (%%) | Base Bigint | Head Bigint (%%) |\n")
	fmt.Fprintf(bw, "|-----------|--------|-----------|----------------|-----------|----------------|-------------|------------------|---------------|--------------------|\n")
	for _, r := range rows {
		fmt.Fprintf(bw, "| `%s` | `%s` | %s | %s (%s) | %s | %s (%s) | %s | %s (%s) | %s | %s (%s) |\n",
			r.Benchmark, r.Name,
			group(r.Base.Effective), group(r.Head.Effective), pct(r.EffectivePct),
			group(r.Base.Raw), group(r.Head.Raw), pct(r.RawPct),
			group(r.Base.Blake), group(r.Head.Blake), pct(r.BlakePct),
			group(r.Base.BigInt), group(r.Head.BigInt), pct(r.BigIntPct),
		)
	}
	return bw.Flush()
}
