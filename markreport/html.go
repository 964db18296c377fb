// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markreport

import (
	"io"

	"github.com/google/safehtml/template"

	"github.com/cyclemark/perf/markstat"
)

var htmlTemplate = template.Must(template.New("report").ParseFromTrustedTemplate(template.MakeTrustedTemplate(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Benchmark report</title>
<style>
.markcmp { border-collapse: collapse; }
.markcmp th, .markcmp td { padding: 0.2em 0.8em; }
.markcmp th:nth-child(-n+2) { text-align: left; }
.markcmp td:nth-child(n+3) { text-align: right; }
.markcmp tr th { border-top: 1px solid #666; border-bottom: 1px solid #ccc; }
</style>
</head>
<body>
<h3>Benchmark report</h3>
<table class='markcmp'>
<tr><th>Benchmark<th>Symbol<th>Base Eff<th>Head Eff (%)<th>Base Raw<th>Head Raw (%)<th>Base Blake<th>Head Blake (%)<th>Base Bigint<th>Head Bigint (%)
{{range . -}}
<tr><td><code>{{.Benchmark}}</code><td><code>{{.Name}}</code>{{range .Cells}}<td>{{.Base}}<td>{{.Head}} ({{.Pct}}){{end}}
{{end -}}
</table>
</body>
</html>
`)))

type htmlCell struct {
	Base, Head, Pct string
}

type htmlRow struct {
	Benchmark, Name string
	Cells           []htmlCell
}

// WriteHTML writes comparison rows as a standalone HTML table with the
// same columns as WriteMarkdown.
func WriteHTML(w io.Writer, rows []markstat.Row) error {
	data := make([]htmlRow, 0, len(rows))
	for _, r := range rows {
		data = append(data, htmlRow{
			Benchmark: r.Benchmark,
			Name:      r.Name,
			Cells: []htmlCell{
				{group(r.Base.Effective), group(r.Head.Effective), pct(r.EffectivePct)},
				{group(r.Base.Raw), group(r.Head.Raw), pct(r.RawPct)},
				{group(r.Base.Blake), group(r.Head.Blake), pct(r.BlakePct)},
				{group(r.Base.BigInt), group(r.Head.BigInt), pct(r.BigIntPct)},
			},
		})
	}
	return htmlTemplate.Execute(w, data)
}
