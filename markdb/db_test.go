// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build cgo

package markdb_test

import (
	"testing"

	"github.com/cyclemark/perf/markdb"
	_ "github.com/cyclemark/perf/markdb/sqlite3"
	"github.com/cyclemark/perf/markstat"
)

func TestInsertSummaries(t *testing.T) {
	db, err := markdb.OpenSQL("sqlite3", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	summaries := []markstat.Summary{
		{Name: "mul", Count: 4, Min: 1, Max: 4, Mean: 2.5, Median: 2.5},
		{Name: "add", Count: 1, Min: 10, Max: 10, Mean: 10, Median: 10},
	}
	id1, err := db.InsertSummaries("run one", summaries)
	if err != nil {
		t.Fatal(err)
	}
	id2, err := db.InsertSummaries("run two", summaries[:1])
	if err != nil {
		t.Fatal(err)
	}
	if id1 == id2 {
		t.Errorf("uploads got the same id %d", id1)
	}
}
