// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package marklog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeLog(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0666); err != nil {
		t.Fatal(err)
	}
	return path
}

func countRuns(t *testing.T, f *Files) int {
	t.Helper()
	n := 0
	for f.Scan() {
		n++
	}
	if err := f.Err(); err != nil {
		t.Fatal(err)
	}
	return n
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeLog(t, dir, "a.txt", "x\n"+RunDelimiter+"\ny\n")
	b := writeLog(t, dir, "b.txt", "z\n")

	f := &Files{Paths: []string{a, b}}
	if got := countRuns(t, f); got != 3 {
		t.Errorf("got %d runs, want 3", got)
	}
}

func TestFilesMissing(t *testing.T) {
	dir := t.TempDir()
	a := writeLog(t, dir, "a.txt", "x\n")
	missing := filepath.Join(dir, "nonexistent.txt")

	f := &Files{Paths: []string{missing, a}}
	for f.Scan() {
	}
	if f.Err() == nil {
		t.Error("expected error for missing file")
	}

	f = &Files{Paths: []string{missing, a}, AllowMissing: true}
	if got := countRuns(t, f); got != 1 {
		t.Errorf("with AllowMissing, got %d runs, want 1", got)
	}
}
