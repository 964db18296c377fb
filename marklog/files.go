// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package marklog

import "os"

// A Files reads runs from a sequence of input files.
type Files struct {
	// Paths is the list of file names to read in.
	Paths []string

	// AllowStdin indicates that the path "-" should be treated as
	// stdin and if the file list is empty, it should be treated
	// as consisting of stdin.
	//
	// This is generally the desired behavior when the file list
	// comes from command-line flags.
	AllowStdin bool

	// AllowMissing indicates that a nonexistent file should be
	// treated as an empty log rather than an error. Comparison
	// workflows use this so that a side with no recorded log
	// simply contributes no data.
	AllowMissing bool

	// inputs is the sequence of remaining inputs, or nil if this
	// Files has not started yet. Note that this distinguishes nil
	// from length 0.
	inputs []string

	reader *Reader
	path   string
	err    error
}

// Scan advances to the next run in the sequence of files and reports
// whether one was read. If Scan reaches the end of the file sequence,
// or if an I/O error occurs, it returns false and the caller should
// use the Err method to check for errors.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}

	if f.inputs == nil {
		f.inputs = f.Paths
		if f.AllowStdin && len(f.inputs) == 0 {
			f.inputs = []string{"-"}
		}
		if len(f.inputs) == 0 {
			f.inputs = []string{}
		}
	}

	for {
		if f.reader != nil && f.reader.Scan() {
			return true
		}
		if f.reader != nil {
			if err := f.reader.Err(); err != nil {
				f.err = err
				return false
			}
			f.reader = nil
		}

		// Open the next file.
		if len(f.inputs) == 0 {
			return false
		}
		path := f.inputs[0]
		f.inputs = f.inputs[1:]
		f.path = path

		if f.AllowStdin && path == "-" {
			f.reader = NewReader(os.Stdin, "<stdin>")
			continue
		}
		file, err := os.Open(path)
		if err != nil {
			if f.AllowMissing && os.IsNotExist(err) {
				continue
			}
			f.err = err
			return false
		}
		f.reader = NewReader(file, path)
		file.Close()
	}
}

// Run returns the run that was just read by Scan.
func (f *Files) Run() *Run {
	return f.reader.Run()
}

// Path returns the path of the file the current run was read from.
func (f *Files) Path() string {
	return f.path
}

// Err returns the I/O error that stopped Scan, if any.
func (f *Files) Err() error {
	return f.err
}
