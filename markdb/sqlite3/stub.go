// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !cgo

// When built without cgo, github.com/mattn/go-sqlite3 registers a
// stub driver that fails at open time, and its ConnectHook type does
// not support Exec, so no foreign-key hook is installed here.
package sqlite3
