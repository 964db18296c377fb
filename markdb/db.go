// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package markdb archives per-region ratio statistics in a SQL
// database so that successive benchmark invocations can be compared
// later. It's safe for concurrent use by multiple goroutines.
package markdb

import (
	"bytes"
	"database/sql"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/cyclemark/perf/markstat"
)

// DB is a handle to the statistics archive.
type DB struct {
	sql *sql.DB // underlying database connection
	// prepared statements
	insertUpload *sql.Stmt
	insertRatio  *sql.Stmt
}

// OpenSQL creates a DB backed by a SQL database. The parameters are
// the same as the parameters for sql.Open. Only mysql and sqlite3 are
// explicitly supported; other database engines will receive MySQL
// query syntax which may or may not be compatible.
func OpenSQL(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if hook := openHooks[driverName]; hook != nil {
		if err := hook(db); err != nil {
			return nil, err
		}
	}
	d := &DB{sql: db}
	if err := d.createTables(driverName); err != nil {
		return nil, err
	}
	if err := d.prepareStatements(driverName); err != nil {
		return nil, err
	}
	return d, nil
}

var openHooks = make(map[string]func(*sql.DB) error)

// RegisterOpenHook registers a hook to be called after opening a
// connection to driverName. This is used by the sqlite3 subpackage to
// register a ConnectHook. It must be called from an init function.
func RegisterOpenHook(driverName string, hook func(*sql.DB) error) {
	openHooks[driverName] = hook
}

// createTmpl is the template used to prepare the CREATE statements
// for the database. It is evaluated with . as a map containing one
// entry whose key is the driver name.
var createTmpl = template.Must(template.New("create").Parse(`
CREATE TABLE IF NOT EXISTS Uploads (
	UploadID {{if .sqlite3}}INTEGER PRIMARY KEY AUTOINCREMENT{{else}}SERIAL PRIMARY KEY AUTO_INCREMENT{{end}},
	Label VARCHAR(255),
	RecordedAt BIGINT
);
CREATE TABLE IF NOT EXISTS Ratios (
	UploadID BIGINT UNSIGNED,
	Marker VARCHAR(255),
	N BIGINT,
	MinRatio DOUBLE,
	MaxRatio DOUBLE,
	MeanRatio DOUBLE,
	MedianRatio DOUBLE,
	FOREIGN KEY (UploadID) REFERENCES Uploads(UploadID) ON UPDATE CASCADE ON DELETE CASCADE
);
`))

// createTables creates any missing tables on the connection in
// db.sql. driverName is the same driver name passed to sql.Open and
// is used to select the correct syntax.
func (db *DB) createTables(driverName string) error {
	var buf bytes.Buffer
	if err := createTmpl.Execute(&buf, map[string]bool{driverName: true}); err != nil {
		return err
	}
	for _, q := range strings.Split(buf.String(), ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.sql.Exec(q); err != nil {
			return fmt.Errorf("create table: %v", err)
		}
	}
	return nil
}

// prepareStatements calls db.sql.Prepare on reusable SQL statements.
func (db *DB) prepareStatements(driverName string) error {
	var err error
	db.insertUpload, err = db.sql.Prepare("INSERT INTO Uploads (Label, RecordedAt) VALUES (?, ?)")
	if err != nil {
		return err
	}
	db.insertRatio, err = db.sql.Prepare("INSERT INTO Ratios (UploadID, Marker, N, MinRatio, MaxRatio, MeanRatio, MedianRatio) VALUES (?, ?, ?, ?, ?, ?, ?)")
	return err
}

// InsertSummaries records one invocation's per-region statistics under
// label and returns the upload id.
func (db *DB) InsertSummaries(label string, summaries []markstat.Summary) (uploadID int64, err error) {
	tx, err := db.sql.Begin()
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	res, err := tx.Stmt(db.insertUpload).Exec(label, time.Now().Unix())
	if err != nil {
		return 0, err
	}
	uploadID, err = res.LastInsertId()
	if err != nil {
		return 0, err
	}
	insert := tx.Stmt(db.insertRatio)
	for _, s := range summaries {
		if _, err = insert.Exec(uploadID, s.Name, s.Count, s.Min, s.Max, s.Mean, s.Median); err != nil {
			return 0, err
		}
	}
	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return uploadID, nil
}

// Close closes the database connections, releasing any open resources.
func (db *DB) Close() error {
	for _, stmt := range []*sql.Stmt{db.insertUpload, db.insertRatio} {
		if stmt != nil {
			stmt.Close()
		}
	}
	return db.sql.Close()
}
