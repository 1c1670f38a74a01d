// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchtab loads benchmark result tables from CSV files and
// groups their rows into ordered series.
//
// A Table is an immutable set of named columns backed by a
// github.com/aclements/go-gg/table Table. Columns named by a Schema
// are required: key columns are kept as strings and numeric columns
// are parsed as float64. Any other columns in the file are kept too,
// as float64 if every value parses as a number and as strings
// otherwise.
package benchtab

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
)

// A Schema names the columns a Table must have.
type Schema struct {
	// Keys are categorical columns. Their values are kept as
	// strings and must not be empty.
	Keys []string
	// Numeric columns must hold a number in every row.
	Numeric []string
}

func (s Schema) columns() []string {
	cols := make([]string, 0, len(s.Keys)+len(s.Numeric))
	cols = append(cols, s.Keys...)
	return append(cols, s.Numeric...)
}

func (s Schema) kind(col string) columnKind {
	for _, k := range s.Keys {
		if k == col {
			return keyColumn
		}
	}
	for _, n := range s.Numeric {
		if n == col {
			return numericColumn
		}
	}
	return extraColumn
}

type columnKind int

const (
	extraColumn columnKind = iota
	keyColumn
	numericColumn
)

// A Table is an immutable table of benchmark results.
type Table struct {
	t *table.Table
}

// Len returns the number of rows in t.
func (t *Table) Len() int {
	return t.t.Len()
}

// Columns returns the column names of t in file order.
func (t *Table) Columns() []string {
	return t.t.Columns()
}

// Strings returns the values of a string column, or nil if t has no
// such column or the column is numeric.
func (t *Table) Strings(col string) []string {
	s, _ := t.t.Column(col).([]string)
	return s
}

// Floats returns the values of a numeric column, or nil if t has no
// such column or the column is not numeric.
func (t *Table) Floats(col string) []float64 {
	s, _ := t.t.Column(col).([]float64)
	return s
}

// Has reports whether t has a column named col.
func (t *Table) Has(col string) bool {
	return t.t.Column(col) != nil
}

// Fprint writes t to w as an aligned text table.
func (t *Table) Fprint(w io.Writer) error {
	return table.Fprint(w, t.t)
}

// Load reads the CSV file at path. The file must have a header row
// naming every column in schema. Loading is all or nothing: any
// problem with the file is reported as an *InputError and no Table
// is returned.
func Load(path string, schema Schema) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		var pe *os.PathError
		if errors.As(err, &pe) {
			err = pe.Err
		}
		return nil, &InputError{Path: path, Err: err}
	}
	defer f.Close()
	return Read(f, path, schema)
}

// Read is like Load, but reads CSV data from r. name is used in
// error messages.
func Read(r io.Reader, name string, schema Schema) (*Table, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &InputError{Path: name, Err: ErrNoHeader}
	} else if err != nil {
		return nil, csvError(name, err)
	}
	index := make(map[string]int, len(header))
	for i, col := range header {
		col = strings.TrimSpace(col)
		if _, ok := index[col]; ok {
			return nil, &InputError{Path: name, Line: 1, Column: col, Err: ErrDuplicateColumn}
		}
		header[i] = col
		index[col] = i
	}
	for _, col := range schema.columns() {
		if _, ok := index[col]; !ok {
			return nil, &InputError{Path: name, Line: 1, Column: col, Err: ErrMissingColumn}
		}
	}

	var rows [][]string
	var lines []int
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, csvError(name, err)
		}
		line, _ := cr.FieldPos(0)
		rows = append(rows, rec)
		lines = append(lines, line)
	}
	if len(rows) == 0 {
		return nil, &InputError{Path: name, Err: ErrNoRows}
	}

	var b table.Builder
	for i, col := range header {
		kind := schema.kind(col)
		vals := make([]string, len(rows))
		for j, row := range rows {
			vals[j] = row[i]
			if kind != keyColumn {
				vals[j] = strings.TrimSpace(vals[j])
			}
		}

		switch kind {
		case keyColumn:
			// Key values are kept verbatim: "Uniform " and
			// "Uniform" are different groups.
			for j, v := range vals {
				if strings.TrimSpace(v) == "" {
					return nil, &InputError{Path: name, Line: lines[j], Column: col, Err: ErrEmptyValue}
				}
			}
			b.Add(col, vals)

		case numericColumn:
			nums := make([]float64, len(vals))
			for j, v := range vals {
				if v == "" {
					return nil, &InputError{Path: name, Line: lines[j], Column: col, Err: ErrEmptyValue}
				}
				x, ok := parseFloat(v)
				if !ok {
					return nil, &InputError{Path: name, Line: lines[j], Column: col, Err: fmt.Errorf("%w: %q", ErrNotNumeric, v)}
				}
				nums[j] = x
			}
			b.Add(col, nums)

		default:
			if nums, ok := parseFloats(vals); ok {
				b.Add(col, nums)
			} else {
				b.Add(col, vals)
			}
		}
	}
	return &Table{b.Done()}, nil
}

// parseFloat parses v as a finite number. NaN and infinities are
// rejected.
func parseFloat(v string) (float64, bool) {
	x, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, false
	}
	return x, true
}

// parseFloats parses every value in vals, or reports false if any
// value is not a finite number.
func parseFloats(vals []string) ([]float64, bool) {
	nums := make([]float64, len(vals))
	for i, v := range vals {
		x, ok := parseFloat(v)
		if !ok {
			return nil, false
		}
		nums[i] = x
	}
	return nums, true
}

func csvError(name string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &InputError{Path: name, Line: pe.Line, Err: pe.Err}
	}
	return &InputError{Path: name, Err: err}
}
