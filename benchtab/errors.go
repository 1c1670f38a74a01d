// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoHeader        = errors.New("no header row")
	ErrNoRows          = errors.New("no data rows")
	ErrMissingColumn   = errors.New("missing required column")
	ErrDuplicateColumn = errors.New("duplicate column")
	ErrEmptyValue      = errors.New("empty value")
	ErrNotNumeric      = errors.New("not a number")
)

// An InputError reports a problem with an input table: a file that
// cannot be read, malformed CSV, or a missing or bad column.
type InputError struct {
	Path   string // File name, if known
	Line   int    // 1-based line in the file, or 0
	Column string // Column name, if the error is about one column
	Err    error
}

func (e *InputError) Error() string {
	var b strings.Builder
	if e.Path != "" {
		b.WriteString(e.Path)
		if e.Line > 0 {
			fmt.Fprintf(&b, ":%d", e.Line)
		}
		b.WriteString(": ")
	} else if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	if e.Column != "" {
		fmt.Fprintf(&b, "column %q: ", e.Column)
	}
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *InputError) Unwrap() error {
	return e.Err
}
