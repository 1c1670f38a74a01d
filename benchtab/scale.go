// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"fmt"

	"github.com/aclements/go-gg/table"
)

// NanosPerSecond converts a nanosecond column to seconds.
const NanosPerSecond = 1e9

// Scale returns a copy of t in which every value of the numeric
// column col is divided by divisor. t itself is not modified.
//
// Scale is not idempotent: scaling the result again divides the
// column a second time.
func Scale(t *Table, col string, divisor float64) (*Table, error) {
	if !t.Has(col) {
		return nil, &InputError{Column: col, Err: ErrMissingColumn}
	}
	if t.Floats(col) == nil {
		return nil, &InputError{Column: col, Err: ErrNotNumeric}
	}
	if divisor == 0 {
		return nil, fmt.Errorf("scaling column %q: divisor is zero", col)
	}

	g := table.MapCols(t.t, func(in, out []float64) {
		for i, v := range in {
			out[i] = v / divisor
		}
	}, col)(col)
	return &Table{g.Table(table.RootGroupID)}, nil
}
