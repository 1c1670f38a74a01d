// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"errors"
	"reflect"
	"testing"
)

func TestScale(t *testing.T) {
	tab := mustRead(t, `threads,distribution,mix,average_time
4,Uniform,1:1:8,4000000000
8,Normal,1:1:0,1500000000
`, mixSchema)

	sec, err := Scale(tab, "average_time", NanosPerSecond)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := sec.Floats("average_time"), []float64{4, 1.5}; !reflect.DeepEqual(got, want) {
		t.Errorf("scaled average_time = %v, want %v", got, want)
	}
	if got, want := sec.Floats("threads"), []float64{4, 8}; !reflect.DeepEqual(got, want) {
		t.Errorf("threads = %v, want %v", got, want)
	}
	if got, want := sec.Strings("mix"), []string{"1:1:8", "1:1:0"}; !reflect.DeepEqual(got, want) {
		t.Errorf("mix = %v, want %v", got, want)
	}
	if !reflect.DeepEqual(sec.Columns(), tab.Columns()) {
		t.Errorf("columns changed: %v -> %v", tab.Columns(), sec.Columns())
	}
	if got, want := tab.Floats("average_time"), []float64{4e9, 1.5e9}; !reflect.DeepEqual(got, want) {
		t.Errorf("input modified: %v, want %v", got, want)
	}

	// Scaling is not idempotent.
	twice, err := Scale(sec, "average_time", NanosPerSecond)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := twice.Floats("average_time"), []float64{4e-9, 1.5e-9}; !reflect.DeepEqual(got, want) {
		t.Errorf("twice-scaled average_time = %v, want %v", got, want)
	}
}

func TestScaleErrors(t *testing.T) {
	tab := mustRead(t, "threads,distribution,mix,average_time\n4,Uniform,1:1:8,1\n", mixSchema)
	if _, err := Scale(tab, "nope", 10); !errors.Is(err, ErrMissingColumn) {
		t.Errorf("missing column: got %v", err)
	}
	if _, err := Scale(tab, "mix", 10); !errors.Is(err, ErrNotNumeric) {
		t.Errorf("string column: got %v", err)
	}
	if _, err := Scale(tab, "average_time", 0); err == nil {
		t.Errorf("zero divisor: want error")
	}
}
