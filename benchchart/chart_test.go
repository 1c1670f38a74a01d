// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"bytes"
	"errors"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func testSeries() []Series {
	return []Series{
		NewSeries("quick", []float64{1, 2, 4}, []float64{2.0, 1.0, 0.6}),
		NewSeries("merge", []float64{1, 2, 4}, []float64{3.0, 1.8, 1.1}),
	}
}

var testOptions = Options{
	Title:       "Average Time vs Thread Count by Sorter",
	XLabel:      "Thread Count",
	YLabel:      "Average Time (s)",
	LegendTitle: "Sorter Name",
}

func TestNewSeries(t *testing.T) {
	s := NewSeries("quick", []float64{1, 2}, []float64{2.0, 1.0})
	want := plotter.XYs{{X: 1, Y: 2}, {X: 2, Y: 1}}
	if s.Label != "quick" || len(s.XYs) != 2 || s.XYs[0] != want[0] || s.XYs[1] != want[1] {
		t.Errorf("got %+v, want quick %v", s, want)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("NewSeries with mismatched lengths did not panic")
		}
	}()
	NewSeries("bad", []float64{1}, nil)
}

func TestRenderSize(t *testing.T) {
	f, err := Render(testSeries(), testOptions)
	if err != nil {
		t.Fatal(err)
	}
	w, h := f.Size()
	if h != 6*vg.Inch {
		t.Errorf("height = %v, want %v", h, 6*vg.Inch)
	}
	// The legend sits outside the 10 inch axes region.
	if w <= 10*vg.Inch*(1+legendGap) {
		t.Errorf("width = %v, want more than axes plus gap", w)
	}

	f, err = Render(testSeries(), Options{Width: 12 * vg.Inch, Height: 8 * vg.Inch})
	if err != nil {
		t.Fatal(err)
	}
	if _, h := f.Size(); h != 8*vg.Inch {
		t.Errorf("height = %v, want %v", h, 8*vg.Inch)
	}
}

func TestRenderLegendWidth(t *testing.T) {
	short, err := Render([]Series{NewSeries("a", []float64{1}, []float64{1})}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	long, err := Render([]Series{NewSeries("a much longer series label", []float64{1}, []float64{1})}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	sw, _ := short.Size()
	lw, _ := long.Size()
	if lw <= sw {
		t.Errorf("long label width %v <= short label width %v", lw, sw)
	}
}

func TestRenderErrors(t *testing.T) {
	s := NewSeries("x", []float64{1, 2}, []float64{1, 2})
	s.YErr = []float64{0.1}
	if _, err := Render([]Series{s}, testOptions); err == nil {
		t.Errorf("mismatched YErr: want error")
	}

	nan := NewSeries("nan", []float64{1, 2}, []float64{1, math.NaN()})
	if _, err := Render([]Series{nan}, testOptions); err == nil {
		t.Errorf("NaN point: want error")
	}
}

func TestWritePNG(t *testing.T) {
	series := testSeries()
	series[0].YErr = []float64{0.1, 0.05, 0.02}
	f, err := Render(series, testOptions)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := f.WritePNG(&buf, DPI); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	if dy := b.Dy(); dy < 6*DPI-1 || dy > 6*DPI+1 {
		t.Errorf("image height = %d px, want %d", dy, 6*DPI)
	}
	if b.Dx() <= 10*DPI {
		t.Errorf("image width = %d px, want more than %d", b.Dx(), 10*DPI)
	}
}

func TestSavePNG(t *testing.T) {
	f, err := Render(testSeries(), testOptions)
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "thread_performance.png")
	if err := f.SavePNG(path, 72); err != nil {
		t.Fatal(err)
	}
	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	if _, err := png.Decode(file); err != nil {
		t.Errorf("decoding saved image: %v", err)
	}

	bad := filepath.Join(dir, "no", "such", "dir", "out.png")
	err = f.SavePNG(bad, 72)
	var oe *OutputError
	if !errors.As(err, &oe) {
		t.Fatalf("want *OutputError, got %v", err)
	}
	if oe.Path != bad {
		t.Errorf("Path = %q, want %q", oe.Path, bad)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("want ErrNotExist, got %v", err)
	}
}

func TestSavePNGReplace(t *testing.T) {
	f, err := Render(testSeries(), testOptions)
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.png")
	if err := os.WriteFile(path, []byte("old chart"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := f.SavePNG(path, 72); err != nil {
		t.Fatal(err)
	}
	st, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if st.Mode().Perm() != 0600 {
		t.Errorf("mode = %v, want 0600", st.Mode().Perm())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("decoding replaced image: %v", err)
	}

	// A failed save leaves the directory target alone and no
	// temporary files behind.
	sub := filepath.Join(dir, "sub.png")
	if err := os.Mkdir(sub, 0777); err != nil {
		t.Fatal(err)
	}
	var oe *OutputError
	if err := f.SavePNG(sub, 72); !errors.As(err, &oe) {
		t.Errorf("saving over a directory: want *OutputError, got %v", err)
	}
	if st, err := os.Stat(sub); err != nil || !st.IsDir() {
		t.Errorf("directory target changed: %v", err)
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(ents) != 2 {
		var names []string
		for _, e := range ents {
			names = append(names, e.Name())
		}
		t.Errorf("directory holds %v, want only chart.png and sub.png", names)
	}
}
