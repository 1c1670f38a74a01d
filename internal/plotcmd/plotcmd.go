// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotcmd implements the pipeline shared by the chart
// commands: load a CSV file, group and sort its rows, and render one
// line per group to a PNG file.
package plotcmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdc-labs/threadplot/benchchart"
	"github.com/pdc-labs/threadplot/benchtab"
)

// StdDevColumn is the column the benchmark harness writes next to
// each average.
const StdDevColumn = "standard_deviation"

// Config describes one chart command.
type Config struct {
	// Keys are the grouping columns. Each distinct combination of
	// their values becomes one line.
	Keys []string
	// X is the independent variable; rows are sorted by it.
	X string
	// Y is the plotted value.
	Y string

	// Divisor, if non-zero, divides Y (and the error column)
	// before plotting.
	Divisor float64

	// Label returns the legend label for a group key. If nil, the
	// key values are joined with "/".
	Label func(key []string) string

	Chart benchchart.Options

	// Output is the PNG file to write.
	Output string

	// ErrorBars draws the StdDevColumn as y error bars.
	ErrorBars bool
	// CSV writes the plotted series to stdout.
	CSV bool
	// Verbose writes the loaded table and a summary of each series
	// to stderr.
	Verbose bool
}

func (cfg *Config) schema() benchtab.Schema {
	s := benchtab.Schema{Keys: cfg.Keys, Numeric: []string{cfg.X, cfg.Y}}
	if cfg.ErrorBars {
		s.Numeric = append(s.Numeric, StdDevColumn)
	}
	return s
}

func (cfg *Config) label(key []string) string {
	if cfg.Label != nil {
		return cfg.Label(key)
	}
	return strings.Join(key, "/")
}

// Series loads the CSV file at path and returns one series per group
// of rows, in group order.
func Series(cfg *Config, path string, stderr io.Writer) ([]benchchart.Series, error) {
	tab, err := benchtab.Load(path, cfg.schema())
	if err != nil {
		return nil, err
	}
	if cfg.Verbose {
		if err := tab.Fprint(stderr); err != nil {
			return nil, err
		}
	}

	if cfg.Divisor != 0 {
		if tab, err = benchtab.Scale(tab, cfg.Y, cfg.Divisor); err != nil {
			return nil, err
		}
		if cfg.ErrorBars {
			if tab, err = benchtab.Scale(tab, StdDevColumn, cfg.Divisor); err != nil {
				return nil, err
			}
		}
	}

	groups, err := benchtab.GroupBy(tab, cfg.X, cfg.Keys...)
	if err != nil {
		return nil, err
	}
	series := make([]benchchart.Series, 0, len(groups))
	for _, g := range groups {
		s := benchchart.NewSeries(cfg.label(g.Key), g.Floats(cfg.X), g.Floats(cfg.Y))
		if cfg.ErrorBars {
			s.YErr = g.Floats(StdDevColumn)
		}
		series = append(series, s)
	}
	return series, nil
}

// Run reads the CSV file at path, renders it, and writes the chart
// to cfg.Output. Nothing is written to cfg.Output if any earlier step
// fails.
func Run(cfg *Config, path string, stdout, stderr io.Writer) error {
	series, err := Series(cfg, path, stderr)
	if err != nil {
		return err
	}

	fig, err := benchchart.Render(series, cfg.Chart)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}

	if cfg.CSV {
		if err := benchchart.WriteCSV(stdout, series); err != nil {
			return err
		}
	}
	if cfg.Verbose {
		if err := benchchart.FprintSummary(stderr, series); err != nil {
			return err
		}
	}

	if err := fig.SavePNG(cfg.Output, benchchart.DPI); err != nil {
		return err
	}
	if cfg.Verbose {
		fmt.Fprintf(stderr, "wrote %s (%d series)\n", cfg.Output, len(series))
	}
	return nil
}
