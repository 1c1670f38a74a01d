// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Mixplot charts concurrent set benchmark timings against thread
// count, with one line per key distribution and operation mix.
//
// Usage:
//
//	mixplot [options] results.csv chart.png
//
// The input is a CSV file with a header row and at least the columns
// threads, distribution, mix and average_time, with average_time in
// nanoseconds. Mixplot converts times to seconds and labels each
// (distribution, mix) pair as follows:
//
//	Uniform 1:1:8  A1
//	Uniform 1:1:0  A2
//	Normal  1:1:8  B1
//	otherwise      B2
//
// The options are:
//
//	-errorbars
//		draw the standard_deviation column (also in nanoseconds) as error bars
//	-csv
//		print the plotted series to standard output as CSV
//	-v
//		print the input table and a per-series summary to standard error
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gonum.org/v1/plot/vg"

	"github.com/pdc-labs/threadplot/benchchart"
	"github.com/pdc-labs/threadplot/benchtab"
	"github.com/pdc-labs/threadplot/internal/plotcmd"
)

var exit = os.Exit // replaced during testing

var (
	flagErrorBars = flag.Bool("errorbars", false, "draw the "+plotcmd.StdDevColumn+" column as error bars")
	flagCSV       = flag.Bool("csv", false, "print the plotted series as CSV")
	flagVerbose   = flag.Bool("v", false, "print the input table and a summary of each series")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: mixplot [options] results.csv chart.png\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	exit(2)
}

func newConfig(output string) *plotcmd.Config {
	return &plotcmd.Config{
		Keys:    []string{"distribution", "mix"},
		X:       "threads",
		Y:       "average_time",
		Divisor: benchtab.NanosPerSecond,
		Label: func(key []string) string {
			return Label(key[0], key[1])
		},
		Output: output,
		Chart: benchchart.Options{
			Title:       "Average Execution Time vs Number of Threads\nGrouped by Distribution and Mix",
			XLabel:      "Number of Threads",
			YLabel:      "Average Execution Time (s)",
			LegendTitle: "Distribution & Mix",
			Width:       12 * vg.Inch,
			Height:      8 * vg.Inch,
		},
	}
}

func main() {
	log.SetPrefix("mixplot: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
	}

	cfg := newConfig(flag.Arg(1))
	cfg.ErrorBars = *flagErrorBars
	cfg.CSV = *flagCSV
	cfg.Verbose = *flagVerbose
	if err := plotcmd.Run(cfg, flag.Arg(0), os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}
