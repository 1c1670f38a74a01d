// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Threadplot charts sorter benchmark timings against thread count.
//
// Usage:
//
//	threadplot [options] results.csv
//
// The input is a CSV file with a header row and at least the columns
// sorter_name, thread_count and average_time (in seconds), as written
// by the sorting experiment harness. Threadplot draws one line per
// sorter, with its points ordered by thread count, and writes the
// chart to thread_performance.png in the current directory.
//
// The options are:
//
//	-o file
//		write the chart to file instead of thread_performance.png
//	-errorbars
//		draw the standard_deviation column as error bars
//	-csv
//		print the plotted series to standard output as CSV
//	-v
//		print the input table and a per-sorter summary to standard error
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gonum.org/v1/plot/vg"

	"github.com/pdc-labs/threadplot/benchchart"
	"github.com/pdc-labs/threadplot/internal/plotcmd"
)

var exit = os.Exit // replaced during testing

var (
	flagOutput    = flag.String("o", "thread_performance.png", "write the chart to `file`")
	flagErrorBars = flag.Bool("errorbars", false, "draw the "+plotcmd.StdDevColumn+" column as error bars")
	flagCSV       = flag.Bool("csv", false, "print the plotted series as CSV")
	flagVerbose   = flag.Bool("v", false, "print the input table and a summary of each sorter")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: threadplot [options] results.csv\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	exit(2)
}

func newConfig(output string) *plotcmd.Config {
	return &plotcmd.Config{
		Keys:   []string{"sorter_name"},
		X:      "thread_count",
		Y:      "average_time",
		Output: output,
		Chart: benchchart.Options{
			Title:       "Average Time vs Thread Count by Sorter",
			XLabel:      "Thread Count",
			YLabel:      "Average Time (s)",
			LegendTitle: "Sorter Name",
			Width:       10 * vg.Inch,
			Height:      6 * vg.Inch,
		},
	}
}

func main() {
	log.SetPrefix("threadplot: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
	}

	cfg := newConfig(*flagOutput)
	cfg.ErrorBars = *flagErrorBars
	cfg.CSV = *flagCSV
	cfg.Verbose = *flagVerbose
	if err := plotcmd.Run(cfg, flag.Arg(0), os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}
