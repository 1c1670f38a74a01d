// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aclements/go-moremath/stats"
)

// A Summary describes the y values of one series.
type Summary struct {
	Label          string
	Points         int
	Min, Max, Mean float64

	// BestX is the x value at which y is smallest. Speedup is the
	// y value of the first point divided by Min.
	BestX   float64
	Speedup float64
}

// Summarize computes a Summary of each series. Series with no points
// are skipped.
func Summarize(series []Series) []Summary {
	var out []Summary
	for _, s := range series {
		if len(s.XYs) == 0 {
			continue
		}
		ys := make([]float64, len(s.XYs))
		best := 0
		for i, pt := range s.XYs {
			ys[i] = pt.Y
			if pt.Y < s.XYs[best].Y {
				best = i
			}
		}
		sum := Summary{
			Label:  s.Label,
			Points: len(ys),
			Mean:   stats.Mean(ys),
			BestX:  s.XYs[best].X,
		}
		sum.Min, sum.Max = stats.Bounds(ys)
		if sum.Min != 0 {
			sum.Speedup = ys[0] / sum.Min
		}
		out = append(out, sum)
	}
	return out
}

// FprintSummary writes a text table of the summaries of series to w.
func FprintSummary(w io.Writer, series []Series) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "series\tpoints\tmin\tmax\tmean\tbest x\tspeedup\t\n")
	for _, s := range Summarize(series) {
		fmt.Fprintf(tw, "%s\t%d\t%.4g\t%.4g\t%.4g\t%g\t%.2fx\t\n", s.Label, s.Points, s.Min, s.Max, s.Mean, s.BestX, s.Speedup)
	}
	return tw.Flush()
}
