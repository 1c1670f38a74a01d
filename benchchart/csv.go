// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteCSV writes the points of each series to out, one row per
// point, with columns label, x, y and, if any series has errors,
// yerr.
func WriteCSV(out io.Writer, series []Series) error {
	withErr := false
	for _, s := range series {
		if s.YErr != nil {
			withErr = true
		}
	}

	hdr := []string{"label", "x", "y"}
	if withErr {
		hdr = append(hdr, "yerr")
	}
	tab := [][]string{hdr}
	for _, s := range series {
		for i, pt := range s.XYs {
			row := []string{s.Label, strof(pt.X), strof(pt.Y)}
			if withErr {
				if s.YErr != nil {
					row = append(row, strof(s.YErr[i]))
				} else {
					row = append(row, "")
				}
			}
			tab = append(tab, row)
		}
	}

	csvw := csv.NewWriter(out)
	return csvw.WriteAll(tab)
}

func strof(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
