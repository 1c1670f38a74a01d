// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart renders benchmark series as line charts and
// exports them as PNG images.
package benchchart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Series is one line of a chart.
type Series struct {
	Label string
	XYs   plotter.XYs

	// YErr, if non-nil, gives a symmetric error for each point,
	// drawn as a vertical error bar.
	YErr []float64
}

// NewSeries returns a Series with points (xs[i], ys[i]).
func NewSeries(label string, xs, ys []float64) Series {
	if len(xs) != len(ys) {
		panic(fmt.Sprintf("series %q: %d x values but %d y values", label, len(xs), len(ys)))
	}
	xys := make(plotter.XYs, len(xs))
	for i := range xs {
		xys[i].X, xys[i].Y = xs[i], ys[i]
	}
	return Series{Label: label, XYs: xys}
}

// Options control the text and base size of a chart.
type Options struct {
	Title       string
	XLabel      string
	YLabel      string
	LegendTitle string

	// Width and Height give the size of the axes region, before
	// the legend is added to the right. They default to 10x6
	// inches.
	Width, Height vg.Length
}

const (
	titleSize = 14
	labelSize = 12

	lineWidth  = 2
	markerSize = 6
)

// legendGap is the space between the axes and the legend, as a
// fraction of the base width.
const legendGap = 0.05

var gridColor = color.NRGBA{0xb0, 0xb0, 0xb0, 0x4d} // 30% alpha

// A Figure is a rendered chart with its legend placed to the right
// of the axes.
type Figure struct {
	plot *plot.Plot

	legend      plot.Legend
	legendTitle string

	width, height vg.Length // Axes region
	legendWidth   vg.Length // Gap, legend and right margin
	legendHeight  vg.Length
}

// Render builds a Figure with one line per series, in order.
func Render(series []Series, opts Options) (*Figure, error) {
	if opts.Width == 0 {
		opts.Width = 10 * vg.Inch
	}
	if opts.Height == 0 {
		opts.Height = 6 * vg.Inch
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.Title.TextStyle.Font.Size = titleSize
	p.X.Label.Text = opts.XLabel
	p.X.Label.TextStyle.Font.Size = labelSize
	p.Y.Label.Text = opts.YLabel
	p.Y.Label.TextStyle.Font.Size = labelSize

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Horizontal.Color = gridColor
	p.Add(grid)

	// p.Legend stays empty so the plot does not draw it inside
	// the axes; Figure.Draw draws this copy outside.
	legend := p.Legend
	legend.Top = true
	legend.Left = true

	for i, s := range series {
		if s.YErr != nil && len(s.YErr) != len(s.XYs) {
			return nil, fmt.Errorf("series %q: %d points but %d errors", s.Label, len(s.XYs), len(s.YErr))
		}
		line, points, err := plotter.NewLinePoints(s.XYs)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Label, err)
		}
		clr := plotutil.Color(i)
		line.LineStyle.Color = clr
		line.LineStyle.Width = vg.Points(lineWidth)
		points.GlyphStyle = draw.GlyphStyle{
			Color:  clr,
			Radius: vg.Points(markerSize / 2),
			Shape:  draw.CircleGlyph{},
		}
		p.Add(line, points)

		if s.YErr != nil {
			bars, err := plotter.NewYErrorBars(errorPoints{s.XYs, yErrors(s.YErr)})
			if err != nil {
				return nil, fmt.Errorf("series %q: %w", s.Label, err)
			}
			bars.LineStyle.Color = clr
			p.Add(bars)
		}

		legend.Add(s.Label, line, points)
	}

	f := &Figure{
		plot:        p,
		legend:      legend,
		legendTitle: opts.LegendTitle,
		width:       opts.Width,
		height:      opts.Height,
	}
	f.measureLegend(series)
	return f, nil
}

// measureLegend sizes the legend column so nothing in it is clipped.
func (f *Figure) measureLegend(series []Series) {
	sty := f.legend.TextStyle
	var w vg.Length
	if f.legendTitle != "" {
		w = sty.Width(f.legendTitle)
	}
	var h vg.Length
	for i, s := range series {
		w = vg.Length(math.Max(float64(w), float64(f.legend.ThumbnailWidth+sty.Width(" "+s.Label))))
		h += sty.Height(s.Label)
		if i > 0 {
			h += f.legend.Padding
		}
	}
	gap := f.width * legendGap
	margin := vg.Points(markerSize)
	f.legendWidth = gap + w + margin
	f.legendHeight = f.titleHeight() + f.legendTitleHeight() + h + margin
}

// titleHeight is the height of the plot title, which the legend
// is placed below so its top lines up with the axes.
func (f *Figure) titleHeight() vg.Length {
	if f.plot.Title.Text == "" {
		return 0
	}
	return f.plot.Title.TextStyle.Height(f.plot.Title.Text) + f.plot.Title.Padding
}

func (f *Figure) legendTitleHeight() vg.Length {
	if f.legendTitle == "" {
		return 0
	}
	return f.legend.TextStyle.Height(f.legendTitle) + f.legend.Padding
}

// Size returns the size of the whole figure: the axes region
// widened by the legend column, and heightened if the legend is
// taller than the axes.
func (f *Figure) Size() (width, height vg.Length) {
	height = f.height
	if f.legendHeight > height {
		height = f.legendHeight
	}
	return f.width + f.legendWidth, height
}

// Draw draws the figure on c. The axes fill c less the legend column
// on the right.
func (f *Figure) Draw(c draw.Canvas) {
	size := c.Size()
	axes := draw.Crop(c, 0, -f.legendWidth, 0, 0)
	if extra := size.Y - f.height; extra > 0 {
		axes = draw.Crop(axes, 0, 0, extra, 0)
	}
	f.plot.Draw(axes)

	lc := draw.Crop(c, size.X-f.legendWidth+f.width*legendGap, 0, 0, -f.titleHeight())
	if f.legendTitle != "" {
		sty := f.legend.TextStyle
		sty.XAlign = draw.XLeft
		sty.YAlign = draw.YTop
		lc.FillText(sty, vg.Point{X: lc.Min.X, Y: lc.Max.Y}, f.legendTitle)
		lc = draw.Crop(lc, 0, 0, 0, -f.legendTitleHeight())
	}
	f.legend.Draw(lc)
}

// errorPoints adapts a series with symmetric errors to
// plotter.YErrorBars.
type errorPoints struct {
	plotter.XYs
	plotter.YErrors
}

func yErrors(errs []float64) plotter.YErrors {
	ye := make(plotter.YErrors, len(errs))
	for i, e := range errs {
		ye[i].Low, ye[i].High = e, e
	}
	return ye
}
