// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dashboard

import (
	"io"
	"math"
	"strconv"

	"github.com/aclements/go-moremath/stats"
	svg "github.com/ajstarks/svgo"

	"github.com/countyhealth/healthviz/healthdata"
)

// A Bin is one histogram bucket covering [X0, X1).
type Bin struct {
	X0, X1 float64
	Count  int
}

// Histogram shows the distribution of one attribute across counties.
//
// A new Histogram is idle: it draws nothing until the first Update
// with an attribute other than healthdata.None.
type Histogram struct {
	cfg  HistogramConfig
	data *healthdata.Dataset
	attr healthdata.Attr

	bins   []Bin
	x, y   axis
	xTicks []float64
}

// NewHistogram returns an idle histogram over data.
func NewHistogram(cfg HistogramConfig, data *healthdata.Dataset) *Histogram {
	return &Histogram{cfg: cfg, data: data}
}

// Attr returns the attribute the histogram shows, or healthdata.None
// while idle.
func (h *Histogram) Attr() healthdata.Attr {
	return h.attr
}

// Update rebuilds the histogram for attribute a. If data is not nil,
// it replaces the histogram's dataset.
//
// Update with healthdata.None does nothing at all, so the previous
// drawing stays in place.
func (h *Histogram) Update(a healthdata.Attr, data *healthdata.Dataset) {
	if a == healthdata.None {
		return
	}
	h.attr = a
	if data != nil {
		h.data = data
	}

	xs := h.data.Values(a)
	max := 0.0
	if len(xs) > 0 {
		_, max = stats.Bounds(xs)
	}
	hi := max + math.Max(max*h.cfg.Buffer, h.cfg.MinBuffer)

	hist := stats.NewLinearHist(0, hi, h.cfg.Bins)
	for _, x := range xs {
		hist.Add(x)
	}
	under, counts, over := hist.Counts()
	h.bins = make([]Bin, len(counts))
	for i, n := range counts {
		h.bins[i] = Bin{
			X0:    hist.BinToValue(float64(i)),
			X1:    hist.BinToValue(float64(i + 1)),
			Count: int(n),
		}
	}
	// Values are never below 0 or above hi, but rounding at the
	// edges must not lose any.
	h.bins[0].Count += int(under)
	h.bins[len(h.bins)-1].Count += int(over)

	maxCount := 0
	for _, b := range h.bins {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}
	h.x = newAxis(0, hi, 0, float64(h.cfg.Width))
	h.y = newAxis(0, float64(maxCount), float64(h.cfg.Height), 0)
	h.xTicks = h.x.ticks(10)
}

// Bins returns the current buckets, or nil while idle.
func (h *Histogram) Bins() []Bin {
	return h.bins
}

// Domain returns the x axis domain.
func (h *Histogram) Domain() (lo, hi float64) {
	return h.x.domain()
}

// XTicks returns the x axis tick positions.
func (h *Histogram) XTicks() []float64 {
	return h.xTicks
}

// TickLabel returns the x axis label for v. Urban/rural status is
// labeled with its categories, and positions between categories are
// left blank.
func (h *Histogram) TickLabel(v float64) string {
	if h.attr == healthdata.UrbanRuralStatus {
		return healthdata.UrbanRuralLabel(v)
	}
	return tickFormat(h.xTicks)(v)
}

// Render writes the histogram as an SVG document. An idle histogram
// is an empty canvas.
func (h *Histogram) Render(w io.Writer) error {
	ew := &errWriter{w: w}
	cfg := h.cfg
	canvas := svg.New(ew)
	canvas.Start(cfg.Width+cfg.Margin.Left+cfg.Margin.Right, cfg.Height+cfg.Margin.Top+cfg.Margin.Bottom, `class="histogram"`)
	if h.attr != healthdata.None {
		canvas.Group(attr("transform", translate(cfg.Margin.Left, cfg.Margin.Top)))
		h.render(canvas)
		canvas.Gend()
	}
	canvas.End()
	return ew.err
}

func (h *Histogram) render(canvas *svg.SVG) {
	cfg := h.cfg
	axisBottom(canvas, h.x, cfg.Height, h.xTicks, h.TickLabel)
	yTicks := h.y.ticks(10)
	axisLeft(canvas, h.y, 0, yTicks, countLabel)

	for _, b := range h.bins {
		x0, x1 := px(h.x.Map(b.X0)), px(h.x.Map(b.X1))
		top := px(h.y.Map(float64(b.Count)))
		width := x1 - x0 - 1
		if width < 0 {
			width = 0
		}
		canvas.Rect(x0, top, width, cfg.Height-top, `class="bar"`, attr("fill", cfg.BarColor))
	}
	for _, b := range h.bins {
		mid := px(h.x.Map((b.X0 + b.X1) / 2))
		top := px(h.y.Map(float64(b.Count)))
		canvas.Text(mid, top-5, strconv.Itoa(b.Count), `class="data-mark"`, `text-anchor="middle"`, `font-size="10"`)
	}

	canvas.Text(cfg.Width/2, cfg.Height+cfg.Margin.Top+30, h.attr.Label(), `class="x-axis-title"`, `text-anchor="middle"`)
	canvas.Text(-cfg.Height/2, -cfg.Margin.Left+20, "Frequency", `class="y-axis-title"`, `transform="rotate(-90)"`, `text-anchor="middle"`)
}

// countLabel labels count ticks, dropping fractional ones.
func countLabel(v float64) string {
	if v != math.Trunc(v) {
		return ""
	}
	return strconv.Itoa(int(v))
}
