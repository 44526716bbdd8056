// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dashboard

import (
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/countyhealth/healthviz/healthdata"
)

// A Point is one county plotted in the scatter plot.
type Point struct {
	ID    string
	X, Y  float64
	State string
}

// A Rect is a rectangle in plot-area pixels, with y growing down.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

func (r Rect) canon() Rect {
	if r.X0 > r.X1 {
		r.X0, r.X1 = r.X1, r.X0
	}
	if r.Y0 > r.Y1 {
		r.Y0, r.Y1 = r.Y1, r.Y0
	}
	return r
}

// A LegendEntry is one state in the scatter plot's legend.
type LegendEntry struct {
	State string `json:"state"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// ScatterPlot plots one attribute against another, one point per
// county, colored by state.
type ScatterPlot struct {
	cfg  ScatterConfig
	data *healthdata.Dataset

	xAttr, yAttr healthdata.Attr

	points   []Point
	excluded int
	x, y     axis

	states []string // distinct non-empty states, in county order
	colors map[string]string
}

// NewScatterPlot returns a scatter plot of data with no attributes
// selected yet. It plots no points until both axes are chosen.
func NewScatterPlot(cfg ScatterConfig, data *healthdata.Dataset) *ScatterPlot {
	s := &ScatterPlot{cfg: cfg}
	s.Update(healthdata.None, healthdata.None, data)
	return s
}

func (s *ScatterPlot) width() float64 {
	return float64(s.cfg.Width - s.cfg.Margin.Left - s.cfg.Margin.Right)
}

func (s *ScatterPlot) height() float64 {
	return float64(s.cfg.Height - s.cfg.Margin.Top - s.cfg.Margin.Bottom)
}

// Attrs returns the selected x and y attributes.
func (s *ScatterPlot) Attrs() (x, y healthdata.Attr) {
	return s.xAttr, s.yAttr
}

// Update selects the x and y attributes and replots. If data is not
// nil, it replaces the plot's dataset. Any brush zoom is discarded.
//
// Counties are plotted only if both values are present and
// non-negative. State colors are assigned afresh from the states
// present in the dataset, so a state's color may differ between
// updates.
func (s *ScatterPlot) Update(xAttr, yAttr healthdata.Attr, data *healthdata.Dataset) {
	s.xAttr, s.yAttr = xAttr, yAttr
	if data != nil {
		s.data = data
	}

	s.points = nil
	s.excluded = 0
	var maxX, maxY float64
	seen := make(map[string]bool)
	s.states = nil
	for _, c := range s.data.Counties {
		st := c.State()
		if st != "" && !seen[st] {
			seen[st] = true
			s.states = append(s.states, st)
		}
		vx, vy := c.Value(xAttr), c.Value(yAttr)
		if !vx.NonNegative() || !vy.NonNegative() {
			s.excluded++
			continue
		}
		s.points = append(s.points, Point{ID: c.ID, X: vx.X, Y: vy.X, State: st})
		maxX = math.Max(maxX, vx.X)
		maxY = math.Max(maxY, vy.X)
	}
	s.colors = categorical(s.states)

	s.x = newAxis(0, maxX*(1+s.cfg.XBuffer), 0, s.width())
	s.y = newAxis(0, maxY*(1+s.cfg.YBuffer), s.height(), 0)
}

// Points returns the plotted points.
func (s *ScatterPlot) Points() []Point {
	return s.points
}

// Excluded returns the number of counties left out because either
// value was missing or negative.
func (s *ScatterPlot) Excluded() int {
	return s.excluded
}

// Domains returns the current x and y axis domains.
func (s *ScatterPlot) Domains() (x, y [2]float64) {
	x[0], x[1] = s.x.domain()
	y[0], y[1] = s.y.domain()
	return
}

// Brush zooms both axes to the data bounds under r, given in
// plot-area pixels. An empty selection leaves the domains unchanged
// and returns false. Brushing changes only what is displayed.
func (s *ScatterPlot) Brush(r Rect) bool {
	r = r.canon()
	r.X0, r.X1 = clamp(r.X0, 0, s.width()), clamp(r.X1, 0, s.width())
	r.Y0, r.Y1 = clamp(r.Y0, 0, s.height()), clamp(r.Y1, 0, s.height())
	if r.X0 == r.X1 || r.Y0 == r.Y1 {
		return false
	}
	x0, x1 := s.x.Unmap(r.X0), s.x.Unmap(r.X1)
	// Pixel y grows down, so the bottom edge is the lower bound.
	y0, y1 := s.y.Unmap(r.Y1), s.y.Unmap(r.Y0)
	s.x = newAxis(x0, x1, 0, s.width())
	s.y = newAxis(y0, y1, s.height(), 0)
	return true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Color returns the color of points in state st.
func (s *ScatterPlot) Color(st string) string {
	if c, ok := s.colors[st]; ok {
		return c
	}
	return cssColor(noDataColor)
}

// LegendEntries returns one entry per state present in the dataset.
// Counties whose names carry no state are not listed.
func (s *ScatterPlot) LegendEntries() []LegendEntry {
	out := make([]LegendEntry, len(s.states))
	for i, st := range s.states {
		out[i] = LegendEntry{State: st, Name: healthdata.StateName(st), Color: s.colors[st]}
	}
	return out
}

func axisLabel(a healthdata.Attr, def string) string {
	if a == healthdata.None {
		return def
	}
	return a.Label()
}

// Render writes the plot as an SVG document.
func (s *ScatterPlot) Render(w io.Writer) error {
	ew := &errWriter{w: w}
	cfg := s.cfg
	width, height := int(s.width()), int(s.height())
	canvas := svg.New(ew)
	canvas.Start(cfg.Width, cfg.Height, `class="scatterplot"`)
	canvas.Group(attr("transform", translate(cfg.Margin.Left, cfg.Margin.Top)))

	xTicks, yTicks := s.x.ticks(10), s.y.ticks(10)
	axisBottom(canvas, s.x, height, xTicks, tickFormat(xTicks))
	axisLeft(canvas, s.y, 0, yTicks, tickFormat(yTicks))
	canvas.Text(width/2, height+50, axisLabel(s.xAttr, "X Axis"), `class="x-axis-label"`, `text-anchor="middle"`)
	canvas.Text(-height/2, -60, axisLabel(s.yAttr, "Y Axis"), `class="y-axis-label"`, `text-anchor="middle"`, `transform="rotate(-90)"`)

	canvas.ClipPath(`id="scatterplot-clip"`)
	canvas.Rect(0, 0, width, height)
	canvas.ClipEnd()

	canvas.Group(`clip-path="url(#scatterplot-clip)"`)
	for _, p := range s.points {
		canvas.Circle(px(s.x.Map(p.X)), px(s.y.Map(p.Y)), cfg.Radius, `class="circle"`, attr("fill", s.Color(p.State)), attr("data-id", p.ID))
	}
	canvas.Gend()

	// The page draws the brush selection over this overlay.
	canvas.Rect(0, 0, width, height, `class="brush overlay"`, `fill="none"`, `pointer-events="all"`)
	canvas.Gend()
	canvas.End()
	return ew.err
}

// RenderLegend writes the state legend as an SVG document.
func (s *ScatterPlot) RenderLegend(w io.Writer) error {
	ew := &errWriter{w: w}
	cfg := s.cfg
	entries := s.LegendEntries()
	row := cfg.LegendRow
	canvas := svg.New(ew)
	canvas.Start(cfg.LegendWidth, row*(len(entries)+1)+row/2, `class="legend"`)
	canvas.Text(0, row-4, "State Legend", `class="legend-title"`, `font-weight="bold"`)
	for i, e := range entries {
		y := row * (i + 1)
		canvas.Rect(0, y, cfg.LegendWidth, row-2, `class="legend-item"`, attr("fill", e.Color))
		canvas.Text(4, y+row-6, e.Name, `font-size="11"`)
	}
	canvas.End()
	return ew.err
}
