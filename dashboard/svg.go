// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dashboard

import (
	"fmt"
	"html"
	"math"

	svg "github.com/ajstarks/svgo"
)

const tickSize = 6

// attr formats an SVG attribute for svgo's variadic style arguments,
// escaping the value.
func attr(name, value string) string {
	return fmt.Sprintf(`%s="%s"`, name, html.EscapeString(value))
}

func px(x float64) int {
	return int(math.Round(x))
}

func translate(x, y int) string {
	return fmt.Sprintf("translate(%d,%d)", x, y)
}

// axisBottom draws a horizontal axis along y = y0 with tick labels
// below it.
func axisBottom(canvas *svg.SVG, a axis, y0 int, ticks []float64, label func(float64) string) {
	canvas.Group(`class="x-axis"`)
	r0, r1 := px(a.r0), px(a.r1)
	canvas.Path(fmt.Sprintf("M%d,%dV%dH%dV%d", r0, y0+tickSize, y0, r1, y0+tickSize), `class="domain"`, `fill="none"`, `stroke="currentColor"`)
	for _, t := range ticks {
		x := px(a.Map(t))
		canvas.Line(x, y0, x, y0+tickSize, `stroke="currentColor"`)
		canvas.Text(x, y0+tickSize+12, label(t), `class="tick"`, `text-anchor="middle"`, `font-size="10"`)
	}
	canvas.Gend()
}

// axisLeft draws a vertical axis along x = x0 with tick labels to its
// left.
func axisLeft(canvas *svg.SVG, a axis, x0 int, ticks []float64, label func(float64) string) {
	canvas.Group(`class="y-axis"`)
	r0, r1 := px(a.r0), px(a.r1)
	canvas.Path(fmt.Sprintf("M%d,%dH%dV%dH%d", x0-tickSize, r0, x0, r1, x0-tickSize), `class="domain"`, `fill="none"`, `stroke="currentColor"`)
	for _, t := range ticks {
		y := px(a.Map(t))
		canvas.Line(x0-tickSize, y, x0, y, `stroke="currentColor"`)
		canvas.Text(x0-tickSize-3, y+3, label(t), `class="tick"`, `text-anchor="end"`, `font-size="10"`)
	}
	canvas.Gend()
}
