// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dashboard

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Raster draws the map's county fills into an image of the map's
// configured size. Counties without data are drawn in a flat gray.
func (m *ChoroplethMap) Raster() *image.RGBA {
	cfg := m.cfg
	dst := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	var z vector.Rasterizer
	for i, c := range m.data.Counties {
		rings := m.proj.Rings(c.Geometry)
		if len(rings) == 0 {
			continue
		}
		// Rasterize each county in its own bounding box so the
		// mask stays small.
		bb := image.Rectangle{Min: image.Pt(math.MaxInt32, math.MaxInt32), Max: image.Pt(math.MinInt32, math.MinInt32)}
		for _, ring := range rings {
			for _, p := range ring {
				x, y := p[0]+float64(cfg.Margin.Left), p[1]+float64(cfg.Margin.Top)
				bb.Min.X = min(bb.Min.X, int(math.Floor(x)))
				bb.Min.Y = min(bb.Min.Y, int(math.Floor(y)))
				bb.Max.X = max(bb.Max.X, int(math.Ceil(x))+1)
				bb.Max.Y = max(bb.Max.Y, int(math.Ceil(y))+1)
			}
		}
		bb = bb.Intersect(dst.Bounds())
		if bb.Empty() {
			continue
		}
		z.Reset(bb.Dx(), bb.Dy())
		ox := float64(cfg.Margin.Left - bb.Min.X)
		oy := float64(cfg.Margin.Top - bb.Min.Y)
		for _, ring := range rings {
			for j, p := range ring {
				x, y := float32(p[0]+ox), float32(p[1]+oy)
				if j == 0 {
					z.MoveTo(x, y)
				} else {
					z.LineTo(x, y)
				}
			}
			z.ClosePath()
		}
		var fill color.Color = noDataColor
		if m.fills[i] != "" {
			fill = mustHex(m.fills[i])
		}
		z.Draw(dst, bb, image.NewUniform(fill), image.Point{})
	}
	return dst
}

// WritePNG writes map m as a PNG image scaled to width x height.
// If only one of width and height is positive, the other follows
// from the aspect ratio. If neither is, the image is written at full
// size.
func WritePNG(w io.Writer, m *ChoroplethMap, width, height int) error {
	var img image.Image = m.Raster()
	sb := img.Bounds()
	switch {
	case width <= 0 && height <= 0:
		return png.Encode(w, img)
	case width <= 0:
		width = max(1, sb.Dx()*height/sb.Dy())
	case height <= 0:
		height = max(1, sb.Dy()*width/sb.Dx())
	}
	if width != sb.Dx() || height != sb.Dy() {
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.BiLinear.Scale(dst, dst.Bounds(), img, sb, draw.Over, nil)
		img = dst
	}
	return png.Encode(w, img)
}
