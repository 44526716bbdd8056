// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package albers implements the composite Albers USA projection used
// to draw U.S. counties: a conic equal-area projection of the lower
// 48 states with Alaska and Hawaii moved into insets.
package albers

import (
	"math"

	"github.com/paulmach/orb"
)

const radians = math.Pi / 180

// conic is a conic equal-area projection with its center mapped to
// the translation point.
type conic struct {
	rotate   float64 // degrees added to longitude
	n, c, r0 float64
	k        float64
	tx, ty   float64
	cx, cy   float64 // projected center in unit coordinates
}

func newConic(rotate, centerLon, centerLat, phi0, phi1, k, tx, ty float64) *conic {
	sy0 := math.Sin(phi0 * radians)
	n := (sy0 + math.Sin(phi1*radians)) / 2
	c := 1 + sy0*(2*n-sy0)
	p := &conic{rotate: rotate, n: n, c: c, r0: math.Sqrt(c) / n, k: k, tx: tx, ty: ty}
	p.cx, p.cy = p.raw(centerLon, centerLat)
	return p
}

// raw projects rotated coordinates, in degrees, into unit space.
func (p *conic) raw(lon, lat float64) (x, y float64) {
	lambda := lon * radians
	phi := lat * radians
	r := math.Sqrt(p.c-2*p.n*math.Sin(phi)) / p.n
	return r * math.Sin(lambda*p.n), p.r0 - r*math.Cos(lambda*p.n)
}

func (p *conic) project(pt orb.Point) orb.Point {
	lon := pt[0] + p.rotate
	for lon > 180 {
		lon -= 360
	}
	for lon < -180 {
		lon += 360
	}
	x, y := p.raw(lon, pt[1])
	return orb.Point{p.tx + p.k*(x-p.cx), p.ty - p.k*(y-p.cy)}
}

// Projection maps longitude/latitude points to screen coordinates.
type Projection struct {
	lower48, alaska, hawaii *conic
}

// New returns an Albers USA projection with the given scale that
// places the center of the lower 48 at (tx, ty).
func New(scale, tx, ty float64) *Projection {
	k := scale
	return &Projection{
		lower48: newConic(96, -0.6, 38.7, 29.5, 45.5, k, tx, ty),
		alaska:  newConic(154, -2, 58.5, 55, 65, 0.35*k, tx-0.307*k, ty+0.201*k),
		hawaii:  newConic(157, -3, 19.9, 8, 18, k, tx-0.205*k, ty+0.212*k),
	}
}

// inset chooses the sub-projection for a region from one of its
// points. The western Aleutians lie east of the antimeridian.
func (p *Projection) inset(pt orb.Point) *conic {
	switch {
	case pt[1] > 50 && (pt[0] < -140 || pt[0] > 170):
		return p.alaska
	case pt[0] < -150 && pt[1] < 30:
		return p.hawaii
	}
	return p.lower48
}

// Point projects a single point.
func (p *Projection) Point(pt orb.Point) orb.Point {
	return p.inset(pt).project(pt)
}

// Rings projects g into a list of rings or lines in screen space.
// All points of g use the same inset, chosen from g's first point,
// so a region is never split across insets.
func (p *Projection) Rings(g orb.Geometry) [][]orb.Point {
	first, ok := firstPoint(g)
	if !ok {
		return nil
	}
	c := p.inset(first)
	var out [][]orb.Point
	emit := func(ls []orb.Point) {
		if len(ls) == 0 {
			return
		}
		proj := make([]orb.Point, len(ls))
		for i, pt := range ls {
			proj[i] = c.project(pt)
		}
		out = append(out, proj)
	}
	switch g := g.(type) {
	case orb.LineString:
		emit(g)
	case orb.MultiLineString:
		for _, ls := range g {
			emit(ls)
		}
	case orb.Ring:
		emit(g)
	case orb.Polygon:
		for _, r := range g {
			emit(r)
		}
	case orb.MultiPolygon:
		for _, poly := range g {
			for _, r := range poly {
				emit(r)
			}
		}
	}
	return out
}

func firstPoint(g orb.Geometry) (orb.Point, bool) {
	switch g := g.(type) {
	case orb.Point:
		return g, true
	case orb.LineString:
		if len(g) > 0 {
			return g[0], true
		}
	case orb.MultiLineString:
		for _, ls := range g {
			if len(ls) > 0 {
				return ls[0], true
			}
		}
	case orb.Ring:
		if len(g) > 0 {
			return g[0], true
		}
	case orb.Polygon:
		for _, r := range g {
			if len(r) > 0 {
				return r[0], true
			}
		}
	case orb.MultiPolygon:
		for _, poly := range g {
			for _, r := range poly {
				if len(r) > 0 {
					return r[0], true
				}
			}
		}
	}
	return orb.Point{}, false
}
