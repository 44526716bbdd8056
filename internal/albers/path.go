// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package albers

import (
	"math"
	"strconv"

	"github.com/paulmach/orb"
)

// Path returns the SVG path data for g. Polygon rings are closed with
// "Z"; lines are left open.
func (p *Projection) Path(g orb.Geometry) string {
	closed := false
	switch g.(type) {
	case orb.Ring, orb.Polygon, orb.MultiPolygon:
		closed = true
	}
	var path []byte
	for _, ring := range p.Rings(g) {
		for i, pt := range ring {
			if i == 0 {
				path = append(path, 'M')
			} else {
				path = append(path, 'L')
			}
			path = strconv.AppendFloat(path, round1(pt[0]), 'f', -1, 64)
			path = append(path, ',')
			path = strconv.AppendFloat(path, round1(pt[1]), 'f', -1, 64)
		}
		if closed {
			path = append(path, 'Z')
		}
	}
	return string(path)
}

// round1 rounds to a tenth of a pixel to keep path data small.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
