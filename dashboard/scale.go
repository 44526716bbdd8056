// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dashboard

import (
	"math"
	"strconv"

	"github.com/aclements/go-moremath/scale"
)

// axis maps a data domain linearly onto a pixel range. r0 is the
// pixel of the domain minimum; r1 may be less than r0 for vertical
// axes.
type axis struct {
	s      scale.Linear
	r0, r1 float64
}

func newAxis(lo, hi, r0, r1 float64) axis {
	if !(hi > lo) {
		// A degenerate domain still needs a usable mapping.
		hi = lo + 1
	}
	return axis{scale.Linear{Min: lo, Max: hi}, r0, r1}
}

func (a axis) domain() (lo, hi float64) {
	return a.s.Min, a.s.Max
}

func (a axis) Map(x float64) float64 {
	return a.r0 + a.s.Map(x)*(a.r1-a.r0)
}

func (a axis) Unmap(px float64) float64 {
	return a.s.Unmap((px - a.r0) / (a.r1 - a.r0))
}

// ticks returns at most max major ticks inside the domain.
func (a axis) ticks(max int) []float64 {
	major, _ := a.s.Ticks(scale.TickOptions{Max: max})
	lo, hi := a.domain()
	eps := (hi - lo) * 1e-9
	out := major[:0:0]
	for _, t := range major {
		if t >= lo-eps && t <= hi+eps {
			out = append(out, t)
		}
	}
	return out
}

// tickFormat returns a formatter that prints ticks with just enough
// decimals to distinguish neighbors.
func tickFormat(ticks []float64) func(float64) string {
	prec := 0
	if len(ticks) > 1 {
		step := math.Abs(ticks[1] - ticks[0])
		if step > 0 && step < 1 {
			prec = int(math.Ceil(-math.Log10(step) - 1e-9))
		}
	}
	return func(x float64) string {
		if x == 0 {
			return "0"
		}
		return strconv.FormatFloat(x, 'f', prec, 64)
	}
}
