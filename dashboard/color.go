// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dashboard

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/palette"
)

// noDataColor is used where a pattern cannot be, such as in raster
// output and for points without a state.
var noDataColor = color.RGBA{0xdd, 0xdd, 0xdd, 0xff}

// parseHex parses a "#rgb" or "#rrggbb" color.
func parseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 || !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q", s)
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, nil
}

func mustHex(s string) color.RGBA {
	c, err := parseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// cssColor formats c as "#rrggbb", ignoring alpha.
func cssColor(c color.Color) string {
	r, g, b, a := c.RGBA()
	if a != 0 && a != 0xffff {
		r, g, b = r*0xffff/a, g*0xffff/a, b*0xffff/a
	}
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

// gradient interpolates evenly between colors over [0, 1].
//
// palette.RGBGradient returns its first color for the whole first
// segment, so the first color is doubled and t is remapped to start
// in the second segment.
type gradient struct {
	g palette.RGBGradient
}

func newGradient(colors ...color.RGBA) gradient {
	padded := append([]color.RGBA{colors[0]}, colors...)
	return gradient{palette.RGBGradient{Colors: padded}}
}

func (g gradient) Map(t float64) color.Color {
	m := float64(len(g.g.Colors) - 1)
	return g.g.Map((1 + t*(m-1)) / m)
}

// ramp is a continuous color scale over a numeric domain.
type ramp struct {
	pal    palette.Continuous
	lo, hi float64
}

func newRamp(low, high string) ramp {
	return ramp{pal: newGradient(mustHex(low), mustHex(high))}
}

func (r ramp) Map(x float64) color.Color {
	t := 0.5
	if r.hi > r.lo {
		t = (x - r.lo) / (r.hi - r.lo)
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return r.pal.Map(t)
}

// rainbow spans the hue circle once.
var rainbow = newGradient(
	color.RGBA{0x6e, 0x40, 0xaa, 0xff},
	color.RGBA{0xbf, 0x3c, 0xaf, 0xff},
	color.RGBA{0xfe, 0x4b, 0x83, 0xff},
	color.RGBA{0xff, 0x78, 0x47, 0xff},
	color.RGBA{0xe2, 0xb7, 0x2f, 0xff},
	color.RGBA{0xaf, 0xf0, 0x5b, 0xff},
	color.RGBA{0x52, 0xf6, 0x67, 0xff},
	color.RGBA{0x1d, 0xdf, 0xa3, 0xff},
	color.RGBA{0x23, 0xab, 0xd8, 0xff},
	color.RGBA{0x4c, 0x6e, 0xdb, 0xff},
)

// categorical assigns each key a distinct color sampled evenly from
// the rainbow, in key order.
func categorical(keys []string) map[string]string {
	m := make(map[string]string, len(keys))
	for i, k := range keys {
		t := 0.0
		if len(keys) > 1 {
			t = float64(i) / float64(len(keys)-1)
		}
		m[k] = cssColor(rainbow.Map(t))
	}
	return m
}
