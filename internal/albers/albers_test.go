// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package albers

import (
	"math"
	"strings"
	"testing"

	"github.com/paulmach/orb"
)

func TestCenter(t *testing.T) {
	p := New(1000, 480, 250)
	got := p.Point(orb.Point{-96.6, 38.7})
	if math.Abs(got[0]-480) > 1e-9 || math.Abs(got[1]-250) > 1e-9 {
		t.Errorf("center projected to %v, want [480 250]", got)
	}
}

func TestOrientation(t *testing.T) {
	p := New(1000, 480, 250)
	west := p.Point(orb.Point{-120, 38.7})
	east := p.Point(orb.Point{-75, 38.7})
	north := p.Point(orb.Point{-96.6, 47})
	if !(west[0] < 480 && east[0] > 480) {
		t.Errorf("west %v and east %v not on either side of center", west, east)
	}
	if !(north[1] < 250) {
		t.Errorf("north %v not above center", north)
	}
}

func TestInsets(t *testing.T) {
	p := New(1000, 480, 250)
	for _, test := range []struct {
		name string
		pt   orb.Point
	}{
		{"Alaska", orb.Point{-150, 61}},
		{"Hawaii", orb.Point{-157, 20.5}},
		{"Aleutians east of 180", orb.Point{175, 52}},
	} {
		got := p.Point(test.pt)
		if !(got[0] < 480 && got[1] > 250) {
			t.Errorf("%s projected to %v, want lower left of center", test.name, got)
		}
		if got[0] < 0 || got[1] > 500 {
			t.Errorf("%s projected to %v, outside 960x500 frame", test.name, got)
		}
	}
}

func TestAntimeridian(t *testing.T) {
	p := New(1000, 480, 250)
	east := orb.Polygon{{{175, 52}, {176, 52}, {176, 53}, {175, 53}, {175, 52}}}
	west := orb.Polygon{{{-170, 52}, {-169, 52}, {-169, 53}, {-170, 53}, {-170, 52}}}
	alone := p.Rings(west)
	rings := p.Rings(orb.MultiPolygon{east, west})
	if len(rings) != 2 {
		t.Fatalf("got %d rings, want 2", len(rings))
	}
	if !cmpPoints(rings[1], alone[0]) {
		t.Errorf("western ring projected to %v, want %v as on its own", rings[1], alone[0])
	}
	for _, ring := range rings {
		for _, pt := range ring {
			if pt[0] < 0 || pt[0] > 960 || pt[1] < 0 || pt[1] > 500 {
				t.Errorf("point %v outside 960x500 frame", pt)
			}
		}
	}
}

func cmpPoints(a, b []orb.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i][0]-b[i][0]) > 1e-9 || math.Abs(a[i][1]-b[i][1]) > 1e-9 {
			return false
		}
	}
	return true
}

func TestPath(t *testing.T) {
	p := New(1000, 480, 250)
	sq := orb.Polygon{{{-100, 40}, {-99, 40}, {-99, 41}, {-100, 41}, {-100, 40}}}
	d := p.Path(sq)
	if !strings.HasPrefix(d, "M") || !strings.HasSuffix(d, "Z") {
		t.Errorf("polygon path %q not a closed path", d)
	}
	if n := strings.Count(d, "L"); n != 4 {
		t.Errorf("polygon path has %d line segments, want 4", n)
	}

	line := orb.LineString{{-100, 40}, {-99, 40}}
	if d := p.Path(line); strings.HasSuffix(d, "Z") {
		t.Errorf("line path %q is closed", d)
	}

	if d := p.Path(nil); d != "" {
		t.Errorf("nil geometry path = %q, want empty", d)
	}
}
