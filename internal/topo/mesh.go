// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"
)

// A MeshFilter selects arcs for Mesh. a and b are the indexes of the
// first and last member geometries that reference the arc; for an
// arc used by only one geometry, a == b.
type MeshFilter func(a, b int) bool

// Interior selects arcs shared by two different geometries, such as
// the borders between neighboring states.
func Interior(a, b int) bool {
	return a != b
}

// Mesh returns the arcs of the named object that satisfy filter, one
// line per arc. If filter is nil, every arc referenced by the object
// is returned exactly once.
func (t *Topology) Mesh(object string, filter MeshFilter) (orb.MultiLineString, error) {
	obj, ok := t.Objects[object]
	if !ok {
		return nil, fmt.Errorf("topology has no object %q", object)
	}
	members := obj.Geometries
	if obj.Type != "GeometryCollection" {
		members = []*Object{obj}
	}

	// For each arc, the member geometries that reference it, in
	// order of first reference.
	geomsByArc := make(map[int][]int)
	var order []int
	for gi, g := range members {
		refs, err := arcRefs(g)
		if err != nil {
			return nil, err
		}
		for _, ref := range refs {
			i := ref
			if i < 0 {
				i = ^i
			}
			gs, seen := geomsByArc[i]
			if !seen {
				order = append(order, i)
			}
			if len(gs) == 0 || gs[len(gs)-1] != gi {
				geomsByArc[i] = append(gs, gi)
			}
		}
	}

	var mls orb.MultiLineString
	for _, i := range order {
		gs := geomsByArc[i]
		if filter != nil && !filter(gs[0], gs[len(gs)-1]) {
			continue
		}
		arc, err := t.arc(i)
		if err != nil {
			return nil, err
		}
		mls = append(mls, arc)
	}
	return mls, nil
}

// arcRefs returns every arc reference in g, flattened.
func arcRefs(g *Object) ([]int, error) {
	if len(g.Arcs) == 0 {
		return nil, nil
	}
	var (
		refs []int
		err  error
	)
	switch g.Type {
	case "LineString":
		err = json.Unmarshal(g.Arcs, &refs)
	case "MultiLineString", "Polygon":
		var rings [][]int
		err = json.Unmarshal(g.Arcs, &rings)
		for _, r := range rings {
			refs = append(refs, r...)
		}
	case "MultiPolygon":
		var polys [][][]int
		err = json.Unmarshal(g.Arcs, &polys)
		for _, p := range polys {
			for _, r := range p {
				refs = append(refs, r...)
			}
		}
	}
	if err != nil {
		return nil, fmt.Errorf("geometry %s arcs: %w", rawID(g.ID), err)
	}
	return refs, nil
}
