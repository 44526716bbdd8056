// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package topo decodes TopoJSON topologies and GeoJSON feature
// collections into orb geometries.
//
// A TopoJSON topology stores shared boundaries once, as arcs, and
// each geometry refers to arcs by index. A negative index ~i refers
// to arc i traversed in reverse. Quantized topologies store arcs as
// integer deltas that must be accumulated and then mapped through
// the topology's transform.
package topo

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/paulmach/orb"
)

// A Feature is one region of a topology object.
type Feature struct {
	// ID is the geometry's identifier. Numeric identifiers are
	// formatted as decimal strings.
	ID string

	// Name is the "name" property, if any.
	Name string

	Geometry orb.Geometry
}

// Topology is a decoded TopoJSON topology.
type Topology struct {
	Objects map[string]*Object

	// arcs are the decoded (absolute, untransformed) arc
	// coordinates.
	arcs []orb.LineString
}

// Object is a TopoJSON geometry object. GeometryCollections carry
// their members in Geometries; other types carry arc references in
// Arcs.
type Object struct {
	Type       string                 `json:"type"`
	ID         json.RawMessage        `json:"id"`
	Properties map[string]interface{} `json:"properties"`
	Arcs       json.RawMessage        `json:"arcs"`
	Geometries []*Object              `json:"geometries"`
}

type transform struct {
	Scale     [2]float64 `json:"scale"`
	Translate [2]float64 `json:"translate"`
}

type rawTopology struct {
	Type      string             `json:"type"`
	Transform *transform         `json:"transform"`
	Objects   map[string]*Object `json:"objects"`
	Arcs      [][][]float64      `json:"arcs"`
}

// Decode reads a TopoJSON topology from r.
func Decode(r io.Reader) (*Topology, error) {
	var raw rawTopology
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode topology: %w", err)
	}
	return fromRaw(&raw)
}

func fromRaw(raw *rawTopology) (*Topology, error) {
	if raw.Type != "Topology" {
		return nil, fmt.Errorf("decode topology: type is %q, want \"Topology\"", raw.Type)
	}
	t := &Topology{Objects: raw.Objects, arcs: make([]orb.LineString, len(raw.Arcs))}
	for i, arc := range raw.Arcs {
		ls := make(orb.LineString, len(arc))
		var x, y float64
		for j, pos := range arc {
			if len(pos) < 2 {
				return nil, fmt.Errorf("decode topology: arc %d position %d has %d coordinates", i, j, len(pos))
			}
			if raw.Transform == nil {
				ls[j] = orb.Point{pos[0], pos[1]}
				continue
			}
			x += pos[0]
			y += pos[1]
			ls[j] = orb.Point{
				x*raw.Transform.Scale[0] + raw.Transform.Translate[0],
				y*raw.Transform.Scale[1] + raw.Transform.Translate[1],
			}
		}
		t.arcs[i] = ls
	}
	return t, nil
}

// Features returns the members of the named object. If the object
// is not a GeometryCollection, it returns the object itself as a
// single feature.
func (t *Topology) Features(object string) ([]Feature, error) {
	obj, ok := t.Objects[object]
	if !ok {
		return nil, fmt.Errorf("topology has no object %q", object)
	}
	members := obj.Geometries
	if obj.Type != "GeometryCollection" {
		members = []*Object{obj}
	}
	fs := make([]Feature, 0, len(members))
	for _, g := range members {
		geom, err := t.geometry(g)
		if err != nil {
			return nil, err
		}
		f := Feature{ID: rawID(g.ID), Geometry: geom}
		if name, ok := g.Properties["name"].(string); ok {
			f.Name = name
		}
		fs = append(fs, f)
	}
	return fs, nil
}

func rawID(id json.RawMessage) string {
	if len(id) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(id, &s); err == nil {
		return s
	}
	var n float64
	if err := json.Unmarshal(id, &n); err == nil {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return ""
}

func (t *Topology) geometry(g *Object) (orb.Geometry, error) {
	switch g.Type {
	case "LineString":
		var arcs []int
		if err := json.Unmarshal(g.Arcs, &arcs); err != nil {
			return nil, fmt.Errorf("geometry %s arcs: %w", rawID(g.ID), err)
		}
		return t.line(arcs)
	case "MultiLineString":
		var arcs [][]int
		if err := json.Unmarshal(g.Arcs, &arcs); err != nil {
			return nil, fmt.Errorf("geometry %s arcs: %w", rawID(g.ID), err)
		}
		mls := make(orb.MultiLineString, 0, len(arcs))
		for _, a := range arcs {
			ls, err := t.line(a)
			if err != nil {
				return nil, err
			}
			mls = append(mls, ls)
		}
		return mls, nil
	case "Polygon":
		var arcs [][]int
		if err := json.Unmarshal(g.Arcs, &arcs); err != nil {
			return nil, fmt.Errorf("geometry %s arcs: %w", rawID(g.ID), err)
		}
		return t.polygon(arcs)
	case "MultiPolygon":
		var arcs [][][]int
		if err := json.Unmarshal(g.Arcs, &arcs); err != nil {
			return nil, fmt.Errorf("geometry %s arcs: %w", rawID(g.ID), err)
		}
		mp := make(orb.MultiPolygon, 0, len(arcs))
		for _, a := range arcs {
			p, err := t.polygon(a)
			if err != nil {
				return nil, err
			}
			mp = append(mp, p)
		}
		return mp, nil
	case "", "null":
		// Null geometry: the feature exists but has no shape.
		return nil, nil
	}
	return nil, fmt.Errorf("geometry %s: unsupported type %q", rawID(g.ID), g.Type)
}

func (t *Topology) polygon(rings [][]int) (orb.Polygon, error) {
	p := make(orb.Polygon, 0, len(rings))
	for _, r := range rings {
		ls, err := t.line(r)
		if err != nil {
			return nil, err
		}
		p = append(p, orb.Ring(ls))
	}
	return p, nil
}

// line stitches a sequence of arc references into one line. Each
// arc after the first starts where the previous one ended, so its
// first point is dropped.
func (t *Topology) line(refs []int) (orb.LineString, error) {
	var ls orb.LineString
	for k, ref := range refs {
		arc, err := t.arc(ref)
		if err != nil {
			return nil, err
		}
		if k > 0 && len(arc) > 0 {
			arc = arc[1:]
		}
		ls = append(ls, arc...)
	}
	return ls, nil
}

// arc returns the points of arc reference ref, reversed if ref is
// negative. The result does not alias t.arcs.
func (t *Topology) arc(ref int) (orb.LineString, error) {
	i := ref
	if ref < 0 {
		i = ^ref
	}
	if i >= len(t.arcs) {
		return nil, fmt.Errorf("arc reference %d out of range (%d arcs)", ref, len(t.arcs))
	}
	src := t.arcs[i]
	out := make(orb.LineString, len(src))
	if ref < 0 {
		for j, p := range src {
			out[len(src)-1-j] = p
		}
	} else {
		copy(out, src)
	}
	return out, nil
}
