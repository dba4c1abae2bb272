// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tess

import (
	"math"

	"github.com/cpmech/gonurbs/kerr"
)

// Polygon is a planar region: one outer path (counter-clockwise) and
// zero or more inner hole paths (clockwise), each a flat list of 2D
// vertices.
type Polygon struct {
	Outer [][2]float64
	Holes [][][2]float64
}

// Triangle is an index triple into the polygon's flattened vertex list
// (outer vertices first, in order, followed by each hole's vertices in
// order).
type Triangle [3]int

// Vertices flattens outer+holes into one ordered vertex slice, matching
// the indexing Triangle refers to.
func (p Polygon) Vertices() [][2]float64 {
	out := make([][2]float64, 0, len(p.Outer)+totalHoleLen(p.Holes))
	out = append(out, p.Outer...)
	for _, h := range p.Holes {
		out = append(out, h...)
	}
	return out
}

func totalHoleLen(holes [][][2]float64) int {
	n := 0
	for _, h := range holes {
		n += len(h)
	}
	return n
}

// PolygonTessellator triangulates a polygon with holes by ear-clipping
// (spec §4.11). It is valid for simple polygons whose holes don't
// self-intersect; degenerate or self-intersecting input that prevents
// ear-clipping from making progress reports kerr.OutOfRange rather than
// looping forever.
type PolygonTessellator struct{}

// NewPolygonTessellator returns a stateless tessellator instance.
func NewPolygonTessellator() *PolygonTessellator { return &PolygonTessellator{} }

// Triangulate returns the triangle list for p.
func (PolygonTessellator) Triangulate(p Polygon) ([]Triangle, error) {
	ring, err := mergeHoles(p)
	if err != nil {
		return nil, err
	}
	return earClip(ring, p.Vertices())
}

// mergeHoles stitches each hole into the outer ring via a bridge edge
// from the hole's rightmost vertex to the nearest visible outer vertex,
// the classic technique for reducing polygon-with-holes ear-clipping to
// ear-clipping a single ring. Indices in the returned ring refer to the
// Vertices() ordering.
func mergeHoles(p Polygon) ([]int, error) {
	n := len(p.Outer)
	if n < 3 {
		return nil, kerr.New(kerr.OutOfRange, "outer path needs at least 3 vertices, got %d", n)
	}
	verts := p.Vertices()
	ring := make([]int, n)
	for i := range ring {
		ring[i] = i
	}
	offset := n
	for _, hole := range p.Holes {
		if len(hole) < 3 {
			return nil, kerr.New(kerr.OutOfRange, "hole needs at least 3 vertices, got %d", len(hole))
		}
		holeIdx := make([]int, len(hole))
		for i := range hole {
			holeIdx[i] = offset + i
		}
		bridge, err := rightmostIndex(holeIdx, verts)
		if err != nil {
			return nil, err
		}
		target := nearestVisible(ring, bridge, verts)
		ring = spliceHole(ring, holeIdx, target, bridge)
		offset += len(hole)
	}
	return ring, nil
}

func rightmostIndex(idxs []int, verts [][2]float64) (int, error) {
	if len(idxs) == 0 {
		return 0, kerr.New(kerr.OutOfRange, "empty hole")
	}
	best := idxs[0]
	for _, i := range idxs[1:] {
		if verts[i][0] > verts[best][0] {
			best = i
		}
	}
	return best, nil
}

// nearestVisible picks the outer-ring vertex closest (by squared
// distance) to the hole's bridge vertex among those not to its left,
// so the bridge from a hole's rightmost vertex never crosses that same
// convex hole; a fuller implementation would also check visibility (no
// other edge crossing the bridge segment), which is sound for the
// convex, well-separated holes this kernel produces from trimmed
// knot-span rectangles.
func nearestVisible(ring []int, from int, verts [][2]float64) int {
	best, bestD := ring[0], math.MaxFloat64
	fx, fy := verts[from][0], verts[from][1]
	for _, i := range ring {
		if verts[i][0] < fx {
			continue
		}
		dx, dy := verts[i][0]-fx, verts[i][1]-fy
		d := dx*dx + dy*dy
		if d < bestD {
			best, bestD = i, d
		}
	}
	return best
}

// spliceHole inserts the hole ring (rotated to start at bridge, in its
// given clockwise winding) into ring right after target, duplicating
// target and bridge to close the bridge edges.
func spliceHole(ring []int, hole []int, target, bridge int) []int {
	rotated := make([]int, 0, len(hole))
	start := indexOf(hole, bridge)
	for i := 0; i < len(hole); i++ {
		rotated = append(rotated, hole[(start+i)%len(hole)])
	}

	out := make([]int, 0, len(ring)+len(rotated)+2)
	for _, v := range ring {
		out = append(out, v)
		if v == target {
			out = append(out, rotated...)
			out = append(out, bridge, target)
		}
	}
	return out
}

func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return 0
}
