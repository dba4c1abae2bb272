// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clip classifies a BREP face's knot spans against its trim
// loops, using a polygon-clipping library to intersect the tessellated
// trim region with each span's rectangle (spec §4.12).
package clip

import (
	"math"

	polyclip "github.com/akavel/polyclip-go"

	"github.com/cpmech/gonurbs/kerr"
	"github.com/cpmech/gonurbs/nurbs"
	"github.com/cpmech/gonurbs/tess"
)

// TrimType classifies a knot span against the face's trim loops.
type TrimType int

const (
	Empty TrimType = iota
	Full
	Trimmed
)

func (t TrimType) String() string {
	switch t {
	case Empty:
		return "Empty"
	case Full:
		return "Full"
	case Trimmed:
		return "Trimmed"
	}
	return "Unknown"
}

// SpanResult is the classification of one (span_u, span_v) cell.
type SpanResult struct {
	Type    TrimType
	Regions []tess.Polygon // populated only when Type == Trimmed
}

// SurfaceClipper assembles a face's trim loops into quantized integer-
// grid paths, then intersects them against each u/v knot span
// rectangle. eps is the trim-curve tessellation tolerance; s is the
// quantization step (the spec's recommended ratio is eps = 10*tol,
// s = tol/10).
type SurfaceClipper struct {
	eps, s  float64
	loops   []polyclip.Contour
	current polyclip.Contour
}

// NewSurfaceClipper builds a clipper with the given tessellation
// tolerance and quantization step.
func NewSurfaceClipper(eps, s float64) (*SurfaceClipper, error) {
	if eps <= 0 || s <= 0 {
		return nil, kerr.New(kerr.InvalidParameter, "tolerance and quantization step must be > 0, got eps=%g s=%g", eps, s)
	}
	return &SurfaceClipper{eps: eps, s: s}, nil
}

// BeginLoop starts accumulating a new closed trim loop.
func (c *SurfaceClipper) BeginLoop() {
	c.current = nil
}

// AddCurve tessellates a trim curve to the clipper's tolerance and
// appends its quantized points to the loop currently being assembled.
func (c *SurfaceClipper) AddCurve(curve *nurbs.CurveOnSurface) error {
	ts, err := tess.NewTessellator(curve, curve.Geometry2D.Degree(), c.eps)
	if err != nil {
		return err
	}
	poly, err := ts.Polyline()
	if err != nil {
		return err
	}
	start := 0
	if len(c.current) > 0 {
		// curve's first sample coincides with the previous trim's last
		start = 1
	}
	for _, sample := range poly[start:] {
		c.current = append(c.current, polyclip.Point{
			X: quantize(sample.P[0], c.s),
			Y: quantize(sample.P[1], c.s),
		})
	}
	return nil
}

// EndLoop closes the loop currently being assembled, dropping a
// trailing point that coincides with the loop's start.
func (c *SurfaceClipper) EndLoop() {
	n := len(c.current)
	if n >= 2 {
		first, last := c.current[0], c.current[n-1]
		if first.X == last.X && first.Y == last.Y {
			c.current = c.current[:n-1]
		}
	}
	if len(c.current) >= 3 {
		c.loops = append(c.loops, c.current)
	}
	c.current = nil
}

func quantize(v, s float64) float64 { return math.Round(v/s) * s }

// Compute classifies every (spansU[i], spansV[j]) cell. The trim
// region is first the nonzero-accumulated union of all loops, then
// intersected per span against that span's rectangle.
func (c *SurfaceClipper) Compute(spansU, spansV []nurbs.Interval) ([][]SpanResult, error) {
	var trimRegion polyclip.Polygon
	if len(c.loops) > 0 {
		trimRegion = polyclip.Polygon{c.loops[0]}
		for _, loop := range c.loops[1:] {
			trimRegion = trimRegion.Construct(polyclip.UNION, polyclip.Polygon{loop})
		}
	}

	out := make([][]SpanResult, len(spansU))
	for i, su := range spansU {
		out[i] = make([]SpanResult, len(spansV))
		for j, sv := range spansV {
			rect := rectangleContour(su, sv, c.s)
			result, err := c.classify(trimRegion, rect, su, sv)
			if err != nil {
				return nil, err
			}
			out[i][j] = result
		}
	}
	return out, nil
}

func rectangleContour(su, sv nurbs.Interval, s float64) polyclip.Contour {
	return polyclip.Contour{
		{X: quantize(su.T0, s), Y: quantize(sv.T0, s)},
		{X: quantize(su.T1, s), Y: quantize(sv.T0, s)},
		{X: quantize(su.T1, s), Y: quantize(sv.T1, s)},
		{X: quantize(su.T0, s), Y: quantize(sv.T1, s)},
	}
}

func (c *SurfaceClipper) classify(trimRegion polyclip.Polygon, rect polyclip.Contour, su, sv nurbs.Interval) (SpanResult, error) {
	if len(c.loops) == 0 {
		return SpanResult{Type: Full}, nil
	}

	rectPoly := polyclip.Polygon{rect}
	clipped := rectPoly.Construct(polyclip.INTERSECTION, trimRegion)

	if len(clipped) == 0 {
		return SpanResult{Type: Empty}, nil
	}
	if isFullRectangle(clipped, su, sv, c.s) {
		return SpanResult{Type: Full}, nil
	}

	regions, err := assembleRegions(clipped)
	if err != nil {
		return SpanResult{}, err
	}
	return SpanResult{Type: Trimmed, Regions: regions}, nil
}

// isFullRectangle reports whether the clip result is exactly one
// contour equal (up to vertex rotation) to the span rectangle.
func isFullRectangle(clipped polyclip.Polygon, su, sv nurbs.Interval, s float64) bool {
	if len(clipped) != 1 || len(clipped[0]) != 4 {
		return false
	}
	want := map[[2]float64]bool{
		{quantize(su.T0, s), quantize(sv.T0, s)}: true,
		{quantize(su.T1, s), quantize(sv.T0, s)}: true,
		{quantize(su.T1, s), quantize(sv.T1, s)}: true,
		{quantize(su.T0, s), quantize(sv.T1, s)}: true,
	}
	for _, p := range clipped[0] {
		if !want[[2]float64{p.X, p.Y}] {
			return false
		}
	}
	return true
}

// assembleRegions groups the clip result's contours into tess.Polygon
// regions: CCW contours are outer boundaries, CW contours are holes
// assigned to whichever outer boundary contains their first vertex.
func assembleRegions(clipped polyclip.Polygon) ([]tess.Polygon, error) {
	var regions []tess.Polygon
	var holes []polyclip.Contour
	for _, cont := range clipped {
		if contourArea(cont) >= 0 {
			regions = append(regions, tess.Polygon{Outer: toPoints(cont)})
		} else {
			holes = append(holes, cont)
		}
	}
	if len(regions) == 0 {
		return nil, kerr.New(kerr.InvalidGeometry, "clip result has holes but no outer boundary")
	}
	for _, h := range holes {
		owner := 0
		for i, r := range regions {
			if pointInPolygon(h[0], r.Outer) {
				owner = i
				break
			}
		}
		regions[owner].Holes = append(regions[owner].Holes, toPoints(h))
	}
	return regions, nil
}

func contourArea(c polyclip.Contour) float64 {
	a := 0.0
	n := len(c)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a += c[i].X*c[j].Y - c[j].X*c[i].Y
	}
	return a
}

func toPoints(c polyclip.Contour) [][2]float64 {
	out := make([][2]float64, len(c))
	for i, p := range c {
		out[i] = [2]float64{p.X, p.Y}
	}
	return out
}

func pointInPolygon(p polyclip.Point, outer [][2]float64) bool {
	inside := false
	n := len(outer)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := outer[i][0], outer[i][1]
		xj, yj := outer[j][0], outer[j][1]
		if (yi > p.Y) != (yj > p.Y) &&
			p.X < (xj-xi)*(p.Y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}
