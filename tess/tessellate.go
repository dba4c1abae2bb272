// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tess adaptively tessellates curves to a chord tolerance and
// intersects them against knot lines, and triangulates 2D polygons by
// ear-clipping.
package tess

import (
	"math"
	"sort"

	"github.com/cpmech/gonurbs/kerr"
	"github.com/cpmech/gonurbs/nurbs"
)

// Curve is the minimal surface both nurbs.Curve and
// nurbs.CurveOnSurface satisfy; Tessellator works over either.
type Curve interface {
	PointAt(t float64) ([]float64, error)
	Spans() []nurbs.Interval
}

// Sample is one tessellated vertex: parameter t and its D-dimensional position.
type Sample struct {
	T float64
	P []float64
}

// Tessellator adaptively samples a curve to a chord tolerance,
// constructed once per query (spec §4.5). degree drives the number of
// probe points per refinement (2*degree+1).
type Tessellator struct {
	curve  Curve
	degree int
	tol    float64
}

// NewTessellator builds a Tessellator for curve at the given degree
// (the curve's own polynomial degree) and chord tolerance tol (must be
// > 0).
func NewTessellator(curve Curve, degree int, tol float64) (*Tessellator, error) {
	if tol <= 0 {
		return nil, kerr.New(kerr.InvalidParameter, "tessellation tolerance must be > 0, got %g", tol)
	}
	return &Tessellator{curve: curve, degree: degree, tol: tol}, nil
}

// Polyline produces samples (t_i, P(t_i)) such that the maximum
// perpendicular distance from P(t) to the polyline on every segment is
// at most the tessellator's tolerance.
func (ts *Tessellator) Polyline() ([]Sample, error) {
	spans := ts.curve.Spans()
	if len(spans) == 0 {
		return nil, nil
	}

	seedT := make([]float64, 0, len(spans)+1)
	for _, s := range spans {
		seedT = append(seedT, s.T0)
	}
	seedT = append(seedT, spans[len(spans)-1].T1)
	sort.Float64s(seedT)

	seeds := make([]Sample, len(seedT))
	for i, t := range seedT {
		p, err := ts.curve.PointAt(t)
		if err != nil {
			return nil, err
		}
		seeds[i] = Sample{T: t, P: p}
	}

	out := []Sample{seeds[0]}
	for i := 0; i+1 < len(seeds); i++ {
		segment, err := ts.refine(seeds[i], seeds[i+1])
		if err != nil {
			return nil, err
		}
		out = append(out, segment[1:]...)
	}
	return out, nil
}

// refine recursively subdivides [a,b] until the chord a-b approximates
// the curve within tolerance, returning the ordered samples a..b
// inclusive.
func (ts *Tessellator) refine(a, b Sample) ([]Sample, error) {
	n := 2*ts.degree + 1
	worstDist := -1.0
	var worst Sample
	for k := 1; k <= n; k++ {
		t := a.T + (b.T-a.T)*float64(k)/float64(n+1)
		p, err := ts.curve.PointAt(t)
		if err != nil {
			return nil, err
		}
		d := perpendicularDistance(p, a.P, b.P)
		if d > worstDist {
			worstDist, worst = d, Sample{T: t, P: p}
		}
	}
	if worstDist <= ts.tol || worstDist < 0 {
		return []Sample{a, b}, nil
	}
	left, err := ts.refine(a, worst)
	if err != nil {
		return nil, err
	}
	right, err := ts.refine(worst, b)
	if err != nil {
		return nil, err
	}
	return append(left, right[1:]...), nil
}

// perpendicularDistance is the distance from p to the line through a
// and b, valid in any dimension (equivalent to the 3D cross-product
// formula but expressed via projection, so it also works in 2D/nD).
func perpendicularDistance(p, a, b []float64) float64 {
	ab := sub(b, a)
	abLen := norm(ab)
	if abLen < 1e-14 {
		return norm(sub(p, a))
	}
	ap := sub(p, a)
	proj := dot(ap, ab) / abLen
	apLen2 := dot(ap, ap)
	d2 := apLen2 - proj*proj
	if d2 < 0 {
		d2 = 0
	}
	return math.Sqrt(d2)
}

func sub(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

func dot(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func norm(a []float64) float64 { return math.Sqrt(dot(a, a)) }
