// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package proj projects query points onto curves and surfaces (spec
// §4.8, §4.9): a tessellation-seeded closest-point search refined by a
// bounded Newton iteration.
package proj

import (
	"math"

	"github.com/cpmech/gonurbs/nurbs"
	"github.com/cpmech/gonurbs/tess"
)

// CurveLike is the surface nurbs.Curve and nurbs.CurveOnSurface both
// satisfy; PointOnCurveProj works over either.
type CurveLike interface {
	PointAt(t float64) ([]float64, error)
	DerivativesAt(t float64, order int) ([][]float64, error)
	Spans() []nurbs.Interval
	Domain() nurbs.Interval
}

// PointOnCurveProj projects query points onto a curve. It tessellates
// the curve once at construction (spec §4.8 Stage 1) and reuses that
// polyline for every Compute call.
type PointOnCurveProj struct {
	curve CurveLike
	tol   float64
	poly  []tess.Sample
}

// NewPointOnCurveProj builds a projector for curve. degree is the
// curve's own degree (drives tessellation refinement), tessTol the
// tessellation chord tolerance, and tol the Newton convergence
// tolerance (eps1; eps2 is derived as 5*tol, mirroring the original's
// ratio between the distance and zero-cosine tests).
func NewPointOnCurveProj(curve CurveLike, degree int, tessTol, tol float64) (*PointOnCurveProj, error) {
	ts, err := tess.NewTessellator(curve, degree, tessTol)
	if err != nil {
		return nil, err
	}
	poly, err := ts.Polyline()
	if err != nil {
		return nil, err
	}
	return &PointOnCurveProj{curve: curve, tol: tol, poly: poly}, nil
}

// Compute returns the parameter and point on the curve closest to
// sample: a tessellation seed (Stage 1), a 5-iteration Newton refine
// (Stage 2), and an endpoint guard (Stage 3).
func (p *PointOnCurveProj) Compute(sample []float64) (t float64, point []float64, err error) {
	domain := p.curve.Domain()

	bestT, bestPoint, bestSqDist := p.poly[0].T, p.poly[0].P, sqDist(sample, p.poly[0].P)
	for i := 1; i < len(p.poly); i++ {
		t0, p0 := p.poly[i-1].T, p.poly[i-1].P
		t1, p1 := p.poly[i].T, p.poly[i].P
		ct, cp := projectToSegment(sample, p0, p1, t0, t1)
		d := sqDist(sample, cp)
		if d < bestSqDist {
			bestSqDist, bestT, bestPoint = d, ct, cp
		}
	}

	eps1 := p.tol
	eps2 := p.tol * 5
	cur := bestT
	for iter := 0; iter < 5; iter++ {
		f, err := p.curve.DerivativesAt(cur, 2)
		if err != nil {
			return 0, nil, err
		}
		dif := sub(f[0], sample)
		c1v := norm(dif)
		if c1v < eps1 {
			break
		}
		c2n := dot(f[1], dif)
		c2d := norm(f[1]) * c1v
		c2v := 0.0
		if c2d != 0 {
			c2v = c2n / c2d
		}
		if math.Abs(c2v) < eps2 {
			break
		}
		denom := dot(f[2], dif) + dot(f[1], f[1])
		if math.Abs(denom) < 1e-14 {
			break
		}
		delta := c2n / denom
		cur = domain.Clamp(cur - delta)
	}

	closest, err := p.curve.PointAt(cur)
	if err != nil {
		return 0, nil, err
	}
	bestSqDist = sqDist(sample, closest)
	bestT, bestPoint = cur, closest

	pAtT0, err := p.curve.PointAt(domain.T0)
	if err != nil {
		return 0, nil, err
	}
	if d := sqDist(sample, pAtT0); d < bestSqDist {
		bestSqDist, bestT, bestPoint = d, domain.T0, pAtT0
	}

	pAtT1, err := p.curve.PointAt(domain.T1)
	if err != nil {
		return 0, nil, err
	}
	if d := sqDist(sample, pAtT1); d < bestSqDist {
		bestT, bestPoint = domain.T1, pAtT1
	}

	return bestT, bestPoint, nil
}

// projectToSegment orthogonally projects point onto the segment
// a(t0)-b(t1), clamping to the segment's ends.
func projectToSegment(point, a, b []float64, t0, t1 float64) (float64, []float64) {
	d := sub(b, a)
	l := dot(d, d)
	if l < 1e-14 {
		return t0, a
	}
	w := sub(point, a)
	s := dot(w, d) / l
	if s < 0 {
		return t0, a
	}
	if s > 1 {
		return t1, b
	}
	cp := make([]float64, len(a))
	for i := range a {
		cp[i] = a[i] + s*d[i]
	}
	return t0 + (t1-t0)*s, cp
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

func sqDist(a, b []float64) float64 { return dot(sub(a, b), sub(a, b)) }
