// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nurbs

import "github.com/cpmech/gonurbs/kerr"

// NurbsSurface is a (possibly rational) tensor-product B-spline surface
// in D-dimensional space: independent degree/knots per axis, and a
// nbPolesU x nbPolesV grid of poles, row-major by (u,v), with optional
// per-pole weights.
type NurbsSurface struct {
	degreeU, degreeV int
	dim              int
	knotsU, knotsV   Knots
	nbPolesU         int
	nbPolesV         int
	poles            [][]float64 // (nbPolesU*nbPolesV) x dim, row-major u-major
	weight           []float64   // nil, or nbPolesU*nbPolesV
	shape            *SurfaceShapeEvaluator
}

// NewNurbsSurface validates and builds a NurbsSurface. weights may be
// nil for a non-rational surface. poles is supplied row-major with u
// as the outer (slower-varying) index: poles[a*nbPolesV+b].
func NewNurbsSurface(degreeU, degreeV int, knotsU, knotsV Knots, nbPolesU, nbPolesV int, poles [][]float64, weights []float64) (*NurbsSurface, error) {
	if degreeU < 1 || degreeV < 1 {
		return nil, kerr.New(kerr.InvalidGeometry, "degrees must be >= 1, got (%d,%d)", degreeU, degreeV)
	}
	if nbPolesU < degreeU+1 || nbPolesV < degreeV+1 {
		return nil, kerr.New(kerr.InvalidGeometry, "need at least (degree+1) poles per axis, got (%d,%d) poles for degrees (%d,%d)",
			nbPolesU, nbPolesV, degreeU, degreeV)
	}
	if len(knotsU) != NbKnots(degreeU, nbPolesU) {
		return nil, kerr.New(kerr.InvalidGeometry, "expected %d U knots, got %d", NbKnots(degreeU, nbPolesU), len(knotsU))
	}
	if len(knotsV) != NbKnots(degreeV, nbPolesV) {
		return nil, kerr.New(kerr.InvalidGeometry, "expected %d V knots, got %d", NbKnots(degreeV, nbPolesV), len(knotsV))
	}
	if len(poles) != nbPolesU*nbPolesV {
		return nil, kerr.New(kerr.InvalidGeometry, "expected %d poles, got %d", nbPolesU*nbPolesV, len(poles))
	}
	if weights != nil && len(weights) != nbPolesU*nbPolesV {
		return nil, kerr.New(kerr.InvalidGeometry, "expected %d weights, got %d", nbPolesU*nbPolesV, len(weights))
	}
	dim := 0
	for _, p := range poles {
		if dim == 0 {
			dim = len(p)
		} else if len(p) != dim {
			return nil, kerr.New(kerr.InvalidGeometry, "all poles must have the same dimension")
		}
	}
	return &NurbsSurface{
		degreeU: degreeU, degreeV: degreeV, dim: dim,
		knotsU: knotsU, knotsV: knotsV,
		nbPolesU: nbPolesU, nbPolesV: nbPolesV,
		poles: poles, weight: weights,
		shape: NewSurfaceShapeEvaluator(degreeU, degreeV, 0),
	}, nil
}

func (s *NurbsSurface) DegreeU() int      { return s.degreeU }
func (s *NurbsSurface) DegreeV() int      { return s.degreeV }
func (s *NurbsSurface) Dim() int          { return s.dim }
func (s *NurbsSurface) NbPolesU() int     { return s.nbPolesU }
func (s *NurbsSurface) NbPolesV() int     { return s.nbPolesV }
func (s *NurbsSurface) KnotsU() Knots     { return s.knotsU }
func (s *NurbsSurface) KnotsV() Knots     { return s.knotsV }
func (s *NurbsSurface) IsRational() bool  { return s.weight != nil }

func (s *NurbsSurface) poleIndex(a, b int) int { return a*s.nbPolesV + b }

// Pole returns the (a,b)-th control point.
func (s *NurbsSurface) Pole(a, b int) []float64 { return s.poles[s.poleIndex(a, b)] }

// Weight returns the (a,b)-th pole's weight, or 1 for a non-rational surface.
func (s *NurbsSurface) Weight(a, b int) float64 {
	if s.weight == nil {
		return 1
	}
	return s.weight[s.poleIndex(a, b)]
}

// DomainU, DomainV return the surface's parametric domain per axis.
func (s *NurbsSurface) DomainU() Interval { return Domain(s.degreeU, s.knotsU, s.nbPolesU) }
func (s *NurbsSurface) DomainV() Interval { return Domain(s.degreeV, s.knotsV, s.nbPolesV) }

// SpansU, SpansV return the non-degenerate knot spans per axis.
func (s *NurbsSurface) SpansU() []Interval { return Spans(s.degreeU, s.knotsU, s.nbPolesU) }
func (s *NurbsSurface) SpansV() []Interval { return Spans(s.degreeV, s.knotsV, s.nbPolesV) }

// PointAt evaluates the surface at (u,v). Both must lie within domain.
func (s *NurbsSurface) PointAt(u, v float64) ([]float64, error) {
	pts, err := s.DerivativesAt(u, v, 0)
	if err != nil {
		return nil, err
	}
	return pts[ShapeIndex(0, 0)], nil
}

// DerivativesAt evaluates the surface and its partial derivatives up to
// combined order at (u,v), returning NbShapes(order) vectors indexed by
// ShapeIndex(du,dv). Returns kerr.InvalidParameter if (u,v) is outside
// the domain or order < 0.
func (s *NurbsSurface) DerivativesAt(u, v float64, order int) ([][]float64, error) {
	if order < 0 {
		return nil, kerr.New(kerr.InvalidParameter, "derivative order must be >= 0, got %d", order)
	}
	du, dv := s.DomainU(), s.DomainV()
	if !du.Contains(u) {
		return nil, kerr.New(kerr.InvalidParameter, "u=%g outside domain [%g,%g]", u, du.T0, du.T1)
	}
	if !dv.Contains(v) {
		return nil, kerr.New(kerr.InvalidParameter, "v=%g outside domain [%g,%g]", v, dv.T0, dv.T1)
	}
	spanU := UpperSpan(s.degreeU, s.knotsU, u, s.nbPolesU)
	spanV := UpperSpan(s.degreeV, s.knotsV, v, s.nbPolesV)
	if s.shape.Order() != order {
		s.shape.Resize(s.degreeU, s.degreeV, order)
	}

	if s.IsRational() {
		weightAt := func(a, b int) float64 { return s.Weight(a, b) }
		s.shape.ComputeRationalAtSpan(s.knotsU, s.knotsV, spanU, spanV, weightAt, u, v)
	} else {
		s.shape.ComputeAtSpan(s.knotsU, s.knotsV, spanU, spanV, u, v)
	}

	firstU, firstV := s.shape.FirstNonzeroPoleU(), s.shape.FirstNonzeroPoleV()
	out := make([][]float64, NbShapes(order))
	for shape := 0; shape < NbShapes(order); shape++ {
		acc := make([]float64, s.dim)
		for a := 0; a < s.shape.NbNonzeroPolesU(); a++ {
			for b := 0; b < s.shape.NbNonzeroPolesV(); b++ {
				n := s.shape.Value(shape, a, b)
				pole := s.Pole(firstU+a, firstV+b)
				for d := 0; d < s.dim; d++ {
					acc[d] += n * pole[d]
				}
			}
		}
		out[shape] = acc
	}
	return out, nil
}
