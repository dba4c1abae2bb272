// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nurbs

import "github.com/cpmech/gonurbs/kerr"

// NurbsCurve is a (possibly rational) B-spline curve in D-dimensional
// space: a degree, a clamped-without-duplicated-endpoints knot vector,
// nbPoles control points of dimension D, and optional per-pole weights
// (nil for a non-rational curve).
type NurbsCurve struct {
	degree int
	dim    int
	knots  Knots
	poles  [][]float64 // nbPoles x dim
	weight []float64   // nil, or nbPoles
	shape  *CurveShapeEvaluator
}

// NewNurbsCurve validates and builds a NurbsCurve. weights may be nil
// for a non-rational (plain B-spline) curve. It returns
// kerr.InvalidGeometry if degree, knot, pole or weight counts are
// inconsistent.
func NewNurbsCurve(degree int, knots Knots, poles [][]float64, weights []float64) (*NurbsCurve, error) {
	if degree < 1 {
		return nil, kerr.New(kerr.InvalidGeometry, "degree must be >= 1, got %d", degree)
	}
	nbPoles := len(poles)
	if nbPoles < degree+1 {
		return nil, kerr.New(kerr.InvalidGeometry, "need at least degree+1=%d poles, got %d", degree+1, nbPoles)
	}
	if len(knots) != NbKnots(degree, nbPoles) {
		return nil, kerr.New(kerr.InvalidGeometry, "expected %d knots for degree %d and %d poles, got %d",
			NbKnots(degree, nbPoles), degree, nbPoles, len(knots))
	}
	for i := 1; i < len(knots); i++ {
		if knots[i] < knots[i-1] {
			return nil, kerr.New(kerr.InvalidGeometry, "knots must be non-decreasing, violated at index %d", i)
		}
	}
	if weights != nil && len(weights) != nbPoles {
		return nil, kerr.New(kerr.InvalidGeometry, "expected %d weights, got %d", nbPoles, len(weights))
	}
	dim := 0
	for _, p := range poles {
		if dim == 0 {
			dim = len(p)
		} else if len(p) != dim {
			return nil, kerr.New(kerr.InvalidGeometry, "all poles must have the same dimension")
		}
	}
	return &NurbsCurve{
		degree: degree,
		dim:    dim,
		knots:  knots,
		poles:  poles,
		weight: weights,
		shape:  NewCurveShapeEvaluator(degree, 0),
	}, nil
}

func (c *NurbsCurve) Degree() int    { return c.degree }
func (c *NurbsCurve) Dim() int       { return c.dim }
func (c *NurbsCurve) NbPoles() int   { return len(c.poles) }
func (c *NurbsCurve) Knots() Knots   { return c.knots }
func (c *NurbsCurve) IsRational() bool { return c.weight != nil }

// Pole returns a reference to the i-th control point (do not mutate the
// returned slice's length).
func (c *NurbsCurve) Pole(i int) []float64 { return c.poles[i] }

// Weight returns the i-th pole's weight, or 1 for a non-rational curve.
func (c *NurbsCurve) Weight(i int) float64 {
	if c.weight == nil {
		return 1
	}
	return c.weight[i]
}

// Domain returns the curve's parametric domain.
func (c *NurbsCurve) Domain() Interval {
	return Domain(c.degree, c.knots, c.NbPoles())
}

// Spans returns the non-degenerate knot spans of the curve.
func (c *NurbsCurve) Spans() []Interval {
	return Spans(c.degree, c.knots, c.NbPoles())
}

// PointAt evaluates the curve at parameter t. t must lie in Domain().
func (c *NurbsCurve) PointAt(t float64) ([]float64, error) {
	pts, err := c.DerivativesAt(t, 0)
	if err != nil {
		return nil, err
	}
	return pts[0], nil
}

// DerivativesAt evaluates the curve and its derivatives up to order at
// parameter t, returning order+1 vectors of dimension Dim(). Returns
// kerr.InvalidParameter if t is outside Domain() or order < 0.
func (c *NurbsCurve) DerivativesAt(t float64, order int) ([][]float64, error) {
	if order < 0 {
		return nil, kerr.New(kerr.InvalidParameter, "derivative order must be >= 0, got %d", order)
	}
	dom := c.Domain()
	if !dom.Contains(t) {
		return nil, kerr.New(kerr.InvalidParameter, "t=%g outside domain [%g,%g]", t, dom.T0, dom.T1)
	}
	span := UpperSpan(c.degree, c.knots, t, c.NbPoles())
	if c.shape.Order() != order {
		c.shape.Resize(c.degree, order)
	}
	if c.IsRational() {
		c.shape.ComputeRationalAtSpan(c.knots, c.weight, span, t)
	} else {
		c.shape.ComputeAtSpan(c.knots, span, t)
	}

	first := c.shape.FirstNonzeroPole()
	out := make([][]float64, order+1)
	for k := 0; k <= order; k++ {
		v := make([]float64, c.dim)
		for j := 0; j < c.shape.NbNonzeroPoles(); j++ {
			n := c.shape.Value(k, j)
			pole := c.poles[first+j]
			for d := 0; d < c.dim; d++ {
				v[d] += n * pole[d]
			}
		}
		out[k] = v
	}
	return out, nil
}
