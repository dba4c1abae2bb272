// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nurbs

import "github.com/cpmech/gonurbs/kerr"

// CurveOnSurface pairs a 2D parameter-space curve gamma(t) = (u(t),
// v(t)) with a NurbsSurface S, so that (S o gamma)(t) traces a curve
// embedded in the surface. Used for BREP trim curves.
type CurveOnSurface struct {
	Geometry2D *NurbsCurve
	Surface    *NurbsSurface
	domain     Interval
}

// NewCurveOnSurface builds a CurveOnSurface. geometry2D must have
// Dim()==2, and domain must be contained in geometry2D's own domain.
func NewCurveOnSurface(geometry2D *NurbsCurve, surface *NurbsSurface, domain Interval) (*CurveOnSurface, error) {
	if geometry2D.Dim() != 2 {
		return nil, kerr.New(kerr.InvalidGeometry, "parameter-space curve must be 2D, got dim %d", geometry2D.Dim())
	}
	full := geometry2D.Domain()
	if domain.T0 < full.T0-degenerateTol || domain.T1 > full.T1+degenerateTol {
		return nil, kerr.New(kerr.InvalidGeometry, "domain [%g,%g] is not contained in curve domain [%g,%g]",
			domain.T0, domain.T1, full.T0, full.T1)
	}
	return &CurveOnSurface{Geometry2D: geometry2D, Surface: surface, domain: domain}, nil
}

// Domain returns the bounded parametric interval of the trim curve.
func (cs *CurveOnSurface) Domain() Interval { return cs.domain }

// Spans returns the 2D curve's own spans clipped to the bounded
// domain. Spans further cut at the surface's u/v knot lines are
// computed by tess.SpanIntersector, which operates on this type's
// Geometry2D/Surface pair directly (keeping that curve-tessellation
// dependency out of this package).
func (cs *CurveOnSurface) Spans() []Interval {
	var out []Interval
	for _, s := range cs.Geometry2D.Spans() {
		clipped := Intersect(s, cs.domain)
		if !clipped.IsEmpty() {
			out = append(out, clipped)
		}
	}
	return out
}

// PointAt returns (S o gamma)(t).
func (cs *CurveOnSurface) PointAt(t float64) ([]float64, error) {
	pts, err := cs.DerivativesAt(t, 0)
	if err != nil {
		return nil, err
	}
	return pts[0], nil
}

// DerivativesAt computes the order+1 derivatives of (S o gamma) at t
// via Faa di Bruno composition (spec §4.7):
//
//	c(0,i,j)  = d^(i+j)S/du^i dv^j  at gamma(t)
//	c(n,i,j)  = sum_{a=1..n} C(n-1,a-1) * [c(n-a,i+1,j)*gamma_u^(a) + c(n-a,i,j+1)*gamma_v^(a)]
//
// The output at order k is c(k,0,0).
func (cs *CurveOnSurface) DerivativesAt(t float64, order int) ([][]float64, error) {
	if order < 0 {
		return nil, kerr.New(kerr.InvalidParameter, "derivative order must be >= 0, got %d", order)
	}
	if !cs.domain.Contains(t) {
		return nil, kerr.New(kerr.InvalidParameter, "t=%g outside bounded domain [%g,%g]", t, cs.domain.T0, cs.domain.T1)
	}

	gamma, err := cs.Geometry2D.DerivativesAt(t, order)
	if err != nil {
		return nil, err
	}
	u, v := gamma[0][0], gamma[0][1]

	surf, err := cs.Surface.DerivativesAt(u, v, order)
	if err != nil {
		return nil, err
	}
	dim := cs.Surface.Dim()

	// c[n][i][j], only entries with n+i+j <= order are ever populated.
	c := make([][][][]float64, order+1)
	for n := 0; n <= order; n++ {
		c[n] = make([][][]float64, order+1)
		for i := 0; i <= order; i++ {
			c[n][i] = make([][]float64, order+1)
		}
	}
	for i := 0; i <= order; i++ {
		for j := 0; j <= order-i; j++ {
			c[0][i][j] = surf[ShapeIndex(i, j)]
		}
	}
	for n := 1; n <= order; n++ {
		for i := 0; i <= order-n; i++ {
			for j := 0; j <= order-n-i; j++ {
				acc := make([]float64, dim)
				for a := 1; a <= n; a++ {
					coef := binomial(n-1, a-1)
					gu, gv := gamma[a][0], gamma[a][1]
					cu, cv := c[n-a][i+1][j], c[n-a][i][j+1]
					for d := 0; d < dim; d++ {
						acc[d] += coef * (cu[d]*gu + cv[d]*gv)
					}
				}
				c[n][i][j] = acc
			}
		}
	}

	out := make([][]float64, order+1)
	for k := 0; k <= order; k++ {
		out[k] = c[k][0][0]
	}
	return out, nil
}
