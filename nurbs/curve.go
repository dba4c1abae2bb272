// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nurbs

import "github.com/cpmech/gonurbs/kerr"

// Curve is a bounded handle onto a NurbsCurve: the geometry plus an
// Interval that must be a subset of the geometry's domain. Spans are
// the geometry's spans clipped to that interval.
type Curve struct {
	Geometry *NurbsCurve
	domain   Interval
}

// NewCurve builds a bounded Curve over domain, which must lie within
// geometry's own domain.
func NewCurve(geometry *NurbsCurve, domain Interval) (*Curve, error) {
	full := geometry.Domain()
	if domain.T0 < full.T0-degenerateTol || domain.T1 > full.T1+degenerateTol {
		return nil, kerr.New(kerr.InvalidGeometry, "curve domain [%g,%g] is not contained in geometry domain [%g,%g]",
			domain.T0, domain.T1, full.T0, full.T1)
	}
	return &Curve{Geometry: geometry, domain: domain}, nil
}

// Domain returns the bounded curve's parametric interval.
func (c *Curve) Domain() Interval { return c.domain }

// PointAt evaluates the underlying geometry at t, which must lie in Domain().
func (c *Curve) PointAt(t float64) ([]float64, error) {
	if !c.domain.Contains(t) {
		return nil, kerr.New(kerr.InvalidParameter, "t=%g outside bounded domain [%g,%g]", t, c.domain.T0, c.domain.T1)
	}
	return c.Geometry.PointAt(t)
}

// DerivativesAt evaluates the underlying geometry's derivatives at t,
// which must lie in Domain().
func (c *Curve) DerivativesAt(t float64, order int) ([][]float64, error) {
	if !c.domain.Contains(t) {
		return nil, kerr.New(kerr.InvalidParameter, "t=%g outside bounded domain [%g,%g]", t, c.domain.T0, c.domain.T1)
	}
	return c.Geometry.DerivativesAt(t, order)
}

// Spans returns the geometry's spans clipped to the bounded domain,
// dropping any that become degenerate.
func (c *Curve) Spans() []Interval {
	var out []Interval
	for _, s := range c.Geometry.Spans() {
		clipped := Intersect(s, c.domain)
		if !clipped.IsEmpty() {
			out = append(out, clipped)
		}
	}
	return out
}
