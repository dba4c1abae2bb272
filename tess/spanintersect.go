// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tess

import (
	"math"
	"sort"

	"github.com/cpmech/gonurbs/nurbs"
)

// SpanIntersector finds the parameters at which a trim curve crosses
// its surface's u/v knot lines (spec §4.6). The clip package does not
// use it; it clips whole trim loops against span rectangles.
type SpanIntersector struct {
	cs  *nurbs.CurveOnSurface
	tau float64
}

// NewSpanIntersector builds an intersector for cs, tessellating to
// tolerance tau (also the Newton acceptance and dedupe tolerance).
func NewSpanIntersector(cs *nurbs.CurveOnSurface, tau float64) *SpanIntersector {
	return &SpanIntersector{cs: cs, tau: tau}
}

// Intersect returns the sorted, deduplicated (within tau) parameters t
// at which (S o gamma) crosses a u or v knot line of the surface,
// optionally including the curve's own span boundaries.
func (si *SpanIntersector) Intersect(includeSpanBoundaries bool) ([]float64, error) {
	ts, err := NewTessellator(si.cs, si.cs.Geometry2D.Degree(), si.tau)
	if err != nil {
		return nil, err
	}
	poly, err := ts.Polyline()
	if err != nil {
		return nil, err
	}

	knotsU := distinctSorted(si.cs.Surface.KnotsU())
	knotsV := distinctSorted(si.cs.Surface.KnotsV())
	domain := si.cs.Domain()

	var roots []float64
	for i := 0; i+1 < len(poly); i++ {
		a, b := poly[i], poly[i+1]
		for axis := 0; axis < 2; axis++ {
			targets := knotsU
			if axis == 1 {
				targets = knotsV
			}
			lo, hi := a.P[axis], b.P[axis]
			if lo > hi {
				lo, hi = hi, lo
			}
			for _, target := range targets {
				if target < lo-si.tau || target > hi+si.tau {
					continue
				}
				root, ok, err := si.newton(a.T, b.T, axis, target)
				if err != nil {
					return nil, err
				}
				if ok && domain.Contains(root) {
					roots = append(roots, root)
				}
			}
		}
	}

	if includeSpanBoundaries {
		for _, s := range si.cs.Spans() {
			roots = append(roots, s.T0, s.T1)
		}
	}

	return dedupeSorted(roots, si.tau), nil
}

// newton solves C_axis(t) - target = 0 by Newton iteration seeded at
// the midpoint of [t0,t1], bounded to 100 iterations, accepting |f| <
// tau. If the iteration budget runs out without meeting tau, the last
// iterate is accepted anyway (spec §9: a slow-converging crossing is
// still reported rather than dropped). Fails (ok=false) only if the
// derivative vanishes outright.
func (si *SpanIntersector) newton(t0, t1 float64, axis int, target float64) (float64, bool, error) {
	t := (t0 + t1) / 2
	lo, hi := t0, t1
	if lo > hi {
		lo, hi = hi, lo
	}
	for iter := 0; iter < 100; iter++ {
		deriv, err := si.cs.DerivativesAt(t, 1)
		if err != nil {
			return 0, false, err
		}
		f := deriv[0][axis] - target
		if math.Abs(f) < si.tau {
			return t, true, nil
		}
		fp := deriv[1][axis]
		if math.Abs(fp) < 1e-14 {
			return 0, false, nil
		}
		t -= f / fp
		if t < lo {
			t = lo
		}
		if t > hi {
			t = hi
		}
	}
	return t, true, nil
}

func distinctSorted(k nurbs.Knots) []float64 {
	if len(k) == 0 {
		return nil
	}
	out := []float64{k[0]}
	for _, v := range k[1:] {
		if v-out[len(out)-1] > 1e-12 {
			out = append(out, v)
		}
	}
	return out
}

func dedupeSorted(vals []float64, tol float64) []float64 {
	if len(vals) == 0 {
		return nil
	}
	sort.Float64s(vals)
	out := []float64{vals[0]}
	for _, v := range vals[1:] {
		if v-out[len(out)-1] > tol {
			out = append(out, v)
		}
	}
	return out
}
