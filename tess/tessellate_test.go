// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tess

import (
	"math"
	"testing"

	"github.com/cpmech/gonurbs/nurbs"
	"github.com/cpmech/gosl/chk"
)

func quarterCircleCurve(tst *testing.T) *nurbs.Curve {
	knots := nurbs.Knots{0, 0, 1, 1}
	poles := [][]float64{{1, 0}, {1, 1}, {0, 1}}
	weights := []float64{1, math.Sqrt2 / 2, 1}
	geom, err := nurbs.NewNurbsCurve(2, knots, poles, weights)
	if err != nil {
		tst.Fatalf("NewNurbsCurve failed: %v", err)
	}
	c, err := nurbs.NewCurve(geom, geom.Domain())
	if err != nil {
		tst.Fatalf("NewCurve failed: %v", err)
	}
	return c
}

// Test_tessellate01 checks that the adaptive polyline Hausdorff-
// approximates a rational quarter circle within the requested
// tolerance.
func Test_tessellate01(tst *testing.T) {

	chk.PrintTitle("tessellate01")

	curve := quarterCircleCurve(tst)
	tol := 1e-3
	ts, err := NewTessellator(curve, curve.Geometry.Degree(), tol)
	if err != nil {
		tst.Fatalf("NewTessellator failed: %v", err)
	}
	poly, err := ts.Polyline()
	if err != nil {
		tst.Fatalf("Polyline failed: %v", err)
	}
	if len(poly) < 2 {
		tst.Fatalf("expected at least 2 samples, got %d", len(poly))
	}

	// every sample should itself sit exactly on the unit circle (the
	// true test is mid-segment deviation, checked via dense resampling)
	for _, s := range poly {
		r := math.Hypot(s.P[0], s.P[1])
		if math.Abs(r-1) > 1e-9 {
			tst.Errorf("sample at t=%g not on unit circle: r=%g", s.T, r)
		}
	}

	for i := 0; i+1 < len(poly); i++ {
		a, b := poly[i], poly[i+1]
		for k := 1; k < 20; k++ {
			t := a.T + (b.T-a.T)*float64(k)/20
			p, err := curve.PointAt(t)
			if err != nil {
				tst.Fatalf("PointAt failed: %v", err)
			}
			d := perpendicularDistance(p, a.P, b.P)
			if d > tol*1.01 {
				tst.Errorf("segment [%g,%g]: deviation %g exceeds tolerance %g", a.T, b.T, d, tol)
			}
		}
	}
}
