// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proj

import (
	"math"
	"testing"

	"github.com/cpmech/gonurbs/nurbs"
	"github.com/cpmech/gosl/chk"
)

// Test_curveproj01 projects an off-curve point onto a rational quarter
// circle and checks the result lands on the circle at the expected
// parameter.
func Test_curveproj01(tst *testing.T) {

	chk.PrintTitle("curveproj01")

	knots := nurbs.Knots{0, 0, 1, 1}
	poles := [][]float64{{1, 0}, {1, 1}, {0, 1}}
	weights := []float64{1, math.Sqrt2 / 2, 1}
	geom, err := nurbs.NewNurbsCurve(2, knots, poles, weights)
	if err != nil {
		tst.Fatalf("NewNurbsCurve failed: %v", err)
	}
	curve, err := nurbs.NewCurve(geom, geom.Domain())
	if err != nil {
		tst.Fatalf("NewCurve failed: %v", err)
	}

	p, err := NewPointOnCurveProj(curve, geom.Degree(), 1e-4, 1e-9)
	if err != nil {
		tst.Fatalf("NewPointOnCurveProj failed: %v", err)
	}

	// sample at twice the radius, along the 45-degree direction: should
	// project to the circle's midpoint (sqrt2/2, sqrt2/2).
	sample := []float64{math.Sqrt2, math.Sqrt2}
	_, point, err := p.Compute(sample)
	if err != nil {
		tst.Fatalf("Compute failed: %v", err)
	}
	want := []float64{math.Sqrt2 / 2, math.Sqrt2 / 2}
	chk.Vector(tst, "projected point", 1e-6, point, want)
}

// Test_curveproj02 checks the endpoint guard: a point beyond the
// curve's start should project onto the t=0 endpoint.
func Test_curveproj02(tst *testing.T) {

	chk.PrintTitle("curveproj02")

	geom, err := nurbs.NewNurbsCurve(1, nurbs.Knots{0, 1}, [][]float64{{0, 0}, {1, 0}}, nil)
	if err != nil {
		tst.Fatalf("NewNurbsCurve failed: %v", err)
	}
	curve, err := nurbs.NewCurve(geom, geom.Domain())
	if err != nil {
		tst.Fatalf("NewCurve failed: %v", err)
	}
	p, err := NewPointOnCurveProj(curve, geom.Degree(), 1e-4, 1e-9)
	if err != nil {
		tst.Fatalf("NewPointOnCurveProj failed: %v", err)
	}

	t, point, err := p.Compute([]float64{-1, 0.5})
	if err != nil {
		tst.Fatalf("Compute failed: %v", err)
	}
	if t != 0 {
		tst.Errorf("t = %g, want 0", t)
	}
	chk.Vector(tst, "endpoint", 1e-12, point, []float64{0, 0})
}
