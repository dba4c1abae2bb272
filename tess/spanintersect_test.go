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

// identityPlaneSurface builds a piecewise-linear surface S(u,v) =
// (u,v,0) over u in [0,2], v in [0,1], with one interior knot at u=1.
func identityPlaneSurface(tst *testing.T) *nurbs.NurbsSurface {
	knotsU := nurbs.Knots{0, 1, 2}
	knotsV := nurbs.Knots{0, 1}
	poles := make([][]float64, 0, 6)
	for a := 0; a < 3; a++ {
		for b := 0; b < 2; b++ {
			poles = append(poles, []float64{float64(a), float64(b), 0})
		}
	}
	surf, err := nurbs.NewNurbsSurface(1, 1, knotsU, knotsV, 3, 2, poles, nil)
	if err != nil {
		tst.Fatalf("NewNurbsSurface failed: %v", err)
	}
	return surf
}

// Test_spanintersect01 checks that a diagonal trim line crossing u=1
// exactly once is found at the expected parameter.
func Test_spanintersect01(tst *testing.T) {

	chk.PrintTitle("spanintersect01")

	surf := identityPlaneSurface(tst)
	line, err := nurbs.NewNurbsCurve(1, nurbs.Knots{0, 1}, [][]float64{{0.2, 0.3}, {1.8, 0.7}}, nil)
	if err != nil {
		tst.Fatalf("NewNurbsCurve failed: %v", err)
	}
	cs, err := nurbs.NewCurveOnSurface(line, surf, line.Domain())
	if err != nil {
		tst.Fatalf("NewCurveOnSurface failed: %v", err)
	}

	si := NewSpanIntersector(cs, 1e-6)
	roots, err := si.Intersect(false)
	if err != nil {
		tst.Fatalf("Intersect failed: %v", err)
	}
	if len(roots) != 1 {
		tst.Fatalf("expected exactly 1 root, got %v", roots)
	}
	if math.Abs(roots[0]-0.5) > 1e-4 {
		tst.Errorf("root = %g, want 0.5", roots[0])
	}

	// the curve's u-component at the root must equal the knot line u=1
	p, err := cs.PointAt(roots[0])
	if err != nil {
		tst.Fatalf("PointAt failed: %v", err)
	}
	if math.Abs(p[0]-1) > 1e-6 {
		tst.Errorf("u at root = %g, want 1", p[0])
	}
}
