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

// flatPlaneSurface builds a bilinear, non-rational surface whose image
// is the z=0 plane over u,v in [0,1]: S(u,v) = (u,v,0).
func flatPlaneSurface(tst *testing.T) *nurbs.NurbsSurface {
	knots := nurbs.Knots{0, 1}
	poles := [][]float64{{0, 0, 0}, {0, 1, 0}, {1, 0, 0}, {1, 1, 0}}
	surf, err := nurbs.NewNurbsSurface(1, 1, knots, knots, 2, 2, poles, nil)
	if err != nil {
		tst.Fatalf("NewNurbsSurface failed: %v", err)
	}
	return surf
}

// Test_surfaceproj01 projects a point above the interior of a flat
// plane surface and checks it converges to the foot of the
// perpendicular.
func Test_surfaceproj01(tst *testing.T) {

	chk.PrintTitle("surfaceproj01")

	surf := flatPlaneSurface(tst)
	p, err := NewPointOnSurfaceProj(surf)
	if err != nil {
		tst.Fatalf("NewPointOnSurfaceProj failed: %v", err)
	}

	res, err := p.Compute([]float64{0.3, 0.7, 2.0})
	if err != nil {
		tst.Fatalf("Compute failed: %v", err)
	}
	if !res.Converged {
		tst.Errorf("expected convergence")
	}
	if math.Abs(res.U-0.3) > 1e-6 || math.Abs(res.V-0.7) > 1e-6 {
		tst.Errorf("(u,v) = (%g,%g), want (0.3,0.7)", res.U, res.V)
	}
	chk.Vector(tst, "projected point", 1e-6, res.Point, []float64{0.3, 0.7, 0})
}
