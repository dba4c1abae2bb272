// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nurbs

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// Test_curveonsurface01 checks that composing a straight parameter-
// space line through the bilinear patch of nurbssurface_test.go
// reproduces the chain rule: d/dt (S o gamma) = S_u*u' + S_v*v'.
func Test_curveonsurface01(tst *testing.T) {

	chk.PrintTitle("curveonsurface01")

	surf := bilinearPatch(tst)

	// gamma(t) = (t, t), a straight diagonal line across [0,1]x[0,1]
	gammaPoles := [][]float64{{0, 0}, {1, 1}}
	gamma, err := NewNurbsCurve(1, Knots{0, 1}, gammaPoles, nil)
	if err != nil {
		tst.Fatalf("NewNurbsCurve(gamma) failed: %v", err)
	}

	cos, err := NewCurveOnSurface(gamma, surf, NewInterval(0, 1))
	if err != nil {
		tst.Fatalf("NewCurveOnSurface failed: %v", err)
	}

	t := 0.4
	derivs, err := cos.DerivativesAt(t, 1)
	if err != nil {
		tst.Fatalf("DerivativesAt failed: %v", err)
	}

	p, err := cos.PointAt(t)
	if err != nil {
		tst.Fatalf("PointAt failed: %v", err)
	}
	chk.Vector(tst, "point", 1e-13, derivs[0], p)

	// gamma' = (1,1) everywhere (degree-1 line); S_u=(1,0,2), S_v=(0,1,1)
	// from the parallelogram patch, so d/dt (S o gamma) = (1,1,3).
	chk.Vector(tst, "d/dt (S o gamma)", 1e-12, derivs[1], []float64{1, 1, 3})
}
