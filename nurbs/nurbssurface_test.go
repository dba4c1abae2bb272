// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nurbs

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func bilinearPatch(tst *testing.T) *NurbsSurface {
	poles := [][]float64{
		{0, 0, 0}, // (u=0,v=0)
		{0, 1, 1}, // (u=0,v=1)
		{1, 0, 2}, // (u=1,v=0)
		{1, 1, 3}, // (u=1,v=1)
	}
	s, err := NewNurbsSurface(1, 1, Knots{0, 1}, Knots{0, 1}, 2, 2, poles, nil)
	if err != nil {
		tst.Fatalf("NewNurbsSurface failed: %v", err)
	}
	return s
}

// Test_nurbssurface01 checks corner interpolation and bilinear
// averaging at the patch centre.
func Test_nurbssurface01(tst *testing.T) {

	chk.PrintTitle("nurbssurface01")

	s := bilinearPatch(tst)

	p00, err := s.PointAt(0, 0)
	if err != nil {
		tst.Fatalf("PointAt(0,0) failed: %v", err)
	}
	chk.Vector(tst, "P(0,0)", 1e-14, p00, []float64{0, 0, 0})

	p11, err := s.PointAt(1, 1)
	if err != nil {
		tst.Fatalf("PointAt(1,1) failed: %v", err)
	}
	chk.Vector(tst, "P(1,1)", 1e-14, p11, []float64{1, 1, 3})

	pc, err := s.PointAt(0.5, 0.5)
	if err != nil {
		tst.Fatalf("PointAt(0.5,0.5) failed: %v", err)
	}
	chk.Vector(tst, "P(0.5,0.5)", 1e-14, pc, []float64{0.5, 0.5, 1.5})
}

// Test_nurbssurface02 checks that an order-1 request returns
// NbShapes(1) entries (value + first partials) and that both first
// partials match their constant values on a parallelogram patch.
func Test_nurbssurface02(tst *testing.T) {

	chk.PrintTitle("nurbssurface02")

	s := bilinearPatch(tst)
	derivs, err := s.DerivativesAt(0.25, 0.75, 1)
	if err != nil {
		tst.Fatalf("DerivativesAt failed: %v", err)
	}
	if len(derivs) != NbShapes(1) {
		tst.Errorf("len(derivs) = %d, want %d", len(derivs), NbShapes(1))
	}
	// the four poles form a parallelogram (P11-P01 == P10-P00), so both
	// first partials are constant over the whole patch.
	chk.Vector(tst, "dS/du", 1e-14, derivs[ShapeIndex(1, 0)], []float64{1, 0, 2})
	chk.Vector(tst, "dS/dv", 1e-14, derivs[ShapeIndex(0, 1)], []float64{0, 1, 1})
}
