// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package brep

import (
	"testing"

	"github.com/cpmech/gonurbs/nurbs"
	"github.com/cpmech/gosl/chk"
)

// Test_brep01 checks back-reference wiring and the trim-domain default.
func Test_brep01(tst *testing.T) {

	chk.PrintTitle("brep01")

	surf := flatSurfaceXY(tst)
	face := &Face{Surface: surf}
	loop := NewLoop(face)
	if loop.Face() != face {
		tst.Errorf("loop.Face() did not return the owning face")
	}

	geom, err := nurbs.NewNurbsCurve(1, nurbs.Knots{0, 1}, [][]float64{{0, 0}, {1, 0}}, nil)
	if err != nil {
		tst.Fatalf("NewNurbsCurve failed: %v", err)
	}
	trim := NewTrim(loop, geom, nurbs.Interval{})
	if trim.Loop() != loop {
		tst.Errorf("trim.Loop() did not return the owning loop")
	}
	want := geom.Domain()
	if trim.Domain != want {
		tst.Errorf("trim domain = %v, want default %v", trim.Domain, want)
	}

	loop.Trims = append(loop.Trims, trim)
	face.Loops = append(face.Loops, loop)

	var b Brep
	b.AddFace(face)
	if len(b.Faces) != 1 || b.Faces[0] != face {
		tst.Errorf("AddFace did not register the face")
	}

	cs, err := trim.CurveOnSurface()
	if err != nil {
		tst.Fatalf("CurveOnSurface failed: %v", err)
	}
	p, err := cs.PointAt(0.5)
	if err != nil {
		tst.Fatalf("PointAt failed: %v", err)
	}
	chk.Vector(tst, "midpoint", 1e-12, p, []float64{0.5, 0, 0})
}

// Test_brep02 checks an explicit (non-default) trim domain is kept.
func Test_brep02(tst *testing.T) {

	chk.PrintTitle("brep02")

	surf := flatSurfaceXY(tst)
	face := &Face{Surface: surf}
	loop := NewLoop(face)
	geom, err := nurbs.NewNurbsCurve(1, nurbs.Knots{0, 1}, [][]float64{{0, 0}, {1, 0}}, nil)
	if err != nil {
		tst.Fatalf("NewNurbsCurve failed: %v", err)
	}
	explicit := nurbs.NewInterval(0.25, 0.75)
	trim := NewTrim(loop, geom, explicit)
	if trim.Domain != explicit {
		tst.Errorf("trim domain = %v, want explicit %v", trim.Domain, explicit)
	}
}
