// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clip

import (
	"testing"

	"github.com/cpmech/gonurbs/nurbs"
	"github.com/cpmech/gosl/chk"
)

// identitySquareSurface builds S(u,v) = (u,v,0) over [0,2]x[0,2] with
// one interior knot per axis, giving a 2x2 grid of spans.
func identitySquareSurface(tst *testing.T) *nurbs.NurbsSurface {
	knots := nurbs.Knots{0, 1, 2}
	poles := make([][]float64, 0, 9)
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			poles = append(poles, []float64{float64(a), float64(b), 0})
		}
	}
	surf, err := nurbs.NewNurbsSurface(1, 1, knots, knots, 3, 3, poles, nil)
	if err != nil {
		tst.Fatalf("NewNurbsSurface failed: %v", err)
	}
	return surf
}

// squareTrimLoop builds a closed 2D curve-on-surface loop tracing the
// axis-aligned square [x0,x1] x [y0,y1] using 4 linear segments.
func squareTrimLoop(tst *testing.T, surf *nurbs.NurbsSurface, x0, y0, x1, y1 float64) []*nurbs.CurveOnSurface {
	corners := [][2]float64{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}, {x0, y0}}
	var curves []*nurbs.CurveOnSurface
	for i := 0; i < 4; i++ {
		geom, err := nurbs.NewNurbsCurve(1, nurbs.Knots{0, 1},
			[][]float64{{corners[i][0], corners[i][1]}, {corners[i+1][0], corners[i+1][1]}}, nil)
		if err != nil {
			tst.Fatalf("NewNurbsCurve failed: %v", err)
		}
		cs, err := nurbs.NewCurveOnSurface(geom, surf, geom.Domain())
		if err != nil {
			tst.Fatalf("NewCurveOnSurface failed: %v", err)
		}
		curves = append(curves, cs)
	}
	return curves
}

// Test_surfaceclipper01 trims a face to the square [0.5,1.5]x[0.5,1.5]
// inside a 2x2-span surface, and checks span classification: the trim
// square overlaps all four spans, so each is Full or Trimmed and none
// is Empty.
func Test_surfaceclipper01(tst *testing.T) {

	chk.PrintTitle("surfaceclipper01")

	surf := identitySquareSurface(tst)
	loop := squareTrimLoop(tst, surf, 0.5, 0.5, 1.5, 1.5)

	clipper, err := NewSurfaceClipper(1e-3, 1e-4)
	if err != nil {
		tst.Fatalf("NewSurfaceClipper failed: %v", err)
	}
	clipper.BeginLoop()
	for _, cs := range loop {
		if err := clipper.AddCurve(cs); err != nil {
			tst.Fatalf("AddCurve failed: %v", err)
		}
	}
	clipper.EndLoop()

	results, err := clipper.Compute(surf.SpansU(), surf.SpansV())
	if err != nil {
		tst.Fatalf("Compute failed: %v", err)
	}
	if len(results) != 2 || len(results[0]) != 2 {
		tst.Fatalf("expected a 2x2 span grid, got %dx%d", len(results), len(results[0]))
	}

	// every span is touched by the trim square [0.5,1.5]x[0.5,1.5]
	// (it straddles the midline in both axes), so none should be Empty.
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if results[i][j].Type == Empty {
				tst.Errorf("span (%d,%d) classified Empty, want Full or Trimmed", i, j)
			}
		}
	}
}

// Test_surfaceclipper02 checks a face with no trim loops at all (the
// untrimmed case) classifies every span Full.
func Test_surfaceclipper02(tst *testing.T) {

	chk.PrintTitle("surfaceclipper02")

	surf := identitySquareSurface(tst)
	clipper, err := NewSurfaceClipper(1e-3, 1e-4)
	if err != nil {
		tst.Fatalf("NewSurfaceClipper failed: %v", err)
	}

	results, err := clipper.Compute(surf.SpansU(), surf.SpansV())
	if err != nil {
		tst.Fatalf("Compute failed: %v", err)
	}
	for i := range results {
		for j := range results[i] {
			if results[i][j].Type != Full {
				tst.Errorf("span (%d,%d) = %v, want Full", i, j, results[i][j].Type)
			}
		}
	}
}
