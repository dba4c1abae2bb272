// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nurbs

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// Test_surfaceshape01 checks the tensor-product partition-of-unity
// invariant and the shape-index packing formula of §4.1.
func Test_surfaceshape01(tst *testing.T) {

	chk.PrintTitle("surfaceshape01")

	chk.Scalar(tst, "ShapeIndex(0,0)", 1e-17, float64(ShapeIndex(0, 0)), 0)
	chk.Scalar(tst, "ShapeIndex(1,0)", 1e-17, float64(ShapeIndex(1, 0)), 1)
	chk.Scalar(tst, "ShapeIndex(0,1)", 1e-17, float64(ShapeIndex(0, 1)), 2)
	chk.Scalar(tst, "NbShapes(order=1)", 1e-17, float64(NbShapes(1)), 3)
	chk.Scalar(tst, "NbShapes(order=2)", 1e-17, float64(NbShapes(2)), 6)

	degreeU, degreeV := 2, 3
	knotsU := Knots{0, 0, 1, 2, 2}
	knotsV := Knots{0, 0, 0, 1, 2, 2, 2}
	nbPolesU := NbPoles(degreeU, len(knotsU))
	nbPolesV := NbPoles(degreeV, len(knotsV))

	e := NewSurfaceShapeEvaluator(degreeU, degreeV, 1)
	for _, uv := range [][2]float64{{0, 0}, {0.7, 1.3}, {2, 2}} {
		u, v := uv[0], uv[1]
		spanU := UpperSpan(degreeU, knotsU, u, nbPolesU)
		spanV := UpperSpan(degreeV, knotsV, v, nbPolesV)
		e.ComputeAtSpan(knotsU, knotsV, spanU, spanV, u, v)

		sum := 0.0
		for a := 0; a < e.NbNonzeroPolesU(); a++ {
			for b := 0; b < e.NbNonzeroPolesV(); b++ {
				sum += e.Value(ShapeIndex(0, 0), a, b)
			}
		}
		chk.Scalar(tst, "sum value(0,0)", 1e-12, sum, 1)

		for _, dd := range [][2]int{{1, 0}, {0, 1}} {
			sum = 0.0
			for a := 0; a < e.NbNonzeroPolesU(); a++ {
				for b := 0; b < e.NbNonzeroPolesV(); b++ {
					sum += e.Value(ShapeIndex(dd[0], dd[1]), a, b)
				}
			}
			if math.Abs(sum) > 1e-9 {
				tst.Errorf("sum of derivative shape (%d,%d) = %v, want 0", dd[0], dd[1], sum)
			}
		}
	}
}

// Test_surfaceshape02 checks the rational surface quotient rule
// reproduces a bilinear weighted patch's own partition of unity.
func Test_surfaceshape02(tst *testing.T) {

	chk.PrintTitle("surfaceshape02")

	degreeU, degreeV := 1, 1
	knotsU := Knots{0, 1}
	knotsV := Knots{0, 1}
	nbPolesU, nbPolesV := 2, 2
	weights := []float64{1, 2, 3, 1} // row-major (u,v)

	e := NewSurfaceShapeEvaluator(degreeU, degreeV, 0)
	u, v := 0.3, 0.6
	spanU := UpperSpan(degreeU, knotsU, u, nbPolesU)
	spanV := UpperSpan(degreeV, knotsV, v, nbPolesV)
	weight := func(a, b int) float64 { return weights[a*nbPolesV+b] }
	e.ComputeRationalAtSpan(knotsU, knotsV, spanU, spanV, weight, u, v)

	sum := 0.0
	for a := 0; a < e.NbNonzeroPolesU(); a++ {
		for b := 0; b < e.NbNonzeroPolesV(); b++ {
			sum += e.Value(0, a, b)
		}
	}
	chk.Scalar(tst, "sum R(0,0)", 1e-13, sum, 1)
}
