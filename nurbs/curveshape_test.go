// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nurbs

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
)

// Test_curveshape01 checks the partition-of-unity invariant of §4.1:
// sum_j N[0][j] == 1 and sum_j N[r][j] == 0 for r >= 1.
func Test_curveshape01(tst *testing.T) {

	chk.PrintTitle("curveshape01")

	degree := 3
	knots := Knots{0, 0, 0, 1, 2, 3, 4, 4, 4}
	nbPoles := NbPoles(degree, len(knots))

	e := NewCurveShapeEvaluator(degree, 2)
	for _, t := range []float64{0, 0.3, 1, 1.7, 3.9, 4} {
		span := UpperSpan(degree, knots, t, nbPoles)
		e.ComputeAtSpan(knots, span, t)

		sum0 := 0.0
		for j := 0; j < e.NbNonzeroPoles(); j++ {
			sum0 += e.Value(0, j)
		}
		chk.Scalar(tst, "sum N[0][.]", 1e-13, sum0, 1)

		for r := 1; r < e.NbShapes(); r++ {
			sum := 0.0
			for j := 0; j < e.NbNonzeroPoles(); j++ {
				sum += e.Value(r, j)
			}
			chk.Scalar(tst, "sum N[r>=1][.]", 1e-10, sum, 0)
		}
	}
}

// Test_curveshape02 checks the first derivative against a central
// finite difference, mirroring shp/t_nurbs_test.go's check_nurbs_dSdR.
func Test_curveshape02(tst *testing.T) {

	chk.PrintTitle("curveshape02")

	degree := 2
	knots := Knots{0, 0, 1, 2, 3, 3}
	nbPoles := NbPoles(degree, len(knots))

	e := NewCurveShapeEvaluator(degree, 1)
	t := 1.4
	span := UpperSpan(degree, knots, t, nbPoles)
	e.ComputeAtSpan(knots, span, t)

	// h is small enough that t+-h stays inside span's knot interval, so
	// the set and order of nonzero poles does not shift under FirstNonzeroPole.
	tmp := NewCurveShapeEvaluator(degree, 0)
	for j := 0; j < e.NbNonzeroPoles(); j++ {
		jj := j
		dNum, _ := num.DerivCentral(func(x float64, args ...interface{}) float64 {
			tmp.ComputeAtSpan(knots, span, x)
			return tmp.Value(0, jj)
		}, t, 1e-3)
		if math.Abs(e.Value(1, j)-dNum) > 1e-6 {
			tst.Errorf("dN%ddt = %v, want (numerical) %v", j, e.Value(1, j), dNum)
		}
	}
}

// Test_curveshape03 checks the rational quotient rule reproduces a
// quarter circle exactly at its midpoint parameter.
func Test_curveshape03(tst *testing.T) {

	chk.PrintTitle("curveshape03")

	degree := 2
	knots := Knots{0, 0, 1, 1}
	weights := []float64{1, math.Sqrt2 / 2, 1}
	nbPoles := NbPoles(degree, len(knots))

	e := NewCurveShapeEvaluator(degree, 0)
	t := 0.5
	span := UpperSpan(degree, knots, t, nbPoles)
	e.ComputeRationalAtSpan(knots, weights, span, t)

	sum := 0.0
	for j := 0; j < e.NbNonzeroPoles(); j++ {
		sum += e.Value(0, j)
	}
	chk.Scalar(tst, "sum R[0][.]", 1e-13, sum, 1)
}
