// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import "github.com/cpmech/gonurbs/kerr"

// BarycentricPoint is one normalized (a+b+c=1) quadrature point over
// the reference triangle, with its weight normalized so that summing
// weight over the rule gives 1 (the reference triangle's area in
// barycentric terms); callers scale by triangleArea.
type BarycentricPoint struct {
	A, B, C float64
	Weight  float64
}

// xiaoGimbutas holds fixed-size symmetric quadrature rules over a
// triangle for low polynomial degrees, a standard published table
// (Xiao & Gimbutas, "A numerical algorithm for the construction of
// efficient quadrature rules in two and higher dimensions", 2010).
var xiaoGimbutas = map[int][]BarycentricPoint{
	1: {
		{A: 1.0 / 3, B: 1.0 / 3, C: 1.0 / 3, Weight: 1.0},
	},
	2: {
		{A: 2.0 / 3, B: 1.0 / 6, C: 1.0 / 6, Weight: 1.0 / 3},
		{A: 1.0 / 6, B: 2.0 / 3, C: 1.0 / 6, Weight: 1.0 / 3},
		{A: 1.0 / 6, B: 1.0 / 6, C: 2.0 / 3, Weight: 1.0 / 3},
	},
	3: {
		{A: 1.0 / 3, B: 1.0 / 3, C: 1.0 / 3, Weight: -0.5625},
		{A: 0.6, B: 0.2, C: 0.2, Weight: 0.520833333333333},
		{A: 0.2, B: 0.6, C: 0.2, Weight: 0.520833333333333},
		{A: 0.2, B: 0.2, C: 0.6, Weight: 0.520833333333333},
	},
	4: {
		{A: 0.108103018168070, B: 0.445948490915965, C: 0.445948490915965, Weight: 0.223381589678011},
		{A: 0.445948490915965, B: 0.108103018168070, C: 0.445948490915965, Weight: 0.223381589678011},
		{A: 0.445948490915965, B: 0.445948490915965, C: 0.108103018168070, Weight: 0.223381589678011},
		{A: 0.816847572980459, B: 0.091576213509771, C: 0.091576213509771, Weight: 0.109951743655322},
		{A: 0.091576213509771, B: 0.816847572980459, C: 0.091576213509771, Weight: 0.109951743655322},
		{A: 0.091576213509771, B: 0.091576213509771, C: 0.816847572980459, Weight: 0.109951743655322},
	},
	5: {
		{A: 1.0 / 3, B: 1.0 / 3, C: 1.0 / 3, Weight: 0.225},
		{A: 0.470142064105115, B: 0.470142064105115, C: 0.059715871789770, Weight: 0.132394152788506},
		{A: 0.470142064105115, B: 0.059715871789770, C: 0.470142064105115, Weight: 0.132394152788506},
		{A: 0.059715871789770, B: 0.470142064105115, C: 0.470142064105115, Weight: 0.132394152788506},
		{A: 0.101286507323456, B: 0.101286507323456, C: 0.797426985353087, Weight: 0.125939180544827},
		{A: 0.101286507323456, B: 0.797426985353087, C: 0.101286507323456, Weight: 0.125939180544827},
		{A: 0.797426985353087, B: 0.101286507323456, C: 0.101286507323456, Weight: 0.125939180544827},
	},
}

// XiaoGimbutas returns the quadrature rule exact for polynomials of the
// given degree (1..5 tabulated), with weights normalized to sum to 1.
func XiaoGimbutas(degree int) ([]BarycentricPoint, error) {
	if degree < 1 {
		degree = 1
	}
	rule, ok := xiaoGimbutas[degree]
	if !ok {
		return nil, kerr.New(kerr.InvalidParameter, "no tabulated Xiao-Gimbutas rule for degree %d (1..5 tabulated)", degree)
	}
	return rule, nil
}
