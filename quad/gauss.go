// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package quad supplies fixed quadrature rules used by the geometry
// kernel: 1D Gauss-Legendre (and its tensor-product 2D form) over a
// parametric rectangle, and Xiao-Gimbutas barycentric rules over a
// triangle, plus the polygon integration-point assembler (spec §4.11,
// §4.13).
package quad

import "github.com/cpmech/gonurbs/kerr"

// Point1D is a 1D quadrature point: parameter t and weight.
type Point1D struct {
	T      float64
	Weight float64
}

// Point2D is a 2D quadrature point over a (u,v) rectangle.
type Point2D struct {
	U, V   float64
	Weight float64
}

// gaussLegendre holds abscissae/weights on the reference interval
// [-1,1] for n points, exact for polynomials up to degree 2n-1.
var gaussLegendre = map[int][][2]float64{
	1: {{0, 2}},
	2: {
		{-0.5773502691896257, 1},
		{0.5773502691896257, 1},
	},
	3: {
		{-0.7745966692414834, 0.5555555555555556},
		{0, 0.8888888888888888},
		{0.7745966692414834, 0.5555555555555556},
	},
	4: {
		{-0.8611363115940526, 0.3478548451374538},
		{-0.3399810435848563, 0.6521451548625461},
		{0.3399810435848563, 0.6521451548625461},
		{0.8611363115940526, 0.3478548451374538},
	},
	5: {
		{-0.9061798459386640, 0.2369268850561891},
		{-0.5384693101056831, 0.4786286704993665},
		{0, 0.5688888888888889},
		{0.5384693101056831, 0.4786286704993665},
		{0.9061798459386640, 0.2369268850561891},
	},
	6: {
		{-0.9324695142031521, 0.1713244923791704},
		{-0.6612093864662645, 0.3607615730481386},
		{-0.2386191860831969, 0.4679139345726910},
		{0.2386191860831969, 0.4679139345726910},
		{0.6612093864662645, 0.3607615730481386},
		{0.9324695142031521, 0.1713244923791704},
	},
}

// nbGaussPointsForDegree returns the fewest points n (1..6) whose rule
// is exact for polynomials of the given degree (exactness 2n-1 >= degree).
func nbGaussPointsForDegree(degree int) (int, error) {
	if degree < 0 {
		return 0, kerr.New(kerr.InvalidParameter, "quadrature degree must be >= 0, got %d", degree)
	}
	n := (degree + 2) / 2
	if n < 1 {
		n = 1
	}
	if n > 6 {
		return 0, kerr.New(kerr.InvalidParameter, "no tabulated Gauss-Legendre rule exact for degree %d (max 6 points)", degree)
	}
	return n, nil
}

// GaussLegendre1D returns nbPoints quadrature points mapped from [-1,1]
// onto [t0,t1].
func GaussLegendre1D(nbPoints int, t0, t1 float64) ([]Point1D, error) {
	table, ok := gaussLegendre[nbPoints]
	if !ok {
		return nil, kerr.New(kerr.InvalidParameter, "no tabulated Gauss-Legendre rule with %d points", nbPoints)
	}
	half := (t1 - t0) / 2
	mid := (t1 + t0) / 2
	out := make([]Point1D, len(table))
	for i, pw := range table {
		out[i] = Point1D{T: mid + half*pw[0], Weight: half * pw[1]}
	}
	return out, nil
}

// GaussLegendreForDegree is GaussLegendre1D using the fewest points
// exact for the given polynomial degree.
func GaussLegendreForDegree(degree int, t0, t1 float64) ([]Point1D, error) {
	n, err := nbGaussPointsForDegree(degree)
	if err != nil {
		return nil, err
	}
	return GaussLegendre1D(n, t0, t1)
}

// TensorGaussLegendre2D returns the tensor-product rule over the
// rectangle [u0,u1] x [v0,v1], exact for the given degree along each axis.
func TensorGaussLegendre2D(degreeU, degreeV int, u0, u1, v0, v1 float64) ([]Point2D, error) {
	pu, err := GaussLegendreForDegree(degreeU, u0, u1)
	if err != nil {
		return nil, err
	}
	pv, err := GaussLegendreForDegree(degreeV, v0, v1)
	if err != nil {
		return nil, err
	}
	out := make([]Point2D, 0, len(pu)*len(pv))
	for _, a := range pu {
		for _, b := range pv {
			out = append(out, Point2D{U: a.T, V: b.T, Weight: a.Weight * b.Weight})
		}
	}
	return out, nil
}
