// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nurbs implements the NURBS evaluation engine: B-spline basis
// functions and their derivatives, curve and tensor-product surface
// geometry, knot refinement, and the small Interval/knot-vector
// arithmetic everything else in the kernel is built on.
package nurbs

import "math"

// degenerateTol is the length below which an Interval is treated as empty.
const degenerateTol = 1e-7

// Interval is a closed 1D parameter range [T0, T1].
type Interval struct {
	T0, T1 float64
}

// NewInterval builds an Interval, normalizing so T0 <= T1.
func NewInterval(t0, t1 float64) Interval {
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return Interval{T0: t0, T1: t1}
}

// Length returns |T1 - T0|.
func (iv Interval) Length() float64 { return math.Abs(iv.T1 - iv.T0) }

// IsEmpty reports whether the interval is degenerate (length < 1e-7).
func (iv Interval) IsEmpty() bool { return iv.Length() < degenerateTol }

// Normalized maps t in [T0,T1] to u in [0,1].
func (iv Interval) Normalized(t float64) float64 {
	return (t - iv.T0) / (iv.T1 - iv.T0)
}

// ParameterAt maps u in [0,1] back to t in [T0,T1].
func (iv Interval) ParameterAt(u float64) float64 {
	return iv.T0 + u*(iv.T1-iv.T0)
}

// Clamp restricts t to [T0,T1].
func (iv Interval) Clamp(t float64) float64 {
	if t < iv.T0 {
		return iv.T0
	}
	if t > iv.T1 {
		return iv.T1
	}
	return t
}

// Contains reports whether t lies within [T0,T1].
func (iv Interval) Contains(t float64) bool {
	return t >= iv.T0 && t <= iv.T1
}

// Intersect returns the overlap of two intervals; the result may be
// empty (see IsEmpty) if they don't overlap.
func Intersect(a, b Interval) Interval {
	t0 := math.Max(a.T0, b.T0)
	t1 := math.Min(a.T1, b.T1)
	if t1 < t0 {
		return Interval{T0: t0, T1: t0}
	}
	return Interval{T0: t0, T1: t1}
}
