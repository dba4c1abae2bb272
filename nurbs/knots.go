// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nurbs

import "sort"

// Knots is a non-decreasing sequence of real numbers using the
// "clamped-without-duplicated-endpoints" convention: for degree p and n
// poles, len(Knots) == n+p-1.
type Knots []float64

// NbPoles returns n given degree p and the number of knots.
func NbPoles(degree int, nbKnots int) int { return nbKnots - degree + 1 }

// NbKnots returns n+p-1 given degree p and n poles.
func NbKnots(degree, nbPoles int) int { return nbPoles + degree - 1 }

// NbSpans returns the number of knot spans (possibly degenerate) inside
// the domain, given degree p and the number of knots.
func NbSpans(degree, nbKnots int) int { return nbKnots - 2*degree + 1 }

// UpperSpan returns the largest index i in [p-1,n-2] with knots[i] <= t.
// At the right domain boundary it is clamped to n-2 (the last span)
// rather than n-1.
func UpperSpan(degree int, knots Knots, t float64, nbPoles int) int {
	lo, hi := degree-1, nbPoles // search knots[degree-1 .. nbPoles-1]
	span := sort.Search(hi-lo, func(i int) bool {
		return knots[lo+i] > t
	}) + lo - 1
	if span < degree-1 {
		span = degree - 1
	}
	if span > nbPoles-2 {
		span = nbPoles - 2
	}
	return span
}

// LowerSpan returns the largest index i in [p-1,n-2] with knots[i] < t.
func LowerSpan(degree int, knots Knots, t float64, nbPoles int) int {
	lo, hi := degree-1, nbPoles
	span := sort.Search(hi-lo, func(i int) bool {
		return knots[lo+i] >= t
	}) + lo - 1
	if span < degree-1 {
		span = degree - 1
	}
	if span > nbPoles-2 {
		span = nbPoles - 2
	}
	return span
}

// Domain returns the parametric domain [knots[p-1], knots[n-1]] for a
// knot vector of n poles and degree p (0-based indices; the right
// endpoint is the right end of the last span, index n-2, that
// UpperSpan clamps to).
func Domain(degree int, knots Knots, nbPoles int) Interval {
	return Interval{T0: knots[degree-1], T1: knots[nbPoles-1]}
}

// Spans returns the non-degenerate knot spans (as Intervals) inside the
// domain for a knot vector of n poles and degree p.
func Spans(degree int, knots Knots, nbPoles int) []Interval {
	var out []Interval
	for i := degree - 1; i < nbPoles-1; i++ {
		a, b := knots[i], knots[i+1]
		if b-a >= degenerateTol {
			out = append(out, Interval{T0: a, T1: b})
		}
	}
	return out
}
