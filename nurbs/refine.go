// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nurbs

import (
	"math"
	"sort"

	"github.com/cpmech/gonurbs/kerr"
	"github.com/cpmech/gosl/la"
)

// InsertKnotsCurve inserts newKnots (need not be pre-sorted; a sorted
// copy is used) into geom's knot vector via Boehm refinement, returning
// a new geometry with the same parameterization: point and derivative
// values at every t are unchanged, and the pole count grows by exactly
// len(newKnots). Rational geometries are refined in homogeneous (w*P,
// w) coordinates and divided out at the end.
func InsertKnotsCurve(geom *NurbsCurve, newKnots []float64) (*NurbsCurve, error) {
	X := append([]float64(nil), newKnots...)
	sort.Float64s(X)
	if len(X) == 0 {
		return nil, kerr.New(kerr.InvalidParameter, "no knots to insert")
	}
	dom := geom.Domain()
	if X[0] < dom.T0-degenerateTol || X[len(X)-1] > dom.T1+degenerateTol {
		return nil, kerr.New(kerr.InvalidParameter, "knot to insert outside domain [%g,%g]", dom.T0, dom.T1)
	}

	p := geom.Degree()
	n := geom.NbPoles() - 1
	U := classicalKnots(geom.knots)
	Pw := make([][]float64, geom.NbPoles())
	for i := range Pw {
		Pw[i] = toHomogeneous(geom.Pole(i), geom.Weight(i))
	}

	Ubar, Qw := refineKnotVectCurve(n, p, U, Pw, X)
	Knew := minimalKnots(Ubar)

	poles := make([][]float64, len(Qw))
	var weights []float64
	if geom.IsRational() {
		weights = make([]float64, len(Qw))
	}
	for i, pw := range Qw {
		pt, w := fromHomogeneous(pw)
		poles[i] = pt
		if geom.IsRational() {
			weights[i] = w
		}
	}
	return NewNurbsCurve(p, Knew, poles, weights)
}

// InsertKnotsSurfaceU inserts newKnots into a surface's U knot vector,
// refining every V-column of poles independently with the same span.
func InsertKnotsSurfaceU(surf *NurbsSurface, newKnots []float64) (*NurbsSurface, error) {
	X := append([]float64(nil), newKnots...)
	sort.Float64s(X)
	if len(X) == 0 {
		return nil, kerr.New(kerr.InvalidParameter, "no knots to insert")
	}
	dom := surf.DomainU()
	if X[0] < dom.T0-degenerateTol || X[len(X)-1] > dom.T1+degenerateTol {
		return nil, kerr.New(kerr.InvalidParameter, "knot to insert outside U domain [%g,%g]", dom.T0, dom.T1)
	}

	p := surf.DegreeU()
	n := surf.NbPolesU() - 1
	U := classicalKnots(surf.knotsU)

	var Ubar []float64
	nbPolesURefined := surf.NbPolesU() + len(X)
	newPoles := make([][]float64, nbPolesURefined*surf.NbPolesV())
	var newWeights []float64
	if surf.IsRational() {
		newWeights = make([]float64, nbPolesURefined*surf.NbPolesV())
	}

	for v := 0; v < surf.NbPolesV(); v++ {
		Pw := make([][]float64, surf.NbPolesU())
		for u := 0; u < surf.NbPolesU(); u++ {
			Pw[u] = toHomogeneous(surf.Pole(u, v), surf.Weight(u, v))
		}
		var Qw [][]float64
		Ubar, Qw = refineKnotVectCurve(n, p, U, Pw, X)
		for u, pw := range Qw {
			pt, w := fromHomogeneous(pw)
			idx := u*surf.NbPolesV() + v
			newPoles[idx] = pt
			if surf.IsRational() {
				newWeights[idx] = w
			}
		}
	}

	Knew := minimalKnots(Ubar)
	return NewNurbsSurface(p, surf.DegreeV(), Knew, surf.knotsV, nbPolesURefined, surf.NbPolesV(), newPoles, newWeights)
}

// InsertKnotsSurfaceV inserts newKnots into a surface's V knot vector,
// refining every U-row of poles independently with the same span.
func InsertKnotsSurfaceV(surf *NurbsSurface, newKnots []float64) (*NurbsSurface, error) {
	X := append([]float64(nil), newKnots...)
	sort.Float64s(X)
	if len(X) == 0 {
		return nil, kerr.New(kerr.InvalidParameter, "no knots to insert")
	}
	dom := surf.DomainV()
	if X[0] < dom.T0-degenerateTol || X[len(X)-1] > dom.T1+degenerateTol {
		return nil, kerr.New(kerr.InvalidParameter, "knot to insert outside V domain [%g,%g]", dom.T0, dom.T1)
	}

	p := surf.DegreeV()
	n := surf.NbPolesV() - 1
	V := classicalKnots(surf.knotsV)

	var Vbar []float64
	nbPolesVRefined := surf.NbPolesV() + len(X)
	newPoles := make([][]float64, surf.NbPolesU()*nbPolesVRefined)
	var newWeights []float64
	if surf.IsRational() {
		newWeights = make([]float64, surf.NbPolesU()*nbPolesVRefined)
	}

	for u := 0; u < surf.NbPolesU(); u++ {
		Pw := make([][]float64, surf.NbPolesV())
		for v := 0; v < surf.NbPolesV(); v++ {
			Pw[v] = toHomogeneous(surf.Pole(u, v), surf.Weight(u, v))
		}
		var Qw [][]float64
		Vbar, Qw = refineKnotVectCurve(n, p, V, Pw, X)
		for v, pw := range Qw {
			pt, w := fromHomogeneous(pw)
			idx := u*nbPolesVRefined + v
			newPoles[idx] = pt
			if surf.IsRational() {
				newWeights[idx] = w
			}
		}
	}

	Vnew := minimalKnots(Vbar)
	return NewNurbsSurface(surf.DegreeU(), p, surf.knotsU, Vnew, surf.NbPolesU(), nbPolesVRefined, newPoles, newWeights)
}

// classicalKnots expands the minimal (clamped-without-duplicated-
// endpoints) convention into the classical Piegl&Tiller full knot
// vector by restoring the one implicit extra copy at each end.
func classicalKnots(k Knots) []float64 {
	U := make([]float64, len(k)+2)
	U[0] = k[0]
	copy(U[1:], k)
	U[len(U)-1] = k[len(k)-1]
	return U
}

// minimalKnots is the inverse of classicalKnots.
func minimalKnots(U []float64) Knots {
	return Knots(append([]float64(nil), U[1:len(U)-1]...))
}

func toHomogeneous(pt []float64, w float64) []float64 {
	hp := make([]float64, len(pt)+1)
	for d, c := range pt {
		hp[d] = c * w
	}
	hp[len(pt)] = w
	return hp
}

func fromHomogeneous(hp []float64) ([]float64, float64) {
	w := hp[len(hp)-1]
	pt := make([]float64, len(hp)-1)
	for d := range pt {
		pt[d] = hp[d] / w
	}
	return pt, w
}

// findSpanClassical locates the knot span of t in a classical
// (Piegl&Tiller, p+1-padded) knot vector U with n+1 poles and degree p.
func findSpanClassical(n, p int, U []float64, t float64) int {
	if t >= U[n+1] {
		return n
	}
	low, high := p, n+1
	mid := (low + high) / 2
	for t < U[mid] || t >= U[mid+1] {
		if t < U[mid] {
			high = mid
		} else {
			low = mid
		}
		mid = (low + high) / 2
	}
	return mid
}

// refineKnotVectCurve is Piegl & Tiller's Algorithm A5.4
// (RefineKnotVectCurve): insert the sorted knots X into the classical
// knot vector U (n+1 poles, degree p, homogeneous poles Pw), returning
// the refined classical knot vector and pole set. Vectors are cloned
// via la.VecClone, matching the teacher's la-based buffer idiom.
func refineKnotVectCurve(n, p int, U []float64, Pw [][]float64, X []float64) ([]float64, [][]float64) {
	m := n + p + 1
	r := len(X) - 1

	Qw := make([][]float64, n+r+2)
	Ubar := make([]float64, m+r+2)

	a := findSpanClassical(n, p, U, X[0])
	b := findSpanClassical(n, p, U, X[r]) + 1

	for j := 0; j <= a-p; j++ {
		Qw[j] = la.VecClone(Pw[j])
	}
	for j := b - 1; j <= n; j++ {
		Qw[j+r+1] = la.VecClone(Pw[j])
	}
	for j := 0; j <= a; j++ {
		Ubar[j] = U[j]
	}
	for j := b + p; j <= m; j++ {
		Ubar[j+r+1] = U[j]
	}

	i := b + p - 1
	k := b + p + r
	for j := r; j >= 0; j-- {
		for X[j] <= U[i] && i > a {
			Qw[k-p-1] = la.VecClone(Pw[i-p-1])
			Ubar[k] = U[i]
			k--
			i--
		}
		Qw[k-p-1] = la.VecClone(Qw[k-p])
		for l := 1; l <= p; l++ {
			ind := k - p + l
			alfa := Ubar[k+l] - X[j]
			if math.Abs(alfa) < 1e-12 {
				Qw[ind-1] = la.VecClone(Qw[ind])
			} else {
				alfa = alfa / (Ubar[k+l] - U[i-p+l])
				Qw[ind-1] = lerpVec(alfa, Qw[ind-1], Qw[ind])
			}
		}
		Ubar[k] = X[j]
		k--
	}
	return Ubar, Qw
}

func lerpVec(alfa float64, a, b []float64) []float64 {
	out := make([]float64, len(a))
	for d := range out {
		out[d] = alfa*a[d] + (1-alfa)*b[d]
	}
	return out
}
