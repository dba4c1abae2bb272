// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nurbs

// CurveShapeEvaluator computes, for a given degree p and derivative
// order k, the (k+1)x(p+1) table of B-spline basis derivatives at a
// parameter t inside a span, following the Cox-de Boor recursion. It
// owns its working buffers and is meant to be reused across calls: call
// Resize when degree/order change, exactly like the teacher's
// Shape.GetCopy scratchpad (shp/shp.go) is sized once and reused.
type CurveShapeEvaluator struct {
	degree, order    int
	values           []float64 // (order+1)*(degree+1), row-major by (k,j)
	ndu              []float64 // (degree+1)*(degree+1)
	left, right      []float64
	a, b             []float64
	s                []float64 // rational weighted-sum scratch, order+1
	firstNonzeroPole int
}

// NewCurveShapeEvaluator builds an evaluator sized for degree/order.
func NewCurveShapeEvaluator(degree, order int) *CurveShapeEvaluator {
	e := &CurveShapeEvaluator{}
	e.Resize(degree, order)
	return e
}

// Resize reallocates scratch buffers for a new degree/order. Safe to
// call with the same values repeatedly (no-op beyond bookkeeping).
func (e *CurveShapeEvaluator) Resize(degree, order int) {
	if e.values != nil && e.degree == degree && e.order == order {
		return
	}
	e.degree, e.order = degree, order
	e.values = make([]float64, (order+1)*(degree+1))
	e.ndu = make([]float64, (degree+1)*(degree+1))
	e.left = make([]float64, degree)
	e.right = make([]float64, degree)
	e.a = make([]float64, degree+1)
	e.b = make([]float64, degree+1)
	e.s = make([]float64, order+1)
}

// Degree, Order, NbNonzeroPoles, NbShapes are the evaluator's current
// dimensions.
func (e *CurveShapeEvaluator) Degree() int         { return e.degree }
func (e *CurveShapeEvaluator) Order() int          { return e.order }
func (e *CurveShapeEvaluator) NbNonzeroPoles() int { return e.degree + 1 }
func (e *CurveShapeEvaluator) NbShapes() int       { return e.order + 1 }

// FirstNonzeroPole is the index (into the curve's pole array) of the
// first basis function with nonzero value after the last Compute call.
func (e *CurveShapeEvaluator) FirstNonzeroPole() int { return e.firstNonzeroPole }

// Value returns the k-th derivative of the j-th nonzero basis function
// (j is local, 0..Degree()) after the last Compute/ComputeAtSpan call.
func (e *CurveShapeEvaluator) Value(k, j int) float64 {
	return e.values[k*e.NbNonzeroPoles()+j]
}

func (e *CurveShapeEvaluator) nduAt(i, j int) float64 { return e.ndu[i*(e.degree+1)+j] }
func (e *CurveShapeEvaluator) setNdu(i, j int, v float64) {
	e.ndu[i*(e.degree+1)+j] = v
}
func (e *CurveShapeEvaluator) setValue(k, j int, v float64) {
	e.values[k*e.NbNonzeroPoles()+j] = v
}

// ComputeAtSpan fills the evaluator's table with the unweighted B-spline
// basis derivatives at t, which must lie in the span-th knot interval.
func (e *CurveShapeEvaluator) ComputeAtSpan(knots Knots, span int, t float64) {
	p := e.degree
	nbNZ := e.NbNonzeroPoles()
	nbSh := e.NbShapes()

	for i := range e.values {
		e.values[i] = 0
	}
	e.firstNonzeroPole = span - p + 1

	e.setNdu(0, 0, 1.0)
	for j := 0; j < p; j++ {
		e.left[j] = t - knots[span-j]
		e.right[j] = knots[span+j+1] - t
		saved := 0.0
		for r := 0; r <= j; r++ {
			e.setNdu(j+1, r, e.right[r]+e.left[j-r])
			temp := e.nduAt(r, j) / e.nduAt(j+1, r)
			e.setNdu(r, j+1, saved+e.right[r]*temp)
			saved = e.left[j-r] * temp
		}
		e.setNdu(j+1, j+1, saved)
	}

	for j := 0; j < nbNZ; j++ {
		e.setValue(0, j, e.nduAt(j, p))
	}

	a, b := e.a, e.b
	for r := 0; r < nbNZ; r++ {
		a[0] = 1.0
		for k := 1; k < nbSh; k++ {
			rk := r - k
			pk := p - k
			value := 0.0
			if r >= k {
				b[0] = a[0] / e.nduAt(pk+1, rk)
				value = b[0] * e.nduAt(rk, pk)
			}
			j1 := k - r
			if r >= k-1 {
				j1 = 1
			}
			j2 := p - r
			if r <= pk+1 {
				j2 = k - 1
			}
			for j := j1; j <= j2; j++ {
				b[j] = (a[j] - a[j-1]) / e.nduAt(pk+1, rk+j)
				value += b[j] * e.nduAt(rk+j, pk)
			}
			if r <= pk {
				b[k] = -a[k-1] / e.nduAt(pk+1, r)
				value += b[k] * e.nduAt(r, pk)
			}
			e.setValue(k, r, value)
			a, b = b, a
		}
	}

	scale := float64(p)
	for k := 1; k < nbSh; k++ {
		for j := 0; j < nbNZ; j++ {
			e.setValue(k, j, e.values[k*nbNZ+j]*scale)
		}
		scale *= float64(p - k)
	}
}

// ComputeRationalAtSpan fills the evaluator's table with the rational
// (NURBS) basis derivatives R, given per-pole weights indexed globally
// (weights[firstNonzeroPole+j] is the weight of local pole j). It first
// computes the unweighted N via ComputeAtSpan, then applies the
// quotient rule of spec §4.1.
func (e *CurveShapeEvaluator) ComputeRationalAtSpan(knots Knots, weights []float64, span int, t float64) {
	e.ComputeAtSpan(knots, span, t)
	p := e.degree
	nbNZ := e.NbNonzeroPoles()
	nbSh := e.NbShapes()

	// weight the unweighted values in place: Nw[k][j] = N[k][j]*w_j
	for j := 0; j < nbNZ; j++ {
		w := weights[e.firstNonzeroPole+j]
		for k := 0; k < nbSh; k++ {
			e.values[k*nbNZ+j] *= w
		}
	}

	// S[i] = sum_j Nw[i][j]
	for i := 0; i < nbSh; i++ {
		sum := 0.0
		for j := 0; j < nbNZ; j++ {
			sum += e.values[i*nbNZ+j]
		}
		e.s[i] = sum
	}

	// R[0][j] = Nw[0][j]/S[0] -- done last pass below via generic loop
	// at k=0, numerator is Nw itself (no correction term).
	rvals := make([]float64, len(e.values))
	for j := 0; j < nbNZ; j++ {
		rvals[j] = e.values[j] / e.s[0]
	}
	for k := 1; k < nbSh; k++ {
		for j := 0; j < nbNZ; j++ {
			acc := e.values[k*nbNZ+j]
			for i := 1; i <= k; i++ {
				acc -= binomial(k, i) * e.s[i] * rvals[(k-i)*nbNZ+j]
			}
			rvals[k*nbNZ+j] = acc / e.s[0]
		}
	}
	copy(e.values, rvals)
}

// binomial returns C(n,k) for the small n this evaluator ever sees
// (derivative orders are never more than a handful).
func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	result := 1.0
	for i := 0; i < k; i++ {
		result *= float64(n-i) / float64(i+1)
	}
	return result
}
