// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nurbs

// ShapeIndex linearizes a (derivative_u, derivative_v) pair with
// derivative_u+derivative_v <= order into [0, (order+1)(order+2)/2).
func ShapeIndex(du, dv int) int {
	return dv + (du+dv)*(1+du+dv)/2
}

// NbShapes returns the number of (du,dv) pairs packed by ShapeIndex for
// a given combined derivative order.
func NbShapes(order int) int { return (1 + order) * (2 + order) / 2 }

// SurfaceShapeEvaluator computes tensor-product B-spline/NURBS surface
// basis derivatives up to a combined order, reusing two
// CurveShapeEvaluators (one per axis) plus a weighted-sum scratch
// buffer for the rational quotient rule.
type SurfaceShapeEvaluator struct {
	order                        int
	shapeU, shapeV               *CurveShapeEvaluator
	values                       []float64 // [nbShapes][nbNonzeroPolesU*nbNonzeroPolesV]
	weightedSum                  []float64 // [nbShapes]
	firstNonzeroPoleU            int
	firstNonzeroPoleV            int
}

// NewSurfaceShapeEvaluator builds an evaluator for the given axis
// degrees and combined derivative order.
func NewSurfaceShapeEvaluator(degreeU, degreeV, order int) *SurfaceShapeEvaluator {
	e := &SurfaceShapeEvaluator{}
	e.Resize(degreeU, degreeV, order)
	return e
}

// Resize reallocates scratch buffers for new degrees/order.
func (e *SurfaceShapeEvaluator) Resize(degreeU, degreeV, order int) {
	e.order = order
	if e.shapeU == nil {
		e.shapeU = NewCurveShapeEvaluator(degreeU, order)
		e.shapeV = NewCurveShapeEvaluator(degreeV, order)
	} else {
		e.shapeU.Resize(degreeU, order)
		e.shapeV.Resize(degreeV, order)
	}
	e.values = make([]float64, NbShapes(order)*e.NbNonzeroPoles())
	e.weightedSum = make([]float64, NbShapes(order))
}

func (e *SurfaceShapeEvaluator) DegreeU() int           { return e.shapeU.Degree() }
func (e *SurfaceShapeEvaluator) DegreeV() int           { return e.shapeV.Degree() }
func (e *SurfaceShapeEvaluator) Order() int             { return e.order }
func (e *SurfaceShapeEvaluator) NbShapes() int          { return NbShapes(e.order) }
func (e *SurfaceShapeEvaluator) NbNonzeroPolesU() int   { return e.shapeU.NbNonzeroPoles() }
func (e *SurfaceShapeEvaluator) NbNonzeroPolesV() int   { return e.shapeV.NbNonzeroPoles() }
func (e *SurfaceShapeEvaluator) NbNonzeroPoles() int    { return e.NbNonzeroPolesU() * e.NbNonzeroPolesV() }
func (e *SurfaceShapeEvaluator) FirstNonzeroPoleU() int { return e.firstNonzeroPoleU }
func (e *SurfaceShapeEvaluator) FirstNonzeroPoleV() int { return e.firstNonzeroPoleV }

// localPole linearizes the (a,b) local pole index, a in [0,nbU), b in [0,nbV).
func (e *SurfaceShapeEvaluator) localPole(a, b int) int {
	return a*e.NbNonzeroPolesV() + b
}

// Value returns the shape-index-th derivative of the local pole (a,b).
func (e *SurfaceShapeEvaluator) Value(shape, a, b int) float64 {
	return e.values[shape*e.NbNonzeroPoles()+e.localPole(a, b)]
}

func (e *SurfaceShapeEvaluator) setValue(shape, a, b int, v float64) {
	e.values[shape*e.NbNonzeroPoles()+e.localPole(a, b)] = v
}

// ComputeAtSpan fills the unweighted tensor-product basis derivatives.
func (e *SurfaceShapeEvaluator) ComputeAtSpan(knotsU, knotsV Knots, spanU, spanV int, u, v float64) {
	for i := range e.values {
		e.values[i] = 0
	}
	e.firstNonzeroPoleU = spanU - e.DegreeU() + 1
	e.firstNonzeroPoleV = spanV - e.DegreeV() + 1

	e.shapeU.ComputeAtSpan(knotsU, spanU, u)
	e.shapeV.ComputeAtSpan(knotsV, spanV, v)

	for i := 0; i <= e.order; i++ {
		for j := 0; j <= e.order-i; j++ {
			shape := ShapeIndex(i, j)
			for a := 0; a < e.NbNonzeroPolesU(); a++ {
				for b := 0; b < e.NbNonzeroPolesV(); b++ {
					e.setValue(shape, a, b, e.shapeU.Value(i, a)*e.shapeV.Value(j, b))
				}
			}
		}
	}
}

// WeightAt is supplied by the caller to fetch the control-point weight
// for global pole indices (poleU, poleV).
type WeightAt func(poleU, poleV int) float64

// ComputeRationalAtSpan fills the rational (NURBS) tensor-product basis
// derivatives, applying weights axis by axis as in spec §4.1.
func (e *SurfaceShapeEvaluator) ComputeRationalAtSpan(knotsU, knotsV Knots, spanU, spanV int, weight WeightAt, u, v float64) {
	e.ComputeAtSpan(knotsU, knotsV, spanU, spanV, u, v)

	nbU, nbV := e.NbNonzeroPolesU(), e.NbNonzeroPolesV()
	for shape := 0; shape < e.NbShapes(); shape++ {
		sum := 0.0
		for i := 0; i < nbU; i++ {
			for j := 0; j < nbV; j++ {
				w := weight(e.firstNonzeroPoleU+i, e.firstNonzeroPoleV+j)
				nv := e.Value(shape, i, j) * w
				e.setValue(shape, i, j, nv)
				sum += nv
			}
		}
		e.weightedSum[shape] = sum
	}

	for k := 0; k <= e.order; k++ {
		for l := 0; l <= e.order-k; l++ {
			shape := ShapeIndex(k, l)

			for j := 1; j <= l; j++ {
				idx := ShapeIndex(k, l-j)
				a := binomial(l, j) * e.weightedSum[ShapeIndex(0, j)]
				e.subtractScaled(shape, idx, a)
			}
			for i := 1; i <= k; i++ {
				idx := ShapeIndex(k-i, l)
				a := binomial(k, i) * e.weightedSum[ShapeIndex(i, 0)]
				e.subtractScaled(shape, idx, a)
			}
			for i := 1; i <= k; i++ {
				ci := binomial(k, i)
				for j := 1; j <= l; j++ {
					idx := ShapeIndex(k-i, l-j)
					b := ci * binomial(l, j) * e.weightedSum[ShapeIndex(i, j)]
					e.subtractScaled(shape, idx, b)
				}
			}

			s0 := e.weightedSum[0]
			base := shape * e.NbNonzeroPoles()
			for p := 0; p < e.NbNonzeroPoles(); p++ {
				e.values[base+p] /= s0
			}
		}
	}
}

// subtractScaled performs values[shape][:] -= a*values[idx][:] over all
// local poles, in place.
func (e *SurfaceShapeEvaluator) subtractScaled(shape, idx int, a float64) {
	n := e.NbNonzeroPoles()
	sb, ib := shape*n, idx*n
	for p := 0; p < n; p++ {
		e.values[sb+p] -= a * e.values[ib+p]
	}
}
