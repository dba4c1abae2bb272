// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proj

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gonurbs/idx"
	"github.com/cpmech/gonurbs/kerr"
	"github.com/cpmech/gonurbs/nurbs"
)

// PointOnSurfaceProj projects query points onto a NurbsSurface. It
// samples a structured (p_u+1)-per-span x (p_v+1)-per-span parameter
// grid at construction and indexes it with a KD-tree (spec §4.9 Stage
// 1), then refines with a 2x2 Newton iteration (Stage 2).
type PointOnSurfaceProj struct {
	surface *nurbs.NurbsSurface
	us, vs  []float64 // grid_u+1, grid_v+1 distinct parameter values
	gridU   int        // len(us)-1
	gridV   int        // len(vs)-1
	samples [][]float64
	tree    *idx.KDTree
}

// NewPointOnSurfaceProj builds a projector for surface.
func NewPointOnSurfaceProj(surface *nurbs.NurbsSurface) (*PointOnSurfaceProj, error) {
	us, err := gridValues(surface.SpansU(), surface.DegreeU(), surface.DomainU())
	if err != nil {
		return nil, err
	}
	vs, err := gridValues(surface.SpansV(), surface.DegreeV(), surface.DomainV())
	if err != nil {
		return nil, err
	}

	samples := make([][]float64, 0, len(us)*len(vs))
	for _, u := range us {
		for _, v := range vs {
			p, err := surface.PointAt(u, v)
			if err != nil {
				return nil, err
			}
			samples = append(samples, p)
		}
	}

	return &PointOnSurfaceProj{
		surface: surface,
		us:      us, vs: vs,
		gridU: len(us) - 1, gridV: len(vs) - 1,
		samples: samples,
		tree:    idx.NewKDTree(samples),
	}, nil
}

func gridValues(spans []nurbs.Interval, degree int, domain nurbs.Interval) ([]float64, error) {
	if degree < 0 {
		return nil, kerr.New(kerr.InvalidParameter, "degree must be >= 0")
	}
	n := degree + 1
	var out []float64
	for _, s := range spans {
		if s.Length() < 1e-7 {
			continue
		}
		for i := 0; i < n; i++ {
			out = append(out, s.ParameterAt(1.0/float64(n)*float64(i)))
		}
	}
	out = append(out, domain.T1)
	return out, nil
}

// Result is the outcome of a surface projection.
type Result struct {
	Converged bool
	U, V      float64
	Point     []float64
}

// Compute returns the (u,v) on the surface closest to sample.
func (p *PointOnSurfaceProj) Compute(sample []float64) (Result, error) {
	minIdx, _ := p.tree.Nearest(sample)
	o := minIdx / len(p.vs)
	q := minIdx % len(p.vs)

	bestU, bestV := p.us[o], p.vs[q]
	bestSqDist := sqDist(sample, p.samples[minIdx])

	tryTriangle := func(ia, ib, ic int) {
		u, v, pt := p.triangleProjection(sample, ia, ib, ic)
		d := sqDist(sample, pt)
		if d < bestSqDist {
			bestSqDist, bestU, bestV = d, u, v
		}
	}

	if o != p.gridU && q != p.gridV {
		tryTriangle(minIdx, minIdx+len(p.vs), minIdx+1)
	}
	if o != p.gridU && q != 0 {
		tryTriangle(minIdx, minIdx+len(p.vs), minIdx-1)
	}
	if o != 0 && q != p.gridV {
		tryTriangle(minIdx, minIdx-len(p.vs), minIdx+1)
	}
	if o != 0 && q != 0 {
		tryTriangle(minIdx, minIdx-len(p.vs), minIdx-1)
	}

	return p.newton(sample, bestU, bestV)
}

// triangleProjection barycentrically projects sample onto the triangle
// spanned by the surface samples at indices a,b,c, and maps the
// barycentric weights back to (u,v).
func (p *PointOnSurfaceProj) triangleProjection(sample []float64, ia, ib, ic int) (float64, float64, []float64) {
	a, b, c := p.samples[ia], p.samples[ib], p.samples[ic]
	u := sub(b, a)
	v := sub(c, a)
	n := cross3(u, v)
	w := sub(sample, a)
	nn := dot(n, n)
	if nn < 1e-14 {
		return p.paramOf(ia), p.paramOf2(ia), a
	}
	gam := dot(cross3(u, w), n) / nn
	bet := dot(cross3(w, v), n) / nn
	alp := 1 - gam - bet

	ua, va := p.paramOf(ia), p.paramOf2(ia)
	ub, vb := p.paramOf(ib), p.paramOf2(ib)
	uc, vc := p.paramOf(ic), p.paramOf2(ic)

	pu := alp*ua + bet*ub + gam*uc
	pv := alp*va + bet*vb + gam*vc
	pt, err := p.surface.PointAt(p.surface.DomainU().Clamp(pu), p.surface.DomainV().Clamp(pv))
	if err != nil {
		return ua, va, a
	}
	return pu, pv, pt
}

func (p *PointOnSurfaceProj) paramOf(flatIdx int) float64  { return p.us[flatIdx/len(p.vs)] }
func (p *PointOnSurfaceProj) paramOf2(flatIdx int) float64 { return p.vs[flatIdx%len(p.vs)] }

func cross3(a, b []float64) []float64 {
	if len(a) == 2 {
		return []float64{0, 0, a[0]*b[1] - a[1]*b[0]}
	}
	return []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// newton runs the 2x2 Newton iteration (spec §4.9 Stage 2), solving
// the 2x2 linear system with gonum/mat.
func (p *PointOnSurfaceProj) newton(sample []float64, u, v float64) (Result, error) {
	const maxIter = 5
	const ftol, gtol = 1e-8, 1e-8

	du, dv := p.surface.DomainU(), p.surface.DomainV()
	var s [][]float64
	success := false

	for iter := 0; iter < maxIter; iter++ {
		var err error
		s, err = p.surface.DerivativesAt(u, v, 2)
		if err != nil {
			return Result{}, err
		}
		r := sub(sample, s[nurbs.ShapeIndex(0, 0)])
		if dot(r, r) < ftol*ftol {
			success = true
			break
		}
		su, sv := s[nurbs.ShapeIndex(1, 0)], s[nurbs.ShapeIndex(0, 1)]
		g0, g1 := -dot(su, r), -dot(sv, r)
		if g0*g0+g1*g1 < gtol*gtol {
			success = true
			break
		}
		suu, svv, suv := s[nurbs.ShapeIndex(2, 0)], s[nurbs.ShapeIndex(0, 2)], s[nurbs.ShapeIndex(1, 1)]
		hUU := dot(su, su) - dot(suu, r)
		hVV := dot(sv, sv) - dot(svv, r)
		hUV := dot(su, sv) - dot(suv, r)

		h := mat.NewDense(2, 2, []float64{hUU, hUV, hUV, hVV})
		var hInv mat.Dense
		if err := hInv.Inverse(h); err != nil {
			break
		}
		var delta mat.VecDense
		delta.MulVec(&hInv, mat.NewVecDense(2, []float64{-g0, -g1}))

		u = du.Clamp(u + delta.AtVec(0))
		v = dv.Clamp(v + delta.AtVec(1))
	}

	if s == nil {
		var err error
		s, err = p.surface.DerivativesAt(u, v, 0)
		if err != nil {
			return Result{}, err
		}
	}

	return Result{Converged: success, U: u, V: v, Point: s[nurbs.ShapeIndex(0, 0)]}, nil
}
