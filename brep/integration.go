// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package brep

import (
	"math"
	"sort"

	"github.com/cpmech/gonurbs/clip"
	"github.com/cpmech/gonurbs/kerr"
	"github.com/cpmech/gonurbs/nurbs"
	"github.com/cpmech/gonurbs/proj"
	"github.com/cpmech/gonurbs/quad"
)

// FaceIntegrationPoint is one quadrature point over a trimmed face:
// the parameter-space location, the corresponding 3D surface point,
// and the integration weight already scaled by the surface-area
// Jacobian ||S_u x S_v||.
type FaceIntegrationPoint struct {
	U, V   float64
	Point  []float64
	Weight float64
}

// FaceIntegration invokes the trimmed-surface clipper (eps, s are its
// tessellation tolerance and quantization step) and returns quadrature
// points covering the face's trimmed region: a tensor-product Gauss
// rule of degree (p_u+1, p_v+1) for Full spans, and a Xiao-Gimbutas
// rule of degree max(p_u,p_v)+1 per triangulated region for Trimmed
// spans (spec §4.14).
func FaceIntegration(face *Face, eps, s float64) ([]FaceIntegrationPoint, error) {
	clipper, err := clip.NewSurfaceClipper(eps, s)
	if err != nil {
		return nil, err
	}
	for _, loop := range face.Loops {
		clipper.BeginLoop()
		for _, trim := range loop.Trims {
			cs, err := trim.CurveOnSurface()
			if err != nil {
				return nil, err
			}
			if err := clipper.AddCurve(cs); err != nil {
				return nil, err
			}
		}
		clipper.EndLoop()
	}

	spansU, spansV := face.Surface.SpansU(), face.Surface.SpansV()
	results, err := clipper.Compute(spansU, spansV)
	if err != nil {
		return nil, err
	}

	pu, pv := face.Surface.DegreeU(), face.Surface.DegreeV()
	triDegree := pu
	if pv > triDegree {
		triDegree = pv
	}
	triDegree++

	var out []FaceIntegrationPoint
	for i, su := range spansU {
		for j, sv := range spansV {
			res := results[i][j]
			switch res.Type {
			case clip.Empty:
				continue
			case clip.Full:
				pts, err := quad.TensorGaussLegendre2D(pu+1, pv+1, su.T0, su.T1, sv.T0, sv.T1)
				if err != nil {
					return nil, err
				}
				for _, p := range pts {
					fp, err := faceIntegrationPoint(face.Surface, p.U, p.V, p.Weight)
					if err != nil {
						return nil, err
					}
					out = append(out, fp)
				}
			case clip.Trimmed:
				for _, region := range res.Regions {
					pts, err := quad.PolygonIntegrationPoints(region, triDegree)
					if err != nil {
						return nil, err
					}
					for _, p := range pts {
						fp, err := faceIntegrationPoint(face.Surface, p.U, p.V, p.Weight)
						if err != nil {
							return nil, err
						}
						out = append(out, fp)
					}
				}
			}
		}
	}
	return out, nil
}

func faceIntegrationPoint(surface *nurbs.NurbsSurface, u, v, paramWeight float64) (FaceIntegrationPoint, error) {
	d, err := surface.DerivativesAt(u, v, 1)
	if err != nil {
		return FaceIntegrationPoint{}, err
	}
	su, sv := d[nurbs.ShapeIndex(1, 0)], d[nurbs.ShapeIndex(0, 1)]
	jac := norm3(cross(su, sv))
	return FaceIntegrationPoint{U: u, V: v, Point: d[nurbs.ShapeIndex(0, 0)], Weight: paramWeight * jac}, nil
}

func cross(a, b []float64) []float64 {
	if len(a) == 2 {
		return []float64{0, 0, a[0]*b[1] - a[1]*b[0]}
	}
	return []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func norm3(a []float64) float64 {
	s := 0.0
	for _, v := range a {
		s += v * v
	}
	return math.Sqrt(s)
}

// EdgeIntegrationPoint is one quadrature point along a shared edge,
// expressed on both adjacent trims.
type EdgeIntegrationPoint struct {
	TA, TB         float64
	PointA, PointB []float64
	Weight         float64
}

// EdgeIntegration places 1D Gauss points along an edge shared by
// exactly two trims, matching the two trims' own parameterizations
// (spec §4.14). tessTol/tol are the curve-tessellation tolerance and
// Newton convergence tolerance used by the point-on-curve projections
// that align trim A to trim B's breakpoints and back.
func EdgeIntegration(edge *Edge, tessTol, tol float64) ([]EdgeIntegrationPoint, error) {
	if len(edge.Trims) != 2 {
		return nil, kerr.New(kerr.InvalidGeometry, "edge integration requires exactly 2 trims, got %d", len(edge.Trims))
	}
	trimA, trimB := edge.Trims[0], edge.Trims[1]
	csA, err := trimA.CurveOnSurface()
	if err != nil {
		return nil, err
	}
	csB, err := trimB.CurveOnSurface()
	if err != nil {
		return nil, err
	}

	degA, degB := trimA.Geometry.Degree(), trimB.Geometry.Degree()
	projB, err := proj.NewPointOnCurveProj(csB, degB, tessTol, tol)
	if err != nil {
		return nil, err
	}
	projA, err := proj.NewPointOnCurveProj(csA, degA, tessTol, tol)
	if err != nil {
		return nil, err
	}

	spansA, spansB := csA.Spans(), csB.Spans()
	domainB := csB.Domain()
	breakpoints := []float64{domainB.T0, domainB.T1}
	for _, sb := range spansB {
		breakpoints = append(breakpoints, sb.T0, sb.T1)
	}
	for _, sa := range spansA {
		pA, err := csA.PointAt(sa.T0)
		if err != nil {
			return nil, err
		}
		tB, _, err := projB.Compute(pA)
		if err != nil {
			return nil, err
		}
		breakpoints = append(breakpoints, tB)
	}
	breakpoints = dedupeSorted(breakpoints, tol)

	pu := maxInt(trimA.loop.face.Surface.DegreeU(), trimA.loop.face.Surface.DegreeV())
	pv := maxInt(trimB.loop.face.Surface.DegreeU(), trimB.loop.face.Surface.DegreeV())
	degree := maxInt(pu, pv) + 1

	var out []EdgeIntegrationPoint
	for i := 0; i+1 < len(breakpoints); i++ {
		t0, t1 := breakpoints[i], breakpoints[i+1]
		if t1-t0 < tol {
			continue
		}
		pts, err := quad.GaussLegendreForDegree(degree, t0, t1)
		if err != nil {
			return nil, err
		}
		for _, p := range pts {
			dB, err := csB.DerivativesAt(p.T, 1)
			if err != nil {
				return nil, err
			}
			pointB, tangentB := dB[0], dB[1]
			weight := p.Weight * norm3(tangentB)

			tA, pointA, err := projA.Compute(pointB)
			if err != nil {
				return nil, err
			}
			out = append(out, EdgeIntegrationPoint{
				TA: tA, TB: p.T,
				PointA: pointA, PointB: pointB,
				Weight: weight,
			})
		}
	}
	return out, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func dedupeSorted(vals []float64, tol float64) []float64 {
	sort.Float64s(vals)
	out := vals[:0:0]
	for _, v := range vals {
		if len(out) == 0 || v-out[len(out)-1] > tol {
			out = append(out, v)
		}
	}
	return out
}
