// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"encoding/json"

	"github.com/cpmech/gonurbs/idx"
	"github.com/cpmech/gonurbs/kerr"
	"github.com/cpmech/gonurbs/nurbs"
	"github.com/cpmech/gonurbs/tess"
)

// Point, Line and Polyline are plain D-dimensional geometry primitives
// with no algorithmic behaviour of their own; Box and Polygon reuse the
// kernel's own idx.Box and tess.Polygon types directly.
type Point struct{ Coords []float64 }
type Line struct{ A, B []float64 }
type Polyline struct{ Points [][]float64 }

func init() {
	Register("nurbs_curve_geometry", loadCurveGeometry, saveCurveGeometry)
	Register("nurbs_surface_geometry", loadSurfaceGeometry, saveSurfaceGeometry)
	Register("curve", loadCurve, saveCurve)
	Register("surface", loadSurface, saveSurface)
	Register("curve_on_surface", loadCurveOnSurface, saveCurveOnSurface)
	Register("point", loadPoint, savePoint)
	Register("line", loadLine, saveLine)
	Register("polyline", loadPolyline, savePolyline)
	Register("box", loadBox, saveBox)
	Register("polygon", loadPolygon, savePolygon)
}

type wireCurveGeometry struct {
	Type    string      `json:"type"`
	Degree  int         `json:"degree"`
	NbPoles int         `json:"nb_poles"`
	Knots   []float64   `json:"knots"`
	Poles   [][]float64 `json:"poles"`
	Weights []float64   `json:"weights,omitempty"`
}

func loadCurveGeometry(m *Model, key string, raw json.RawMessage) (interface{}, error) {
	var w wireCurveGeometry
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, kerr.New(kerr.InvalidGeometry, "nurbs_curve_geometry %q: %v", key, err)
	}
	return nurbs.NewNurbsCurve(w.Degree, nurbs.Knots(w.Knots), w.Poles, w.Weights)
}

func saveCurveGeometry(m *Model, obj interface{}) (json.RawMessage, error) {
	c := obj.(*nurbs.NurbsCurve)
	var weights []float64
	if c.IsRational() {
		weights = make([]float64, c.NbPoles())
		for i := range weights {
			weights[i] = c.Weight(i)
		}
	}
	poles := make([][]float64, c.NbPoles())
	for i := range poles {
		poles[i] = c.Pole(i)
	}
	return json.Marshal(wireCurveGeometry{
		Type: "nurbs_curve_geometry", Degree: c.Degree(), NbPoles: c.NbPoles(),
		Knots: []float64(c.Knots()), Poles: poles, Weights: weights,
	})
}

type wireSurfaceGeometry struct {
	Type     string      `json:"type"`
	DegreeU  int         `json:"degree_u"`
	DegreeV  int         `json:"degree_v"`
	NbPolesU int         `json:"nb_poles_u"`
	NbPolesV int         `json:"nb_poles_v"`
	KnotsU   []float64   `json:"knots_u"`
	KnotsV   []float64   `json:"knots_v"`
	Poles    [][]float64 `json:"poles"`
	Weights  []float64   `json:"weights,omitempty"`
}

func loadSurfaceGeometry(m *Model, key string, raw json.RawMessage) (interface{}, error) {
	var w wireSurfaceGeometry
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, kerr.New(kerr.InvalidGeometry, "nurbs_surface_geometry %q: %v", key, err)
	}
	return nurbs.NewNurbsSurface(w.DegreeU, w.DegreeV, nurbs.Knots(w.KnotsU), nurbs.Knots(w.KnotsV),
		w.NbPolesU, w.NbPolesV, w.Poles, w.Weights)
}

func saveSurfaceGeometry(m *Model, obj interface{}) (json.RawMessage, error) {
	s := obj.(*nurbs.NurbsSurface)
	var weights []float64
	if s.IsRational() {
		weights = make([]float64, s.NbPolesU()*s.NbPolesV())
		for a := 0; a < s.NbPolesU(); a++ {
			for b := 0; b < s.NbPolesV(); b++ {
				weights[a*s.NbPolesV()+b] = s.Weight(a, b)
			}
		}
	}
	poles := make([][]float64, s.NbPolesU()*s.NbPolesV())
	for a := 0; a < s.NbPolesU(); a++ {
		for b := 0; b < s.NbPolesV(); b++ {
			poles[a*s.NbPolesV()+b] = s.Pole(a, b)
		}
	}
	return json.Marshal(wireSurfaceGeometry{
		Type: "nurbs_surface_geometry", DegreeU: s.DegreeU(), DegreeV: s.DegreeV(),
		NbPolesU: s.NbPolesU(), NbPolesV: s.NbPolesV(),
		KnotsU: []float64(s.KnotsU()), KnotsV: []float64(s.KnotsV()),
		Poles: poles, Weights: weights,
	})
}

type wireCurve struct {
	Type     string     `json:"type"`
	Geometry string     `json:"geometry"`
	Domain   [2]float64 `json:"domain"`
}

func loadCurve(m *Model, key string, raw json.RawMessage) (interface{}, error) {
	var w wireCurve
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, kerr.New(kerr.InvalidGeometry, "curve %q: %v", key, err)
	}
	geomObj, err := m.Get(w.Geometry)
	if err != nil {
		return nil, err
	}
	geom, ok := geomObj.(*nurbs.NurbsCurve)
	if !ok {
		return nil, kerr.New(kerr.OutOfRange, "curve %q: geometry %q is not a nurbs_curve_geometry", key, w.Geometry)
	}
	return nurbs.NewCurve(geom, nurbs.NewInterval(w.Domain[0], w.Domain[1]))
}

func saveCurve(m *Model, obj interface{}) (json.RawMessage, error) {
	c := obj.(*nurbs.Curve)
	geomKey, err := m.KeyOf(c.Geometry)
	if err != nil {
		return nil, err
	}
	d := c.Domain()
	return json.Marshal(wireCurve{Type: "curve", Geometry: geomKey, Domain: [2]float64{d.T0, d.T1}})
}

type wireSurface struct {
	Type     string `json:"type"`
	Geometry string `json:"geometry"`
}

func loadSurface(m *Model, key string, raw json.RawMessage) (interface{}, error) {
	var w wireSurface
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, kerr.New(kerr.InvalidGeometry, "surface %q: %v", key, err)
	}
	geomObj, err := m.Get(w.Geometry)
	if err != nil {
		return nil, err
	}
	surf, ok := geomObj.(*nurbs.NurbsSurface)
	if !ok {
		return nil, kerr.New(kerr.OutOfRange, "surface %q: geometry %q is not a nurbs_surface_geometry", key, w.Geometry)
	}
	return surf, nil
}

func saveSurface(m *Model, obj interface{}) (json.RawMessage, error) {
	s := obj.(*nurbs.NurbsSurface)
	geomKey, err := m.KeyOf(s)
	if err != nil {
		return nil, err
	}
	return json.Marshal(wireSurface{Type: "surface", Geometry: geomKey})
}

type wireCurveOnSurface struct {
	Type            string     `json:"type"`
	CurveGeometry   string     `json:"curve_geometry"`
	SurfaceGeometry string     `json:"surface_geometry"`
	Domain          [2]float64 `json:"domain"`
}

func loadCurveOnSurface(m *Model, key string, raw json.RawMessage) (interface{}, error) {
	var w wireCurveOnSurface
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, kerr.New(kerr.InvalidGeometry, "curve_on_surface %q: %v", key, err)
	}
	curveObj, err := m.Get(w.CurveGeometry)
	if err != nil {
		return nil, err
	}
	curveGeom, ok := curveObj.(*nurbs.NurbsCurve)
	if !ok {
		return nil, kerr.New(kerr.OutOfRange, "curve_on_surface %q: %q is not a nurbs_curve_geometry", key, w.CurveGeometry)
	}
	surfObj, err := m.Get(w.SurfaceGeometry)
	if err != nil {
		return nil, err
	}
	surfGeom, ok := surfObj.(*nurbs.NurbsSurface)
	if !ok {
		return nil, kerr.New(kerr.OutOfRange, "curve_on_surface %q: %q is not a nurbs_surface_geometry", key, w.SurfaceGeometry)
	}
	return nurbs.NewCurveOnSurface(curveGeom, surfGeom, nurbs.NewInterval(w.Domain[0], w.Domain[1]))
}

func saveCurveOnSurface(m *Model, obj interface{}) (json.RawMessage, error) {
	cs := obj.(*nurbs.CurveOnSurface)
	curveKey, err := m.KeyOf(cs.Geometry2D)
	if err != nil {
		return nil, err
	}
	surfKey, err := m.KeyOf(cs.Surface)
	if err != nil {
		return nil, err
	}
	d := cs.Domain()
	return json.Marshal(wireCurveOnSurface{
		Type: "curve_on_surface", CurveGeometry: curveKey, SurfaceGeometry: surfKey,
		Domain: [2]float64{d.T0, d.T1},
	})
}

type wirePoint struct {
	Type   string    `json:"type"`
	Coords []float64 `json:"coords"`
}

func loadPoint(m *Model, key string, raw json.RawMessage) (interface{}, error) {
	var w wirePoint
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, kerr.New(kerr.InvalidGeometry, "point %q: %v", key, err)
	}
	return &Point{Coords: w.Coords}, nil
}

func savePoint(m *Model, obj interface{}) (json.RawMessage, error) {
	p := obj.(*Point)
	return json.Marshal(wirePoint{Type: "point", Coords: p.Coords})
}

type wireLine struct {
	Type string    `json:"type"`
	A    []float64 `json:"a"`
	B    []float64 `json:"b"`
}

func loadLine(m *Model, key string, raw json.RawMessage) (interface{}, error) {
	var w wireLine
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, kerr.New(kerr.InvalidGeometry, "line %q: %v", key, err)
	}
	return &Line{A: w.A, B: w.B}, nil
}

func saveLine(m *Model, obj interface{}) (json.RawMessage, error) {
	l := obj.(*Line)
	return json.Marshal(wireLine{Type: "line", A: l.A, B: l.B})
}

type wirePolyline struct {
	Type   string      `json:"type"`
	Points [][]float64 `json:"points"`
}

func loadPolyline(m *Model, key string, raw json.RawMessage) (interface{}, error) {
	var w wirePolyline
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, kerr.New(kerr.InvalidGeometry, "polyline %q: %v", key, err)
	}
	return &Polyline{Points: w.Points}, nil
}

func savePolyline(m *Model, obj interface{}) (json.RawMessage, error) {
	p := obj.(*Polyline)
	return json.Marshal(wirePolyline{Type: "polyline", Points: p.Points})
}

type wireBox struct {
	Type string    `json:"type"`
	Min  []float64 `json:"min"`
	Max  []float64 `json:"max"`
}

func loadBox(m *Model, key string, raw json.RawMessage) (interface{}, error) {
	var w wireBox
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, kerr.New(kerr.InvalidGeometry, "box %q: %v", key, err)
	}
	return &idx.Box{Min: w.Min, Max: w.Max}, nil
}

func saveBox(m *Model, obj interface{}) (json.RawMessage, error) {
	b := obj.(*idx.Box)
	return json.Marshal(wireBox{Type: "box", Min: b.Min, Max: b.Max})
}

type wirePolygon struct {
	Type  string        `json:"type"`
	Outer [][2]float64  `json:"outer"`
	Holes [][][2]float64 `json:"holes,omitempty"`
}

func loadPolygon(m *Model, key string, raw json.RawMessage) (interface{}, error) {
	var w wirePolygon
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, kerr.New(kerr.InvalidGeometry, "polygon %q: %v", key, err)
	}
	return &tess.Polygon{Outer: w.Outer, Holes: w.Holes}, nil
}

func savePolygon(m *Model, obj interface{}) (json.RawMessage, error) {
	p := obj.(*tess.Polygon)
	return json.Marshal(wirePolygon{Type: "polygon", Outer: p.Outer, Holes: p.Holes})
}
