// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"encoding/json"

	"github.com/cpmech/gonurbs/brep"
	"github.com/cpmech/gonurbs/kerr"
	"github.com/cpmech/gonurbs/nurbs"
)

func init() {
	Register("brep", loadBrep, saveBrep)
	Register("brep_face", loadBrepFace, saveBrepFace)
	Register("brep_loop", loadBrepLoop, saveBrepLoop)
	Register("brep_trim", loadBrepTrim, saveBrepTrim)
	Register("brep_edge", loadBrepEdge, saveBrepEdge)
}

type wireBrepFace struct {
	Type     string   `json:"type"`
	Geometry string   `json:"geometry"`
	Loops    []string `json:"loops"`
}

// loadBrepFace self-registers the face before resolving its loops,
// since each loop's entry references this same face back by key.
func loadBrepFace(m *Model, key string, raw json.RawMessage) (interface{}, error) {
	var w wireBrepFace
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, kerr.New(kerr.InvalidGeometry, "brep_face %q: %v", key, err)
	}
	surfObj, err := m.Get(w.Geometry)
	if err != nil {
		return nil, err
	}
	surf, ok := surfObj.(*nurbs.NurbsSurface)
	if !ok {
		return nil, kerr.New(kerr.OutOfRange, "brep_face %q: geometry %q is not a surface", key, w.Geometry)
	}
	face := &brep.Face{Surface: surf}
	m.put(key, "brep_face", face)
	for _, loopKey := range w.Loops {
		loopObj, err := m.Get(loopKey)
		if err != nil {
			return nil, err
		}
		loop, ok := loopObj.(*brep.Loop)
		if !ok {
			return nil, kerr.New(kerr.OutOfRange, "brep_face %q: %q is not a brep_loop", key, loopKey)
		}
		face.Loops = append(face.Loops, loop)
	}
	return face, nil
}

func saveBrepFace(m *Model, obj interface{}) (json.RawMessage, error) {
	face := obj.(*brep.Face)
	surfKey, err := m.KeyOf(face.Surface)
	if err != nil {
		return nil, err
	}
	loopKeys := make([]string, len(face.Loops))
	for i, l := range face.Loops {
		k, err := m.KeyOf(l)
		if err != nil {
			return nil, err
		}
		loopKeys[i] = k
	}
	return json.Marshal(wireBrepFace{Type: "brep_face", Geometry: surfKey, Loops: loopKeys})
}

type wireBrepLoop struct {
	Type  string   `json:"type"`
	Face  string   `json:"face"`
	Trims []string `json:"trims"`
}

// loadBrepLoop self-registers the loop before resolving its trims,
// since each trim's entry references this same loop back by key.
func loadBrepLoop(m *Model, key string, raw json.RawMessage) (interface{}, error) {
	var w wireBrepLoop
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, kerr.New(kerr.InvalidGeometry, "brep_loop %q: %v", key, err)
	}
	faceObj, err := m.Get(w.Face)
	if err != nil {
		return nil, err
	}
	face, ok := faceObj.(*brep.Face)
	if !ok {
		return nil, kerr.New(kerr.OutOfRange, "brep_loop %q: %q is not a brep_face", key, w.Face)
	}
	loop := brep.NewLoop(face)
	m.put(key, "brep_loop", loop)
	for _, trimKey := range w.Trims {
		trimObj, err := m.Get(trimKey)
		if err != nil {
			return nil, err
		}
		trim, ok := trimObj.(*brep.Trim)
		if !ok {
			return nil, kerr.New(kerr.OutOfRange, "brep_loop %q: %q is not a brep_trim", key, trimKey)
		}
		loop.Trims = append(loop.Trims, trim)
	}
	return loop, nil
}

func saveBrepLoop(m *Model, obj interface{}) (json.RawMessage, error) {
	loop := obj.(*brep.Loop)
	faceKey, err := m.KeyOf(loop.Face())
	if err != nil {
		return nil, err
	}
	trimKeys := make([]string, len(loop.Trims))
	for i, t := range loop.Trims {
		k, err := m.KeyOf(t)
		if err != nil {
			return nil, err
		}
		trimKeys[i] = k
	}
	return json.Marshal(wireBrepLoop{Type: "brep_loop", Face: faceKey, Trims: trimKeys})
}

type wireBrepTrim struct {
	Type     string      `json:"type"`
	Loop     string      `json:"loop"`
	Edge     string      `json:"edge,omitempty"`
	Geometry string      `json:"geometry"`
	Domain   *[2]float64 `json:"domain,omitempty"`
}

// loadBrepTrim self-registers the trim before resolving its optional
// edge, since the edge's entry may reference this same trim back by key.
func loadBrepTrim(m *Model, key string, raw json.RawMessage) (interface{}, error) {
	var w wireBrepTrim
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, kerr.New(kerr.InvalidGeometry, "brep_trim %q: %v", key, err)
	}
	loopObj, err := m.Get(w.Loop)
	if err != nil {
		return nil, err
	}
	loop, ok := loopObj.(*brep.Loop)
	if !ok {
		return nil, kerr.New(kerr.OutOfRange, "brep_trim %q: %q is not a brep_loop", key, w.Loop)
	}
	geomObj, err := m.Get(w.Geometry)
	if err != nil {
		return nil, err
	}
	geom, ok := geomObj.(*nurbs.NurbsCurve)
	if !ok {
		return nil, kerr.New(kerr.OutOfRange, "brep_trim %q: geometry %q is not a nurbs_curve_geometry", key, w.Geometry)
	}
	domain := nurbs.Interval{}
	if w.Domain != nil {
		domain = nurbs.NewInterval(w.Domain[0], w.Domain[1])
	}
	trim := brep.NewTrim(loop, geom, domain)
	m.put(key, "brep_trim", trim)
	if w.Edge != "" {
		edgeObj, err := m.Get(w.Edge)
		if err != nil {
			return nil, err
		}
		edge, ok := edgeObj.(*brep.Edge)
		if !ok {
			return nil, kerr.New(kerr.OutOfRange, "brep_trim %q: edge %q is not a brep_edge", key, w.Edge)
		}
		trim.Edge = edge
	}
	return trim, nil
}

func saveBrepTrim(m *Model, obj interface{}) (json.RawMessage, error) {
	trim := obj.(*brep.Trim)
	loopKey, err := m.KeyOf(trim.Loop())
	if err != nil {
		return nil, err
	}
	geomKey, err := m.KeyOf(trim.Geometry)
	if err != nil {
		return nil, err
	}
	w := wireBrepTrim{Type: "brep_trim", Loop: loopKey, Geometry: geomKey}
	d := trim.Domain
	w.Domain = &[2]float64{d.T0, d.T1}
	if trim.Edge != nil {
		edgeKey, err := m.KeyOf(trim.Edge)
		if err != nil {
			return nil, err
		}
		w.Edge = edgeKey
	}
	return json.Marshal(w)
}

type wireBrepEdge struct {
	Type  string   `json:"type"`
	Trims []string `json:"trims"`
}

// loadBrepEdge self-registers the edge before resolving its trims,
// since a trim entry may already be mid-load and reference this edge.
func loadBrepEdge(m *Model, key string, raw json.RawMessage) (interface{}, error) {
	var w wireBrepEdge
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, kerr.New(kerr.InvalidGeometry, "brep_edge %q: %v", key, err)
	}
	edge := &brep.Edge{}
	m.put(key, "brep_edge", edge)
	for _, trimKey := range w.Trims {
		trimObj, err := m.Get(trimKey)
		if err != nil {
			return nil, err
		}
		trim, ok := trimObj.(*brep.Trim)
		if !ok {
			return nil, kerr.New(kerr.OutOfRange, "brep_edge %q: %q is not a brep_trim", key, trimKey)
		}
		edge.Trims = append(edge.Trims, trim)
	}
	return edge, nil
}

func saveBrepEdge(m *Model, obj interface{}) (json.RawMessage, error) {
	edge := obj.(*brep.Edge)
	trimKeys := make([]string, len(edge.Trims))
	for i, t := range edge.Trims {
		k, err := m.KeyOf(t)
		if err != nil {
			return nil, err
		}
		trimKeys[i] = k
	}
	return json.Marshal(wireBrepEdge{Type: "brep_edge", Trims: trimKeys})
}

type wireBrep struct {
	Type  string   `json:"type"`
	Faces []string `json:"faces"`
	Loops []string `json:"loops,omitempty"`
	Trims []string `json:"trims,omitempty"`
	Edges []string `json:"edges,omitempty"`
}

// loadBrep self-registers the brep before resolving its faces (a face
// never references the brep back, but self-registering first keeps
// the same cache-early discipline as every other graph loader). The
// loops/trims/edges key lists are the document's full index of those
// entries; any not already reached while walking the faces are loaded
// here too, so a later Save round-trips the whole document.
func loadBrep(m *Model, key string, raw json.RawMessage) (interface{}, error) {
	var w wireBrep
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, kerr.New(kerr.InvalidGeometry, "brep %q: %v", key, err)
	}
	b := &brep.Brep{}
	m.put(key, "brep", b)
	for _, faceKey := range w.Faces {
		faceObj, err := m.Get(faceKey)
		if err != nil {
			return nil, err
		}
		face, ok := faceObj.(*brep.Face)
		if !ok {
			return nil, kerr.New(kerr.OutOfRange, "brep %q: %q is not a brep_face", key, faceKey)
		}
		b.AddFace(face)
	}
	for _, k := range w.Loops {
		if _, err := m.Get(k); err != nil {
			return nil, err
		}
	}
	for _, k := range w.Trims {
		if _, err := m.Get(k); err != nil {
			return nil, err
		}
	}
	for _, k := range w.Edges {
		if _, err := m.Get(k); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func saveBrep(m *Model, obj interface{}) (json.RawMessage, error) {
	b := obj.(*brep.Brep)
	faceKeys := make([]string, len(b.Faces))
	for i, f := range b.Faces {
		k, err := m.KeyOf(f)
		if err != nil {
			return nil, err
		}
		faceKeys[i] = k
	}
	return json.Marshal(wireBrep{Type: "brep", Faces: faceKeys})
}
