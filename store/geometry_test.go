// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"testing"

	"github.com/cpmech/gonurbs/nurbs"
	"github.com/cpmech/gosl/chk"
)

// Test_geometry01 round-trips a line curve through a small JSON document:
// load the geometry and the bounded curve, evaluate it, then save the
// model back and check the re-decoded JSON matches the original shape.
func Test_geometry01(tst *testing.T) {

	chk.PrintTitle("geometry01")

	doc := []byte(`{
		"g1": {"type": "nurbs_curve_geometry", "degree": 1, "nb_poles": 2,
		        "knots": [0, 1], "poles": [[0, 0], [2, 0]]},
		"c1": {"type": "curve", "geometry": "g1", "domain": [0, 1]}
	}`)

	m, err := LoadModel(doc)
	if err != nil {
		tst.Fatalf("LoadModel failed: %v", err)
	}

	obj, err := m.Get("c1")
	if err != nil {
		tst.Fatalf("Get(c1) failed: %v", err)
	}
	curve, ok := obj.(*nurbs.Curve)
	if !ok {
		tst.Fatalf("c1 is not a *nurbs.Curve: %T", obj)
	}
	p, err := curve.PointAt(0.5)
	if err != nil {
		tst.Fatalf("PointAt failed: %v", err)
	}
	chk.Vector(tst, "midpoint", 1e-12, p, []float64{1, 0})

	geomKey, err := m.KeyOf(curve.Geometry)
	if err != nil {
		tst.Fatalf("KeyOf(curve.Geometry) failed: %v", err)
	}
	if geomKey != "g1" {
		tst.Errorf("geomKey = %q, want g1", geomKey)
	}

	out, err := SaveModel(m)
	if err != nil {
		tst.Fatalf("SaveModel failed: %v", err)
	}
	m2, err := LoadModel(out)
	if err != nil {
		tst.Fatalf("LoadModel(round-trip) failed: %v", err)
	}
	obj2, err := m2.Get("c1")
	if err != nil {
		tst.Fatalf("Get(c1) round-trip failed: %v", err)
	}
	curve2 := obj2.(*nurbs.Curve)
	p2, err := curve2.PointAt(0.5)
	if err != nil {
		tst.Fatalf("PointAt round-trip failed: %v", err)
	}
	chk.Vector(tst, "midpoint round-trip", 1e-12, p2, []float64{1, 0})
}

// Test_geometry02 checks that "surface" and "nurbs_surface_geometry"
// entries both resolve to a *nurbs.NurbsSurface and each round-trips
// through its own registered type name, not a colliding one.
func Test_geometry02(tst *testing.T) {

	chk.PrintTitle("geometry02")

	doc := []byte(`{
		"sg1": {"type": "nurbs_surface_geometry", "degree_u": 1, "degree_v": 1,
		         "nb_poles_u": 2, "nb_poles_v": 2,
		         "knots_u": [0, 1], "knots_v": [0, 1],
		         "poles": [[0,0,0], [0,1,0], [1,0,0], [1,1,0]]},
		"s1": {"type": "surface", "geometry": "sg1"}
	}`)

	m, err := LoadModel(doc)
	if err != nil {
		tst.Fatalf("LoadModel failed: %v", err)
	}

	sgObj, err := m.Get("sg1")
	if err != nil {
		tst.Fatalf("Get(sg1) failed: %v", err)
	}
	sObj, err := m.Get("s1")
	if err != nil {
		tst.Fatalf("Get(s1) failed: %v", err)
	}
	if sgObj != sObj {
		tst.Errorf("sg1 and s1 did not resolve to the same underlying surface")
	}

	out, err := SaveModel(m)
	if err != nil {
		tst.Fatalf("SaveModel failed: %v", err)
	}
	m2, err := LoadModel(out)
	if err != nil {
		tst.Fatalf("LoadModel(round-trip) failed: %v", err)
	}
	if _, err := m2.Get("sg1"); err != nil {
		tst.Errorf("round-tripped sg1 failed to load: %v", err)
	}
	if _, err := m2.Get("s1"); err != nil {
		tst.Errorf("round-tripped s1 failed to load: %v", err)
	}
}
