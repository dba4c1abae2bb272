// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gonurbsdemo loads a model document and either runs face or
// edge integration over a named entry, printing the resulting points
// and total weight. It is the one place in this repository allowed to
// panic on error.
package main

import (
	"github.com/cpmech/gonurbs/brep"
	"github.com/cpmech/gonurbs/store"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	fnamepath, _ := io.ArgToFilename(0, "", ".json", true)
	key := io.ArgToString(1, "face")
	mode := io.ArgToString(2, "face")
	eps := io.ArgToFloat(3, 1e-3)
	tol := io.ArgToFloat(4, 1e-6)

	io.PfWhite("\nGonurbsdemo -- NURBS/BREP geometry kernel\n\n")
	io.Pf("%v\n", io.ArgsTable(
		"model file", "fnamepath", fnamepath,
		"entry key", "key", key,
		"mode (face|edge)", "mode", mode,
		"tessellation tolerance", "eps", eps,
		"numerical tolerance", "tol", tol,
	))

	data := io.ReadFile(fnamepath)
	m, err := store.LoadModel(data)
	if err != nil {
		chk.Panic("%v", err)
	}

	switch mode {
	case "face":
		obj, err := m.Get(key)
		if err != nil {
			chk.Panic("%v", err)
		}
		face, ok := obj.(*brep.Face)
		if !ok {
			chk.Panic("entry %q is not a brep_face: %T", key, obj)
		}
		points, err := brep.FaceIntegration(face, eps, tol)
		if err != nil {
			chk.Panic("%v", err)
		}
		total := 0.0
		for _, p := range points {
			io.Pf("u=%12.6f v=%12.6f weight=%12.6e point=%v\n", p.U, p.V, p.Weight, p.Point)
			total += p.Weight
		}
		io.Pfgreen("\n%d points, total weight = %v\n", len(points), total)

	case "edge":
		obj, err := m.Get(key)
		if err != nil {
			chk.Panic("%v", err)
		}
		edge, ok := obj.(*brep.Edge)
		if !ok {
			chk.Panic("entry %q is not a brep_edge: %T", key, obj)
		}
		points, err := brep.EdgeIntegration(edge, eps, tol)
		if err != nil {
			chk.Panic("%v", err)
		}
		total := 0.0
		for _, p := range points {
			io.Pf("tA=%12.6f tB=%12.6f weight=%12.6e pointA=%v\n", p.TA, p.TB, p.Weight, p.PointA)
			total += p.Weight
		}
		io.Pfgreen("\n%d points, total weight = %v\n", len(points), total)

	default:
		chk.Panic("mode must be 'face' or 'edge', got %q", mode)
	}
}
