// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package brep holds the boundary-representation topology graph: a
// Brep owns Faces, a Face owns ordered Loops of ordered Trims, and
// Trims on adjacent faces meet at a shared Edge. Forward references
// are plain shared pointers; back-references (Loop.Face, Trim.Loop)
// are unexported plain pointers, never reference-counted — Go's
// garbage collector resolves the resulting cycle without a weak/strong
// distinction.
package brep

import "github.com/cpmech/gonurbs/nurbs"

// Brep is the top-level topology container.
type Brep struct {
	Faces []*Face
}

// Face owns a surface and an ordered set of trim loops bounding it.
// An empty Loops list means the face is untrimmed (its whole domain).
type Face struct {
	Surface *nurbs.NurbsSurface
	Loops   []*Loop
}

// Loop is a closed, ordered sequence of trims bounding a region of a
// face's parameter space. Face is a non-owning back-reference.
type Loop struct {
	face  *Face
	Trims []*Trim
}

// NewLoop builds a loop owned by face.
func NewLoop(face *Face) *Loop { return &Loop{face: face} }

// Face returns the loop's owning face.
func (l *Loop) Face() *Face { return l.face }

// Trim is one 2D parameter-space curve segment of a loop, optionally
// shared with an adjacent face's trim via a common Edge. Loop is a
// non-owning back-reference.
type Trim struct {
	loop     *Loop
	Edge     *Edge
	Geometry *nurbs.NurbsCurve // 2D, in the owning face's surface parameter space
	Domain   nurbs.Interval    // defaults to Geometry.Domain() when unset (see NewTrim)
}

// NewTrim builds a trim owned by loop. If domain is the zero value
// (Length() == 0) it defaults to geometry's own full domain, matching
// the serialized-form default (spec §6).
func NewTrim(loop *Loop, geometry *nurbs.NurbsCurve, domain nurbs.Interval) *Trim {
	if domain.Length() == 0 {
		domain = geometry.Domain()
	}
	return &Trim{loop: loop, Geometry: geometry, Domain: domain}
}

// Loop returns the trim's owning loop.
func (t *Trim) Loop() *Loop { return t.loop }

// CurveOnSurface builds the trim's embedded 3D curve by pairing its 2D
// geometry with the owning face's surface.
func (t *Trim) CurveOnSurface() (*nurbs.CurveOnSurface, error) {
	return nurbs.NewCurveOnSurface(t.Geometry, t.loop.face.Surface, t.Domain)
}

// Edge is the set of trims, typically from two adjacent faces, that
// share a common 3D curve. The engine does not enforce manifoldness:
// Trims may hold any number of entries.
type Edge struct {
	Trims []*Trim
}

// AddFace appends a face to the brep.
func (b *Brep) AddFace(f *Face) { b.Faces = append(b.Faces, f) }
