// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import (
	"math"

	"github.com/cpmech/gonurbs/tess"
)

// PolygonIntegrationPoints triangulates polygon by ear-clipping and
// places one Xiao-Gimbutas rule of the given degree on every triangle,
// scaling each weight by the triangle's (unsigned) area and mapping
// barycentric coordinates to Cartesian (u,v) (spec §4.11).
func PolygonIntegrationPoints(polygon tess.Polygon, degree int) ([]Point2D, error) {
	pt := tess.NewPolygonTessellator()
	triangles, err := pt.Triangulate(polygon)
	if err != nil {
		return nil, err
	}
	rule, err := XiaoGimbutas(degree)
	if err != nil {
		return nil, err
	}

	verts := polygon.Vertices()
	out := make([]Point2D, 0, len(triangles)*len(rule))
	for _, t := range triangles {
		a, b, c := verts[t[0]], verts[t[1]], verts[t[2]]
		abX, abY := b[0]-a[0], b[1]-a[1]
		acX, acY := c[0]-a[0], c[1]-a[1]
		area2 := math.Abs(abX*acY - abY*acX)

		for _, p := range rule {
			u := a[0]*p.A + b[0]*p.B + c[0]*p.C
			v := a[1]*p.A + b[1]*p.B + c[1]*p.C
			out = append(out, Point2D{U: u, V: v, Weight: area2 * p.Weight / 2})
		}
	}
	return out, nil
}
