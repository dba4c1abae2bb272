// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tess

import "github.com/cpmech/gonurbs/kerr"

// earClip triangulates the single closed ring (indices into verts) by
// repeatedly clipping convex "ear" vertices that contain no other ring
// vertex, the standard O(n^2) ear-clipping algorithm. Returns
// kerr.OutOfRange if no ear can be found before the ring is exhausted,
// which happens only for self-intersecting or degenerate input.
func earClip(ring []int, verts [][2]float64) ([]Triangle, error) {
	n := len(ring)
	if n < 3 {
		return nil, kerr.New(kerr.OutOfRange, "ring needs at least 3 vertices, got %d", n)
	}

	remaining := make([]int, n)
	copy(remaining, ring)

	// Ensure CCW winding; ear-clipping's convexity test assumes it.
	if signedAreaIdx(remaining, verts) < 0 {
		reverse(remaining)
	}

	var tris []Triangle
	guard := 0
	maxGuard := n * n
	for len(remaining) > 3 {
		guard++
		if guard > maxGuard {
			return nil, kerr.New(kerr.OutOfRange, "ear clipping made no progress, polygon is likely self-intersecting")
		}
		m := len(remaining)
		found := false
		for i := 0; i < m; i++ {
			prev := remaining[(i-1+m)%m]
			cur := remaining[i]
			next := remaining[(i+1)%m]
			if !isConvex(verts[prev], verts[cur], verts[next]) {
				continue
			}
			if anyInside(remaining, i, verts, verts[prev], verts[cur], verts[next]) {
				continue
			}
			tris = append(tris, Triangle{prev, cur, next})
			remaining = append(remaining[:i], remaining[i+1:]...)
			found = true
			break
		}
		if !found {
			return nil, kerr.New(kerr.OutOfRange, "no ear found, polygon is likely self-intersecting")
		}
	}
	tris = append(tris, Triangle{remaining[0], remaining[1], remaining[2]})
	return tris, nil
}

func signedAreaIdx(ring []int, verts [][2]float64) float64 {
	a := 0.0
	n := len(ring)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		pi, pj := verts[ring[i]], verts[ring[j]]
		a += pi[0]*pj[1] - pj[0]*pi[1]
	}
	return a
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func isConvex(a, b, c [2]float64) bool {
	return cross2(a, b, c) > 1e-14
}

func cross2(a, b, c [2]float64) float64 {
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}

func anyInside(ring []int, skip int, verts [][2]float64, a, b, c [2]float64) bool {
	n := len(ring)
	for i, idx := range ring {
		if i == skip || i == (skip-1+n)%n || i == (skip+1)%n {
			continue
		}
		if pointInTriangle(a, b, c, verts[idx]) {
			return true
		}
	}
	return false
}

func pointInTriangle(a, b, c [2]float64, p [2]float64) bool {
	d1 := cross2(a, b, p)
	d2 := cross2(b, c, p)
	d3 := cross2(c, a, p)
	// strict interior only: the duplicated vertices a hole bridge adds
	// sit exactly on an ear's corner and must not block it
	return (d1 > 0 && d2 > 0 && d3 > 0) || (d1 < 0 && d2 < 0 && d3 < 0)
}
