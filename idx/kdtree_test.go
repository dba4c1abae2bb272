// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idx

import (
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// Test_kdtree01 checks Nearest against brute force over a small
// deterministic pseudo-random point set.
func Test_kdtree01(tst *testing.T) {

	chk.PrintTitle("kdtree01")

	rng := rand.New(rand.NewSource(42))
	pts := make([][]float64, 200)
	for i := range pts {
		pts[i] = []float64{rng.Float64() * 10, rng.Float64() * 10, rng.Float64() * 10}
	}
	tree := NewKDTree(pts)

	queries := [][]float64{{5, 5, 5}, {0, 0, 0}, {10, 10, 10}, {3.3, 7.1, 1.4}}
	for _, q := range queries {
		gotIdx, gotDistSq := tree.Nearest(q)

		wantIdx := -1
		wantDistSq := -1.0
		for i, p := range pts {
			d := sqDist(p, q)
			if wantIdx < 0 || d < wantDistSq {
				wantIdx, wantDistSq = i, d
			}
		}
		if gotIdx != wantIdx {
			tst.Errorf("Nearest(%v) = %d (distSq %v), want %d (distSq %v)", q, gotIdx, gotDistSq, wantIdx, wantDistSq)
		}
	}
}
