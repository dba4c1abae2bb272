// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idx

import "sort"

// KDTree is a balanced, median-split static KD-tree over a fixed point
// set, used to seed surface-projection queries (spec §4.9 Stage 1) —
// a different data structure from RTree, which indexes boxes rather
// than points.
type KDTree struct {
	dim    int
	points [][]float64
	order  []int // order[treeIndex] = original point index, laid out as an implicit balanced binary tree
}

// NewKDTree builds a balanced KD-tree over points (each a dim-length
// coordinate vector), cycling through the axes level by level and
// splitting at the median position that keeps the implicit heap layout
// complete, in the idiom of a classic static KD-tree build.
func NewKDTree(points [][]float64) *KDTree {
	if len(points) == 0 {
		return &KDTree{}
	}
	dim := len(points[0])
	idxs := make([]int, len(points))
	for i := range idxs {
		idxs[i] = i
	}
	t := &KDTree{dim: dim, points: points, order: make([]int, len(points))}
	t.build(idxs, 0, 0)
	return t
}

// build recursively median-splits idxs on axis, writing the resulting
// implicit-heap layout into t.order starting at node.
func (t *KDTree) build(idxs []int, axis int, node int) {
	if len(idxs) == 0 {
		return
	}
	sort.Slice(idxs, func(i, j int) bool {
		return t.points[idxs[i]][axis] < t.points[idxs[j]][axis]
	})
	// size of the left subtree of a complete binary tree of n nodes, so
	// every child index 2*node+1, 2*node+2 stays below len(t.order)
	n := len(idxs)
	h := 0
	for 1<<uint(h+1) <= n {
		h++
	}
	mid := 0
	if h > 0 {
		half := 1 << uint(h-1)
		last := n - (1<<uint(h) - 1)
		if last > half {
			last = half
		}
		mid = half - 1 + last
	}
	t.order[node] = idxs[mid]

	nextAxis := (axis + 1) % t.dim
	t.build(idxs[:mid], nextAxis, 2*node+1)
	t.build(idxs[mid+1:], nextAxis, 2*node+2)
}

// Nearest returns the index (into the original points slice passed to
// NewKDTree) of the point closest to query, and the squared distance.
func (t *KDTree) Nearest(query []float64) (index int, distSq float64) {
	index = -1
	distSq = -1
	t.nearest(0, 0, query, &index, &distSq)
	return
}

func (t *KDTree) nearest(node, axis int, query []float64, best *int, bestDistSq *float64) {
	if node >= len(t.order) {
		return
	}
	p := t.points[t.order[node]]
	d := sqDist(p, query)
	if *best < 0 || d < *bestDistSq {
		*best = t.order[node]
		*bestDistSq = d
	}

	diff := query[axis] - p[axis]
	nextAxis := (axis + 1) % t.dim
	near, far := 2*node+1, 2*node+2
	if diff > 0 {
		near, far = far, near
	}
	t.nearest(near, nextAxis, query, best, bestDistSq)
	if diff*diff < *bestDistSq {
		t.nearest(far, nextAxis, query, best, bestDistSq)
	}
}

func sqDist(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return s
}
