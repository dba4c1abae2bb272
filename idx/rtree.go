// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idx

import (
	"math"
	"sort"

	"github.com/cpmech/gonurbs/kerr"
)

// Box is an axis-aligned D-dimensional box.
type Box struct {
	Min, Max []float64
}

func unionBox(a, b Box) Box {
	dim := len(a.Min)
	out := Box{Min: make([]float64, dim), Max: make([]float64, dim)}
	for i := 0; i < dim; i++ {
		out.Min[i] = math.Min(a.Min[i], b.Min[i])
		out.Max[i] = math.Max(a.Max[i], b.Max[i])
	}
	return out
}

// Intersects reports whether two boxes overlap (closed intervals).
func Intersects(a, b Box) bool {
	for i := range a.Min {
		if a.Max[i] < b.Min[i] || a.Min[i] > b.Max[i] {
			return false
		}
	}
	return true
}

const hilbertBits = 16
const defaultNodeSize = 16

// RTree is a packed Hilbert-sorted R-tree (Agafonkin's Flatbush
// algorithm, ported from ANurbs's RTree<TDimension>): bulk-load n
// boxes, call Finish once, then Query repeatedly. Build is offline and
// monotonic; Query before Finish fails with kerr.NotIndexed, and
// exceeding the declared item count fails with kerr.Capacity.
type RTree struct {
	dim         int
	nodeSize    int
	numItems    int
	boxes       []Box // staged leaf boxes, length numItems until Finish
	order       []int // order[sortedPos] = original item index
	levelStarts []int
	levelCounts []int
	packed      []Box // flat array across all levels after Finish
	finished    bool
}

// NewRTree declares an index for numItems boxes of the given
// dimension, with node fan-out nodeSize (a default of 16 is used if
// nodeSize < 2).
func NewRTree(dim, numItems, nodeSize int) *RTree {
	if nodeSize < 2 {
		nodeSize = defaultNodeSize
	}
	return &RTree{
		dim:      dim,
		nodeSize: nodeSize,
		numItems: numItems,
		boxes:    make([]Box, 0, numItems),
	}
}

// Add stages a box, returning its item index (stable across Finish).
func (t *RTree) Add(b Box) (int, error) {
	if t.finished {
		return 0, kerr.New(kerr.Capacity, "cannot Add after Finish")
	}
	if len(t.boxes) >= t.numItems {
		return 0, kerr.New(kerr.Capacity, "added more than the declared %d items", t.numItems)
	}
	idx := len(t.boxes)
	t.boxes = append(t.boxes, b)
	return idx, nil
}

// Finish sorts the staged boxes by the Hilbert key of their centres
// and packs them bottom-up into fixed fan-out nodes. Must be called
// exactly once, after all items are Added.
func (t *RTree) Finish() {
	n := len(t.boxes)
	if n == 0 {
		t.finished = true
		return
	}

	full := t.boxes[0]
	for _, b := range t.boxes[1:] {
		full = unionBox(full, b)
	}

	m := uint(hilbertBits)
	scale := float64(uint64(1)<<m - 1)
	hvals := make([]uint64, n)
	for i, b := range t.boxes {
		p := make([]uint64, t.dim)
		for d := 0; d < t.dim; d++ {
			c := (b.Min[d] + b.Max[d]) / 2
			rng := full.Max[d] - full.Min[d]
			u := 0.0
			if rng > 0 {
				u = (c - full.Min[d]) / rng
			}
			p[d] = uint64(u * scale)
		}
		hvals[i] = Project(uint(t.dim), m, p)
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return hvals[order[i]] < hvals[order[j]] })
	t.order = order

	packed := make([]Box, 0, n*2)
	for _, idx := range order {
		packed = append(packed, t.boxes[idx])
	}

	levelStarts := []int{0}
	levelCounts := []int{n}
	start, count := 0, n
	for count > 1 {
		next := (count + t.nodeSize - 1) / t.nodeSize
		for i := 0; i < next; i++ {
			lo := start + i*t.nodeSize
			hi := lo + t.nodeSize
			if hi > start+count {
				hi = start + count
			}
			parent := packed[lo]
			for k := lo + 1; k < hi; k++ {
				parent = unionBox(parent, packed[k])
			}
			packed = append(packed, parent)
		}
		levelStarts = append(levelStarts, start+count)
		levelCounts = append(levelCounts, next)
		start += count
		count = next
	}

	t.packed = packed
	t.levelStarts = levelStarts
	t.levelCounts = levelCounts
	t.finished = true
}

// levelOf finds which level an absolute flat index belongs to.
func (t *RTree) levelOf(pos int) int {
	for lvl := len(t.levelStarts) - 1; lvl >= 0; lvl-- {
		if pos >= t.levelStarts[lvl] {
			return lvl
		}
	}
	return 0
}

// Query returns the item indices (in Add order) of every box
// intersecting query, optionally filtered by reject (if non-nil,
// reject(itemIndex) true discards a leaf candidate before it is added
// to the result).
func (t *RTree) Query(query Box, reject func(itemIndex int) bool) ([]int, error) {
	if !t.finished {
		return nil, kerr.New(kerr.NotIndexed, "Query called before Finish")
	}
	if len(t.packed) == 0 {
		return nil, nil
	}

	var out []int
	root := len(t.packed) - 1
	stack := []int{root}
	for len(stack) > 0 {
		pos := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !Intersects(t.packed[pos], query) {
			continue
		}

		lvl := t.levelOf(pos)
		if lvl == 0 {
			itemIndex := t.order[pos]
			if reject == nil || !reject(itemIndex) {
				out = append(out, itemIndex)
			}
			continue
		}

		local := pos - t.levelStarts[lvl]
		childStart := t.levelStarts[lvl-1] + local*t.nodeSize
		childEnd := childStart + t.nodeSize
		if maxChild := t.levelStarts[lvl-1] + t.levelCounts[lvl-1]; childEnd > maxChild {
			childEnd = maxChild
		}
		for c := childStart; c < childEnd; c++ {
			stack = append(stack, c)
		}
	}
	return out, nil
}

// Ray is a parametric ray origin + direction used by QueryRay.
type Ray struct {
	Origin, Direction []float64
}

// QueryRay returns the item indices of every box the ray intersects
// within [tMin,tMax], using the Woo slab algorithm per box.
func (t *RTree) QueryRay(ray Ray, tMin, tMax float64, reject func(itemIndex int) bool) ([]int, error) {
	if !t.finished {
		return nil, kerr.New(kerr.NotIndexed, "QueryRay called before Finish")
	}
	if len(t.packed) == 0 {
		return nil, nil
	}

	var out []int
	root := len(t.packed) - 1
	stack := []int{root}
	for len(stack) > 0 {
		pos := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !rayIntersectsBox(ray, t.packed[pos], tMin, tMax) {
			continue
		}

		lvl := t.levelOf(pos)
		if lvl == 0 {
			itemIndex := t.order[pos]
			if reject == nil || !reject(itemIndex) {
				out = append(out, itemIndex)
			}
			continue
		}

		local := pos - t.levelStarts[lvl]
		childStart := t.levelStarts[lvl-1] + local*t.nodeSize
		childEnd := childStart + t.nodeSize
		if maxChild := t.levelStarts[lvl-1] + t.levelCounts[lvl-1]; childEnd > maxChild {
			childEnd = maxChild
		}
		for c := childStart; c < childEnd; c++ {
			stack = append(stack, c)
		}
	}
	return out, nil
}

// rayIntersectsBox is the Woo slab test: shrink [tMin,tMax] by each
// axis' slab and reject if the interval becomes empty.
func rayIntersectsBox(ray Ray, b Box, tMin, tMax float64) bool {
	for i := range b.Min {
		d := ray.Direction[i]
		if d == 0 {
			if ray.Origin[i] < b.Min[i] || ray.Origin[i] > b.Max[i] {
				return false
			}
			continue
		}
		inv := 1 / d
		t0 := (b.Min[i] - ray.Origin[i]) * inv
		t1 := (b.Max[i] - ray.Origin[i]) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMin > tMax {
			return false
		}
	}
	return true
}
