// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idx

import (
	"sort"
	"testing"

	"github.com/cpmech/gonurbs/kerr"
	"github.com/cpmech/gosl/chk"
)

func box2(x0, y0, x1, y1 float64) Box {
	return Box{Min: []float64{x0, y0}, Max: []float64{x1, y1}}
}

// Test_rtree01 checks that every box overlapping the query is found
// (completeness) and querying before Finish fails with NotIndexed.
func Test_rtree01(tst *testing.T) {

	chk.PrintTitle("rtree01")

	boxes := []Box{
		box2(0, 0, 1, 1),
		box2(2, 2, 3, 3),
		box2(0.5, 0.5, 1.5, 1.5),
		box2(10, 10, 11, 11),
		box2(1, 1, 2, 2),
	}

	tree := NewRTree(2, len(boxes), 2)
	if _, err := tree.Query(box2(0, 0, 1, 1), nil); !kerr.Is(err, kerr.NotIndexed) {
		tst.Fatalf("expected NotIndexed before Finish, got %v", err)
	}

	for _, b := range boxes {
		if _, err := tree.Add(b); err != nil {
			tst.Fatalf("Add failed: %v", err)
		}
	}
	if _, err := tree.Add(box2(0, 0, 1, 1)); !kerr.Is(err, kerr.Capacity) {
		tst.Fatalf("expected Capacity error on overflow, got %v", err)
	}

	tree.Finish()

	got, err := tree.Query(box2(0.9, 0.9, 1.1, 1.1), nil)
	if err != nil {
		tst.Fatalf("Query failed: %v", err)
	}
	sort.Ints(got)
	want := []int{0, 2, 4} // boxes touching (0.9,0.9)-(1.1,1.1)
	if len(got) != len(want) {
		tst.Fatalf("Query returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			tst.Fatalf("Query returned %v, want %v", got, want)
		}
	}
}

// Test_rtree02 checks the reject callback filters candidates.
func Test_rtree02(tst *testing.T) {

	chk.PrintTitle("rtree02")

	boxes := []Box{box2(0, 0, 1, 1), box2(0, 0, 1, 1), box2(0, 0, 1, 1)}
	tree := NewRTree(2, len(boxes), 16)
	for _, b := range boxes {
		tree.Add(b)
	}
	tree.Finish()

	got, err := tree.Query(box2(0, 0, 1, 1), func(i int) bool { return i == 1 })
	if err != nil {
		tst.Fatalf("Query failed: %v", err)
	}
	if len(got) != 2 {
		tst.Fatalf("Query with reject returned %d items, want 2", len(got))
	}
}
