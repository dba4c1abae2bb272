// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// Test_gauss01 checks that each tabulated rule integrates x^k exactly
// for k up to its claimed exactness degree 2n-1 over [-1,1].
func Test_gauss01(tst *testing.T) {

	chk.PrintTitle("gauss01")

	for n := 1; n <= 6; n++ {
		pts, err := GaussLegendre1D(n, -1, 1)
		if err != nil {
			tst.Fatalf("GaussLegendre1D(%d) failed: %v", n, err)
		}
		maxK := 2*n - 1
		for k := 0; k <= maxK; k++ {
			got := 0.0
			for _, p := range pts {
				got += p.Weight * math.Pow(p.T, float64(k))
			}
			want := 0.0
			if k%2 == 0 {
				want = 2.0 / float64(k+1)
			}
			if math.Abs(got-want) > 1e-9 {
				tst.Errorf("n=%d, k=%d: got %g, want %g", n, k, got, want)
			}
		}
	}
}

// Test_gauss02 checks the tensor-product 2D rule reproduces the exact
// integral of u^2*v^2 over a rectangle.
func Test_gauss02(tst *testing.T) {

	chk.PrintTitle("gauss02")

	pts, err := TensorGaussLegendre2D(2, 2, 0, 2, 0, 3)
	if err != nil {
		tst.Fatalf("TensorGaussLegendre2D failed: %v", err)
	}
	got := 0.0
	for _, p := range pts {
		got += p.Weight * p.U * p.U * p.V * p.V
	}
	// integral_0^2 u^2 du * integral_0^3 v^2 dv = (8/3)*(9) = 24
	want := (8.0 / 3) * 9.0
	if math.Abs(got-want) > 1e-9 {
		tst.Errorf("got %g, want %g", got, want)
	}
}
