// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nurbs

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// PlotPoints dumps the first two coordinates of pts as a curve on the
// current matplotlib-script figure, in the idiom of mreten/plot.go:
// call plt.Show (or write the script to disk) once the caller is done
// adding series. args follows gosl/plt's raw-matplotlib-kwargs
// convention, e.g. "'b.-'".
func PlotPoints(pts [][]float64, args, label string) {
	if len(pts) == 0 {
		return
	}
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p[0]
		ys[i] = p[1]
	}
	plt.Plot(xs, ys, io.Sf("%s, label='%s', clip_on=0", args, label))
}

// PlotPolesWireframe draws the control polygon of a curve's poles (2D
// projection), useful alongside PlotPoints to compare a curve against
// its control net.
func PlotPolesWireframe(poles [][]float64, args string) {
	PlotPoints(poles, args, "control polygon")
}

// PlotEnd finalizes the figure: cross-hair axes, grid and labels, and
// optionally calls plt.Show.
func PlotEnd(xlabel, ylabel string, show bool) {
	plt.Cross()
	plt.Gll(xlabel, ylabel, "")
	if show {
		plt.Show()
	}
}
