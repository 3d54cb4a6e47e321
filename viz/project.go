// Copyright 2026 The ME700 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viz renders the deformed beam: isometric projection of the mesh
// skin, one PNG frame per output time, and the assembled animated GIF.
package viz

import (
	"github.com/rishabh022298/ME700-Assignment4Part1/fea"
)

const cos30 = 0.8660254037844386

// Project maps a 3D point to the isometric drawing plane, viewed from the
// (1,1,1) direction with z up. depth grows towards the viewer, so faces
// sorted by ascending depth are painted back to front
func Project(p []float64) (x, y, depth float64) {
	x = (p[0] - p[1]) * cos30
	y = p[2] + (p[0]+p[1])*0.5
	depth = p[0] + p[1] + p[2]
	return
}

// warped returns X[id] + warp·U[id]
func warped(res *fea.Results, snap *fea.Snapshot, id int, warp float64) []float64 {
	x := res.X[id]
	u := snap.U[id]
	return []float64{x[0] + warp*u[0], x[1] + warp*u[1], x[2] + warp*u[2]}
}

// Extents computes the drawing-plane bounding box of all warped snapshots,
// padded by 5%. Frames share these bounds so the animation does not jitter
func Extents(res *fea.Results, warp float64) (xmin, xmax, ymin, ymax float64) {
	first := true
	grow := func(x, y float64) {
		if first {
			xmin, xmax, ymin, ymax = x, x, y, y
			first = false
			return
		}
		if x < xmin {
			xmin = x
		}
		if x > xmax {
			xmax = x
		}
		if y < ymin {
			ymin = y
		}
		if y > ymax {
			ymax = y
		}
	}
	for id := range res.X {
		x, y, _ := Project(res.X[id])
		grow(x, y)
	}
	for _, snap := range res.Snaps {
		for id := range res.X {
			x, y, _ := Project(warped(res, snap, id, warp))
			grow(x, y)
		}
	}
	dx, dy := xmax-xmin, ymax-ymin
	xmin, xmax = xmin-0.05*dx, xmax+0.05*dx
	ymin, ymax = ymin-0.05*dy, ymax+0.05*dy
	return
}
