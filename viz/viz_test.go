// Copyright 2026 The ME700 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishabh022298/ME700-Assignment4Part1/fea"
)

// unit cube skin with one face, displaced along x on the far side
func testResults() *fea.Results {
	res := &fea.Results{
		X: [][]float64{
			{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
			{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
		},
		Faces: []fea.Face{
			{Verts: []int{0, 3, 7, 4}, Tag: -10}, // xmin
			{Verts: []int{1, 2, 6, 5}, Tag: -11}, // xmax
		},
	}
	zero := &fea.Snapshot{Time: 0, Temp: 0}
	hot := &fea.Snapshot{Time: 1, Temp: 200}
	for range res.X {
		zero.U = append(zero.U, []float64{0, 0, 0})
		zero.Mag = append(zero.Mag, 0)
	}
	for i := range res.X {
		var ux float64
		if res.X[i][0] > 0.5 { // far side stretched
			ux = 0.2
		}
		hot.U = append(hot.U, []float64{ux, 0, 0})
		hot.Mag = append(hot.Mag, ux)
	}
	res.Snaps = []*fea.Snapshot{zero, hot}
	res.MagMax = 0.2
	return res
}

func TestProject(t *testing.T) {
	// unit axes in the isometric plane
	x, y, d := Project([]float64{1, 0, 0})
	assert.InDelta(t, cos30, x, 1e-15)
	assert.InDelta(t, 0.5, y, 1e-15)
	assert.InDelta(t, 1.0, d, 1e-15)

	x, y, _ = Project([]float64{0, 1, 0})
	assert.InDelta(t, -cos30, x, 1e-15)
	assert.InDelta(t, 0.5, y, 1e-15)

	x, y, _ = Project([]float64{0, 0, 1})
	assert.InDelta(t, 0.0, x, 1e-15)
	assert.InDelta(t, 1.0, y, 1e-15)

	// the origin-far corner of the cube is closest to the viewer
	_, _, dfar := Project([]float64{1, 1, 1})
	assert.Greater(t, dfar, d)
}

func TestExtents(t *testing.T) {
	res := testResults()

	x0, x1, y0, y1 := Extents(res, 0)
	assert.Less(t, x0, x1)
	assert.Less(t, y0, y1)

	// warping stretches +x, so the x range must grow on the right;
	// the left bound only moves by the extra padding
	wx0, wx1, _, _ := Extents(res, 1)
	assert.Greater(t, wx1, x1)
	assert.LessOrEqual(t, wx0, x0)
	assert.InDelta(t, x0, wx0, 0.02)
}

func TestBuildQuads(t *testing.T) {
	res := testResults()
	quads := buildQuads(res, res.Snaps[1], 1)
	require.Len(t, quads, 2)

	// back to front: xmin face before the (displaced) xmax face
	assert.Less(t, quads[0].depth, quads[1].depth)
	assert.InDelta(t, 0.0, quads[0].val, 1e-15)
	assert.InDelta(t, 0.2, quads[1].val, 1e-15)

	// warp moved the xmax vertices by 0.2 along x
	xp, _, _ := Project([]float64{1.2, 0, 0})
	assert.InDelta(t, xp, quads[1].xys[0].X, 1e-12)
}

func TestPalette(t *testing.T) {
	pal := Palette(0.5)
	assert.LessOrEqual(t, len(pal), 256)
	assert.Equal(t, color.Color(color.White), pal[0])
	assert.Equal(t, color.Color(color.Black), pal[1])
}

func TestColorMapRange(t *testing.T) {
	cm := ColorMap(0.5)
	assert.Equal(t, 0.0, cm.Min())
	assert.Equal(t, 0.5, cm.Max())
	_, err := cm.At(0.25)
	assert.NoError(t, err)
}

func TestRenderFrame(t *testing.T) {
	res := testResults()
	opt := &Options{Warp: 1, ClimMax: 0.5, Width: 320, Height: 200}
	x0, x1, y0, y1 := Extents(res, opt.Warp)

	img, err := RenderFrame(res, res.Snaps[1], opt, x0, x1, y0, y1)
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}
