// Copyright 2026 The ME700 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"image"
	"image/color"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	vgdraw "gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/rishabh022298/ME700-Assignment4Part1/fea"
)

// Options holds rendering parameters
type Options struct {
	Warp      float64 // warp factor applied to displacements
	ClimMax   float64 // upper bound of the |u| colour range
	Fps       int     // GIF frames per second
	Width     int     // frame width [px]
	Height    int     // frame height [px]
	Gif       string  // output GIF path
	FramesDir string  // directory receiving PNG frames; empty => skip
	SkipFirst bool    // do not render the initial (undeformed) state
}

const (
	frameDPI = 96
	barFrac  = 0.16 // fraction of the frame width given to the colour bar
)

// ColorMap returns the |u| colour map over [0, climMax]
func ColorMap(climMax float64) palette.ColorMap {
	cm := moreland.SmoothBlueRed()
	cm.SetMin(0)
	cm.SetMax(climMax)
	return cm
}

// quad is one projected skin face ready for painting
type quad struct {
	xys   plotter.XYs
	depth float64
	val   float64
}

// buildQuads projects the warped skin faces and sorts them back to front
func buildQuads(res *fea.Results, snap *fea.Snapshot, warp float64) []quad {
	quads := make([]quad, 0, len(res.Faces))
	for _, f := range res.Faces {
		q := quad{xys: make(plotter.XYs, len(f.Verts))}
		for i, id := range f.Verts {
			x, y, d := Project(warped(res, snap, id, warp))
			q.xys[i].X = x
			q.xys[i].Y = y
			q.depth += d
			q.val += snap.Mag[id]
		}
		n := float64(len(f.Verts))
		q.depth /= n
		q.val /= n
		quads = append(quads, q)
	}
	sort.Slice(quads, func(i, j int) bool { return quads[i].depth < quads[j].depth })
	return quads
}

// RenderFrame draws one snapshot: the warped skin coloured by |u|, the
// temperature label and a vertical colour bar
func RenderFrame(res *fea.Results, snap *fea.Snapshot, opt *Options, xmin, xmax, ymin, ymax float64) (img image.Image, err error) {

	cm := ColorMap(opt.ClimMax)

	// beam plot
	p := plot.New()
	p.Title.Text = io.Sf("T = %.0f °C", snap.Temp)
	p.HideAxes()
	p.X.Min, p.X.Max = xmin, xmax
	p.Y.Min, p.Y.Max = ymin, ymax

	for _, q := range buildQuads(res, snap, opt.Warp) {
		poly, e := plotter.NewPolygon(q.xys)
		if e != nil {
			return nil, chk.Err("cannot build polygon:\n%v", e)
		}
		v := q.val
		if v > opt.ClimMax {
			v = opt.ClimMax
		}
		fill, e := cm.At(v)
		if e != nil {
			return nil, chk.Err("colormap failed at %g:\n%v", v, e)
		}
		poly.Color = fill
		poly.LineStyle.Color = color.Black
		poly.LineStyle.Width = vg.Points(0.3)
		p.Add(poly)
	}

	// colour bar plot
	bar := plot.New()
	cb := &plotter.ColorBar{ColorMap: cm}
	cb.Vertical = true
	bar.Add(cb)
	bar.HideX()
	bar.Y.Label.Text = "|u| [m]"

	// compose on one canvas
	w := vg.Length(opt.Width) * vg.Inch / frameDPI
	h := vg.Length(opt.Height) * vg.Inch / frameDPI
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(frameDPI))
	dc := vgdraw.New(c)
	barW := w * barFrac
	p.Draw(vgdraw.Crop(dc, 0, -barW, 0, 0))
	bar.Draw(vgdraw.Crop(dc, w-barW, 0, 0, 0))

	return c.Image(), nil
}
