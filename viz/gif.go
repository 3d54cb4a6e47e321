// Copyright 2026 The ME700 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"bytes"
	"image"
	"image/color"
	stddraw "image/draw"
	"image/gif"
	"image/png"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	log "github.com/sirupsen/logrus"

	"github.com/rishabh022298/ME700-Assignment4Part1/fea"
)

// Palette samples the colour map into a GIF palette, keeping two slots
// for the white background and black edges
func Palette(climMax float64) color.Palette {
	cols := ColorMap(climMax).Palette(254).Colors()
	pal := make(color.Palette, 0, 256)
	pal = append(pal, color.White, color.Black)
	pal = append(pal, cols...)
	return pal
}

// WriteGIF renders all snapshots and assembles the animation. Each frame is
// additionally written as PNG under opt.FramesDir unless that is empty
func WriteGIF(res *fea.Results, opt *Options) (err error) {

	snaps := res.Snaps
	if opt.SkipFirst && len(snaps) > 1 {
		snaps = snaps[1:]
	}
	if len(snaps) == 0 {
		return chk.Err("no snapshots to render")
	}

	// fixed bounds across frames
	xmin, xmax, ymin, ymax := Extents(res, opt.Warp)

	fps := opt.Fps
	if fps < 1 {
		fps = 1
	}
	delay := 100 / fps // [1/100 s]

	pal := Palette(opt.ClimMax)
	anim := &gif.GIF{}
	for i, snap := range snaps {

		img, err := RenderFrame(res, snap, opt, xmin, xmax, ymin, ymax)
		if err != nil {
			return chk.Err("cannot render frame %d:\n%v", i, err)
		}

		if opt.FramesDir != "" {
			var buf bytes.Buffer
			if err := png.Encode(&buf, img); err != nil {
				return chk.Err("cannot encode frame %d:\n%v", i, err)
			}
			io.WriteFileD(opt.FramesDir, io.Sf("frame_%06d.png", i), &buf)
		}

		pimg := image.NewPaletted(img.Bounds(), pal)
		stddraw.FloydSteinberg.Draw(pimg, img.Bounds(), img, image.Point{})
		anim.Image = append(anim.Image, pimg)
		anim.Delay = append(anim.Delay, delay)

		log.WithFields(log.Fields{"frame": i, "temp": snap.Temp}).Info("frame rendered")
	}

	var buf bytes.Buffer
	if err = gif.EncodeAll(&buf, anim); err != nil {
		return chk.Err("cannot encode gif:\n%v", err)
	}
	io.WriteFile(opt.Gif, &buf)
	return
}
