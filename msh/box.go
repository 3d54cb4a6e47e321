// Copyright 2026 The ME700 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package msh generates the structured hexahedral mesh of the beam
// using gemlab.
package msh

import (
	"path/filepath"

	"github.com/cpmech/gemlab"
	"github.com/cpmech/gosl/chk"

	"github.com/rishabh022298/ME700-Assignment4Part1/inp"
)

// Box builds the gemlab input data for a single-region structured box
// spanning [0,lx]×[0,ly]×[0,lz] with nx×ny×nz hex8 divisions. Boundary
// tags follow gemlab's order: -10,-11 (xmin,xmax), -20,-21 (ymin,ymax),
// -30,-31 (zmin,zmax)
func Box(cfg *inp.Config) *gemlab.InData {
	lx, ly, lz := cfg.Beam.Lx, cfg.Beam.Ly, cfg.Beam.Lz
	var gd gemlab.InData
	gd.Nparts = 1 // serial run
	gd.Sregs = &gemlab.Sregs{
		Tags: []int{-1},
		Nxs:  []int{cfg.Beam.Nx},
		Nys:  []int{cfg.Beam.Ny},
		Nzs:  []int{cfg.Beam.Nz},
		Points: [][]float64{
			{0, 0, 0}, {lx, 0, 0}, {lx, ly, 0}, {0, ly, 0},
			{0, 0, lz}, {lx, 0, lz}, {lx, ly, lz}, {0, ly, lz},
		},
		Conn:  [][]int{{0, 1, 2, 3, 4, 5, 6, 7}},
		Btags: [][]int{{-10, -11, -20, -21, -30, -31}},
	}
	return &gd
}

// Generate writes dir/fnkey.msh and returns its path
func Generate(dir string, cfg *inp.Config) (fnpath string, err error) {
	gd := Box(cfg)
	fnk := filepath.Join(dir, cfg.Out.Fnkey)
	if err = gemlab.Generate(fnk, gd); err != nil {
		return "", chk.Err("mesh generation failed:\n%v", err)
	}
	return fnk + ".msh", nil
}
