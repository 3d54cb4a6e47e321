// Copyright 2026 The ME700 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/rishabh022298/ME700-Assignment4Part1/inp"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_box01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("box01. structured box input data")

	cfg := inp.Default()
	gd := Box(cfg)

	chk.Ints(tst, "tags", gd.Sregs.Tags, []int{-1})
	chk.Ints(tst, "nxs", gd.Sregs.Nxs, []int{20})
	chk.Ints(tst, "nys", gd.Sregs.Nys, []int{5})
	chk.Ints(tst, "nzs", gd.Sregs.Nzs, []int{5})

	// 8 corners of the 20×1×1 box
	chk.IntAssert(len(gd.Sregs.Points), 8)
	chk.Deep2(tst, "points", 1e-15, gd.Sregs.Points, [][]float64{
		{0, 0, 0}, {20, 0, 0}, {20, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {20, 0, 1}, {20, 1, 1}, {0, 1, 1},
	})

	// single hex region, gemlab boundary tag order
	chk.IntAssert(len(gd.Sregs.Conn), 1)
	chk.Ints(tst, "conn", gd.Sregs.Conn[0], []int{0, 1, 2, 3, 4, 5, 6, 7})
	chk.IntAssert(len(gd.Sregs.Btags), 1)
	chk.Ints(tst, "btags", gd.Sregs.Btags[0], []int{-10, -11, -20, -21, -30, -31})
}

func Test_box02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("box02. divisions follow the configuration")

	cfg := inp.Default()
	cfg.Beam.Lx, cfg.Beam.Ly, cfg.Beam.Lz = 2, 3, 4
	cfg.Beam.Nx, cfg.Beam.Ny, cfg.Beam.Nz = 4, 6, 8
	gd := Box(cfg)

	chk.Ints(tst, "nxs", gd.Sregs.Nxs, []int{4})
	chk.Ints(tst, "nys", gd.Sregs.Nys, []int{6})
	chk.Ints(tst, "nzs", gd.Sregs.Nzs, []int{8})
	chk.Array(tst, "far corner", 1e-15, gd.Sregs.Points[6], []float64{2, 3, 4})
}
