// Copyright 2026 The ME700 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Thermal expansion of a clamped linear-elastic beam: generates the mesh,
// writes the gofem input set, runs the temperature ramp and renders the
// deformation animation (deformation.gif).
package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	log "github.com/sirupsen/logrus"

	"github.com/rishabh022298/ME700-Assignment4Part1/fea"
	"github.com/rishabh022298/ME700-Assignment4Part1/inp"
	"github.com/rishabh022298/ME700-Assignment4Part1/msh"
	"github.com/rishabh022298/ME700-Assignment4Part1/viz"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// input arguments
	cfgfn, _ := io.ArgToFilename(0, "beam", ".ini", false)
	verbose := io.ArgToBool(1, true)
	dogif := io.ArgToBool(2, true)

	// message
	if verbose {
		io.PfWhite("\nThermal Expansion -- Linear Elasticity\n")
		io.Pf("clamped beam under a uniform temperature ramp\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"configuration file", "cfgfn", cfgfn,
			"show messages", "verbose", verbose,
			"render animation", "dogif", dogif,
		))
	}

	// configuration
	cfg := inp.Read(cfgfn)
	log.WithFields(log.Fields{
		"beam": io.Sf("%g x %g x %g", cfg.Beam.Lx, cfg.Beam.Ly, cfg.Beam.Lz),
		"mesh": io.Sf("%d x %d x %d", cfg.Beam.Nx, cfg.Beam.Ny, cfg.Beam.Nz),
		"Tmax": cfg.TempMax(),
	}).Info("configuration loaded")

	// mesh
	mshfn, err := msh.Generate(".", cfg)
	if err != nil {
		chk.Panic("%v", err)
	}
	log.WithField("file", mshfn).Info("mesh generated")

	// simulation input set
	if err := inp.NewSim(cfg).Save(".", cfg.Out.Fnkey); err != nil {
		chk.Panic("%v", err)
	}
	if err := inp.NewMat(cfg).Save(".", cfg.Out.Fnkey); err != nil {
		chk.Panic("%v", err)
	}
	simfn := cfg.Out.Fnkey + ".sim"
	log.WithField("file", simfn).Info("input set written")

	// solve
	if err := fea.Run(simfn, verbose); err != nil {
		chk.Panic("%v", err)
	}
	log.Info("temperature ramp solved")

	// post-process and render
	if !dogif {
		return
	}
	res, err := fea.Collect(simfn, verbose)
	if err != nil {
		chk.Panic("%v", err)
	}
	opt := &viz.Options{
		Warp:      cfg.Viz.Warp,
		ClimMax:   cfg.Viz.ClimMax,
		Fps:       cfg.Viz.Fps,
		Width:     cfg.Viz.Width,
		Height:    cfg.Viz.Height,
		Gif:       cfg.Viz.Gif,
		FramesDir: cfg.Viz.FramesDir,
		SkipFirst: cfg.Viz.SkipFirst,
	}
	if err := viz.WriteGIF(res, opt); err != nil {
		chk.Panic("%v", err)
	}
	log.WithFields(log.Fields{
		"gif": cfg.Viz.Gif, "frames": len(res.Snaps), "umax": res.MagMax,
	}).Info("animation written")
}
