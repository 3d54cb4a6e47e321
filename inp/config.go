// Copyright 2026 The ME700 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp handles the input side of the simulation: the ini configuration
// with geometry, material and load parameters, and the writers producing the
// .sim and .mat files consumed by gofem.
package inp

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

// BeamData holds the beam geometry and structured mesh divisions
type BeamData struct {
	Lx, Ly, Lz float64 // dimensions [m]
	Nx, Ny, Nz int     // number of hex divisions along each direction
}

// MaterialData holds the linear-elastic and thermal constants of the solid
type MaterialData struct {
	E     float64 // Young's modulus [Pa]
	Nu    float64 // Poisson's ratio
	Rho   float64 // density [Mg/m³]
	Alpha float64 // coefficient of thermal expansion [1/°C]
	Kcond float64 // isotropic thermal conductivity [W/(m·°C)]
}

// ThermalData holds the applied temperature ramp
type ThermalData struct {
	DeltaT float64 // temperature increment per step [°C]
	Nsteps int     // number of steps; final temperature = DeltaT·Nsteps
}

// FemData holds solver settings passed through to gofem
type FemData struct {
	Atol   float64 // absolute tolerance (Newton)
	Rtol   float64 // relative tolerance (Newton)
	NmaxIt int     // max Newton iterations
	Nip    int     // integration points per element; 0 => element default
	LinSol string  // linear solver name; e.g. "umfpack"
}

// OutputData holds file naming and solver output location
type OutputData struct {
	DirOut string // directory for gofem result files
	Fnkey  string // file name key for .sim/.mat/.msh
}

// VizData holds rendering parameters
type VizData struct {
	Warp      float64 // mesh warp factor applied to displacements
	ClimMax   float64 // upper bound of the |u| colour range
	Fps       int     // GIF frames per second
	Width     int     // frame width [px]
	Height    int     // frame height [px]
	Gif       string  // output GIF path
	FramesDir string  // directory receiving the PNG frames
	SkipFirst bool    // do not render the initial (undeformed) state
}

// Config collects all simulation parameters
type Config struct {
	Desc    string
	Beam    BeamData
	Mat     MaterialData
	Thermal ThermalData
	Fem     FemData
	Out     OutputData
	Viz     VizData
}

// Default returns the configuration reproducing the reference run:
// a 20×1×1 steel beam clamped at x=0 and heated from 200 to 2000 °C
func Default() *Config {
	return &Config{
		Desc:    "thermal expansion of clamped steel beam",
		Beam:    BeamData{Lx: 20, Ly: 1, Lz: 1, Nx: 20, Ny: 5, Nz: 5},
		Mat:     MaterialData{E: 210e9, Nu: 0.3, Rho: 7.85, Alpha: 12e-6, Kcond: 50},
		Thermal: ThermalData{DeltaT: 200, Nsteps: 10},
		Fem:     FemData{Atol: 1e-8, Rtol: 1e-8, NmaxIt: 20, Nip: 8, LinSol: "umfpack"},
		Out:     OutputData{DirOut: "/tmp/thermobeam", Fnkey: "beam"},
		Viz: VizData{
			Warp: 1, ClimMax: 0.5, Fps: 3, Width: 800, Height: 500,
			Gif: "deformation.gif", FramesDir: "frames", SkipFirst: true,
		},
	}
}

// Read loads the configuration from an ini file. Missing keys keep their
// default values; a missing file yields the full default set.
func Read(fn string) *Config {
	cfg := Default()
	file, err := ini.Load(fn)
	if err != nil {
		log.WithField("file", fn).Warn("cannot read configuration; using defaults")
		return cfg
	}
	loadCfg(cfg, file)
	return cfg
}

func loadCfg(cfg *Config, file *ini.File) {
	cfg.Desc = file.Section("").Key("desc").MustString(cfg.Desc)

	b := file.Section("beam")
	cfg.Beam.Lx = b.Key("lx").MustFloat64(cfg.Beam.Lx)
	cfg.Beam.Ly = b.Key("ly").MustFloat64(cfg.Beam.Ly)
	cfg.Beam.Lz = b.Key("lz").MustFloat64(cfg.Beam.Lz)
	cfg.Beam.Nx = b.Key("nx").MustInt(cfg.Beam.Nx)
	cfg.Beam.Ny = b.Key("ny").MustInt(cfg.Beam.Ny)
	cfg.Beam.Nz = b.Key("nz").MustInt(cfg.Beam.Nz)

	m := file.Section("material")
	cfg.Mat.E = m.Key("E").MustFloat64(cfg.Mat.E)
	cfg.Mat.Nu = m.Key("nu").MustFloat64(cfg.Mat.Nu)
	cfg.Mat.Rho = m.Key("rho").MustFloat64(cfg.Mat.Rho)
	cfg.Mat.Alpha = m.Key("alpha").MustFloat64(cfg.Mat.Alpha)
	cfg.Mat.Kcond = m.Key("kcond").MustFloat64(cfg.Mat.Kcond)

	t := file.Section("thermal")
	cfg.Thermal.DeltaT = t.Key("dtemp").MustFloat64(cfg.Thermal.DeltaT)
	cfg.Thermal.Nsteps = t.Key("nsteps").MustInt(cfg.Thermal.Nsteps)

	s := file.Section("solver")
	cfg.Fem.Atol = s.Key("atol").MustFloat64(cfg.Fem.Atol)
	cfg.Fem.Rtol = s.Key("rtol").MustFloat64(cfg.Fem.Rtol)
	cfg.Fem.NmaxIt = s.Key("nmaxit").MustInt(cfg.Fem.NmaxIt)
	cfg.Fem.Nip = s.Key("nip").MustInt(cfg.Fem.Nip)
	cfg.Fem.LinSol = s.Key("linsol").MustString(cfg.Fem.LinSol)

	o := file.Section("output")
	cfg.Out.DirOut = o.Key("dirout").MustString(cfg.Out.DirOut)
	cfg.Out.Fnkey = o.Key("fnkey").MustString(cfg.Out.Fnkey)

	v := file.Section("viz")
	cfg.Viz.Warp = v.Key("warp").MustFloat64(cfg.Viz.Warp)
	cfg.Viz.ClimMax = v.Key("climmax").MustFloat64(cfg.Viz.ClimMax)
	cfg.Viz.Fps = v.Key("fps").MustInt(cfg.Viz.Fps)
	cfg.Viz.Width = v.Key("width").MustInt(cfg.Viz.Width)
	cfg.Viz.Height = v.Key("height").MustInt(cfg.Viz.Height)
	cfg.Viz.Gif = v.Key("gif").MustString(cfg.Viz.Gif)
	cfg.Viz.FramesDir = v.Key("frames").MustString(cfg.Viz.FramesDir)
	cfg.Viz.SkipFirst = v.Key("skipfirst").MustBool(cfg.Viz.SkipFirst)
}

// ShearModulus returns μ = E / (2(1+ν))
func (o *Config) ShearModulus() float64 {
	return o.Mat.E / (2 * (1 + o.Mat.Nu))
}

// Lame returns λ = Eν / ((1+ν)(1−2ν))
func (o *Config) Lame() float64 {
	return o.Mat.E * o.Mat.Nu / ((1 + o.Mat.Nu) * (1 - 2*o.Mat.Nu))
}

// ThermalCoupling returns the 'b' parameter of the thermomech model.
// The solid-thermal element computes the coupling force as b/E·T, therefore
// b carries an extra factor of E with respect to the isotropic thermal
// stress modulus β = αE/(1−2ν) = α(3λ+2μ)
func (o *Config) ThermalCoupling() float64 {
	return o.Mat.Alpha * o.Mat.E * o.Mat.E / (1 - 2*o.Mat.Nu)
}

// TempMax returns the final temperature of the ramp
func (o *Config) TempMax() float64 {
	return o.Thermal.DeltaT * float64(o.Thermal.Nsteps)
}
