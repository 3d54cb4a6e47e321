// Copyright 2026 The ME700 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Prm holds one model or function parameter
type Prm struct {
	N string  `json:"n"` // name
	V float64 `json:"v"` // value
}

// SimFunc holds one time function definition
type SimFunc struct {
	Name string `json:"name"`
	Type string `json:"type"` // e.g. "cte", "lin", "rmp"
	Prms []*Prm `json:"prms"`
}

// SimElem holds the element data of one cell tag
type SimElem struct {
	Tag  int    `json:"tag"`
	Mat  string `json:"mat"`
	Type string `json:"type"`
	Nip  int    `json:"nip,omitempty"`
}

// SimRegion holds one region: mesh file plus element data
type SimRegion struct {
	Desc      string     `json:"desc"`
	Mshfile   string     `json:"mshfile"`
	ElemsData []*SimElem `json:"elemsdata"`
}

// SimFaceBc holds one face boundary condition
type SimFaceBc struct {
	Tag   int      `json:"tag"`
	Keys  []string `json:"keys"`
	Funcs []string `json:"funcs"`
}

// SimControl holds the time control of one stage
type SimControl struct {
	Tf    float64 `json:"tf"`
	Dt    float64 `json:"dt"`
	DtOut float64 `json:"dtout"`
}

// SimStage holds one simulation stage
type SimStage struct {
	Desc    string       `json:"desc"`
	FaceBcs []*SimFaceBc `json:"facebcs"`
	Control SimControl   `json:"control"`
}

// SimLinSol selects the linear solver
type SimLinSol struct {
	Name string `json:"name"`
}

// SimSolver holds the nonlinear solver settings
type SimSolver struct {
	Type   string  `json:"type"`
	NmaxIt int     `json:"nmaxit"`
	Atol   float64 `json:"atol"`
	Rtol   float64 `json:"rtol"`
}

// SimData holds global simulation data
type SimData struct {
	Desc    string `json:"desc"`
	Matfile string `json:"matfile"`
	DirOut  string `json:"dirout"`
	Encoder string `json:"encoder"`
	Steady  bool   `json:"steady"`
	ListBcs bool   `json:"listbcs"`
}

// SimFile mirrors the subset of gofem's simulation input schema used here
type SimFile struct {
	Data      SimData      `json:"data"`
	Functions []*SimFunc   `json:"functions"`
	Regions   []*SimRegion `json:"regions"`
	LinSol    SimLinSol    `json:"linsol"`
	Solver    SimSolver    `json:"solver"`
	Stages    []*SimStage  `json:"stages"`
}

// gemlab boundary tags of the structured box: xmin xmax ymin ymax zmin zmax
var boxFaceTags = []int{-10, -11, -20, -21, -30, -31}

// NewSim builds the simulation input set for the clamped heated beam.
// The left face (xmin) is fully clamped and the temperature ramp
// T(t) = ΔT·t is prescribed on all six faces; each output time is then a
// steady solve under the uniform temperature field
func NewSim(cfg *Config) *SimFile {

	// clamp left face; ramp temperature everywhere
	bcs := []*SimFaceBc{{
		Tag:   boxFaceTags[0],
		Keys:  []string{"ux", "uy", "uz", "temp"},
		Funcs: []string{"zero", "zero", "zero", "ramp"},
	}}
	for _, tag := range boxFaceTags[1:] {
		bcs = append(bcs, &SimFaceBc{Tag: tag, Keys: []string{"temp"}, Funcs: []string{"ramp"}})
	}

	return &SimFile{
		Data: SimData{
			Desc:    cfg.Desc,
			Matfile: cfg.Out.Fnkey + ".mat",
			DirOut:  cfg.Out.DirOut,
			Encoder: "gob",
			Steady:  true,
		},
		Functions: []*SimFunc{
			{Name: "ramp", Type: "lin", Prms: []*Prm{{N: "m", V: cfg.Thermal.DeltaT}}},
		},
		Regions: []*SimRegion{{
			Desc:    "beam",
			Mshfile: cfg.Out.Fnkey + ".msh",
			ElemsData: []*SimElem{
				{Tag: -1, Mat: "steel", Type: "solid-thermal", Nip: cfg.Fem.Nip},
			},
		}},
		LinSol: SimLinSol{Name: cfg.Fem.LinSol},
		Solver: SimSolver{Type: "imp", NmaxIt: cfg.Fem.NmaxIt, Atol: cfg.Fem.Atol, Rtol: cfg.Fem.Rtol},
		Stages: []*SimStage{{
			Desc:    "temperature ramp",
			FaceBcs: bcs,
			Control: SimControl{Tf: float64(cfg.Thermal.Nsteps), Dt: 1, DtOut: 1},
		}},
	}
}

// Save writes the .sim file to dir using the given file name key
func (o *SimFile) Save(dir, fnkey string) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return chk.Err("cannot encode sim file:\n%v", err)
	}
	var buf bytes.Buffer
	buf.Write(b)
	io.WriteFileD(dir, fnkey+".sim", &buf)
	return
}
