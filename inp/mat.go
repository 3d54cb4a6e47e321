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

// Material holds one material entry of the database
type Material struct {
	Name  string   `json:"name"`
	Type  string   `json:"type"` // "sld", "trm" or "group"
	Model string   `json:"model,omitempty"`
	Deps  []string `json:"deps,omitempty"` // group members
	Prms  []*Prm   `json:"prms,omitempty"`
}

// MatFile holds the materials database written next to the .sim file
type MatFile struct {
	Materials []*Material `json:"materials"`
}

// NewMat builds the materials database: a linear-elastic solid model and a
// thermomech model with constant conductivity, grouped under the name "steel"
// referenced by the region element data
func NewMat(cfg *Config) *MatFile {
	return &MatFile{Materials: []*Material{
		{
			Name: "steel-elast", Type: "sld", Model: "lin-elast",
			Prms: []*Prm{
				{N: "E", V: cfg.Mat.E},
				{N: "nu", V: cfg.Mat.Nu},
				{N: "rho", V: cfg.Mat.Rho},
			},
		},
		{
			Name: "steel-thermo", Type: "trm", Model: "thermomech",
			Prms: []*Prm{
				{N: "a0", V: 1}, // k(T) = a0 => constant conductivity tensor
				{N: "a1", V: 0},
				{N: "a2", V: 0},
				{N: "a3", V: 0},
				{N: "k", V: cfg.Mat.Kcond},
				{N: "b", V: cfg.ThermalCoupling()},
				{N: "h", V: 0}, // no film/convection faces
			},
		},
		{
			Name: "steel", Type: "group",
			Deps: []string{"steel-elast", "steel-thermo"},
		},
	}}
}

// Save writes the .mat file to dir using the given file name key
func (o *MatFile) Save(dir, fnkey string) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return chk.Err("cannot encode mat file:\n%v", err)
	}
	var buf bytes.Buffer
	buf.Write(b)
	io.WriteFileD(dir, fnkey+".mat", &buf)
	return
}
