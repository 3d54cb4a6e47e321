// Copyright 2026 The ME700 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fea

import (
	"math"

	"github.com/cpmech/gofem/fem"
	"github.com/cpmech/gosl/chk"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

// Face is one quad of the mesh boundary skin, referenced by vertex ids
type Face struct {
	Verts []int // vertex ids, counter-clockwise seen from outside
	Tag   int   // boundary tag
}

// Snapshot holds the nodal solution at one output time
type Snapshot struct {
	Time float64     // pseudo time
	Temp float64     // uniform temperature at this time [°C]
	U    [][]float64 // [nverts][3] displacement
	Mag  []float64   // [nverts] |u|
}

// Results holds the mesh skin and the solution history of one run
type Results struct {
	X      [][]float64 // [nverts][3] undeformed coordinates
	Faces  []Face      // boundary skin
	Snaps  []*Snapshot // one per output time
	MagMax float64     // maximum |u| over all snapshots
}

// Collect reopens a finished simulation through its summary and extracts,
// for each output time, the nodal displacements, their magnitudes and the
// temperature, together with the boundary skin used for rendering
func Collect(simfn string, verbose bool) (res *Results, err error) {

	// reopen analysis with summary of previous run
	analysis := fem.NewMain(simfn, "", false, false, true, false, verbose, 0)
	if err = analysis.SetStage(0); err != nil {
		return nil, chk.Err("SetStage failed:\n%v", err)
	}
	if err = analysis.ZeroStage(0, true); err != nil {
		return nil, chk.Err("ZeroStage failed:\n%v", err)
	}
	dom := analysis.Domains[0]
	sum := analysis.Summary

	// undeformed coordinates
	nverts := len(dom.Msh.Verts)
	res = &Results{X: make([][]float64, nverts)}
	for _, v := range dom.Msh.Verts {
		res.X[v.Id] = v.C
	}

	// boundary skin: cell faces carrying a boundary tag
	for _, c := range dom.Msh.Cells {
		for k, ftag := range c.FTags {
			if ftag >= 0 {
				continue
			}
			lverts := c.Shp.FaceLocalVerts[k]
			face := Face{Tag: ftag, Verts: make([]int, len(lverts))}
			for i, l := range lverts {
				face.Verts[i] = c.Verts[l]
			}
			res.Faces = append(res.Faces, face)
		}
	}

	// read solution at each output time
	for tidx, t := range sum.OutTimes {
		if err = dom.Read(sum, tidx, 0, true); err != nil {
			return nil, chk.Err("cannot read solution at time %g:\n%v", t, err)
		}
		snap := &Snapshot{Time: t, U: make([][]float64, nverts), Mag: make([]float64, nverts)}
		for _, nod := range dom.Nodes {
			id := nod.Vert.Id
			u := []float64{
				dom.Sol.Y[nod.GetEq("ux")],
				dom.Sol.Y[nod.GetEq("uy")],
				dom.Sol.Y[nod.GetEq("uz")],
			}
			snap.U[id] = u
			snap.Mag[id] = floats.Norm(u, 2)
			if eqt := nod.GetEq("temp"); eqt >= 0 {
				snap.Temp = dom.Sol.Y[eqt]
			}
		}
		res.MagMax = math.Max(res.MagMax, floats.Max(snap.Mag))
		res.Snaps = append(res.Snaps, snap)
		log.WithFields(log.Fields{
			"step": tidx, "time": t, "temp": snap.Temp, "umax": floats.Max(snap.Mag),
		}).Info("solution collected")
	}
	return
}
