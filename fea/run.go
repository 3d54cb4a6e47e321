// Copyright 2026 The ME700 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fea drives the gofem solver and collects nodal results
// for post-processing.
package fea

import (
	"github.com/cpmech/gofem/fem"
	"github.com/cpmech/gosl/chk"
)

// Run executes the simulation defined by the .sim file, erasing previous
// results and saving the summary needed by Collect. The run is serial:
// parallel execution belongs to the solver, not to this driver
func Run(simfn string, verbose bool) (err error) {
	analysis := fem.NewMain(simfn, "", true, true, false, false, verbose, 0)
	if err = analysis.Run(); err != nil {
		return chk.Err("solver run failed:\n%v", err)
	}
	return
}
