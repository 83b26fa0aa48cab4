// Copyright 2026 The Structsf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"

	"github.com/sfturb/structsf/inp"
	"github.com/sfturb/structsf/orchestrate"
)

func main() {

	failed := false

	defer func() {
		if err := recover(); err != nil {
			if mpi.Rank() == 0 {
				io.PfRed("ERROR: %v\n", err)
			}
			failed = true
		}
		mpi.Stop(false)
		if failed {
			os.Exit(1)
		}
	}()
	mpi.Start(false)

	if mpi.Rank() == 0 {
		io.PfWhite("\nstructsf -- parallel structure-function engine\n\n")
	}

	if len(os.Args) < 2 {
		chk.Panic("usage: structsf <para.yaml> [CLI overrides...]")
	}
	path := os.Args[1]

	cfg, err := inp.Load(path)
	if err != nil {
		chk.Panic("%v", err)
	}
	if err := inp.ApplyCLI(cfg, os.Args[2:]); err != nil {
		chk.Panic("%v", err)
	}

	if err := orchestrate.Run(cfg); err != nil {
		chk.Panic("%v", err)
	}
}
