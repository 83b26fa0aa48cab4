// Copyright 2026 The Structsf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore
// +build ignore

// showpartition is a diagnostic utility that prints one rank's
// displacement list and its aggregate load, Sum (Nx-x)(Ny-y) over the
// rank's (x,y) entries (the inner-axis factor is left out), for a given (P, ProcessorsX) decomposition,
// to inspect load balance without running MPI (spec.md §4.1's rationale
// for the near/far pairing).
package main

import (
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/sfturb/structsf/part"
)

func main() {

	p := flag.Int("P", 4, "total process count")
	px := flag.Int("px", 2, "process-grid extent along x")
	halfX := flag.Int("halfX", 8, "half-size of the x axis")
	halfY := flag.Int("halfY", 8, "half-size of the second distributed axis")
	rank := flag.Int("rank", 0, "rank to inspect")
	nx := flag.Int("Nx", 16, "full grid size along x, for the load weight")
	ny := flag.Int("Ny", 16, "full grid size along the second axis")
	flag.Parse()

	if *p%*px != 0 {
		chk.Panic("P (%d) must be divisible by px (%d)", *p, *px)
	}
	py := *p / *px
	if *rank < 0 || *rank >= *p {
		chk.Panic("rank %d out of range [0,%d)", *rank, *p)
	}

	rx, ry := part.RankCoord(*rank, py)
	local := part.BuildLocal(*px, py, rx, ry, *halfX, *halfY)

	load := 0
	io.Pf("rank %d -> (rx=%d, ry=%d), %d entries:\n", *rank, rx, ry, len(local))
	for _, xy := range local {
		x, y := xy[0], xy[1]
		w := (*nx - x) * (*ny - y)
		load += w
		io.Pf("  x=%-4d y=%-4d weight=%d\n", x, y, w)
	}
	io.Pf("total aggregate load (excluding inner axis): %d\n", load)
}
