// Copyright 2026 The Structsf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore
// +build ignore

// gensynthetic writes the analytic test-pattern fields of spec.md §8
// scenarios 1-4 into in/ as HDF5 files, so the pipeline can be exercised
// end-to-end without externally supplied field data.
package main

import (
	"flag"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/io/h5"

	"github.com/sfturb/structsf/field"
	"github.com/sfturb/structsf/grid"
)

func flat3(a [][][]float64, nx, ny, nz int) []float64 {
	out := make([]float64, 0, nx*ny*nz)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				out = append(out, a[i][j][k])
			}
		}
	}
	return out
}

func flat2(a [][]float64, nx, nz int) []float64 {
	out := make([]float64, 0, nx*nz)
	for i := 0; i < nx; i++ {
		for k := 0; k < nz; k++ {
			out = append(out, a[i][k])
		}
	}
	return out
}

func write(base string, dims []int, data []float64) {
	if err := os.MkdirAll("in", 0777); err != nil {
		chk.Panic("cannot create in/: %v", err)
	}
	f := h5.Create("in", base+".h5")
	defer f.Close()
	f.PutArray("/"+base, dims, data)
	io.Pf("> wrote in/%s.h5\n", base)
}

func main() {

	n := flag.Int("n", 16, "grid size along each axis")
	twoDim := flag.Bool("d", false, "generate the 2D patterns instead of 3D")
	scalar := flag.Bool("s", false, "generate the scalar pattern instead of vector")
	flag.Parse()

	if *twoDim {
		g, err := grid.New(*n, 0, *n, 1, 0, 1)
		if err != nil {
			chk.Panic("%v", err)
		}
		shape2 := []int{g.Nx, g.Nz}
		if *scalar {
			f := field.LinearScalar2D(g)
			write("T.Fr", shape2, flat2(f.Theta, g.Nx, g.Nz))
			return
		}
		f := field.LinearVector2D(g)
		write("U.V1r", shape2, flat2(f.Ux, g.Nx, g.Nz))
		write("U.V3r", shape2, flat2(f.Uz, g.Nx, g.Nz))
		return
	}

	g, err := grid.New(*n, *n, *n, 1, 1, 1)
	if err != nil {
		chk.Panic("%v", err)
	}
	shape3 := []int{g.Nx, g.Ny, g.Nz}
	if *scalar {
		f := field.LinearScalar3D(g)
		write("T.Fr", shape3, flat3(f.Theta, g.Nx, g.Ny, g.Nz))
		return
	}
	f := field.LinearVector3D(g)
	write("U.V1r", shape3, flat3(f.Ux, g.Nx, g.Ny, g.Nz))
	write("U.V2r", shape3, flat3(f.Uy, g.Nx, g.Ny, g.Nz))
	write("U.V3r", shape3, flat3(f.Uz, g.Nx, g.Ny, g.Nz))
}
