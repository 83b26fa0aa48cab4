// Copyright 2026 The Structsf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements the grid and displacement model: dimensions,
// physical extents, spacings, and enumeration of the half-domain
// displacement set used by the structure-function engine.
package grid

import (
	"github.com/cpmech/gosl/chk"
)

// Grid holds the dimensions, physical extents and spacings of a regular
// Cartesian grid on which a field is discretized. Ny and Dy are zero in
// the 2D case (see Is3D); Ly is stored as given and not used there.
type Grid struct {
	Nx, Ny, Nz int     // grid sizes; Ny == 0 in 2D
	Lx, Ly, Lz float64 // physical extents
	Dx, Dy, Dz float64 // spacings; 0 when the corresponding N == 1
	threeD     bool    // true if this is a 3D grid
}

// New returns a new Grid. ny == 0 selects the 2D case (x,z axes only).
func New(nx, ny, nz int, lx, ly, lz float64) (o *Grid, err error) {
	if nx < 2 || nz < 2 {
		err = chk.Err("grid: Nx and Nz must be at least 2, got Nx=%d Nz=%d", nx, nz)
		return
	}
	if ny < 0 {
		err = chk.Err("grid: Ny must be >= 0 (0 selects 2D), got %d", ny)
		return
	}
	o = &Grid{Nx: nx, Ny: ny, Nz: nz, Lx: lx, Ly: ly, Lz: lz, threeD: ny > 0}
	o.Dx = spacing(lx, nx)
	o.Dz = spacing(lz, nz)
	if o.threeD {
		o.Dy = spacing(ly, ny)
	}
	return
}

// spacing implements the degenerate-axis convention: d = 0 when N == 1.
func spacing(l float64, n int) float64 {
	if n <= 1 {
		return 0
	}
	return l / float64(n-1)
}

// Is3D returns true if this grid has a y-axis.
func (o *Grid) Is3D() bool { return o.threeD }

// HalfNx, HalfNy, HalfNz return floor(N/2) along each axis. HalfNy is 0 in 2D.
func (o *Grid) HalfNx() int { return o.Nx / 2 }
func (o *Grid) HalfNy() int {
	if !o.threeD {
		return 0
	}
	return o.Ny / 2
}
func (o *Grid) HalfNz() int { return o.Nz / 2 }
