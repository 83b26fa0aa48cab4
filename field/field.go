// Copyright 2026 The Structsf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package field holds the dense grid field arrays (scalar or vector,
// 2D or 3D) that the structure-function engine reads pairwise differences
// from. Fields are read once and are immutable thereafter.
package field

import (
	"github.com/cpmech/gosl/utl"

	"github.com/sfturb/structsf/grid"
)

// Scalar3D holds one N_x×N_y×N_z scalar field.
type Scalar3D struct {
	Theta [][][]float64
}

// Scalar2D holds one N_x×N_z scalar field (no y-axis).
type Scalar2D struct {
	Theta [][]float64
}

// Vector3D holds a three-component N_x×N_y×N_z vector field.
type Vector3D struct {
	Ux, Uy, Uz [][][]float64
}

// Vector2D holds a two-component N_x×N_z vector field (Ux,Uz; no Uy).
type Vector2D struct {
	Ux, Uz [][]float64
}

// alloc3 allocates a dense Nx×Ny×Nz array via gosl/utl.Deep3alloc, the
// same allocator gofem uses for dense 3D result buffers (e.g.
// examples/spo751_pressurised_cylinder/doplot.go's Deep3alloc(len(Psel),
// nels, nips)).
func alloc3(nx, ny, nz int) [][][]float64 {
	return utl.Deep3alloc(nx, ny, nz)
}

// alloc2 allocates a dense Nx×Nz array via gosl/utl.Alloc.
func alloc2(nx, nz int) [][]float64 {
	return utl.Alloc(nx, nz)
}

// NewScalar3D allocates a zeroed scalar field sized to g.
func NewScalar3D(g *grid.Grid) *Scalar3D {
	return &Scalar3D{Theta: alloc3(g.Nx, g.Ny, g.Nz)}
}

// NewScalar2D allocates a zeroed scalar field sized to g.
func NewScalar2D(g *grid.Grid) *Scalar2D {
	return &Scalar2D{Theta: alloc2(g.Nx, g.Nz)}
}

// NewVector3D allocates a zeroed vector field sized to g.
func NewVector3D(g *grid.Grid) *Vector3D {
	return &Vector3D{
		Ux: alloc3(g.Nx, g.Ny, g.Nz),
		Uy: alloc3(g.Nx, g.Ny, g.Nz),
		Uz: alloc3(g.Nx, g.Ny, g.Nz),
	}
}

// NewVector2D allocates a zeroed vector field sized to g.
func NewVector2D(g *grid.Grid) *Vector2D {
	return &Vector2D{
		Ux: alloc2(g.Nx, g.Nz),
		Uz: alloc2(g.Nx, g.Nz),
	}
}
