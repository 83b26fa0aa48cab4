// Copyright 2026 The Structsf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sfun

import (
	"github.com/sfturb/structsf/field"
	"github.com/sfturb/structsf/grid"
	"github.com/sfturb/structsf/kernel"
)

// sliceVector3D flattens the base/shifted sub-arrays of a 3D component
// array over Ω(l)=(Nx-x)×(Ny-y)×(Nz-z), following spec.md §4.2 step 2.
func sliceVector3D(u [][][]float64, nx, ny, nz, x, y, z int) (base, shift []float64) {
	n := (nx - x) * (ny - y) * (nz - z)
	base = make([]float64, 0, n)
	shift = make([]float64, 0, n)
	for i := 0; i < nx-x; i++ {
		for j := 0; j < ny-y; j++ {
			for k := 0; k < nz-z; k++ {
				base = append(base, u[i][j][k])
				shift = append(shift, u[i+x][j+y][k+z])
			}
		}
	}
	return
}

// sliceVector2D is sliceVector3D without the y-axis.
func sliceVector2D(u [][]float64, nx, nz, x, z int) (base, shift []float64) {
	n := (nx - x) * (nz - z)
	base = make([]float64, 0, n)
	shift = make([]float64, 0, n)
	for i := 0; i < nx-x; i++ {
		for k := 0; k < nz-z; k++ {
			base = append(base, u[i][k])
			shift = append(shift, u[i+x][k+z])
		}
	}
	return
}

// DriveVectorBoth3D walks the rank's local (x,y) list (inner z-loop per
// spec.md §4.1), invokes kernel.VectorBoth for each (x,y,z), and writes
// into rank-local contribution tensors shaped like the global result
// (zero outside this rank's assignment). Every process contributes a
// disjoint set of slots, so AllReduceSum over these contributions equals
// the full gather of spec.md §4.4.
func DriveVectorBoth3D(g *grid.Grid, f *field.Vector3D, local [][2]int, q1, q2 int) (sPll, sPerp *Tensor) {
	hx, hy, hz := g.HalfNx(), g.HalfNy(), g.HalfNz()
	m := q2 - q1 + 1
	sPll = NewTensor(hx, hy, hz, m)
	sPerp = NewTensor(hx, hy, hz, m)
	for _, xy := range local {
		x, y := xy[0], xy[1]
		for z := 0; z < hz; z++ {
			d := g.At(x, y, z)
			uxB, uxS := sliceVector3D(f.Ux, g.Nx, g.Ny, g.Nz, x, y, z)
			uyB, uyS := sliceVector3D(f.Uy, g.Nx, g.Ny, g.Nz, x, y, z)
			uzB, uzS := sliceVector3D(f.Uz, g.Nx, g.Ny, g.Nz, x, y, z)
			out := kernel.VectorBoth(uxB, uxS, uyB, uyS, uzB, uzS, d.Lx, d.Ly, d.Lz, d.R, q1, q2)
			for p := 0; p < m; p++ {
				sPll.Set(out.Pll[p], x, y, z, p)
				sPerp.Set(out.Perp[p], x, y, z, p)
			}
		}
	}
	return
}

// DriveVectorLong3D is DriveVectorBoth3D without the transverse component.
func DriveVectorLong3D(g *grid.Grid, f *field.Vector3D, local [][2]int, q1, q2 int) (sPll *Tensor) {
	hx, hy, hz := g.HalfNx(), g.HalfNy(), g.HalfNz()
	m := q2 - q1 + 1
	sPll = NewTensor(hx, hy, hz, m)
	for _, xy := range local {
		x, y := xy[0], xy[1]
		for z := 0; z < hz; z++ {
			d := g.At(x, y, z)
			uxB, uxS := sliceVector3D(f.Ux, g.Nx, g.Ny, g.Nz, x, y, z)
			uyB, uyS := sliceVector3D(f.Uy, g.Nx, g.Ny, g.Nz, x, y, z)
			uzB, uzS := sliceVector3D(f.Uz, g.Nx, g.Ny, g.Nz, x, y, z)
			out := kernel.VectorLongOnly(uxB, uxS, uyB, uyS, uzB, uzS, d.Lx, d.Ly, d.Lz, d.R, q1, q2)
			for p := 0; p < m; p++ {
				sPll.Set(out.Pll[p], x, y, z, p)
			}
		}
	}
	return
}

// DriveScalar3D computes S_theta for a 3D scalar field.
func DriveScalar3D(g *grid.Grid, f *field.Scalar3D, local [][2]int, q1, q2 int) (sTheta *Tensor) {
	hx, hy, hz := g.HalfNx(), g.HalfNy(), g.HalfNz()
	m := q2 - q1 + 1
	sTheta = NewTensor(hx, hy, hz, m)
	for _, xy := range local {
		x, y := xy[0], xy[1]
		for z := 0; z < hz; z++ {
			base, shift := sliceVector3D(f.Theta, g.Nx, g.Ny, g.Nz, x, y, z)
			out := kernel.Scalar(base, shift, q1, q2)
			for p := 0; p < m; p++ {
				sTheta.Set(out.Pll[p], x, y, z, p)
			}
		}
	}
	return
}

// DriveVectorBoth2D walks the rank's local (x,z) list directly (2D has no
// undistributed inner axis: the partitioner's "y" argument stands for z,
// per spec.md §3).
func DriveVectorBoth2D(g *grid.Grid, f *field.Vector2D, local [][2]int, q1, q2 int) (sPll, sPerp *Tensor) {
	hx, hz := g.HalfNx(), g.HalfNz()
	m := q2 - q1 + 1
	sPll = NewTensor(hx, hz, m)
	sPerp = NewTensor(hx, hz, m)
	for _, xz := range local {
		x, z := xz[0], xz[1]
		d := g.At(x, 0, z)
		uxB, uxS := sliceVector2D(f.Ux, g.Nx, g.Nz, x, z)
		uzB, uzS := sliceVector2D(f.Uz, g.Nx, g.Nz, x, z)
		out := kernel.VectorBoth(uxB, uxS, nil, nil, uzB, uzS, d.Lx, 0, d.Lz, d.R, q1, q2)
		for p := 0; p < m; p++ {
			sPll.Set(out.Pll[p], x, z, p)
			sPerp.Set(out.Perp[p], x, z, p)
		}
	}
	return
}

// DriveVectorLong2D is DriveVectorBoth2D without the transverse component.
func DriveVectorLong2D(g *grid.Grid, f *field.Vector2D, local [][2]int, q1, q2 int) (sPll *Tensor) {
	hx, hz := g.HalfNx(), g.HalfNz()
	m := q2 - q1 + 1
	sPll = NewTensor(hx, hz, m)
	for _, xz := range local {
		x, z := xz[0], xz[1]
		d := g.At(x, 0, z)
		uxB, uxS := sliceVector2D(f.Ux, g.Nx, g.Nz, x, z)
		uzB, uzS := sliceVector2D(f.Uz, g.Nx, g.Nz, x, z)
		out := kernel.VectorLongOnly(uxB, uxS, nil, nil, uzB, uzS, d.Lx, 0, d.Lz, d.R, q1, q2)
		for p := 0; p < m; p++ {
			sPll.Set(out.Pll[p], x, z, p)
		}
	}
	return
}

// DriveScalar2D computes S_theta for a 2D scalar field.
func DriveScalar2D(g *grid.Grid, f *field.Scalar2D, local [][2]int, q1, q2 int) (sTheta *Tensor) {
	hx, hz := g.HalfNx(), g.HalfNz()
	m := q2 - q1 + 1
	sTheta = NewTensor(hx, hz, m)
	for _, xz := range local {
		x, z := xz[0], xz[1]
		base, shift := sliceVector2D(f.Theta, g.Nx, g.Nz, x, z)
		out := kernel.Scalar(base, shift, q1, q2)
		for p := 0; p < m; p++ {
			sTheta.Set(out.Pll[p], x, z, p)
		}
	}
	return
}
