// Copyright 2026 The Structsf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import "github.com/sfturb/structsf/grid"

// LinearVector3D builds U_x(i,j,k)=i*dx, U_y=j*dy, U_z=k*dz, the analytic
// test pattern of spec.md §8 scenario 1.
func LinearVector3D(g *grid.Grid) *Vector3D {
	f := NewVector3D(g)
	for i := 0; i < g.Nx; i++ {
		for j := 0; j < g.Ny; j++ {
			for k := 0; k < g.Nz; k++ {
				f.Ux[i][j][k] = float64(i) * g.Dx
				f.Uy[i][j][k] = float64(j) * g.Dy
				f.Uz[i][j][k] = float64(k) * g.Dz
			}
		}
	}
	return f
}

// LinearVector2D builds U_x(i,k)=i*dx, U_z=k*dz, spec.md §8 scenario 2.
func LinearVector2D(g *grid.Grid) *Vector2D {
	f := NewVector2D(g)
	for i := 0; i < g.Nx; i++ {
		for k := 0; k < g.Nz; k++ {
			f.Ux[i][k] = float64(i) * g.Dx
			f.Uz[i][k] = float64(k) * g.Dz
		}
	}
	return f
}

// LinearScalar3D builds theta = i*dx + j*dy + k*dz, spec.md §8 scenario 3.
func LinearScalar3D(g *grid.Grid) *Scalar3D {
	f := NewScalar3D(g)
	for i := 0; i < g.Nx; i++ {
		for j := 0; j < g.Ny; j++ {
			for k := 0; k < g.Nz; k++ {
				f.Theta[i][j][k] = float64(i)*g.Dx + float64(j)*g.Dy + float64(k)*g.Dz
			}
		}
	}
	return f
}

// LinearScalar2D builds theta = i*dx + k*dz, spec.md §8 scenario 4.
func LinearScalar2D(g *grid.Grid) *Scalar2D {
	f := NewScalar2D(g)
	for i := 0; i < g.Nx; i++ {
		for k := 0; k < g.Nz; k++ {
			f.Theta[i][k] = float64(i)*g.Dx + float64(k)*g.Dz
		}
	}
	return f
}
