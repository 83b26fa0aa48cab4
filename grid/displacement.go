// Copyright 2026 The Structsf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import "math"

// Displacement holds one integer displacement vector l = (Ix,Iy,Iz) together
// with its physical vector and magnitude r = ||l||_2. Iy/Ly are zero in 2D.
type Displacement struct {
	Ix, Iy, Iz int     // grid-index displacement
	Lx, Ly, Lz float64 // physical displacement
	R          float64 // magnitude
}

// At builds the Displacement for grid-index triple (ix,iy,iz) on Grid o.
// iy must be 0 when o is 2D.
func (o *Grid) At(ix, iy, iz int) Displacement {
	d := Displacement{
		Ix: ix, Iy: iy, Iz: iz,
		Lx: float64(ix) * o.Dx,
		Lz: float64(iz) * o.Dz,
	}
	if o.threeD {
		d.Ly = float64(iy) * o.Dy
	}
	d.R = math.Sqrt(d.Lx*d.Lx + d.Ly*d.Ly + d.Lz*d.Lz)
	return d
}

// IsOrigin returns true if this displacement is l = 0.
func (d Displacement) IsOrigin() bool {
	return d.Ix == 0 && d.Iy == 0 && d.Iz == 0
}

// HalfDomain3D enumerates the full half-domain {(x,y,z) : 0<=x<Nx/2,
// 0<=y<Ny/2, 0<=z<Nz/2} for a 3D grid. Intended for exhaustiveness tests
// (spec scenario 6); production code never materializes this whole list at
// once because the partitioner derives each rank's slice directly.
func (o *Grid) HalfDomain3D() []Displacement {
	hx, hy, hz := o.HalfNx(), o.HalfNy(), o.HalfNz()
	out := make([]Displacement, 0, hx*hy*hz)
	for x := 0; x < hx; x++ {
		for y := 0; y < hy; y++ {
			for z := 0; z < hz; z++ {
				out = append(out, o.At(x, y, z))
			}
		}
	}
	return out
}

// HalfDomain2D enumerates the half-domain {(x,z) : 0<=x<Nx/2, 0<=z<Nz/2}
// for a 2D grid (the y-axis is absent).
func (o *Grid) HalfDomain2D() []Displacement {
	hx, hz := o.HalfNx(), o.HalfNz()
	out := make([]Displacement, 0, hx*hz)
	for x := 0; x < hx; x++ {
		for z := 0; z < hz; z++ {
			out = append(out, o.At(x, 0, z))
		}
	}
	return out
}
