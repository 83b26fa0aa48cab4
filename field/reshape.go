// Copyright 2026 The Structsf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

// FromFlat3D reshapes a row-major flat array of length nx*ny*nz (the
// shape an HDF5 dataset of rank 3 is read into) into the nested array
// convention the kernel's slicing helpers expect.
func FromFlat3D(flat []float64, nx, ny, nz int) [][][]float64 {
	a := alloc3(nx, ny, nz)
	idx := 0
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				a[i][j][k] = flat[idx]
				idx++
			}
		}
	}
	return a
}

// FromFlat2D reshapes a row-major flat array of length nx*nz into the
// nested array convention the kernel's slicing helpers expect.
func FromFlat2D(flat []float64, nx, nz int) [][]float64 {
	a := alloc2(nx, nz)
	idx := 0
	for i := 0; i < nx; i++ {
		for k := 0; k < nz; k++ {
			a[i][k] = flat[idx]
			idx++
		}
	}
	return a
}
