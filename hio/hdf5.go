// Copyright 2026 The Structsf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package hio implements the external boundary adapters of spec.md §6.3
// and §6.4: one HDF5 file per field component on read, one HDF5 file per
// (output tensor, order) on write. This is the only package that touches
// disk; everything else in the module operates on in-memory arrays.
package hio

import (
	"fmt"
	"os"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/io/h5"
	"github.com/sfturb/structsf/inp"
	"github.com/sfturb/structsf/sfun"
)

// ReadFlat opens in/<base>.h5, reads dataset <base>, and validates its
// actual rank and per-axis shape against wantShape (spec.md §6.3: rank
// must equal 2 in 2D mode or 3 in 3D mode, and shape must equal the
// configured grid) before trusting the flattened data. A dataset whose
// total element count happens to match wantShape's product but whose
// axes are permuted (e.g. (Ny,Nx,Nz) fed into an (Nx,Ny,Nz) run) is
// rejected here rather than silently mis-reshaped downstream by
// field.FromFlat3D/FromFlat2D. gosl's io/h5 binding panics on a missing
// file or dataset; we recover and turn that into the taxonomy of
// spec.md §7.
func ReadFlat(base string, wantShape []int) (data []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = inp.NewCompatibilityError("cannot read dataset %q from in/%s.h5: %v", base, base, r)
		}
	}()
	fname := fmt.Sprintf("in/%s.h5", base)
	if _, statErr := os.Stat(fname); statErr != nil {
		return nil, inp.NewCompatibilityError("input file %q not found", fname)
	}
	f := h5.Open("in", base+".h5")
	defer f.Close()
	dims, data := f.GetArray("/" + base)
	if len(dims) != len(wantShape) {
		return nil, inp.NewCompatibilityError("dataset %q has rank %d, want rank %d for shape %v", base, len(dims), len(wantShape), wantShape)
	}
	for axis, want := range wantShape {
		if dims[axis] != want {
			return nil, inp.NewCompatibilityError("dataset %q has shape %v, want %v (grid-shape mismatch)", base, dims, wantShape)
		}
	}
	wantLen := 1
	for _, want := range wantShape {
		wantLen *= want
	}
	if len(data) != wantLen {
		return nil, inp.NewCompatibilityError("dataset %q has %d values, want %d for shape %v", base, len(data), wantLen, wantShape)
	}
	return data, nil
}

// WriteOrder writes out/<base><order>.h5 with a dataset named
// <base><order> holding one order's spatial tensor at shape dims,
// creating out/ if missing (spec.md §6.4). dims is stored alongside the
// flat data so a later ReadFlat of this file can validate rank and
// per-axis shape rather than just element count.
func WriteOrder(base string, order int, dims []int, spatial []float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = inp.NewRuntimeError("cannot write tensor %q order %d: %v", base, order, r)
		}
	}()
	if mkErr := os.MkdirAll("out", 0777); mkErr != nil {
		return inp.NewRuntimeError("cannot create output directory: %v", mkErr)
	}
	name := fmt.Sprintf("%s%d", base, order)
	fname := name + ".h5"
	f := h5.Create("out", fname)
	defer f.Close()
	f.PutArray("/"+name, dims, spatial)
	io.Pf("> wrote out/%s\n", fname)
	return nil
}

// WriteAllOrders writes one file per order in [q1,q2] for tensor t,
// extracting each order's spatial slice (sfun.Tensor.ExtractOrder) and
// writing it at spatialShape (the grid shape the tensor was built over).
func WriteAllOrders(base string, q1, q2 int, spatialShape []int, t *sfun.Tensor) error {
	for p := 0; p <= q2-q1; p++ {
		order := q1 + p
		if err := WriteOrder(base, order, spatialShape, t.ExtractOrder(p)); err != nil {
			return err
		}
	}
	return nil
}
