// Copyright 2026 The Structsf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sfun implements the per-displacement driver and the collective
// aggregator: it walks a rank's local displacement list, invokes the
// kernel, and folds every rank's contribution into the dense result
// tensors (spec.md §4.2, §4.4).
package sfun

import "github.com/cpmech/gosl/chk"

// Tensor is a dense row-major N-dimensional array of float64, backed by a
// flat slice so it can be passed directly to mpi.AllReduceSum. Shape is
// (Hx,Hy,Hz,M) for the 3D case or (Hx,Hz,M) for the 2D case, per spec.md
// §3's result-tensor shapes.
type Tensor struct {
	Shape  []int
	Data   []float64
	stride []int
}

// NewTensor allocates a zeroed tensor of the given shape.
func NewTensor(shape ...int) *Tensor {
	n := 1
	for _, s := range shape {
		n *= s
	}
	t := &Tensor{Shape: append([]int(nil), shape...), Data: make([]float64, n)}
	t.stride = make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		t.stride[i] = acc
		acc *= shape[i]
	}
	return t
}

func (t *Tensor) idx(coords []int) int {
	if len(coords) != len(t.Shape) {
		chk.Panic("sfun: Tensor index arity mismatch: got %d, want %d", len(coords), len(t.Shape))
	}
	i := 0
	for d, c := range coords {
		i += c * t.stride[d]
	}
	return i
}

// At returns the element at coords.
func (t *Tensor) At(coords ...int) float64 { return t.Data[t.idx(coords)] }

// Set assigns the element at coords.
func (t *Tensor) Set(v float64, coords ...int) { t.Data[t.idx(coords)] = v }

// AddAt accumulates v into the element at coords.
func (t *Tensor) AddAt(v float64, coords ...int) { t.Data[t.idx(coords)] += v }

// ZeroOrderAxis zeroes the tensor's slot at displacement-index 0 for every
// order, implementing S_•(0,p) ≡ 0 (spec.md §3's boundary convention). The
// displacement axes are all but the last (order) axis.
func (t *Tensor) ZeroOrderAxis() {
	m := t.Shape[len(t.Shape)-1]
	for p := 0; p < m; p++ {
		t.Data[p] = 0 // displacement-index 0 is index 0 along every leading axis
	}
}

// Like clones the shape of t into a new zeroed tensor, for building a
// rank-local contribution buffer of the same shape as the global tensor.
func (t *Tensor) Like() *Tensor { return NewTensor(t.Shape...) }

// ExtractOrder returns the flat spatial sub-array for order-index p (the
// last axis), in row-major order over the remaining (displacement) axes.
// This is the shape spec.md §6.4 writes to one HDF5 file per order.
func (t *Tensor) ExtractOrder(p int) []float64 {
	m := t.Shape[len(t.Shape)-1]
	n := len(t.Data) / m
	out := make([]float64, n)
	for s := 0; s < n; s++ {
		out[s] = t.Data[s*m+p]
	}
	return out
}

// SpatialShape returns Shape without its trailing order axis — the shape
// of any single order's extracted slice.
func (t *Tensor) SpatialShape() []int {
	return append([]int(nil), t.Shape[:len(t.Shape)-1]...)
}
