// Copyright 2026 The Structsf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package kernel implements the difference and projection kernel: for one
// displacement, it forms the field-difference sub-array, projects it into
// longitudinal/transverse components for vector fields, and reduces the
// per-order averages for a range of structure-function orders.
package kernel

import "math"

// Orders holds the per-order scalar outputs for one displacement. Perp is
// nil when only the longitudinal component was requested or the field is
// scalar.
type Orders struct {
	Pll  []float64 // [q2-q1+1] longitudinal (or scalar) average per order
	Perp []float64 // [q2-q1+1] transverse-magnitude average per order, or nil
	N    int       // number of in-grid pairs contributing (the divisor)
}

// newOrders allocates the per-order accumulators for the range [q1,q2].
func newOrders(q1, q2 int, withPerp bool) *Orders {
	m := q2 - q1 + 1
	o := &Orders{Pll: make([]float64, m)}
	if withPerp {
		o.Perp = make([]float64, m)
	}
	return o
}

// reducePower raises every element of diffs to each order in [q1,q2] and
// accumulates the sum into dst[p-q1], dividing by n at the end.
func reducePower(dst []float64, diffs []float64, q1, q2 int) {
	n := len(diffs)
	for _, d := range diffs {
		for p := q1; p <= q2; p++ {
			dst[p-q1] += math.Pow(d, float64(p))
		}
	}
	if n == 0 {
		return
	}
	for i := range dst {
		dst[i] /= float64(n)
	}
}

// VectorBoth computes S_pll and S_perp for one displacement, given the
// flattened base/shifted component slices over Ω(l) (ux,uy,uz may be nil
// in 2D for the y component), the physical displacement (lx,ly,lz) and its
// magnitude r, for orders [q1,q2]. n is the pair count |Ω(l)| = len of each
// slice.
func VectorBoth(uxBase, uxShift, uyBase, uyShift, uzBase, uzShift []float64, lx, ly, lz, r float64, q1, q2 int) *Orders {
	n := len(uxBase)
	out := newOrders(q1, q2, true)
	out.N = n
	if n == 0 {
		return out
	}
	if r == 0 {
		// origin displacement: value is overwritten to zero by the
		// orchestrator's cleanup pass; avoid dividing by r here.
		return out
	}
	pll := make([]float64, n)
	perp := make([]float64, n)
	for i := 0; i < n; i++ {
		dx := uxShift[i] - uxBase[i]
		var dy float64
		if uyBase != nil {
			dy = uyShift[i] - uyBase[i]
		}
		dz := uzShift[i] - uzBase[i]
		p := (lx*dx + ly*dy + lz*dz) / r
		pll[i] = p
		rx := dx - p*(lx/r)
		ry := dy - p*(ly/r)
		rz := dz - p*(lz/r)
		perp[i] = math.Sqrt(rx*rx + ry*ry + rz*rz)
	}
	reducePower(out.Pll, pll, q1, q2)
	reducePower(out.Perp, perp, q1, q2)
	return out
}

// VectorLongOnly is VectorBoth without the transverse projection.
func VectorLongOnly(uxBase, uxShift, uyBase, uyShift, uzBase, uzShift []float64, lx, ly, lz, r float64, q1, q2 int) *Orders {
	n := len(uxBase)
	out := newOrders(q1, q2, false)
	out.N = n
	if n == 0 || r == 0 {
		return out
	}
	pll := make([]float64, n)
	for i := 0; i < n; i++ {
		dx := uxShift[i] - uxBase[i]
		var dy float64
		if uyBase != nil {
			dy = uyShift[i] - uyBase[i]
		}
		dz := uzShift[i] - uzBase[i]
		pll[i] = (lx*dx + ly*dy + lz*dz) / r
	}
	reducePower(out.Pll, pll, q1, q2)
	return out
}

// Scalar computes S_theta for one displacement from the flattened
// base/shifted scalar field slices over Ω(l), for orders [q1,q2].
func Scalar(base, shift []float64, q1, q2 int) *Orders {
	n := len(base)
	out := newOrders(q1, q2, false)
	out.N = n
	if n == 0 {
		return out
	}
	d := make([]float64, n)
	for i := 0; i < n; i++ {
		d[i] = shift[i] - base[i]
	}
	reducePower(out.Pll, d, q1, q2)
	return out
}
