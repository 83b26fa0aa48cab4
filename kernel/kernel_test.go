// Copyright 2026 The Structsf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// linearPairs builds n synthetic pairs where the field difference is
// constant (as it is for a linear field U(x)=x·d displaced by l), so the
// kernel's per-order reduction can be checked against a closed form.
func linearPairs(n int, delta float64) (base, shift []float64) {
	base = make([]float64, n)
	shift = make([]float64, n)
	for i := 0; i < n; i++ {
		base[i] = float64(i)
		shift[i] = float64(i) + delta
	}
	return
}

func TestKernelScalar01(tst *testing.T) {

	chk.PrintTitle("KernelScalar01: constant difference, S_theta(p) = delta^p")

	base, shift := linearPairs(10, 3.0)
	out := Scalar(base, shift, 1, 4)
	chk.IntAssert(out.N, 10)
	for p := 1; p <= 4; p++ {
		chk.Scalar(tst, "S_theta", 1e-12, out.Pll[p-1], math.Pow(3.0, float64(p)))
	}
}

func TestKernelVectorLinear01(tst *testing.T) {

	chk.PrintTitle("KernelVectorLinear01: linear field => S_pll=r^p, S_perp=0")

	// U_x(i)=i*dx, U_z(i)=i*dz; displacement l=(lx,0,lz), delta_x=lx, delta_z=lz
	n := 20
	lx, lz := 0.25, 0.5
	r := math.Hypot(lx, lz)
	uxBase := make([]float64, n)
	uxShift := make([]float64, n)
	uzBase := make([]float64, n)
	uzShift := make([]float64, n)
	for i := 0; i < n; i++ {
		uxBase[i] = float64(i)
		uxShift[i] = float64(i) + lx
		uzBase[i] = float64(i) * 2
		uzShift[i] = float64(i)*2 + lz
	}
	out := VectorBoth(uxBase, uxShift, nil, nil, uzBase, uzShift, lx, 0, lz, r, 1, 3)
	for p := 1; p <= 3; p++ {
		chk.Scalar(tst, "S_pll", 1e-10, out.Pll[p-1], math.Pow(r, float64(p)))
		chk.Scalar(tst, "S_perp", 1e-10, out.Perp[p-1], 0)
	}
}

func TestKernelOrigin01(tst *testing.T) {

	chk.PrintTitle("KernelOrigin01: r=0 does not panic and yields zero")

	n := 5
	ux := make([]float64, n)
	uz := make([]float64, n)
	out := VectorBoth(ux, ux, nil, nil, uz, uz, 0, 0, 0, 0, 1, 2)
	for _, v := range out.Pll {
		chk.Scalar(tst, "S_pll@origin", 1e-15, v, 0)
	}
	for _, v := range out.Perp {
		chk.Scalar(tst, "S_perp@origin", 1e-15, v, 0)
	}
}
