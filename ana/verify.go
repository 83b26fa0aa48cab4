// Copyright 2026 The Structsf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements the analytic round-trip verification scenarios
// of spec.md §8: linear fields have closed-form structure functions
// (S_pll(l) = r^p, S_perp(l) = 0, S_theta(l) = (projection)^p), so a
// correct engine run on a synthetic linear field must reproduce them
// within tolerance. Runnable standalone (the Scenario* functions) or
// wired into orchestrate's VERIFY phase (Verify).
package ana

import (
	"math"

	"github.com/sfturb/structsf/grid"
	"github.com/sfturb/structsf/inp"
	"github.com/sfturb/structsf/sfun"
)

// tolerance for the relative comparison; r=0 falls back to an absolute
// check since the origin's structure function is zero by convention.
const relTol = 1e-10

func closeEnough(got, want float64) bool {
	if want == 0 {
		return math.Abs(got) < 1e-9
	}
	return math.Abs(got-want)/math.Abs(want) <= relTol
}

// mismatch builds a RuntimeError describing a verification failure.
func mismatch(what string, x, y, z, p int, got, want float64) error {
	return inp.NewRuntimeError("VERIFY mismatch in %s at (x=%d,y=%d,z=%d,p=%d): got %v, want %v", what, x, y, z, p, got, want)
}

// Verify checks a computed result against the closed form of spec.md §8
// for the linear synthetic field the orchestrator's TEST mode loads.
// Exactly one of (pll,perp) or theta is non-nil per the dims x kind x
// mode matrix; nil tensors are skipped.
func Verify(cfg *inp.Config, g *grid.Grid, pll, perp, theta *sfun.Tensor) error {
	if theta != nil {
		return verifyScalar(cfg, g, theta)
	}
	return verifyVector(cfg, g, pll, perp)
}

func verifyVector(cfg *inp.Config, g *grid.Grid, pll, perp *sfun.Tensor) error {
	hx, hz := g.HalfNx(), g.HalfNz()
	hy := 1
	if g.Is3D() {
		hy = g.HalfNy()
	}
	for x := 0; x < hx; x++ {
		for y := 0; y < hy; y++ {
			for z := 0; z < hz; z++ {
				d := g.At(x, y, z)
				for p := cfg.Q1; p <= cfg.Q2; p++ {
					idx := p - cfg.Q1
					want := math.Pow(d.R, float64(p))
					if d.IsOrigin() {
						want = 0
					}
					var got float64
					if g.Is3D() {
						got = pll.At(x, y, z, idx)
					} else {
						got = pll.At(x, z, idx)
					}
					if !closeEnough(got, want) {
						return mismatch("S_pll", x, y, z, p, got, want)
					}
					if perp == nil {
						continue
					}
					var gotPerp float64
					if g.Is3D() {
						gotPerp = perp.At(x, y, z, idx)
					} else {
						gotPerp = perp.At(x, z, idx)
					}
					if !closeEnough(gotPerp, 0) {
						return mismatch("S_perp", x, y, z, p, gotPerp, 0)
					}
				}
			}
		}
	}
	return nil
}

func verifyScalar(cfg *inp.Config, g *grid.Grid, theta *sfun.Tensor) error {
	hx, hz := g.HalfNx(), g.HalfNz()
	hy := 1
	if g.Is3D() {
		hy = g.HalfNy()
	}
	for x := 0; x < hx; x++ {
		for y := 0; y < hy; y++ {
			for z := 0; z < hz; z++ {
				d := g.At(x, y, z)
				for p := cfg.Q1; p <= cfg.Q2; p++ {
					idx := p - cfg.Q1
					want := math.Pow(d.Lx+d.Ly+d.Lz, float64(p))
					if d.IsOrigin() {
						want = 0
					}
					var got float64
					if g.Is3D() {
						got = theta.At(x, y, z, idx)
					} else {
						got = theta.At(x, z, idx)
					}
					if !closeEnough(got, want) {
						return mismatch("S_theta", x, y, z, p, got, want)
					}
				}
			}
		}
	}
	return nil
}
