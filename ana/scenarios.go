// Copyright 2026 The Structsf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"github.com/sfturb/structsf/field"
	"github.com/sfturb/structsf/grid"
	"github.com/sfturb/structsf/inp"
	"github.com/sfturb/structsf/sfun"
)

// wholeHalfDomain builds the single-rank local list covering the entire
// distributed half-domain (px=py=1, rx=ry=0), used by the standalone
// scenarios below which always run on one process.
func wholeHalfDomain(halfX, halfY int) [][2]int {
	out := make([][2]int, 0, halfX*halfY)
	for x := 0; x < halfX; x++ {
		for y := 0; y < halfY; y++ {
			out = append(out, [2]int{x, y})
		}
	}
	return out
}

// Scenario1VectorLinear3D runs spec.md §8 scenario 1: a linear 3D vector
// field, both components, and checks the closed form S_pll=r^p, S_perp=0.
func Scenario1VectorLinear3D(n int, q1, q2 int) error {
	g, err := grid.New(n, n, n, 1, 1, 1)
	if err != nil {
		return err
	}
	f := field.LinearVector3D(g)
	local := wholeHalfDomain(g.HalfNx(), g.HalfNy())
	pll, perp := sfun.DriveVectorBoth3D(g, f, local, q1, q2)
	pll.ZeroOrderAxis()
	perp.ZeroOrderAxis()
	cfg := &inp.Config{Q1: q1, Q2: q2}
	return verifyVector(cfg, g, pll, perp)
}

// Scenario2VectorLinear2D runs spec.md §8 scenario 2: the 2D analogue.
func Scenario2VectorLinear2D(n int, q1, q2 int) error {
	g, err := grid.New(n, 0, n, 1, 0, 1)
	if err != nil {
		return err
	}
	f := field.LinearVector2D(g)
	local := wholeHalfDomain(g.HalfNx(), g.HalfNz())
	pll, perp := sfun.DriveVectorBoth2D(g, f, local, q1, q2)
	pll.ZeroOrderAxis()
	perp.ZeroOrderAxis()
	cfg := &inp.Config{Q1: q1, Q2: q2}
	return verifyVector(cfg, g, pll, perp)
}

// Scenario3ScalarLinear3D runs spec.md §8 scenario 3.
func Scenario3ScalarLinear3D(n int, q1, q2 int) error {
	g, err := grid.New(n, n, n, 1, 1, 1)
	if err != nil {
		return err
	}
	f := field.LinearScalar3D(g)
	local := wholeHalfDomain(g.HalfNx(), g.HalfNy())
	theta := sfun.DriveScalar3D(g, f, local, q1, q2)
	theta.ZeroOrderAxis()
	cfg := &inp.Config{Q1: q1, Q2: q2}
	return verifyScalar(cfg, g, theta)
}

// Scenario4ScalarLinear2D runs spec.md §8 scenario 4.
func Scenario4ScalarLinear2D(n int, q1, q2 int) error {
	g, err := grid.New(n, 0, n, 1, 0, 1)
	if err != nil {
		return err
	}
	f := field.LinearScalar2D(g)
	local := wholeHalfDomain(g.HalfNx(), g.HalfNz())
	theta := sfun.DriveScalar2D(g, f, local, q1, q2)
	theta.ZeroOrderAxis()
	cfg := &inp.Config{Q1: q1, Q2: q2}
	return verifyScalar(cfg, g, theta)
}

// Scenario5OriginCleanup runs spec.md §8 scenario 5: regardless of field
// content, the displacement-zero slot must read back as zero for every
// order after ZeroOrderAxis.
func Scenario5OriginCleanup(n int, q1, q2 int) error {
	g, err := grid.New(n, n, n, 1, 1, 1)
	if err != nil {
		return err
	}
	f := field.LinearScalar3D(g)
	local := wholeHalfDomain(g.HalfNx(), g.HalfNy())
	theta := sfun.DriveScalar3D(g, f, local, q1, q2)
	theta.ZeroOrderAxis()
	for p := 0; p <= q2-q1; p++ {
		if theta.At(0, 0, 0, p) != 0 {
			return inp.NewRuntimeError("VERIFY mismatch: origin not zeroed at p=%d, got %v", p+q1, theta.At(0, 0, 0, p))
		}
	}
	return nil
}
