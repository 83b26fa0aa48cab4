// Copyright 2026 The Structsf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestGrid01(tst *testing.T) {

	chk.PrintTitle("Grid01: spacings and degenerate axis")

	g, err := New(33, 17, 33, 1.0, 0.5, 1.0)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Scalar(tst, "Dx", 1e-15, g.Dx, 1.0/32.0)
	chk.Scalar(tst, "Dy", 1e-15, g.Dy, 0.5/16.0)
	chk.Scalar(tst, "Dz", 1e-15, g.Dz, 1.0/32.0)

	g2, err := New(4, 1, 4, 1.0, 1.0, 1.0)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Scalar(tst, "Dy degenerate", 1e-15, g2.Dy, 0.0)
}

func TestGrid02(tst *testing.T) {

	chk.PrintTitle("Grid02: half-domain enumeration sizes")

	g, err := New(8, 8, 8, 1.0, 1.0, 1.0)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	full := g.HalfDomain3D()
	chk.IntAssert(len(full), 4*4*4)

	g2d, err := New(8, 0, 8, 1.0, 0.0, 1.0)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if g2d.Is3D() {
		tst.Fatal("expected 2D grid")
	}
	full2d := g2d.HalfDomain2D()
	chk.IntAssert(len(full2d), 4*4)
}

func TestGrid03(tst *testing.T) {

	chk.PrintTitle("Grid03: displacement magnitude")

	g, err := New(32, 32, 32, 1.0, 1.0, 1.0)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	d := g.At(1, 0, 0)
	chk.Scalar(tst, "r(1,0,0)", 1e-14, d.R, g.Dx)
	if d.IsOrigin() {
		tst.Fatal("(1,0,0) must not be the origin")
	}
	o := g.At(0, 0, 0)
	if !o.IsOrigin() {
		tst.Fatal("(0,0,0) must be the origin")
	}
}
