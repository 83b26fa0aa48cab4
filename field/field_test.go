// Copyright 2026 The Structsf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/sfturb/structsf/grid"
)

func TestField01(tst *testing.T) {

	chk.PrintTitle("Field01: allocation shapes")

	g, err := grid.New(4, 5, 6, 1, 1, 1)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	v := NewVector3D(g)
	chk.IntAssert(len(v.Ux), 4)
	chk.IntAssert(len(v.Ux[0]), 5)
	chk.IntAssert(len(v.Ux[0][0]), 6)

	s := NewScalar2D(g)
	chk.IntAssert(len(s.Theta), 4)
	chk.IntAssert(len(s.Theta[0]), 6)
}

func TestField02Linear(tst *testing.T) {

	chk.PrintTitle("Field02: linear pattern generator")

	g, err := grid.New(8, 8, 8, 1, 1, 1)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	f := LinearScalar3D(g)
	chk.Scalar(tst, "theta(1,1,1)", 1e-14, f.Theta[1][1][1], 3*g.Dx)
}
