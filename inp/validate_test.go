// Copyright 2026 The Structsf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestValidate01(tst *testing.T) {

	chk.PrintTitle("Validate01: accepts a well-formed 3D decomposition")

	cfg := &Config{Nx: 32, Ny: 16, Nz: 32, ProcessorsX: 4}
	if err := Validate(cfg, 8); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate02(tst *testing.T) {

	chk.PrintTitle("Validate02: rejects Processors_X > P")

	cfg := &Config{Nx: 32, Ny: 16, Nz: 32, ProcessorsX: 16}
	if err := Validate(cfg, 8); err == nil {
		tst.Fatal("expected a DecompositionError")
	}
}

func TestValidate03(tst *testing.T) {

	chk.PrintTitle("Validate03: rejects a non-power-of-2 quotient")

	// Nx/2=12, px=4 -> 12%4==0 but the quotient 3 is not a power of 2
	cfg := &Config{Nx: 24, Ny: 16, Nz: 32, ProcessorsX: 4}
	if err := Validate(cfg, 8); err == nil {
		tst.Fatal("expected a DecompositionError")
	}
}

func TestValidate04TwoD(tst *testing.T) {

	chk.PrintTitle("Validate04: 2D mode uses Nz for the second axis")

	cfg := &Config{Nx: 64, Nz: 64, TwoD: true, ProcessorsX: 8}
	if err := Validate(cfg, 16); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
}
