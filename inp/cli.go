// Copyright 2026 The Structsf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "github.com/spf13/pflag"

// ApplyCLI overlays the command-line options of spec.md §6.2 on top of a
// YAML-loaded Config. Only flags actually passed on the command line
// override cfg; everything else keeps the YAML value.
func ApplyCLI(cfg *Config, args []string) error {
	fs := pflag.NewFlagSet("structsf", pflag.ContinueOnError)

	nx := fs.IntP("Nx", "X", cfg.Nx, "grid size along x")
	ny := fs.IntP("Ny", "Y", cfg.Ny, "grid size along y")
	nz := fs.IntP("Nz", "Z", cfg.Nz, "grid size along z")
	lx := fs.Float64P("Lx", "x", cfg.Lx, "domain extent along x")
	ly := fs.Float64P("Ly", "y", cfg.Ly, "domain extent along y")
	lz := fs.Float64P("Lz", "z", cfg.Lz, "domain extent along z")
	px := fs.IntP("ProcessorsX", "p", cfg.ProcessorsX, "process-grid extent along x")
	q1 := fs.IntP("q1", "1", cfg.Q1, "lowest structure-function order")
	q2 := fs.IntP("q2", "2", cfg.Q2, "highest structure-function order")
	test := fs.BoolP("test", "t", cfg.TestSwitch, "run analytic verification")
	scalar := fs.BoolP("scalar", "s", cfg.ScalarSwitch, "scalar-field mode")
	twoDim := fs.BoolP("two_dim", "d", cfg.TwoD, "two-dimensional mode")
	long := fs.BoolP("longitudinal", "l", cfg.OnlyLong, "longitudinal-only mode")
	uName := fs.StringP("UName", "U", cfg.UName, "dataset base name for U_x")
	vName := fs.StringP("VName", "V", cfg.VName, "dataset base name for U_y")
	wName := fs.StringP("WName", "W", cfg.WName, "dataset base name for U_z")
	pllBase := fs.StringP("pll_out_base", "L", cfg.PllOutBase, "output base name for S_pll")
	perpBase := fs.StringP("perp_out_base", "P", cfg.PerpOutBase, "output base name for S_perp")
	scalarBase := fs.StringP("scalar_out_base", "M", cfg.ScalarOutBase, "output base name for S_theta")

	if err := fs.Parse(args); err != nil {
		return NewConfigError("cannot parse command-line arguments: %v", err)
	}

	if fs.Changed("Nx") {
		cfg.Nx = *nx
	}
	if fs.Changed("Ny") {
		cfg.Ny = *ny
	}
	if fs.Changed("Nz") {
		cfg.Nz = *nz
	}
	if fs.Changed("Lx") {
		cfg.Lx = *lx
	}
	if fs.Changed("Ly") {
		cfg.Ly = *ly
	}
	if fs.Changed("Lz") {
		cfg.Lz = *lz
	}
	if fs.Changed("ProcessorsX") {
		cfg.ProcessorsX = *px
	}
	if fs.Changed("q1") {
		cfg.Q1 = *q1
	}
	if fs.Changed("q2") {
		cfg.Q2 = *q2
	}
	if fs.Changed("test") {
		cfg.TestSwitch = *test
	}
	if fs.Changed("scalar") {
		cfg.ScalarSwitch = *scalar
	}
	if fs.Changed("two_dim") {
		cfg.TwoD = *twoDim
	}
	if fs.Changed("longitudinal") {
		cfg.OnlyLong = *long
	}
	if fs.Changed("UName") {
		cfg.UName = *uName
	}
	if fs.Changed("VName") {
		cfg.VName = *vName
	}
	if fs.Changed("WName") {
		cfg.WName = *wName
	}
	if fs.Changed("pll_out_base") {
		cfg.PllOutBase = *pllBase
	}
	if fs.Changed("perp_out_base") {
		cfg.PerpOutBase = *perpBase
	}
	if fs.Changed("scalar_out_base") {
		cfg.ScalarOutBase = *scalarBase
	}

	return sanityCheck(cfg)
}
