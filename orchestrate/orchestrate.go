// Copyright 2026 The Structsf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package orchestrate drives the INIT -> LOAD -> ALLOC -> COMPUTE -> WRITE
// -> VERIFY -> TEARDOWN state machine of spec.md §4.5, dispatching to the
// dims x kind x mode variant matrix and tying together grid, part, field,
// sfun, hio and inp. It mirrors gofem's fem.FEM.Run/onexit staging.
package orchestrate

import (
	"time"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"

	"github.com/sfturb/structsf/ana"
	"github.com/sfturb/structsf/field"
	"github.com/sfturb/structsf/grid"
	"github.com/sfturb/structsf/hio"
	"github.com/sfturb/structsf/inp"
	"github.com/sfturb/structsf/part"
	"github.com/sfturb/structsf/sfun"
)

// procCount returns the number of active processes; 1 if MPI was never
// started (matches gofem's fem.FEM.NewFEM fallback when mpi.IsOn() is
// false).
func procCount() int {
	if mpi.IsOn() {
		return mpi.Size()
	}
	return 1
}

func rankID() int {
	if mpi.IsOn() {
		return mpi.Rank()
	}
	return 0
}

// Run executes one structure-function computation end-to-end for cfg.
// Only rank 0 prints stage messages and writes output files.
func Run(cfg *inp.Config) (err error) {

	t0 := time.Now()
	showMsg := rankID() == 0

	defer func() {
		if showMsg {
			if err != nil {
				io.PfRed("> FAILED after %v\n", time.Since(t0))
			} else {
				io.PfGreen("> done in %v\n", time.Since(t0))
			}
		}
	}()

	// INIT
	p := procCount()
	if err = inp.Validate(cfg, p); err != nil {
		return err
	}
	if showMsg {
		cfg.Print()
		io.Pf("> initialisation complete (P=%d)\n", p)
	}

	ny := cfg.Ny
	if cfg.TwoD {
		ny = 0
	}
	g, err := grid.New(cfg.Nx, ny, cfg.Nz, cfg.Lx, cfg.Ly, cfg.Lz)
	if err != nil {
		return inp.NewConfigError("%v", err)
	}

	px := cfg.ProcessorsX
	py := p / px
	rank := rankID()
	rx, ry := part.RankCoord(rank, py)

	halfX := g.HalfNx()
	halfY := g.HalfNz() // second distributed axis: Ny in 3D, Nz in 2D
	if g.Is3D() {
		halfY = g.HalfNy()
	}
	local := part.BuildLocal(px, py, rx, ry, halfX, halfY)
	if showMsg {
		io.Pf("> load partitioned: rank grid %dx%d\n", px, py)
	}

	// LOAD
	if cfg.TestSwitch && showMsg {
		io.PfYel("\n> TEST MODE: analytic patterns, no input files read\n\n")
	}
	result, err := compute(cfg, g, local)
	if err != nil {
		return err
	}

	// WRITE (rank 0 only, after aggregation)
	if showMsg {
		if err = writeResult(cfg, result); err != nil {
			return err
		}
	}

	// VERIFY
	if cfg.TestSwitch {
		if verr := ana.Verify(cfg, g, result.Pll, result.Perp, result.Theta); verr != nil {
			return verr
		}
		if showMsg {
			io.PfGreen("> VERIFY passed: analytic round-trip within tolerance\n")
		}
	}

	return nil
}

// result bundles whichever output tensors this run produced; unused
// fields are nil (the dims/kind/mode matrix of spec.md §4.5 only ever
// populates a subset at a time).
type result struct {
	Pll, Perp, Theta *sfun.Tensor
}

// compute dispatches the dims x kind x mode matrix: LOAD the field
// (file or synthetic), ALLOC+COMPUTE the per-rank contribution via the
// matching sfun.Drive* variant, then aggregate across ranks.
func compute(cfg *inp.Config, g *grid.Grid, local [][2]int) (*result, error) {
	switch {
	case cfg.ScalarSwitch && g.Is3D():
		f, err := loadScalar3D(cfg, g)
		if err != nil {
			return nil, err
		}
		t := sfun.DriveScalar3D(g, f, local, cfg.Q1, cfg.Q2)
		sfun.Aggregate(t)
		t.ZeroOrderAxis()
		return &result{Theta: t}, nil

	case cfg.ScalarSwitch && !g.Is3D():
		f, err := loadScalar2D(cfg, g)
		if err != nil {
			return nil, err
		}
		t := sfun.DriveScalar2D(g, f, local, cfg.Q1, cfg.Q2)
		sfun.Aggregate(t)
		t.ZeroOrderAxis()
		return &result{Theta: t}, nil

	case !cfg.ScalarSwitch && g.Is3D() && cfg.OnlyLong:
		f, err := loadVector3D(cfg, g)
		if err != nil {
			return nil, err
		}
		pll := sfun.DriveVectorLong3D(g, f, local, cfg.Q1, cfg.Q2)
		sfun.Aggregate(pll)
		pll.ZeroOrderAxis()
		return &result{Pll: pll}, nil

	case !cfg.ScalarSwitch && g.Is3D() && !cfg.OnlyLong:
		f, err := loadVector3D(cfg, g)
		if err != nil {
			return nil, err
		}
		pll, perp := sfun.DriveVectorBoth3D(g, f, local, cfg.Q1, cfg.Q2)
		sfun.AggregateAll(pll, perp)
		pll.ZeroOrderAxis()
		perp.ZeroOrderAxis()
		return &result{Pll: pll, Perp: perp}, nil

	case !cfg.ScalarSwitch && !g.Is3D() && cfg.OnlyLong:
		f, err := loadVector2D(cfg, g)
		if err != nil {
			return nil, err
		}
		pll := sfun.DriveVectorLong2D(g, f, local, cfg.Q1, cfg.Q2)
		sfun.Aggregate(pll)
		pll.ZeroOrderAxis()
		return &result{Pll: pll}, nil

	default: // vector, 2D, both components
		f, err := loadVector2D(cfg, g)
		if err != nil {
			return nil, err
		}
		pll, perp := sfun.DriveVectorBoth2D(g, f, local, cfg.Q1, cfg.Q2)
		sfun.AggregateAll(pll, perp)
		pll.ZeroOrderAxis()
		perp.ZeroOrderAxis()
		return &result{Pll: pll, Perp: perp}, nil
	}
}

func loadScalar3D(cfg *inp.Config, g *grid.Grid) (*field.Scalar3D, error) {
	if cfg.TestSwitch {
		return field.LinearScalar3D(g), nil
	}
	return hio.ReadScalar3D(cfg, g)
}

func loadScalar2D(cfg *inp.Config, g *grid.Grid) (*field.Scalar2D, error) {
	if cfg.TestSwitch {
		return field.LinearScalar2D(g), nil
	}
	return hio.ReadScalar2D(cfg, g)
}

func loadVector3D(cfg *inp.Config, g *grid.Grid) (*field.Vector3D, error) {
	if cfg.TestSwitch {
		return field.LinearVector3D(g), nil
	}
	return hio.ReadVector3D(cfg, g)
}

func loadVector2D(cfg *inp.Config, g *grid.Grid) (*field.Vector2D, error) {
	if cfg.TestSwitch {
		return field.LinearVector2D(g), nil
	}
	return hio.ReadVector2D(cfg, g)
}

// writeResult persists every non-nil tensor in result to out/, one file
// per order (spec.md §6.4).
func writeResult(cfg *inp.Config, r *result) error {
	if r.Pll != nil {
		if err := hio.WriteAllOrders(cfg.PllOutBase, cfg.Q1, cfg.Q2, r.Pll.SpatialShape(), r.Pll); err != nil {
			return err
		}
	}
	if r.Perp != nil {
		if err := hio.WriteAllOrders(cfg.PerpOutBase, cfg.Q1, cfg.Q2, r.Perp.SpatialShape(), r.Perp); err != nil {
			return err
		}
	}
	if r.Theta != nil {
		if err := hio.WriteAllOrders(cfg.ScalarOutBase, cfg.Q1, cfg.Q2, r.Theta.SpatialShape(), r.Theta); err != nil {
			return err
		}
	}
	return nil
}
