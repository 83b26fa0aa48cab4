// Copyright 2026 The Structsf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hio

import (
	"github.com/sfturb/structsf/field"
	"github.com/sfturb/structsf/grid"
	"github.com/sfturb/structsf/inp"
)

// ReadVector3D reads U_x, U_y, U_z from in/<UName|VName|WName>.h5.
func ReadVector3D(cfg *inp.Config, g *grid.Grid) (*field.Vector3D, error) {
	shape := []int{g.Nx, g.Ny, g.Nz}
	ux, err := ReadFlat(cfg.UName, shape)
	if err != nil {
		return nil, err
	}
	uy, err := ReadFlat(cfg.VName, shape)
	if err != nil {
		return nil, err
	}
	uz, err := ReadFlat(cfg.WName, shape)
	if err != nil {
		return nil, err
	}
	return &field.Vector3D{
		Ux: field.FromFlat3D(ux, g.Nx, g.Ny, g.Nz),
		Uy: field.FromFlat3D(uy, g.Nx, g.Ny, g.Nz),
		Uz: field.FromFlat3D(uz, g.Nx, g.Ny, g.Nz),
	}, nil
}

// ReadVector2D reads U_x, U_z from in/<UName|WName>.h5 (no y-component).
func ReadVector2D(cfg *inp.Config, g *grid.Grid) (*field.Vector2D, error) {
	shape := []int{g.Nx, g.Nz}
	ux, err := ReadFlat(cfg.UName, shape)
	if err != nil {
		return nil, err
	}
	uz, err := ReadFlat(cfg.WName, shape)
	if err != nil {
		return nil, err
	}
	return &field.Vector2D{
		Ux: field.FromFlat2D(ux, g.Nx, g.Nz),
		Uz: field.FromFlat2D(uz, g.Nx, g.Nz),
	}, nil
}

// ReadScalar3D reads theta from in/<TName>.h5.
func ReadScalar3D(cfg *inp.Config, g *grid.Grid) (*field.Scalar3D, error) {
	th, err := ReadFlat(cfg.TName, []int{g.Nx, g.Ny, g.Nz})
	if err != nil {
		return nil, err
	}
	return &field.Scalar3D{Theta: field.FromFlat3D(th, g.Nx, g.Ny, g.Nz)}, nil
}

// ReadScalar2D reads theta from in/<TName>.h5.
func ReadScalar2D(cfg *inp.Config, g *grid.Grid) (*field.Scalar2D, error) {
	th, err := ReadFlat(cfg.TName, []int{g.Nx, g.Nz})
	if err != nil {
		return nil, err
	}
	return &field.Scalar2D{Theta: field.FromFlat2D(th, g.Nx, g.Nz)}, nil
}
