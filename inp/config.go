// Copyright 2026 The Structsf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"

	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// yamlDoc mirrors the on-disk shape of in/para.yaml (spec.md §6.1)
// exactly; Config (below) is the flat, validated, CLI-overlaid structure
// the rest of the program uses.
type yamlDoc struct {
	Program struct {
		ScalarSwitch bool `yaml:"scalar_switch"`
		OnlyLong     bool `yaml:"Only_longitudinal"`
		TwoDSwitch   bool `yaml:"2D_switch"`
		ProcessorsX  int  `yaml:"Processors_X"`
	} `yaml:"program"`
	Grid struct {
		Nx int `yaml:"Nx"`
		Ny int `yaml:"Ny"`
		Nz int `yaml:"Nz"`
	} `yaml:"grid"`
	Domain struct {
		Lx float64 `yaml:"Lx"`
		Ly float64 `yaml:"Ly"`
		Lz float64 `yaml:"Lz"`
	} `yaml:"domain_dimension"`
	StructFunc struct {
		Q1 int `yaml:"q1"`
		Q2 int `yaml:"q2"`
	} `yaml:"structure_function"`
	Test struct {
		TestSwitch bool `yaml:"test_switch"`
	} `yaml:"test"`
}

// Config holds the fully-resolved run configuration: YAML values after
// the CLI overlay of spec.md §6.2 has been applied.
type Config struct {
	// program
	ScalarSwitch bool
	OnlyLong     bool
	TwoD         bool
	ProcessorsX  int

	// grid
	Nx, Ny, Nz int

	// domain_dimension
	Lx, Ly, Lz float64

	// structure_function
	Q1, Q2 int

	// test
	TestSwitch bool

	// dataset/output base names (spec.md §6.2 defaults)
	UName, VName, WName, TName             string
	PllOutBase, PerpOutBase, ScalarOutBase string
}

// defaultBaseNames applies the default dataset and output base names of
// spec.md §6.2.
func defaultBaseNames(cfg *Config) {
	cfg.UName = "U.V1r"
	cfg.VName = "U.V2r"
	cfg.WName = "U.V3r"
	cfg.TName = "T.Fr"
	cfg.PllOutBase = "SF_Grid_pll"
	cfg.PerpOutBase = "SF_Grid_perp"
	cfg.ScalarOutBase = "SF_Grid_scalar"
}

// Load reads and parses the YAML parameter file at path (spec.md §6.1).
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigError("cannot read parameter file %q: %v", path, err)
	}
	var doc yamlDoc
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, NewConfigError("cannot parse YAML parameter file %q: %v", path, err)
	}

	cfg := new(Config)
	defaultBaseNames(cfg)
	cfg.ScalarSwitch = doc.Program.ScalarSwitch
	cfg.OnlyLong = doc.Program.OnlyLong
	cfg.TwoD = doc.Program.TwoDSwitch
	cfg.ProcessorsX = doc.Program.ProcessorsX
	cfg.Nx = doc.Grid.Nx
	cfg.Ny = doc.Grid.Ny
	cfg.Nz = doc.Grid.Nz
	cfg.Lx = doc.Domain.Lx
	cfg.Ly = doc.Domain.Ly
	cfg.Lz = doc.Domain.Lz
	cfg.Q1 = doc.StructFunc.Q1
	cfg.Q2 = doc.StructFunc.Q2
	cfg.TestSwitch = doc.Test.TestSwitch

	if err := sanityCheck(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// sanityCheck validates the fields that must hold regardless of process
// count (the §6.5 process-grid constraints need P and are checked
// separately by Validate).
func sanityCheck(cfg *Config) error {
	if cfg.Nx < 2 || cfg.Nz < 2 {
		return NewConfigError("grid.Nx and grid.Nz must be >= 2, got Nx=%d Nz=%d", cfg.Nx, cfg.Nz)
	}
	if !cfg.TwoD && cfg.Ny < 2 {
		return NewConfigError("grid.Ny must be >= 2 in 3D mode, got %d", cfg.Ny)
	}
	if cfg.Q1 > cfg.Q2 {
		return NewConfigError("structure_function.q1 (%d) must be <= q2 (%d)", cfg.Q1, cfg.Q2)
	}
	if cfg.ProcessorsX < 1 {
		return NewConfigError("program.Processors_X must be >= 1, got %d", cfg.ProcessorsX)
	}
	return nil
}

// Print logs the resolved configuration, mirroring gofem's io.ArgsTable
// banner.
func (cfg *Config) Print() {
	io.Pf("%v\n", io.ArgsTable("STRUCTURE FUNCTION PARAMETERS",
		"grid size Nx", "Nx", cfg.Nx,
		"grid size Ny", "Ny", cfg.Ny,
		"grid size Nz", "Nz", cfg.Nz,
		"domain extent Lx", "Lx", cfg.Lx,
		"domain extent Ly", "Ly", cfg.Ly,
		"domain extent Lz", "Lz", cfg.Lz,
		"order q1", "Q1", cfg.Q1,
		"order q2", "Q2", cfg.Q2,
		"scalar field", "ScalarSwitch", cfg.ScalarSwitch,
		"longitudinal only", "OnlyLong", cfg.OnlyLong,
		"two-dimensional", "TwoD", cfg.TwoD,
		"processors along x", "ProcessorsX", cfg.ProcessorsX,
		"test mode", "TestSwitch", cfg.TestSwitch,
	))
}
