// Copyright 2026 The Structsf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
)

const sampleYAML = `
program:
  scalar_switch: false
  Only_longitudinal: false
  2D_switch: false
  Processors_X: 2
grid:
  Nx: 32
  Ny: 32
  Nz: 32
domain_dimension:
  Lx: 1.0
  Ly: 1.0
  Lz: 1.0
structure_function:
  q1: 1
  q2: 4
test:
  test_switch: true
`

func writeTempYAML(tst *testing.T, content string) string {
	dir := tst.TempDir()
	path := filepath.Join(dir, "para.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		tst.Fatalf("cannot write temp yaml: %v", err)
	}
	return path
}

func TestConfigLoad01(tst *testing.T) {

	chk.PrintTitle("ConfigLoad01: parses para.yaml and applies defaults")

	path := writeTempYAML(tst, sampleYAML)
	cfg, err := Load(path)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(cfg.Nx, 32)
	chk.IntAssert(cfg.Q1, 1)
	chk.IntAssert(cfg.Q2, 4)
	chk.IntAssert(cfg.ProcessorsX, 2)
	if !cfg.TestSwitch {
		tst.Fatal("expected test_switch=true")
	}
	if cfg.UName != "U.V1r" {
		tst.Fatalf("expected default UName, got %q", cfg.UName)
	}
	if cfg.PllOutBase != "SF_Grid_pll" {
		tst.Fatalf("expected default PllOutBase, got %q", cfg.PllOutBase)
	}
}

func TestConfigLoad02BadFile(tst *testing.T) {

	chk.PrintTitle("ConfigLoad02: missing file is a ConfigError")

	_, err := Load("/nonexistent/para.yaml")
	if err == nil {
		tst.Fatal("expected a ConfigError")
	}
	if _, ok := err.(*ConfigError); !ok {
		tst.Fatalf("expected *ConfigError, got %T", err)
	}
}

func TestConfigCLIOverlay01(tst *testing.T) {

	chk.PrintTitle("ConfigCLIOverlay01: CLI flags override YAML values")

	path := writeTempYAML(tst, sampleYAML)
	cfg, err := Load(path)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	err = ApplyCLI(cfg, []string{"-X", "64", "-1", "2"})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(cfg.Nx, 64)
	chk.IntAssert(cfg.Q1, 2)
	chk.IntAssert(cfg.Q2, 4) // unchanged
}
