// Copyright 2026 The Structsf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp reads and validates the run configuration: the YAML
// parameter file (spec.md §6.1), the CLI overlay (spec.md §6.2), and the
// pre-run decomposition constraints (spec.md §6.5).
package inp

import "github.com/cpmech/gosl/io"

// ConfigError reports a missing/unparseable YAML document or an invalid
// grid/order configuration (spec.md §7).
type ConfigError struct{ msg string }

func (e *ConfigError) Error() string { return e.msg }

// NewConfigError builds a ConfigError.
func NewConfigError(format string, args ...interface{}) *ConfigError {
	return &ConfigError{msg: io.Sf("ConfigError: "+format, args...)}
}

// CompatibilityError reports a missing dataset, wrong rank, or wrong
// shape in an input HDF5 file (spec.md §7). Its message carries the
// seven-point checklist a user needs to fix a naming/shape mismatch.
type CompatibilityError struct{ msg string }

func (e *CompatibilityError) Error() string { return e.msg }

// checklist is the seven-point diagnostic spec.md §7 requires for file
// errors: file naming, dataset naming, and grid-shape requirements.
const checklist = `
checklist:
  1) the input directory must be named "in/"
  2) one HDF5 file per field component, named "<base>.h5"
  3) the file's single dataset must be named exactly "<base>"
  4) dataset rank must equal 2 (2D mode) or 3 (3D mode)
  5) dataset shape must equal the configured grid (Nx[,Ny],Nz)
  6) default bases are U.V1r, U.V2r, U.V3r (vector) or T.Fr (scalar)
  7) override vector bases with -U/-V/-W; TName has no CLI flag or YAML key (always T.Fr)`

// NewCompatibilityError builds a CompatibilityError with the seven-point
// checklist appended.
func NewCompatibilityError(format string, args ...interface{}) *CompatibilityError {
	return &CompatibilityError{msg: io.Sf("CompatibilityError: "+format, args...) + checklist}
}

// DecompositionError reports a violation of the §6.5 process-grid
// constraints.
type DecompositionError struct{ msg string }

func (e *DecompositionError) Error() string { return e.msg }

// NewDecompositionError builds a DecompositionError.
func NewDecompositionError(format string, args ...interface{}) *DecompositionError {
	return &DecompositionError{msg: io.Sf("DecompositionError: "+format, args...)}
}

// RuntimeError reports an I/O failure during read/write.
type RuntimeError struct{ msg string }

func (e *RuntimeError) Error() string { return e.msg }

// NewRuntimeError builds a RuntimeError; exported because hio (a
// different package) raises it on read/write failure.
func NewRuntimeError(format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{msg: io.Sf("RuntimeError: "+format, args...)}
}
