// Copyright 2026 The Structsf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

// Validate checks the process-grid constraints of spec.md §6.5 against the
// total rank count P actually available at run time (mpi.Size()).
// halfYZ is the half-size of the second distributed axis: Ny/2 in 3D mode,
// Nz/2 in 2D mode (spec.md §3: "in 2D case, y stands in for z").
func Validate(cfg *Config, p int) error {
	px := cfg.ProcessorsX
	if px > p {
		return NewDecompositionError("program.Processors_X (%d) must be <= total processes (%d)", px, p)
	}
	if p%px != 0 {
		return NewDecompositionError("total processes (%d) must be divisible by Processors_X (%d)", p, px)
	}
	py := p / px

	halfX := cfg.Nx / 2
	if halfX%px != 0 {
		return NewDecompositionError("Nx/2 (%d) is not divisible by Processors_X (%d)", halfX, px)
	}
	if q := halfX / px; !isPowerOfTwo(q) {
		return NewDecompositionError("(Nx/2)/Processors_X = %d is not a power of 2", q)
	}

	halfYZ := cfg.Nz / 2
	if !cfg.TwoD {
		halfYZ = cfg.Ny / 2
	}
	if halfYZ%py != 0 {
		return NewDecompositionError("half-size of the second distributed axis (%d) is not divisible by P/Processors_X (%d)", halfYZ, py)
	}
	if q := halfYZ / py; !isPowerOfTwo(q) {
		return NewDecompositionError("(second axis half-size)/(P/Processors_X) = %d is not a power of 2", q)
	}

	return nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
