// Copyright 2026 The Structsf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestScenario1VectorLinear3D(tst *testing.T) {
	chk.PrintTitle("Scenario1: 3D vector linear field round-trip")
	if err := Scenario1VectorLinear3D(16, 1, 3); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
}

func TestScenario2VectorLinear2D(tst *testing.T) {
	chk.PrintTitle("Scenario2: 2D vector linear field round-trip")
	if err := Scenario2VectorLinear2D(16, 1, 3); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
}

func TestScenario3ScalarLinear3D(tst *testing.T) {
	chk.PrintTitle("Scenario3: 3D scalar linear field round-trip")
	if err := Scenario3ScalarLinear3D(16, 1, 3); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
}

func TestScenario4ScalarLinear2D(tst *testing.T) {
	chk.PrintTitle("Scenario4: 2D scalar linear field round-trip")
	if err := Scenario4ScalarLinear2D(16, 1, 3); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
}

func TestScenario5OriginCleanup(tst *testing.T) {
	chk.PrintTitle("Scenario5: origin slot reads back as zero")
	if err := Scenario5OriginCleanup(16, 1, 3); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
}
