// Copyright 2026 The Structsf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hio

import (
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io/h5"

	"github.com/sfturb/structsf/inp"
)

// chdirTemp points the working directory at a fresh temp dir for the
// duration of the test, since ReadFlat/WriteOrder hardcode "in/"/"out/"
// relative to the process cwd (spec.md §6.3/§6.4).
func chdirTemp(tst *testing.T) {
	old, err := os.Getwd()
	if err != nil {
		tst.Fatalf("cannot get cwd: %v", err)
	}
	dir := tst.TempDir()
	if err := os.Chdir(dir); err != nil {
		tst.Fatalf("cannot chdir to %s: %v", dir, err)
	}
	tst.Cleanup(func() { os.Chdir(old) })
}

func writeDataset(tst *testing.T, base string, dims []int, data []float64) {
	if err := os.MkdirAll("in", 0777); err != nil {
		tst.Fatalf("cannot create in/: %v", err)
	}
	f := h5.Create("in", base+".h5")
	defer f.Close()
	f.PutArray("/"+base, dims, data)
}

func TestReadFlatOK(tst *testing.T) {

	chk.PrintTitle("ReadFlatOK: rank and shape both match the configured grid")

	chdirTemp(tst)
	writeDataset(tst, "U.V1r", []int{4, 3, 2}, make([]float64, 24))

	data, err := ReadFlat("U.V1r", []int{4, 3, 2})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(len(data), 24)
}

func TestReadFlatWrongLength(tst *testing.T) {

	chk.PrintTitle("ReadFlatWrongLength: dataset has fewer values than the grid calls for")

	chdirTemp(tst)
	writeDataset(tst, "U.V1r", []int{4, 3, 1}, make([]float64, 12))

	_, err := ReadFlat("U.V1r", []int{4, 3, 2})
	if err == nil {
		tst.Fatal("expected a CompatibilityError, got nil")
	}
	if _, ok := err.(*inp.CompatibilityError); !ok {
		tst.Fatalf("expected *inp.CompatibilityError, got %T: %v", err, err)
	}
}

func TestReadFlatWrongShapeSameLength(tst *testing.T) {

	chk.PrintTitle("ReadFlatWrongShapeSameLength: permuted axes, identical element count")

	chdirTemp(tst)
	// the dataset is really (2,4,3) but the run is configured for (4,3,2):
	// both have 24 elements, so a length-only check would miss this.
	writeDataset(tst, "U.V1r", []int{2, 4, 3}, make([]float64, 24))

	_, err := ReadFlat("U.V1r", []int{4, 3, 2})
	if err == nil {
		tst.Fatal("expected a CompatibilityError, got nil")
	}
	if _, ok := err.(*inp.CompatibilityError); !ok {
		tst.Fatalf("expected *inp.CompatibilityError, got %T: %v", err, err)
	}
}

func TestReadFlatWrongRank(tst *testing.T) {

	chk.PrintTitle("ReadFlatWrongRank: 2D dataset fed into a 3D-configured run")

	chdirTemp(tst)
	writeDataset(tst, "T.Fr", []int{4, 3}, make([]float64, 12))

	_, err := ReadFlat("T.Fr", []int{4, 3, 2})
	if err == nil {
		tst.Fatal("expected a CompatibilityError, got nil")
	}
	if _, ok := err.(*inp.CompatibilityError); !ok {
		tst.Fatalf("expected *inp.CompatibilityError, got %T: %v", err, err)
	}
}

func TestReadFlatMissingFile(tst *testing.T) {

	chk.PrintTitle("ReadFlatMissingFile: no in/<base>.h5 present")

	chdirTemp(tst)

	_, err := ReadFlat("U.V1r", []int{4, 3, 2})
	if err == nil {
		tst.Fatal("expected a CompatibilityError, got nil")
	}
	if _, ok := err.(*inp.CompatibilityError); !ok {
		tst.Fatalf("expected *inp.CompatibilityError, got %T: %v", err, err)
	}
}

func TestWriteOrderRoundTrip(tst *testing.T) {

	chk.PrintTitle("WriteOrderRoundTrip: WriteOrder then ReadFlat recovers the same shape and data")

	chdirTemp(tst)
	spatial := []float64{1, 2, 3, 4, 5, 6}
	if err := WriteOrder("S_pll", 2, []int{3, 2}, spatial); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	// WriteOrder writes to out/, ReadFlat reads from in/: mirror the file
	// across so ReadFlat can validate it without widening either helper's
	// hardcoded directory.
	if err := os.MkdirAll("in", 0777); err != nil {
		tst.Fatalf("cannot create in/: %v", err)
	}
	if err := os.Rename("out/S_pll2.h5", "in/S_pll2.h5"); err != nil {
		tst.Fatalf("cannot stage written file for read-back: %v", err)
	}

	data, err := ReadFlat("S_pll2", []int{3, 2})
	if err != nil {
		tst.Fatalf("unexpected error reading back: %v", err)
	}
	chk.Array(tst, "round-tripped data", 1e-15, data, spatial)
}
