// Copyright 2026 The Structsf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package part

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestPartition01(tst *testing.T) {

	chk.PrintTitle("Partition01: axis list pairing")

	// half=8, p=2: n=4, pairs (near, H-1-near) at (i,i+1)
	xs := AxisList(0, 8, 2)
	chk.Ints(tst, "c=0", xs, []int{0, 7, 4, 3})
	ys := AxisList(1, 8, 2)
	chk.Ints(tst, "c=1", ys, []int{1, 6, 5, 2})
}

func TestPartition02(tst *testing.T) {

	chk.PrintTitle("Partition02: p==half edge case")

	// half=4, p=4: n=1, only even entry per rank
	for c := 0; c < 4; c++ {
		xs := AxisList(c, 4, 4)
		chk.Ints(tst, "single-entry list", xs, []int{c})
	}
}

// exhaustive verifies that the union of all ranks' local displacement lists
// equals the full half-domain exactly once each (spec.md §8 scenario 6).
func exhaustive(tst *testing.T, nx, ny, px, ptotal int) {
	py := ptotal / px
	halfX, halfY := nx/2, ny/2

	seen := make(map[[2]int]int)
	for rank := 0; rank < ptotal; rank++ {
		rx, ry := RankCoord(rank, py)
		local := BuildLocal(px, py, rx, ry, halfX, halfY)
		for _, xy := range local {
			seen[xy]++
		}
	}

	chk.IntAssert(len(seen), halfX*halfY)
	for xy, count := range seen {
		if count != 1 {
			tst.Fatalf("displacement %v covered %d times, want 1", xy, count)
		}
	}
}

func TestPartition03Exhaustive(tst *testing.T) {

	chk.PrintTitle("Partition03: exhaustiveness and disjointness")

	cases := []struct{ nx, ny, px, p int }{
		{8, 8, 2, 4},
		{32, 16, 4, 8},
		{64, 64, 8, 16},
	}
	for _, c := range cases {
		exhaustive(tst, c.nx, c.ny, c.px, c.p)
	}
}

func TestPartition04RankRoundTrip(tst *testing.T) {

	chk.PrintTitle("Partition04: Rank is the exact inverse of RankCoord")

	cases := []struct{ p, py int }{
		{8, 2}, {8, 4}, {16, 4}, {32, 8},
	}
	for _, c := range cases {
		for rank := 0; rank < c.p; rank++ {
			rx, ry := RankCoord(rank, c.py)
			if got := Rank(rx, ry, c.py); got != rank {
				tst.Fatalf("Rank(RankCoord(%d, py=%d))=%d, want %d", rank, c.py, got, rank)
			}
		}
	}
}
