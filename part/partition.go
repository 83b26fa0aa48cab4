// Copyright 2026 The Structsf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package part implements the load partitioner: it computes, for each MPI
// rank, the multiset of displacement coordinates it must process so the
// total work (which is highly non-uniform across displacements) is
// balanced across ranks.
package part

import "github.com/cpmech/gosl/chk"

// RankCoord maps a flat rank id to its (rx,ry) coordinate on the p_x × p_y
// process grid, with ry = rank mod py, rx = rank / py.
func RankCoord(rank, py int) (rx, ry int) {
	ry = rank % py
	rx = rank / py
	return
}

// Rank maps a (rx,ry) process-grid coordinate back to a flat rank id.
func Rank(rx, ry, py int) int {
	return rx*py + ry
}

// AxisList builds the 1D index list a single rank coordinate c is
// responsible for along one axis, given the axis half-size half and the
// number of processes p along that axis (spec.md §4.1).
//
// For even list positions i=0,2,4,...: entry = c + i*p.
// For the following odd position: entry = half-1-previous, unless p==half
// (every rank owns exactly one index and has no complement).
func AxisList(c, half, p int) []int {
	if p <= 0 || half <= 0 {
		chk.Panic("part: AxisList requires half>0 and p>0, got half=%d p=%d", half, p)
	}
	n := half / p
	out := make([]int, 0, n)
	for i := 0; i < n; i += 2 {
		near := c + i*p
		out = append(out, near)
		if i+1 < n {
			if p == half {
				continue
			}
			out = append(out, half-1-near)
		}
	}
	return out
}

// BuildLocal returns the Cartesian product of the x-list (for rank
// coordinate rx, process count px, axis half-size halfX) and the y-list
// (for ry, py, halfY), stored row-major: for each x-list entry, every
// y-list entry follows in order. This is one rank's full outer-axis
// displacement list; the caller still loops the undistributed inner axis
// (spec.md §4.1 "inner z-loop").
func BuildLocal(px, py, rx, ry, halfX, halfY int) [][2]int {
	xs := AxisList(rx, halfX, px)
	ys := AxisList(ry, halfY, py)
	out := make([][2]int, 0, len(xs)*len(ys))
	for _, x := range xs {
		for _, y := range ys {
			out = append(out, [2]int{x, y})
		}
	}
	return out
}
