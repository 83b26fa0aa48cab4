// Copyright 2026 The Structsf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sfun

import "github.com/cpmech/gosl/mpi"

// Aggregate folds every rank's local contribution tensor into the global
// sum, in place, via a single mpi.AllReduceSum call (spec.md §9's
// batching note: "pack ... into one large buffer per rank and perform a
// single gatherv at end of compute. The observable output is
// unchanged."). Because the partitioner assigns each displacement to
// exactly one rank (spec.md §4.1's disjointness guarantee), every rank is
// zero everywhere it did not compute, so a sum reduction is equivalent to
// the per-(displacement,order) gather spec.md §4.4 describes.
//
// After the call, t holds the complete tensor on every rank (that is
// AllReduceSum's semantics), but only rank 0 persists or writes it
// afterward — other ranks' copies are discarded, honoring spec.md §3's
// "owned by rank 0 only" invariant for the durable result.
func Aggregate(t *Tensor) {
	wb := make([]float64, len(t.Data))
	mpi.AllReduceSum(t.Data, wb)
}

// AggregateAll runs Aggregate over every tensor in order, matching one
// AllReduceSum call per output tensor rather than per displacement.
func AggregateAll(tensors ...*Tensor) {
	for _, t := range tensors {
		if t != nil {
			Aggregate(t)
		}
	}
}
