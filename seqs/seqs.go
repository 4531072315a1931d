//
// Tencent is pleased to support the open source community by making trpc-evalstats-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-evalstats-go is licensed under the Apache License Version 2.0.
//
//

// Package seqs realizes finite sequences into containers or running
// statistics. The adapters exist for call sites that produce results
// lazily (classifier output streams, generator-style pipelines) but
// want an eagerly evaluated value at the boundary.
package seqs

import (
	"iter"
	"slices"
)

// Number constrains the element types Mean accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Slice realizes seq into a slice in iteration order.
func Slice[T any](seq iter.Seq[T]) []T {
	return slices.Collect(seq)
}

// Reversed realizes seq into a slice and reverses it in place.
func Reversed[T any](seq iter.Seq[T]) []T {
	out := slices.Collect(seq)
	slices.Reverse(out)
	return out
}

// Set realizes seq into a membership set, dropping duplicates.
func Set[T comparable](seq iter.Seq[T]) map[T]struct{} {
	out := make(map[T]struct{})
	for v := range seq {
		out[v] = struct{}{}
	}
	return out
}

// Mean returns the arithmetic mean of seq, computed with the running
// recurrence avg += (v - avg) / i so no large intermediate sum is
// accumulated. An empty sequence yields zero.
func Mean[T Number](seq iter.Seq[T]) float64 {
	var avg float64
	i := 0
	for v := range seq {
		i++
		avg += (float64(v) - avg) / float64(i)
	}
	return avg
}
