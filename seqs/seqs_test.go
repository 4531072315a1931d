//
// Tencent is pleased to support the open source community by making trpc-evalstats-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-evalstats-go is licensed under the Apache License Version 2.0.
//
//

package seqs

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sequence[T any](values ...T) iter.Seq[T] {
	return slices.Values(values)
}

func TestSlice(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, Slice(sequence(1, 2, 3)))
	assert.Empty(t, Slice(sequence[int]()))
}

func TestReversed(t *testing.T) {
	assert.Equal(t, []string{"c", "b", "a"}, Reversed(sequence("a", "b", "c")))
	assert.Empty(t, Reversed(sequence[string]()))
}

func TestSet(t *testing.T) {
	got := Set(sequence("a", "b", "a", "c", "b"))
	assert.Equal(t, map[string]struct{}{
		"a": {}, "b": {}, "c": {},
	}, got)
}

func TestMean(t *testing.T) {
	assert.InDelta(t, 2.5, Mean(sequence(1, 2, 3, 4)), 1e-12)
	assert.InDelta(t, 0.15, Mean(sequence(0.1, 0.2)), 1e-12)

	// A long constant run must not drift.
	constant := func(yield func(int) bool) {
		for i := 0; i < 100000; i++ {
			if !yield(7) {
				return
			}
		}
	}
	assert.InDelta(t, 7.0, Mean(iter.Seq[int](constant)), 1e-9)
}

func TestMeanEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Mean(sequence[float64]()))
}
