//
// Tencent is pleased to support the open source community by making trpc-evalstats-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-evalstats-go is licensed under the Apache License Version 2.0.
//
//

// Package confusion accumulates classification outcomes and derives
// standard summary statistics from them.
//
// Three accumulator kinds are provided: Accuracy (a scalar
// correct/incorrect counter), Binary (a 2x2 confusion matrix around a
// designated hit label) and Confusion (a generic truth-by-guess table
// for arbitrary comparable labels). All three implement Accumulator,
// which is the closed set of kinds Merge accepts.
//
// Accumulators are plain in-memory values with no internal
// synchronization. To feed one from several goroutines, give each
// worker its own accumulator and Merge the shards at the end; the
// shard package implements that pattern.
package confusion

import (
	"errors"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Errors reported by accumulator operations. All of them surface
// contract violations or well-defined degenerate inputs; none is
// transient or retryable.
var (
	// ErrNoObservations is returned by Accuracy and Confusion when a
	// statistic is requested before any observation was recorded.
	// Binary never returns it: that kind maps empty-sample statistics
	// to NaN or Inf instead.
	ErrNoObservations = errors.New("confusion: no observations recorded")
	// ErrKindMismatch is returned by Merge when the operands are
	// different accumulator kinds.
	ErrKindMismatch = errors.New("confusion: accumulator kinds differ")
	// ErrHitLabelMismatch is returned by Binary.Merge when the operands
	// disagree on the hit label.
	ErrHitLabelMismatch = errors.New("confusion: hit labels differ")
	// ErrInvalidRatio is returned by FScore and SScore for a
	// non-positive ratio.
	ErrInvalidRatio = errors.New("confusion: ratio must be positive")
)

// Accumulator is the contract shared by every accumulator kind in this
// package. Exactly three types implement it: *Accuracy, *Binary and
// *Confusion[L].
type Accumulator interface {
	// Len reports the total number of recorded observations.
	Len() int
	// ConfidenceInterval returns the 95% Wilson score interval around
	// the sample accuracy, or (0, 1) when nothing was recorded.
	ConfidenceInterval() (lower, upper float64)
	// Merge combines the receiver with another accumulator of the same
	// kind into a fresh one, leaving both operands untouched. It
	// returns ErrKindMismatch when the kinds differ.
	Merge(other Accumulator) (Accumulator, error)
}

var (
	_ Accumulator = (*Accuracy)(nil)
	_ Accumulator = (*Binary)(nil)
	_ Accumulator = (*Confusion[string])(nil)
)

// wilsonZ is -qnorm(.05 / 2), the two-sided 95% normal quantile.
const wilsonZ = 1.9599639845400538273879

// wilson computes the Wilson score interval around the sample
// proportion phat over n observations. The lower bound is particularly
// useful for ranking. Returns (0, 1) when n is zero.
func wilson(phat float64, n int) (lower, upper float64) {
	if n == 0 {
		return 0, 1
	}
	fn := float64(n)
	zsq := wilsonZ * wilsonZ
	a1 := 1 / (1 + zsq/fn)
	a2 := phat + zsq/(2*fn)
	a3 := wilsonZ * math.Sqrt(phat*(1-phat)/fn+zsq/(4*fn*fn))
	return a1 * (a2 - a3), a1 * (a2 + a3)
}

// batchUpdate pairs truths and guesses positionally and feeds each pair
// to update. Pairing stops at the shorter slice, mirroring zip
// semantics; trailing elements of the longer slice are ignored.
func batchUpdate[L any](update func(truth, guess L), truths, guesses []L) {
	n := min(len(truths), len(guesses))
	for i := 0; i < n; i++ {
		update(truths[i], guesses[i])
	}
}

// grouped renders counts with thousands separators.
var grouped = message.NewPrinter(language.English)
