//
// Tencent is pleased to support the open source community by making trpc-evalstats-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-evalstats-go is licensed under the Apache License Version 2.0.
//
//

package confusion

import "fmt"

// Accuracy counts correct and incorrect outcomes of a classification
// task. Labels are compared by equality and must be comparable values.
// The zero value is ready to use.
type Accuracy struct {
	correct   int
	incorrect int
}

// NewAccuracy creates a counter seeded with the given counts.
func NewAccuracy(correct, incorrect int) *Accuracy {
	return &Accuracy{correct: correct, incorrect: incorrect}
}

// Update records one outcome: correct when truth equals guess,
// incorrect otherwise.
func (a *Accuracy) Update(truth, guess any) {
	if truth == guess {
		a.correct++
	} else {
		a.incorrect++
	}
}

// BatchUpdate records one outcome per positional (truth, guess) pair.
// Pairing stops at the shorter slice; see batchUpdate.
func (a *Accuracy) BatchUpdate(truths, guesses []any) {
	batchUpdate(a.Update, truths, guesses)
}

// Correct returns the number of correct outcomes.
func (a *Accuracy) Correct() int { return a.correct }

// Incorrect returns the number of incorrect outcomes.
func (a *Accuracy) Incorrect() int { return a.incorrect }

// Len reports the total number of recorded outcomes.
func (a *Accuracy) Len() int { return a.correct + a.incorrect }

// Accuracy returns the fraction of correct outcomes. It returns
// ErrNoObservations when nothing was recorded; this kind raises on the
// empty sample where Binary reports NaN.
func (a *Accuracy) Accuracy() (float64, error) {
	n := a.Len()
	if n == 0 {
		return 0, ErrNoObservations
	}
	return float64(a.correct) / float64(n), nil
}

// ConfidenceInterval returns the 95% Wilson interval around the sample
// accuracy, or (0, 1) when nothing was recorded.
func (a *Accuracy) ConfidenceInterval() (lower, upper float64) {
	if a.Len() == 0 {
		return 0, 1
	}
	acc, _ := a.Accuracy()
	return wilson(acc, a.Len())
}

// Merge combines two counters into a fresh one with element-wise
// summed counts. It returns ErrKindMismatch when other is not an
// *Accuracy.
func (a *Accuracy) Merge(other Accumulator) (Accumulator, error) {
	o, ok := other.(*Accuracy)
	if !ok {
		return nil, fmt.Errorf("%w: cannot merge %T into %T", ErrKindMismatch, other, a)
	}
	return &Accuracy{
		correct:   a.correct + o.correct,
		incorrect: a.incorrect + o.incorrect,
	}, nil
}

// String formats the sample accuracy to four decimal places, or "NaN"
// when nothing was recorded.
func (a *Accuracy) String() string {
	acc, err := a.Accuracy()
	if err != nil {
		return "NaN"
	}
	return fmt.Sprintf("%.4f", acc)
}
