//
// Tencent is pleased to support the open source community by making trpc-evalstats-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-evalstats-go is licensed under the Apache License Version 2.0.
//
//

package confusion

import (
	"fmt"
	"math"
	"strings"
)

// Confusion is a truth-by-guess co-occurrence table over an arbitrary
// comparable label type, alongside correct/incorrect tallies. Rows are
// created on first use; labels keep their first-occurrence order for
// rendering. The zero value is ready to use.
//
// Like Accuracy and unlike Binary, this kind reports the empty sample
// through ErrNoObservations rather than NaN.
type Confusion[L comparable] struct {
	cells      map[L]map[L]int
	truthOrder []L
	guessOrder map[L][]L
	correct    int
	incorrect  int
}

// NewConfusion creates an empty multi-class confusion matrix.
func NewConfusion[L comparable]() *Confusion[L] { return &Confusion[L]{} }

// row returns the cell row for truth, creating it on first use.
func (c *Confusion[L]) row(truth L) map[L]int {
	if c.cells == nil {
		c.cells = make(map[L]map[L]int)
		c.guessOrder = make(map[L][]L)
	}
	r, ok := c.cells[truth]
	if !ok {
		r = make(map[L]int)
		c.cells[truth] = r
		c.truthOrder = append(c.truthOrder, truth)
	}
	return r
}

// addCell moves the (truth, guess) cell by weight, tracking label
// order on first occurrence.
func (c *Confusion[L]) addCell(truth, guess L, weight int) {
	r := c.row(truth)
	if _, ok := r[guess]; !ok {
		c.guessOrder[truth] = append(c.guessOrder[truth], guess)
	}
	r[guess] += weight
}

// Update records one observation with weight 1.
func (c *Confusion[L]) Update(truth, guess L) {
	c.UpdateWeight(truth, guess, 1)
}

// UpdateWeight records one observation, moving the stored cell count
// by weight. The correct/incorrect tallies always move by exactly one:
// weight affects the cell count only, not the accuracy bookkeeping.
func (c *Confusion[L]) UpdateWeight(truth, guess L, weight int) {
	c.addCell(truth, guess, weight)
	if truth == guess {
		c.correct++
	} else {
		c.incorrect++
	}
}

// BatchUpdate records one observation per positional (truth, guess)
// pair with weight 1, stopping at the shorter slice.
func (c *Confusion[L]) BatchUpdate(truths, guesses []L) {
	batchUpdate(c.Update, truths, guesses)
}

// Count returns the stored cell count for (truth, guess), zero when
// the pair was never observed.
func (c *Confusion[L]) Count(truth, guess L) int {
	return c.cells[truth][guess]
}

// Labels returns the observed truth labels in first-occurrence order.
func (c *Confusion[L]) Labels() []L {
	out := make([]L, len(c.truthOrder))
	copy(out, c.truthOrder)
	return out
}

// Correct returns the number of observations where truth equaled guess.
func (c *Confusion[L]) Correct() int { return c.correct }

// Incorrect returns the number of observations where truth differed
// from guess.
func (c *Confusion[L]) Incorrect() int { return c.incorrect }

// Len reports the total number of recorded observations.
func (c *Confusion[L]) Len() int { return c.correct + c.incorrect }

// Accuracy returns the fraction of observations where truth equaled
// guess. It returns ErrNoObservations when nothing was recorded.
func (c *Confusion[L]) Accuracy() (float64, error) {
	n := c.Len()
	if n == 0 {
		return 0, ErrNoObservations
	}
	return float64(c.correct) / float64(n), nil
}

// Kappa returns the multi-class chance-corrected agreement statistic.
// Chance agreement is the sum over truth labels of the squared row
// mass. It returns ErrNoObservations when nothing was recorded.
func (c *Confusion[L]) Kappa() (float64, error) {
	acc, err := c.Accuracy()
	if err != nil {
		return 0, err
	}
	var total float64
	rowTotals := make([]float64, 0, len(c.truthOrder))
	for _, truth := range c.truthOrder {
		var rowTotal float64
		for _, count := range c.cells[truth] {
			rowTotal += float64(count)
		}
		rowTotals = append(rowTotals, rowTotal)
		total += rowTotal
	}
	var pe float64
	for _, rowTotal := range rowTotals {
		pi := rowTotal / total
		pe += pi * pi
	}
	return (acc - pe) / (1 - pe), nil
}

// ConfidenceInterval returns the 95% Wilson interval around the sample
// accuracy, or (0, 1) when nothing was recorded.
func (c *Confusion[L]) ConfidenceInterval() (lower, upper float64) {
	if c.Len() == 0 {
		return 0, 1
	}
	acc, _ := c.Accuracy()
	return wilson(acc, c.Len())
}

// Merge combines two matrices into a fresh one whose cell table is the
// union of both with overlapping cells summed. Neither operand's
// storage is aliased by the result. It returns ErrKindMismatch when
// other is not a *Confusion over the same label type.
func (c *Confusion[L]) Merge(other Accumulator) (Accumulator, error) {
	o, ok := other.(*Confusion[L])
	if !ok {
		return nil, fmt.Errorf("%w: cannot merge %T into %T", ErrKindMismatch, other, c)
	}
	merged := NewConfusion[L]()
	for _, operand := range []*Confusion[L]{c, o} {
		for _, truth := range operand.truthOrder {
			for _, guess := range operand.guessOrder[truth] {
				merged.addCell(truth, guess, operand.cells[truth][guess])
			}
		}
	}
	merged.correct = c.correct + o.correct
	merged.incorrect = c.incorrect + o.incorrect
	return merged, nil
}

// Render lists each truth label followed by its guess counts, both in
// first-occurrence order.
func (c *Confusion[L]) Render() string {
	var sb strings.Builder
	sb.WriteString("Confusion matrix:")
	for _, truth := range c.truthOrder {
		fmt.Fprintf(&sb, "\n%v:", truth)
		for _, guess := range c.guessOrder[truth] {
			fmt.Fprintf(&sb, "\n\t%v: %s", guess, grouped.Sprintf("%d", c.cells[truth][guess]))
		}
	}
	return sb.String()
}

// String formats the sample accuracy to four decimal places, or "NaN"
// when nothing was recorded.
func (c *Confusion[L]) String() string {
	acc, err := c.Accuracy()
	if err != nil {
		return fmt.Sprintf("%.4f", math.NaN())
	}
	return fmt.Sprintf("%.4f", acc)
}
