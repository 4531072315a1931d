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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfusionUpdate(t *testing.T) {
	cm := NewConfusion[string]()
	cm.Update("A", "A")
	cm.Update("A", "B")

	assert.Equal(t, 1, cm.Count("A", "A"))
	assert.Equal(t, 1, cm.Count("A", "B"))
	assert.Equal(t, 0, cm.Count("B", "A"))
	assert.Equal(t, 1, cm.Correct())
	assert.Equal(t, 1, cm.Incorrect())

	acc, err := cm.Accuracy()
	require.NoError(t, err)
	assert.Equal(t, 0.5, acc)
}

func TestConfusionZeroValue(t *testing.T) {
	var cm Confusion[int]
	assert.Equal(t, 0, cm.Count(1, 2))
	cm.Update(1, 2)
	assert.Equal(t, 1, cm.Count(1, 2))
}

func TestConfusionUpdateWeight(t *testing.T) {
	cm := NewConfusion[string]()
	cm.UpdateWeight("A", "B", 5)

	// Weight moves the stored cell only; the tallies move by one.
	assert.Equal(t, 5, cm.Count("A", "B"))
	assert.Equal(t, 0, cm.Correct())
	assert.Equal(t, 1, cm.Incorrect())
	assert.Equal(t, 1, cm.Len())
}

func TestConfusionBatchUpdateTruncatesAtShorter(t *testing.T) {
	cm := NewConfusion[string]()
	cm.BatchUpdate([]string{"A", "B", "C"}, []string{"A", "C"})
	assert.Equal(t, 2, cm.Len())
	assert.Equal(t, 1, cm.Count("A", "A"))
	assert.Equal(t, 1, cm.Count("B", "C"))
}

func TestConfusionEmptySample(t *testing.T) {
	cm := NewConfusion[string]()

	_, err := cm.Accuracy()
	assert.ErrorIs(t, err, ErrNoObservations)
	_, err = cm.Kappa()
	assert.ErrorIs(t, err, ErrNoObservations)

	lower, upper := cm.ConfidenceInterval()
	assert.Equal(t, 0.0, lower)
	assert.Equal(t, 1.0, upper)
}

func TestConfusionKappaPerfectAgreement(t *testing.T) {
	cm := NewConfusion[string]()
	// Uneven label distribution, but truth always equals guess.
	for i := 0; i < 7; i++ {
		cm.Update("A", "A")
	}
	for i := 0; i < 2; i++ {
		cm.Update("B", "B")
	}
	cm.Update("C", "C")

	kappa, err := cm.Kappa()
	require.NoError(t, err)
	assert.Equal(t, 1.0, kappa)
}

func TestConfusionKappaChanceAgreement(t *testing.T) {
	cm := NewConfusion[string]()
	// Two balanced labels with guesses split evenly: accuracy .5,
	// chance agreement .5, kappa 0.
	cm.Update("A", "A")
	cm.Update("A", "B")
	cm.Update("B", "B")
	cm.Update("B", "A")

	kappa, err := cm.Kappa()
	require.NoError(t, err)
	assert.InDelta(t, 0.0, kappa, 1e-12)
}

func TestConfusionMerge(t *testing.T) {
	left := NewConfusion[string]()
	left.Update("A", "A")
	left.Update("A", "B")

	right := NewConfusion[string]()
	right.Update("A", "B")
	right.Update("C", "C")

	merged, err := left.Merge(right)
	require.NoError(t, err)
	sum := merged.(*Confusion[string])
	assert.Equal(t, 1, sum.Count("A", "A"))
	assert.Equal(t, 2, sum.Count("A", "B"))
	assert.Equal(t, 1, sum.Count("C", "C"))
	assert.Equal(t, 2, sum.Correct())
	assert.Equal(t, 2, sum.Incorrect())

	// The result must not alias either operand's storage.
	sum.Update("A", "B")
	assert.Equal(t, 1, left.Count("A", "B"))
	assert.Equal(t, 1, right.Count("A", "B"))
}

func TestConfusionMergeCommutativeAndAssociative(t *testing.T) {
	build := func(pairs [][2]string) *Confusion[string] {
		cm := NewConfusion[string]()
		for _, p := range pairs {
			cm.Update(p[0], p[1])
		}
		return cm
	}
	a := build([][2]string{{"A", "A"}, {"A", "B"}})
	b := build([][2]string{{"B", "B"}, {"A", "A"}})
	c := build([][2]string{{"C", "A"}, {"C", "C"}})

	equalCells := func(t *testing.T, x, y *Confusion[string]) {
		t.Helper()
		labels := append(x.Labels(), y.Labels()...)
		for _, truth := range labels {
			for _, guess := range labels {
				assert.Equal(t, x.Count(truth, guess), y.Count(truth, guess))
			}
		}
		assert.Equal(t, x.Correct(), y.Correct())
		assert.Equal(t, x.Incorrect(), y.Incorrect())
	}

	ab, err := a.Merge(b)
	require.NoError(t, err)
	ba, err := b.Merge(a)
	require.NoError(t, err)
	equalCells(t, ab.(*Confusion[string]), ba.(*Confusion[string]))

	abc1, err := ab.Merge(c)
	require.NoError(t, err)
	bc, err := b.Merge(c)
	require.NoError(t, err)
	abc2, err := a.Merge(bc)
	require.NoError(t, err)
	equalCells(t, abc1.(*Confusion[string]), abc2.(*Confusion[string]))
}

func TestConfusionMergeKindMismatch(t *testing.T) {
	cm := NewConfusion[string]()
	_, err := cm.Merge(NewBinary())
	assert.ErrorIs(t, err, ErrKindMismatch)

	// A Confusion over a different label type is a different kind too.
	_, err = cm.Merge(NewConfusion[int]())
	assert.ErrorIs(t, err, ErrKindMismatch)
}

func TestConfusionRender(t *testing.T) {
	cm := NewConfusion[string]()
	cm.Update("A", "A")
	cm.Update("A", "B")
	cm.Update("B", "B")

	rendered := cm.Render()
	assert.Contains(t, rendered, "Confusion matrix:")
	assert.Contains(t, rendered, "A:")
	assert.Contains(t, rendered, "\tB: 1")

	// Truth labels appear in first-occurrence order.
	labels := cm.Labels()
	assert.Equal(t, []string{"A", "B"}, labels)
}
