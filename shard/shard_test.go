//
// Tencent is pleased to support the open source community by making trpc-evalstats-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-evalstats-go is licensed under the Apache License Version 2.0.
//
//

package shard

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-evalstats-go/confusion"
)

// dataset builds a deterministic label stream with a known error rate.
func dataset(n int) []Pair[string] {
	labels := []string{"A", "B", "C"}
	pairs := make([]Pair[string], 0, n)
	for i := 0; i < n; i++ {
		truth := labels[i%len(labels)]
		guess := truth
		if i%5 == 0 {
			guess = labels[(i+1)%len(labels)]
		}
		pairs = append(pairs, Pair[string]{Truth: truth, Guess: guess})
	}
	return pairs
}

func TestEvaluateMatchesSequential(t *testing.T) {
	pairs := dataset(1000)

	sequential := confusion.NewConfusion[string]()
	for _, p := range pairs {
		sequential.Update(p.Truth, p.Guess)
	}

	for _, workers := range []int{1, 2, 4, 7} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			sharded, err := Evaluate(workers, pairs)
			require.NoError(t, err)

			assert.Equal(t, sequential.Len(), sharded.Len())
			assert.Equal(t, sequential.Correct(), sharded.Correct())
			assert.Equal(t, sequential.Incorrect(), sharded.Incorrect())
			for _, truth := range sequential.Labels() {
				for _, guess := range sequential.Labels() {
					assert.Equal(t,
						sequential.Count(truth, guess),
						sharded.Count(truth, guess),
						"cell (%s, %s)", truth, guess)
				}
			}
		})
	}
}

func TestEvaluateEmptyStream(t *testing.T) {
	cm, err := Evaluate[string](4, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, cm.Len())
}

func TestEvaluateInvalidWorkers(t *testing.T) {
	_, err := Evaluate(0, dataset(10))
	assert.Error(t, err)
	_, err = Score(-1, dataset(10))
	assert.Error(t, err)
}

func TestScoreMatchesSequential(t *testing.T) {
	pairs := dataset(999)

	sequential := &confusion.Accuracy{}
	for _, p := range pairs {
		sequential.Update(p.Truth, p.Guess)
	}

	sharded, err := Score(4, pairs)
	require.NoError(t, err)
	assert.Equal(t, sequential.Correct(), sharded.Correct())
	assert.Equal(t, sequential.Incorrect(), sharded.Incorrect())

	wantAcc, err := sequential.Accuracy()
	require.NoError(t, err)
	gotAcc, err := sharded.Accuracy()
	require.NoError(t, err)
	assert.InDelta(t, wantAcc, gotAcc, 1e-12)
}
