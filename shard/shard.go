//
// Tencent is pleased to support the open source community by making trpc-evalstats-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-evalstats-go is licensed under the Apache License Version 2.0.
//
//

// Package shard runs an evaluation stream across a worker pool.
// Accumulators carry no internal synchronization, so each worker owns
// a private shard and the shards are merged once the pool drains. The
// merge operation makes this safe: merged counts equal the counts a
// single sequential accumulator would have produced.
package shard

import (
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"trpc.group/trpc-go/trpc-evalstats-go/confusion"
)

// Pair is one (truth, guess) observation.
type Pair[L comparable] struct {
	Truth L
	Guess L
}

// Evaluate partitions pairs across workers private multi-class
// accumulators and merges the shards into one matrix.
func Evaluate[L comparable](workers int, pairs []Pair[L]) (*confusion.Confusion[L], error) {
	shards, err := run(workers, pairs, func() *confusion.Confusion[L] {
		return confusion.NewConfusion[L]()
	}, func(cm *confusion.Confusion[L], p Pair[L]) {
		cm.Update(p.Truth, p.Guess)
	})
	if err != nil {
		return nil, err
	}
	merged := confusion.NewConfusion[L]()
	for _, cm := range shards {
		out, err := merged.Merge(cm)
		if err != nil {
			return nil, err
		}
		merged = out.(*confusion.Confusion[L])
	}
	return merged, nil
}

// Score partitions pairs across workers private scalar counters and
// merges the shards into one counter.
func Score[L comparable](workers int, pairs []Pair[L]) (*confusion.Accuracy, error) {
	shards, err := run(workers, pairs, func() *confusion.Accuracy {
		return &confusion.Accuracy{}
	}, func(counter *confusion.Accuracy, p Pair[L]) {
		counter.Update(p.Truth, p.Guess)
	})
	if err != nil {
		return nil, err
	}
	merged := &confusion.Accuracy{}
	for _, counter := range shards {
		out, err := merged.Merge(counter)
		if err != nil {
			return nil, err
		}
		merged = out.(*confusion.Accuracy)
	}
	return merged, nil
}

// run splits pairs into contiguous chunks, feeds each chunk to its own
// accumulator on the pool, and returns the populated shards.
func run[L comparable, A any](workers int, pairs []Pair[L],
	newShard func() A, update func(A, Pair[L])) ([]A, error) {
	if workers <= 0 {
		return nil, errors.New("shard: workers must be positive")
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	chunk := (len(pairs) + workers - 1) / workers
	shards := make([]A, 0, workers)
	var wg sync.WaitGroup
	for lo := 0; lo < len(pairs); lo += chunk {
		hi := min(lo+chunk, len(pairs))
		part := pairs[lo:hi]
		shard := newShard()
		shards = append(shards, shard)
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			for _, p := range part {
				update(shard, p)
			}
		}); err != nil {
			wg.Done()
			wg.Wait()
			return nil, fmt.Errorf("submit shard: %w", err)
		}
	}
	wg.Wait()
	return shards, nil
}
