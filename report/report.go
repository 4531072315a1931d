//
// Tencent is pleased to support the open source community by making trpc-evalstats-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-evalstats-go is licensed under the Apache License Version 2.0.
//
//

// Package report turns confusion accumulators into named metric
// snapshots and defines the manager interface for storing them. The
// accumulators themselves stay free of any I/O; persistence lives
// behind Manager implementations (inmemory, local).
package report

import (
	"maps"
	"math"
	"time"

	"github.com/google/uuid"

	"trpc.group/trpc-go/trpc-evalstats-go/confusion"
)

// Metric names used in Report.Metrics.
const (
	MetricAccuracy            = "accuracy"
	MetricPrecision           = "precision"
	MetricRecall              = "recall"
	MetricSpecificity         = "specificity"
	MetricF1                  = "f1"
	MetricKappa               = "kappa"
	MetricMatthewsCorrelation = "matthews_correlation"
	MetricIntervalLower       = "confidence_interval_lower"
	MetricIntervalUpper       = "confidence_interval_upper"
)

// Report is an immutable snapshot of an accumulator's derived
// statistics at a point in time.
type Report struct {
	// ID uniquely identifies this snapshot.
	ID string `json:"id"`
	// Name identifies the evaluation the snapshot belongs to.
	Name string `json:"name"`
	// CreatedAt is the snapshot creation time.
	CreatedAt time.Time `json:"created_at"`
	// Observations is the number of recorded (truth, guess) pairs.
	Observations int `json:"observations"`
	// Metrics maps metric names to finite values. Metrics whose value
	// is NaN or infinite are omitted: JSON has no encoding for them.
	Metrics map[string]float64 `json:"metrics"`
	// Summary is an optional preformatted text block.
	Summary string `json:"summary,omitempty"`
}

func newReport(name string, observations int) *Report {
	return &Report{
		ID:           uuid.NewString(),
		Name:         name,
		CreatedAt:    time.Now().UTC(),
		Observations: observations,
		Metrics:      make(map[string]float64),
	}
}

// put stores a metric value, dropping non-finite ones.
func (r *Report) put(name string, value float64) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return
	}
	r.Metrics[name] = value
}

// Clone returns a deep copy of the report.
func (r *Report) Clone() *Report {
	if r == nil {
		return nil
	}
	cloned := *r
	cloned.Metrics = maps.Clone(r.Metrics)
	return &cloned
}

// FromBinary builds a snapshot of a binary confusion matrix.
func FromBinary(name string, cm *confusion.Binary) *Report {
	r := newReport(name, cm.Len())
	r.put(MetricAccuracy, cm.Accuracy())
	r.put(MetricPrecision, cm.Precision())
	r.put(MetricRecall, cm.Recall())
	r.put(MetricSpecificity, cm.Specificity())
	r.put(MetricF1, cm.F1())
	r.put(MetricKappa, cm.Kappa())
	r.put(MetricMatthewsCorrelation, cm.MatthewsCorrelation())
	lower, upper := cm.ConfidenceInterval()
	r.put(MetricIntervalLower, lower)
	r.put(MetricIntervalUpper, upper)
	r.Summary = cm.Summary()
	return r
}

// FromAccuracy builds a snapshot of a scalar accuracy counter.
func FromAccuracy(name string, counter *confusion.Accuracy) *Report {
	r := newReport(name, counter.Len())
	if acc, err := counter.Accuracy(); err == nil {
		r.put(MetricAccuracy, acc)
	}
	lower, upper := counter.ConfidenceInterval()
	r.put(MetricIntervalLower, lower)
	r.put(MetricIntervalUpper, upper)
	return r
}

// FromConfusion builds a snapshot of a multi-class confusion matrix.
func FromConfusion[L comparable](name string, cm *confusion.Confusion[L]) *Report {
	r := newReport(name, cm.Len())
	if acc, err := cm.Accuracy(); err == nil {
		r.put(MetricAccuracy, acc)
	}
	if kappa, err := cm.Kappa(); err == nil {
		r.put(MetricKappa, kappa)
	}
	lower, upper := cm.ConfidenceInterval()
	r.put(MetricIntervalLower, lower)
	r.put(MetricIntervalUpper, upper)
	r.Summary = cm.Render()
	return r
}
