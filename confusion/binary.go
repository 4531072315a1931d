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

// Binary is a 2x2 confusion matrix around a designated hit (positive
// class) label, with the usual summary statistics. The zero value is
// ready to use and carries the default hit label, boolean true.
//
// Unlike Accuracy and Confusion, Binary never returns an error for a
// degenerate sample: statistics over zero denominators come back as
// NaN (accuracy, kappa, Matthews correlation) or +Inf (the ratio
// metrics). Callers relying on one policy should not assume the other
// kinds behave the same way.
type Binary struct {
	hit            any
	tp, fp, fn, tn int
}

// NewBinary creates a matrix whose hit label is boolean true.
func NewBinary() *Binary { return &Binary{hit: true} }

// NewBinaryHit creates a matrix with an explicit hit label. The label
// tags which class counts as a hit; it is checked on Merge and shown
// by renderers, but Update itself takes booleans.
func NewBinaryHit(hit any) *Binary { return &Binary{hit: hit} }

// NewBinaryCounts creates a matrix with the default hit label, seeded
// with the given cell counts.
func NewBinaryCounts(tp, fp, fn, tn int) *Binary {
	return &Binary{hit: true, tp: tp, fp: fp, fn: fn, tn: tn}
}

// HitLabel returns the positive-class label, boolean true when unset.
func (b *Binary) HitLabel() any {
	if b.hit == nil {
		return true
	}
	return b.hit
}

// Update routes one observation into exactly one cell: hit truth with
// hit guess is a true positive, hit truth with miss guess a false
// negative, miss truth with hit guess a false positive, and miss truth
// with miss guess a true negative.
func (b *Binary) Update(truth, guess bool) {
	switch {
	case truth && guess:
		b.tp++
	case truth:
		b.fn++
	case guess:
		b.fp++
	default:
		b.tn++
	}
}

// BatchUpdate records one observation per positional (truth, guess)
// pair, stopping at the shorter slice.
func (b *Binary) BatchUpdate(truths, guesses []bool) {
	batchUpdate(b.Update, truths, guesses)
}

// TP returns the true positive count.
func (b *Binary) TP() int { return b.tp }

// FP returns the false positive count.
func (b *Binary) FP() int { return b.fp }

// FN returns the false negative count.
func (b *Binary) FN() int { return b.fn }

// TN returns the true negative count.
func (b *Binary) TN() int { return b.tn }

// Len reports the total number of recorded observations.
func (b *Binary) Len() int { return b.tp + b.fp + b.fn + b.tn }

// ratioOrInf divides num by denom, mapping a zero denominator to +Inf.
func ratioOrInf(num, denom int) float64 {
	if denom == 0 {
		return math.Inf(1)
	}
	return float64(num) / float64(denom)
}

// Accuracy returns (tp+tn)/len, or NaN when nothing was recorded.
func (b *Binary) Accuracy() float64 {
	n := b.Len()
	if n == 0 {
		return math.NaN()
	}
	return float64(b.tp+b.tn) / float64(n)
}

// Precision returns tp/(tp+fp), or +Inf when the denominator is zero.
func (b *Binary) Precision() float64 { return ratioOrInf(b.tp, b.tp+b.fp) }

// PositivePredictiveValue is another name for Precision.
func (b *Binary) PositivePredictiveValue() float64 { return b.Precision() }

// Recall returns tp/(tp+fn), or +Inf when the denominator is zero.
func (b *Binary) Recall() float64 { return ratioOrInf(b.tp, b.tp+b.fn) }

// Sensitivity is another name for Recall.
func (b *Binary) Sensitivity() float64 { return b.Recall() }

// TruePositiveRate is another name for Recall.
func (b *Binary) TruePositiveRate() float64 { return b.Recall() }

// Specificity returns tp/(fp+tn), or +Inf when the denominator is
// zero.
func (b *Binary) Specificity() float64 { return ratioOrInf(b.tp, b.fp+b.tn) }

// TrueNegativeRate is another name for Specificity.
func (b *Binary) TrueNegativeRate() float64 { return b.Specificity() }

// FalsePositiveRate returns fp/(fp+tn), or +Inf when the denominator
// is zero.
func (b *Binary) FalsePositiveRate() float64 { return ratioOrInf(b.fp, b.fp+b.tn) }

// NegativePredictiveValue returns tn/(tn+fn), or +Inf when the
// denominator is zero.
func (b *Binary) NegativePredictiveValue() float64 { return ratioOrInf(b.tn, b.tn+b.fn) }

// FalseDiscoveryRate returns 1 - Precision().
func (b *Binary) FalseDiscoveryRate() float64 { return 1 - b.Precision() }

// FScore returns the generalized F-measure; ratio weighs the
// importance of recall against precision. It returns ErrInvalidRatio
// when ratio is not positive.
func (b *Binary) FScore(ratio float64) (float64, error) {
	if ratio <= 0 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidRatio, ratio)
	}
	rsq := ratio * ratio
	p := b.Precision()
	r := b.Recall()
	return ((1 + rsq) * p * r) / (rsq*p + r), nil
}

// F1 returns FScore at ratio 1.
func (b *Binary) F1() float64 {
	f, _ := b.FScore(1)
	return f
}

// SScore is the analogue of FScore over specificity and sensitivity;
// ratio weighs the importance of specificity against sensitivity. It
// returns ErrInvalidRatio when ratio is not positive.
func (b *Binary) SScore(ratio float64) (float64, error) {
	if ratio <= 0 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidRatio, ratio)
	}
	rsq := ratio * ratio
	sp := b.Specificity()
	se := b.Sensitivity()
	return ((1 + rsq) * sp * se) / (rsq*sp + se), nil
}

// S1 returns SScore at ratio 1.
func (b *Binary) S1() float64 {
	s, _ := b.SScore(1)
	return s
}

// Kappa returns Cohen's Kappa, a chance-corrected agreement statistic,
// or NaN when nothing was recorded.
func (b *Binary) Kappa() float64 {
	n := b.Len()
	if n == 0 {
		return math.NaN()
	}
	fn := float64(n)
	// Marginal probabilities that either source says hit.
	px := float64(b.tp+b.fp) / fn
	py := float64(b.tp+b.fn) / fn
	pe := px*py + (1-px)*(1-py)
	return (b.Accuracy() - pe) / (1 - pe)
}

// MatthewsCorrelation returns the Matthews correlation coefficient, or
// NaN when the sample is empty or any marginal is degenerate.
func (b *Binary) MatthewsCorrelation() float64 {
	n := b.Len()
	if n == 0 {
		return math.NaN()
	}
	fn := float64(n)
	s := float64(b.tp+b.fn) / fn
	p := float64(b.tp+b.fp) / fn
	ps := p * s
	denom := math.Sqrt(ps * (1 - s) * (1 - p))
	if denom == 0 {
		return math.NaN()
	}
	return (float64(b.tp)/fn - ps) / denom
}

// ConfidenceInterval returns the 95% Wilson interval around the sample
// accuracy, or (0, 1) when nothing was recorded.
func (b *Binary) ConfidenceInterval() (lower, upper float64) {
	return wilson(b.Accuracy(), b.Len())
}

// Merge combines two binary matrices into a fresh one with
// element-wise summed cells. It returns ErrKindMismatch when other is
// not a *Binary and ErrHitLabelMismatch when the hit labels differ.
func (b *Binary) Merge(other Accumulator) (Accumulator, error) {
	o, ok := other.(*Binary)
	if !ok {
		return nil, fmt.Errorf("%w: cannot merge %T into %T", ErrKindMismatch, other, b)
	}
	if b.HitLabel() != o.HitLabel() {
		return nil, fmt.Errorf("%w: %v vs %v", ErrHitLabelMismatch, b.HitLabel(), o.HitLabel())
	}
	return &Binary{
		hit: b.HitLabel(),
		tp:  b.tp + o.tp,
		fp:  b.fp + o.fp,
		fn:  b.fn + o.fn,
		tn:  b.tn + o.tn,
	}, nil
}

// Render formats the matrix as a fixed-layout truth/guess table with
// thousands-separated counts.
//
//	Truth | Guess
//	---------------------------------------
//	      |       Hit         Miss
//	 Hit  | 5,809,125            1
//	 Miss |         1    2,235,458
func (b *Binary) Render() string {
	var sb strings.Builder
	sb.WriteString("Truth | Guess\n")
	sb.WriteString("---------------------------------------\n")
	sb.WriteString("      |       Hit         Miss\n")
	fmt.Fprintf(&sb, " Hit  | %9s    %9s\n",
		grouped.Sprintf("%d", b.tp), grouped.Sprintf("%d", b.fn))
	fmt.Fprintf(&sb, " Miss | %9s    %9s",
		grouped.Sprintf("%d", b.fp), grouped.Sprintf("%d", b.tn))
	return sb.String()
}

// Summary formats the headline statistics as a label/value block.
func (b *Binary) Summary() string {
	return fmt.Sprintf("Accuracy:\t%.4f\nPrecision:\t%.4f\nRecall:\t\t%.4f\nF1:\t\t%.4f",
		b.Accuracy(), b.Precision(), b.Recall(), b.F1())
}

// String formats the sample accuracy to four decimal places.
func (b *Binary) String() string { return fmt.Sprintf("%.4f", b.Accuracy()) }
