// Package subset defines options and sentinel errors for subset-sum
// evaluation.
package subset

import (
	"errors"

	"github.com/ravlenko/optsub/eval"
)

// Sentinel errors for subset-sum operations.
var (
	// ErrEmptyValues indicates an instance with no elements at all.
	ErrEmptyValues = errors.New("subset: at least one value is required")
	// ErrNegativeValue indicates an element below 0; the (index, remaining)
	// lattice is only finite for non-negative values.
	ErrNegativeValue = errors.New("subset: values must be non-negative")
	// ErrNegativeTarget indicates a target sum below 0.
	ErrNegativeTarget = errors.New("subset: target must be non-negative")
	// ErrNegativeDifference indicates a partition difference below 0.
	ErrNegativeDifference = errors.New("subset: difference must be non-negative")
	// ErrTooLarge indicates a subset count that could exceed int64.
	ErrTooLarge = errors.New("subset: count may exceed int64 for this many values")
)

// MaxCountValues caps the sequence length for the counting operations:
// a sequence of n values has at most 2^n subsets, exact in int64 for
// n <= 62.
const MaxCountValues = 62

// Options configures subset-sum evaluation.
type Options struct {
	// Strategy selects memoized recursion or tabulation.
	Strategy eval.Strategy
}

// DefaultOptions returns Options with Strategy=eval.TopDown.
func DefaultOptions() Options {
	return Options{Strategy: eval.TopDown}
}

// validateValues rejects empty or negative-valued instances and returns
// the element total.
func validateValues(values []int) (total int, err error) {
	if len(values) == 0 {
		return 0, ErrEmptyValues
	}
	for _, v := range values {
		if v < 0 {
			return 0, ErrNegativeValue
		}
		total += v
	}
	return total, nil
}
