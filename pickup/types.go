// Package pickup defines options and sentinel errors for non-adjacent sums.
package pickup

import (
	"errors"

	"github.com/ravlenko/optsub/eval"
)

// ErrEmptyValues indicates an instance with no elements at all.
var ErrEmptyValues = errors.New("pickup: at least one value is required")

// Options configures non-adjacent sum evaluation.
type Options struct {
	// Strategy selects memoized recursion or tabulation.
	Strategy eval.Strategy
}

// DefaultOptions returns Options with Strategy=eval.TopDown.
func DefaultOptions() Options {
	return Options{Strategy: eval.TopDown}
}
