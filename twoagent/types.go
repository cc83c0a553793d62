// Package twoagent defines options and sentinel errors for the
// two-agent grid pickup problem.
package twoagent

import (
	"errors"

	"github.com/ravlenko/optsub/eval"
)

// Sentinel errors for two-agent evaluation.
var (
	// ErrEmptyGrid indicates an input grid with no rows or no columns.
	ErrEmptyGrid = errors.New("twoagent: input grid must have at least one row and one column")
	// ErrRaggedGrid indicates rows of differing lengths.
	ErrRaggedGrid = errors.New("twoagent: all rows must have the same length")
)

// Options configures two-agent evaluation.
type Options struct {
	// Strategy selects memoized recursion or tabulation.
	Strategy eval.Strategy
}

// DefaultOptions returns Options with Strategy=eval.TopDown.
func DefaultOptions() Options {
	return Options{Strategy: eval.TopDown}
}
