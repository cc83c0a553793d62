// Package frog defines options and sentinel errors for minimum-cost jumps.
package frog

import (
	"errors"

	"github.com/ravlenko/optsub/eval"
)

// Sentinel errors for frog jump evaluation.
var (
	// ErrEmptyHeights indicates an instance with no stones at all.
	ErrEmptyHeights = errors.New("frog: at least one stone height is required")
	// ErrNonPositiveJump indicates a jump bound below 1.
	ErrNonPositiveJump = errors.New("frog: MaxJump must be at least 1")
)

// Options configures frog jump evaluation.
type Options struct {
	// MaxJump is the farthest forward reach per hop (>= 1).
	MaxJump int
	// Strategy selects memoized recursion or tabulation.
	Strategy eval.Strategy
}

// DefaultOptions returns Options with MaxJump=2 and Strategy=eval.TopDown.
func DefaultOptions() Options {
	return Options{
		MaxJump:  2,
		Strategy: eval.TopDown,
	}
}
