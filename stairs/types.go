// Package stairs defines options and sentinel errors for staircase counting.
package stairs

import (
	"errors"

	"github.com/ravlenko/optsub/eval"
)

// Sentinel errors for staircase operations.
var (
	// ErrNegativeStair indicates a negative target stair.
	ErrNegativeStair = errors.New("stairs: target stair must be non-negative")
	// ErrNonPositiveJump indicates a step bound below 1.
	ErrNonPositiveJump = errors.New("stairs: step bound must be at least 1")
	// ErrTooLarge indicates the count would exceed int64.
	ErrTooLarge = errors.New("stairs: count exceeds int64 for this stair")
)

// Result capacity ceilings, enforced before evaluation.
const (
	// MaxStair is the largest n for which Ways(n) fits in int64
	// (ways(90) = Fib(91) < 2^63).
	MaxStair = 90
	// MaxBoundedStair is the largest n accepted by WaysBounded:
	// with k >= n the count is 2^(n-1), which fits for n <= 63.
	MaxBoundedStair = 63
)

// Options configures staircase counting.
type Options struct {
	// Strategy selects memoized recursion or tabulation.
	Strategy eval.Strategy
}

// DefaultOptions returns Options with Strategy=eval.TopDown.
func DefaultOptions() Options {
	return Options{Strategy: eval.TopDown}
}
