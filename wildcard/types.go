// Package wildcard defines options and sentinel errors for pattern
// matching.
package wildcard

import (
	"errors"

	"github.com/ravlenko/optsub/eval"
)

// ErrSameWildcards indicates the run and single-char wildcards collide.
var ErrSameWildcards = errors.New("wildcard: Star and Any must be distinct characters")

// Options configures wildcard matching.
type Options struct {
	// Star matches any run of characters, including the empty run.
	Star byte
	// Any matches exactly one character.
	Any byte
	// Strategy selects memoized recursion or tabulation.
	Strategy eval.Strategy
}

// DefaultOptions returns Options with Star='*', Any='?' and
// Strategy=eval.TopDown.
func DefaultOptions() Options {
	return Options{
		Star:     '*',
		Any:      '?',
		Strategy: eval.TopDown,
	}
}
