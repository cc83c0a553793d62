package eval

import (
	"errors"
	"math"
)

// ErrUnknownStrategy indicates a Strategy value outside the declared enum.
var ErrUnknownStrategy = errors.New("eval: unknown evaluation strategy")

// Strategy selects how a recurrence package evaluates its state lattice.
type Strategy int

const (
	// TopDown evaluates by memoized recursion from the query state.
	TopDown Strategy = iota

	// BottomUp evaluates by tabulation in dependency order.
	BottomUp
)

// Valid reports whether s is one of the declared strategies.
func (s Strategy) Valid() bool {
	return s == TopDown || s == BottomUp
}

// String returns the strategy name for diagnostics.
func (s Strategy) String() string {
	switch s {
	case TopDown:
		return "TopDown"
	case BottomUp:
		return "BottomUp"
	default:
		return "Unknown"
	}
}

// Validate returns ErrUnknownStrategy for values outside the enum.
// Every package entry point calls this before allocating tables.
func Validate(s Strategy) error {
	if !s.Valid() {
		return ErrUnknownStrategy
	}
	return nil
}

// Unreachable marks an infeasible state in minimization recurrences.
// NegInfinity is its mirror for maximization recurrences.
//
// A quarter of the int64 range: adding any real transition cost (or even a
// second sentinel) stays far from the integer boundary, so the sentinel
// never wraps and always loses a min/max comparison against a real result.
const (
	Unreachable int64 = math.MaxInt64 / 4
	NegInfinity int64 = -Unreachable
)

// Min2 returns the smaller of two int64 values.
func Min2(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// Min3 returns the smallest of three int64 values.
func Min3(a, b, c int64) int64 {
	return Min2(a, Min2(b, c))
}

// Max2 returns the larger of two int64 values.
func Max2(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// Abs returns the absolute value of an int64.
func Abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
