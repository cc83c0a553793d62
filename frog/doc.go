// Package frog computes the minimum total energy for a frog hopping
// across a line of stones.
//
// The frog starts on stone 0 and must reach the last stone. From stone i
// it may jump forward to any of stones i+1 .. i+MaxJump; a jump from i to
// j costs |height[i] - height[j]|. MinCost returns the cheapest total.
//
// State is the stone index; transitions look back up to MaxJump stones,
// combining by min over (sub-result + jump cost). Jumps that would land
// before stone 0 are excluded from the min; a state with no remaining
// candidate folds to the eval.Unreachable sentinel instead of raising.
//
// MaxJump defaults to 2, the classic two-stone frog. Raise it for the
// k-reach variant.
//
// Complexity: O(n·k) time; O(n) memory top-down, O(k) bottom-up.
package frog
