package frog

import "github.com/ravlenko/optsub/eval"

// MinCost returns the minimum total energy to hop from stone 0 to the
// last stone, where a hop from i to j costs |heights[i]-heights[j]| and
// may span at most opts.MaxJump stones.
//
// Contracts:
//   - heights must be non-empty (ErrEmptyHeights).
//   - opts.MaxJump must be at least 1 (ErrNonPositiveJump).
//   - A single stone costs 0: the frog is already there.
//
// The recurrence runs backward from the last stone: dp[0]=0,
// dp[i] = min over j=1..MaxJump, i-j >= 0 of dp[i-j] + |h[i]-h[i-j]|.
// Out-of-range predecessors are excluded from the min.
//
// Complexity: O(n·MaxJump) time; O(n) memory top-down, O(MaxJump+1) bottom-up.
func MinCost(heights []int, opts Options) (int64, error) {
	if err := eval.Validate(opts.Strategy); err != nil {
		return 0, err
	}
	if len(heights) == 0 {
		return 0, ErrEmptyHeights
	}
	if opts.MaxJump < 1 {
		return 0, ErrNonPositiveJump
	}
	n := len(heights)
	if n == 1 {
		return 0, nil
	}
	if opts.Strategy == eval.TopDown {
		memo := make([]int64, n)
		for i := range memo {
			memo[i] = unset
		}
		return minCostMemo(n-1, heights, opts.MaxJump, memo), nil
	}
	return minCostTab(heights, opts.MaxJump), nil
}

// minCostMemo is the memoized descent; memo[i] is written exactly once.
func minCostMemo(i int, h []int, k int, memo []int64) int64 {
	if i == 0 {
		return 0
	}
	if memo[i] != unset {
		return memo[i]
	}
	best := eval.Unreachable
	for j := 1; j <= k && i-j >= 0; j++ {
		cost := minCostMemo(i-j, h, k, memo) + eval.Abs(int64(h[i])-int64(h[i-j]))
		best = eval.Min2(best, cost)
	}
	memo[i] = best
	return best
}

// minCostTab fills the lattice forward keeping only a MaxJump-wide window
// of prior results. window[i % (k+1)] holds dp[i].
func minCostTab(h []int, k int) int64 {
	n := len(h)
	window := make([]int64, k+1)
	window[0] = 0 // dp[0]
	var cur int64
	for i := 1; i < n; i++ {
		cur = eval.Unreachable
		for j := 1; j <= k && i-j >= 0; j++ {
			cost := window[(i-j)%(k+1)] + eval.Abs(int64(h[i])-int64(h[i-j]))
			cur = eval.Min2(cur, cost)
		}
		window[i%(k+1)] = cur
	}
	return window[(n-1)%(k+1)]
}

// unset marks an uncomputed memo entry. Real costs are non-negative
// (absolute differences), so -1 cannot collide.
const unset int64 = -1
