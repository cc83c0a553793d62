package subset

import "github.com/ravlenko/optsub/eval"

// CountSubsets returns the number of subsets of values summing exactly
// to target.
//
// Contracts:
//   - values must be non-empty, non-negative and at most MaxCountValues
//     long (ErrEmptyValues, ErrNegativeValue, ErrTooLarge).
//   - target must be non-negative (ErrNegativeTarget).
//
// Convention: base cases apply in a fixed order — a remaining-target of
// 0 counts as exactly one subset before the first element is consulted.
// Zero-valued elements therefore do not multiply counts through that
// base case. Both strategies implement the same ordering, so they agree
// bit-for-bit on every instance, zeros included.
//
// Complexity: O(n·target) time; O(n·target) memory top-down,
// O(target) bottom-up.
func CountSubsets(values []int, target int, opts Options) (int64, error) {
	if err := eval.Validate(opts.Strategy); err != nil {
		return 0, err
	}
	if _, err := validateValues(values); err != nil {
		return 0, err
	}
	if target < 0 {
		return 0, ErrNegativeTarget
	}
	if len(values) > MaxCountValues {
		return 0, ErrTooLarge
	}
	return countSubsets(values, target, opts.Strategy), nil
}

// countSubsets dispatches after validation; CountPartitions reuses it
// with a derived target.
func countSubsets(values []int, target int, strat eval.Strategy) int64 {
	if strat == eval.TopDown {
		memo := make([][]int64, len(values))
		for i := range memo {
			memo[i] = make([]int64, target+1)
			for t := range memo[i] {
				memo[i][t] = unsetCount
			}
		}
		return countMemo(len(values)-1, target, values, memo)
	}
	return countTab(values, target)
}

func countMemo(ind, target int, values []int, memo [][]int64) int64 {
	if target == 0 {
		return 1
	}
	if ind == 0 {
		if values[0] == target {
			return 1
		}
		return 0
	}
	if memo[ind][target] != unsetCount {
		return memo[ind][target]
	}
	exclude := countMemo(ind-1, target, values, memo)
	var include int64
	if values[ind] <= target {
		include = countMemo(ind-1, target-values[ind], values, memo)
	}
	memo[ind][target] = exclude + include
	return memo[ind][target]
}

// countTab keeps one counting row. dp[0] stays pinned at 1 — the
// remaining-target-0 base case — so the inner loop never touches t=0.
// The descending in-place update mirrors the memoized include/exclude
// pair exactly, including its treatment of zero-valued elements (a zero
// at index i>=1 reads the not-yet-updated dp[t], doubling it, just as
// the recursion does).
func countTab(values []int, target int) int64 {
	dp := make([]int64, target+1)
	dp[0] = 1
	if values[0] >= 1 && values[0] <= target {
		dp[values[0]] = 1
	}
	for i := 1; i < len(values); i++ {
		for t := target; t >= values[i] && t >= 1; t-- {
			dp[t] += dp[t-values[i]]
		}
	}
	return dp[target]
}

// unsetCount marks an uncomputed count entry; counts are never negative.
const unsetCount int64 = -1
