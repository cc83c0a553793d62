package subset

import "github.com/ravlenko/optsub/eval"

// SumExists reports whether any subset of values sums exactly to target.
//
// Contracts:
//   - values must be non-empty and non-negative (ErrEmptyValues,
//     ErrNegativeValue).
//   - target must be non-negative (ErrNegativeTarget).
//
// An unreachable target is false, not an error.
//
// Complexity: O(n·target) time; O(n·target) memory top-down,
// O(target) bottom-up.
func SumExists(values []int, target int, opts Options) (bool, error) {
	if err := eval.Validate(opts.Strategy); err != nil {
		return false, err
	}
	if _, err := validateValues(values); err != nil {
		return false, err
	}
	if target < 0 {
		return false, ErrNegativeTarget
	}
	if opts.Strategy == eval.TopDown {
		memo := newTriState(len(values), target)
		return existsMemo(len(values)-1, target, values, memo), nil
	}
	return existsTab(values, target), nil
}

// existsMemo descends over (index, remaining). The memo is tri-state:
// unsetBool until a state is computed, then 0 or 1, written once.
func existsMemo(ind, target int, values []int, memo [][]int8) bool {
	if target == 0 {
		return true
	}
	if ind == 0 {
		return values[0] == target
	}
	if memo[ind][target] != unsetBool {
		return memo[ind][target] == 1
	}
	found := existsMemo(ind-1, target, values, memo)
	if !found && values[ind] <= target {
		found = existsMemo(ind-1, target-values[ind], values, memo)
	}
	memo[ind][target] = 0
	if found {
		memo[ind][target] = 1
	}
	return found
}

// existsTab keeps one reachability row, folding elements in one at a
// time. The descending inner loop makes the update 0/1: each element is
// consumed at most once.
func existsTab(values []int, target int) bool {
	dp := make([]bool, target+1)
	dp[0] = true
	if values[0] <= target {
		dp[values[0]] = true
	}
	for i := 1; i < len(values); i++ {
		for t := target; t >= values[i] && t >= 1; t-- {
			dp[t] = dp[t] || dp[t-values[i]]
		}
	}
	return dp[target]
}

// unsetBool marks an uncomputed tri-state memo entry.
const unsetBool int8 = -1

func newTriState(n, target int) [][]int8 {
	memo := make([][]int8, n)
	for i := range memo {
		memo[i] = make([]int8, target+1)
		for t := range memo[i] {
			memo[i][t] = unsetBool
		}
	}
	return memo
}
