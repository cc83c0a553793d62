package pickup

import "github.com/ravlenko/optsub/eval"

// MaxNonAdjacentSum returns the maximum sum obtainable by picking
// elements of values such that no two picked indices are adjacent.
// Picking nothing is allowed, so the result is never negative.
//
// Contracts:
//   - values must be non-empty (ErrEmptyValues).
//
// dp[i] = max(values[i] + dp[i-2], dp[i-1]); dp of a negative index is 0.
//
// Complexity: O(n) time; O(n) memory top-down, O(1) bottom-up.
func MaxNonAdjacentSum(values []int, opts Options) (int64, error) {
	if err := eval.Validate(opts.Strategy); err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return 0, ErrEmptyValues
	}
	if opts.Strategy == eval.TopDown {
		memo := make([]int64, len(values))
		seen := make([]bool, len(values))
		return maxSumMemo(len(values)-1, values, memo, seen), nil
	}
	return maxSumTab(values), nil
}

// maxSumMemo is the memoized descent. A separate seen bitmap marks
// computed entries: 0 is a legitimate result here, so no numeric unset
// sentinel is safe.
func maxSumMemo(i int, values []int, memo []int64, seen []bool) int64 {
	if i < 0 {
		return 0
	}
	if seen[i] {
		return memo[i]
	}
	take := int64(values[i]) + maxSumMemo(i-2, values, memo, seen)
	skip := maxSumMemo(i-1, values, memo, seen)
	memo[i] = eval.Max2(take, skip)
	seen[i] = true
	return memo[i]
}

// maxSumTab fills forward keeping two scalars in flight.
func maxSumTab(values []int) int64 {
	var prev2, prev1 int64 // dp[-2], dp[-1]
	for _, v := range values {
		take := int64(v) + prev2
		skip := prev1
		prev2, prev1 = prev1, eval.Max2(take, skip)
	}
	return prev1
}
