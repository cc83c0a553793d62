package stairs

import "github.com/ravlenko/optsub/eval"

// Ways returns the number of distinct climbs to stair n using steps of 1 or 2.
//
// Contracts:
//   - n must be non-negative (ErrNegativeStair).
//   - n must not exceed MaxStair (ErrTooLarge).
//
// ways(0)=1, ways(1)=1, ways(n)=ways(n-1)+ways(n-2).
//
// Complexity: O(n) time; O(n) memory top-down, O(1) bottom-up.
func Ways(n int, opts Options) (int64, error) {
	if err := eval.Validate(opts.Strategy); err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, ErrNegativeStair
	}
	if n > MaxStair {
		return 0, ErrTooLarge
	}
	if opts.Strategy == eval.TopDown {
		memo := newMemo(n + 1)
		return waysMemo(n, memo), nil
	}
	return waysTab(n), nil
}

// waysMemo is the memoized descent: memo[i] is written exactly once.
func waysMemo(i int, memo []int64) int64 {
	if i <= 1 {
		return 1
	}
	if memo[i] != unset {
		return memo[i]
	}
	memo[i] = waysMemo(i-1, memo) + waysMemo(i-2, memo)
	return memo[i]
}

// waysTab fills the 1-D lattice forward keeping only two scalars in flight.
func waysTab(n int) int64 {
	var prev2, prev1 int64 = 1, 1 // ways(0), ways(1)
	for i := 2; i <= n; i++ {
		prev2, prev1 = prev1, prev1+prev2
	}
	return prev1
}

// WaysBounded returns the number of distinct climbs to stair n using steps
// of any size 1..k.
//
// Contracts:
//   - n must be non-negative (ErrNegativeStair).
//   - k must be at least 1 (ErrNonPositiveJump).
//   - n must not exceed MaxBoundedStair (ErrTooLarge).
//
// ways(0)=1; ways(i) = Σ ways(i-j) for j=1..k with i-j >= 0. A step past
// stair 0 is infeasible and contributes nothing to the sum.
//
// Complexity: O(n·k) time; O(n) memory either strategy.
func WaysBounded(n, k int, opts Options) (int64, error) {
	if err := eval.Validate(opts.Strategy); err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, ErrNegativeStair
	}
	if k < 1 {
		return 0, ErrNonPositiveJump
	}
	if n > MaxBoundedStair {
		return 0, ErrTooLarge
	}
	if opts.Strategy == eval.TopDown {
		memo := newMemo(n + 1)
		return waysBoundedMemo(n, k, memo), nil
	}
	return waysBoundedTab(n, k), nil
}

func waysBoundedMemo(i, k int, memo []int64) int64 {
	if i == 0 {
		return 1
	}
	if memo[i] != unset {
		return memo[i]
	}
	var total int64
	for j := 1; j <= k && i-j >= 0; j++ {
		total += waysBoundedMemo(i-j, k, memo)
	}
	memo[i] = total
	return total
}

func waysBoundedTab(n, k int) int64 {
	dp := make([]int64, n+1)
	dp[0] = 1
	for i := 1; i <= n; i++ {
		for j := 1; j <= k && i-j >= 0; j++ {
			dp[i] += dp[i-j]
		}
	}
	return dp[n]
}

// unset marks an uncomputed memo entry. Counts are never negative, so -1
// cannot collide with a real result.
const unset int64 = -1

// newMemo allocates a dense memo of the given size, all entries unset.
func newMemo(size int) []int64 {
	memo := make([]int64, size)
	for i := range memo {
		memo[i] = unset
	}
	return memo
}
