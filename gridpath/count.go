package gridpath

import "github.com/ravlenko/optsub/eval"

// UniquePaths returns the number of monotone paths from the top-left to
// the bottom-right corner of a rows×cols lattice, moving only right or
// down.
//
// Contracts:
//   - rows and cols must be at least 1 (ErrNonPositiveDims).
//   - rows+cols-2 must not exceed MaxCountSteps (ErrTooLarge).
//
// ways(0,0)=1; ways(i,j) = ways(i-1,j) + ways(i,j-1), out-of-range
// predecessors contributing 0.
//
// Complexity: O(rows·cols) time; O(rows·cols) memory top-down, O(cols)
// bottom-up.
func UniquePaths(rows, cols int, opts Options) (int64, error) {
	if err := eval.Validate(opts.Strategy); err != nil {
		return 0, err
	}
	if rows < 1 || cols < 1 {
		return 0, ErrNonPositiveDims
	}
	if rows+cols-2 > MaxCountSteps {
		return 0, ErrTooLarge
	}
	if opts.Strategy == eval.TopDown {
		memo := newCountMemo(rows, cols)
		return uniqueMemo(rows-1, cols-1, memo), nil
	}
	return uniqueTab(rows, cols), nil
}

func uniqueMemo(i, j int, memo [][]int64) int64 {
	if i < 0 || j < 0 {
		return 0
	}
	if i == 0 && j == 0 {
		return 1
	}
	if memo[i][j] != unsetCount {
		return memo[i][j]
	}
	memo[i][j] = uniqueMemo(i-1, j, memo) + uniqueMemo(i, j-1, memo)
	return memo[i][j]
}

// uniqueTab fills row by row over a single rolling row: after processing
// row i, dp[j] holds ways(i,j).
func uniqueTab(rows, cols int) int64 {
	dp := make([]int64, cols)
	for j := range dp {
		dp[j] = 1 // first row: only one way, straight right
	}
	for i := 1; i < rows; i++ {
		for j := 1; j < cols; j++ {
			dp[j] += dp[j-1] // above + left
		}
	}
	return dp[cols-1]
}

// unsetCount marks an uncomputed count entry; counts are never negative.
const unsetCount int64 = -1

func newCountMemo(rows, cols int) [][]int64 {
	memo := make([][]int64, rows)
	for i := range memo {
		memo[i] = make([]int64, cols)
		for j := range memo[i] {
			memo[i][j] = unsetCount
		}
	}
	return memo
}
