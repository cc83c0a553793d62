package gridpath

import "github.com/ravlenko/optsub/eval"

// MinPathSum returns the minimum sum of cell values along a monotone
// right/down path from the top-left to the bottom-right cell of grid.
//
// Contracts:
//   - grid must be non-empty and rectangular (ErrEmptyGrid, ErrRaggedGrid).
//
// dp(0,0) = grid[0][0]; dp(i,j) = grid[i][j] + min(dp(i-1,j), dp(i,j-1)),
// out-of-range predecessors excluded from the min.
//
// Complexity: O(rows·cols) time; O(rows·cols) memory top-down, O(cols)
// bottom-up.
func MinPathSum(grid [][]int, opts Options) (int64, error) {
	if err := eval.Validate(opts.Strategy); err != nil {
		return 0, err
	}
	rows, cols, err := validateGrid(grid)
	if err != nil {
		return 0, err
	}
	if opts.Strategy == eval.TopDown {
		memo := newCostMemo(rows, cols)
		return minSumMemo(rows-1, cols-1, grid, memo), nil
	}
	return minSumTab(grid, rows, cols), nil
}

func minSumMemo(i, j int, grid [][]int, memo [][]int64) int64 {
	if i < 0 || j < 0 {
		return eval.Unreachable
	}
	if i == 0 && j == 0 {
		return int64(grid[0][0])
	}
	if memo[i][j] != unsetCost {
		return memo[i][j]
	}
	fromTop := minSumMemo(i-1, j, grid, memo)
	fromLeft := minSumMemo(i, j-1, grid, memo)
	memo[i][j] = int64(grid[i][j]) + eval.Min2(fromTop, fromLeft)
	return memo[i][j]
}

// minSumTab keeps one rolling row: dp[j] holds the cheapest cost to
// reach (i,j) while row i is being processed.
func minSumTab(grid [][]int, rows, cols int) int64 {
	dp := make([]int64, cols)
	dp[0] = int64(grid[0][0])
	for j := 1; j < cols; j++ {
		dp[j] = dp[j-1] + int64(grid[0][j])
	}
	for i := 1; i < rows; i++ {
		dp[0] += int64(grid[i][0])
		for j := 1; j < cols; j++ {
			dp[j] = int64(grid[i][j]) + eval.Min2(dp[j], dp[j-1])
		}
	}
	return dp[cols-1]
}

// unsetCost marks an uncomputed cost entry. Grid values may be negative,
// so unset sits below every representable path sum instead of at -1.
const unsetCost int64 = -(1 << 62)

func newCostMemo(rows, cols int) [][]int64 {
	memo := make([][]int64, rows)
	for i := range memo {
		memo[i] = make([]int64, cols)
		for j := range memo[i] {
			memo[i][j] = unsetCost
		}
	}
	return memo
}
