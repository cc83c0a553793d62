package gridpath

import "github.com/ravlenko/optsub/eval"

// MazePaths returns the number of monotone right/down paths from the
// top-left to the bottom-right cell of grid, where any cell equal to
// opts.Obstacle is blocked. A blocked cell is a hard base case: it has
// 0 paths and nothing propagates through it. A blocked start or goal
// makes the count 0.
//
// Contracts:
//   - grid must be non-empty and rectangular (ErrEmptyGrid, ErrRaggedGrid).
//   - rows+cols-2 must not exceed MaxCountSteps (ErrTooLarge).
//
// Complexity: O(rows·cols) time; O(rows·cols) memory top-down, O(cols)
// bottom-up.
func MazePaths(grid [][]int, opts Options) (int64, error) {
	if err := eval.Validate(opts.Strategy); err != nil {
		return 0, err
	}
	rows, cols, err := validateGrid(grid)
	if err != nil {
		return 0, err
	}
	if rows+cols-2 > MaxCountSteps {
		return 0, ErrTooLarge
	}
	if opts.Strategy == eval.TopDown {
		memo := newCountMemo(rows, cols)
		return mazeMemo(rows-1, cols-1, grid, opts.Obstacle, memo), nil
	}
	return mazeTab(grid, rows, cols, opts.Obstacle), nil
}

func mazeMemo(i, j int, grid [][]int, obstacle int, memo [][]int64) int64 {
	if i < 0 || j < 0 {
		return 0
	}
	if grid[i][j] == obstacle {
		return 0
	}
	if i == 0 && j == 0 {
		return 1
	}
	if memo[i][j] != unsetCount {
		return memo[i][j]
	}
	memo[i][j] = mazeMemo(i-1, j, grid, obstacle, memo) + mazeMemo(i, j-1, grid, obstacle, memo)
	return memo[i][j]
}

// mazeTab fills a single rolling row; a blocked cell zeroes its slot,
// which is exactly what stops propagation through it.
func mazeTab(grid [][]int, rows, cols, obstacle int) int64 {
	dp := make([]int64, cols)
	if grid[0][0] != obstacle {
		dp[0] = 1
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if grid[i][j] == obstacle {
				dp[j] = 0
			} else if j > 0 {
				dp[j] += dp[j-1]
			}
		}
	}
	return dp[cols-1]
}
