package gridpath

import "github.com/ravlenko/optsub/eval"

// FallingPathSum returns the minimum sum of a falling path through
// matrix: the path starts at any cell of the first row and steps to the
// row below at column -1, 0 or +1 of its current column. The answer is
// the minimum over all starting columns.
//
// Contracts:
//   - matrix must be non-empty and rectangular (ErrEmptyGrid, ErrRaggedGrid).
//
// A step leaving [0, cols) is infeasible and folds to eval.Unreachable,
// dropping out of the min against any real path.
//
// Complexity: O(rows·cols) time; O(rows·cols) memory top-down, O(cols)
// bottom-up.
func FallingPathSum(matrix [][]int, opts Options) (int64, error) {
	if err := eval.Validate(opts.Strategy); err != nil {
		return 0, err
	}
	rows, cols, err := validateGrid(matrix)
	if err != nil {
		return 0, err
	}
	if opts.Strategy == eval.TopDown {
		memo := newCostMemo(rows, cols)
		best := eval.Unreachable
		for col := 0; col < cols; col++ {
			best = eval.Min2(best, fallingMemo(0, col, matrix, memo))
		}
		return best, nil
	}
	return fallingTab(matrix, rows, cols), nil
}

func fallingMemo(row, col int, matrix [][]int, memo [][]int64) int64 {
	if col < 0 || col >= len(matrix[0]) {
		return eval.Unreachable
	}
	if row == len(matrix)-1 {
		return int64(matrix[row][col])
	}
	if memo[row][col] != unsetCost {
		return memo[row][col]
	}
	below := eval.Min3(
		fallingMemo(row+1, col-1, matrix, memo),
		fallingMemo(row+1, col, matrix, memo),
		fallingMemo(row+1, col+1, matrix, memo),
	)
	memo[row][col] = int64(matrix[row][col]) + below
	return memo[row][col]
}

// fallingTab keeps one row pair: prev holds the optimal suffix costs of
// the row below while cur is being filled.
func fallingTab(matrix [][]int, rows, cols int) int64 {
	prev := make([]int64, cols)
	cur := make([]int64, cols)
	for col, v := range matrix[rows-1] {
		prev[col] = int64(v)
	}
	at := func(dp []int64, col int) int64 {
		if col < 0 || col >= cols {
			return eval.Unreachable
		}
		return dp[col]
	}
	for row := rows - 2; row >= 0; row-- {
		for col := 0; col < cols; col++ {
			below := eval.Min3(at(prev, col-1), prev[col], at(prev, col+1))
			cur[col] = int64(matrix[row][col]) + below
		}
		prev, cur = cur, prev
	}
	best := eval.Unreachable
	for col := 0; col < cols; col++ {
		best = eval.Min2(best, prev[col])
	}
	return best
}
