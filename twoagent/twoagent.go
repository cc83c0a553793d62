package twoagent

import "github.com/ravlenko/optsub/eval"

// MaxChocolates returns the maximum total value two agents can collect:
// agent one starts at (0,0), agent two at (0,cols-1), both descend one
// row per step with a column shift of -1, 0 or +1, and a shared cell is
// counted once.
//
// Contracts:
//   - grid must be non-empty and rectangular (ErrEmptyGrid, ErrRaggedGrid).
//
// dp(last,j1,j2) = value(j1,j2); dp(i,j1,j2) = value(j1,j2) + max over
// the nine (dj1,dj2) shifts of dp(i+1, j1+dj1, j2+dj2), where a shift
// that leaves [0,cols) for either agent folds to eval.NegInfinity.
//
// Complexity: O(rows·cols²·9) time; O(rows·cols²) memory top-down,
// O(cols²) bottom-up.
func MaxChocolates(grid [][]int, opts Options) (int64, error) {
	if err := eval.Validate(opts.Strategy); err != nil {
		return 0, err
	}
	if len(grid) == 0 || len(grid[0]) == 0 {
		return 0, ErrEmptyGrid
	}
	rows, cols := len(grid), len(grid[0])
	for _, row := range grid {
		if len(row) != cols {
			return 0, ErrRaggedGrid
		}
	}
	if opts.Strategy == eval.TopDown {
		memo := newMemo(rows, cols)
		return chocolatesMemo(0, 0, cols-1, grid, memo), nil
	}
	return chocolatesTab(grid, rows, cols), nil
}

// cellValue collapses a shared cell to a single contribution.
func cellValue(grid [][]int, row, j1, j2 int) int64 {
	if j1 == j2 {
		return int64(grid[row][j1])
	}
	return int64(grid[row][j1]) + int64(grid[row][j2])
}

func chocolatesMemo(row, j1, j2 int, grid [][]int, memo [][][]int64) int64 {
	cols := len(grid[0])
	if j1 < 0 || j1 >= cols || j2 < 0 || j2 >= cols {
		return eval.NegInfinity
	}
	if row == len(grid)-1 {
		return cellValue(grid, row, j1, j2)
	}
	if memo[row][j1][j2] != unset {
		return memo[row][j1][j2]
	}
	curr := cellValue(grid, row, j1, j2)
	best := eval.NegInfinity
	for dj1 := -1; dj1 <= 1; dj1++ {
		for dj2 := -1; dj2 <= 1; dj2++ {
			best = eval.Max2(best, chocolatesMemo(row+1, j1+dj1, j2+dj2, grid, memo))
		}
	}
	memo[row][j1][j2] = curr + best
	return memo[row][j1][j2]
}

// chocolatesTab fills bottom-to-top keeping only two cols×cols layers:
// next holds row i+1, cur is being filled for row i.
func chocolatesTab(grid [][]int, rows, cols int) int64 {
	next := newLayer(cols)
	cur := newLayer(cols)
	for j1 := 0; j1 < cols; j1++ {
		for j2 := 0; j2 < cols; j2++ {
			next[j1][j2] = cellValue(grid, rows-1, j1, j2)
		}
	}
	for row := rows - 2; row >= 0; row-- {
		for j1 := 0; j1 < cols; j1++ {
			for j2 := 0; j2 < cols; j2++ {
				best := eval.NegInfinity
				for dj1 := -1; dj1 <= 1; dj1++ {
					for dj2 := -1; dj2 <= 1; dj2++ {
						n1, n2 := j1+dj1, j2+dj2
						if n1 < 0 || n1 >= cols || n2 < 0 || n2 >= cols {
							continue
						}
						best = eval.Max2(best, next[n1][n2])
					}
				}
				cur[j1][j2] = cellValue(grid, row, j1, j2) + best
			}
		}
		next, cur = cur, next
	}
	return next[0][cols-1]
}

// unset marks an uncomputed memo entry. Real results are bounded by the
// grid's value range times its area; -(1<<62) sits far below both that
// and the NegInfinity sentinel.
const unset int64 = -(1 << 62)

func newMemo(rows, cols int) [][][]int64 {
	memo := make([][][]int64, rows)
	for i := range memo {
		memo[i] = make([][]int64, cols)
		for j := range memo[i] {
			memo[i][j] = make([]int64, cols)
			for k := range memo[i][j] {
				memo[i][j][k] = unset
			}
		}
	}
	return memo
}

func newLayer(cols int) [][]int64 {
	layer := make([][]int64, cols)
	for i := range layer {
		layer[i] = make([]int64, cols)
	}
	return layer
}
