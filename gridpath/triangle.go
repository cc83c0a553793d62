package gridpath

import "github.com/ravlenko/optsub/eval"

// TriangleMinPath returns the minimum sum of a path from the apex of a
// triangle to its base, where a step from (row, col) may go to
// (row+1, col) or (row+1, col+1).
//
// Contracts:
//   - row i must hold exactly i+1 entries (ErrNotTriangular);
//     an empty triangle is ErrEmptyGrid.
//
// The recurrence looks at the row below, so the lattice fills bottom-up
// and the answer sits at the apex: dp(last,col) = tri[last][col];
// dp(row,col) = tri[row][col] + min(dp(row+1,col), dp(row+1,col+1)).
//
// Complexity: O(n²) time; O(n²) memory top-down, O(n) bottom-up.
func TriangleMinPath(tri [][]int, opts Options) (int64, error) {
	if err := eval.Validate(opts.Strategy); err != nil {
		return 0, err
	}
	if err := validateTriangle(tri); err != nil {
		return 0, err
	}
	if opts.Strategy == eval.TopDown {
		memo := make([][]int64, len(tri))
		for i := range memo {
			memo[i] = make([]int64, i+1)
			for j := range memo[i] {
				memo[i][j] = unsetCost
			}
		}
		return triangleMemo(0, 0, tri, memo), nil
	}
	return triangleTab(tri), nil
}

func triangleMemo(row, col int, tri [][]int, memo [][]int64) int64 {
	if row == len(tri)-1 {
		return int64(tri[row][col])
	}
	if memo[row][col] != unsetCost {
		return memo[row][col]
	}
	down := triangleMemo(row+1, col, tri, memo)
	diag := triangleMemo(row+1, col+1, tri, memo)
	memo[row][col] = int64(tri[row][col]) + eval.Min2(down, diag)
	return memo[row][col]
}

// triangleTab folds the triangle upward over a copy of its base row.
func triangleTab(tri [][]int) int64 {
	last := len(tri) - 1
	dp := make([]int64, last+1)
	for col, v := range tri[last] {
		dp[col] = int64(v)
	}
	for row := last - 1; row >= 0; row-- {
		for col := 0; col <= row; col++ {
			dp[col] = int64(tri[row][col]) + eval.Min2(dp[col], dp[col+1])
		}
	}
	return dp[0]
}
