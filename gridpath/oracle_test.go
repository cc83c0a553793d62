package gridpath_test

import "github.com/ravlenko/optsub/eval"

// Uncached exponential twins of the gridpath recurrences, used only as
// agreement oracles on small instances.

func bruteUnique(i, j, rows, cols int) int64 {
	if i == rows-1 && j == cols-1 {
		return 1
	}
	if i >= rows || j >= cols {
		return 0
	}
	return bruteUnique(i+1, j, rows, cols) + bruteUnique(i, j+1, rows, cols)
}

func bruteMaze(i, j int, grid [][]int, obstacle int) int64 {
	if i >= len(grid) || j >= len(grid[0]) {
		return 0
	}
	if grid[i][j] == obstacle {
		return 0
	}
	if i == len(grid)-1 && j == len(grid[0])-1 {
		return 1
	}
	return bruteMaze(i+1, j, grid, obstacle) + bruteMaze(i, j+1, grid, obstacle)
}

func bruteMinSum(i, j int, grid [][]int) int64 {
	if i >= len(grid) || j >= len(grid[0]) {
		return eval.Unreachable
	}
	if i == len(grid)-1 && j == len(grid[0])-1 {
		return int64(grid[i][j])
	}
	return int64(grid[i][j]) + eval.Min2(bruteMinSum(i+1, j, grid), bruteMinSum(i, j+1, grid))
}

func bruteTriangle(row, col int, tri [][]int) int64 {
	if row == len(tri)-1 {
		return int64(tri[row][col])
	}
	return int64(tri[row][col]) +
		eval.Min2(bruteTriangle(row+1, col, tri), bruteTriangle(row+1, col+1, tri))
}

func bruteFallingFrom(row, col int, matrix [][]int) int64 {
	if col < 0 || col >= len(matrix[0]) {
		return eval.Unreachable
	}
	if row == len(matrix)-1 {
		return int64(matrix[row][col])
	}
	return int64(matrix[row][col]) + eval.Min3(
		bruteFallingFrom(row+1, col-1, matrix),
		bruteFallingFrom(row+1, col, matrix),
		bruteFallingFrom(row+1, col+1, matrix),
	)
}

func bruteFalling(matrix [][]int) int64 {
	best := eval.Unreachable
	for col := range matrix[0] {
		best = eval.Min2(best, bruteFallingFrom(0, col, matrix))
	}
	return best
}
