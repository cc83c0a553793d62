// Package gridpath defines options and sentinel errors for grid path
// evaluation.
package gridpath

import (
	"errors"

	"github.com/ravlenko/optsub/eval"
)

// Sentinel errors for gridpath operations.
var (
	// ErrEmptyGrid indicates an input grid with no rows or no columns.
	ErrEmptyGrid = errors.New("gridpath: input grid must have at least one row and one column")
	// ErrRaggedGrid indicates rows of differing lengths.
	ErrRaggedGrid = errors.New("gridpath: all rows must have the same length")
	// ErrNotTriangular indicates row i does not hold exactly i+1 entries.
	ErrNotTriangular = errors.New("gridpath: row i of a triangle must have exactly i+1 entries")
	// ErrNonPositiveDims indicates a dimension below 1.
	ErrNonPositiveDims = errors.New("gridpath: dimensions must be at least 1")
	// ErrTooLarge indicates a path count that would exceed int64.
	ErrTooLarge = errors.New("gridpath: path count exceeds int64 for these dimensions")
)

// MaxCountSteps caps rows+cols-2 for the counting operations:
// C(60,30) fits comfortably in int64, so any monotone path count over a
// lattice with at most 60 steps is exact.
const MaxCountSteps = 60

// Options configures grid path evaluation.
type Options struct {
	// Obstacle is the cell value treated as blocked by MazePaths.
	Obstacle int
	// Strategy selects memoized recursion or tabulation.
	Strategy eval.Strategy
}

// DefaultOptions returns Options with Obstacle=-1 and Strategy=eval.TopDown.
func DefaultOptions() Options {
	return Options{
		Obstacle: -1,
		Strategy: eval.TopDown,
	}
}

// validateGrid checks non-emptiness and rectangularity, returning the
// dimensions. Evaluation never starts on a malformed instance.
func validateGrid(grid [][]int) (rows, cols int, err error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	rows, cols = len(grid), len(grid[0])
	for _, row := range grid {
		if len(row) != cols {
			return 0, 0, ErrRaggedGrid
		}
	}
	return rows, cols, nil
}

// validateTriangle checks the strictly triangular shape.
func validateTriangle(tri [][]int) error {
	if len(tri) == 0 {
		return ErrEmptyGrid
	}
	for i, row := range tri {
		if len(row) != i+1 {
			return ErrNotTriangular
		}
	}
	return nil
}
