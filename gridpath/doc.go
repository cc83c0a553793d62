// Package gridpath evaluates path recurrences over 2-D integer grids:
// counting monotone lattice paths, counting around obstacles, and
// minimizing path cost on grids, triangles and falling columns.
//
// Operations:
//
//   - UniquePaths(rows, cols)  — monotone right/down path count
//   - MazePaths(grid)          — path count with obstacle cells
//   - MinPathSum(grid)         — cheapest top-left → bottom-right walk
//   - TriangleMinPath(tri)     — cheapest apex → base walk
//   - FallingPathSum(matrix)   — cheapest any-top-cell → bottom walk,
//     each step moving to column -1/0/+1 of the row below
//
// Every operation validates its instance before allocating tables:
// grids must be non-empty and rectangular, triangles must have exactly
// i+1 entries in row i. Instances are read-only during evaluation.
//
// State is (row, col); the fill direction follows the recurrence — the
// counting and min-sum problems accumulate top-to-bottom from (0,0),
// the triangle and falling problems look at the row below and fill
// bottom-to-top. Infeasible transitions (out of range, blocked) are
// excluded from the combine, folding to 0 for counts and to
// eval.Unreachable for minima.
//
// Both strategies are available per operation; bottom-up tabulation
// keeps a single rolling row (two for the falling sum).
//
// Complexity: O(rows·cols) time per operation; memory O(rows·cols)
// top-down, O(cols) bottom-up.
package gridpath
