// Package optsub is a small library of classic optimal-substructure
// problems, each solved by an explicit recurrence over a discrete
// state lattice.
//
// 🚀 What is optsub?
//
//	Every package here evaluates one recurrence family twice:
//		• Top-down with memoization — recursive descent, dense memo tables
//		• Bottom-up tabulation — dependency-order fill, reduced-window storage
//	Both strategies are required to agree bit-for-bit on every instance.
//
// ✨ Why choose optsub?
//
//   - Minimal API — one function per operation, one Options struct per package
//   - Strict sentinels — invalid instances fail loudly before evaluation;
//     infeasible subproblems flow through overflow-safe sentinel values
//   - Pure Go — no cgo, no hidden deps, no side effects during evaluation
//   - Reentrant — every call owns its tables; instances are never mutated
//
// The families, one package each:
//
//	eval/     — Strategy enum (TopDown / BottomUp) and shared sentinels
//	stairs/   — staircase climb counting, fixed and bounded step sizes
//	frog/     — minimum-cost jump across stones with bounded reach
//	pickup/   — maximum non-adjacent sum
//	gridpath/ — lattice path counting, obstacle mazes, min-cost grid,
//	            triangle and falling path sums
//	twoagent/ — two agents sweeping a grid for maximum joint pickup
//	subset/   — subset-sum existence, counting, and partition problems
//	wildcard/ — wildcard pattern matching ('*' and '?')
//
// Quick taste:
//
//	opts := stairs.DefaultOptions()
//	ways, err := stairs.Ways(10, opts)   // 89
//
// Brute-force twins of every recurrence live in the test suites as
// agreement oracles; they are deliberately not part of the public API.
package optsub
