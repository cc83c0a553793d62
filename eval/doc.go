// Package eval defines the evaluation strategies shared by every
// recurrence package in optsub, plus the overflow-safe sentinel values
// used to fold infeasible transitions into ordinary min/max arithmetic.
//
// Two strategies, required to agree bit-for-bit on every instance:
//
//   - TopDown  — memoized recursion. A dense memo table keyed by state
//     coordinates is consulted before descending and written exactly once
//     per state. Terminates because every family's dependency order is
//     acyclic and its domain finite.
//
//   - BottomUp — tabulation. States are filled in dependency order using
//     only already-filled entries. Implementations keep only the window
//     of prior states the recurrence actually reads (two scalars for 1-D
//     families, one or two rows for 2-D); a memory optimization with no
//     effect on results.
//
// Sentinels:
//
//	Unreachable  — "no valid path" for minimization problems
//	NegInfinity  — "no valid path" for maximization problems
//
// Both sit at a quarter of the int64 range, so a sentinel plus any real
// cost — even a sentinel plus a sentinel — cannot wrap around, and every
// comparison against a genuine result stays correctly ordered.
package eval
