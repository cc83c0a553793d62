// Package stairs counts the distinct ways to climb a staircase.
//
// Two operations:
//
//   - Ways(n)           — steps of size 1 or 2. Satisfies the Fibonacci
//     identity ways(0)=1, ways(1)=1, ways(n)=ways(n-1)+ways(n-2).
//   - WaysBounded(n, k) — steps of any size 1..k.
//
// Both evaluate the same recurrence under either eval.TopDown (memoized
// recursion) or eval.BottomUp (tabulation; Ways keeps just two scalars
// in flight, WaysBounded a k-wide window).
//
// Results are counts and grow fast: ways(n) overflows int64 beyond
// MaxStair, and a bounded climb can reach 2^(n-1) distinct orderings, so
// WaysBounded caps n at MaxBoundedStair. Oversized instances are rejected
// with ErrTooLarge rather than returning a wrapped count.
//
// Complexity: O(n) time for Ways, O(n·k) for WaysBounded;
// memory O(n) top-down, O(1) / O(n) bottom-up.
package stairs
