// Package subset answers reachability and counting questions about
// subset sums of a non-negative integer sequence.
//
// Operations:
//
//   - SumExists(values, target)        — is any subset summing to target?
//   - CountSubsets(values, target)     — how many subsets sum to target?
//   - CountPartitions(values, diff)    — how many 2-partitions (S1,S2),
//     S1 ≥ S2, have S1−S2 == diff?
//   - MinPartitionDiff(values)         — smallest achievable |S1−S2|
//
// State is (index, remaining-target). Transitions exclude the element or
// include it when it fits; existence combines by OR, counting by sum.
// remaining-target 0 is a true base case; index 0 checks direct equality.
//
// CountPartitions reduces the signed difference to a plain target:
// S1 = (total+diff)/2, so an odd total+diff or diff > total makes the
// count 0 by definition — a result, not an error.
//
// Counting convention: a remaining-target of 0 counts as exactly one
// subset even when zero-valued elements are still unconsidered. Both
// strategies implement the same convention, so they agree bit-for-bit.
//
// An unreachable target is not an error either: SumExists returns
// false, the counters return 0. Errors are reserved for malformed
// instances (empty or negative values, negative target or difference,
// sequences too long for an exact int64 count).
//
// Complexity: O(n·target) time; memory O(n·target) top-down,
// O(target) bottom-up.
package subset
