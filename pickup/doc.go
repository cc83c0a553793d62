// Package pickup computes the maximum sum of a subsequence in which no
// two chosen elements are adjacent (the classic house-robber problem).
//
// State is the highest index still considered; transitions either take
// the element (jump to i-2, add its value) or skip it (move to i-1),
// combining by max. An index below 0 contributes 0, so taking nothing
// is always allowed and the result is never negative.
//
// Complexity: O(n) time; O(n) memory top-down, O(1) bottom-up.
package pickup
