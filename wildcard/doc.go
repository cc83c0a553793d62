// Package wildcard matches text against glob-style patterns with two
// wildcard characters: one matching any single character and one
// matching any run of characters, including the empty run.
//
// State is (pattern position, text position). A literal or single-char
// wildcard consumes one character from both strings (diagonal step);
// the run wildcard either matches the empty run (pattern-only step) or
// swallows one text character and stays put (text-only step), the two
// branches combining by OR.
//
// Base cases, in order: both strings exhausted is a match; an exhausted
// pattern with text left is not; exhausted text matches iff every
// remaining pattern character is the run wildcard.
//
// The wildcard bytes default to '*' and '?' and are configurable via
// Options. Matching is byte-wise.
//
// Complexity: O(n·m) time; O(n·m) memory top-down, O(m) bottom-up.
package wildcard
