// Package twoagent maximizes the joint pickup of two agents sweeping a
// grid of values top to bottom.
//
// Agent one starts at the top-left cell, agent two at the top-right.
// Each step both agents move one row down, independently shifting their
// column by -1, 0 or +1 — nine transition combinations per state. Every
// visited cell's value is collected, but a cell both agents occupy
// counts once (symmetric value collapse).
//
// State is (row, col1, col2); the recurrence looks at the row below, so
// tabulation fills bottom-to-top over two cols×cols layers. A move that
// takes either agent outside the grid excludes that transition only,
// folded into the max through the eval.NegInfinity sentinel.
//
// Complexity: O(rows·cols²·9) time; O(rows·cols²) memory top-down,
// O(cols²) bottom-up.
package twoagent
