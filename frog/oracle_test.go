package frog_test

import "github.com/ravlenko/optsub/eval"

// bruteMinCost is the uncached exponential twin of frog.MinCost, used
// only as an agreement oracle on small instances.
func bruteMinCost(i int, h []int, k int) int64 {
	if i == 0 {
		return 0
	}
	best := eval.Unreachable
	for j := 1; j <= k && i-j >= 0; j++ {
		cost := bruteMinCost(i-j, h, k) + eval.Abs(int64(h[i])-int64(h[i-j]))
		best = eval.Min2(best, cost)
	}
	return best
}
