package stairs_test

// Brute-force twins of the stairs recurrences. Exponential by design;
// used only as agreement oracles on small n.

// bruteWays re-derives every state from scratch: climbs of 1 or 2 from
// stair `cur` up to stair n.
func bruteWays(n, cur int) int64 {
	if cur == n {
		return 1
	}
	if cur > n {
		return 0
	}
	return bruteWays(n, cur+1) + bruteWays(n, cur+2)
}

// bruteWaysBounded counts climbs with steps 1..k.
func bruteWaysBounded(n, k, cur int) int64 {
	if cur == n {
		return 1
	}
	if cur > n {
		return 0
	}
	var total int64
	for j := 1; j <= k; j++ {
		total += bruteWaysBounded(n, k, cur+j)
	}
	return total
}
