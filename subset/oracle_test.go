package subset_test

// Uncached exponential twins of the subset recurrences, used only as
// agreement oracles on small instances.

// bruteExists tries every include/exclude assignment.
func bruteExists(idx, currSum, target int, values []int) bool {
	if idx == len(values) {
		return currSum == target
	}
	return bruteExists(idx+1, currSum+values[idx], target, values) ||
		bruteExists(idx+1, currSum, target, values)
}

// bruteCount counts every assignment reaching the target.
func bruteCount(idx, currSum, target int, values []int) int64 {
	if idx == len(values) {
		if currSum == target {
			return 1
		}
		return 0
	}
	return bruteCount(idx+1, currSum+values[idx], target, values) +
		bruteCount(idx+1, currSum, target, values)
}

// brutePartitions treats the chosen subset as S1 and counts assignments
// with sum(S1) - sum(S2) == diff.
func brutePartitions(idx, currSum, total, diff int, values []int) int64 {
	if idx == len(values) {
		if currSum-(total-currSum) == diff {
			return 1
		}
		return 0
	}
	return brutePartitions(idx+1, currSum+values[idx], total, diff, values) +
		brutePartitions(idx+1, currSum, total, diff, values)
}

// bruteMinDiff minimizes |S1 - S2| over every assignment.
func bruteMinDiff(idx, currSum, total int, values []int) int64 {
	if idx == len(values) {
		d := int64(currSum - (total - currSum))
		if d < 0 {
			d = -d
		}
		return d
	}
	pick := bruteMinDiff(idx+1, currSum+values[idx], total, values)
	skip := bruteMinDiff(idx+1, currSum, total, values)
	if pick < skip {
		return pick
	}
	return skip
}
