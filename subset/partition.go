package subset

import "github.com/ravlenko/optsub/eval"

// CountPartitions returns the number of ways to split values into two
// subsets (S1, S2) with S1 >= S2 and sum(S1) - sum(S2) == diff.
//
// Contracts:
//   - values must be non-empty, non-negative and at most MaxCountValues
//     long (ErrEmptyValues, ErrNegativeValue, ErrTooLarge).
//   - diff must be non-negative (ErrNegativeDifference).
//
// The signed difference reduces to a plain subset target:
// sum(S1) = (total+diff)/2. When total+diff is odd or diff exceeds the
// total, no split exists and the count is 0 by definition.
//
// Complexity: O(n·(total+diff)/2) time.
func CountPartitions(values []int, diff int, opts Options) (int64, error) {
	if err := eval.Validate(opts.Strategy); err != nil {
		return 0, err
	}
	total, err := validateValues(values)
	if err != nil {
		return 0, err
	}
	if diff < 0 {
		return 0, ErrNegativeDifference
	}
	if len(values) > MaxCountValues {
		return 0, ErrTooLarge
	}
	if (total+diff)%2 != 0 || diff > total {
		return 0, nil
	}
	return countSubsets(values, (total+diff)/2, opts.Strategy), nil
}

// MinPartitionDiff returns the smallest achievable |sum(S1) - sum(S2)|
// over all splits of values into two subsets.
//
// Contracts:
//   - values must be non-empty and non-negative (ErrEmptyValues,
//     ErrNegativeValue).
//
// The best split puts as close to total/2 as possible into the smaller
// side, so the answer is total - 2·s1 for the largest reachable subset
// sum s1 <= total/2, read off the subset-sum reachability lattice.
//
// Complexity: O(n·total) time; O(n·total) memory top-down,
// O(total) bottom-up.
func MinPartitionDiff(values []int, opts Options) (int64, error) {
	if err := eval.Validate(opts.Strategy); err != nil {
		return 0, err
	}
	total, err := validateValues(values)
	if err != nil {
		return 0, err
	}
	half := total / 2

	if opts.Strategy == eval.TopDown {
		// One memo serves every boundary query: the lattice is shared.
		memo := newTriState(len(values), half)
		for s1 := half; s1 >= 0; s1-- {
			if existsMemo(len(values)-1, s1, values, memo) {
				return int64(total - 2*s1), nil
			}
		}
		return int64(total), nil
	}

	dp := make([]bool, half+1)
	dp[0] = true
	if values[0] <= half {
		dp[values[0]] = true
	}
	for i := 1; i < len(values); i++ {
		for t := half; t >= values[i] && t >= 1; t-- {
			dp[t] = dp[t] || dp[t-values[i]]
		}
	}
	for s1 := half; s1 >= 0; s1-- {
		if dp[s1] {
			return int64(total - 2*s1), nil
		}
	}
	return int64(total), nil
}
