package wildcard

import "github.com/ravlenko/optsub/eval"

// Match reports whether text matches pattern, where opts.Any matches
// any single character and opts.Star matches any run of characters,
// including the empty run.
//
// Contracts:
//   - opts.Star and opts.Any must differ (ErrSameWildcards).
//   - Empty pattern matches only empty text; a pattern of Stars matches
//     everything.
//
// Complexity: O(n·m) time; O(n·m) memory top-down, O(m) bottom-up.
func Match(pattern, text string, opts Options) (bool, error) {
	if err := eval.Validate(opts.Strategy); err != nil {
		return false, err
	}
	if opts.Star == opts.Any {
		return false, ErrSameWildcards
	}
	if opts.Strategy == eval.TopDown {
		memo := make([][]int8, len(pattern))
		for i := range memo {
			memo[i] = make([]int8, len(text))
			for j := range memo[i] {
				memo[i][j] = unset
			}
		}
		return matchMemo(len(pattern)-1, len(text)-1, pattern, text, opts, memo), nil
	}
	return matchTab(pattern, text, opts), nil
}

// allStars reports whether pattern[0..i] consists solely of the run
// wildcard — the only way a non-empty pattern tail matches empty text.
func allStars(pattern string, i int, star byte) bool {
	for j := 0; j <= i; j++ {
		if pattern[j] != star {
			return false
		}
	}
	return true
}

// matchMemo descends over (i, j) — the last considered positions of
// pattern and text. Negative positions are the exhaustion base cases.
func matchMemo(i, j int, pattern, text string, opts Options, memo [][]int8) bool {
	if i < 0 && j < 0 {
		return true
	}
	if i < 0 {
		return false
	}
	if j < 0 {
		return allStars(pattern, i, opts.Star)
	}
	if memo[i][j] != unset {
		return memo[i][j] == 1
	}
	var matched bool
	switch {
	case pattern[i] == text[j] || pattern[i] == opts.Any:
		matched = matchMemo(i-1, j-1, pattern, text, opts, memo)
	case pattern[i] == opts.Star:
		// Empty run or swallow one text character.
		matched = matchMemo(i-1, j, pattern, text, opts, memo) ||
			matchMemo(i, j-1, pattern, text, opts, memo)
	}
	memo[i][j] = 0
	if matched {
		memo[i][j] = 1
	}
	return matched
}

// matchTab fills the (n+1)×(m+1) lattice row by row over two rolling
// rows; prev is the row for one fewer pattern character.
func matchTab(pattern, text string, opts Options) bool {
	n, m := len(pattern), len(text)
	prev := make([]bool, m+1)
	cur := make([]bool, m+1)
	prev[0] = true // empty pattern vs empty text
	for i := 1; i <= n; i++ {
		cur[0] = prev[0] && pattern[i-1] == opts.Star // all-Star prefix
		for j := 1; j <= m; j++ {
			switch {
			case pattern[i-1] == text[j-1] || pattern[i-1] == opts.Any:
				cur[j] = prev[j-1]
			case pattern[i-1] == opts.Star:
				cur[j] = prev[j] || cur[j-1]
			default:
				cur[j] = false
			}
		}
		prev, cur = cur, prev
	}
	return prev[m]
}

// unset marks an uncomputed tri-state memo entry.
const unset int8 = -1
