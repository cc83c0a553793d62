package subset_test

import (
	"testing"

	"github.com/ravlenko/optsub/eval"
	"github.com/ravlenko/optsub/subset"
)

// benchmarkCount runs CountSubsets over n predictable values with a
// target near half the total.
func benchmarkCount(b *testing.B, n int, strat eval.Strategy) {
	values := make([]int, n)
	total := 0
	for i := range values {
		values[i] = 1 + i%9
		total += values[i]
	}
	opts := subset.Options{Strategy: strat}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := subset.CountSubsets(values, total/2, opts); err != nil {
			b.Fatalf("CountSubsets failed: %v", err)
		}
	}
}

// BenchmarkCountSubsets_TopDown benchmarks memoized counting over 40 values.
func BenchmarkCountSubsets_TopDown(b *testing.B) {
	benchmarkCount(b, 40, eval.TopDown)
}

// BenchmarkCountSubsets_BottomUp benchmarks single-row counting over 40 values.
func BenchmarkCountSubsets_BottomUp(b *testing.B) {
	benchmarkCount(b, 40, eval.BottomUp)
}
