package subset_test

import (
	"math/rand"
	"testing"

	"github.com/ravlenko/optsub/eval"
	"github.com/ravlenko/optsub/subset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// strategies is shared by every subset test sweeping both evaluation modes.
var strategies = []eval.Strategy{eval.TopDown, eval.BottomUp}

// TestSumExists_Known verifies hand-checked instances: reachable and
// unreachable targets, and the always-true target 0.
func TestSumExists_Known(t *testing.T) {
	cases := []struct {
		name   string
		values []int
		target int
		want   bool
	}{
		{"classic reachable", []int{1, 2, 3, 4}, 4, true},
		{"unreachable gap", []int{2, 4, 6}, 5, false},
		{"empty subset", []int{7, 9}, 0, true},
		{"full sum", []int{3, 5, 8}, 16, true},
		{"beyond total", []int{1, 2}, 10, false},
	}
	for _, tc := range cases {
		for _, strat := range strategies {
			got, err := subset.SumExists(tc.values, tc.target, subset.Options{Strategy: strat})
			require.NoError(t, err)
			assert.Equal(t, tc.want, got, "%s (%s)", tc.name, strat)
		}
	}
}

// TestSumExists_StrategiesAgree sweeps random instances against the
// brute-force oracle over every target up to the total.
func TestSumExists_StrategiesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(53))
	for trial := 0; trial < 60; trial++ {
		n := 1 + rng.Intn(10)
		values := make([]int, n)
		total := 0
		for i := range values {
			values[i] = 1 + rng.Intn(9)
			total += values[i]
		}
		for target := 0; target <= total+2; target++ {
			want := bruteExists(0, 0, target, values)
			for _, strat := range strategies {
				got, err := subset.SumExists(values, target, subset.Options{Strategy: strat})
				require.NoError(t, err)
				assert.Equal(t, want, got, "trial=%d target=%d (%s)", trial, target, strat)
			}
		}
	}
}

// TestSumExists_InvalidInstance covers the error paths.
func TestSumExists_InvalidInstance(t *testing.T) {
	opts := subset.DefaultOptions()

	_, err := subset.SumExists(nil, 3, opts)
	assert.ErrorIs(t, err, subset.ErrEmptyValues)

	_, err = subset.SumExists([]int{1, -2}, 3, opts)
	assert.ErrorIs(t, err, subset.ErrNegativeValue)

	_, err = subset.SumExists([]int{1, 2}, -1, opts)
	assert.ErrorIs(t, err, subset.ErrNegativeTarget)

	_, err = subset.SumExists([]int{1}, 1, subset.Options{Strategy: eval.Strategy(4)})
	assert.ErrorIs(t, err, eval.ErrUnknownStrategy)
}
