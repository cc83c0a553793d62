package frog_test

import (
	"math/rand"
	"testing"

	"github.com/ravlenko/optsub/eval"
	"github.com/ravlenko/optsub/frog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMinCost_ClassicInstance verifies the classic four-stone instance:
// heights [10,20,30,10] have a true minimum of 20, and the
// engine must not settle for the greedy 30.
func TestMinCost_ClassicInstance(t *testing.T) {
	heights := []int{10, 20, 30, 10}
	for _, strat := range []eval.Strategy{eval.TopDown, eval.BottomUp} {
		opts := frog.DefaultOptions()
		opts.Strategy = strat

		got, err := frog.MinCost(heights, opts)
		require.NoError(t, err)
		assert.Equal(t, int64(20), got, "minimal cost for [10,20,30,10] (%s)", strat)
	}
}

// TestMinCost_SingleStone verifies a single stone costs nothing.
func TestMinCost_SingleStone(t *testing.T) {
	got, err := frog.MinCost([]int{42}, frog.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)
}

// TestMinCost_StrategiesAgree exercises random small instances across
// several jump bounds against the brute-force oracle.
func TestMinCost_StrategiesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(12)
		heights := make([]int, n)
		for i := range heights {
			heights[i] = rng.Intn(100) - 50
		}
		k := 1 + rng.Intn(4)
		want := bruteMinCost(n-1, heights, k)

		opts := frog.Options{MaxJump: k, Strategy: eval.TopDown}
		td, err := frog.MinCost(heights, opts)
		require.NoError(t, err)

		opts.Strategy = eval.BottomUp
		bu, err := frog.MinCost(heights, opts)
		require.NoError(t, err)

		assert.Equal(t, want, td, "top-down vs oracle, n=%d k=%d", n, k)
		assert.Equal(t, want, bu, "bottom-up vs oracle, n=%d k=%d", n, k)
	}
}

// TestMinCost_WiderReachNeverHurts verifies a larger MaxJump can only
// lower (or keep) the optimum.
func TestMinCost_WiderReachNeverHurts(t *testing.T) {
	heights := []int{30, 10, 60, 10, 60, 50}
	prev := int64(1 << 40)
	for k := 1; k <= 5; k++ {
		opts := frog.DefaultOptions()
		opts.MaxJump = k
		got, err := frog.MinCost(heights, opts)
		require.NoError(t, err)
		assert.LessOrEqual(t, got, prev, "cost must be monotone in reach, k=%d", k)
		prev = got
	}
}

// TestMinCost_InvalidInstance covers the error paths.
func TestMinCost_InvalidInstance(t *testing.T) {
	_, err := frog.MinCost(nil, frog.DefaultOptions())
	assert.ErrorIs(t, err, frog.ErrEmptyHeights)

	opts := frog.DefaultOptions()
	opts.MaxJump = 0
	_, err = frog.MinCost([]int{1, 2}, opts)
	assert.ErrorIs(t, err, frog.ErrNonPositiveJump)

	bad := frog.DefaultOptions()
	bad.Strategy = eval.Strategy(5)
	_, err = frog.MinCost([]int{1, 2}, bad)
	assert.ErrorIs(t, err, eval.ErrUnknownStrategy)
}

// TestMinCost_Idempotent verifies repeated evaluation of the same
// instance yields the same answer and leaves the instance unchanged.
func TestMinCost_Idempotent(t *testing.T) {
	heights := []int{10, 30, 40, 20}
	snapshot := append([]int(nil), heights...)
	opts := frog.DefaultOptions()

	first, err := frog.MinCost(heights, opts)
	require.NoError(t, err)
	second, err := frog.MinCost(heights, opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, heights, "instance must never be mutated")
}
