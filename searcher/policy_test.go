package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUCT(t *testing.T) {
	t.Run("Parents need at least one visit", func(t *testing.T) {
		require.Panics(t, func() { newUCT(CSquared, 0) })
		require.Panics(t, func() { newUCT(CSquared, 0.5) })
		require.NotPanics(t, func() { newUCT(CSquared, 1) })
	})

	t.Run("Children need at least one visit", func(t *testing.T) {
		require.Panics(t, func() { newUCT(CSquared, 100).evaluate(5, 0) })
	})

	t.Run("Score is mean reward plus exploration", func(t *testing.T) {
		got := newUCT(CSquared, 100).evaluate(5, 10)
		require.InDelta(t, 5.0/10+math.Sqrt(CSquared*math.Log(100)/10), got, 1e-9)
	})

	t.Run("A single parent visit leaves only the mean", func(t *testing.T) {
		require.Equal(t, -0.5, newUCT(CSquared, 1).evaluate(-2, 4))
	})

	t.Run("Exploration grows with parent visits and shrinks with child visits", func(t *testing.T) {
		require.Greater(t, newUCT(CSquared, 1000).evaluate(5, 10), newUCT(CSquared, 100).evaluate(5, 10))
		require.Greater(t, newUCT(CSquared, 100).evaluate(0, 10), newUCT(CSquared, 100).evaluate(0, 20))
	})

	t.Run("Exploitation grows with rewards", func(t *testing.T) {
		policy := newUCT(CSquared, 100)
		require.Greater(t, policy.evaluate(10, 10), policy.evaluate(5, 10))
	})
}
