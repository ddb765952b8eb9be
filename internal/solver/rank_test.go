package solver_test

import (
	"context"
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordlesolver/internal/solver"
)

func TestBestGuess_Toy(t *testing.T) {
	best, err := solver.BestGuess(toyPool, toyPool)
	require.NoError(t, err)
	assert.Equal(t, "abode", best)

	bestScore, err := solver.Score(best, toyPool)
	require.NoError(t, err)
	assert.InDelta(t, math.Log2(5)+solver.InPoolBonus, bestScore, 1e-12)
	for _, g := range toyPool {
		s, err := solver.Score(g, toyPool)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, bestScore, s, g)
	}
}

func TestBestGuess_UppercaseInput(t *testing.T) {
	best, err := solver.BestGuess([]string{"ABIDE", "ABODE"}, []string{"ABIDE", "ABODE", "ABOVE", "ABUSE", "ABYSS"})
	require.NoError(t, err)
	assert.Equal(t, "abode", best)
}

// abide and above split the toy pool identically, so whichever is listed
// first wins.
func TestBestGuess_TieGoesToEarliest(t *testing.T) {
	best, err := solver.BestGuess([]string{"abide", "above"}, toyPool)
	require.NoError(t, err)
	assert.Equal(t, "abide", best)

	best, err = solver.BestGuess([]string{"above", "abide"}, toyPool)
	require.NoError(t, err)
	assert.Equal(t, "above", best)
}

func TestBestGuess_PoolMemberBonus(t *testing.T) {
	// Against a two-word pool both guesses split it in half; only abide can win outright.
	pool := []string{"abide", "abode"}
	outside, err := solver.Score("xxxix", pool)
	require.NoError(t, err)
	inside, err := solver.Score("abide", pool)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, outside, 1e-12)
	assert.InDelta(t, 1.0+solver.InPoolBonus, inside, 1e-12)

	best, err := solver.BestGuess([]string{"xxxix", "abide"}, pool)
	require.NoError(t, err)
	assert.Equal(t, "abide", best)
}

func TestBestGuess_Deterministic(t *testing.T) {
	first, err := solver.BestGuess(sampleWords, sampleWords)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := solver.BestGuess(sampleWords, sampleWords)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestBestGuess_EmptyInputs(t *testing.T) {
	_, err := solver.BestGuess(toyPool, nil)
	assert.ErrorIs(t, err, solver.ErrInvalidState)

	_, err = solver.BestGuess(nil, toyPool)
	assert.ErrorIs(t, err, solver.ErrInvalidState)

	_, err = solver.BestGuess([]string{"abide", "toolong"}, toyPool)
	assert.ErrorIs(t, err, solver.ErrInvalidInput)
}

func TestRank_ParallelMatchesSequential(t *testing.T) {
	ctx := context.Background()
	seq, err := solver.Rank(ctx, sampleWords, sampleWords, solver.RankOptions{Workers: 1})
	require.NoError(t, err)
	par, err := solver.Rank(ctx, sampleWords, sampleWords, solver.RankOptions{Workers: 8})
	require.NoError(t, err)
	assert.Equal(t, seq, par)

	best, err := solver.BestGuess(sampleWords, sampleWords)
	require.NoError(t, err)
	assert.Equal(t, best, seq[0].Guess)
	for i := 1; i < len(seq); i++ {
		assert.GreaterOrEqual(t, seq[i-1].Score, seq[i].Score)
	}
}

func TestRank_ToyOrder(t *testing.T) {
	got, err := solver.Rank(context.Background(), toyPool, toyPool, solver.RankOptions{})
	require.NoError(t, err)

	order := make([]string, len(got))
	for i, s := range got {
		order[i] = s.Guess
	}
	assert.Equal(t, []string{"abode", "abide", "above", "abuse", "abyss"}, order)
}

func TestRank_Progress(t *testing.T) {
	var calls atomic.Int64
	_, err := solver.Rank(context.Background(), sampleWords, toyPool, solver.RankOptions{
		Workers:  4,
		Progress: func() { calls.Add(1) },
	})
	require.NoError(t, err)
	assert.Equal(t, int64(len(sampleWords)), calls.Load())
}

func TestRank_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := solver.Rank(ctx, sampleWords, sampleWords, solver.RankOptions{Workers: 2})
	assert.ErrorIs(t, err, context.Canceled)
}
