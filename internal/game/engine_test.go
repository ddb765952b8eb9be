package game_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordlesolver/internal/game"
	"github.com/robalobadob/wordlesolver/internal/solver"
)

var toy = []string{"abide", "abode", "above", "abuse", "abyss"}

func mask(t *testing.T, guess, solution string) solver.Mask {
	t.Helper()
	m, err := solver.Encode(guess, solution)
	require.NoError(t, err)
	return m
}

func TestNew(t *testing.T) {
	s := game.New(toy, toy)
	assert.Len(t, s.ID, 16)
	assert.Equal(t, game.StateSolving, s.State())
	assert.Equal(t, toy, s.Remaining())
	assert.Equal(t, 5, s.RemainingCount())
	assert.Empty(t, s.Turns())
	assert.NotEqual(t, s.ID, game.New(toy, toy).ID)
}

func TestApplyGuess_Narrows(t *testing.T) {
	s := game.New(toy, toy)

	left, state, err := s.ApplyGuess("abuse", mask(t, "abuse", "above"))
	require.NoError(t, err)
	assert.Equal(t, 3, left)
	assert.Equal(t, game.StateSolving, state)
	assert.Equal(t, []string{"abide", "abode", "above"}, s.Remaining())

	left, state, err = s.ApplyGuess("ABODE", mask(t, "abode", "above"))
	require.NoError(t, err)
	assert.Equal(t, 1, left)
	assert.Equal(t, game.StateSolving, state)
	assert.Equal(t, []string{"above"}, s.Remaining())

	left, state, err = s.ApplyGuess("above", solver.AllCorrect)
	require.NoError(t, err)
	assert.Equal(t, 1, left)
	assert.Equal(t, game.StateSolved, state)

	turns := s.Turns()
	require.Len(t, turns, 3)
	assert.Equal(t, "abode", turns[1].Guess)
	assert.Equal(t, 3, turns[0].Remaining)

	_, _, err = s.ApplyGuess("abide", 0)
	assert.ErrorIs(t, err, game.ErrSessionFinished)
}

func TestApplyGuess_Exhausted(t *testing.T) {
	s := game.New(toy, toy)
	// No toy word lacks both a and b.
	left, state, err := s.ApplyGuess("abide", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, left)
	assert.Equal(t, game.StateExhausted, state)

	_, err = s.Suggest(context.Background(), solver.RankOptions{})
	assert.ErrorIs(t, err, solver.ErrInvalidState)
}

func TestApplyGuess_Rejects(t *testing.T) {
	s := game.New(toy, toy)

	_, _, err := s.ApplyGuess("crane", 0)
	assert.ErrorIs(t, err, game.ErrNotAllowed)

	_, _, err = s.ApplyGuess("abid", 0)
	assert.ErrorIs(t, err, solver.ErrInvalidInput)

	_, _, err = s.ApplyGuess("abide", solver.Mask(250))
	assert.ErrorIs(t, err, solver.ErrInvalidInput)

	assert.Equal(t, 5, s.RemainingCount())
	assert.Empty(t, s.Turns())
}

func TestSuggest(t *testing.T) {
	s := game.New(toy, toy)
	best, err := s.Suggest(context.Background(), solver.RankOptions{Workers: 2})
	require.NoError(t, err)
	assert.Equal(t, "abode", best.Guess)

	_, _, err = s.ApplyGuess("abode", mask(t, "abode", "abyss"))
	require.NoError(t, err)
	best, err = s.Suggest(context.Background(), solver.RankOptions{})
	require.NoError(t, err)
	assert.Equal(t, "abyss", best.Guess, "a single candidate is returned as is")
}

// Playing the suggestions against a known answer always reaches it.
func TestSuggest_ConvergesOnToy(t *testing.T) {
	for _, answer := range toy {
		s := game.New(toy, toy)
		for i := 0; i < len(toy) && s.State() == game.StateSolving; i++ {
			best, err := s.Suggest(context.Background(), solver.RankOptions{})
			require.NoError(t, err)
			_, _, err = s.ApplyGuess(best.Guess, mask(t, best.Guess, answer))
			require.NoError(t, err)
		}
		assert.Equal(t, game.StateSolved, s.State(), answer)
		assert.Equal(t, []string{answer}, s.Remaining())
	}
}
