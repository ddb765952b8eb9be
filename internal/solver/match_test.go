package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordlesolver/internal/solver"
)

func TestMatches(t *testing.T) {
	// eerie against three: e exactly twice, not in slot 0, r in slot 2, e in slot 4, no i.
	c := decodeDigits(t, "10202", "eerie")

	tests := []struct {
		word string
		want bool
	}{
		{"three", true},
		{"THREE", true},
		{"spree", true},
		{"eerie", false}, // e in slot 0 and an i
		{"there", false}, // r not in slot 2
		{"crepe", false}, // r not in slot 2
		{"xeree", false}, // three e's
		{"tree", false},  // too short
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, solver.Matches(tt.word, c))
		})
	}
}

func TestFilterPool_OrderAndIdempotence(t *testing.T) {
	c := decodeDigits(t, "22000", "abxyz")
	pool := []string{"abyss", "cigar", "abide", "about", "abode", "label"}

	once := solver.FilterPool(pool, c)
	assert.Equal(t, []string{"abide", "about", "abode"}, once)
	assert.Equal(t, once, solver.FilterPool(once, c))
	assert.Empty(t, solver.FilterPool(nil, c))
}

// A solution always satisfies the constraint its own feedback implies.
func TestRoundTrip(t *testing.T) {
	for _, g := range sampleWords {
		for _, s := range sampleWords {
			m, err := solver.Encode(g, s)
			require.NoError(t, err)
			c, err := solver.Decode(m, g)
			require.NoError(t, err)
			assert.True(t, solver.Matches(s, c), "%s does not satisfy its own mask %s for %s", s, m, g)
		}
	}
}

func TestRefine(t *testing.T) {
	got, err := solver.Refine(toyPool, "abuse", "abode")
	require.NoError(t, err)
	// abuse gets 22002 against abide, abode and above alike.
	assert.Equal(t, []string{"abide", "abode", "above"}, got)

	_, err = solver.Refine(toyPool, "abuses", "abode")
	assert.ErrorIs(t, err, solver.ErrInvalidInput)
}
