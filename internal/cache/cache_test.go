package cache_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordlesolver/internal/cache"
)

func TestFingerprint(t *testing.T) {
	a := cache.Fingerprint([]string{"crane", "slate"}, []string{"abide"})
	assert.Len(t, a, 64)
	assert.Equal(t, a, cache.Fingerprint([]string{"crane", "slate"}, []string{"abide"}))
	assert.NotEqual(t, a, cache.Fingerprint([]string{"slate", "crane"}, []string{"abide"}), "allowed order matters")
	assert.NotEqual(t, a, cache.Fingerprint([]string{"crane"}, []string{"slate", "abide"}), "list boundary matters")
	assert.NotEqual(t,
		cache.Fingerprint([]string{"ab"}, nil),
		cache.Fingerprint([]string{"a", "b"}, nil))
}

func TestStore_PutGet(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "cache.db")

	s, err := cache.Open(dsn)
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Get(ctx, "missing")
	assert.ErrorIs(t, err, cache.ErrNotFound)

	e := cache.Entry{Guess: "abode", Entropy: 2.3219, Score: 2.3229, PoolSize: 5, AllowedSize: 5}
	require.NoError(t, s.Put(ctx, "k", e))
	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, e, got)

	e.Guess = "abide"
	require.NoError(t, s.Put(ctx, "k", e))
	got, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abide", got.Guess)

	n, err := s.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStore_ReopenKeepsEntriesAndMigrations(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "cache.db")

	s, err := cache.Open(dsn)
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, "k", cache.Entry{Guess: "crane"}))
	require.NoError(t, s.Close())

	s, err = cache.Open(dsn)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "crane", got.Guess)
}
