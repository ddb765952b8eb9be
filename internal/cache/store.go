package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when no entry exists for a key.
var ErrNotFound = errors.New("cache: entry not found")

// Entry is a cached BestGuess result.
type Entry struct {
	Guess       string  `json:"guess"`
	Entropy     float64 `json:"entropy"`
	Score       float64 `json:"score"`
	PoolSize    int     `json:"poolSize"`
	AllowedSize int     `json:"allowedSize"`
}

// Store is a SQLite-backed best-guess cache.
type Store struct{ db *sql.DB }

// Open opens the database at dsn and applies migrations.
func Open(dsn string) (*Store, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// Get returns the entry stored under key, or ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) (Entry, error) {
	var e Entry
	err := s.db.QueryRowContext(ctx,
		`SELECT guess, entropy, score, pool_size, allowed_size FROM best_guesses WHERE key=?`, key,
	).Scan(&e.Guess, &e.Entropy, &e.Score, &e.PoolSize, &e.AllowedSize)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, ErrNotFound
	}
	if err != nil {
		return Entry{}, fmt.Errorf("cache get: %w", err)
	}
	return e, nil
}

// Put stores e under key, replacing any previous entry.
func (s *Store) Put(ctx context.Context, key string, e Entry) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO best_guesses (key, guess, entropy, score, pool_size, allowed_size)
        VALUES (?, ?, ?, ?, ?, ?)
        ON CONFLICT(key) DO UPDATE SET
            guess=excluded.guess, entropy=excluded.entropy, score=excluded.score,
            pool_size=excluded.pool_size, allowed_size=excluded.allowed_size`,
		key, e.Guess, e.Entropy, e.Score, e.PoolSize, e.AllowedSize,
	)
	if err != nil {
		return fmt.Errorf("cache put: %w", err)
	}
	return nil
}

// Len returns the number of cached entries.
func (s *Store) Len(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM best_guesses`).Scan(&n)
	return n, err
}
