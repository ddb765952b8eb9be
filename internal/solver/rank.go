package solver

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// InPoolBonus is added to a guess's score when the guess could itself be
// the answer, so such guesses win otherwise equal comparisons.
const InPoolBonus = 0.001

// Scored is a guess with its expected information against a pool.
type Scored struct {
	Guess   string  `json:"guess"`
	Entropy float64 `json:"entropy"`
	Score   float64 `json:"score"`
}

// RankOptions tunes Rank and BestGuessContext.
type RankOptions struct {
	// Workers bounds concurrent scoring. 0 means GOMAXPROCS; 1 scores sequentially.
	Workers int
	// Progress, if set, is called once per scored guess. It may be called
	// from several goroutines at once.
	Progress func()
}

// Score returns Entropy(guess, pool) plus InPoolBonus when guess is in pool.
func Score(guess string, pool []string) (float64, error) {
	if len(pool) == 0 {
		return 0, fmt.Errorf("%w: score against an empty pool", ErrInvalidState)
	}
	g, err := ParseWord(guess)
	if err != nil {
		return 0, err
	}
	p, err := ParseWords(pool)
	if err != nil {
		return 0, err
	}
	return score(g, p, toSet(p)).Score, nil
}

func score(guess string, pool []string, inPool map[string]struct{}) Scored {
	h := entropy(guess, pool)
	s := Scored{Guess: guess, Entropy: h, Score: h}
	if _, ok := inPool[guess]; ok {
		s.Score += InPoolBonus
	}
	return s
}

// BestGuess returns the allowed guess with the highest Score against pool.
// Ties go to the guess that appears first in allowed.
func BestGuess(allowed, pool []string) (string, error) {
	best, err := BestGuessContext(context.Background(), allowed, pool, RankOptions{})
	if err != nil {
		return "", err
	}
	return best.Guess, nil
}

// BestGuessContext is BestGuess with cancellation, worker and progress control.
func BestGuessContext(ctx context.Context, allowed, pool []string, opts RankOptions) (Scored, error) {
	scores, err := scoreAll(ctx, allowed, pool, opts)
	if err != nil {
		return Scored{}, err
	}
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i].Score > scores[best].Score {
			best = i
		}
	}
	return scores[best], nil
}

// Rank scores every allowed guess and returns them best first. Equal scores
// keep their order from allowed, so Rank(...)[0] is the BestGuess.
func Rank(ctx context.Context, allowed, pool []string, opts RankOptions) ([]Scored, error) {
	scores, err := scoreAll(ctx, allowed, pool, opts)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Score > scores[j].Score })
	return scores, nil
}

// scoreAll scores allowed against pool, result index i belonging to allowed[i].
// Each guess is scored independently, so the fan-out does not change results.
func scoreAll(ctx context.Context, allowed, pool []string, opts RankOptions) ([]Scored, error) {
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: pool is empty", ErrInvalidState)
	}
	if len(allowed) == 0 {
		return nil, fmt.Errorf("%w: no allowed guesses", ErrInvalidState)
	}
	guesses, err := ParseWords(allowed)
	if err != nil {
		return nil, err
	}
	p, err := ParseWords(pool)
	if err != nil {
		return nil, err
	}
	inPool := toSet(p)

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]Scored, len(guesses))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, guess := range guesses {
		i, guess := i, guess
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = score(guess, p, inPool)
			if opts.Progress != nil {
				opts.Progress()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}
