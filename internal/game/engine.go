// internal/game/engine.go
//
// Solving session following the caller protocol:
//   - Suggest the best guess for the remaining candidates.
//   - Apply the feedback observed for a guess, narrowing the candidates.
//   - Track state transitions: solving → solved/exhausted.
//
// Notes:
//   - The session never knows the answer; feedback comes from the caller.
//   - Candidates are a bitset over the original solutions list, so narrowing
//     only clears bits and the remaining pool keeps list order.
//   - randomID() is a compact hex identifier for correlating server state.

package game

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/robalobadob/wordlesolver/internal/solver"
)

// New constructs a session with every solution still possible. Both lists
// are expected to be normalized already, as words.Lists provides them.
func New(allowed, solutions []string) *Session {
	remaining := bitset.New(uint(len(solutions)))
	remaining.FlipRange(0, uint(len(solutions)))

	ok := make(map[string]struct{}, len(allowed))
	for _, w := range allowed {
		ok[w] = struct{}{}
	}
	return &Session{
		ID:        randomID(),
		allowed:   allowed,
		allowedOK: ok,
		solutions: solutions,
		remaining: remaining,
		state:     StateSolving,
	}
}

// State reports where the session stands.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Turns returns a copy of the applied turns, oldest first.
func (s *Session) Turns() []Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Turn(nil), s.turns...)
}

// RemainingCount is the number of candidates still possible.
func (s *Session) RemainingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int(s.remaining.Count())
}

// Remaining returns the candidates still possible, in solutions order.
func (s *Session) Remaining() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pool()
}

func (s *Session) pool() []string {
	out := make([]string, 0, s.remaining.Count())
	for i, ok := s.remaining.NextSet(0); ok; i, ok = s.remaining.NextSet(i + 1) {
		out = append(out, s.solutions[i])
	}
	return out
}

// Suggest returns the best next guess against the remaining candidates.
// With a single candidate left that candidate is returned without ranking.
func (s *Session) Suggest(ctx context.Context, opts solver.RankOptions) (solver.Scored, error) {
	s.mu.RLock()
	state := s.state
	pool := s.pool()
	s.mu.RUnlock()

	if state != StateSolving {
		return solver.Scored{}, fmt.Errorf("%w: session is %s", solver.ErrInvalidState, state)
	}
	if len(pool) == 1 {
		return solver.Scored{Guess: pool[0], Score: solver.InPoolBonus}, nil
	}
	return solver.BestGuessContext(ctx, s.allowed, pool, opts)
}

// ApplyGuess narrows the candidates to those consistent with mask observed
// for guess. It returns the number of candidates left and the new state.
//
// Validation rules:
//   - Session must still be solving.
//   - Guess must be 5 letters a–z and in the allowed list.
//   - Mask must be in [0,242].
func (s *Session) ApplyGuess(guess string, mask solver.Mask) (int, State, error) {
	c, err := solver.Decode(mask, guess)
	if err != nil {
		return 0, s.State(), err
	}
	guess, _ = solver.ParseWord(guess)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateSolving {
		return int(s.remaining.Count()), s.state, ErrSessionFinished
	}
	if _, ok := s.allowedOK[guess]; !ok {
		return int(s.remaining.Count()), s.state, fmt.Errorf("%w: %s", ErrNotAllowed, guess)
	}

	for i, ok := s.remaining.NextSet(0); ok; i, ok = s.remaining.NextSet(i + 1) {
		if !solver.Matches(s.solutions[i], c) {
			s.remaining.Clear(i)
		}
	}
	left := int(s.remaining.Count())
	s.turns = append(s.turns, Turn{Guess: guess, Mask: mask, Remaining: left})

	switch {
	case mask == solver.AllCorrect:
		s.state = StateSolved
	case left == 0:
		s.state = StateExhausted
	}
	return left, s.state, nil
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
