// internal/game/types.go
//
// Core type definitions for a solving session.
// Defines:
//   - State: where the session stands (solving/solved/exhausted).
//   - Turn: one guess and the feedback observed for it.
//   - Session: the allowed guesses plus the candidates still consistent with
//     every turn so far.

package game

import (
	"errors"
	"sync"

	"github.com/bits-and-blooms/bitset"

	"github.com/robalobadob/wordlesolver/internal/solver"
)

// State is a coarse description of a session.
type State string

const (
	StateSolving   State = "solving"
	StateSolved    State = "solved"    // last feedback was all correct
	StateExhausted State = "exhausted" // feedback contradicts every candidate
)

var (
	// ErrSessionFinished is returned when feedback arrives after the session ended.
	ErrSessionFinished = errors.New("game: session finished")
	// ErrNotAllowed is returned for a guess outside the allowed list.
	ErrNotAllowed = errors.New("game: guess not in allowed list")
)

// Turn is one applied guess.
type Turn struct {
	Guess     string      `json:"guess"`
	Mask      solver.Mask `json:"mask"`
	Remaining int         `json:"remaining"`
}

// Session tracks one caller working towards an unknown solution.
type Session struct {
	ID string

	mu        sync.RWMutex
	allowed   []string
	allowedOK map[string]struct{}
	solutions []string
	remaining *bitset.BitSet // bit i set while solutions[i] is still possible
	turns     []Turn
	state     State
}
