// internal/solver/mask.go
//
// Feedback masks for a guess evaluated against a solution.
//
// A Mask packs five per-letter statuses (absent=0, present=1, correct=2)
// into a base-3 integer in [0,242]; the leftmost letter is the most
// significant digit. Encode simulates the feedback a guess would receive,
// consuming solution letters so a repeated guess letter is never credited
// more times than it occurs in the solution.

package solver

import (
	"fmt"
	"strconv"
	"strings"
)

// Status is the feedback for one letter of a guess.
type Status uint8

const (
	Absent Status = iota
	Present
	Correct
)

// String returns the human-facing name used on the wire.
func (s Status) String() string {
	switch s {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Correct:
		return "correct"
	}
	return "status(" + strconv.Itoa(int(s)) + ")"
}

// MaskCount is the number of distinct masks (3^5).
const MaskCount = 243

// Mask is the feedback for a whole guess as a base-3 integer.
type Mask uint8

// AllCorrect is the mask of a guess equal to the solution.
const AllCorrect Mask = MaskCount - 1

// Encode returns the mask guess would receive if solution were the answer.
func Encode(guess, solution string) (Mask, error) {
	g, err := ParseWord(guess)
	if err != nil {
		return 0, err
	}
	s, err := ParseWord(solution)
	if err != nil {
		return 0, err
	}
	return encode(g, s), nil
}

// encode assumes both words are already normalized.
//
// Pass 1 marks exact matches and consumes those solution letters.
// Pass 2 gives each remaining guess letter the leftmost unconsumed
// occurrence of that letter in the solution, or Absent if none is left.
func encode(guess, solution string) Mask {
	var st [WordLength]Status
	var taken [WordLength]bool

	for i := 0; i < WordLength; i++ {
		if guess[i] == solution[i] {
			st[i] = Correct
			taken[i] = true
		}
	}

	for i := 0; i < WordLength; i++ {
		if st[i] == Correct {
			continue
		}
		for j := 0; j < WordLength; j++ {
			if !taken[j] && solution[j] == guess[i] {
				st[i] = Present
				taken[j] = true
				break
			}
		}
	}
	return MaskFromStatuses(st)
}

// MaskFromStatuses packs statuses, leftmost first.
func MaskFromStatuses(st [WordLength]Status) Mask {
	var m Mask
	for _, s := range st {
		m = m*3 + Mask(s)
	}
	return m
}

// Valid reports whether m is in [0,242].
func (m Mask) Valid() bool { return m < MaskCount }

// Statuses unpacks m, leftmost first.
func (m Mask) Statuses() [WordLength]Status {
	var st [WordLength]Status
	for i := WordLength - 1; i >= 0; i-- {
		st[i] = Status(m % 3)
		m /= 3
	}
	return st
}

// String renders m as five digits over {0,1,2}, e.g. "02112".
func (m Mask) String() string {
	var b strings.Builder
	b.Grow(WordLength)
	for _, s := range m.Statuses() {
		b.WriteByte('0' + byte(s))
	}
	return b.String()
}

// ParseMask accepts either the five-digit form ("02112") or a decimal
// integer in [0,242] ("67"). Five-character input is always read as digits.
func ParseMask(s string) (Mask, error) {
	s = strings.TrimSpace(s)
	if len(s) == WordLength {
		var st [WordLength]Status
		for i := 0; i < WordLength; i++ {
			if s[i] < '0' || s[i] > '2' {
				return 0, fmt.Errorf("%w: mask %q has digit outside 0-2", ErrInvalidInput, s)
			}
			st[i] = Status(s[i] - '0')
		}
		return MaskFromStatuses(st), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n >= MaskCount {
		return 0, fmt.Errorf("%w: mask %q is not in [0,%d]", ErrInvalidInput, s, MaskCount-1)
	}
	return Mask(n), nil
}
