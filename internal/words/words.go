// internal/words/words.go
//
// Word List Provider for the solver.
//
// Responsibilities:
//   - Load the answer list (possible solutions) and the allowed guess list from
//     environment-provided files or fall back to the embedded defaults in assets.
//   - Keep both lists ordered; ranking ties are broken by allowed-list order.
//   - Maintain sets for quick lookups.
//
// Initialization behavior (Init):
//  1. If WORDS_ANSWERS_FILE and WORDS_ALLOWED_FILE are both set,
//     load answers from the first and allowed guesses from the second.
//  2. If only WORDS_ALLOWED_FILE is set,
//     load that file and use it for both answers and allowed guesses.
//  3. If neither is set, use the embedded assets.
//
// Constraints:
//   - Words must be 5 letters a–z; anything else is skipped.
//   - Lists are normalized to lowercase and de-duplicated, first occurrence wins.
//   - Allowed always contains every answer.

package words

import (
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/robalobadob/wordlesolver/assets"
	"github.com/robalobadob/wordlesolver/internal/solver"
)

// ErrNoAnswers is returned when the answers list ends up empty.
var ErrNoAnswers = errors.New("words: answers list is empty")

// Lists is a loaded pair of word lists.
type Lists struct {
	answers    []string
	allowed    []string
	answersSet map[string]struct{}
	allowedSet map[string]struct{}
}

// Load builds Lists from files. Empty paths follow the same fallback rules
// as Init.
func Load(answersPath, allowedPath string) (*Lists, error) {
	var ansList, allowList []string
	var err error

	switch {
	case answersPath != "" && allowedPath != "":
		if ansList, err = readWordFile(answersPath); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}

	case allowedPath != "":
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}
		ansList = allowList

	default:
		if ansList, err = assets.AnswersList(); err != nil {
			return nil, err
		}
		if allowList, err = assets.AllowedList(); err != nil {
			return nil, err
		}
	}
	return New(ansList, allowList)
}

// New normalizes the given lists. Allowed keeps its own order, followed by
// any answers it did not already contain.
func New(ansList, allowList []string) (*Lists, error) {
	l := &Lists{}
	l.answers, l.answersSet = normalize(ansList)
	l.allowed, l.allowedSet = normalize(allowList)
	for _, w := range l.answers {
		if _, ok := l.allowedSet[w]; !ok {
			l.allowed = append(l.allowed, w)
			l.allowedSet[w] = struct{}{}
		}
	}
	if len(l.answers) == 0 {
		return nil, ErrNoAnswers
	}
	return l, nil
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return assets.ReadLines(f)
}

// normalize keeps valid words in first-seen order and returns their set.
func normalize(list []string) ([]string, map[string]struct{}) {
	out := make([]string, 0, len(list))
	set := make(map[string]struct{}, len(list))
	for _, s := range list {
		w, err := solver.ParseWord(strings.TrimSpace(s))
		if err != nil {
			continue
		}
		if _, dup := set[w]; dup {
			continue
		}
		set[w] = struct{}{}
		out = append(out, w)
	}
	return out, set
}

// Answers returns the possible solutions in list order.
func (l *Lists) Answers() []string { return l.answers }

// Allowed returns every permitted guess in list order.
func (l *Lists) Allowed() []string { return l.allowed }

// IsAllowed reports whether w is a valid guess.
func (l *Lists) IsAllowed(w string) bool {
	w, err := solver.ParseWord(w)
	if err != nil {
		return false
	}
	_, ok := l.allowedSet[w]
	return ok
}

// Stats returns counts of loaded words: (answers, allowed).
func (l *Lists) Stats() (answersCount int, allowedCount int) {
	return len(l.answers), len(l.allowed)
}

var (
	initOnce   sync.Once
	defaults   *Lists
	initialErr error
)

// Init loads the process-wide lists exactly once from WORDS_ANSWERS_FILE /
// WORDS_ALLOWED_FILE or the embedded defaults.
func Init() error {
	initOnce.Do(func() {
		defaults, initialErr = Load(os.Getenv("WORDS_ANSWERS_FILE"), os.Getenv("WORDS_ALLOWED_FILE"))
	})
	return initialErr
}

// Default returns the lists loaded by Init, or nil before a successful Init.
func Default() *Lists { return defaults }
