package solver

import (
	"fmt"
	"strings"
)

// WordLength is the fixed number of letters in every guess and solution.
const WordLength = 5

// ParseWord lowercases s and checks that it is exactly WordLength letters
// a–z. Surrounding whitespace is an error, not something to strip.
func ParseWord(s string) (string, error) {
	w := strings.ToLower(s)
	if len(w) != WordLength {
		return "", fmt.Errorf("%w: %q is not %d letters", ErrInvalidInput, s, WordLength)
	}
	if !isAlpha(w) {
		return "", fmt.Errorf("%w: %q contains characters outside a-z", ErrInvalidInput, s)
	}
	return w, nil
}

// ParseWords normalizes every word in list, keeping order. The first
// invalid word aborts with ErrInvalidInput.
func ParseWords(list []string) ([]string, error) {
	out := make([]string, len(list))
	for i, s := range list {
		w, err := ParseWord(s)
		if err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}
