package solver

// Matches reports whether word is consistent with c: every located letter is
// in place, no position holds a letter ruled out there, and every bounded
// letter occurs within [Min, Max] times. Words that are not WordLength long
// never match.
func Matches(word string, c Constraint) bool {
	if len(word) != WordLength {
		return false
	}

	var counts [256]int
	for i := 0; i < WordLength; i++ {
		l := lower(word[i])
		if c.Located[i] != 0 && l != c.Located[i] {
			return false
		}
		for _, u := range c.Unlocated[i] {
			if l == u {
				return false
			}
		}
		counts[l]++
	}

	for l, b := range c.Letters {
		if n := counts[l]; n < b.Min || n > b.Max {
			return false
		}
	}
	return true
}

// FilterPool returns the words of pool that match c, in their original
// order. Filtering an already filtered pool by the same c changes nothing.
func FilterPool(pool []string, c Constraint) []string {
	out := make([]string, 0, len(pool))
	for _, w := range pool {
		if Matches(w, c) {
			out = append(out, w)
		}
	}
	return out
}

// Refine narrows pool to the words consistent with the feedback guess would
// receive against solution.
func Refine(pool []string, guess, solution string) ([]string, error) {
	m, err := Encode(guess, solution)
	if err != nil {
		return nil, err
	}
	c, err := Decode(m, guess)
	if err != nil {
		return nil, err
	}
	return FilterPool(pool, c), nil
}
