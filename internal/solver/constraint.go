package solver

import "fmt"

// Bounds is an inclusive range on how many times a letter occurs in the
// solution.
type Bounds struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Constraint is everything a single mask reveals about the solution.
type Constraint struct {
	// Located holds the confirmed letter per position, 0 when unknown.
	Located [WordLength]byte
	// Unlocated holds letters known to be in the solution but not at that position.
	Unlocated [WordLength][]byte
	// Letters bounds the occurrence count of every letter the guess touched.
	Letters map[byte]Bounds
}

// Decode derives the Constraint implied by receiving mask for guess.
func Decode(mask Mask, guess string) (Constraint, error) {
	if !mask.Valid() {
		return Constraint{}, fmt.Errorf("%w: mask %d is not in [0,%d]", ErrInvalidInput, mask, MaskCount-1)
	}
	g, err := ParseWord(guess)
	if err != nil {
		return Constraint{}, err
	}
	return decode(mask, g), nil
}

// decode walks the guess twice. Correct positions go first; then absent and
// present positions are handled together, left to right. An absent letter
// caps its count at the minimum accumulated so far in that sweep, so a
// present occurrence further right is not yet counted. This mirrors the
// feedback Encode produces and must stay in this order.
func decode(mask Mask, guess string) Constraint {
	st := mask.Statuses()
	c := Constraint{Letters: make(map[byte]Bounds)}

	for i := 0; i < WordLength; i++ {
		if st[i] != Correct {
			continue
		}
		l := guess[i]
		c.Located[i] = l
		b := c.bounds(l)
		b.Min++
		c.Letters[l] = b
	}

	for i := 0; i < WordLength; i++ {
		l := guess[i]
		switch st[i] {
		case Absent:
			b := c.bounds(l)
			b.Max = b.Min
			c.Letters[l] = b
		case Present:
			c.Unlocated[i] = append(c.Unlocated[i], l)
			b := c.bounds(l)
			b.Min++
			c.Letters[l] = b
		}
	}
	return c
}

// bounds returns the current bounds for l, defaulting to {0, WordLength}.
func (c *Constraint) bounds(l byte) Bounds {
	if b, ok := c.Letters[l]; ok {
		return b
	}
	return Bounds{Min: 0, Max: WordLength}
}

// Pattern renders Located with '.' for unknown positions, e.g. "ab..e".
func (c Constraint) Pattern() string {
	b := make([]byte, WordLength)
	for i, l := range c.Located {
		if l == 0 {
			b[i] = '.'
			continue
		}
		b[i] = l
	}
	return string(b)
}
