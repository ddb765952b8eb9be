package solver_test

import "strings"

// toyPool is the five-word pool used by the ranking examples.
var toyPool = []string{"abide", "abode", "above", "abuse", "abyss"}

// sampleWords mixes common answers with words that repeat letters.
var sampleWords = strings.Fields(`
cigar rebut sissy humph awake blush focal evade naval serve
heath dwarf model karma stink grade quiet bench abate feign
major death fresh crust stool colon abase marry react batty
pride floss helix croak staff paper unfed whelp trawl outdo
adobe crazy sower repay digit crate cluck spike mimic pound
loyal alloy sheep three geese eerie llama hello sassy essay
`)

// distinctLetters reports whether w has no repeated letter.
func distinctLetters(w string) bool {
	seen := map[rune]bool{}
	for _, r := range w {
		if seen[r] {
			return false
		}
		seen[r] = true
	}
	return true
}
