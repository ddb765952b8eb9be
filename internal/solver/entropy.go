// internal/solver/entropy.go
//
// Partitioning a pool by the mask a guess would receive, and the Shannon
// entropy (in bits) of the resulting bucket-size distribution.
//
// Two computations are provided:
//   - Entropy simulates the mask against each pool word directly, O(|pool|).
//   - EntropyByEnumeration decodes all 243 masks and filters the pool by
//     each, O(243·|pool|). For a guess with no repeated letter it agrees with
//     Entropy and serves as a cross-check. With a repeated letter an absent
//     slot only caps the count, so one word can pass several masks and the
//     enumerated value comes out higher.
//
// Sums always run in mask order so repeated calls yield bit-identical
// results, which the ranker's tie-breaking relies on.

package solver

import (
	"fmt"
	"math"
)

// GroupBy buckets items by keyFn, preserving item order inside each bucket.
func GroupBy[T any, K comparable](items []T, keyFn func(T) K) map[K][]T {
	out := make(map[K][]T)
	for _, it := range items {
		k := keyFn(it)
		out[k] = append(out[k], it)
	}
	return out
}

// Partition groups pool by the mask guess receives against each word.
// Every pool word lands in exactly one bucket.
func Partition(guess string, pool []string) (map[Mask][]string, error) {
	g, err := ParseWord(guess)
	if err != nil {
		return nil, err
	}
	p, err := ParseWords(pool)
	if err != nil {
		return nil, err
	}
	return GroupBy(p, func(s string) Mask { return encode(g, s) }), nil
}

// BucketSizes returns the size of every bucket, indexed by mask.
// Masks with no matching pool word have size 0.
func BucketSizes(guess string, pool []string) ([MaskCount]int, error) {
	g, err := ParseWord(guess)
	if err != nil {
		return [MaskCount]int{}, err
	}
	p, err := ParseWords(pool)
	if err != nil {
		return [MaskCount]int{}, err
	}
	return bucketSizes(g, p), nil
}

func bucketSizes(guess string, pool []string) [MaskCount]int {
	var sizes [MaskCount]int
	for _, s := range pool {
		sizes[encode(guess, s)]++
	}
	return sizes
}

// Entropy returns the expected information, in bits, of guessing guess
// when the answer is uniformly distributed over pool.
// The result lies in [0, log2(len(pool))].
func Entropy(guess string, pool []string) (float64, error) {
	if len(pool) == 0 {
		return 0, fmt.Errorf("%w: entropy of an empty pool", ErrInvalidState)
	}
	g, err := ParseWord(guess)
	if err != nil {
		return 0, err
	}
	p, err := ParseWords(pool)
	if err != nil {
		return 0, err
	}
	return entropy(g, p), nil
}

func entropy(guess string, pool []string) float64 {
	sizes := bucketSizes(guess, pool)
	return entropyOf(sizes[:], len(pool))
}

// EntropyByEnumeration decodes every possible mask into a Constraint and
// counts the pool words it admits. It equals Entropy only when guess has no
// repeated letter; otherwise words admitted by more than one mask are counted
// once per mask.
func EntropyByEnumeration(guess string, pool []string) (float64, error) {
	if len(pool) == 0 {
		return 0, fmt.Errorf("%w: entropy of an empty pool", ErrInvalidState)
	}
	g, err := ParseWord(guess)
	if err != nil {
		return 0, err
	}
	p, err := ParseWords(pool)
	if err != nil {
		return 0, err
	}

	var sizes [MaskCount]int
	for m := Mask(0); m < MaskCount; m++ {
		sizes[m] = len(FilterPool(p, decode(m, g)))
	}
	return entropyOf(sizes[:], len(p)), nil
}

// entropyOf sums p·log2(1/p) over the non-empty buckets. Empty buckets
// contribute nothing; log2(0) is never evaluated.
func entropyOf(sizes []int, n int) float64 {
	var h float64
	for _, k := range sizes {
		if k == 0 {
			continue
		}
		p := float64(k) / float64(n)
		h += p * math.Log2(1/p)
	}
	return h
}
