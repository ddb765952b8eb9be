package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// Fingerprint identifies a ranking problem: the allowed guesses and the
// pool, both in order. Order matters because ties go to the earliest
// allowed guess. Each list and word is length-prefixed so no two distinct
// inputs share a digest preimage.
func Fingerprint(allowed, pool []string) string {
	h := sha256.New()
	var n [8]byte
	for _, list := range [][]string{allowed, pool} {
		binary.BigEndian.PutUint64(n[:], uint64(len(list)))
		h.Write(n[:])
		for _, w := range list {
			binary.BigEndian.PutUint64(n[:], uint64(len(w)))
			h.Write(n[:])
			h.Write([]byte(w))
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}
