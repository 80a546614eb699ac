// Package hash computes xxHash64 content fingerprints.
package hash

import (
	"encoding/binary"
	"iter"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Sum computes the xxHash64 of the given bytes.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Sequence computes a single xxHash64 over a sequence of strings.
// Each element is length-prefixed before hashing so that ("ab", "c") and
// ("a", "bc") produce different digests.
func Sequence(seq iter.Seq[string]) uint64 {
	var prefix [binary.MaxVarintLen64]byte

	d := xxhash.New()
	for s := range seq {
		n := binary.PutUvarint(prefix[:], uint64(len(s)))
		_, _ = d.Write(prefix[:n])
		_, _ = d.WriteString(s)
	}

	return d.Sum64()
}
