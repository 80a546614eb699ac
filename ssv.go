// Package ssv provides a compact, append-biased container for sequences of
// immutable byte strings, a "short string vector".
//
// A Vector packs a handful of short strings directly into its own storage:
// string lengths live in bit-packed fields of a single header word and the
// bytes sit back-to-back in a fixed inline buffer, so the common case of a
// few short strings costs zero heap allocations. When an append exceeds the
// inline budget the vector transparently spills to one heap-owned block with
// string data growing forward and a cumulative offset table growing backward
// from the tail, doubling in capacity as needed.
//
// # Core Features
//
//   - Zero allocations while the contents fit inline
//   - One allocation total once spilled, amortized doubling growth
//   - O(1) indexed access in both representations
//   - Strings may contain embedded NUL bytes
//   - Compile-time configuration of inline capacity and index width
//   - Checked (At) and unchecked (Get, Front, Back) accessors
//   - xxHash64 content fingerprints
//   - Binary snapshots with optional compression (see the snapshot package)
//
// # Basic Usage
//
//	vec := ssv.New[[120]byte, uint64]()
//	vec.Append("hello")
//	vec.Append("world")
//
//	for i, s := range vec.All() {
//	    fmt.Printf("%d: %s\n", i, s)
//	}
//
//	vec.IsInline() // true: 12 bytes used of 120
//
// The two type parameters select the inline buffer size and the width used
// for the header word and heap offset-table entries. Different parameter
// combinations are distinct, non-interchangeable types; Collect rebuilds one
// configuration from another:
//
//	small := ssv.Collect[[40]byte, uint32](vec.Values())
//
// # Ownership
//
// Vector is a value type. Copying a heap-resident vector with plain struct
// assignment aliases the heap block; use Clone for a deep copy or Move for
// an ownership transfer that leaves the source empty.
//
// # Concurrency
//
// A Vector has no internal synchronization. Concurrent reads are safe only
// while no goroutine mutates the vector; any mutation requires exclusive
// access.
package ssv

// Default is the default vector configuration: 120 bytes of inline storage
// with 64-bit indexing, giving up to 9 inline strings in a 136-byte value.
type Default = Vector[[120]byte, uint64]

// NewDefault creates an empty Vector in the Default configuration.
func NewDefault() *Default {
	return New[[120]byte, uint64]()
}
