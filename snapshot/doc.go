// Package snapshot serializes ssv vectors to a compact, self-describing
// binary blob and back.
//
// A snapshot is a fixed 32-byte header followed by the payload: every stored
// string in append order, each prefixed with its uvarint length. The payload
// may be compressed as a whole (Zstd, S2, LZ4 or none) and is protected by
// an xxHash64 checksum recorded in the header.
//
// Encoding:
//
//	vec := ssv.From[[120]byte, uint64]("foo", "bar")
//	blob, err := snapshot.Encode(vec, snapshot.WithCompression(format.CompressionS2))
//
// Decoding; the target configuration is independent of the source:
//
//	small, err := snapshot.Decode[[40]byte, uint32](blob)
//
// The format carries string contents only. It makes no guarantee that a
// snapshot encodes identically across vector configurations, only that the
// decoded contents are equal.
package snapshot
