// Package errs defines the sentinel errors shared across the ssv module.
//
// All errors are plain sentinel values created with errors.New, intended to
// be matched with errors.Is. Call sites that need more context wrap them with
// fmt.Errorf and the %w verb.
package errs

import "errors"

// Container errors.
var (
	// ErrIndexOutOfRange is returned by the checked accessor At and by Resize
	// when the requested index or target length exceeds the current string
	// count. The unchecked accessors never return it; violating their
	// preconditions is a caller contract violation, not a reported error.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Snapshot errors.
var (
	// ErrInvalidHeaderSize indicates the snapshot data is shorter than the
	// fixed 32-byte header.
	ErrInvalidHeaderSize = errors.New("invalid snapshot header size")

	// ErrInvalidMagicNumber indicates the header magic does not identify an
	// ssv snapshot.
	ErrInvalidMagicNumber = errors.New("invalid snapshot magic number")

	// ErrInvalidCompression indicates an unknown compression type byte in the
	// snapshot header.
	ErrInvalidCompression = errors.New("invalid snapshot compression")

	// ErrInvalidStringCount indicates a string count that cannot be encoded
	// in the snapshot header.
	ErrInvalidStringCount = errors.New("invalid string count")

	// ErrPayloadSizeMismatch indicates the compressed or decompressed payload
	// size does not match the sizes recorded in the header.
	ErrPayloadSizeMismatch = errors.New("snapshot payload size mismatch")

	// ErrChecksumMismatch indicates the payload checksum does not match the
	// header checksum; the snapshot is corrupted.
	ErrChecksumMismatch = errors.New("snapshot checksum mismatch")

	// ErrTruncatedPayload indicates the payload ended in the middle of a
	// length prefix or string body.
	ErrTruncatedPayload = errors.New("truncated snapshot payload")
)
