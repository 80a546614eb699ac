package snapshot

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/ssv"
	"github.com/arloliu/ssv/compress"
	"github.com/arloliu/ssv/errs"
	"github.com/arloliu/ssv/internal/hash"
)

// Decode reconstructs a Vector from a snapshot blob produced by Encode.
//
// The target configuration is chosen by the type parameters and need not
// match the configuration the snapshot was taken from; the vector is rebuilt
// string by string, so the usual inline/heap placement rules of the target
// configuration apply.
//
// Decode validates the magic number, compression type, both size fields and
// the payload checksum before reconstructing, and fails with the matching
// errs sentinel on any mismatch.
func Decode[B ssv.Buffer, I ssv.Index](data []byte) (*ssv.Vector[B, I], error) {
	hdr := &Header{}
	if err := hdr.Parse(data); err != nil {
		return nil, err
	}
	if len(data)-HeaderSize != int(hdr.PayloadSize) {
		return nil, errs.ErrPayloadSizeMismatch
	}

	codec, err := compress.GetCodec(hdr.Compression)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(data[HeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("failed to decompress snapshot payload: %w", err)
	}
	if len(payload) != int(hdr.DataSize) {
		return nil, errs.ErrPayloadSizeMismatch
	}
	if hash.Sum(payload) != hdr.Checksum {
		return nil, errs.ErrChecksumMismatch
	}

	v := ssv.New[B, I]()
	off := 0
	for range hdr.Count {
		length, n := binary.Uvarint(payload[off:])
		if n <= 0 {
			return nil, errs.ErrTruncatedPayload
		}
		off += n

		// Compare in uint64 space: a crafted length near MaxUint64 would wrap
		// negative after an int conversion and slip past a bounds check.
		if length > uint64(len(payload)-off) {
			return nil, errs.ErrTruncatedPayload
		}
		end := off + int(length)
		// string() detaches the element from the payload buffer.
		v.Append(string(payload[off:end]))
		off = end
	}
	if off != len(payload) {
		return nil, errs.ErrTruncatedPayload
	}

	return v, nil
}
