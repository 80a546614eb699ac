package snapshot

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/ssv"
	"github.com/arloliu/ssv/compress"
	"github.com/arloliu/ssv/errs"
	"github.com/arloliu/ssv/format"
	"github.com/arloliu/ssv/internal/hash"
	"github.com/arloliu/ssv/internal/options"
	"github.com/arloliu/ssv/internal/pool"
)

// Encoder holds the configuration of one Encode call. It is configured
// through functional options and not used directly.
type Encoder struct {
	header *Header
}

// Option configures snapshot encoding.
type Option = options.Option[*Encoder]

// WithCompression selects the payload compression algorithm.
// The default is no compression.
func WithCompression(comp format.CompressionType) Option {
	return options.New(func(e *Encoder) error {
		if !comp.IsValid() {
			return fmt.Errorf("invalid snapshot compression: %v", comp)
		}
		e.header.Compression = comp

		return nil
	})
}

// WithLittleEndian selects little-endian byte order for the header fields.
// This is the default.
func WithLittleEndian() Option {
	return options.NoError(func(e *Encoder) {
		e.header.WithLittleEndian()
	})
}

// WithBigEndian selects big-endian byte order for the header fields.
func WithBigEndian() Option {
	return options.NoError(func(e *Encoder) {
		e.header.WithBigEndian()
	})
}

// Encode serializes v into a self-describing snapshot blob: a fixed 32-byte
// header followed by the (optionally compressed) payload of uvarint
// length-prefixed strings.
//
// The blob records the string contents only, not the vector's compile-time
// configuration, so it may be decoded into any Vector instantiation.
func Encode[B ssv.Buffer, I ssv.Index](v *ssv.Vector[B, I], opts ...Option) ([]byte, error) {
	enc := &Encoder{header: NewHeader()}
	if err := options.Apply(enc, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(enc.header.Compression)
	if err != nil {
		return nil, err
	}

	count := v.Len()
	if uint64(count) > math.MaxUint32 {
		return nil, errs.ErrInvalidStringCount
	}

	buf := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(buf)

	// One uvarint prefix per string replaces the in-memory terminator, so
	// Size() is a good lower bound for short strings.
	buf.Grow(v.Size())
	for s := range v.Values() {
		buf.B = binary.AppendUvarint(buf.B, uint64(len(s)))
		buf.B = append(buf.B, s...)
	}

	payload := buf.Bytes()
	if uint64(len(payload)) > math.MaxUint32 {
		return nil, errs.ErrPayloadSizeMismatch
	}

	hdr := enc.header
	hdr.Count = uint32(count)
	hdr.DataSize = uint32(len(payload))
	hdr.Checksum = hash.Sum(payload)

	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to compress snapshot payload: %w", err)
	}
	if uint64(len(compressed)) > math.MaxUint32 {
		return nil, errs.ErrPayloadSizeMismatch
	}
	hdr.PayloadSize = uint32(len(compressed))

	out := make([]byte, HeaderSize+len(compressed))
	copy(out, hdr.Bytes())
	copy(out[HeaderSize:], compressed)

	return out, nil
}
