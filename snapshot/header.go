package snapshot

import (
	"github.com/arloliu/ssv/endian"
	"github.com/arloliu/ssv/errs"
	"github.com/arloliu/ssv/format"
)

const (
	// HeaderSize is the fixed snapshot header size in bytes.
	HeaderSize = 32

	// EndiannessMask selects the endianness bit of the options word
	// (0 = little-endian, 1 = big-endian).
	EndiannessMask = 0x0002
	// MagicNumberMask selects the magic number bits of the options word.
	MagicNumberMask = 0xFFF0

	// MagicV1 is the version 1 magic number for ssv snapshots.
	MagicV1 = 0xEC10
)

// Header is the fixed-size header of a snapshot blob. It is 32 bytes on the
// wire and describes everything needed to validate and decode the payload
// that follows.
//
// Layout:
//   - Options: packed flags and magic number, bytes 0-1 (always little-endian)
//   - Compression: payload compression type, byte 2 (byte 3 reserved)
//   - Count: number of stored strings, bytes 4-7
//   - DataSize: uncompressed payload size, bytes 8-11
//   - PayloadSize: payload size as stored after the header, bytes 12-15
//   - Checksum: xxHash64 of the uncompressed payload, bytes 16-23
//   - Reserved: bytes 24-31, written as zero, ignored on read
//
// Multi-byte fields after the options word use the byte order the
// endianness bit selects.
type Header struct {
	// Options is a packed field: bit 1 is the endianness flag, bits 4-15 are
	// the magic number, the remaining bits are reserved and must be zero.
	Options uint16

	// Compression indicates the compression applied to the payload.
	Compression format.CompressionType

	// Count is the number of strings stored in the payload.
	Count uint32
	// DataSize is the uncompressed size of the payload in bytes.
	DataSize uint32
	// PayloadSize is the stored (possibly compressed) payload size in bytes.
	PayloadSize uint32
	// Checksum is the xxHash64 of the uncompressed payload.
	Checksum uint64

	// Reserved is written as zero and ignored on read, leaving room for
	// future header fields without a version bump.
	Reserved [8]byte
}

// NewHeader creates a Header with default settings: version 1 magic,
// little-endian byte order, no compression.
func NewHeader() *Header {
	return &Header{
		Options:     MagicV1,
		Compression: format.CompressionNone,
	}
}

// IsBigEndian reports whether the header fields and any future fixed-width
// payload values use big-endian byte order.
func (h *Header) IsBigEndian() bool {
	return h.Options&EndiannessMask != 0
}

// WithBigEndian switches the header to big-endian byte order.
func (h *Header) WithBigEndian() {
	h.Options |= EndiannessMask
}

// WithLittleEndian switches the header to little-endian byte order.
func (h *Header) WithLittleEndian() {
	h.Options &^= EndiannessMask
}

// Engine returns the endian engine matching the endianness flag.
func (h *Header) Engine() endian.EndianEngine {
	if h.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// Validate checks the magic number and compression type.
func (h *Header) Validate() error {
	if h.Options&MagicNumberMask != MagicV1 {
		return errs.ErrInvalidMagicNumber
	}
	if !h.Compression.IsValid() {
		return errs.ErrInvalidCompression
	}

	return nil
}

// Parse parses the header from the first HeaderSize bytes of data.
//
// The options word is read first, little-endian regardless of the
// endianness flag it carries; the flag then selects the byte order for the
// remaining fields.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Options = uint16(data[0]) | uint16(data[1])<<8
	h.Compression = format.CompressionType(data[2])

	if err := h.Validate(); err != nil {
		return err
	}

	engine := h.Engine()
	h.Count = engine.Uint32(data[4:8])
	h.DataSize = engine.Uint32(data[8:12])
	h.PayloadSize = engine.Uint32(data[12:16])
	h.Checksum = engine.Uint64(data[16:24])
	copy(h.Reserved[:], data[24:32])

	return nil
}

// Bytes serializes the header into a fresh HeaderSize byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	b[0] = byte(h.Options)
	b[1] = byte(h.Options >> 8)
	b[2] = byte(h.Compression)

	engine := h.Engine()
	engine.PutUint32(b[4:8], h.Count)
	engine.PutUint32(b[8:12], h.DataSize)
	engine.PutUint32(b[12:16], h.PayloadSize)
	engine.PutUint64(b[16:24], h.Checksum)
	copy(b[24:32], h.Reserved[:])

	return b
}
