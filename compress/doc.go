// Package compress provides the compression codecs used by ssv snapshots.
//
// Compression applies to the encoded snapshot payload as a whole. Four
// algorithms are supported, selected per snapshot via the header's
// compression byte:
//
//   - None: no compression; lowest CPU cost, largest output
//   - Zstd: best ratio; for cold storage and network transfer
//   - S2: balanced ratio and speed; a good hot-path default
//   - LZ4: fastest decompression; for read-heavy consumers
//
// The package defines the Compressor, Decompressor and Codec interfaces plus
// a factory keyed by format.CompressionType:
//
//	codec, err := compress.GetCodec(format.CompressionS2)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(payload)
//
// All built-in codecs are safe for concurrent use; the Zstd and LZ4 codecs
// pool their encoder state internally. The Zstd codec has two interchangeable
// implementations selected at build time: a cgo binding when cgo is enabled
// and a pure Go implementation otherwise.
//
// Custom algorithms can be plugged in anywhere a Codec is accepted by
// implementing the two methods.
package compress
