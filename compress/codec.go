package compress

import (
	"fmt"

	"github.com/arloliu/ssv/format"
)

// Compressor compresses snapshot payloads.
//
// The input is a complete encoded payload (length-prefixed string data);
// payloads of short strings compress well with every supported algorithm.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// The returned slice is newly allocated and owned by the caller (except
	// for the no-op codec, which returns the input unchanged); the input
	// slice is never modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores snapshot payloads compressed by the matching
// Compressor. Implementations validate the data format and return an error
// when the input is corrupted or was produced by a different algorithm.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original bytes.
	//
	// The returned slice is newly allocated and owned by the caller (except
	// for the no-op codec); the input slice is never modified.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. All built-in codecs are stateless or use
// internal pooling and are safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec creates a new Codec for the specified compression type.
// The target string names the caller in error messages.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a shared built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
