package compress

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ssv/format"
)

func testPayloads(t *testing.T) map[string][]byte {
	t.Helper()

	// Length-prefixed short strings, the shape snapshots produce.
	var packed bytes.Buffer
	for _, s := range []string{"alpha", "beta", "gamma", "delta", "", "epsilon"} {
		packed.WriteByte(byte(len(s)))
		packed.WriteString(s)
	}

	rng := rand.New(rand.NewSource(42))
	random := make([]byte, 8192)
	_, err := rng.Read(random)
	require.NoError(t, err)

	return map[string][]byte{
		"packed strings": packed.Bytes(),
		"repetitive":     bytes.Repeat([]byte("metric.value."), 512),
		"random":         random,
		"single byte":    {0x7f},
	}
}

func TestCodecRoundTrip(t *testing.T) {
	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(compression.String(), func(t *testing.T) {
			codec, err := GetCodec(compression)
			require.NoError(t, err)

			for name, payload := range testPayloads(t) {
				t.Run(name, func(t *testing.T) {
					compressed, err := codec.Compress(payload)
					require.NoError(t, err)

					restored, err := codec.Decompress(compressed)
					require.NoError(t, err)
					require.Equal(t, payload, restored)
				})
			}
		})
	}
}

func TestCodecEmptyInput(t *testing.T) {
	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(compression.String(), func(t *testing.T) {
			codec, err := GetCodec(compression)
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, restored)
		})
	}
}

func TestCompressionReducesRepetitiveData(t *testing.T) {
	payload := bytes.Repeat([]byte("aaaabbbbccccdddd"), 1024)

	for _, compression := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(compression.String(), func(t *testing.T) {
			codec, err := GetCodec(compression)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			require.Less(t, len(compressed), len(payload))
		})
	}
}

func TestCreateCodec(t *testing.T) {
	t.Run("Valid types", func(t *testing.T) {
		for _, compression := range []format.CompressionType{
			format.CompressionNone,
			format.CompressionZstd,
			format.CompressionS2,
			format.CompressionLZ4,
		} {
			codec, err := CreateCodec(compression, "payload")
			require.NoError(t, err)
			require.NotNil(t, codec)
		}
	})

	t.Run("Invalid type", func(t *testing.T) {
		_, err := CreateCodec(format.CompressionType(0xFF), "payload")
		require.Error(t, err)
		require.Contains(t, err.Error(), "payload")
	})
}

func TestGetCodecInvalid(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0))
	require.Error(t, err)
}

func TestNoOpSharesMemory(t *testing.T) {
	codec := NewNoOpCompressor()
	payload := []byte("untouched")

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, &payload[0], &compressed[0], "no-op codec must not copy")
}

func TestLZ4LargeExpansion(t *testing.T) {
	// Highly compressible data forces the decompressor through its
	// buffer-doubling path: compressed size is tiny relative to output.
	codec := NewLZ4Compressor()
	payload := bytes.Repeat([]byte{'z'}, 1024*1024)

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Less(t, len(compressed), len(payload)/100)

	restored, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, restored)
}
