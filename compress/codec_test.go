package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/hybf/format"
)

func testPayload() []byte {
	// Repetitive enough that every real codec shrinks it.
	return bytes.Repeat([]byte("hybf column payload "), 512)
}

func TestCodecs_RoundTrip(t *testing.T) {
	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	payload := testPayload()

	for _, ct := range types {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			if ct != format.CompressionNone {
				require.Less(t, len(compressed), len(payload))
			}

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, decompressed)
		})
	}
}

func TestGetCodec_Unknown(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0xEE))
	require.Error(t, err)
}

func TestNoOpCompressor_PassThrough(t *testing.T) {
	codec := NewNoOpCompressor()

	data := []byte{1, 2, 3}
	out, err := codec.Compress(data)
	require.NoError(t, err)
	require.Equal(t, data, out)

	out, err = codec.Decompress(data)
	require.NoError(t, err)
	require.Equal(t, data, out)
}
