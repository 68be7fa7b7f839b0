package encoding

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/hybf/errs"
	"github.com/arloliu/hybf/internal/pool"
)

func TestPackCodes_RoundTrip(t *testing.T) {
	widths := []uint8{1, 2, 4, 8, 16, 32}

	for _, width := range widths {
		t.Run(fmt.Sprintf("%dbit", width), func(t *testing.T) {
			maxCode := uint32(1)<<width - 1
			codes := make([]uint32, 1000)
			for i := range codes {
				codes[i] = uint32(i*7+3) & maxCode
			}

			buf := pool.NewByteBuffer(64)
			PackCodes(buf, codes, width)
			require.Equal(t, PackedSize(len(codes), width), buf.Len())

			decoded, err := UnpackCodes(NewReader(buf.Bytes()), len(codes), width)
			require.NoError(t, err)
			require.Equal(t, codes, decoded)
		})
	}
}

func TestPackCodes_MSBFirstLayout(t *testing.T) {
	// Two-bit codes 1,2,3,0 pack into a single byte 0b01_10_11_00.
	buf := pool.NewByteBuffer(8)
	PackCodes(buf, []uint32{1, 2, 3, 0}, 2)
	require.Equal(t, []byte{0x6C}, buf.Bytes())
}

func TestPackCodes_TrailingBitsZero(t *testing.T) {
	// Three one-bit codes: 1,1,1 -> 0b11100000.
	buf := pool.NewByteBuffer(8)
	PackCodes(buf, []uint32{1, 1, 1}, 1)
	require.Equal(t, []byte{0xE0}, buf.Bytes())
}

func TestPackCodes_AlignedWidthDegenerates(t *testing.T) {
	// Width 8 must match plain byte storage, width 16 big-endian uint16.
	buf := pool.NewByteBuffer(8)
	PackCodes(buf, []uint32{0x12, 0x34, 0xAB}, 8)
	require.Equal(t, []byte{0x12, 0x34, 0xAB}, buf.Bytes())

	buf = pool.NewByteBuffer(8)
	PackCodes(buf, []uint32{0x1234, 0xABCD}, 16)
	require.Equal(t, []byte{0x12, 0x34, 0xAB, 0xCD}, buf.Bytes())
}

func TestPackCodes_MaskHighBits(t *testing.T) {
	// Only the low width bits of each code are written.
	buf := pool.NewByteBuffer(8)
	PackCodes(buf, []uint32{0xFF, 0x02}, 2)

	decoded, err := UnpackCodes(NewReader(buf.Bytes()), 2, 2)
	require.NoError(t, err)
	require.Equal(t, []uint32{0x3, 0x2}, decoded)
}

func TestUnpackCodes_Truncated(t *testing.T) {
	_, err := UnpackCodes(NewReader([]byte{0xFF}), 100, 4)
	require.ErrorIs(t, err, errs.ErrTruncated)
}

func TestUnpackCodes_InvalidWidth(t *testing.T) {
	_, err := UnpackCodes(NewReader([]byte{0xFF}), 1, 0)
	require.ErrorIs(t, err, errs.ErrInvalidEncoding)

	_, err = UnpackCodes(NewReader([]byte{0xFF}), 1, 33)
	require.ErrorIs(t, err, errs.ErrInvalidEncoding)
}
