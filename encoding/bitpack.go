package encoding

import (
	"github.com/arloliu/hybf/errs"
	"github.com/arloliu/hybf/internal/pool"
)

// PackedSize returns the number of bytes occupied by count codes of the
// given bit width.
func PackedSize(count int, width uint8) int {
	return (count*int(width) + 7) / 8
}

// PackCodes appends count fixed-width codes to buf as a contiguous bit
// stream: MSB-first within each byte, no padding between codes, trailing
// bits of the final byte zero.
//
// Only the low width bits of each code are written. For widths 8, 16 and 32
// the stream degenerates to aligned big-endian integer storage.
func PackCodes(buf *pool.ByteBuffer, codes []uint32, width uint8) {
	if len(codes) == 0 || width == 0 {
		return
	}

	buf.Grow(PackedSize(len(codes), width))

	mask := uint64(1)<<width - 1
	var acc uint64
	nbits := 0

	for _, c := range codes {
		acc = acc<<width | (uint64(c) & mask)
		nbits += int(width)

		for nbits >= 8 {
			nbits -= 8
			_ = buf.WriteByte(byte(acc >> nbits))
		}
	}

	if nbits > 0 {
		_ = buf.WriteByte(byte(acc << (8 - nbits)))
	}
}

// UnpackCodes reads count fixed-width codes from r, the inverse of
// PackCodes. It consumes exactly PackedSize(count, width) bytes and fails
// with errs.ErrTruncated when fewer are available.
func UnpackCodes(r *Reader, count int, width uint8) ([]uint32, error) {
	if width == 0 || width > 32 {
		return nil, errs.ErrInvalidEncoding
	}

	data, err := r.ReadBytes(PackedSize(count, width))
	if err != nil {
		return nil, err
	}

	codes := make([]uint32, count)
	mask := uint64(1)<<width - 1
	var acc uint64
	nbits := 0
	pos := 0

	for i := range count {
		for nbits < int(width) {
			acc = acc<<8 | uint64(data[pos])
			pos++
			nbits += 8
		}

		nbits -= int(width)
		codes[i] = uint32(acc >> nbits & mask)
	}

	return codes, nil
}
