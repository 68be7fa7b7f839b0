package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/hybf/errs"
	"github.com/arloliu/hybf/internal/pool"
)

// Element codecs: the serialised form of a single raw value per storage
// type. Raw payloads are sequences of these; SingleValue, RLE and
// Dictionary payloads embed them one at a time.

const (
	// nullStringLength is the u16 length sentinel marking a null string row.
	nullStringLength = 0xFFFF
	// MaxStringLength is the longest string a column value may hold; one
	// less than the null sentinel.
	MaxStringLength = nullStringLength - 1
)

// Tri-state boolean storage bytes.
const (
	boolFalse = 0x0
	boolTrue  = 0x1
	boolNull  = 0x2
)

// appendIntElem appends v truncated to the given storage width, big-endian
// two's complement.
func appendIntElem(buf *pool.ByteBuffer, v int64, width uint8) {
	switch width {
	case 8:
		_ = buf.WriteByte(byte(v))
	case 16:
		buf.B = engine.AppendUint16(buf.B, uint16(v)) //nolint:gosec
	case 32:
		buf.B = engine.AppendUint32(buf.B, uint32(v)) //nolint:gosec
	default:
		buf.B = engine.AppendUint64(buf.B, uint64(v)) //nolint:gosec
	}
}

// readIntElem reads one integer element and sign-extends it from the
// storage width back to 64 bits.
func readIntElem(r *Reader, width uint8) (int64, error) {
	switch width {
	case 8:
		v, err := r.ReadUint8()
		if err != nil {
			return 0, err
		}

		return int64(int8(v)), nil
	case 16:
		v, err := r.ReadUint16()
		if err != nil {
			return 0, err
		}

		return int64(int16(v)), nil
	case 32:
		v, err := r.ReadUint32()
		if err != nil {
			return 0, err
		}

		return int64(int32(v)), nil
	case 64:
		v, err := r.ReadUint64()
		if err != nil {
			return 0, err
		}

		return int64(v), nil //nolint:gosec
	default:
		return 0, errs.ErrInvalidStorageWidth
	}
}

func appendFloat32Elem(buf *pool.ByteBuffer, v float32) {
	buf.B = engine.AppendUint32(buf.B, math.Float32bits(v))
}

func readFloat32Elem(r *Reader) (float32, error) {
	bits, err := r.ReadUint32()
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(bits), nil
}

func appendFloat64Elem(buf *pool.ByteBuffer, v float64) {
	buf.B = engine.AppendUint64(buf.B, math.Float64bits(v))
}

func readFloat64Elem(r *Reader) (float64, error) {
	bits, err := r.ReadUint64()
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(bits), nil
}

// appendBoolElem appends one tri-state boolean byte: 0=false, 1=true, 2=null.
func appendBoolElem(buf *pool.ByteBuffer, v bool, null bool) {
	switch {
	case null:
		_ = buf.WriteByte(boolNull)
	case v:
		_ = buf.WriteByte(boolTrue)
	default:
		_ = buf.WriteByte(boolFalse)
	}
}

func readBoolElem(r *Reader) (val bool, null bool, err error) {
	b, err := r.ReadUint8()
	if err != nil {
		return false, false, err
	}

	switch b {
	case boolFalse:
		return false, false, nil
	case boolTrue:
		return true, false, nil
	case boolNull:
		return false, true, nil
	default:
		return false, false, fmt.Errorf("boolean storage byte 0x%02x: %w", b, errs.ErrInvalidEncoding)
	}
}

// appendStringElem appends a u16 length prefix and the UTF-8 bytes. A null
// row is encoded as the length sentinel 0xFFFF with no payload.
func appendStringElem(buf *pool.ByteBuffer, s string, null bool) error {
	if null {
		buf.B = engine.AppendUint16(buf.B, nullStringLength)
		return nil
	}

	if len(s) > MaxStringLength {
		return fmt.Errorf("string length %d exceeds maximum %d: %w", len(s), MaxStringLength, errs.ErrUnsupportedType)
	}

	buf.B = engine.AppendUint16(buf.B, uint16(len(s))) //nolint:gosec
	buf.MustWrite([]byte(s))

	return nil
}

func readStringElem(r *Reader) (s string, null bool, err error) {
	length, err := r.ReadUint16()
	if err != nil {
		return "", false, err
	}

	if length == nullStringLength {
		return "", true, nil
	}

	b, err := r.ReadBytes(int(length))
	if err != nil {
		return "", false, err
	}

	return string(b), false, nil
}

// stringElemSize returns the serialised size of one string element.
func stringElemSize(s string, null bool) uint64 {
	if null {
		return 2
	}

	return 2 + uint64(len(s))
}

// elemSize returns the serialised size in bytes of one fixed-width element.
func elemSize(width uint8) uint64 {
	return uint64(width) / 8
}
