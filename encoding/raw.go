package encoding

import (
	"fmt"

	"github.com/arloliu/hybf/column"
	"github.com/arloliu/hybf/errs"
	"github.com/arloliu/hybf/format"
	"github.com/arloliu/hybf/internal/pool"
)

// RawCodec stores values back to back at the analysed storage width.
//
// Integers are width-truncated big-endian two's complement, floats are
// IEEE-754 big-endian, booleans are one tri-state byte per value, and
// strings are u16-length-prefixed with the 0xFFFF null sentinel. It is the
// only codec used by the Minimal container and the fallback for the
// Compressed one.
type RawCodec struct{}

var _ Codec = RawCodec{}

func (RawCodec) Tag() format.CodecType {
	return format.CodecRaw
}

// EstimateSize is exact for every logical type.
func (RawCodec) EstimateSize(arr column.Array, storage column.StorageType) uint64 {
	switch a := arr.(type) {
	case column.StringArray:
		var total uint64
		for i, s := range a.Values {
			total += stringElemSize(s, a.IsNull(i))
		}

		return total
	default:
		return uint64(arr.Len()) * elemSize(storage.BitWidth)
	}
}

func (RawCodec) Encode(arr column.Array, storage column.StorageType, buf *pool.ByteBuffer) error {
	switch a := arr.(type) {
	case column.Int32Array:
		buf.Grow(len(a.Values) * int(elemSize(storage.BitWidth)))
		for _, v := range a.Values {
			appendIntElem(buf, int64(v), storage.BitWidth)
		}
	case column.Int64Array:
		buf.Grow(len(a.Values) * int(elemSize(storage.BitWidth)))
		for _, v := range a.Values {
			appendIntElem(buf, v, storage.BitWidth)
		}
	case column.Float32Array:
		buf.Grow(len(a.Values) * 4)
		for _, v := range a.Values {
			appendFloat32Elem(buf, v)
		}
	case column.Float64Array:
		buf.Grow(len(a.Values) * 8)
		for _, v := range a.Values {
			appendFloat64Elem(buf, v)
		}
	case column.BoolArray:
		buf.Grow(len(a.Values))
		for i, v := range a.Values {
			appendBoolElem(buf, v, a.IsNull(i))
		}
	case column.StringArray:
		for i, s := range a.Values {
			if err := appendStringElem(buf, s, a.IsNull(i)); err != nil {
				return err
			}
		}
	default:
		return errs.ErrUnsupportedType
	}

	return nil
}

func (c RawCodec) Decode(payload []byte, def column.Def, rowCount int) (column.Array, error) {
	r := NewReader(payload)

	arr, err := c.DecodeFrom(r, def, rowCount)
	if err != nil {
		return nil, err
	}

	if r.Remaining() != 0 {
		return nil, fmt.Errorf("raw payload has %d trailing bytes: %w", r.Remaining(), errs.ErrInvalidEncoding)
	}

	return arr, nil
}

// DecodeFrom consumes exactly one column's raw payload from r. The Minimal
// container uses it to walk concatenated payloads that carry no per-column
// length prefix.
func (RawCodec) DecodeFrom(r *Reader, def column.Def, rowCount int) (column.Array, error) {
	switch def.Logical {
	case format.TypeInt32:
		values := make([]int32, rowCount)
		for i := range values {
			v, err := readIntElem(r, def.Storage.BitWidth)
			if err != nil {
				return nil, err
			}
			values[i] = int32(v) //nolint:gosec
		}

		return column.Int32Array{Values: values}, nil
	case format.TypeInt64:
		values := make([]int64, rowCount)
		for i := range values {
			v, err := readIntElem(r, def.Storage.BitWidth)
			if err != nil {
				return nil, err
			}
			values[i] = v
		}

		return column.Int64Array{Values: values}, nil
	case format.TypeFloat32:
		values := make([]float32, rowCount)
		for i := range values {
			v, err := readFloat32Elem(r)
			if err != nil {
				return nil, err
			}
			values[i] = v
		}

		return column.Float32Array{Values: values}, nil
	case format.TypeFloat64:
		values := make([]float64, rowCount)
		for i := range values {
			v, err := readFloat64Elem(r)
			if err != nil {
				return nil, err
			}
			values[i] = v
		}

		return column.Float64Array{Values: values}, nil
	case format.TypeBoolean:
		values := make([]bool, rowCount)
		var nulls []bool
		for i := range values {
			v, null, err := readBoolElem(r)
			if err != nil {
				return nil, err
			}
			values[i] = v
			if null {
				if nulls == nil {
					nulls = make([]bool, rowCount)
				}
				nulls[i] = true
			}
		}

		return column.BoolArray{Values: values, Nulls: nulls}, nil
	case format.TypeString:
		values := make([]string, rowCount)
		var nulls []bool
		for i := range values {
			s, null, err := readStringElem(r)
			if err != nil {
				return nil, err
			}
			values[i] = s
			if null {
				if nulls == nil {
					nulls = make([]bool, rowCount)
				}
				nulls[i] = true
			}
		}

		return column.StringArray{Values: values, Nulls: nulls}, nil
	default:
		return nil, errs.ErrUnknownLogicalType
	}
}
