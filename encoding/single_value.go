package encoding

import (
	"fmt"

	"github.com/arloliu/hybf/column"
	"github.com/arloliu/hybf/errs"
	"github.com/arloliu/hybf/format"
	"github.com/arloliu/hybf/internal/pool"
)

// SingleValueCodec stores one raw element followed by a u32 row count, in
// that order. Decoding replicates the value across every row.
type SingleValueCodec struct{}

var _ Codec = SingleValueCodec{}

func (SingleValueCodec) Tag() format.CodecType {
	return format.CodecSingleValue
}

func (SingleValueCodec) EstimateSize(arr column.Array, storage column.StorageType) uint64 {
	if arr.Len() == 0 {
		return 4
	}

	if a, ok := arr.(column.StringArray); ok {
		return stringElemSize(a.Values[0], a.IsNull(0)) + 4
	}

	return elemSize(storage.BitWidth) + 4
}

func (SingleValueCodec) Encode(arr column.Array, storage column.StorageType, buf *pool.ByteBuffer) error {
	if arr.Len() == 0 {
		return fmt.Errorf("single-value payload of an empty column: %w", errs.ErrInvalidEncoding)
	}

	switch a := arr.(type) {
	case column.Int32Array:
		appendIntElem(buf, int64(a.Values[0]), storage.BitWidth)
	case column.Int64Array:
		appendIntElem(buf, a.Values[0], storage.BitWidth)
	case column.Float32Array:
		appendFloat32Elem(buf, a.Values[0])
	case column.Float64Array:
		appendFloat64Elem(buf, a.Values[0])
	case column.BoolArray:
		appendBoolElem(buf, a.Values[0], a.IsNull(0))
	case column.StringArray:
		if err := appendStringElem(buf, a.Values[0], a.IsNull(0)); err != nil {
			return err
		}
	default:
		return errs.ErrUnsupportedType
	}

	buf.B = engine.AppendUint32(buf.B, uint32(arr.Len())) //nolint:gosec

	return nil
}

func (SingleValueCodec) Decode(payload []byte, def column.Def, rowCount int) (column.Array, error) {
	r := NewReader(payload)

	arr, err := decodeSingleValue(r, def, rowCount)
	if err != nil {
		return nil, err
	}

	declared, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	if int(declared) != rowCount {
		return nil, fmt.Errorf("single-value row count %d, container declares %d: %w", declared, rowCount, errs.ErrInvalidEncoding)
	}
	if r.Remaining() != 0 {
		return nil, fmt.Errorf("single-value payload has %d trailing bytes: %w", r.Remaining(), errs.ErrInvalidEncoding)
	}

	return arr, nil
}

func decodeSingleValue(r *Reader, def column.Def, rowCount int) (column.Array, error) {
	switch def.Logical {
	case format.TypeInt32:
		v, err := readIntElem(r, def.Storage.BitWidth)
		if err != nil {
			return nil, err
		}
		values := make([]int32, rowCount)
		for i := range values {
			values[i] = int32(v) //nolint:gosec
		}

		return column.Int32Array{Values: values}, nil
	case format.TypeInt64:
		v, err := readIntElem(r, def.Storage.BitWidth)
		if err != nil {
			return nil, err
		}
		values := make([]int64, rowCount)
		for i := range values {
			values[i] = v
		}

		return column.Int64Array{Values: values}, nil
	case format.TypeFloat32:
		v, err := readFloat32Elem(r)
		if err != nil {
			return nil, err
		}
		values := make([]float32, rowCount)
		for i := range values {
			values[i] = v
		}

		return column.Float32Array{Values: values}, nil
	case format.TypeFloat64:
		v, err := readFloat64Elem(r)
		if err != nil {
			return nil, err
		}
		values := make([]float64, rowCount)
		for i := range values {
			values[i] = v
		}

		return column.Float64Array{Values: values}, nil
	case format.TypeBoolean:
		v, null, err := readBoolElem(r)
		if err != nil {
			return nil, err
		}
		values := make([]bool, rowCount)
		var nulls []bool
		if null {
			nulls = make([]bool, rowCount)
		}
		for i := range values {
			values[i] = v
			if null {
				nulls[i] = true
			}
		}

		return column.BoolArray{Values: values, Nulls: nulls}, nil
	case format.TypeString:
		s, null, err := readStringElem(r)
		if err != nil {
			return nil, err
		}
		values := make([]string, rowCount)
		var nulls []bool
		if null {
			nulls = make([]bool, rowCount)
		}
		for i := range values {
			values[i] = s
			if null {
				nulls[i] = true
			}
		}

		return column.StringArray{Values: values, Nulls: nulls}, nil
	default:
		return nil, errs.ErrUnknownLogicalType
	}
}
