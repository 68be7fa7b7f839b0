package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/hybf/column"
	"github.com/arloliu/hybf/errs"
	"github.com/arloliu/hybf/format"
	"github.com/arloliu/hybf/internal/pool"
)

// NullCodec stores nothing but a u32 row count; decoding yields that many
// nulls of the column's logical type. Integer columns are non-null by
// format rule, so a Null payload under an integer definition is invalid.
type NullCodec struct{}

var _ Codec = NullCodec{}

func (NullCodec) Tag() format.CodecType {
	return format.CodecNull
}

func (NullCodec) EstimateSize(column.Array, column.StorageType) uint64 {
	return 4
}

func (NullCodec) Encode(arr column.Array, _ column.StorageType, buf *pool.ByteBuffer) error {
	buf.B = engine.AppendUint32(buf.B, uint32(arr.Len())) //nolint:gosec
	return nil
}

func (NullCodec) Decode(payload []byte, def column.Def, rowCount int) (column.Array, error) {
	r := NewReader(payload)

	declared, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	if int(declared) != rowCount {
		return nil, fmt.Errorf("null payload row count %d, container declares %d: %w", declared, rowCount, errs.ErrInvalidEncoding)
	}
	if r.Remaining() != 0 {
		return nil, fmt.Errorf("null payload has %d trailing bytes: %w", r.Remaining(), errs.ErrInvalidEncoding)
	}

	switch def.Logical {
	case format.TypeFloat32:
		values := make([]float32, rowCount)
		for i := range values {
			values[i] = float32(math.NaN())
		}

		return column.Float32Array{Values: values}, nil
	case format.TypeFloat64:
		values := make([]float64, rowCount)
		for i := range values {
			values[i] = math.NaN()
		}

		return column.Float64Array{Values: values}, nil
	case format.TypeBoolean:
		nulls := make([]bool, rowCount)
		for i := range nulls {
			nulls[i] = true
		}

		return column.BoolArray{Values: make([]bool, rowCount), Nulls: nulls}, nil
	case format.TypeString:
		nulls := make([]bool, rowCount)
		for i := range nulls {
			nulls[i] = true
		}

		return column.StringArray{Values: make([]string, rowCount), Nulls: nulls}, nil
	case format.TypeInt32, format.TypeInt64:
		return nil, fmt.Errorf("null payload for non-nullable %s column: %w", def.Logical, errs.ErrInvalidEncoding)
	default:
		return nil, errs.ErrUnknownLogicalType
	}
}
