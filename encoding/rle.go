package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/hybf/column"
	"github.com/arloliu/hybf/errs"
	"github.com/arloliu/hybf/format"
	"github.com/arloliu/hybf/internal/pool"
)

// RLECodec stores a u32 run count followed by (value, u32 run length)
// records. Run boundaries compare values together with their null state;
// float comparison is bit-level so that every NaN (null) joins one run and
// negative zero survives a round trip.
type RLECodec struct{}

var _ Codec = RLECodec{}

func (RLECodec) Tag() format.CodecType {
	return format.CodecRLE
}

func (RLECodec) EstimateSize(arr column.Array, storage column.StorageType) uint64 {
	total := uint64(4)

	switch a := arr.(type) {
	case column.StringArray:
		forEachStringRun(a, func(s string, null bool, _ int) {
			total += stringElemSize(s, null) + 4
		})
	default:
		total += uint64(RunCount(arr)) * (elemSize(storage.BitWidth) + 4)
	}

	return total
}

func (RLECodec) Encode(arr column.Array, storage column.StorageType, buf *pool.ByteBuffer) error {
	countAt := buf.Len()
	buf.B = engine.AppendUint32(buf.B, 0) // patched below

	runs := 0

	switch a := arr.(type) {
	case column.Int32Array:
		forEachRun(len(a.Values), func(i, j int) bool { return a.Values[i] == a.Values[j] }, func(i, length int) {
			appendIntElem(buf, int64(a.Values[i]), storage.BitWidth)
			buf.B = engine.AppendUint32(buf.B, uint32(length)) //nolint:gosec
			runs++
		})
	case column.Int64Array:
		forEachRun(len(a.Values), func(i, j int) bool { return a.Values[i] == a.Values[j] }, func(i, length int) {
			appendIntElem(buf, a.Values[i], storage.BitWidth)
			buf.B = engine.AppendUint32(buf.B, uint32(length)) //nolint:gosec
			runs++
		})
	case column.Float32Array:
		forEachRun(len(a.Values), func(i, j int) bool { return float32BitsEqual(a.Values[i], a.Values[j]) }, func(i, length int) {
			appendFloat32Elem(buf, a.Values[i])
			buf.B = engine.AppendUint32(buf.B, uint32(length)) //nolint:gosec
			runs++
		})
	case column.Float64Array:
		forEachRun(len(a.Values), func(i, j int) bool { return float64BitsEqual(a.Values[i], a.Values[j]) }, func(i, length int) {
			appendFloat64Elem(buf, a.Values[i])
			buf.B = engine.AppendUint32(buf.B, uint32(length)) //nolint:gosec
			runs++
		})
	case column.BoolArray:
		forEachRun(len(a.Values), func(i, j int) bool {
			return a.IsNull(i) == a.IsNull(j) && (a.IsNull(i) || a.Values[i] == a.Values[j])
		}, func(i, length int) {
			appendBoolElem(buf, a.Values[i], a.IsNull(i))
			buf.B = engine.AppendUint32(buf.B, uint32(length)) //nolint:gosec
			runs++
		})
	case column.StringArray:
		var encodeErr error
		forEachStringRun(a, func(s string, null bool, length int) {
			if encodeErr != nil {
				return
			}
			if err := appendStringElem(buf, s, null); err != nil {
				encodeErr = err
				return
			}
			buf.B = engine.AppendUint32(buf.B, uint32(length)) //nolint:gosec
			runs++
		})
		if encodeErr != nil {
			return encodeErr
		}
	default:
		return errs.ErrUnsupportedType
	}

	engine.PutUint32(buf.Slice(countAt, countAt+4), uint32(runs)) //nolint:gosec

	return nil
}

func (RLECodec) Decode(payload []byte, def column.Def, rowCount int) (column.Array, error) {
	r := NewReader(payload)

	runCount, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}

	arr, err := decodeRuns(r, def, int(runCount), rowCount)
	if err != nil {
		return nil, err
	}

	if r.Remaining() != 0 {
		return nil, fmt.Errorf("rle payload has %d trailing bytes: %w", r.Remaining(), errs.ErrInvalidEncoding)
	}

	return arr, nil
}

// decodeRuns expands runCount runs into exactly rowCount rows.
func decodeRuns(r *Reader, def column.Def, runCount, rowCount int) (column.Array, error) {
	raw := RawCodec{}
	total := 0

	// Collect runs generically as a one-element array per run, then expand.
	type run struct {
		value  column.Array
		length int
	}
	runs := make([]run, 0, runCount)

	for range runCount {
		value, err := raw.DecodeFrom(r, def, 1)
		if err != nil {
			return nil, err
		}

		length, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}

		total += int(length)
		if total > rowCount {
			return nil, fmt.Errorf("rle run sum %d exceeds row count %d: %w", total, rowCount, errs.ErrInvalidEncoding)
		}

		runs = append(runs, run{value: value, length: int(length)})
	}

	if total != rowCount {
		return nil, fmt.Errorf("rle run sum %d, container declares %d rows: %w", total, rowCount, errs.ErrInvalidEncoding)
	}

	switch def.Logical {
	case format.TypeInt32:
		values := make([]int32, 0, rowCount)
		for _, ru := range runs {
			v := ru.value.(column.Int32Array).Values[0]
			for range ru.length {
				values = append(values, v)
			}
		}

		return column.Int32Array{Values: values}, nil
	case format.TypeInt64:
		values := make([]int64, 0, rowCount)
		for _, ru := range runs {
			v := ru.value.(column.Int64Array).Values[0]
			for range ru.length {
				values = append(values, v)
			}
		}

		return column.Int64Array{Values: values}, nil
	case format.TypeFloat32:
		values := make([]float32, 0, rowCount)
		for _, ru := range runs {
			v := ru.value.(column.Float32Array).Values[0]
			for range ru.length {
				values = append(values, v)
			}
		}

		return column.Float32Array{Values: values}, nil
	case format.TypeFloat64:
		values := make([]float64, 0, rowCount)
		for _, ru := range runs {
			v := ru.value.(column.Float64Array).Values[0]
			for range ru.length {
				values = append(values, v)
			}
		}

		return column.Float64Array{Values: values}, nil
	case format.TypeBoolean:
		values := make([]bool, 0, rowCount)
		var nulls []bool
		row := 0
		for _, ru := range runs {
			rv := ru.value.(column.BoolArray)
			for range ru.length {
				values = append(values, rv.Values[0])
				if rv.IsNull(0) {
					if nulls == nil {
						nulls = make([]bool, rowCount)
					}
					nulls[row] = true
				}
				row++
			}
		}

		return column.BoolArray{Values: values, Nulls: nulls}, nil
	case format.TypeString:
		values := make([]string, 0, rowCount)
		var nulls []bool
		row := 0
		for _, ru := range runs {
			rv := ru.value.(column.StringArray)
			for range ru.length {
				values = append(values, rv.Values[0])
				if rv.IsNull(0) {
					if nulls == nil {
						nulls = make([]bool, rowCount)
					}
					nulls[row] = true
				}
				row++
			}
		}

		return column.StringArray{Values: values, Nulls: nulls}, nil
	default:
		return nil, errs.ErrUnknownLogicalType
	}
}

// forEachRun walks n rows, calling emit(startIndex, runLength) for each
// maximal run of rows equal under eq.
func forEachRun(n int, eq func(i, j int) bool, emit func(start, length int)) {
	i := 0
	for i < n {
		j := i + 1
		for j < n && eq(i, j) {
			j++
		}
		emit(i, j-i)
		i = j
	}
}

func forEachStringRun(a column.StringArray, emit func(s string, null bool, length int)) {
	forEachRun(len(a.Values), func(i, j int) bool {
		return a.IsNull(i) == a.IsNull(j) && (a.IsNull(i) || a.Values[i] == a.Values[j])
	}, func(i, length int) {
		emit(a.Values[i], a.IsNull(i), length)
	})
}

// RunCount returns the number of maximal runs in the array under the same
// equality the RLE codec uses.
func RunCount(arr column.Array) int {
	runs := 0
	count := func(int, int) { runs++ }

	switch a := arr.(type) {
	case column.Int32Array:
		forEachRun(len(a.Values), func(i, j int) bool { return a.Values[i] == a.Values[j] }, count)
	case column.Int64Array:
		forEachRun(len(a.Values), func(i, j int) bool { return a.Values[i] == a.Values[j] }, count)
	case column.Float32Array:
		forEachRun(len(a.Values), func(i, j int) bool { return float32BitsEqual(a.Values[i], a.Values[j]) }, count)
	case column.Float64Array:
		forEachRun(len(a.Values), func(i, j int) bool { return float64BitsEqual(a.Values[i], a.Values[j]) }, count)
	case column.BoolArray:
		forEachRun(len(a.Values), func(i, j int) bool {
			return a.IsNull(i) == a.IsNull(j) && (a.IsNull(i) || a.Values[i] == a.Values[j])
		}, count)
	case column.StringArray:
		forEachRun(len(a.Values), func(i, j int) bool {
			return a.IsNull(i) == a.IsNull(j) && (a.IsNull(i) || a.Values[i] == a.Values[j])
		}, count)
	}

	return runs
}

// float64BitsEqual compares by bit pattern, except that all NaN payloads
// compare equal: a NaN is a null and nulls form one run.
func float64BitsEqual(x, y float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) {
		return math.IsNaN(x) && math.IsNaN(y)
	}

	return math.Float64bits(x) == math.Float64bits(y)
}

func float32BitsEqual(x, y float32) bool {
	if math.IsNaN(float64(x)) || math.IsNaN(float64(y)) {
		return math.IsNaN(float64(x)) && math.IsNaN(float64(y))
	}

	return math.Float32bits(x) == math.Float32bits(y)
}
