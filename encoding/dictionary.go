package encoding

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/arloliu/hybf/column"
	"github.com/arloliu/hybf/errs"
	"github.com/arloliu/hybf/format"
	"github.com/arloliu/hybf/internal/pool"
)

// DictionaryCodec stores the distinct values of a column once, followed by
// a bit-packed stream of per-row codes.
//
// Payload layout: u32 dictionary size, the dictionary entries serialised as
// raw elements in ascending code order, a u8 code width, then row_count
// codes packed MSB-first. Codes are assigned in first-appearance order; a
// null, when present, claims its own dictionary entry at its first
// appearance.
type DictionaryCodec struct{}

var _ Codec = DictionaryCodec{}

func (DictionaryCodec) Tag() format.CodecType {
	return format.CodecDictionary
}

// CodeWidth returns the bits per code for a dictionary of the given size:
// ceil(log2(max(2, size))) rounded up to the nearest of {1,2,4,8,16,32}.
func CodeWidth(dictSize int) uint8 {
	if dictSize < 2 {
		dictSize = 2
	}

	need := bits.Len(uint(dictSize - 1))
	for _, w := range []uint8{1, 2, 4, 8, 16, 32} {
		if int(w) >= need {
			return w
		}
	}

	return 32
}

func validCodeWidth(w uint8) bool {
	switch w {
	case 1, 2, 4, 8, 16, 32:
		return true
	default:
		return false
	}
}

func (DictionaryCodec) EstimateSize(arr column.Array, storage column.StorageType) uint64 {
	entries, codes, err := buildDictionary(arr)
	if err != nil {
		return math.MaxUint64
	}

	raw := RawCodec{}
	width := CodeWidth(entries.Len())

	return 4 + raw.EstimateSize(entries, storage) + 1 + uint64(PackedSize(len(codes), width))
}

func (DictionaryCodec) Encode(arr column.Array, storage column.StorageType, buf *pool.ByteBuffer) error {
	entries, codes, err := buildDictionary(arr)
	if err != nil {
		return err
	}

	buf.B = engine.AppendUint32(buf.B, uint32(entries.Len())) //nolint:gosec

	if err := (RawCodec{}).Encode(entries, storage, buf); err != nil {
		return err
	}

	width := CodeWidth(entries.Len())
	_ = buf.WriteByte(width)
	PackCodes(buf, codes, width)

	return nil
}

func (DictionaryCodec) Decode(payload []byte, def column.Def, rowCount int) (column.Array, error) {
	r := NewReader(payload)

	dictSize, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	if dictSize == 0 && rowCount > 0 {
		return nil, fmt.Errorf("empty dictionary for %d rows: %w", rowCount, errs.ErrInvalidEncoding)
	}

	entries, err := (RawCodec{}).DecodeFrom(r, def, int(dictSize))
	if err != nil {
		return nil, err
	}

	width, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	if !validCodeWidth(width) {
		return nil, fmt.Errorf("dictionary code width %d: %w", width, errs.ErrInvalidEncoding)
	}

	codes, err := UnpackCodes(r, rowCount, width)
	if err != nil {
		return nil, err
	}
	if r.Remaining() != 0 {
		return nil, fmt.Errorf("dictionary payload has %d trailing bytes: %w", r.Remaining(), errs.ErrInvalidEncoding)
	}

	for _, c := range codes {
		if c >= dictSize {
			return nil, fmt.Errorf("dictionary code %d >= dictionary size %d: %w", c, dictSize, errs.ErrInvalidEncoding)
		}
	}

	return gatherEntries(entries, codes)
}

// buildDictionary assigns codes in first-appearance order and returns the
// dictionary entries as a typed array in ascending code order.
func buildDictionary(arr column.Array) (column.Array, []uint32, error) {
	codes := make([]uint32, arr.Len())

	switch a := arr.(type) {
	case column.Int32Array:
		seen := make(map[int32]uint32, 16)
		var entries []int32
		for i, v := range a.Values {
			code, ok := seen[v]
			if !ok {
				code = uint32(len(entries)) //nolint:gosec
				seen[v] = code
				entries = append(entries, v)
			}
			codes[i] = code
		}

		return column.Int32Array{Values: entries}, codes, nil
	case column.Int64Array:
		seen := make(map[int64]uint32, 16)
		var entries []int64
		for i, v := range a.Values {
			code, ok := seen[v]
			if !ok {
				code = uint32(len(entries)) //nolint:gosec
				seen[v] = code
				entries = append(entries, v)
			}
			codes[i] = code
		}

		return column.Int64Array{Values: entries}, codes, nil
	case column.Float32Array:
		seen := make(map[uint32]uint32, 16)
		var entries []float32
		for i, v := range a.Values {
			key := math.Float32bits(v)
			if a.IsNull(i) {
				// canonical key: every NaN payload is the same null
				key = math.Float32bits(float32(math.NaN()))
			}
			code, ok := seen[key]
			if !ok {
				code = uint32(len(entries)) //nolint:gosec
				seen[key] = code
				entries = append(entries, v)
			}
			codes[i] = code
		}

		return column.Float32Array{Values: entries}, codes, nil
	case column.Float64Array:
		seen := make(map[uint64]uint32, 16)
		var entries []float64
		for i, v := range a.Values {
			key := math.Float64bits(v)
			if a.IsNull(i) {
				key = math.Float64bits(math.NaN())
			}
			code, ok := seen[key]
			if !ok {
				code = uint32(len(entries)) //nolint:gosec
				seen[key] = code
				entries = append(entries, v)
			}
			codes[i] = code
		}

		return column.Float64Array{Values: entries}, codes, nil
	case column.BoolArray:
		var seen [3]int // false, true, null; -1 when absent
		seen[0], seen[1], seen[2] = -1, -1, -1
		var entries column.BoolArray
		for i, v := range a.Values {
			slot := 0
			switch {
			case a.IsNull(i):
				slot = 2
			case v:
				slot = 1
			}
			if seen[slot] < 0 {
				seen[slot] = entries.Len()
				entries.Values = append(entries.Values, v)
				entries.Nulls = append(entries.Nulls, a.IsNull(i))
			}
			codes[i] = uint32(seen[slot]) //nolint:gosec
		}
		if !anyTrue(entries.Nulls) {
			entries.Nulls = nil
		}

		return entries, codes, nil
	case column.StringArray:
		seen := make(map[string]uint32, 16)
		nullCode := -1
		var entries column.StringArray
		for i, v := range a.Values {
			if a.IsNull(i) {
				if nullCode < 0 {
					nullCode = entries.Len()
					entries.Values = append(entries.Values, "")
					entries.Nulls = append(entries.Nulls, true)
				}
				codes[i] = uint32(nullCode) //nolint:gosec

				continue
			}
			code, ok := seen[v]
			if !ok {
				code = uint32(entries.Len()) //nolint:gosec
				seen[v] = code
				entries.Values = append(entries.Values, v)
				entries.Nulls = append(entries.Nulls, false)
			}
			codes[i] = code
		}
		if nullCode < 0 {
			entries.Nulls = nil
		}

		return entries, codes, nil
	default:
		return nil, nil, errs.ErrUnsupportedType
	}
}

// gatherEntries materialises the output array by indexing the dictionary
// with each row's code.
func gatherEntries(entries column.Array, codes []uint32) (column.Array, error) {
	switch e := entries.(type) {
	case column.Int32Array:
		values := make([]int32, len(codes))
		for i, c := range codes {
			values[i] = e.Values[c]
		}

		return column.Int32Array{Values: values}, nil
	case column.Int64Array:
		values := make([]int64, len(codes))
		for i, c := range codes {
			values[i] = e.Values[c]
		}

		return column.Int64Array{Values: values}, nil
	case column.Float32Array:
		values := make([]float32, len(codes))
		for i, c := range codes {
			values[i] = e.Values[c]
		}

		return column.Float32Array{Values: values}, nil
	case column.Float64Array:
		values := make([]float64, len(codes))
		for i, c := range codes {
			values[i] = e.Values[c]
		}

		return column.Float64Array{Values: values}, nil
	case column.BoolArray:
		values := make([]bool, len(codes))
		var nulls []bool
		for i, c := range codes {
			values[i] = e.Values[c]
			if e.IsNull(int(c)) {
				if nulls == nil {
					nulls = make([]bool, len(codes))
				}
				nulls[i] = true
			}
		}

		return column.BoolArray{Values: values, Nulls: nulls}, nil
	case column.StringArray:
		values := make([]string, len(codes))
		var nulls []bool
		for i, c := range codes {
			values[i] = e.Values[c]
			if e.IsNull(int(c)) {
				if nulls == nil {
					nulls = make([]bool, len(codes))
				}
				nulls[i] = true
			}
		}

		return column.StringArray{Values: values, Nulls: nulls}, nil
	default:
		return nil, errs.ErrUnsupportedType
	}
}

func anyTrue(bs []bool) bool {
	for _, b := range bs {
		if b {
			return true
		}
	}

	return false
}
