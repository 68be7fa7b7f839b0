package column

import (
	"github.com/arloliu/hybf/errs"
	"github.com/arloliu/hybf/format"
)

// StorageType describes how a column is physically laid out: the base
// logical type of each stored element and the number of bits per value used
// by the raw encoding.
type StorageType struct {
	Base     format.LogicalType
	BitWidth uint8
}

// Def is the on-disk descriptor of a column. It is produced by analysis at
// write time, recorded verbatim in the file, and reconstructed unchanged on
// read.
type Def struct {
	Name    string
	Logical format.LogicalType
	Storage StorageType
}

// AnalyzeStorage inspects a column's values and returns the storage type
// the raw encoding will use.
//
// Integer columns pick the smallest width from {8, 16, 32, 64} whose signed
// range holds every observed value. The reader always sign-extends from the
// declared width, so the signed range applies even to non-negative columns.
// Floats keep their natural width, strings are byte-oriented, and booleans
// use one tri-state byte per value.
func AnalyzeStorage(arr Array) (StorageType, error) {
	switch a := arr.(type) {
	case Int32Array:
		minV, maxV := int64RangeOf32(a.Values)
		return StorageType{Base: format.TypeInt32, BitWidth: intBitWidth(minV, maxV)}, nil
	case Int64Array:
		minV, maxV := int64Range(a.Values)
		return StorageType{Base: format.TypeInt64, BitWidth: intBitWidth(minV, maxV)}, nil
	case Float32Array:
		return StorageType{Base: format.TypeFloat32, BitWidth: 32}, nil
	case Float64Array:
		return StorageType{Base: format.TypeFloat64, BitWidth: 64}, nil
	case StringArray:
		return StorageType{Base: format.TypeString, BitWidth: 8}, nil
	case BoolArray:
		return StorageType{Base: format.TypeBoolean, BitWidth: 8}, nil
	default:
		return StorageType{}, errs.ErrUnsupportedType
	}
}

// ValidWidth reports whether width is a legal storage width for the base
// logical type.
func (s StorageType) ValidWidth() bool {
	switch s.Base {
	case format.TypeInt32:
		return s.BitWidth == 8 || s.BitWidth == 16 || s.BitWidth == 32
	case format.TypeInt64:
		return s.BitWidth == 8 || s.BitWidth == 16 || s.BitWidth == 32 || s.BitWidth == 64
	case format.TypeFloat32:
		return s.BitWidth == 32
	case format.TypeFloat64:
		return s.BitWidth == 64
	case format.TypeString, format.TypeBoolean:
		return s.BitWidth == 8
	default:
		return false
	}
}

func int64RangeOf32(values []int32) (int64, int64) {
	if len(values) == 0 {
		return 0, 0
	}

	minV, maxV := values[0], values[0]
	for _, v := range values[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	return int64(minV), int64(maxV)
}

func int64Range(values []int64) (int64, int64) {
	if len(values) == 0 {
		return 0, 0
	}

	minV, maxV := values[0], values[0]
	for _, v := range values[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	return minV, maxV
}

// intBitWidth returns the smallest width from {8, 16, 32, 64} whose signed
// range holds both bounds.
func intBitWidth(minV, maxV int64) uint8 {
	for _, w := range []uint8{8, 16, 32} {
		lo := int64(-1) << (w - 1)
		hi := int64(1)<<(w-1) - 1
		if minV >= lo && maxV <= hi {
			return w
		}
	}

	return 64
}
