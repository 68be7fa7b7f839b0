package encoding

import (
	"github.com/arloliu/hybf/column"
	"github.com/arloliu/hybf/format"
)

// dictionaryMaxUniqueRatio gates dictionary encoding: the distinct count
// must not exceed this fraction of the row count.
const dictionaryMaxUniqueRatio = 0.10

// rleMinMeanRunLength gates run-length encoding: the mean run length must
// be at least this long.
const rleMinMeanRunLength = 4

// selectionOrder is the tie-break order: on equal estimated size the
// earliest applicable codec wins.
var selectionOrder = []format.CodecType{
	format.CodecNull,
	format.CodecSingleValue,
	format.CodecDictionary,
	format.CodecRLE,
	format.CodecRaw,
}

// Select returns the codec with the smallest estimated payload among those
// applicable to the column, breaking ties in selectionOrder. The selector
// is pure: it never mutates its input and is safe to call repeatedly.
func Select(arr column.Array, storage column.StorageType) Codec {
	stats := GatherStats(arr)

	var best Codec
	var bestSize uint64

	for _, tag := range selectionOrder {
		if !applicable(tag, stats) {
			continue
		}

		codec, _ := CodecFor(tag)
		size := codec.EstimateSize(arr, storage)
		if best == nil || size < bestSize {
			best = codec
			bestSize = size
		}
	}

	return best
}

// applicable evaluates a codec's applicability predicate against the
// column statistics. Raw is always applicable; the rest require at least
// one row.
func applicable(tag format.CodecType, s Stats) bool {
	switch tag {
	case format.CodecNull:
		return s.Rows > 0 && s.Nulls == s.Rows
	case format.CodecSingleValue:
		if s.Rows >= 2 && s.Nulls == 0 && s.DistinctNonNull == 1 {
			return true
		}
		// all rows identical including null state
		return s.Rows > 0 && s.Distinct == 1
	case format.CodecDictionary:
		return s.Rows > 0 && float64(s.Distinct) <= dictionaryMaxUniqueRatio*float64(s.Rows)
	case format.CodecRLE:
		return s.Rows > 0 && s.Runs*rleMinMeanRunLength <= s.Rows
	case format.CodecRaw:
		return true
	default:
		return false
	}
}
