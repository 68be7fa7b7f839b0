package encoding

import (
	"math"

	"github.com/arloliu/hybf/column"
	"github.com/arloliu/hybf/internal/hash"
)

// Stats holds the cheap single-pass statistics that drive codec selection.
type Stats struct {
	// Rows is the column length.
	Rows int
	// Nulls is the number of null rows.
	Nulls int
	// Distinct counts distinct values, with all nulls collapsing into a
	// single pseudo-value.
	Distinct int
	// DistinctNonNull counts distinct non-null values.
	DistinctNonNull int
	// Runs is the number of maximal runs of equal rows.
	Runs int
}

// GatherStats computes the statistics for one column. String values are
// counted by xxHash64 fingerprint so the pass retains no string keys.
func GatherStats(arr column.Array) Stats {
	s := Stats{
		Rows:  arr.Len(),
		Nulls: column.NullCount(arr),
		Runs:  RunCount(arr),
	}

	switch a := arr.(type) {
	case column.Int32Array:
		seen := make(map[int32]struct{}, 16)
		for _, v := range a.Values {
			seen[v] = struct{}{}
		}
		s.DistinctNonNull = len(seen)
	case column.Int64Array:
		seen := make(map[int64]struct{}, 16)
		for _, v := range a.Values {
			seen[v] = struct{}{}
		}
		s.DistinctNonNull = len(seen)
	case column.Float32Array:
		seen := make(map[uint32]struct{}, 16)
		for i, v := range a.Values {
			if a.IsNull(i) {
				continue
			}
			seen[math.Float32bits(v)] = struct{}{}
		}
		s.DistinctNonNull = len(seen)
	case column.Float64Array:
		seen := make(map[uint64]struct{}, 16)
		for i, v := range a.Values {
			if a.IsNull(i) {
				continue
			}
			seen[math.Float64bits(v)] = struct{}{}
		}
		s.DistinctNonNull = len(seen)
	case column.BoolArray:
		var seenFalse, seenTrue bool
		for i, v := range a.Values {
			if a.IsNull(i) {
				continue
			}
			if v {
				seenTrue = true
			} else {
				seenFalse = true
			}
		}
		if seenFalse {
			s.DistinctNonNull++
		}
		if seenTrue {
			s.DistinctNonNull++
		}
	case column.StringArray:
		seen := make(map[uint64]struct{}, 16)
		for i, v := range a.Values {
			if a.IsNull(i) {
				continue
			}
			seen[hash.ID(v)] = struct{}{}
		}
		s.DistinctNonNull = len(seen)
	}

	s.Distinct = s.DistinctNonNull
	if s.Nulls > 0 {
		s.Distinct++
	}

	return s
}
