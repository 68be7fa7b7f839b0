// Package column defines the in-memory data model for hybf tables: the
// typed column arrays handed to the encoder, the storage descriptors the
// analysis produces, and the on-disk column definition reconstructed by the
// reader.
package column

import (
	"math"

	"github.com/arloliu/hybf/format"
)

// Array is the tagged sum of supported column value containers.
//
// It is a closed set: exactly Int32Array, Int64Array, Float32Array,
// Float64Array, BoolArray and StringArray implement it. Codecs dispatch on
// the concrete type; there is no way to add members from outside the
// package.
type Array interface {
	// Len returns the number of rows in the column.
	Len() int
	// Logical returns the user-visible type of the column.
	Logical() format.LogicalType
	// IsNull reports whether the value at index i is null.
	IsNull(i int) bool

	sealed()
}

// Int32Array holds signed 32-bit integers. Integer columns are non-null by
// format rule; nullable integer data must be widened to Float64Array
// (NaN-as-null) or StringArray at ingest.
type Int32Array struct {
	Values []int32
}

func (a Int32Array) Len() int                    { return len(a.Values) }
func (a Int32Array) Logical() format.LogicalType { return format.TypeInt32 }
func (a Int32Array) IsNull(int) bool             { return false }
func (Int32Array) sealed()                       {}

// Int64Array holds signed 64-bit integers, non-null by format rule.
type Int64Array struct {
	Values []int64
}

func (a Int64Array) Len() int                    { return len(a.Values) }
func (a Int64Array) Logical() format.LogicalType { return format.TypeInt64 }
func (a Int64Array) IsNull(int) bool             { return false }
func (Int64Array) sealed()                       {}

// Float32Array holds IEEE-754 binary32 values. NaN encodes null.
type Float32Array struct {
	Values []float32
}

func (a Float32Array) Len() int                    { return len(a.Values) }
func (a Float32Array) Logical() format.LogicalType { return format.TypeFloat32 }
func (a Float32Array) IsNull(i int) bool           { return math.IsNaN(float64(a.Values[i])) }
func (Float32Array) sealed()                       {}

// Float64Array holds IEEE-754 binary64 values. NaN encodes null.
type Float64Array struct {
	Values []float64
}

func (a Float64Array) Len() int                    { return len(a.Values) }
func (a Float64Array) Logical() format.LogicalType { return format.TypeFloat64 }
func (a Float64Array) IsNull(i int) bool           { return math.IsNaN(a.Values[i]) }
func (Float64Array) sealed()                       {}

// BoolArray holds booleans with an optional null mask. A nil Nulls slice
// means the column has no nulls; otherwise Nulls must have the same length
// as Values.
type BoolArray struct {
	Values []bool
	Nulls  []bool
}

func (a BoolArray) Len() int                    { return len(a.Values) }
func (a BoolArray) Logical() format.LogicalType { return format.TypeBoolean }
func (a BoolArray) IsNull(i int) bool           { return a.Nulls != nil && a.Nulls[i] }
func (BoolArray) sealed()                       {}

// StringArray holds UTF-8 text with an optional null mask. A nil Nulls
// slice means the column has no nulls; otherwise Nulls must have the same
// length as Values. A null row's Values entry is ignored.
type StringArray struct {
	Values []string
	Nulls  []bool
}

func (a StringArray) Len() int                    { return len(a.Values) }
func (a StringArray) Logical() format.LogicalType { return format.TypeString }
func (a StringArray) IsNull(i int) bool           { return a.Nulls != nil && a.Nulls[i] }
func (StringArray) sealed()                       {}

// Column pairs a name with its values. The name must be 1 to 255 bytes of
// UTF-8.
type Column struct {
	Name  string
	Array Array
}

// NullCount returns the number of null rows in the array.
func NullCount(arr Array) int {
	n := 0
	for i := range arr.Len() {
		if arr.IsNull(i) {
			n++
		}
	}

	return n
}
