package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/hybf/column"
	"github.com/arloliu/hybf/errs"
)

func TestSingleValueCodec_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		arr  column.Array
	}{
		{"int32", column.Int32Array{Values: []int32{7, 7, 7, 7, 7}}},
		{"int64", column.Int64Array{Values: []int64{-9000, -9000, -9000}}},
		{"float64", column.Float64Array{Values: []float64{2.5, 2.5}}},
		{"string", column.StringArray{Values: []string{"on", "on", "on"}}},
		{"bool", column.BoolArray{Values: []bool{true, true}}},
		{"null string", column.StringArray{Values: []string{"", ""}, Nulls: []bool{true, true}}},
	}

	sv := SingleValueCodec{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := analyzed(t, tt.arr)
			payload := encodeColumn(t, sv, tt.arr, storage)

			decoded, err := sv.Decode(payload, defFor(tt.arr, storage), tt.arr.Len())
			require.NoError(t, err)
			requireArrayEqual(t, tt.arr, decoded)
		})
	}
}

func TestSingleValueCodec_PayloadLayout(t *testing.T) {
	// Value first, then u32 row count.
	arr := column.Int32Array{Values: []int32{7, 7, 7, 7, 7}}
	storage := analyzed(t, arr)
	require.Equal(t, uint8(8), storage.BitWidth)

	payload := encodeColumn(t, SingleValueCodec{}, arr, storage)
	require.Equal(t, []byte{0x07, 0x00, 0x00, 0x00, 0x05}, payload)
}

func TestSingleValueCodec_RowCountMismatch(t *testing.T) {
	arr := column.Int32Array{Values: []int32{7, 7}}
	storage := analyzed(t, arr)
	payload := encodeColumn(t, SingleValueCodec{}, arr, storage)

	_, err := SingleValueCodec{}.Decode(payload, defFor(arr, storage), 3)
	require.ErrorIs(t, err, errs.ErrInvalidEncoding)
}

func TestSingleValueCodec_EmptyColumn(t *testing.T) {
	arr := column.Int32Array{}
	storage := analyzed(t, arr)

	buf := newTestBuffer()
	err := SingleValueCodec{}.Encode(arr, storage, buf)
	require.ErrorIs(t, err, errs.ErrInvalidEncoding)
}
