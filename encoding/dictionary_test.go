package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/hybf/column"
	"github.com/arloliu/hybf/errs"
)

func TestCodeWidth(t *testing.T) {
	tests := []struct {
		dictSize int
		want     uint8
	}{
		{0, 1},
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 4},
		{16, 4},
		{17, 8},
		{256, 8},
		{257, 16},
		{65536, 16},
		{65537, 32},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, CodeWidth(tt.dictSize), "dict size %d", tt.dictSize)
	}
}

func TestDictionaryCodec_RoundTrip(t *testing.T) {
	categories := []string{"A", "B", "C"}
	values := make([]string, 1000)
	for i := range values {
		values[i] = categories[i%3]
	}

	tests := []struct {
		name string
		arr  column.Array
	}{
		{"string categories", column.StringArray{Values: values}},
		{"int32 low cardinality", column.Int32Array{Values: repeatInt32([2]int32{10, 50}, [2]int32{-3, 50})}},
		{"float64", column.Float64Array{Values: []float64{1.5, 2.5, 1.5, 2.5, 1.5, 2.5, 1.5, 2.5, 1.5, 2.5}}},
		{"string with nulls", column.StringArray{
			Values: []string{"a", "", "a", "", "b", "a", "", "a", "b", "a"},
			Nulls:  []bool{false, true, false, true, false, false, true, false, false, false},
		}},
		{"bool with nulls", column.BoolArray{
			Values: []bool{true, false, true, false, true, false},
			Nulls:  []bool{false, false, true, false, true, false},
		}},
	}

	dict := DictionaryCodec{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := analyzed(t, tt.arr)
			payload := encodeColumn(t, dict, tt.arr, storage)

			decoded, err := dict.Decode(payload, defFor(tt.arr, storage), tt.arr.Len())
			require.NoError(t, err)
			requireArrayEqual(t, tt.arr, decoded)
		})
	}
}

func TestDictionaryCodec_PayloadLayout(t *testing.T) {
	// Three distinct strings: dictionary in first-appearance order, two-bit
	// codes.
	arr := column.StringArray{Values: []string{"B", "A", "B", "C"}}
	storage := analyzed(t, arr)

	payload := encodeColumn(t, DictionaryCodec{}, arr, storage)
	require.Equal(t, []byte{
		0x00, 0x00, 0x00, 0x03, // dictionary size
		0x00, 0x01, 'B', // code 0
		0x00, 0x01, 'A', // code 1
		0x00, 0x01, 'C', // code 2
		0x02,        // code width
		0b00_01_00_10, // codes 0,1,0,2
	}, payload)
}

func TestDictionaryCodec_NullEntry(t *testing.T) {
	arr := column.StringArray{
		Values: []string{"x", "", "x"},
		Nulls:  []bool{false, true, false},
	}
	storage := analyzed(t, arr)
	payload := encodeColumn(t, DictionaryCodec{}, arr, storage)

	// Dictionary: "x" (code 0), null sentinel (code 1).
	require.Equal(t, []byte{
		0x00, 0x00, 0x00, 0x02,
		0x00, 0x01, 'x',
		0xFF, 0xFF,
		0x01,
		0b010_00000, // codes 0,1,0
	}, payload)
}

func TestDictionaryCodec_CodeOutOfRange(t *testing.T) {
	// Dictionary of three entries, two-bit codes: 0b11 points past it.
	arr := column.StringArray{Values: []string{"a", "b", "c", "a"}}
	storage := analyzed(t, arr)
	payload := encodeColumn(t, DictionaryCodec{}, arr, storage)

	corrupted := make([]byte, len(payload))
	copy(corrupted, payload)
	corrupted[len(corrupted)-1] = 0xFF

	_, err := DictionaryCodec{}.Decode(corrupted, defFor(arr, storage), 4)
	require.ErrorIs(t, err, errs.ErrInvalidEncoding)
}

func TestDictionaryCodec_InvalidCodeWidth(t *testing.T) {
	arr := column.StringArray{Values: []string{"a", "b"}}
	storage := analyzed(t, arr)
	payload := encodeColumn(t, DictionaryCodec{}, arr, storage)

	corrupted := make([]byte, len(payload))
	copy(corrupted, payload)
	// Code width byte sits right after the two dictionary entries.
	corrupted[4+3+3] = 3

	_, err := DictionaryCodec{}.Decode(corrupted, defFor(arr, storage), 2)
	require.ErrorIs(t, err, errs.ErrInvalidEncoding)
}
