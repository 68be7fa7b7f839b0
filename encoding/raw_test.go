package encoding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/hybf/column"
	"github.com/arloliu/hybf/errs"
	"github.com/arloliu/hybf/format"
	"github.com/arloliu/hybf/internal/pool"
)

func newTestBuffer() *pool.ByteBuffer {
	return pool.NewByteBuffer(64)
}

func encodeColumn(t *testing.T, c Codec, arr column.Array, storage column.StorageType) []byte {
	t.Helper()

	buf := pool.NewByteBuffer(64)
	require.NoError(t, c.Encode(arr, storage, buf))
	require.Equal(t, c.EstimateSize(arr, storage), uint64(buf.Len()))

	return buf.Bytes()
}

func analyzed(t *testing.T, arr column.Array) column.StorageType {
	t.Helper()

	storage, err := column.AnalyzeStorage(arr)
	require.NoError(t, err)

	return storage
}

func defFor(arr column.Array, storage column.StorageType) column.Def {
	return column.Def{Name: "c", Logical: arr.Logical(), Storage: storage}
}

func requireArrayEqual(t *testing.T, want, got column.Array) {
	t.Helper()

	require.Equal(t, want.Logical(), got.Logical())
	require.Equal(t, want.Len(), got.Len())

	for i := range want.Len() {
		require.Equal(t, want.IsNull(i), got.IsNull(i), "null state at row %d", i)
	}

	switch w := want.(type) {
	case column.Int32Array:
		require.Equal(t, w.Values, got.(column.Int32Array).Values)
	case column.Int64Array:
		require.Equal(t, w.Values, got.(column.Int64Array).Values)
	case column.Float32Array:
		g := got.(column.Float32Array)
		for i, v := range w.Values {
			if math.IsNaN(float64(v)) {
				require.True(t, math.IsNaN(float64(g.Values[i])), "row %d", i)
			} else {
				require.Equal(t, math.Float32bits(v), math.Float32bits(g.Values[i]), "row %d", i)
			}
		}
	case column.Float64Array:
		g := got.(column.Float64Array)
		for i, v := range w.Values {
			if math.IsNaN(v) {
				require.True(t, math.IsNaN(g.Values[i]), "row %d", i)
			} else {
				require.Equal(t, math.Float64bits(v), math.Float64bits(g.Values[i]), "row %d", i)
			}
		}
	case column.BoolArray:
		g := got.(column.BoolArray)
		for i, v := range w.Values {
			if !want.IsNull(i) {
				require.Equal(t, v, g.Values[i], "row %d", i)
			}
		}
	case column.StringArray:
		g := got.(column.StringArray)
		for i, v := range w.Values {
			if !want.IsNull(i) {
				require.Equal(t, v, g.Values[i], "row %d", i)
			}
		}
	}
}

func TestRawCodec_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		arr  column.Array
	}{
		{"int32 narrow", column.Int32Array{Values: []int32{1, 2, 3, -4}}},
		{"int32 wide", column.Int32Array{Values: []int32{1 << 20, -(1 << 20), 0}}},
		{"int64", column.Int64Array{Values: []int64{1 << 40, -(1 << 40), 7}}},
		{"float32", column.Float32Array{Values: []float32{1.5, -2.25, 0}}},
		{"float64", column.Float64Array{Values: []float64{math.Pi, -math.E, 0}}},
		{"float64 with nulls", column.Float64Array{Values: []float64{1.0, math.NaN(), 3.0}}},
		{"bool", column.BoolArray{Values: []bool{true, false, true}}},
		{"bool with nulls", column.BoolArray{Values: []bool{true, false, false}, Nulls: []bool{false, false, true}}},
		{"string", column.StringArray{Values: []string{"x", "", "hello"}}},
		{"string with nulls", column.StringArray{Values: []string{"x", "", "z"}, Nulls: []bool{false, true, false}}},
	}

	raw := RawCodec{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := analyzed(t, tt.arr)
			payload := encodeColumn(t, raw, tt.arr, storage)

			decoded, err := raw.Decode(payload, defFor(tt.arr, storage), tt.arr.Len())
			require.NoError(t, err)
			requireArrayEqual(t, tt.arr, decoded)
		})
	}
}

func TestRawCodec_NarrowIntegerBytes(t *testing.T) {
	arr := column.Int32Array{Values: []int32{1, 2, 3}}
	storage := analyzed(t, arr)
	require.Equal(t, uint8(8), storage.BitWidth)

	payload := encodeColumn(t, RawCodec{}, arr, storage)
	require.Equal(t, []byte{0x01, 0x02, 0x03}, payload)
}

func TestRawCodec_SignExtension(t *testing.T) {
	arr := column.Int64Array{Values: []int64{-1, -128, 127}}
	storage := analyzed(t, arr)
	require.Equal(t, uint8(8), storage.BitWidth)

	payload := encodeColumn(t, RawCodec{}, arr, storage)
	require.Equal(t, []byte{0xFF, 0x80, 0x7F}, payload)

	decoded, err := RawCodec{}.Decode(payload, defFor(arr, storage), 3)
	require.NoError(t, err)
	require.Equal(t, arr.Values, decoded.(column.Int64Array).Values)
}

func TestRawCodec_StringNullSentinel(t *testing.T) {
	arr := column.StringArray{Values: []string{"x", ""}, Nulls: []bool{false, true}}
	payload := encodeColumn(t, RawCodec{}, arr, analyzed(t, arr))
	require.Equal(t, []byte{0x00, 0x01, 'x', 0xFF, 0xFF}, payload)
}

func TestRawCodec_BooleanTriState(t *testing.T) {
	arr := column.BoolArray{Values: []bool{false, true, false}, Nulls: []bool{false, false, true}}
	payload := encodeColumn(t, RawCodec{}, arr, analyzed(t, arr))
	require.Equal(t, []byte{0x00, 0x01, 0x02}, payload)

	_, err := RawCodec{}.Decode([]byte{0x03}, defFor(arr, analyzed(t, arr)), 1)
	require.ErrorIs(t, err, errs.ErrInvalidEncoding)
}

func TestRawCodec_Truncated(t *testing.T) {
	arr := column.Int32Array{Values: []int32{1, 2, 3}}
	storage := analyzed(t, arr)

	_, err := RawCodec{}.Decode([]byte{0x01, 0x02}, defFor(arr, storage), 3)
	require.ErrorIs(t, err, errs.ErrTruncated)
}

func TestRawCodec_TrailingBytes(t *testing.T) {
	def := column.Def{
		Name:    "c",
		Logical: format.TypeInt32,
		Storage: column.StorageType{Base: format.TypeInt32, BitWidth: 8},
	}

	_, err := RawCodec{}.Decode([]byte{0x01, 0x02, 0x03, 0x04}, def, 3)
	require.ErrorIs(t, err, errs.ErrInvalidEncoding)
}
