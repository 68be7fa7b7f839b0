package section

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/hybf/column"
	"github.com/arloliu/hybf/encoding"
	"github.com/arloliu/hybf/errs"
	"github.com/arloliu/hybf/format"
	"github.com/arloliu/hybf/internal/pool"
)

func TestColumnDef_RoundTrip(t *testing.T) {
	defs := []column.Def{
		{Name: "a", Logical: format.TypeInt32, Storage: column.StorageType{Base: format.TypeInt32, BitWidth: 8}},
		{Name: "value", Logical: format.TypeFloat64, Storage: column.StorageType{Base: format.TypeFloat64, BitWidth: 64}},
		{Name: strings.Repeat("n", 255), Logical: format.TypeString, Storage: column.StorageType{Base: format.TypeString, BitWidth: 8}},
	}

	buf := pool.NewByteBuffer(64)
	for _, def := range defs {
		require.NoError(t, AppendDef(buf, def))
	}

	r := encoding.NewReader(buf.Bytes())
	for _, want := range defs {
		got, err := ReadDef(r)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	require.Equal(t, 0, r.Remaining())
}

func TestColumnDef_Layout(t *testing.T) {
	def := column.Def{Name: "a", Logical: format.TypeInt32, Storage: column.StorageType{Base: format.TypeInt32, BitWidth: 8}}

	buf := pool.NewByteBuffer(16)
	require.NoError(t, AppendDef(buf, def))
	require.Equal(t, []byte{0x01, 'a', 0x01, 0x01, 0x08}, buf.Bytes())
}

func TestAppendDef_NameValidation(t *testing.T) {
	buf := pool.NewByteBuffer(16)

	err := AppendDef(buf, column.Def{Name: "", Logical: format.TypeInt32, Storage: column.StorageType{Base: format.TypeInt32, BitWidth: 8}})
	require.ErrorIs(t, err, errs.ErrInvalidColumnName)

	err = AppendDef(buf, column.Def{Name: strings.Repeat("x", 256), Logical: format.TypeInt32, Storage: column.StorageType{Base: format.TypeInt32, BitWidth: 8}})
	require.ErrorIs(t, err, errs.ErrNameTooLong)
}

func TestReadDef_Errors(t *testing.T) {
	encode := func(def column.Def) []byte {
		buf := pool.NewByteBuffer(16)
		require.NoError(t, AppendDef(buf, def))

		return buf.Bytes()
	}

	base := column.Def{Name: "c", Logical: format.TypeInt32, Storage: column.StorageType{Base: format.TypeInt32, BitWidth: 8}}

	t.Run("unknown logical type", func(t *testing.T) {
		data := encode(base)
		data[2] = 0x09
		_, err := ReadDef(encoding.NewReader(data))
		require.ErrorIs(t, err, errs.ErrUnknownLogicalType)
	})

	t.Run("unknown storage base", func(t *testing.T) {
		data := encode(base)
		data[3] = 0x00
		_, err := ReadDef(encoding.NewReader(data))
		require.ErrorIs(t, err, errs.ErrUnknownLogicalType)
	})

	t.Run("invalid storage width", func(t *testing.T) {
		data := encode(base)
		data[4] = 12
		_, err := ReadDef(encoding.NewReader(data))
		require.ErrorIs(t, err, errs.ErrInvalidStorageWidth)
	})

	t.Run("truncated", func(t *testing.T) {
		data := encode(base)
		_, err := ReadDef(encoding.NewReader(data[:3]))
		require.ErrorIs(t, err, errs.ErrTruncated)
	})
}
