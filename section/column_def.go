package section

import (
	"fmt"

	"github.com/arloliu/hybf/column"
	"github.com/arloliu/hybf/encoding"
	"github.com/arloliu/hybf/errs"
	"github.com/arloliu/hybf/format"
	"github.com/arloliu/hybf/internal/pool"
)

// Column definition layout, repeated column_count times in both formats:
//
//	name_length   : u8  (1..=255)
//	name          : UTF-8 bytes
//	logical_type  : u8
//	storage_base  : u8
//	storage_width : u8

// DefSize returns the serialised size of one column definition.
func DefSize(def column.Def) int {
	return 1 + len(def.Name) + 3
}

// AppendDef validates the definition and appends its serialised form to buf.
func AppendDef(buf *pool.ByteBuffer, def column.Def) error {
	if len(def.Name) == 0 {
		return fmt.Errorf("column name must not be empty: %w", errs.ErrInvalidColumnName)
	}
	if len(def.Name) > MaxColumnNameLength {
		return fmt.Errorf("column name length %d exceeds %d: %w", len(def.Name), MaxColumnNameLength, errs.ErrNameTooLong)
	}

	buf.Grow(DefSize(def))
	_ = buf.WriteByte(uint8(len(def.Name))) //nolint:gosec
	buf.MustWrite([]byte(def.Name))
	_ = buf.WriteByte(byte(def.Logical))
	_ = buf.WriteByte(byte(def.Storage.Base))
	_ = buf.WriteByte(byte(def.Storage.BitWidth))

	return nil
}

// ReadDef consumes one column definition and validates its tags.
func ReadDef(r *encoding.Reader) (column.Def, error) {
	nameLen, err := r.ReadUint8()
	if err != nil {
		return column.Def{}, err
	}
	if nameLen == 0 {
		return column.Def{}, errs.ErrInvalidColumnName
	}

	name, err := r.ReadBytes(int(nameLen))
	if err != nil {
		return column.Def{}, err
	}

	logical, err := r.ReadUint8()
	if err != nil {
		return column.Def{}, err
	}

	base, err := r.ReadUint8()
	if err != nil {
		return column.Def{}, err
	}

	width, err := r.ReadUint8()
	if err != nil {
		return column.Def{}, err
	}

	def := column.Def{
		Name:    string(name),
		Logical: format.LogicalType(logical),
		Storage: column.StorageType{
			Base:     format.LogicalType(base),
			BitWidth: width,
		},
	}

	if !def.Logical.Valid() {
		return column.Def{}, fmt.Errorf("logical type tag 0x%02x: %w", logical, errs.ErrUnknownLogicalType)
	}
	if !def.Storage.Base.Valid() {
		return column.Def{}, fmt.Errorf("storage base tag 0x%02x: %w", base, errs.ErrUnknownLogicalType)
	}
	if !def.Storage.ValidWidth() {
		return column.Def{}, fmt.Errorf("storage width %d for %s: %w", width, def.Storage.Base, errs.ErrInvalidStorageWidth)
	}

	return def, nil
}
