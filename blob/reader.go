package blob

import (
	"fmt"

	"github.com/arloliu/hybf/column"
	"github.com/arloliu/hybf/encoding"
	"github.com/arloliu/hybf/errs"
	"github.com/arloliu/hybf/format"
	"github.com/arloliu/hybf/section"
)

// Sniff validates the 8-byte header and returns the container variant. It
// inspects nothing past byte 8.
func Sniff(data []byte) (format.FormatType, error) {
	header, err := section.ParseHeader(data)
	if err != nil {
		return 0, err
	}

	return header.Format, nil
}

// DecodeTable parses a hybf container and materialises every column.
// Readers never return partial tables: any error leaves no result.
func DecodeTable(data []byte) ([]column.Column, error) {
	r := encoding.NewReader(data)

	header, err := section.ReadHeader(r)
	if err != nil {
		return nil, err
	}

	rowCount, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}

	defs := make([]column.Def, header.ColumnCount)
	for i := range defs {
		defs[i], err = section.ReadDef(r)
		if err != nil {
			return nil, err
		}
	}

	switch header.Format {
	case format.FormatMinimal:
		return readMinimalColumns(r, defs, int(rowCount))
	case format.FormatCompressed:
		return readCompressedColumns(r, defs, int(rowCount))
	default:
		return nil, errs.ErrUnknownFormat
	}
}

// readMinimalColumns walks the concatenated raw payloads in column order.
func readMinimalColumns(r *encoding.Reader, defs []column.Def, rowCount int) ([]column.Column, error) {
	raw := encoding.RawCodec{}
	cols := make([]column.Column, len(defs))

	for i, def := range defs {
		arr, err := raw.DecodeFrom(r, def, rowCount)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", def.Name, err)
		}
		cols[i] = column.Column{Name: def.Name, Array: arr}
	}

	if r.Remaining() != 0 {
		return nil, fmt.Errorf("container has %d trailing bytes: %w", r.Remaining(), errs.ErrInvalidEncoding)
	}

	return cols, nil
}

// readCompressedColumns reads the per-column codec tag, payload length and
// payload. An unknown codec tag is skipped over its declared length before
// being reported, so the failure names the first unknown tag rather than
// cascading into a framing error.
func readCompressedColumns(r *encoding.Reader, defs []column.Def, rowCount int) ([]column.Column, error) {
	cols := make([]column.Column, len(defs))

	for i, def := range defs {
		tag, err := r.ReadUint8()
		if err != nil {
			return nil, err
		}

		payloadLen, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}

		payload, err := r.ReadBytes(int(payloadLen))
		if err != nil {
			return nil, err
		}

		codec, ok := encoding.CodecFor(format.CodecType(tag))
		if !ok {
			return nil, fmt.Errorf("column %q codec tag 0x%02x: %w", def.Name, tag, errs.ErrUnknownCodec)
		}

		arr, err := codec.Decode(payload, def, rowCount)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", def.Name, err)
		}
		cols[i] = column.Column{Name: def.Name, Array: arr}
	}

	if r.Remaining() != 0 {
		return nil, fmt.Errorf("container has %d trailing bytes: %w", r.Remaining(), errs.ErrInvalidEncoding)
	}

	return cols, nil
}
