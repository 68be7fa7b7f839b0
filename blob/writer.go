package blob

import (
	"fmt"
	"math"

	"github.com/arloliu/hybf/column"
	"github.com/arloliu/hybf/encoding"
	"github.com/arloliu/hybf/endian"
	"github.com/arloliu/hybf/errs"
	"github.com/arloliu/hybf/format"
	"github.com/arloliu/hybf/internal/pool"
	"github.com/arloliu/hybf/section"
)

var engine = endian.GetBigEndianEngine()

// EncodeTable serialises the columns into a hybf container and returns the
// bytes. The write is all or nothing: on error no partial output exists.
//
// The container variant is chosen here: when the summed raw payload
// estimate plus fixed overhead stays below section.MinimalSizeThreshold the
// Minimal format is written, otherwise the Compressed format with a
// selector-chosen codec per column.
func EncodeTable(cols []column.Column) ([]byte, error) {
	if len(cols) > section.MaxColumnCount {
		return nil, fmt.Errorf("%d columns exceed maximum %d: %w", len(cols), section.MaxColumnCount, errs.ErrUnsupportedType)
	}

	rowCount := 0
	if len(cols) > 0 {
		rowCount = cols[0].Array.Len()
	}
	if uint64(rowCount) > math.MaxUint32 {
		return nil, fmt.Errorf("row count %d exceeds u32 range: %w", rowCount, errs.ErrUnsupportedType)
	}

	defs := make([]column.Def, len(cols))
	overhead := section.HeaderSize + section.RowCountSize
	var rawSize uint64

	raw := encoding.RawCodec{}
	for i, col := range cols {
		if col.Array.Len() != rowCount {
			return nil, fmt.Errorf("column %q has %d rows, expected %d: %w",
				col.Name, col.Array.Len(), rowCount, errs.ErrRowCountMismatch)
		}

		storage, err := column.AnalyzeStorage(col.Array)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", col.Name, err)
		}

		defs[i] = column.Def{Name: col.Name, Logical: col.Array.Logical(), Storage: storage}
		overhead += section.DefSize(defs[i])
		rawSize += raw.EstimateSize(col.Array, storage)
	}

	ft := format.FormatCompressed
	if rawSize+uint64(overhead) < section.MinimalSizeThreshold {
		ft = format.FormatMinimal
	}

	buf := pool.GetTableBuffer()
	defer pool.PutTableBuffer(buf)

	header := section.Header{Format: ft, ColumnCount: uint16(len(cols))} //nolint:gosec
	buf.MustWrite(header.Bytes())
	buf.B = engine.AppendUint32(buf.B, uint32(rowCount)) //nolint:gosec

	for _, def := range defs {
		if err := section.AppendDef(buf, def); err != nil {
			return nil, err
		}
	}

	var err error
	if ft == format.FormatMinimal {
		err = writeMinimalColumns(buf, cols, defs)
	} else {
		err = writeCompressedColumns(buf, cols, defs)
	}
	if err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// writeMinimalColumns writes each column's raw payload back to back, no
// per-column framing.
func writeMinimalColumns(buf *pool.ByteBuffer, cols []column.Column, defs []column.Def) error {
	raw := encoding.RawCodec{}
	for i, col := range cols {
		if err := raw.Encode(col.Array, defs[i].Storage, buf); err != nil {
			return fmt.Errorf("column %q: %w", col.Name, err)
		}
	}

	return nil
}

// writeCompressedColumns writes each column as codec tag, u32 payload
// length, payload.
func writeCompressedColumns(buf *pool.ByteBuffer, cols []column.Column, defs []column.Def) error {
	for i, col := range cols {
		codec := encoding.Select(col.Array, defs[i].Storage)

		_ = buf.WriteByte(byte(codec.Tag()))
		lengthAt := buf.Len()
		buf.B = engine.AppendUint32(buf.B, 0) // patched after the payload is written

		payloadStart := buf.Len()
		if err := codec.Encode(col.Array, defs[i].Storage, buf); err != nil {
			return fmt.Errorf("column %q: %w", col.Name, err)
		}

		payloadLen := buf.Len() - payloadStart
		if uint64(payloadLen) > math.MaxUint32 {
			return fmt.Errorf("column %q payload exceeds u32 range: %w", col.Name, errs.ErrUnsupportedType)
		}
		engine.PutUint32(buf.Slice(lengthAt, lengthAt+4), uint32(payloadLen)) //nolint:gosec
	}

	return nil
}
