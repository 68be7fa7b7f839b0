// Package hybf implements HYBF, a self-describing, column-oriented binary
// container for tabular data.
//
// HYBF is tuned for two regimes. Very small tables, where metadata overhead
// dominates, are written as the Minimal container: raw columns at analysed
// bit widths with no per-column framing. Larger tables are written as the
// Compressed container, where every column independently picks the cheapest
// of five codecs (Raw, SingleValue, RLE, Dictionary, Null). A single reader
// spans both: the 8-byte header identifies the variant in use.
//
// # Basic Usage
//
// Writing and reading a table:
//
//	import (
//	    "github.com/arloliu/hybf"
//	    "github.com/arloliu/hybf/column"
//	)
//
//	cols := []column.Column{
//	    {Name: "id", Array: column.Int32Array{Values: []int32{1, 2, 3}}},
//	    {Name: "name", Array: column.StringArray{Values: []string{"x", "y", "z"}}},
//	}
//
//	var buf bytes.Buffer
//	if err := hybf.WriteTable(&buf, cols); err != nil {
//	    return err
//	}
//
//	decoded, err := hybf.ReadTable(&buf)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the blob
// package, plus file plumbing with optional whole-file compression. For
// fine-grained control (in-memory encode/decode, per-column codecs,
// storage analysis) use the blob, encoding and column packages directly.
package hybf

import (
	"fmt"
	"io"

	"github.com/arloliu/hybf/blob"
	"github.com/arloliu/hybf/column"
	"github.com/arloliu/hybf/errs"
	"github.com/arloliu/hybf/format"
	"github.com/arloliu/hybf/section"
)

// WriteTable encodes the columns and writes the complete container to w.
//
// The write is never partial at the core level: encoding happens fully in
// memory before the first byte reaches w. If w itself fails mid-write its
// position is undefined and the caller owns truncation.
func WriteTable(w io.Writer, cols []column.Column) error {
	data, err := blob.EncodeTable(cols)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	return nil
}

// ReadTable reads a complete container from r and materialises every
// column. It never returns a partial table.
func ReadTable(r io.Reader) ([]column.Column, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}

	return blob.DecodeTable(data)
}

// SniffFormat reads and validates the 8-byte header at the current
// position of r, then seeks back so a subsequent ReadTable sees the whole
// container.
func SniffFormat(r io.ReadSeeker) (format.FormatType, error) {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fmt.Errorf("sniff format: %w", err)
	}

	header := make([]byte, section.HeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			err = errs.ErrTruncated
		}

		return 0, err
	}

	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return 0, fmt.Errorf("sniff format: %w", err)
	}

	return blob.Sniff(header)
}
