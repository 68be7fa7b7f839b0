// Package errs defines the sentinel errors returned by the hybf library.
//
// All errors surface at the EncodeTable/DecodeTable boundary; nothing is
// recovered internally. Callers match them with errors.Is.
package errs

import "errors"

var (
	// ErrInvalidMagic is returned when the first 4 bytes are not "HYBF".
	ErrInvalidMagic = errors.New("invalid magic number")

	// ErrUnsupportedVersion is returned when the version byte is not 1.
	ErrUnsupportedVersion = errors.New("unsupported format version")

	// ErrUnknownFormat is returned when the format type byte is neither
	// Minimal (1) nor Compressed (2).
	ErrUnknownFormat = errors.New("unknown format type")

	// ErrUnknownLogicalType is returned when a column definition carries a
	// logical type tag outside the supported set.
	ErrUnknownLogicalType = errors.New("unknown logical type")

	// ErrUnknownCodec is returned when a compressed column carries an
	// unrecognised codec tag. The reader skips the payload before reporting.
	ErrUnknownCodec = errors.New("unknown codec tag")

	// ErrTruncated is returned when the source ends before a field was
	// fully read.
	ErrTruncated = errors.New("truncated data")

	// ErrInvalidEncoding is returned when an internal payload invariant is
	// violated, such as an RLE run sum that does not match the row count or
	// a dictionary code outside the dictionary.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrNameTooLong is returned when a column name exceeds 255 bytes.
	ErrNameTooLong = errors.New("column name too long")

	// ErrInvalidColumnName is returned when a column name is empty.
	ErrInvalidColumnName = errors.New("invalid column name")

	// ErrUnsupportedType is returned on the write side when a column's
	// element type has no logical type mapping.
	ErrUnsupportedType = errors.New("unsupported column type")

	// ErrRowCountMismatch is returned when the columns of a table do not
	// all share the same row count.
	ErrRowCountMismatch = errors.New("column row count mismatch")

	// ErrInvalidStorageWidth is returned when a column definition declares
	// a storage width the logical type cannot use.
	ErrInvalidStorageWidth = errors.New("invalid storage width")

	// ErrInvalidCompression is returned when file plumbing is asked for an
	// unknown compression type.
	ErrInvalidCompression = errors.New("invalid compression type")
)
