// Package section defines the fixed framing of the hybf container: the
// 8-byte header shared by both formats, the row count block, and the
// per-column definitions.
package section

// Magic is the 4-byte signature at offset 0 of every hybf container.
const Magic = "HYBF"

// Version is the container version this implementation reads and writes.
const Version = 0x01

const (
	HeaderSize   = 8 // magic (4) + version (1) + format type (1) + column count (2)
	RowCountSize = 4 // u32 row count immediately after the header

	// MinimalSizeThreshold is the dispatch boundary: when the estimated
	// raw payload plus fixed overhead is below this many bytes the writer
	// emits the Minimal container. It is a hard constant of format
	// version 1.
	MinimalSizeThreshold = 4096

	// MaxColumnNameLength bounds the u8 length-prefixed column name.
	MaxColumnNameLength = 255

	// MaxColumnCount bounds the u16 column count field.
	MaxColumnCount = 0xFFFF
)
