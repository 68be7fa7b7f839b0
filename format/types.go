package format

type (
	// LogicalType is the user-visible element type of a column.
	LogicalType uint8
	// CodecType identifies the encoding applied to a column payload.
	CodecType uint8
	// FormatType identifies the container variant recorded in the header.
	FormatType uint8
	// CompressionType identifies an optional whole-file compression wrapper.
	CompressionType uint8
)

const (
	TypeInt32   LogicalType = 0x1 // TypeInt32 represents a signed 32-bit integer column.
	TypeInt64   LogicalType = 0x2 // TypeInt64 represents a signed 64-bit integer column.
	TypeFloat32 LogicalType = 0x3 // TypeFloat32 represents an IEEE-754 binary32 column; NaN encodes null.
	TypeFloat64 LogicalType = 0x4 // TypeFloat64 represents an IEEE-754 binary64 column; NaN encodes null.
	TypeString  LogicalType = 0x5 // TypeString represents a UTF-8 text column.
	TypeBoolean LogicalType = 0x6 // TypeBoolean represents a tri-state boolean column.

	CodecRaw         CodecType = 0x1 // CodecRaw stores values at the analysed storage width, row-major.
	CodecSingleValue CodecType = 0x2 // CodecSingleValue stores one value plus a row count.
	CodecRLE         CodecType = 0x3 // CodecRLE stores (value, run length) pairs.
	CodecDictionary  CodecType = 0x4 // CodecDictionary stores distinct values plus a bit-packed code stream.
	CodecNull        CodecType = 0x5 // CodecNull stores a row count only.

	FormatMinimal    FormatType = 0x1 // FormatMinimal is the uncompressed small-table container.
	FormatCompressed FormatType = 0x2 // FormatCompressed is the per-column encoded container.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Valid reports whether the tag is a member of the closed logical type set.
func (t LogicalType) Valid() bool {
	return t >= TypeInt32 && t <= TypeBoolean
}

func (t LogicalType) String() string {
	switch t {
	case TypeInt32:
		return "INT32"
	case TypeInt64:
		return "INT64"
	case TypeFloat32:
		return "FLOAT32"
	case TypeFloat64:
		return "FLOAT64"
	case TypeString:
		return "STRING"
	case TypeBoolean:
		return "BOOLEAN"
	default:
		return "Unknown"
	}
}

func (c CodecType) String() string {
	switch c {
	case CodecRaw:
		return "Raw"
	case CodecSingleValue:
		return "SingleValue"
	case CodecRLE:
		return "RLE"
	case CodecDictionary:
		return "Dictionary"
	case CodecNull:
		return "Null"
	default:
		return "Unknown"
	}
}

func (f FormatType) String() string {
	switch f {
	case FormatMinimal:
		return "Minimal"
	case FormatCompressed:
		return "Compressed"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
