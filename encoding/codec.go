package encoding

import (
	"github.com/arloliu/hybf/column"
	"github.com/arloliu/hybf/format"
	"github.com/arloliu/hybf/internal/pool"
)

// Codec is the capability set every column encoding implements: a stable
// tag byte for the compressed container, an exact-or-over size estimate,
// and the encode/decode pair.
//
// Implementations are stateless values; all of them are safe for concurrent
// use. Encode appends the payload to buf. Decode materialises an array of
// exactly rowCount rows from a payload slice and must consume it fully.
type Codec interface {
	// Tag returns the codec tag byte written to the compressed container.
	Tag() format.CodecType

	// EstimateSize returns the payload size in bytes the codec would
	// produce for the column. Estimates never underestimate; for every
	// built-in codec they are exact.
	EstimateSize(arr column.Array, storage column.StorageType) uint64

	// Encode appends the column payload to buf.
	Encode(arr column.Array, storage column.StorageType, buf *pool.ByteBuffer) error

	// Decode materialises rowCount rows from the payload.
	Decode(payload []byte, def column.Def, rowCount int) (column.Array, error)
}

// codecs is the dispatch table keyed by codec tag. It is immutable after
// package initialisation.
var codecs = map[format.CodecType]Codec{
	format.CodecRaw:         RawCodec{},
	format.CodecSingleValue: SingleValueCodec{},
	format.CodecRLE:         RLECodec{},
	format.CodecDictionary:  DictionaryCodec{},
	format.CodecNull:        NullCodec{},
}

// CodecFor returns the codec registered for the tag.
func CodecFor(tag format.CodecType) (Codec, bool) {
	c, ok := codecs[tag]
	return c, ok
}
