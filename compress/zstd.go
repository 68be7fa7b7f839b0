package compress

// ZstdCompressor provides Zstandard compression for hybf file plumbing.
//
// Zstd trades compression speed for ratio, which suits archived tables
// read back infrequently. The implementation behind Compress/Decompress is
// chosen at build time: pure Go by default, libzstd with the "gozstd"
// build tag.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
