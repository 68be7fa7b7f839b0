package hybf

import (
	"fmt"
	"os"

	"github.com/arloliu/hybf/blob"
	"github.com/arloliu/hybf/column"
	"github.com/arloliu/hybf/compress"
	"github.com/arloliu/hybf/errs"
	"github.com/arloliu/hybf/format"
	"github.com/arloliu/hybf/internal/options"
)

// fileConfig holds the file plumbing settings applied by FileOption.
type fileConfig struct {
	compression format.CompressionType
}

// FileOption configures WriteFile and ReadFile.
type FileOption = options.Option[*fileConfig]

// WithFileCompression wraps the container bytes in whole-file compression.
//
// The container format is untouched: compression applies to the finished
// bytes, and the same option must be passed to ReadFile. The default is
// CompressionNone.
func WithFileCompression(ct format.CompressionType) FileOption {
	return options.New(func(cfg *fileConfig) error {
		switch ct {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			cfg.compression = ct
			return nil
		default:
			return fmt.Errorf("compression type %d: %w", ct, errs.ErrInvalidCompression)
		}
	})
}

// WriteFile encodes the columns and writes the container to path,
// optionally compressed.
func WriteFile(path string, cols []column.Column, opts ...FileOption) error {
	cfg := &fileConfig{compression: format.CompressionNone}
	if err := options.Apply(cfg, opts...); err != nil {
		return err
	}

	data, err := blob.EncodeTable(cols)
	if err != nil {
		return err
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return err
	}

	compressed, err := codec.Compress(data)
	if err != nil {
		return fmt.Errorf("compress table: %w", err)
	}

	if err := os.WriteFile(path, compressed, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}

// ReadFile reads a container from path, reversing any compression applied
// by WriteFile with the same option, and materialises every column.
func ReadFile(path string, opts ...FileOption) ([]column.Column, error) {
	cfg := &fileConfig{compression: format.CompressionNone}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	decompressed, err := codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("decompress table: %w", err)
	}

	return blob.DecodeTable(decompressed)
}
