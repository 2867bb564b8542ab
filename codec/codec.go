package codec

import (
	"compress/gzip"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/clusty-go/clusty/format"
)

// OpenReader wraps r with a decompressing reader appropriate for compressionType.
// Callers must Close the returned reader; for CompressionNone it is a no-op closer
// wrapping r (the underlying file is left to the caller to close).
func OpenReader(r io.Reader, compressionType format.CompressionType) (io.ReadCloser, error) {
	switch compressionType {
	case format.CompressionNone:
		return io.NopCloser(r), nil
	case format.CompressionGzip:
		return gzip.NewReader(r)
	case format.CompressionZstd:
		return newZstdReader(r)
	case format.CompressionS2:
		return newS2Reader(r), nil
	case format.CompressionLZ4:
		return newLZ4Reader(r), nil
	default:
		return nil, fmt.Errorf("codec: unsupported input compression: %s", compressionType)
	}
}

// NewWriter wraps w with a compressing writer appropriate for compressionType.
// Callers must Close the returned writer to flush trailing compressed data.
func NewWriter(w io.Writer, compressionType format.CompressionType) (io.WriteCloser, error) {
	switch compressionType {
	case format.CompressionNone:
		return nopWriteCloser{w}, nil
	case format.CompressionGzip:
		return gzip.NewWriter(w), nil
	case format.CompressionZstd:
		return newZstdWriter(w)
	case format.CompressionS2:
		return newS2Writer(w), nil
	case format.CompressionLZ4:
		return newLZ4Writer(w), nil
	default:
		return nil, fmt.Errorf("codec: unsupported output compression: %s", compressionType)
	}
}

// DetectByExtension guesses the compression of path from its filename suffix.
// Unrecognized suffixes (including none) are reported as CompressionNone, i.e.
// the file is assumed to be a plain tabular text file.
func DetectByExtension(path string) format.CompressionType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return format.CompressionGzip
	case ".zst", ".zstd":
		return format.CompressionZstd
	case ".s2":
		return format.CompressionS2
	case ".lz4":
		return format.CompressionLZ4
	default:
		return format.CompressionNone
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
