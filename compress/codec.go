package compress

import (
	"fmt"

	"github.com/arloliu/growth/errs"
	"github.com/arloliu/growth/format"
)

// Compressor compresses a table blob payload.
type Compressor interface {
	// Compress returns a newly allocated compressed copy of data.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
type Decompressor interface {
	// Decompress returns the original payload. rawSize is the expected
	// uncompressed length; implementations use it to size their output and
	// fail when the decoded length differs.
	Decompress(data []byte, rawSize int) ([]byte, error)
}

// Codec combines both directions and reports its compression type.
type Codec interface {
	Compressor
	Decompressor
	Type() format.CompressionType
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
}

// Ratio returns compressed/original size, or 0 when original is 0.
func Ratio(original, compressed int) float64 {
	if original == 0 {
		return 0
	}

	return float64(compressed) / float64(original)
}

func checkSize(name string, got []byte, rawSize int) ([]byte, error) {
	if rawSize >= 0 && len(got) != rawSize {
		return nil, fmt.Errorf("%s: decoded %d bytes, want %d: %w", name, len(got), rawSize, errs.ErrTruncatedPayload)
	}

	return got, nil
}
