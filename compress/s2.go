package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/growth/format"
)

// S2Compressor compresses payloads with S2, a Snappy-compatible format tuned
// for speed.
type S2Compressor struct{}

var _ Codec = S2Compressor{}

// NewS2Compressor returns the S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Type returns format.CompressionS2.
func (S2Compressor) Type() format.CompressionType {
	return format.CompressionS2
}

// Compress compresses data using the better-compression S2 mode.
func (S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.EncodeBetter(nil, data), nil
}

// Decompress decodes an S2 block. The block carries its own length, which
// must equal rawSize.
func (S2Compressor) Decompress(data []byte, rawSize int) ([]byte, error) {
	if len(data) == 0 {
		return checkSize("s2", nil, rawSize)
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}
	if rawSize >= 0 && n != rawSize {
		return checkSize("s2", make([]byte, n), rawSize)
	}

	out, err := s2.Decode(make([]byte, n), data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return out, nil
}
