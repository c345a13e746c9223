//go:build cgo && gozstd

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"
)

const gozstdLevel = 5

// Compress compresses data with libzstd through cgo.
func (ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, gozstdLevel), nil
}

// Decompress decodes data with libzstd into a buffer of rawSize.
func (ZstdCompressor) Decompress(data []byte, rawSize int) ([]byte, error) {
	if len(data) == 0 {
		return checkSize("zstd", nil, rawSize)
	}

	out, err := gozstd.Decompress(make([]byte, 0, max(rawSize, 0)), data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return checkSize("zstd", out, rawSize)
}
