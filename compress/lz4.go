package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/growth/format"
)

// lz4.Compressor keeps a hash table between calls; reusing it avoids
// reallocating the table for every blob.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// maxLZ4Size bounds the adaptive decode buffer when no size hint is given.
const maxLZ4Size = 64 << 20

// LZ4Compressor compresses payloads as a raw LZ4 block.
type LZ4Compressor struct{}

var _ Codec = LZ4Compressor{}

// NewLZ4Compressor returns the LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Type returns format.CompressionLZ4.
func (LZ4Compressor) Type() format.CompressionType {
	return format.CompressionLZ4
}

// Compress compresses data into a single LZ4 block.
func (LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}
	if n == 0 {
		// Incompressible input: lz4 signals this with n == 0. Emit a
		// literal-only block so the result always decodes.
		return literalBlock(data), nil
	}

	return dst[:n], nil
}

// Decompress decodes an LZ4 block into a buffer of rawSize. With a negative
// rawSize it grows the buffer from 4x the input until the block fits.
func (LZ4Compressor) Decompress(data []byte, rawSize int) ([]byte, error) {
	if len(data) == 0 {
		return checkSize("lz4", nil, rawSize)
	}

	if rawSize >= 0 {
		buf := make([]byte, rawSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			return nil, fmt.Errorf("lz4 decompression failed: %w", err)
		}

		return checkSize("lz4", buf[:n], rawSize)
	}

	for bufSize := len(data) * 4; bufSize <= maxLZ4Size; bufSize *= 2 {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("lz4 decompression failed: %w", err)
		}

		return buf[:n], nil
	}

	return nil, fmt.Errorf("lz4 decompression failed: %w", lz4.ErrInvalidSourceShortBuffer)
}

// literalBlock encodes data as one LZ4 sequence made only of literals.
func literalBlock(data []byte) []byte {
	n := len(data)
	out := make([]byte, 0, n+n/255+16)

	if n < 15 {
		out = append(out, byte(n<<4))
	} else {
		out = append(out, 0xF0)
		rest := n - 15
		for rest >= 255 {
			out = append(out, 255)
			rest -= 255
		}
		out = append(out, byte(rest))
	}

	return append(out, data...)
}
