package compress

import "github.com/arloliu/growth/format"

// NoOpCompressor stores payloads uncompressed.
type NoOpCompressor struct{}

var _ Codec = NoOpCompressor{}

// NewNoOpCompressor returns the pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Type returns format.CompressionNone.
func (NoOpCompressor) Type() format.CompressionType {
	return format.CompressionNone
}

// Compress returns data itself; the result aliases the input.
func (NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data itself after checking its length against rawSize.
func (NoOpCompressor) Decompress(data []byte, rawSize int) ([]byte, error) {
	return checkSize("none", data, rawSize)
}
