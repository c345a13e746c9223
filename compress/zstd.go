package compress

import "github.com/arloliu/growth/format"

// ZstdCompressor compresses payloads with Zstandard. It gives the smallest
// table blobs and is the default for packed tables shipped with an app.
type ZstdCompressor struct{}

var _ Codec = ZstdCompressor{}

// NewZstdCompressor returns the Zstandard codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// Type returns format.CompressionZstd.
func (ZstdCompressor) Type() format.CompressionType {
	return format.CompressionZstd
}
