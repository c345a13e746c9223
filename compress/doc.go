// Package compress provides the payload codecs of reference table blobs.
//
// A table blob payload is a run of fixed-size rows of float64 values. Neighbouring
// rows differ only slightly, so general-purpose compressors shrink it well. The
// codec is selected per blob by format.CompressionType and recorded in the blob
// header:
//
//   - None: payload stored as-is
//   - Zstd: best ratio; pure Go (klauspost/compress) by default, cgo
//     (valyala/gozstd) when built with the "gozstd" tag
//   - S2: fast, good ratio (klauspost/compress/s2)
//   - LZ4: fastest decode (pierrec/lz4 block format)
//
// The header also records the uncompressed payload size. Decompress takes it
// as a size hint so that every codec can decode into a single exact-size
// allocation.
//
// All codecs are stateless values and safe for concurrent use. Zstd and LZ4
// pool their internal encoder state.
package compress
