package reference

import (
	"fmt"
	"math"

	"github.com/arloliu/growth/compress"
	"github.com/arloliu/growth/endian"
	"github.com/arloliu/growth/errs"
	"github.com/arloliu/growth/format"
	"github.com/arloliu/growth/internal/hash"
	"github.com/arloliu/growth/internal/options"
	"github.com/arloliu/growth/internal/pool"
)

type encoderConfig struct {
	compression format.CompressionType
	bigEndian   bool
}

// EncodeOption configures Encode.
type EncodeOption = options.Option[*encoderConfig]

// WithCompression selects the payload codec. The default is Zstd.
func WithCompression(ct format.CompressionType) EncodeOption {
	return options.New(func(cfg *encoderConfig) error {
		if _, err := compress.GetCodec(ct); err != nil {
			return err
		}
		cfg.compression = ct

		return nil
	})
}

// WithLittleEndian writes the blob body little-endian (default).
func WithLittleEndian() EncodeOption {
	return options.NoError(func(cfg *encoderConfig) {
		cfg.bigEndian = false
	})
}

// WithBigEndian writes the blob body big-endian.
func WithBigEndian() EncodeOption {
	return options.NoError(func(cfg *encoderConfig) {
		cfg.bigEndian = true
	})
}

// Encode serializes a validated table into a table blob.
//
// Example:
//
//	data, err := reference.Encode(table, reference.WithCompression(format.CompressionLZ4))
//	if err != nil {
//	    return err
//	}
func Encode(t Table, opts ...EncodeOption) ([]byte, error) {
	cfg := &encoderConfig{compression: format.CompressionZstd}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if len(t.Rows) > MaxRows {
		return nil, errs.ErrTooManyRows
	}

	h := newHeader(t.Type, cfg.compression, cfg.bigEndian)
	engine := h.Engine()

	buf := pool.GetTableBuffer()
	defer pool.PutTableBuffer(buf)

	buf.Grow(len(t.Rows) * RowSize)
	for _, r := range t.Rows {
		buf.B = appendRow(buf.B, engine, r)
	}
	raw := buf.Bytes()

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}
	payload, err := codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("compress %s payload: %w", cfg.compression, err)
	}

	h.RowCount = uint32(len(t.Rows))
	h.RawSize = uint32(len(raw))
	h.PayloadSize = uint32(len(payload))
	h.Checksum = hash.Bytes(raw)

	out := make([]byte, 0, HeaderSize+len(payload))
	out = append(out, h.Bytes()...)

	return append(out, payload...), nil
}

// Decode parses a table blob produced by Encode.
func Decode(data []byte) (Table, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return Table{}, err
	}

	end := uint64(h.PayloadOffset) + uint64(h.PayloadSize)
	if end > uint64(len(data)) {
		return Table{}, errs.ErrTruncatedPayload
	}

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return Table{}, err
	}
	raw, err := codec.Decompress(data[h.PayloadOffset:end], int(h.RawSize))
	if err != nil {
		return Table{}, fmt.Errorf("decompress %s payload: %w", h.Compression, err)
	}
	if hash.Bytes(raw) != h.Checksum {
		return Table{}, errs.ErrChecksumMismatch
	}

	engine := h.Engine()
	t := Table{Type: h.Type, Rows: make([]Row, 0, h.RowCount)}
	for off := 0; off < len(raw); off += RowSize {
		t.Rows = append(t.Rows, readRow(raw[off:off+RowSize], engine))
	}

	if err := t.Validate(); err != nil {
		return Table{}, err
	}

	return t, nil
}

func appendRow(buf []byte, engine endian.Engine, r Row) []byte {
	buf = append(buf, byte(r.Sex))
	buf = engine.AppendUint64(buf, math.Float64bits(r.AgeMonths))
	for _, v := range r.fields() {
		buf = engine.AppendUint64(buf, math.Float64bits(v))
	}

	return buf
}

func readRow(b []byte, engine endian.Engine) Row {
	r := Row{
		Sex:       format.Sex(b[0]),
		AgeMonths: math.Float64frombits(engine.Uint64(b[1:9])),
	}

	var f [3 + PercentileColumns]float64
	for i := range f {
		off := 9 + i*8
		f[i] = math.Float64frombits(engine.Uint64(b[off : off+8]))
	}
	r.setFields(f)

	return r
}
