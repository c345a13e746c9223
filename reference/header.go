package reference

import (
	"github.com/arloliu/growth/endian"
	"github.com/arloliu/growth/errs"
	"github.com/arloliu/growth/format"
)

const (
	// HeaderSize is the fixed size of a table blob header in bytes.
	HeaderSize = 32
	// RowSize is the encoded size of one row: a sex byte followed by
	// AgeMonths, L, M, S and P3..P97 as float64.
	RowSize = 1 + (4+PercentileColumns)*8
	// MaxRows bounds the row count so that a payload always fits in uint32.
	MaxRows = 1 << 20

	EndiannessMask  = 0x0002 // bit 1: 0=little, 1=big
	MagicNumberMask = 0xFFF0 // bits 4-15
	MagicTableV1Opt = 0xC710 // growth reference table blob, version 1
)

// Header is the fixed-size section at the start of a table blob.
//
//	offset  size  field
//	0       2     Options (always little-endian): endianness bit + magic
//	2       1     measurement type
//	3       1     compression type
//	4       4     row count
//	8       4     payload offset
//	12      4     stored payload size
//	16      4     raw payload size
//	20      8     xxHash64 of the raw payload
//	28      4     reserved, zero
type Header struct {
	Options     uint16
	Type        format.MeasurementType
	Compression format.CompressionType
	RowCount    uint32
	// PayloadOffset is the byte offset of the payload, HeaderSize for v1.
	PayloadOffset uint32
	// PayloadSize is the stored, possibly compressed, payload length.
	PayloadSize uint32
	// RawSize is the uncompressed payload length, RowCount*RowSize.
	RawSize  uint32
	Checksum uint64
}

func newHeader(t format.MeasurementType, compression format.CompressionType, bigEndian bool) Header {
	h := Header{
		Options:       MagicTableV1Opt,
		Type:          t,
		Compression:   compression,
		PayloadOffset: HeaderSize,
	}
	if bigEndian {
		h.Options |= EndiannessMask
	}

	return h
}

// IsBigEndian reports whether the blob body is big-endian.
func (h Header) IsBigEndian() bool {
	return h.Options&EndiannessMask != 0
}

// Engine returns the byte order of the header body and payload.
func (h Header) Engine() endian.Engine {
	return endian.ForFlag(h.IsBigEndian())
}

// MagicNumber returns the magic bits of Options.
func (h Header) MagicNumber() uint16 {
	return h.Options & MagicNumberMask
}

// Validate checks the magic number, measurement type, compression type and
// size fields.
func (h Header) Validate() error {
	if h.MagicNumber() != MagicTableV1Opt {
		return errs.ErrInvalidMagic
	}
	if !h.Type.Valid() {
		return errs.ErrInvalidTypeName
	}
	switch h.Compression {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
	default:
		return errs.ErrInvalidCompression
	}
	if h.RowCount > MaxRows {
		return errs.ErrTooManyRows
	}
	if h.RawSize != h.RowCount*RowSize {
		return errs.ErrInvalidPayloadLength
	}
	if h.PayloadOffset < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	return nil
}

// Bytes serializes the header.
func (h Header) Bytes() []byte {
	b := make([]byte, 0, HeaderSize)
	b = endian.Little().AppendUint16(b, h.Options)
	b = append(b, byte(h.Type), byte(h.Compression))

	engine := h.Engine()
	b = engine.AppendUint32(b, h.RowCount)
	b = engine.AppendUint32(b, h.PayloadOffset)
	b = engine.AppendUint32(b, h.PayloadSize)
	b = engine.AppendUint32(b, h.RawSize)
	b = engine.AppendUint64(b, h.Checksum)

	return engine.AppendUint32(b, 0)
}

// ParseHeader parses and validates the header at the start of data.
//
// Returns:
//   - errs.ErrInvalidHeaderSize if data is shorter than HeaderSize
//   - the first validation error of the parsed header
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	h := Header{
		Options:     endian.Little().Uint16(data[0:2]),
		Type:        format.MeasurementType(data[2]),
		Compression: format.CompressionType(data[3]),
	}

	engine := h.Engine()
	h.RowCount = engine.Uint32(data[4:8])
	h.PayloadOffset = engine.Uint32(data[8:12])
	h.PayloadSize = engine.Uint32(data[12:16])
	h.RawSize = engine.Uint32(data[16:20])
	h.Checksum = engine.Uint64(data[20:28])

	if err := h.Validate(); err != nil {
		return Header{}, err
	}

	return h, nil
}
