// Package endian selects the byte order used by reference table blobs.
//
// Engine combines binary.ByteOrder and binary.AppendByteOrder so that row
// values can be appended straight into an output buffer:
//
//	engine := endian.Little()
//	buf = engine.AppendUint64(buf, math.Float64bits(row.M))
//
// Little-endian is the default for table blobs. Big-endian exists for
// readers on big-endian hosts that prefer to scan payloads in native order.
//
// All engines are immutable and safe for concurrent use.
package endian

import "encoding/binary"

// Engine is satisfied by binary.LittleEndian and binary.BigEndian.
type Engine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Little returns the little-endian engine.
func Little() Engine {
	return binary.LittleEndian
}

// Big returns the big-endian engine.
func Big() Engine {
	return binary.BigEndian
}

// ForFlag returns Big when bigEndian is set and Little otherwise.
func ForFlag(bigEndian bool) Engine {
	if bigEndian {
		return Big()
	}

	return Little()
}

// IsNativeLittleEndian reports whether the host stores integers
// least-significant byte first.
func IsNativeLittleEndian() bool {
	var probe [2]byte
	binary.NativeEndian.PutUint16(probe[:], 0x0100)

	return probe[0] == 0x00
}

// IsBig reports whether engine writes big-endian.
func IsBig(engine Engine) bool {
	return engine.String() == binary.BigEndian.String()
}
