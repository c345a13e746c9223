package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Bytes computes the xxHash64 of the given bytes.
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Digest accumulates float64 values and strings into a running xxHash64.
//
// Floats are hashed by their IEEE-754 bit pattern, so two digests are equal
// only for bit-identical inputs. The zero value is not usable; call NewDigest.
type Digest struct {
	d   *xxhash.Digest
	buf [8]byte
}

// NewDigest returns an empty Digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// Float adds a float64 to the digest.
func (d *Digest) Float(v float64) {
	binary.LittleEndian.PutUint64(d.buf[:], math.Float64bits(v))
	_, _ = d.d.Write(d.buf[:])
}

// Int adds an int64 to the digest.
func (d *Digest) Int(v int64) {
	binary.LittleEndian.PutUint64(d.buf[:], uint64(v))
	_, _ = d.d.Write(d.buf[:])
}

// String adds a length-prefixed string to the digest.
func (d *Digest) String(s string) {
	d.Int(int64(len(s)))
	_, _ = d.d.WriteString(s)
}

// Sum64 returns the current hash.
func (d *Digest) Sum64() uint64 {
	return d.d.Sum64()
}
