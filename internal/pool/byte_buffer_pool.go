// Package pool provides reusable byte buffers for table blob encoding.
package pool

import "sync"

// Table buffer sizes. A full CDC infant table for both sexes is ~8KiB of raw
// rows.
const (
	TableBufferDefaultSize  = 1024 * 16  // 16KiB
	TableBufferMaxThreshold = 1024 * 256 // 256KiB
)

// ByteBuffer is a growable byte slice handed out by ByteBufferPool.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but keeps its memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating. Small buffers grow by TableBufferDefaultSize, larger ones by
// 25% of their capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	if cap(bb.B)-len(bb.B) >= requiredBytes {
		return
	}

	growBy := TableBufferDefaultSize
	if cap(bb.B) > 4*TableBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	growBy = max(growBy, requiredBytes)

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ByteBufferPool is a sync.Pool of ByteBuffers. Buffers that grew beyond
// maxThreshold are dropped on Put instead of being retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool of buffers with the given default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool. The caller must not use bb afterwards.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var tableDefaultPool = NewByteBufferPool(TableBufferDefaultSize, TableBufferMaxThreshold)

// GetTableBuffer retrieves a ByteBuffer from the default table pool.
func GetTableBuffer() *ByteBuffer {
	return tableDefaultPool.Get()
}

// PutTableBuffer returns a ByteBuffer to the default table pool.
func PutTableBuffer(bb *ByteBuffer) {
	tableDefaultPool.Put(bb)
}
