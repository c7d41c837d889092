// Package pool provides a small pooled byte buffer backing repeated
// diagnostic rendering, so a batch-validation run over many files doesn't
// thrash the allocator on caret-excerpt formatting.
package pool

import "sync"

// DiagBufferDefaultSize is the default size of a ByteBuffer drawn from the
// diagnostic-rendering pool.
const (
	DiagBufferDefaultSize  = 1024     // 1KiB, enough for a few lines of excerpt
	DiagBufferMaxThreshold = 64 * 1024 // discard buffers grown past this
)

// ByteBuffer is a growable byte slice wrapper suitable for sync.Pool reuse.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// Reset empties the buffer while retaining its backing array.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) { bb.B = append(bb.B, data...) }

// ByteBufferPool pools ByteBuffers to minimize allocations.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool of buffers with the given default size.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (p *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool, discarding it if it grew too large.
func (p *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return
	}
	bb.Reset()
	p.pool.Put(bb)
}

var diagPool = NewByteBufferPool(DiagBufferDefaultSize, DiagBufferMaxThreshold)

// GetDiagBuffer retrieves a ByteBuffer from the default diagnostic pool.
func GetDiagBuffer() *ByteBuffer { return diagPool.Get() }

// PutDiagBuffer returns a ByteBuffer to the default diagnostic pool.
func PutDiagBuffer(bb *ByteBuffer) { diagPool.Put(bb) }
