// Package pool provides pooled, growable byte buffers used by the value,
// message, and frame codecs to avoid a fresh allocation per encode call.
package pool

import (
	"io"
	"sync"
)

// Default and maximum-retained sizes for the two buffer pools this module
// needs: one sized for a single encoded message body, one sized for a
// single wire chunk (bounded by frame.ChunkSize).
const (
	MessageBufferDefaultSize  = 512          // typical Run/Record message body
	MessageBufferMaxThreshold = 1024 * 256   // 256KiB
	ChunkBufferDefaultSize    = 1024 * 4     // 4KiB
	ChunkBufferMaxThreshold   = 1024*16 - 3  // frame.ChunkSize
)

// ByteBuffer is a growable, append-only byte slice wrapper. It implements
// io.Writer so it composes with anything that writes to a stream.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice. The returned slice aliases the
// buffer's storage; callers must not retain it past the next mutation.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// MustWriteByte appends a single byte to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWriteByte(b byte) {
	bb.B = append(bb.B, b)
}

// growthQuantum mirrors frame.ChunkSize. It is duplicated here rather than
// imported because frame already depends on this package; importing frame
// back would cycle. A buffer only needs to grow past its pooled default
// once the message being built is large enough that frame.EncodeTo will
// have to split it across multiple wire chunks anyway, so growth jumps
// straight to a whole chunk's worth of room instead of guessing at a
// fraction of the current capacity.
const growthQuantum = 16381

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating, rounding the new capacity up to the next multiple of
// growthQuantum so a buffer that just crossed one chunk boundary already
// has room for the next one.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	needed := len(bb.B) + requiredBytes
	quanta := (needed + growthQuantum - 1) / growthQuantum
	newCap := quanta * growthQuantum

	newBuf := make([]byte, len(bb.B), newCap)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends the contents of data to the buffer, growing it as needed.
// Write implements io.Writer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the contents of the buffer to w. WriteTo implements
// io.WriterTo.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a sync.Pool of ByteBuffers with an optional cap on the
// capacity of a buffer it will retain, so a single oversized message or
// chunk does not permanently bloat the pool.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
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

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
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

var (
	messagePool = NewByteBufferPool(MessageBufferDefaultSize, MessageBufferMaxThreshold)
	chunkPool   = NewByteBufferPool(ChunkBufferDefaultSize, ChunkBufferMaxThreshold)
)

// GetMessageBuffer retrieves a ByteBuffer from the default message-body pool.
func GetMessageBuffer() *ByteBuffer {
	return messagePool.Get()
}

// PutMessageBuffer returns a ByteBuffer to the default message-body pool.
func PutMessageBuffer(bb *ByteBuffer) {
	messagePool.Put(bb)
}

// GetChunkBuffer retrieves a ByteBuffer from the default single-chunk pool.
func GetChunkBuffer() *ByteBuffer {
	return chunkPool.Get()
}

// PutChunkBuffer returns a ByteBuffer to the default single-chunk pool.
func PutChunkBuffer(bb *ByteBuffer) {
	chunkPool.Put(bb)
}
