package iobuf

import (
	"encoding/binary"
	"math"

	"github.com/boltwire/boltcodec/internal/pool"
)

// Writer is an append-only byte builder backed by a pooled, growable
// buffer. Writer is not safe for concurrent use by multiple goroutines.
type Writer struct {
	buf *pool.ByteBuffer
}

// NewWriter creates a Writer backed by a fresh buffer from the message pool.
func NewWriter() *Writer {
	return &Writer{buf: pool.GetMessageBuffer()}
}

// Release returns the Writer's underlying buffer to the pool. After
// Release, the Writer must not be used again and any slice previously
// returned by Bytes must not be retained.
func (w *Writer) Release() {
	if w.buf != nil {
		pool.PutMessageBuffer(w.buf)
		w.buf = nil
	}
}

// Bytes returns the encoded bytes written so far. The returned slice
// aliases the Writer's internal buffer.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// WriteByte appends a single byte.
func (w *Writer) WriteByte(b byte) {
	w.buf.Grow(1)
	w.buf.MustWriteByte(b)
}

// WriteBytes appends data verbatim.
func (w *Writer) WriteBytes(data []byte) {
	w.buf.Grow(len(data))
	w.buf.MustWrite(data)
}

// WriteUint8 appends an unsigned 8-bit integer.
func (w *Writer) WriteUint8(v uint8) {
	w.WriteByte(v)
}

// WriteUint16 appends a big-endian unsigned 16-bit integer.
func (w *Writer) WriteUint16(v uint16) {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], v)
	w.WriteBytes(tmp[:])
}

// WriteUint32 appends a big-endian unsigned 32-bit integer.
func (w *Writer) WriteUint32(v uint32) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	w.WriteBytes(tmp[:])
}

// WriteUint64 appends a big-endian unsigned 64-bit integer.
func (w *Writer) WriteUint64(v uint64) {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	w.WriteBytes(tmp[:])
}

// WriteInt8 appends a signed 8-bit integer.
func (w *Writer) WriteInt8(v int8) {
	w.WriteByte(byte(v))
}

// WriteInt16 appends a big-endian signed 16-bit integer.
func (w *Writer) WriteInt16(v int16) {
	w.WriteUint16(uint16(v))
}

// WriteInt32 appends a big-endian signed 32-bit integer.
func (w *Writer) WriteInt32(v int32) {
	w.WriteUint32(uint32(v))
}

// WriteInt64 appends a big-endian signed 64-bit integer.
func (w *Writer) WriteInt64(v int64) {
	w.WriteUint64(uint64(v))
}

// WriteFloat64 appends a big-endian IEEE-754 64-bit float.
func (w *Writer) WriteFloat64(v float64) {
	w.WriteUint64(math.Float64bits(v))
}
