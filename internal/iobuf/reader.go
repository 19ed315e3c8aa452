// Package iobuf provides the read-cursor and write-builder abstractions
// the value, structure, message, and frame codecs decode from and encode
// into.
//
// Reader wraps an owned byte slice with a read cursor. A single decode call
// holds exclusive mutable access to its Reader for that call's entire
// duration: a *Reader is passed by pointer through the decode recursion,
// never shared or locked. Reader is not safe for concurrent use by multiple
// goroutines.
package iobuf

import (
	"encoding/binary"
	"math"

	"github.com/boltwire/boltcodec/errs"
)

// Reader is a read cursor over an owned byte slice.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a Reader over data. The Reader does not copy data; the
// caller must not mutate data while the Reader is in use.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.data) - r.pos
}

// Pos returns the current cursor position.
func (r *Reader) Pos() int {
	return r.pos
}

// Peek returns the next byte without advancing the cursor.
func (r *Reader) Peek() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, errs.ErrUnexpectedEOF
	}

	return r.data[r.pos], nil
}

// Advance moves the cursor forward by n bytes without returning them.
func (r *Reader) Advance(n int) error {
	if n < 0 || r.pos+n > len(r.data) {
		return errs.ErrUnexpectedEOF
	}

	r.pos += n

	return nil
}

// ReadExact returns the next n bytes as an owned slice (copied out of the
// underlying buffer) and advances the cursor past them.
func (r *Reader) ReadExact(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.data) {
		return nil, errs.ErrUnexpectedEOF
	}

	out := make([]byte, n)
	copy(out, r.data[r.pos:r.pos+n])
	r.pos += n

	return out, nil
}

// ReadByte reads and consumes a single byte.
func (r *Reader) ReadByte() (byte, error) {
	b, err := r.Peek()
	if err != nil {
		return 0, err
	}

	r.pos++

	return b, nil
}

// ReadUint8 reads an unsigned 8-bit integer.
func (r *Reader) ReadUint8() (uint8, error) {
	return r.ReadByte()
}

// ReadUint16 reads a big-endian unsigned 16-bit integer.
func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.ReadExact(2)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint16(b), nil
}

// ReadUint32 reads a big-endian unsigned 32-bit integer.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.ReadExact(4)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint32(b), nil
}

// ReadUint64 reads a big-endian unsigned 64-bit integer.
func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.ReadExact(8)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint64(b), nil
}

// ReadInt8 reads a signed 8-bit integer.
func (r *Reader) ReadInt8() (int8, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, err
	}

	return int8(b), nil
}

// ReadInt16 reads a big-endian signed 16-bit integer.
func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	if err != nil {
		return 0, err
	}

	return int16(v), nil
}

// ReadInt32 reads a big-endian signed 32-bit integer.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	if err != nil {
		return 0, err
	}

	return int32(v), nil
}

// ReadInt64 reads a big-endian signed 64-bit integer.
func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	if err != nil {
		return 0, err
	}

	return int64(v), nil
}

// ReadFloat64 reads a big-endian IEEE-754 64-bit float.
func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadUint64()
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(v), nil
}

// RecoverDecode converts a panic raised anywhere inside a decode call into a
// DeserializerPanicError, per spec.md §7's "the codec never panics on
// input" rule. Call via `defer RecoverDecode(&err)` at every exported decode
// entry point.
func RecoverDecode(err *error) {
	if r := recover(); r != nil {
		*err = &errs.DeserializerPanicError{Recovered: r}
	}
}
