// Package frame implements the chunked framing layer of spec.md §4.4: an
// encoded message is split into length-prefixed chunks terminated by a
// zero-length chunk, and conversely a chunked byte stream is reassembled
// into one logical message.
//
// Suspension per spec.md §5 occurs only at I/O boundaries (the underlying
// io.Reader/io.Writer calls); the chunk-splitting and reassembly logic
// itself never blocks. context.Context governs those I/O boundaries: before
// each chunk it reads or writes this package checks ctx.Err(), and if the
// stream is a net.Conn, propagates ctx's deadline onto it before each read
// or write.
package frame

import (
	"context"
	"net"

	"github.com/boltwire/boltcodec/errs"
	"github.com/boltwire/boltcodec/internal/iobuf"
	"github.com/boltwire/boltcodec/internal/pool"
)

// ChunkSize is the maximum payload size of a single chunk, chosen so that
// a chunk's 2-byte length header plus its payload fits in the 16-bit
// length field with room for the header: 16383 - 2.
const ChunkSize = 16381

// Encode splits message into chunks of at most ChunkSize bytes and writes
// them to w as (u16 length, payload) pairs, followed by the 0x00 0x00
// terminator.
func Encode(ctx context.Context, w net.Conn, message []byte) error {
	return EncodeTo(ctx, w, message)
}

// EncodeTo is Encode against a plain io.Writer; ctx's deadline is applied
// only when w is also a net.Conn. Callers wiring an in-memory pipe or test
// double use this directly.
func EncodeTo(ctx context.Context, w Writer, message []byte) error {
	for len(message) > 0 {
		n := len(message)
		if n > ChunkSize {
			n = ChunkSize
		}

		if err := writeChunk(ctx, w, message[:n]); err != nil {
			return err
		}

		message = message[n:]
	}

	return writeChunk(ctx, w, nil)
}

func writeChunk(ctx context.Context, w Writer, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	buf := pool.GetChunkBuffer()
	defer pool.PutChunkBuffer(buf)

	buf.Grow(2 + len(payload))
	buf.MustWriteByte(byte(len(payload) >> 8))
	buf.MustWriteByte(byte(len(payload)))
	buf.MustWrite(payload)

	setDeadline(ctx, w)

	if _, err := w.Write(buf.Bytes()); err != nil {
		return &errs.IOError{Op: "write", Cause: err}
	}

	return nil
}

// Decode reads a chunked stream from r until the terminator, returning the
// reassembled message bytes.
func Decode(ctx context.Context, r net.Conn) (message []byte, err error) {
	return DecodeFrom(ctx, r)
}

// DecodeFrom is Decode against a plain io.Reader.
func DecodeFrom(ctx context.Context, r Reader) (message []byte, err error) {
	defer iobuf.RecoverDecode(&err)

	acc := pool.GetMessageBuffer()
	defer pool.PutMessageBuffer(acc)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var lenBuf [2]byte

		setDeadline(ctx, r)

		if _, err := readFull(r, lenBuf[:]); err != nil {
			return nil, &errs.IOError{Op: "read_u16", Cause: err}
		}

		length := int(lenBuf[0])<<8 | int(lenBuf[1])
		if length == 0 {
			out := make([]byte, acc.Len())
			copy(out, acc.Bytes())

			return out, nil
		}

		acc.Grow(length)

		chunk := make([]byte, length)

		setDeadline(ctx, r)

		if _, err := readFull(r, chunk); err != nil {
			return nil, &errs.IOError{Op: "read_exact", Cause: err}
		}

		acc.MustWrite(chunk)
	}
}

func readFull(r Reader, buf []byte) (int, error) {
	total := 0

	for total < len(buf) {
		n, err := r.Read(buf[total:])
		total += n

		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// Reader is the minimal byte-stream contract frame decoding needs.
type Reader interface {
	Read(p []byte) (int, error)
}

// Writer is the minimal byte-stream contract frame encoding needs.
type Writer interface {
	Write(p []byte) (int, error)
}

func setDeadline(ctx context.Context, stream any) {
	conn, ok := stream.(net.Conn)
	if !ok {
		return
	}

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
}
