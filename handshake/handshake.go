// Package handshake implements the version-negotiation handshake of
// spec.md §4.6: a fixed four-byte preamble followed by four 32-bit
// big-endian version proposals, highest-preference first; the server
// replies with a single u32, the negotiated version or zero to reject.
package handshake

import (
	"context"
	"encoding/binary"
	"net"

	"github.com/boltwire/boltcodec/errs"
	"github.com/boltwire/boltcodec/internal/bopt"
)

// Preamble is the fixed four-byte prefix that begins every handshake.
var Preamble = [4]byte{0x60, 0x60, 0xB0, 0x17}

// MaxProposals is the number of version slots in a proposal; unused slots
// are zero.
const MaxProposals = 4

// config holds handshake.Option state.
type config struct {
	lenient bool
}

// Option configures a Propose call.
type Option = bopt.Option[*config]

// WithLenientAcceptance accepts any nonzero server reply, not just one
// among the client's own proposals. Per spec.md §9's Open Question
// resolution, strict rejection of an unproposed nonzero reply is the
// default; this option opts into the lenient behavior instead.
func WithLenientAcceptance() Option {
	return bopt.NoError[*config](func(c *config) {
		c.lenient = true
	})
}

// Propose writes the preamble and version proposals to rw, reads the
// server's reply, and returns the negotiated version. versions must have
// length <= MaxProposals, highest-preference first; unused slots are
// zero-filled automatically.
func Propose(ctx context.Context, rw net.Conn, versions []uint32, opts ...Option) (uint32, error) {
	return ProposeOn(ctx, rw, versions, opts...)
}

// ProposeOn is Propose against a plain io.ReadWriter; ctx's deadline is
// applied only when rw is also a net.Conn. It underlies Propose and is
// exported for callers wiring an in-memory pipe or test double.
func ProposeOn(ctx context.Context, rw ReadWriter, versions []uint32, opts ...Option) (uint32, error) {
	if len(versions) > MaxProposals {
		versions = versions[:MaxProposals]
	}

	cfg := &config{}
	if err := bopt.Apply(cfg, opts...); err != nil {
		return 0, err
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	setDeadline(ctx, rw)

	var out [4 + 4*MaxProposals]byte
	copy(out[:4], Preamble[:])

	for i := 0; i < MaxProposals; i++ {
		var v uint32
		if i < len(versions) {
			v = versions[i]
		}

		binary.BigEndian.PutUint32(out[4+4*i:8+4*i], v)
	}

	if _, err := rw.Write(out[:]); err != nil {
		return 0, &errs.IOError{Op: "write", Cause: err}
	}

	setDeadline(ctx, rw)

	var replyBuf [4]byte
	if _, err := readFull(rw, replyBuf[:]); err != nil {
		return 0, &errs.IOError{Op: "read_exact", Cause: err}
	}

	reply := binary.BigEndian.Uint32(replyBuf[:])

	if reply == 0 {
		return 0, errs.ErrHandshakeRejected
	}

	if !cfg.lenient && !proposed(versions, reply) {
		return 0, errs.ErrHandshakeRejected
	}

	return reply, nil
}

func proposed(versions []uint32, reply uint32) bool {
	for _, v := range versions {
		if v == reply {
			return true
		}
	}

	return false
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

func setDeadline(ctx context.Context, stream any) {
	conn, ok := stream.(net.Conn)
	if !ok {
		return
	}

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
}

// Reader is the minimal byte-stream read contract Propose needs.
type Reader interface {
	Read(p []byte) (int, error)
}

// Writer is the minimal byte-stream write contract Propose needs.
type Writer interface {
	Write(p []byte) (int, error)
}

// ReadWriter is the minimal byte-stream contract Propose needs.
type ReadWriter interface {
	Reader
	Writer
}
