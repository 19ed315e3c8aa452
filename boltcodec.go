// Package boltcodec provides a client-side codec and transport framing
// layer for the Bolt wire protocol: a typed value system with a compact
// binary encoding, a family of protocol messages built from those values,
// chunked framing atop a duplex byte stream, and a version-negotiation
// handshake.
//
// This package does not open TCP connections or manage connection pools —
// it operates against any net.Conn (or, for framing and handshake alone,
// any plain io.Reader/io.Writer) the caller already has. Session state,
// transactions, and query result cursors are likewise out of scope; this
// package's Client is a thin wrapper around handshake.Propose and
// frame.Encode/frame.Decode for callers who want the common case without
// wiring the sub-packages themselves.
//
// # Basic usage
//
//	conn, _ := net.Dial("tcp", "localhost:7687")
//	client, err := boltcodec.Handshake(context.Background(), conn, []uint32{4, 3, 1})
//	if err != nil {
//	    log.Fatalf("handshake: %v", err)
//	}
//
//	err = client.Send(context.Background(), message.Init("myapp/1.0", auth))
//	reply, err := client.Receive(context.Background())
//
// # Package structure
//
// value, structure, message, frame, and handshake are usable
// independently; Client composes them for the common request/response
// loop. trace is an optional, separately-wired debug facility for
// capturing and replaying a session's frames.
package boltcodec

import (
	"context"
	"net"

	"github.com/boltwire/boltcodec/frame"
	"github.com/boltwire/boltcodec/handshake"
	"github.com/boltwire/boltcodec/message"
	"github.com/boltwire/boltcodec/trace"
)

// Client is a negotiated Bolt connection: a net.Conn plus the protocol
// version agreed upon during Handshake. It performs no buffering beyond
// what frame and message already do, and issues no retries.
type Client struct {
	conn     net.Conn
	version  message.Version
	recorder *trace.Recorder
}

// Handshake performs the version-negotiation handshake over conn and
// returns a Client bound to the negotiated version.
func Handshake(ctx context.Context, conn net.Conn, versions []uint32, opts ...handshake.Option) (*Client, error) {
	v, err := handshake.Propose(ctx, conn, versions, opts...)
	if err != nil {
		return nil, err
	}

	return &Client{conn: conn, version: message.Version(v)}, nil
}

// Version reports the negotiated protocol version.
func (c *Client) Version() message.Version {
	return c.version
}

// SetRecorder attaches a trace.Recorder; every subsequent Send/Receive
// frame is teed through it. A nil recorder disables capture.
func (c *Client) SetRecorder(r *trace.Recorder) {
	c.recorder = r
}

// Send encodes m for the negotiated version and writes it as a chunked
// frame.
func (c *Client) Send(ctx context.Context, m message.Message) error {
	body, err := message.Encode(m, c.version)
	if err != nil {
		return err
	}

	if c.recorder != nil {
		if err := c.recorder.Capture(trace.Outbound, body); err != nil {
			return err
		}
	}

	return frame.Encode(ctx, c.conn, body)
}

// Receive reads one chunked frame and decodes it into a Message.
func (c *Client) Receive(ctx context.Context) (message.Message, error) {
	body, err := frame.Decode(ctx, c.conn)
	if err != nil {
		return message.Message{}, err
	}

	if c.recorder != nil {
		if err := c.recorder.Capture(trace.Inbound, body); err != nil {
			return message.Message{}, err
		}
	}

	return message.Decode(body)
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
