package boltcodec_test

import (
	"context"
	"encoding/binary"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boltwire/boltcodec"
	"github.com/boltwire/boltcodec/message"
	"github.com/boltwire/boltcodec/trace"
	"github.com/boltwire/boltcodec/value"
)

func TestHandshake_AndSendReceive(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	serverDone := make(chan error, 1)

	go func() {
		var preamble [4]byte
		if _, err := readFull(serverConn, preamble[:]); err != nil {
			serverDone <- err
			return
		}

		var proposals [16]byte
		if _, err := readFull(serverConn, proposals[:]); err != nil {
			serverDone <- err
			return
		}

		var reply [4]byte
		binary.BigEndian.PutUint32(reply[:], 4)

		if _, err := serverConn.Write(reply[:]); err != nil {
			serverDone <- err
			return
		}

		// Read the framed Hello the client sends and reply Success.
		if _, err := drainOneFrame(serverConn); err != nil {
			serverDone <- err
			return
		}

		successBody, err := message.Encode(message.Success(map[string]value.Value{"server": value.String("test")}), message.Version4)
		if err != nil {
			serverDone <- err
			return
		}

		if err := writeFrame(serverConn, successBody); err != nil {
			serverDone <- err
			return
		}

		serverDone <- nil
	}()

	ctx := context.Background()

	client, err := boltcodec.Handshake(ctx, clientConn, []uint32{4, 3, 1})
	require.NoError(t, err)
	assert.Equal(t, message.Version4, client.Version())

	require.NoError(t, client.Send(ctx, message.Hello(map[string]value.Value{})))

	reply, err := client.Receive(ctx)
	require.NoError(t, err)
	assert.Equal(t, message.KindSuccess, reply.Kind())
	assert.Equal(t, "test", reply.Metadata()["server"].String())

	require.NoError(t, <-serverDone)
}

func TestClient_RecorderCapturesFrames(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	serverDone := make(chan error, 1)

	go func() {
		var preamble [4]byte
		readFull(serverConn, preamble[:])

		var proposals [16]byte
		readFull(serverConn, proposals[:])

		var reply [4]byte
		binary.BigEndian.PutUint32(reply[:], 1)
		serverConn.Write(reply[:])

		if _, err := drainOneFrame(serverConn); err != nil {
			serverDone <- err
			return
		}

		serverDone <- nil
	}()

	ctx := context.Background()

	client, err := boltcodec.Handshake(ctx, clientConn, []uint32{1})
	require.NoError(t, err)

	var captured captureBuf

	client.SetRecorder(trace.NewRecorder(&captured, trace.NewNoOpCodec()))
	require.NoError(t, client.Send(ctx, message.AckFailure()))
	require.NoError(t, <-serverDone)

	assert.NotEmpty(t, captured.data)
}

type captureBuf struct {
	data []byte
}

func (c *captureBuf) Write(p []byte) (int, error) {
	c.data = append(c.data, p...)
	return len(p), nil
}

func readFull(conn net.Conn, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := conn.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func drainOneFrame(conn net.Conn) ([]byte, error) {
	var acc []byte

	for {
		var lenBuf [2]byte
		if _, err := readFull(conn, lenBuf[:]); err != nil {
			return nil, err
		}

		length := int(lenBuf[0])<<8 | int(lenBuf[1])
		if length == 0 {
			return acc, nil
		}

		chunk := make([]byte, length)
		if _, err := readFull(conn, chunk); err != nil {
			return nil, err
		}

		acc = append(acc, chunk...)
	}
}

func writeFrame(conn net.Conn, body []byte) error {
	var lenBuf [2]byte
	binary.BigEndian.PutUint16(lenBuf[:], uint16(len(body)))

	if _, err := conn.Write(lenBuf[:]); err != nil {
		return err
	}

	if _, err := conn.Write(body); err != nil {
		return err
	}

	_, err := conn.Write([]byte{0x00, 0x00})

	return err
}
