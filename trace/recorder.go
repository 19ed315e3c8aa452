package trace

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/boltwire/boltcodec/internal/intern"
)

// Direction marks which side of the connection a captured frame travelled.
type Direction uint8

const (
	Outbound Direction = iota
	Inbound
)

func (d Direction) String() string {
	if d == Inbound {
		return "inbound"
	}

	return "outbound"
}

// Recorder tees frame payloads through a Codec and writes them to sink as a
// sequence of (direction, tag, decoded-length, compressed-length,
// compressed-payload) records. tag is the xxHash64 of the uncompressed
// payload, carried alongside the compressed bytes so a replay tool can
// correlate a captured frame against a live session's own frame without
// decompressing first. decoded-length lets a Codec allocate its
// decompression destination exactly once instead of guessing at it.
type Recorder struct {
	sink  io.Writer
	codec Codec
}

// recordHeaderSize is len(direction) + len(tag) + len(decodedSize) +
// len(compressedSize).
const recordHeaderSize = 1 + 8 + 4 + 4

// NewRecorder creates a Recorder writing to sink using codec. A nil codec
// defaults to NoOpCodec.
func NewRecorder(sink io.Writer, codec Codec) *Recorder {
	if codec == nil {
		codec = NewNoOpCodec()
	}

	return &Recorder{sink: sink, codec: codec}
}

// Capture compresses payload and appends one record to the sink.
func (r *Recorder) Capture(dir Direction, payload []byte) error {
	compressed, err := r.codec.Compress(payload)
	if err != nil {
		return fmt.Errorf("trace: compress: %w", err)
	}

	tag := intern.ID(payload)

	var header [recordHeaderSize]byte
	header[0] = byte(dir)
	binary.BigEndian.PutUint64(header[1:9], tag)
	binary.BigEndian.PutUint32(header[9:13], uint32(len(payload)))
	binary.BigEndian.PutUint32(header[13:17], uint32(len(compressed)))

	if _, err := r.sink.Write(header[:]); err != nil {
		return fmt.Errorf("trace: write header: %w", err)
	}

	if _, err := r.sink.Write(compressed); err != nil {
		return fmt.Errorf("trace: write payload: %w", err)
	}

	return nil
}

// Record is one decoded entry from a captured trace.
type Record struct {
	Direction Direction
	Tag       uint64
	Payload   []byte
}

// Replayer reads records previously written by a Recorder.
type Replayer struct {
	src   io.Reader
	codec Codec
}

// NewReplayer creates a Replayer reading from src using codec. codec must
// match the Recorder's codec that produced src; a nil codec defaults to
// NoOpCodec.
func NewReplayer(src io.Reader, codec Codec) *Replayer {
	if codec == nil {
		codec = NewNoOpCodec()
	}

	return &Replayer{src: src, codec: codec}
}

// Next reads and decompresses the next record, returning io.EOF once src is
// exhausted between records.
func (rep *Replayer) Next() (Record, error) {
	var header [recordHeaderSize]byte

	if _, err := io.ReadFull(rep.src, header[:]); err != nil {
		return Record{}, err
	}

	dir := Direction(header[0])
	tag := binary.BigEndian.Uint64(header[1:9])
	decodedSize := binary.BigEndian.Uint32(header[9:13])
	compressedSize := binary.BigEndian.Uint32(header[13:17])

	compressed := make([]byte, compressedSize)
	if _, err := io.ReadFull(rep.src, compressed); err != nil {
		return Record{}, fmt.Errorf("trace: read payload: %w", err)
	}

	payload, err := rep.codec.Decompress(compressed, int(decodedSize))
	if err != nil {
		return Record{}, fmt.Errorf("trace: decompress: %w", err)
	}

	return Record{Direction: dir, Tag: tag, Payload: payload}, nil
}
