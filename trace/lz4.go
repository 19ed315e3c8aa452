package trace

import (
	"sync"

	"github.com/pierrec/lz4/v4"
)

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Codec is a trace-capture backend whose fast compression keeps
// recording overhead low enough to run alongside a live connection.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

// NewLZ4Codec creates an LZ4-backed trace codec.
func NewLZ4Codec() LZ4Codec { return LZ4Codec{} }

func (LZ4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress reconstructs the original payload in a single pass: the LZ4
// block format itself carries no decompressed-size field, but Recorder
// stores it in the trace record header, so the destination buffer is
// allocated exactly once at decodedSize instead of guessed-and-grown.
func (LZ4Codec) Decompress(data []byte, decodedSize int) ([]byte, error) {
	if decodedSize == 0 {
		return nil, nil
	}

	buf := make([]byte, decodedSize)

	n, err := lz4.UncompressBlock(data, buf)
	if err != nil {
		return nil, err
	}

	return buf[:n], nil
}
