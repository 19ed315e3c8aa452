package trace

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("trace: failed to create zstd decoder: %v", err))
		}

		return decoder
	},
}

var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),
		)
		if err != nil {
			panic(fmt.Sprintf("trace: failed to create zstd encoder: %v", err))
		}

		return encoder
	},
}

// ZstdCodec is a higher-ratio trace-capture backend for long-running
// captures where disk space matters more than recording overhead. It uses
// the pure-Go klauspost/compress/zstd implementation rather than a cgo
// binding, keeping this module free of a C toolchain dependency for a
// debug-only feature.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec creates a Zstandard-backed trace codec.
func NewZstdCodec() ZstdCodec { return ZstdCodec{} }

func (ZstdCodec) Compress(data []byte) ([]byte, error) {
	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(data, nil), nil
}

// Decompress reconstructs the original payload. decodedSize comes from the
// trace record header Recorder wrote alongside the compressed bytes, so the
// destination is preallocated to the exact final size instead of letting
// DecodeAll discover it by reallocating as it decodes.
func (ZstdCodec) Decompress(data []byte, decodedSize int) ([]byte, error) {
	if decodedSize == 0 {
		return nil, nil
	}

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	decompressed, err := decoder.DecodeAll(data, make([]byte, 0, decodedSize))
	if err != nil {
		return nil, fmt.Errorf("trace: zstd decompression failed: %w", err)
	}

	return decompressed, nil
}
