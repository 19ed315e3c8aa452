package trace

// NoOpCodec bypasses compression, returning the input unchanged. Useful for
// capturing traces on disks with ample space where recorder overhead
// matters more than file size, or in tests where stored bytes must be
// byte-identical to what was captured.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// NewNoOpCodec creates a codec that does not compress captured frames.
func NewNoOpCodec() NoOpCodec { return NoOpCodec{} }

func (NoOpCodec) Compress(data []byte) ([]byte, error) { return data, nil }

func (NoOpCodec) Decompress(data []byte, _ int) ([]byte, error) { return data, nil }
