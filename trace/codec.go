package trace

// Compressor compresses a captured frame payload for storage.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a payload previously produced by a Compressor,
// reconstructing the original captured bytes. decodedSize is the exact
// length of the original, uncompressed payload — Recorder always knows it
// (it has the payload in hand before compressing) and carries it in the
// trace record header precisely so a Decompressor never has to guess at an
// output buffer size.
type Decompressor interface {
	Decompress(data []byte, decodedSize int) ([]byte, error)
}

// Codec combines both directions; a capture backend implements this, a
// replay-only reader only needs Decompressor.
type Codec interface {
	Compressor
	Decompressor
}
