// Package trace is an optional debug facility: a Recorder tees the raw
// bytes of captured frames through a Codec so a session can be written to
// disk and replayed later, independent of the packages it observes.
// Nothing in value, structure, message, frame, or handshake imports trace;
// wiring a Recorder in is always the caller's choice, typically from
// boltcodec.Client.
//
// Three backends are available:
//
//   - NoOpCodec (used when NewRecorder/NewReplayer get a nil Codec): store
//     captured frames uncompressed.
//   - LZ4Codec: fast enough to run alongside a live connection.
//   - ZstdCodec: better ratio for long-running captures where disk space
//     matters more than recording overhead.
//
// A cgo Zstd binding was deliberately left out in favor of the pure-Go
// klauspost/compress implementation, to avoid pulling a C toolchain
// dependency into a debug-only feature.
package trace
