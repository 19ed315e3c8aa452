// Package errs defines the error taxonomy every codec boundary in this
// module returns against: UnexpectedEOF, InvalidMarker, InvalidSignature,
// InvalidString, EncoderOverflow, HandshakeRejected, IOError, and
// DeserializerPanic.
//
// Payload-less kinds are plain sentinel errors checked with errors.Is.
// Payload-carrying kinds are typed errors wrapping a matching sentinel via
// Unwrap, so errors.Is(err, ErrInvalidMarker) still succeeds while
// errors.As recovers the offending byte/signature/count.
package errs

import "fmt"

// Sentinel errors for the payload-less taxonomy kinds.
var (
	// ErrUnexpectedEOF is returned when the read cursor is advanced past
	// the end of the buffer.
	ErrUnexpectedEOF = fmt.Errorf("boltcodec: unexpected end of input")

	// ErrInvalidMarker is the sentinel InvalidMarkerError wraps.
	ErrInvalidMarker = fmt.Errorf("boltcodec: invalid marker byte")

	// ErrInvalidSignature is the sentinel InvalidSignatureError wraps.
	ErrInvalidSignature = fmt.Errorf("boltcodec: invalid structure signature/field-count")

	// ErrInvalidString is the sentinel InvalidStringError wraps.
	ErrInvalidString = fmt.Errorf("boltcodec: invalid UTF-8 string")

	// ErrEncoderOverflow is returned when a length exceeds the width of
	// its wire encoding (e.g. a structure with more than 65535 fields).
	ErrEncoderOverflow = fmt.Errorf("boltcodec: encoder overflow")

	// ErrHandshakeRejected is returned when the server's handshake reply
	// is zero, or (without leniency) not among the client's proposals.
	ErrHandshakeRejected = fmt.Errorf("boltcodec: handshake rejected by server")

	// ErrDeserializerPanic is the sentinel DeserializerPanicError wraps.
	ErrDeserializerPanic = fmt.Errorf("boltcodec: internal decoder invariant violation")

	// ErrUnsupportedForVersion is returned when a caller attempts to
	// encode a message variant that is not legal under the negotiated
	// protocol version.
	ErrUnsupportedForVersion = fmt.Errorf("boltcodec: message variant unsupported for negotiated version")

	// ErrValueNotHashable is returned by Value.Key when the value carries
	// a Float anywhere in its payload; spec.md §9's "Float in hashable
	// containers" note requires this to be a documented error, not a
	// panic.
	ErrValueNotHashable = fmt.Errorf("boltcodec: value containing a float is not hashable")
)

// InvalidMarkerError reports the specific marker byte that did not match
// any dispatch rule.
type InvalidMarkerError struct {
	Byte byte
}

func (e *InvalidMarkerError) Error() string {
	return fmt.Sprintf("boltcodec: invalid marker byte 0x%02X", e.Byte)
}

func (e *InvalidMarkerError) Unwrap() error {
	return ErrInvalidMarker
}

// InvalidSignatureError reports the specific (signature, field-count) pair
// that did not match any known structure or message variant.
type InvalidSignatureError struct {
	Signature byte
	Count     int
}

func (e *InvalidSignatureError) Error() string {
	return fmt.Sprintf("boltcodec: invalid signature 0x%02X with %d fields", e.Signature, e.Count)
}

func (e *InvalidSignatureError) Unwrap() error {
	return ErrInvalidSignature
}

// InvalidStringError wraps the underlying UTF-8 validation failure.
type InvalidStringError struct {
	Cause error
}

func (e *InvalidStringError) Error() string {
	return fmt.Sprintf("boltcodec: invalid UTF-8 string: %v", e.Cause)
}

func (e *InvalidStringError) Unwrap() error {
	return ErrInvalidString
}

// IOError wraps a failure from the underlying byte stream, naming the
// operation that failed (e.g. "read_u16", "write", "flush").
type IOError struct {
	Op    string
	Cause error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("boltcodec: io error during %s: %v", e.Op, e.Cause)
}

func (e *IOError) Unwrap() error {
	return e.Cause
}

// DeserializerPanicError is constructed by the recover() at every exported
// decode entry point, converting an internal invariant violation into a
// returned error instead of a process abort.
type DeserializerPanicError struct {
	Recovered any
}

func (e *DeserializerPanicError) Error() string {
	return fmt.Sprintf("boltcodec: internal decoder invariant violation: %v", e.Recovered)
}

func (e *DeserializerPanicError) Unwrap() error {
	return ErrDeserializerPanic
}
