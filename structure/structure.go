// Package structure implements the structure codec of spec.md §4.3: the
// tagged-record encoding (field count + signature byte) shared by the
// value codec's composite variants (Node, Relationship,
// UnboundRelationship, Path, Date, Time) and by every message in package
// message.
//
// structure is deliberately ignorant of what a signature means — it reads
// and writes the (count, signature) header only, leaving field encoding to
// its caller. This keeps structure free of a dependency on package value,
// so both value and message can depend on structure without a cycle, and
// gives spec.md §9's "polymorphism across shared signatures" exactly one
// two-level dispatch point: ReadHeader returns the (Signature, Count) pair,
// and the caller's own switch selects the variant.
package structure

import (
	"github.com/boltwire/boltcodec/errs"
	"github.com/boltwire/boltcodec/internal/iobuf"
)

// MaxFields is the largest field count a structure marker can carry. Bolt
// defines no "large structure" form; an attempt to encode more fields than
// this is EncoderOverflow.
const MaxFields = 65535

// tinyStructBase and the struct8/struct16 markers, mirroring value.Marker's
// constants; kept local so this package has no dependency on value.
const (
	tinyStructBase byte = 0xB0
	tinyStructHigh byte = 0xBF
	struct8        byte = 0xDC
	struct16       byte = 0xDD
)

// Header is a structure's field count and signature byte.
type Header struct {
	Signature byte
	Count     int
}

// WriteHeader emits the structure marker (tiny/8/16 form) for fieldCount
// followed by the signature byte. The caller is responsible for then
// writing exactly fieldCount encoded values.
func WriteHeader(w *iobuf.Writer, fieldCount int, signature byte) error {
	switch {
	case fieldCount < 0:
		return errs.ErrEncoderOverflow
	case fieldCount <= 15:
		w.WriteByte(tinyStructBase | byte(fieldCount))
	case fieldCount <= 0xFF:
		w.WriteByte(struct8)
		w.WriteUint8(uint8(fieldCount))
	case fieldCount <= MaxFields:
		w.WriteByte(struct16)
		w.WriteUint16(uint16(fieldCount))
	default:
		return errs.ErrEncoderOverflow
	}

	w.WriteByte(signature)

	return nil
}

// ReadHeader reads a structure marker and signature byte, returning the
// decoded field count. marker is the already-peeked-and-consumed marker
// byte that led the caller to believe a structure follows.
func ReadHeader(r *iobuf.Reader, marker byte) (Header, error) {
	var count int

	switch {
	case marker >= tinyStructBase && marker <= tinyStructHigh:
		count = int(marker &^ tinyStructBase)
	case marker == struct8:
		n, err := r.ReadUint8()
		if err != nil {
			return Header{}, err
		}

		count = int(n)
	case marker == struct16:
		n, err := r.ReadUint16()
		if err != nil {
			return Header{}, err
		}

		count = int(n)
	default:
		return Header{}, &errs.InvalidMarkerError{Byte: marker}
	}

	sig, err := r.ReadByte()
	if err != nil {
		return Header{}, err
	}

	return Header{Signature: sig, Count: count}, nil
}

// IsStructMarker reports whether marker begins a structure (tiny, 8, or 16
// form). It only inspects the byte; callers read the marker first.
func IsStructMarker(marker byte) bool {
	return (marker >= tinyStructBase && marker <= tinyStructHigh) || marker == struct8 || marker == struct16
}
