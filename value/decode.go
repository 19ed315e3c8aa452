package value

import (
	"unicode/utf8"

	"github.com/boltwire/boltcodec/errs"
	"github.com/boltwire/boltcodec/internal/intern"
	"github.com/boltwire/boltcodec/internal/iobuf"
	"github.com/boltwire/boltcodec/structure"
)

// Decode reads and returns a single Value from data, which must contain
// exactly one encoded value (trailing bytes are ignored; use ReadFrom for
// a cursor shared across multiple reads).
func Decode(data []byte) (v Value, err error) {
	defer iobuf.RecoverDecode(&err)

	r := iobuf.NewReader(data)

	return ReadFrom(r)
}

// ReadFrom decodes a single Value from r, advancing r's cursor past it.
// ReadFrom itself does not recover from panics; callers that want
// spec.md §7's "the codec never panics on input" guarantee at their own
// boundary should wrap their entry point with iobuf.RecoverDecode, as
// Decode, message.Decode, and frame.Decode all do.
func ReadFrom(r *iobuf.Reader) (Value, error) {
	return readFrom(r, nil)
}

// ReadFromWithCache is ReadFrom, additionally interning every decoded
// String through cache (used for Map keys, Node labels, and relationship
// types, which recur heavily across a session). A nil cache disables
// interning.
func ReadFromWithCache(r *iobuf.Reader, cache *intern.Cache) (Value, error) {
	return readFrom(r, cache)
}

func readFrom(r *iobuf.Reader, cache *intern.Cache) (Value, error) {
	marker, err := r.ReadByte()
	if err != nil {
		return Value{}, err
	}

	switch {
	case marker == byte(MarkerNull):
		return Null, nil
	case marker == byte(MarkerTrue):
		return Boolean(true), nil
	case marker == byte(MarkerFalse):
		return Boolean(false), nil
	case marker == byte(MarkerFloat):
		f, err := r.ReadFloat64()
		if err != nil {
			return Value{}, err
		}

		return Float(f), nil
	case marker == byte(MarkerInt8):
		n, err := r.ReadInt8()
		if err != nil {
			return Value{}, err
		}

		return Integer(int64(n)), nil
	case marker == byte(MarkerInt16):
		n, err := r.ReadInt16()
		if err != nil {
			return Value{}, err
		}

		return Integer(int64(n)), nil
	case marker == byte(MarkerInt32):
		n, err := r.ReadInt32()
		if err != nil {
			return Value{}, err
		}

		return Integer(int64(n)), nil
	case marker == byte(MarkerInt64):
		n, err := r.ReadInt64()
		if err != nil {
			return Value{}, err
		}

		return Integer(n), nil
	case marker == byte(MarkerBytes8), marker == byte(MarkerBytes16), marker == byte(MarkerBytes32):
		b, err := readSizedBytes(r, marker, byte(MarkerBytes8), byte(MarkerBytes16), byte(MarkerBytes32), 0)
		if err != nil {
			return Value{}, err
		}

		return Bytes(b), nil
	case marker >= byte(MarkerTinyStringBase) && marker <= tinyStringHigh,
		marker == byte(MarkerString8), marker == byte(MarkerString16), marker == byte(MarkerString32):
		s, err := readString(r, marker, cache)
		if err != nil {
			return Value{}, err
		}

		return String(s), nil
	case marker >= byte(MarkerTinyListBase) && marker <= tinyListHigh,
		marker == byte(MarkerList8), marker == byte(MarkerList16), marker == byte(MarkerList32):
		n, err := readCount(r, marker, byte(MarkerTinyListBase), byte(MarkerList8), byte(MarkerList16), byte(MarkerList32))
		if err != nil {
			return Value{}, err
		}

		elems := make([]Value, n)
		for i := range elems {
			elems[i], err = readFrom(r, cache)
			if err != nil {
				return Value{}, err
			}
		}

		return List(elems), nil
	case marker >= byte(MarkerTinyMapBase) && marker <= tinyMapHigh,
		marker == byte(MarkerMap8), marker == byte(MarkerMap16), marker == byte(MarkerMap32):
		n, err := readCount(r, marker, byte(MarkerTinyMapBase), byte(MarkerMap8), byte(MarkerMap16), byte(MarkerMap32))
		if err != nil {
			return Value{}, err
		}

		m := make(map[string]Value, n)

		for i := 0; i < n; i++ {
			keyMarker, err := r.ReadByte()
			if err != nil {
				return Value{}, err
			}

			if !isStringMarker(keyMarker) {
				return Value{}, &errs.InvalidMarkerError{Byte: keyMarker}
			}

			k, err := readString(r, keyMarker, cache)
			if err != nil {
				return Value{}, err
			}

			v, err := readFrom(r, cache)
			if err != nil {
				return Value{}, err
			}

			m[k] = v
		}

		return Map(m), nil
	case structure.IsStructMarker(marker):
		return readStructValue(r, marker, cache)
	case marker <= 0x7F || marker >= 0xF0:
		// No structural marker matched; per spec.md §4.2's tie-break policy
		// the remaining byte space (0x00-0x7F, 0xF0-0xFF) is the tiny-int
		// form, and the marker byte itself (reinterpreted as signed) is the
		// value — there is nothing further to read.
		return Integer(int64(int8(marker))), nil
	default:
		return Value{}, &errs.InvalidMarkerError{Byte: marker}
	}
}

func isStringMarker(marker byte) bool {
	return (marker >= byte(MarkerTinyStringBase) && marker <= tinyStringHigh) ||
		marker == byte(MarkerString8) || marker == byte(MarkerString16) || marker == byte(MarkerString32)
}

// readCount reads the size embedded in (or following) a tiny/8/16/32
// marker for List and Map.
func readCount(r *iobuf.Reader, marker, tinyBase, m8, m16, m32 byte) (int, error) {
	if marker >= tinyBase && marker <= tinyBase+0x0F {
		return int(marker &^ tinyBase), nil
	}

	switch marker {
	case m8:
		n, err := r.ReadUint8()
		return int(n), err
	case m16:
		n, err := r.ReadUint16()
		return int(n), err
	case m32:
		n, err := r.ReadUint32()
		return int(n), err
	default:
		return 0, &errs.InvalidMarkerError{Byte: marker}
	}
}

func readSizedBytes(r *iobuf.Reader, marker, m8, m16, m32, tinyBase byte) ([]byte, error) {
	n, err := readCount(r, marker, tinyBase, m8, m16, m32)
	if err != nil {
		return nil, err
	}

	return r.ReadExact(n)
}

func readString(r *iobuf.Reader, marker byte, cache *intern.Cache) (string, error) {
	b, err := readSizedBytes(r, marker, byte(MarkerString8), byte(MarkerString16), byte(MarkerString32), byte(MarkerTinyStringBase))
	if err != nil {
		return "", err
	}

	if !utf8.Valid(b) {
		return "", &errs.InvalidStringError{Cause: errUTF8}
	}

	if cache != nil {
		return cache.Intern(b), nil
	}

	return string(b), nil
}

var errUTF8 = errs.ErrInvalidString

func readStructValue(r *iobuf.Reader, marker byte, cache *intern.Cache) (Value, error) {
	header, err := structure.ReadHeader(r, marker)
	if err != nil {
		return Value{}, err
	}

	switch {
	case header.Signature == SignatureNode && header.Count == 3:
		return readNode(r, cache)
	case header.Signature == SignatureRelationship && header.Count == 5:
		return readRelationship(r, cache)
	case header.Signature == SignatureUnboundRelationship && header.Count == 3:
		return readUnboundRelationship(r, cache)
	case header.Signature == SignaturePath && header.Count == 3:
		return readPath(r, cache)
	case header.Signature == SignatureDate && header.Count == 1:
		return readDate(r)
	case header.Signature == SignatureTime && header.Count == 2:
		return readTime(r)
	default:
		return Value{}, &errs.InvalidSignatureError{Signature: header.Signature, Count: header.Count}
	}
}

func readNode(r *iobuf.Reader, cache *intern.Cache) (Value, error) {
	id, err := readFrom(r, cache)
	if err != nil {
		return Value{}, err
	}

	labelsVal, err := readFrom(r, cache)
	if err != nil {
		return Value{}, err
	}

	props, err := readFrom(r, cache)
	if err != nil {
		return Value{}, err
	}

	labels := make([]string, len(labelsVal.List()))
	for i, l := range labelsVal.List() {
		labels[i] = l.String()
	}

	return NodeValue(Node{ID: id.Integer(), Labels: labels, Properties: props.Map()}), nil
}

func readRelationship(r *iobuf.Reader, cache *intern.Cache) (Value, error) {
	id, err := readFrom(r, cache)
	if err != nil {
		return Value{}, err
	}

	start, err := readFrom(r, cache)
	if err != nil {
		return Value{}, err
	}

	end, err := readFrom(r, cache)
	if err != nil {
		return Value{}, err
	}

	typ, err := readFrom(r, cache)
	if err != nil {
		return Value{}, err
	}

	props, err := readFrom(r, cache)
	if err != nil {
		return Value{}, err
	}

	return RelationshipValue(Relationship{
		ID:          id.Integer(),
		StartNodeID: start.Integer(),
		EndNodeID:   end.Integer(),
		Type:        typ.String(),
		Properties:  props.Map(),
	}), nil
}

func readUnboundRelationship(r *iobuf.Reader, cache *intern.Cache) (Value, error) {
	id, err := readFrom(r, cache)
	if err != nil {
		return Value{}, err
	}

	typ, err := readFrom(r, cache)
	if err != nil {
		return Value{}, err
	}

	props, err := readFrom(r, cache)
	if err != nil {
		return Value{}, err
	}

	return UnboundRelationshipValue(UnboundRelationship{ID: id.Integer(), Type: typ.String(), Properties: props.Map()}), nil
}

func readPath(r *iobuf.Reader, cache *intern.Cache) (Value, error) {
	nodesVal, err := readFrom(r, cache)
	if err != nil {
		return Value{}, err
	}

	relsVal, err := readFrom(r, cache)
	if err != nil {
		return Value{}, err
	}

	seqVal, err := readFrom(r, cache)
	if err != nil {
		return Value{}, err
	}

	nodes := make([]Node, len(nodesVal.List()))
	for i, n := range nodesVal.List() {
		nodes[i] = n.Node()
	}

	rels := make([]UnboundRelationship, len(relsVal.List()))
	for i, rv := range relsVal.List() {
		rels[i] = rv.UnboundRelationship()
	}

	seq := make([]int64, len(seqVal.List()))
	for i, s := range seqVal.List() {
		seq[i] = s.Integer()
	}

	return PathValue(Path{Nodes: nodes, Rels: rels, Sequence: seq}), nil
}

func readDate(r *iobuf.Reader) (Value, error) {
	days, err := readFrom(r, nil)
	if err != nil {
		return Value{}, err
	}

	return DateValue(Date{Days: days.Integer()}), nil
}

func readTime(r *iobuf.Reader) (Value, error) {
	nanos, err := readFrom(r, nil)
	if err != nil {
		return Value{}, err
	}

	offset, err := readFrom(r, nil)
	if err != nil {
		return Value{}, err
	}

	return TimeValue(Time{Nanoseconds: nanos.Integer(), OffsetSeconds: int32(offset.Integer())}), nil
}
