package value

import (
	"fmt"
	"math"
	"sort"

	"github.com/boltwire/boltcodec/errs"
	"github.com/boltwire/boltcodec/internal/iobuf"
	"github.com/boltwire/boltcodec/structure"
)

// Encode returns the canonical wire encoding of v.
func Encode(v Value) ([]byte, error) {
	w := iobuf.NewWriter()
	defer w.Release()

	if err := WriteTo(w, v); err != nil {
		return nil, err
	}

	out := make([]byte, w.Len())
	copy(out, w.Bytes())

	return out, nil
}

// WriteTo encodes v into w, dispatching by variant per spec.md §4.2. All
// integers in the wire format are big-endian; the smallest-fitting width is
// always selected.
func WriteTo(w *iobuf.Writer, v Value) error {
	switch v.kind {
	case KindNull:
		w.WriteByte(byte(MarkerNull))
		return nil
	case KindBoolean:
		if v.boolean {
			w.WriteByte(byte(MarkerTrue))
		} else {
			w.WriteByte(byte(MarkerFalse))
		}

		return nil
	case KindInteger:
		writeInteger(w, v.integer)
		return nil
	case KindFloat:
		w.WriteByte(byte(MarkerFloat))
		w.WriteFloat64(v.float)

		return nil
	case KindBytes:
		return writeSized(w, v.bytes, MarkerBytes8, MarkerBytes16, MarkerBytes32, 0, writeRawBytes)
	case KindString:
		b := []byte(v.str)
		return writeSized(w, b, MarkerString8, MarkerString16, MarkerString32, MarkerTinyStringBase, writeRawBytes)
	case KindList:
		return writeList(w, v.list)
	case KindMap:
		return writeMap(w, v.m)
	case KindNode:
		return writeNode(w, v.node)
	case KindRelationship:
		return writeRelationship(w, v.rel)
	case KindUnboundRelationship:
		return writeUnboundRelationship(w, v.urel)
	case KindPath:
		return writePath(w, v.path)
	case KindDate:
		return writeDate(w, v.date)
	case KindTime:
		return writeTime(w, v.time)
	default:
		return fmt.Errorf("value: encode: unknown kind %v", v.kind)
	}
}

// writeInteger selects the smallest-fitting width per spec.md §4.2.
func writeInteger(w *iobuf.Writer, n int64) {
	switch {
	case n >= int64(tinyIntMin) && n <= int64(tinyIntMax):
		w.WriteInt8(int8(n))
	case n >= -128 && n < int64(tinyIntMin):
		w.WriteByte(byte(MarkerInt8))
		w.WriteInt8(int8(n))
	case n >= math.MinInt16 && n <= math.MaxInt16:
		w.WriteByte(byte(MarkerInt16))
		w.WriteInt16(int16(n))
	case n >= math.MinInt32 && n <= math.MaxInt32:
		w.WriteByte(byte(MarkerInt32))
		w.WriteInt32(int32(n))
	default:
		w.WriteByte(byte(MarkerInt64))
		w.WriteInt64(n)
	}
}

func writeRawBytes(w *iobuf.Writer, b []byte) {
	w.WriteBytes(b)
}

// writeSized emits the tiny/8/16/32 length-prefixed form for a byte
// payload, picking the tiny form only when tinyBase is non-zero (Bytes has
// no tiny form per spec.md §4.2; String does).
func writeSized(w *iobuf.Writer, b []byte, m8, m16, m32, tinyBase Marker, write func(*iobuf.Writer, []byte)) error {
	n := len(b)

	switch {
	case tinyBase != 0 && n <= 15:
		w.WriteByte(byte(tinyBase) | byte(n))
	case n <= 0xFF:
		w.WriteByte(byte(m8))
		w.WriteUint8(uint8(n))
	case n <= 0xFFFF:
		w.WriteByte(byte(m16))
		w.WriteUint16(uint16(n))
	case n <= math.MaxUint32:
		w.WriteByte(byte(m32))
		w.WriteUint32(uint32(n))
	default:
		return errs.ErrEncoderOverflow
	}

	write(w, b)

	return nil
}

func writeList(w *iobuf.Writer, elems []Value) error {
	n := len(elems)

	switch {
	case n <= 15:
		w.WriteByte(byte(MarkerTinyListBase) | byte(n))
	case n <= 0xFF:
		w.WriteByte(byte(MarkerList8))
		w.WriteUint8(uint8(n))
	case n <= 0xFFFF:
		w.WriteByte(byte(MarkerList16))
		w.WriteUint16(uint16(n))
	case n <= math.MaxUint32:
		w.WriteByte(byte(MarkerList32))
		w.WriteUint32(uint32(n))
	default:
		return errs.ErrEncoderOverflow
	}

	for _, e := range elems {
		if err := WriteTo(w, e); err != nil {
			return err
		}
	}

	return nil
}

func writeMap(w *iobuf.Writer, m map[string]Value) error {
	n := len(m)

	switch {
	case n <= 15:
		w.WriteByte(byte(MarkerTinyMapBase) | byte(n))
	case n <= 0xFF:
		w.WriteByte(byte(MarkerMap8))
		w.WriteUint8(uint8(n))
	case n <= 0xFFFF:
		w.WriteByte(byte(MarkerMap16))
		w.WriteUint16(uint16(n))
	case n <= math.MaxUint32:
		w.WriteByte(byte(MarkerMap32))
		w.WriteUint32(uint32(n))
	default:
		return errs.ErrEncoderOverflow
	}

	// Entries are written in sorted key order so equal maps always encode
	// to identical bytes (Value.Key relies on this).
	keys := make([]string, 0, n)
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		if err := WriteTo(w, String(k)); err != nil {
			return err
		}

		if err := WriteTo(w, m[k]); err != nil {
			return err
		}
	}

	return nil
}

func writeNode(w *iobuf.Writer, n Node) error {
	if err := structure.WriteHeader(w, 3, SignatureNode); err != nil {
		return err
	}

	labels := make([]Value, len(n.Labels))
	for i, l := range n.Labels {
		labels[i] = String(l)
	}

	return writeFields(w, Integer(n.ID), List(labels), Map(n.Properties))
}

func writeRelationship(w *iobuf.Writer, r Relationship) error {
	if err := structure.WriteHeader(w, 5, SignatureRelationship); err != nil {
		return err
	}

	return writeFields(w, Integer(r.ID), Integer(r.StartNodeID), Integer(r.EndNodeID), String(r.Type), Map(r.Properties))
}

func writeUnboundRelationship(w *iobuf.Writer, r UnboundRelationship) error {
	if err := structure.WriteHeader(w, 3, SignatureUnboundRelationship); err != nil {
		return err
	}

	return writeFields(w, Integer(r.ID), String(r.Type), Map(r.Properties))
}

func writePath(w *iobuf.Writer, p Path) error {
	if err := structure.WriteHeader(w, 3, SignaturePath); err != nil {
		return err
	}

	nodes := make([]Value, len(p.Nodes))
	for i, n := range p.Nodes {
		nodes[i] = NodeValue(n)
	}

	rels := make([]Value, len(p.Rels))
	for i, r := range p.Rels {
		rels[i] = UnboundRelationshipValue(r)
	}

	seq := make([]Value, len(p.Sequence))
	for i, s := range p.Sequence {
		seq[i] = Integer(s)
	}

	return writeFields(w, List(nodes), List(rels), List(seq))
}

func writeDate(w *iobuf.Writer, d Date) error {
	if err := structure.WriteHeader(w, 1, SignatureDate); err != nil {
		return err
	}

	return writeFields(w, Integer(d.Days))
}

func writeTime(w *iobuf.Writer, t Time) error {
	if err := structure.WriteHeader(w, 2, SignatureTime); err != nil {
		return err
	}

	return writeFields(w, Integer(t.Nanoseconds), Integer(int64(t.OffsetSeconds)))
}

func writeFields(w *iobuf.Writer, fields ...Value) error {
	for _, f := range fields {
		if err := WriteTo(w, f); err != nil {
			return err
		}
	}

	return nil
}
