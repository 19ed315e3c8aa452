// Package value implements the Bolt value codec: the 14-variant closed sum
// type of spec.md §3.1 and its marker-byte binary encoding (spec.md §4.2).
package value

import (
	"fmt"

	"github.com/boltwire/boltcodec/errs"
)

// Kind identifies which of the 14 value variants a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBoolean
	KindInteger
	KindFloat
	KindBytes
	KindString
	KindList
	KindMap
	KindNode
	KindRelationship
	KindUnboundRelationship
	KindPath
	KindDate
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBoolean:
		return "Boolean"
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindBytes:
		return "Bytes"
	case KindString:
		return "String"
	case KindList:
		return "List"
	case KindMap:
		return "Map"
	case KindNode:
		return "Node"
	case KindRelationship:
		return "Relationship"
	case KindUnboundRelationship:
		return "UnboundRelationship"
	case KindPath:
		return "Path"
	case KindDate:
		return "Date"
	case KindTime:
		return "Time"
	default:
		return "Unknown"
	}
}

// Value is the closed 14-variant Bolt value sum type. The zero Value is
// Null. Values are immutable after construction from the codec's
// perspective; containers (List, Map, Path) own their elements.
type Value struct {
	kind Kind

	boolean bool
	integer int64
	float   float64
	bytes   []byte
	str     string
	list    []Value
	m       map[string]Value
	node    Node
	rel     Relationship
	urel    UnboundRelationship
	path    Path
	date    Date
	time    Time
}

// Null is the Null value.
var Null = Value{kind: KindNull}

// Boolean constructs a Boolean value.
func Boolean(b bool) Value { return Value{kind: KindBoolean, boolean: b} }

// Integer constructs an Integer value.
func Integer(n int64) Value { return Value{kind: KindInteger, integer: n} }

// Float constructs a Float value.
func Float(f float64) Value { return Value{kind: KindFloat, float: f} }

// Bytes constructs a Bytes value. b is not copied.
func Bytes(b []byte) Value { return Value{kind: KindBytes, bytes: b} }

// String constructs a String value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// List constructs a List value. elems is not copied.
func List(elems []Value) Value { return Value{kind: KindList, list: elems} }

// Map constructs a Map value. m is not copied.
func Map(m map[string]Value) Value { return Value{kind: KindMap, m: m} }

// NodeValue constructs a Node value.
func NodeValue(n Node) Value { return Value{kind: KindNode, node: n} }

// RelationshipValue constructs a Relationship value.
func RelationshipValue(r Relationship) Value { return Value{kind: KindRelationship, rel: r} }

// UnboundRelationshipValue constructs an UnboundRelationship value.
func UnboundRelationshipValue(r UnboundRelationship) Value {
	return Value{kind: KindUnboundRelationship, urel: r}
}

// PathValue constructs a Path value.
func PathValue(p Path) Value { return Value{kind: KindPath, path: p} }

// DateValue constructs a Date value.
func DateValue(d Date) Value { return Value{kind: KindDate, date: d} }

// TimeValue constructs a Time value.
func TimeValue(t Time) Value { return Value{kind: KindTime, time: t} }

// Kind reports which variant this Value holds.
func (v Value) Kind() Kind { return v.kind }

// Boolean returns the Boolean payload, or false if Kind() != KindBoolean.
func (v Value) Boolean() bool { return v.boolean }

// Integer returns the Integer payload, or 0 if Kind() != KindInteger.
func (v Value) Integer() int64 { return v.integer }

// Float returns the Float payload, or 0 if Kind() != KindFloat.
func (v Value) Float() float64 { return v.float }

// Bytes returns the Bytes payload, or nil if Kind() != KindBytes.
func (v Value) Bytes() []byte { return v.bytes }

// String returns the String payload, or "" if Kind() != KindString.
func (v Value) String() string { return v.str }

// List returns the List payload, or nil if Kind() != KindList.
func (v Value) List() []Value { return v.list }

// Map returns the Map payload, or nil if Kind() != KindMap.
func (v Value) Map() map[string]Value { return v.m }

// Node returns the Node payload, valid only if Kind() == KindNode.
func (v Value) Node() Node { return v.node }

// Relationship returns the Relationship payload, valid only if
// Kind() == KindRelationship.
func (v Value) Relationship() Relationship { return v.rel }

// UnboundRelationship returns the UnboundRelationship payload, valid only
// if Kind() == KindUnboundRelationship.
func (v Value) UnboundRelationship() UnboundRelationship { return v.urel }

// Path returns the Path payload, valid only if Kind() == KindPath.
func (v Value) Path() Path { return v.path }

// Date returns the Date payload, valid only if Kind() == KindDate.
func (v Value) Date() Date { return v.date }

// Time returns the Time payload, valid only if Kind() == KindTime.
func (v Value) Time() Time { return v.time }

// Hashable reports whether v (recursively, through any List/Map/Node/
// Relationship/UnboundRelationship/Path it contains) holds no Float.
// Per spec.md §9, a Value carrying a Float is not usable as a set/map key.
func (v Value) Hashable() bool {
	return !v.containsFloat()
}

func (v Value) containsFloat() bool {
	switch v.kind {
	case KindFloat:
		return true
	case KindList:
		for _, e := range v.list {
			if e.containsFloat() {
				return true
			}
		}

		return false
	case KindMap:
		for _, e := range v.m {
			if e.containsFloat() {
				return true
			}
		}

		return false
	case KindNode:
		return mapContainsFloat(v.node.Properties)
	case KindRelationship:
		return mapContainsFloat(v.rel.Properties)
	case KindUnboundRelationship:
		return mapContainsFloat(v.urel.Properties)
	case KindPath:
		for _, n := range v.path.Nodes {
			if mapContainsFloat(n.Properties) {
				return true
			}
		}

		for _, r := range v.path.Rels {
			if mapContainsFloat(r.Properties) {
				return true
			}
		}

		return false
	default:
		return false
	}
}

func mapContainsFloat(m map[string]Value) bool {
	for _, v := range m {
		if v.containsFloat() {
			return true
		}
	}

	return false
}

// Key is a comparable, hashable rendering of a Value suitable for use as a
// Go map key, obtained via Value.Key.
type Key string

// Key converts v into a comparable Key, failing with ErrValueNotHashable
// rather than panicking when v is not Hashable.
//
// Two equal Values always produce the same Key; the converse holds too,
// since Key is built from v's canonical (smallest-width) encoding.
func (v Value) Key() (Key, error) {
	if !v.Hashable() {
		return "", errs.ErrValueNotHashable
	}

	b, err := Encode(v)
	if err != nil {
		return "", fmt.Errorf("value: computing key: %w", err)
	}

	return Key(b), nil
}
