package jsonv

import (
	"strconv"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("evennia.jsonv")

// node is the shared representation behind every handle. Scalars carry
// their payload by value; composite nodes carry child pointers, so two
// handles over the same node observe each other's mutations.
type node struct {
	kind Kind

	str string
	num float64
	b   bool

	fields map[string]*node // KindObject
	elems  []*node          // KindArray
}

// Value is a handle to a single JSON value of any kind. It is the handle
// callers use when they do not yet know (or do not care about) the
// Object/Array distinction, such as when walking a heterogeneous array.
//
// The zero Value is invalid.
type Value struct {
	n *node
}

// Object is a handle to a shared key/value mapping. Keys are unique and
// case-sensitive; insertion order carries no meaning.
//
// The zero Object is invalid.
type Object struct {
	n *node
}

// Array is a handle to a shared ordered sequence of JSON values. Order is
// significant and survives serialization round-trips.
//
// The zero Array is invalid.
type Array struct {
	n *node
}

// NewValue returns a fresh valid handle holding the None tag.
func NewValue() Value {
	return Value{n: &node{kind: KindNone}}
}

// NewObject returns a fresh valid handle over an empty mapping.
func NewObject() Object {
	return Object{n: &node{kind: KindObject, fields: map[string]*node{}}}
}

// NewArray returns a fresh valid handle over an empty sequence.
func NewArray() Array {
	return Array{n: &node{kind: KindArray}}
}

// Valid reports whether the handle references an underlying value.
func (v Value) Valid() bool { return v.n != nil }

// Valid reports whether the handle references an underlying mapping.
func (o Object) Valid() bool { return o.n != nil && o.n.fields != nil }

// Valid reports whether the handle references an underlying sequence.
func (a Array) Valid() bool { return a.n != nil }

// Kind returns the tag of the referenced value, or KindNone for an
// invalid handle.
func (v Value) Kind() Kind {
	if v.n == nil {
		return KindNone
	}
	return v.n.kind
}

// AsObject reinterprets the value as an Object handle. The caller is
// expected to have checked Kind first; on any other tag the result is an
// invalid Object, never garbage.
func (v Value) AsObject() Object {
	if v.n == nil || v.n.kind != KindObject {
		return Object{}
	}
	return Object{n: v.n}
}

// AsArray reinterprets the value as an Array handle. On any tag other
// than KindArray the result is an invalid Array.
func (v Value) AsArray() Array {
	if v.n == nil || v.n.kind != KindArray {
		return Array{}
	}
	return Array{n: v.n}
}

// AsString renders a scalar value as text: strings verbatim, numbers and
// booleans in their JSON spelling. Composite, null and none values yield "".
func (v Value) AsString() string {
	if v.n == nil {
		return ""
	}
	switch v.n.kind {
	case KindString:
		return v.n.str
	case KindNumber:
		return strconv.FormatFloat(v.n.num, 'f', -1, 64)
	case KindBoolean:
		if v.n.b {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

// AsNumber returns the numeric payload, with ok=false on an invalid
// handle or a non-number tag.
func (v Value) AsNumber() (float64, bool) {
	if v.n == nil || v.n.kind != KindNumber {
		return 0, false
	}
	return v.n.num, true
}

// AsBool returns the boolean payload, with ok=false on an invalid handle
// or a non-boolean tag.
func (v Value) AsBool() (bool, bool) {
	if v.n == nil || v.n.kind != KindBoolean {
		return false, false
	}
	return v.n.b, true
}

// Value returns the object reinterpreted as a generic Value handle,
// aliasing the same node. Invalid handles stay invalid.
func (o Object) Value() Value { return Value{n: o.n} }

// Value returns the array reinterpreted as a generic Value handle,
// aliasing the same node. Invalid handles stay invalid.
func (a Array) Value() Value { return Value{n: a.n} }

func fromString(s string) *node  { return &node{kind: KindString, str: s} }
func fromNumber(f float64) *node { return &node{kind: KindNumber, num: f} }
func fromBool(b bool) *node      { return &node{kind: KindBoolean, b: b} }
func nullNode() *node            { return &node{kind: KindNull} }
