package jsonv

import (
	"encoding/json"
	"fmt"
)

// toAny projects a node tree onto the encoding/json value shapes.
func toAny(n *node) any {
	switch n.kind {
	case KindString:
		return n.str
	case KindNumber:
		return n.num
	case KindBoolean:
		return n.b
	case KindObject:
		out := make(map[string]any, len(n.fields))
		for k, c := range n.fields {
			out[k] = toAny(c)
		}
		return out
	case KindArray:
		out := make([]any, len(n.elems))
		for i, c := range n.elems {
			out[i] = toAny(c)
		}
		return out
	default:
		// Null and None both serialize as JSON null.
		return nil
	}
}

// fromAny rebuilds a node tree from encoding/json value shapes.
func fromAny(v any) (*node, error) {
	switch x := v.(type) {
	case nil:
		return nullNode(), nil
	case string:
		return fromString(x), nil
	case float64:
		return fromNumber(x), nil
	case bool:
		return fromBool(x), nil
	case map[string]any:
		n := &node{kind: KindObject, fields: make(map[string]*node, len(x))}
		for k, c := range x {
			cn, err := fromAny(c)
			if err != nil {
				return nil, err
			}
			n.fields[k] = cn
		}
		return n, nil
	case []any:
		n := &node{kind: KindArray, elems: make([]*node, len(x))}
		for i, c := range x {
			cn, err := fromAny(c)
			if err != nil {
				return nil, err
			}
			n.elems[i] = cn
		}
		return n, nil
	default:
		return nil, fmt.Errorf("unsupported value %T", v)
	}
}

// Serialize emits the object's tree as compact JSON text. It fails only
// for an invalid handle; a structurally valid (possibly empty) tree
// always serializes.
func Serialize(o Object) (string, bool) {
	if !o.Valid() {
		log.Warning("Serialize: invalid object handle")
		return "", false
	}
	data, err := json.Marshal(toAny(o.n))
	if err != nil {
		log.Errorf("Serialize: %s", err.Error())
		return "", false
	}
	return string(data), true
}

// SerializeArray emits the array's tree as compact JSON text.
func SerializeArray(a Array) (string, bool) {
	if !a.Valid() {
		log.Warning("SerializeArray: invalid array handle")
		return "", false
	}
	data, err := json.Marshal(toAny(a.n))
	if err != nil {
		log.Errorf("SerializeArray: %s", err.Error())
		return "", false
	}
	return string(data), true
}

// Parse builds an object handle tree from JSON text. Malformed input, or
// a document whose top-level value is not an object, yields an invalid
// handle and ok=false.
func Parse(text string) (Object, bool) {
	v, ok := ParseValue(text)
	if !ok {
		return Object{}, false
	}
	obj := v.AsObject()
	if !obj.Valid() {
		log.Warningf("Parse: top-level value is %s, not Object", v.Kind().String())
		return Object{}, false
	}
	return obj, true
}

// ParseArray builds an array handle tree from JSON text and reports the
// top-level element count.
func ParseArray(text string) (Array, int, bool) {
	v, ok := ParseValue(text)
	if !ok {
		return Array{}, 0, false
	}
	arr := v.AsArray()
	if !arr.Valid() {
		log.Warningf("ParseArray: top-level value is %s, not Array", v.Kind().String())
		return Array{}, 0, false
	}
	return arr, arr.Len(), true
}

// ParseValue builds a handle tree from JSON text of any top-level kind,
// including bare scalars and null.
func ParseValue(text string) (Value, bool) {
	var raw any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		log.Warningf("ParseValue: %s", err.Error())
		return Value{}, false
	}
	n, err := fromAny(raw)
	if err != nil {
		log.Warningf("ParseValue: %s", err.Error())
		return Value{}, false
	}
	return Value{n: n}, true
}
