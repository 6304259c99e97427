package jsonv

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Canonical mode keeps the binary encoding deterministic for a given tree.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("jsonv: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// MarshalCBOR serializes an object tree to CBOR bytes, a compact
// alternative to JSON text for transports that accept binary frames.
func MarshalCBOR(o Object) ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("jsonv: marshal of invalid object handle")
	}
	return cborEncMode.Marshal(toAny(o.n))
}

// MarshalArrayCBOR serializes an array tree to CBOR bytes.
func MarshalArrayCBOR(a Array) ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("jsonv: marshal of invalid array handle")
	}
	return cborEncMode.Marshal(toAny(a.n))
}

// UnmarshalCBOR rebuilds an object handle tree from CBOR bytes.
func UnmarshalCBOR(data []byte) (Object, error) {
	var raw map[string]any
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return Object{}, fmt.Errorf("jsonv: unmarshal object: %w", err)
	}
	n, err := fromCBORAny(raw)
	if err != nil {
		return Object{}, err
	}
	return Object{n: n}, nil
}

// UnmarshalArrayCBOR rebuilds an array handle tree from CBOR bytes.
func UnmarshalArrayCBOR(data []byte) (Array, error) {
	var raw []any
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return Array{}, fmt.Errorf("jsonv: unmarshal array: %w", err)
	}
	n, err := fromCBORAny(raw)
	if err != nil {
		return Array{}, err
	}
	return Array{n: n}, nil
}

// fromCBORAny widens the shapes cbor.Unmarshal produces (interface-keyed
// maps, sized integers) before reusing the JSON projection.
func fromCBORAny(v any) (*node, error) {
	switch x := v.(type) {
	case map[any]any:
		n := &node{kind: KindObject, fields: make(map[string]*node, len(x))}
		for k, c := range x {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("jsonv: non-string CBOR map key %v", k)
			}
			cn, err := fromCBORAny(c)
			if err != nil {
				return nil, err
			}
			n.fields[ks] = cn
		}
		return n, nil
	case map[string]any:
		n := &node{kind: KindObject, fields: make(map[string]*node, len(x))}
		for k, c := range x {
			cn, err := fromCBORAny(c)
			if err != nil {
				return nil, err
			}
			n.fields[k] = cn
		}
		return n, nil
	case []any:
		n := &node{kind: KindArray, elems: make([]*node, len(x))}
		for i, c := range x {
			cn, err := fromCBORAny(c)
			if err != nil {
				return nil, err
			}
			n.elems[i] = cn
		}
		return n, nil
	case uint64:
		return fromNumber(float64(x)), nil
	case int64:
		return fromNumber(float64(x)), nil
	case float32:
		return fromNumber(float64(x)), nil
	default:
		return fromAny(v)
	}
}
