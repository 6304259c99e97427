package jsonv

import "fmt"

// Kind identifies which variant a JSON value currently holds.
//
// The set is closed: hosts that cannot branch on an open type (such as a
// visual scripting layer) branch on Kind instead. KindNone is the tag of a
// declared-but-unassigned value and never appears in parsed trees.
type Kind int

const (
	KindNone Kind = iota
	KindNull
	KindString
	KindNumber
	KindBoolean
	KindArray
	KindObject
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		KindNone:    "None",
		KindNull:    "Null",
		KindString:  "String",
		KindNumber:  "Number",
		KindBoolean: "Boolean",
		KindArray:   "Array",
		KindObject:  "Object",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"None":    KindNone,
		"Null":    KindNull,
		"String":  KindString,
		"Number":  KindNumber,
		"Boolean": KindBoolean,
		"Array":   KindArray,
		"Object":  KindObject,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

// Kinds returns every tag in the closed set.
func Kinds() []Kind {
	return []Kind{
		KindNone,
		KindNull,
		KindString,
		KindNumber,
		KindBoolean,
		KindArray,
		KindObject,
	}
}

// IsComposite reports whether values of this kind carry child values.
func (k Kind) IsComposite() bool {
	return k == KindArray || k == KindObject
}
