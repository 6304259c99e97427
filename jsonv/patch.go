package jsonv

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
)

// ApplyPatch applies an RFC 6902 patch document to the object's tree.
// The object's mapping is replaced in place, so every handle aliasing it
// observes the patched state. The tree is untouched on any error.
func ApplyPatch(o Object, patch string) error {
	if !o.Valid() {
		return fmt.Errorf("jsonv: patch of invalid object handle")
	}
	doc, ok := Serialize(o)
	if !ok {
		return fmt.Errorf("jsonv: serialize before patch failed")
	}
	p, err := jsonpatch.DecodePatch([]byte(patch))
	if err != nil {
		return fmt.Errorf("jsonv: decode patch: %w", err)
	}
	patched, err := p.Apply([]byte(doc))
	if err != nil {
		return fmt.Errorf("jsonv: apply patch: %w", err)
	}
	return o.replaceFromText(string(patched))
}

// ApplyMergePatch applies an RFC 7386 merge patch to the object's tree,
// in place, with the same aliasing behavior as ApplyPatch.
func ApplyMergePatch(o Object, patch string) error {
	if !o.Valid() {
		return fmt.Errorf("jsonv: merge patch of invalid object handle")
	}
	doc, ok := Serialize(o)
	if !ok {
		return fmt.Errorf("jsonv: serialize before merge patch failed")
	}
	patched, err := jsonpatch.MergePatch([]byte(doc), []byte(patch))
	if err != nil {
		return fmt.Errorf("jsonv: merge patch: %w", err)
	}
	return o.replaceFromText(string(patched))
}

// replaceFromText swaps the object's mapping for the one parsed from
// text, keeping the node (and therefore every alias) intact.
func (o Object) replaceFromText(text string) error {
	parsed, ok := Parse(text)
	if !ok {
		return fmt.Errorf("jsonv: patched document is not a JSON object")
	}
	o.n.fields = parsed.n.fields
	return nil
}
