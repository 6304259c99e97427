package bridge

import (
	"github.com/castlelorestudios/EvenniaPluginSampleProject/jsonv"
)

// --- construction ---

// NewJSONObject returns a valid handle over an empty object.
func NewJSONObject() jsonv.Object { return jsonv.NewObject() }

// NewJSONObjectArray returns a valid handle over an empty array.
func NewJSONObjectArray() jsonv.Array { return jsonv.NewArray() }

// NewJSONValue returns a valid value handle holding the None tag.
func NewJSONValue() jsonv.Value { return jsonv.NewValue() }

// --- object mutation ---

// AddElement writes a string field. An empty name is rejected.
func AddElement(obj jsonv.Object, name, value string) {
	obj.SetField(name, value)
}

// AddNumericElement writes a numeric field, widening from the host's
// single-precision representation.
func AddNumericElement(obj jsonv.Object, name string, value float32) {
	obj.SetNumberField(name, float64(value))
}

// AddBoolElement writes a boolean field.
func AddBoolElement(obj jsonv.Object, name string, value bool) {
	obj.SetBoolField(name, value)
}

// AddObject attaches child under name, aliasing it.
func AddObject(obj jsonv.Object, name string, child jsonv.Object) {
	obj.SetObjectField(name, child)
}

// AddArrayToObject attaches arr under name, aliasing it.
func AddArrayToObject(obj jsonv.Object, name string, arr jsonv.Array) {
	obj.SetArrayField(name, arr)
}

// AddObjectToArray appends value to the array, aliasing it: mutating
// value afterwards is visible through the array element.
func AddObjectToArray(arr jsonv.Array, value jsonv.Object) {
	arr.AppendObject(value)
}

// AddArrayToArray appends value to arr wrapped in a {name: value} object.
func AddArrayToArray(arr jsonv.Array, name string, value jsonv.Array) {
	arr.AppendArray(name, value)
}

// --- object queries ---

// GetElement reads a string field; found distinguishes a missing key from
// a present empty string.
func GetElement(obj jsonv.Object, name string) (string, bool) {
	return obj.GetField(name)
}

// GetNumericElement reads a numeric field, narrowed to the host's single
// precision.
func GetNumericElement(obj jsonv.Object, name string) (float32, bool) {
	v, found := obj.GetNumberField(name)
	return float32(v), found
}

// GetObject returns the object under name. The result is an invalid (but
// never nil) handle when the key is absent or holds a non-object; check
// Valid before traversing.
func GetObject(obj jsonv.Object, name string) jsonv.Object {
	return obj.GetObjectField(name)
}

// GetObjectKeysAndTypes lists every key with its value's kind, plus the
// count, so the host can branch per field.
func GetObjectKeysAndTypes(obj jsonv.Object) (map[string]jsonv.Kind, int) {
	return obj.KeysAndKinds()
}

// --- array queries ---

// GetElementMultiple reads the named string field of the object element
// at index. Out-of-range indices fail cleanly.
func GetElementMultiple(arr jsonv.Array, index int, name string) (string, bool) {
	return arr.FieldAt(index, name)
}

// GetObjectFromArray returns the object element at index.
func GetObjectFromArray(arr jsonv.Array, index int) (jsonv.Object, bool) {
	return arr.ObjectAt(index)
}

// GetArrayValues returns one value handle per element plus the count,
// for hosts iterating heterogeneous arrays.
func GetArrayValues(arr jsonv.Array) ([]jsonv.Value, int) {
	return arr.Values()
}

// GetArrayElementType returns the kind tag of the element at index.
func GetArrayElementType(arr jsonv.Array, index int) (jsonv.Kind, bool) {
	return arr.ElementKind(index)
}

// --- value casts ---

// GetValueType returns the closed kind tag the host branches on.
// Invalid handles report KindNone.
func GetValueType(v jsonv.Value) jsonv.Kind { return v.Kind() }

// ValueAsObject casts a value handle to an object handle; the result is
// invalid on any other tag, never garbage.
func ValueAsObject(v jsonv.Value) jsonv.Object { return v.AsObject() }

// ValueAsArray casts a value handle to an array handle; the result is
// invalid on any other tag.
func ValueAsArray(v jsonv.Value) jsonv.Array { return v.AsArray() }

// ValueAsString renders a scalar value as text; composite and null
// values yield "".
func ValueAsString(v jsonv.Value) string { return v.AsString() }

// --- serialization ---

// SerializeObject emits compact JSON text; ok is false only for an
// invalid handle.
func SerializeObject(obj jsonv.Object) (string, bool) {
	return jsonv.Serialize(obj)
}

// SerializeObjectArray emits compact JSON text for an array tree.
func SerializeObjectArray(arr jsonv.Array) (string, bool) {
	return jsonv.SerializeArray(arr)
}

// ParseString builds an object handle tree from JSON text; ok is false
// on malformed input.
func ParseString(text string) (jsonv.Object, bool) {
	return jsonv.Parse(text)
}

// ParseMultiple builds an array handle tree from JSON text and reports
// the top-level element count.
func ParseMultiple(text string) (jsonv.Array, int, bool) {
	return jsonv.ParseArray(text)
}

// SerializeObjectCBOR emits the object tree as canonical CBOR bytes.
func SerializeObjectCBOR(obj jsonv.Object) ([]byte, bool) {
	data, err := jsonv.MarshalCBOR(obj)
	if err != nil {
		log.Warningf("SerializeObjectCBOR: %s", err.Error())
		return nil, false
	}
	return data, true
}

// ParseCBOR rebuilds an object handle tree from CBOR bytes.
func ParseCBOR(data []byte) (jsonv.Object, bool) {
	obj, err := jsonv.UnmarshalCBOR(data)
	if err != nil {
		log.Warningf("ParseCBOR: %s", err.Error())
		return jsonv.Object{}, false
	}
	return obj, true
}

// --- patching ---

// PatchObject applies an RFC 6902 patch document in place; every handle
// aliasing obj observes the result. The tree is untouched on failure.
func PatchObject(obj jsonv.Object, patch string) bool {
	if err := jsonv.ApplyPatch(obj, patch); err != nil {
		log.Warningf("PatchObject: %s", err.Error())
		return false
	}
	return true
}

// MergePatchObject applies an RFC 7386 merge patch in place.
func MergePatchObject(obj jsonv.Object, patch string) bool {
	if err := jsonv.ApplyMergePatch(obj, patch); err != nil {
		log.Warningf("MergePatchObject: %s", err.Error())
		return false
	}
	return true
}

// --- diagnostics ---

// PrintJSONObject logs one line per node of the object tree.
func PrintJSONObject(obj jsonv.Object) { jsonv.PrintObjectTree(obj) }

// PrintJSONArray logs one line per node of the array tree.
func PrintJSONArray(arr jsonv.Array) { jsonv.PrintArrayTree(arr) }
