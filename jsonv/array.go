package jsonv

// AppendObject appends obj as an element. The element aliases obj's
// mapping: mutating obj afterwards is visible when re-reading the array.
func (a Array) AppendObject(obj Object) {
	if !a.Valid() || !obj.Valid() {
		log.Warning("AppendObject: invalid handle")
		return
	}
	a.n.elems = append(a.n.elems, obj.n)
}

// AppendArray wraps nested in a single-field object {key: nested} and
// appends that wrapper. The nested array is aliased through the wrapper.
// (JSON arrays nest directly; the wrapper shape is what this surface's
// existing callers expect for named sub-arrays.)
func (a Array) AppendArray(key string, nested Array) {
	if !a.Valid() || !nested.Valid() {
		log.Warning("AppendArray: invalid handle")
		return
	}
	wrapper := NewObject()
	wrapper.SetArrayField(key, nested)
	a.n.elems = append(a.n.elems, wrapper.n)
}

// AppendValue appends any value handle, aliasing its node.
func (a Array) AppendValue(v Value) {
	if !a.Valid() || !v.Valid() {
		log.Warning("AppendValue: invalid handle")
		return
	}
	a.n.elems = append(a.n.elems, v.n)
}

// AppendString appends a string element.
func (a Array) AppendString(s string) {
	if !a.Valid() {
		log.Warning("AppendString: invalid array handle")
		return
	}
	a.n.elems = append(a.n.elems, fromString(s))
}

// AppendNumber appends a numeric element.
func (a Array) AppendNumber(f float64) {
	if !a.Valid() {
		log.Warning("AppendNumber: invalid array handle")
		return
	}
	a.n.elems = append(a.n.elems, fromNumber(f))
}

// Len returns the element count, 0 for an invalid handle.
func (a Array) Len() int {
	if !a.Valid() {
		return 0
	}
	return len(a.n.elems)
}

// At returns the element at index as a generic value handle. Out-of-range
// indices (and invalid handles) yield ok=false.
func (a Array) At(index int) (Value, bool) {
	if !a.Valid() {
		log.Warning("At: invalid array handle")
		return Value{}, false
	}
	if index < 0 || index >= len(a.n.elems) {
		return Value{}, false
	}
	return Value{n: a.n.elems[index]}, true
}

// ObjectAt returns the element at index as an Object handle. ok is false
// for an out-of-range index or a non-object element.
func (a Array) ObjectAt(index int) (Object, bool) {
	v, ok := a.At(index)
	if !ok {
		return Object{}, false
	}
	obj := v.AsObject()
	if !obj.Valid() {
		return Object{}, false
	}
	return obj, true
}

// FieldAt reads the named string field of the object element at index.
func (a Array) FieldAt(index int, key string) (string, bool) {
	obj, ok := a.ObjectAt(index)
	if !ok {
		return "", false
	}
	return obj.GetField(key)
}

// ElementKind returns the tag of the element at index.
func (a Array) ElementKind(index int) (Kind, bool) {
	v, ok := a.At(index)
	if !ok {
		return KindNone, false
	}
	return v.Kind(), true
}

// Values returns one value handle per element (each aliasing the
// underlying node) plus the element count.
func (a Array) Values() ([]Value, int) {
	if !a.Valid() {
		return nil, 0
	}
	out := make([]Value, len(a.n.elems))
	for i, n := range a.n.elems {
		out[i] = Value{n: n}
	}
	return out, len(out)
}

// ReplaceAll swaps the whole sequence for the given values. Handles
// aliasing this array observe the replacement.
func (a Array) ReplaceAll(values []Value) {
	if !a.Valid() {
		log.Warning("ReplaceAll: invalid array handle")
		return
	}
	elems := make([]*node, 0, len(values))
	for _, v := range values {
		if v.n == nil {
			continue
		}
		elems = append(elems, v.n)
	}
	a.n.elems = elems
}
