package jsonv

// SetField writes a string field. The empty key is rejected for this
// setter specifically; the sibling setters accept it. (The asymmetry is
// inherited from the callers this surface replaces and is kept so their
// behavior does not shift underneath them.)
func (o Object) SetField(key, value string) {
	if !o.Valid() {
		log.Warning("SetField: invalid object handle")
		return
	}
	if key == "" {
		log.Warning("SetField: field name must be provided")
		return
	}
	o.n.fields[key] = fromString(value)
}

// SetNumberField writes a numeric field. Last write wins on overwrite.
func (o Object) SetNumberField(key string, value float64) {
	if !o.Valid() {
		log.Warning("SetNumberField: invalid object handle")
		return
	}
	o.n.fields[key] = fromNumber(value)
}

// SetBoolField writes a boolean field.
func (o Object) SetBoolField(key string, value bool) {
	if !o.Valid() {
		log.Warning("SetBoolField: invalid object handle")
		return
	}
	o.n.fields[key] = fromBool(value)
}

// SetNullField writes an explicit JSON null.
func (o Object) SetNullField(key string) {
	if !o.Valid() {
		log.Warning("SetNullField: invalid object handle")
		return
	}
	o.n.fields[key] = nullNode()
}

// SetObjectField attaches child under key. The child is aliased, not
// copied: later mutations through child are visible through o.
func (o Object) SetObjectField(key string, child Object) {
	if !o.Valid() || !child.Valid() {
		log.Warning("SetObjectField: invalid handle")
		return
	}
	o.n.fields[key] = child.n
}

// SetArrayField attaches arr under key, aliasing it.
func (o Object) SetArrayField(key string, arr Array) {
	if !o.Valid() || !arr.Valid() {
		log.Warning("SetArrayField: invalid handle")
		return
	}
	o.n.fields[key] = arr.n
}

// GetField reads a string field. The found flag distinguishes a missing
// key (or non-string value) from a present empty string.
func (o Object) GetField(key string) (string, bool) {
	if !o.Valid() {
		log.Warning("GetField: invalid object handle")
		return "", false
	}
	n, ok := o.n.fields[key]
	if !ok || n.kind != KindString {
		return "", false
	}
	return n.str, true
}

// GetNumberField reads a numeric field with a found flag.
func (o Object) GetNumberField(key string) (float64, bool) {
	if !o.Valid() {
		log.Warning("GetNumberField: invalid object handle")
		return 0, false
	}
	n, ok := o.n.fields[key]
	if !ok || n.kind != KindNumber {
		return 0, false
	}
	return n.num, true
}

// GetBoolField reads a boolean field with a found flag.
func (o Object) GetBoolField(key string) (bool, bool) {
	if !o.Valid() {
		log.Warning("GetBoolField: invalid object handle")
		return false, false
	}
	n, ok := o.n.fields[key]
	if !ok || n.kind != KindBoolean {
		return false, false
	}
	return n.b, true
}

// GetObjectField returns the object stored under key. When the key is
// absent, or holds a non-object, the result is an invalid handle the
// caller must check before traversing further. Never nil-dereferences.
func (o Object) GetObjectField(key string) Object {
	if !o.Valid() {
		log.Warning("GetObjectField: invalid object handle")
		return Object{}
	}
	n, ok := o.n.fields[key]
	if !ok || n.kind != KindObject {
		return Object{}
	}
	return Object{n: n}
}

// GetArrayField returns the array stored under key, or an invalid handle
// when the key is absent or holds a non-array.
func (o Object) GetArrayField(key string) Array {
	if !o.Valid() {
		log.Warning("GetArrayField: invalid object handle")
		return Array{}
	}
	n, ok := o.n.fields[key]
	if !ok || n.kind != KindArray {
		return Array{}
	}
	return Array{n: n}
}

// GetValueField returns the field as a generic Value handle regardless of
// its tag, with a found flag.
func (o Object) GetValueField(key string) (Value, bool) {
	if !o.Valid() {
		log.Warning("GetValueField: invalid object handle")
		return Value{}, false
	}
	n, ok := o.n.fields[key]
	if !ok {
		return Value{}, false
	}
	return Value{n: n}, true
}

// RemoveField deletes key from the mapping. Removing a missing key is a
// no-op.
func (o Object) RemoveField(key string) {
	if !o.Valid() {
		log.Warning("RemoveField: invalid object handle")
		return
	}
	delete(o.n.fields, key)
}

// Len returns the number of fields, 0 for an invalid handle.
func (o Object) Len() int {
	if !o.Valid() {
		return 0
	}
	return len(o.n.fields)
}

// KeysAndKinds returns every key together with the tag of its value,
// plus the field count. Iteration order is unspecified.
func (o Object) KeysAndKinds() (map[string]Kind, int) {
	out := map[string]Kind{}
	if !o.Valid() {
		return out, 0
	}
	for k, n := range o.n.fields {
		out[k] = n.kind
	}
	return out, len(out)
}
