package jsonv

import "testing"

func TestNewValueKind(t *testing.T) {
	v := NewValue()
	if !v.Valid() {
		t.Fatal("NewValue returned an invalid handle")
	}
	if v.Kind() != KindNone {
		t.Errorf("new value kind = %s, want None", v.Kind())
	}
}

func TestZeroHandlesInvalid(t *testing.T) {
	var v Value
	var o Object
	var a Array
	if v.Valid() {
		t.Error("zero Value should be invalid")
	}
	if o.Valid() {
		t.Error("zero Object should be invalid")
	}
	if a.Valid() {
		t.Error("zero Array should be invalid")
	}
	if v.Kind() != KindNone {
		t.Errorf("invalid value kind = %s, want None", v.Kind())
	}
}

func TestCastMismatchYieldsInvalid(t *testing.T) {
	obj := NewObject()
	v := obj.Value()

	if arr := v.AsArray(); arr.Valid() {
		t.Error("object cast to array should be invalid")
	}
	if got := v.AsString(); got != "" {
		t.Errorf("object AsString = %q, want empty", got)
	}
	if _, ok := v.AsNumber(); ok {
		t.Error("object AsNumber should report failure")
	}

	if back := v.AsObject(); !back.Valid() {
		t.Error("object cast to object should stay valid")
	}
}

func TestAsStringScalars(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{`"hello"`, "hello"},
		{`3.14`, "3.14"},
		{`42`, "42"},
		{`true`, "true"},
		{`false`, "false"},
		{`null`, ""},
	}
	for _, tt := range tests {
		v, ok := ParseValue(tt.text)
		if !ok {
			t.Fatalf("ParseValue(%q) failed", tt.text)
		}
		if got := v.AsString(); got != tt.want {
			t.Errorf("AsString(%s) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestObjectArrayValueRoundtrip(t *testing.T) {
	arr := NewArray()
	arr.AppendString("x")
	v := arr.Value()
	if v.Kind() != KindArray {
		t.Fatalf("array value kind = %s, want Array", v.Kind())
	}
	back := v.AsArray()
	if back.Len() != 1 {
		t.Errorf("aliased array length = %d, want 1", back.Len())
	}
}

func TestKindText(t *testing.T) {
	for _, k := range Kinds() {
		data, err := k.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%s): %v", k, err)
		}
		var back Kind
		if err := back.UnmarshalText(data); err != nil {
			t.Fatalf("UnmarshalText(%s): %v", data, err)
		}
		if back != k {
			t.Errorf("kind round-trip %s -> %s", k, back)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("Integer")); err == nil {
		t.Error("UnmarshalText should reject an unknown kind name")
	}
}
