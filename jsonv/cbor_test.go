package jsonv

import "testing"

func TestCBORObjectRoundTrip(t *testing.T) {
	obj := NewObject()
	obj.SetField("name", "troll")
	obj.SetNumberField("hp", 30.5)
	obj.SetBoolField("hostile", true)
	arr := NewArray()
	arr.AppendString("club")
	obj.SetArrayField("loot", arr)

	data, err := MarshalCBOR(obj)
	if err != nil {
		t.Fatalf("MarshalCBOR: %v", err)
	}
	back, err := UnmarshalCBOR(data)
	if err != nil {
		t.Fatalf("UnmarshalCBOR: %v", err)
	}
	if got, _ := back.GetField("name"); got != "troll" {
		t.Errorf("name = %q, want troll", got)
	}
	if got, _ := back.GetNumberField("hp"); got != 30.5 {
		t.Errorf("hp = %v, want 30.5", got)
	}
	loot := back.GetArrayField("loot")
	if v, _ := loot.At(0); v.AsString() != "club" {
		t.Errorf("loot[0] = %q, want club", v.AsString())
	}
}

func TestCBORArrayRoundTrip(t *testing.T) {
	arr := NewArray()
	arr.AppendNumber(1)
	arr.AppendString("two")
	obj := NewObject()
	obj.SetBoolField("three", true)
	arr.AppendObject(obj)

	data, err := MarshalArrayCBOR(arr)
	if err != nil {
		t.Fatalf("MarshalArrayCBOR: %v", err)
	}
	back, err := UnmarshalArrayCBOR(data)
	if err != nil {
		t.Fatalf("UnmarshalArrayCBOR: %v", err)
	}
	if back.Len() != 3 {
		t.Fatalf("length = %d, want 3", back.Len())
	}
	if k, _ := back.ElementKind(2); k != KindObject {
		t.Errorf("element 2 kind = %s, want Object", k)
	}
}

func TestCBORDeterministic(t *testing.T) {
	obj := NewObject()
	obj.SetField("b", "2")
	obj.SetField("a", "1")

	first, err := MarshalCBOR(obj)
	if err != nil {
		t.Fatalf("MarshalCBOR: %v", err)
	}
	second, err := MarshalCBOR(obj)
	if err != nil {
		t.Fatalf("MarshalCBOR: %v", err)
	}
	if string(first) != string(second) {
		t.Error("canonical encoding should be deterministic")
	}
}

func TestCBORInvalidHandle(t *testing.T) {
	if _, err := MarshalCBOR(Object{}); err == nil {
		t.Error("MarshalCBOR of an invalid handle should fail")
	}
	if _, err := MarshalArrayCBOR(Array{}); err == nil {
		t.Error("MarshalArrayCBOR of an invalid handle should fail")
	}
	if _, err := UnmarshalCBOR([]byte{0xff, 0x00}); err == nil {
		t.Error("UnmarshalCBOR of garbage should fail")
	}
}
