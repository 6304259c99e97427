package jsonv

import (
	"testing"
)

func TestSerializeParseRoundTrip(t *testing.T) {
	obj := NewObject()
	obj.SetField("name", "troll")
	obj.SetNumberField("hp", 30.5)
	obj.SetBoolField("hostile", true)
	obj.SetNullField("target")

	loot := NewArray()
	loot.AppendString("club")
	loot.AppendNumber(12)
	obj.SetArrayField("loot", loot)

	stats := NewObject()
	stats.SetNumberField("str", 18)
	obj.SetObjectField("stats", stats)

	text, ok := Serialize(obj)
	if !ok {
		t.Fatal("Serialize failed")
	}

	back, ok := Parse(text)
	if !ok {
		t.Fatalf("Parse(%q) failed", text)
	}

	if got, _ := back.GetField("name"); got != "troll" {
		t.Errorf("name = %q, want troll", got)
	}
	if got, _ := back.GetNumberField("hp"); got != 30.5 {
		t.Errorf("hp = %v, want 30.5", got)
	}
	if got, _ := back.GetBoolField("hostile"); !got {
		t.Error("hostile = false, want true")
	}
	kinds, n := back.KeysAndKinds()
	if n != 6 {
		t.Errorf("field count = %d, want 6", n)
	}
	if kinds["target"] != KindNull {
		t.Errorf("target kind = %s, want Null", kinds["target"])
	}

	gotLoot := back.GetArrayField("loot")
	if gotLoot.Len() != 2 {
		t.Fatalf("loot length = %d, want 2", gotLoot.Len())
	}
	// Array order survives the round trip.
	if v, _ := gotLoot.At(0); v.AsString() != "club" {
		t.Errorf("loot[0] = %q, want club", v.AsString())
	}
	if v, _ := gotLoot.At(1); v.AsString() != "12" {
		t.Errorf("loot[1] = %q, want 12", v.AsString())
	}

	gotStats := back.GetObjectField("stats")
	if got, _ := gotStats.GetNumberField("str"); got != 18 {
		t.Errorf("stats.str = %v, want 18", got)
	}
}

func TestParseMalformed(t *testing.T) {
	obj, ok := Parse("{not json")
	if ok {
		t.Error("Parse of malformed text should fail")
	}
	if obj.Valid() {
		t.Error("failed Parse should return an invalid handle")
	}
}

func TestParseWrongTopLevel(t *testing.T) {
	if _, ok := Parse(`[1,2]`); ok {
		t.Error("Parse of an array document should fail")
	}
	if _, _, ok := ParseArray(`{"a":1}`); ok {
		t.Error("ParseArray of an object document should fail")
	}
}

func TestParseArrayCount(t *testing.T) {
	arr, count, ok := ParseArray(`[{"a":1},{"b":2},{"c":3}]`)
	if !ok {
		t.Fatal("ParseArray failed")
	}
	if count != 3 || arr.Len() != 3 {
		t.Errorf("count = %d (len %d), want 3", count, arr.Len())
	}
}

func TestParseValueKinds(t *testing.T) {
	tests := []struct {
		text string
		want Kind
	}{
		{`null`, KindNull},
		{`"s"`, KindString},
		{`3.14`, KindNumber},
		{`true`, KindBoolean},
		{`[]`, KindArray},
		{`{}`, KindObject},
	}
	for _, tt := range tests {
		v, ok := ParseValue(tt.text)
		if !ok {
			t.Fatalf("ParseValue(%q) failed", tt.text)
		}
		if v.Kind() != tt.want {
			t.Errorf("kind of %s = %s, want %s", tt.text, v.Kind(), tt.want)
		}
	}
}

func TestSerializeInvalidHandle(t *testing.T) {
	if _, ok := Serialize(Object{}); ok {
		t.Error("Serialize of an invalid object should fail")
	}
	if _, ok := SerializeArray(Array{}); ok {
		t.Error("SerializeArray of an invalid array should fail")
	}
}

func TestSerializeEmptyTree(t *testing.T) {
	text, ok := Serialize(NewObject())
	if !ok || text != "{}" {
		t.Errorf("Serialize(empty) = (%q, %v), want ({}, true)", text, ok)
	}
	text, ok = SerializeArray(NewArray())
	if !ok || text != "[]" {
		t.Errorf("SerializeArray(empty) = (%q, %v), want ([], true)", text, ok)
	}
}

func TestParsedTreeMirrorsInput(t *testing.T) {
	text := `{"room":{"exits":["north","south"],"dark":false},"level":3}`
	obj, ok := Parse(text)
	if !ok {
		t.Fatal("Parse failed")
	}
	room := obj.GetObjectField("room")
	exits := room.GetArrayField("exits")
	if exits.Len() != 2 {
		t.Fatalf("exits length = %d, want 2", exits.Len())
	}
	if v, _ := exits.At(0); v.AsString() != "north" {
		t.Errorf("exits[0] = %q, want north", v.AsString())
	}
	if v, _ := exits.At(1); v.AsString() != "south" {
		t.Errorf("exits[1] = %q, want south", v.AsString())
	}
	if dark, found := room.GetBoolField("dark"); !found || dark {
		t.Errorf("dark = (%v, %v), want (false, true)", dark, found)
	}
}

func TestPrintTreeDoesNotFault(t *testing.T) {
	obj, _ := Parse(`{"a":[1,{"b":null}],"c":"s"}`)
	PrintObjectTree(obj)
	PrintArrayTree(obj.GetArrayField("a"))
	PrintTree(obj.Value())

	// Invalid handles only log.
	PrintObjectTree(Object{})
	PrintArrayTree(Array{})
	PrintTree(Value{})
}
