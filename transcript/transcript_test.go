package transcript

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "transcript.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndSession(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	entries := []Entry{
		{Session: "s1", Direction: DirectionSend, Line: `["text", ["look"], {}]`},
		{Session: "s1", Direction: DirectionReceive, Line: `["text", ["You see a castle."], {}]`},
		{Session: "s2", Direction: DirectionSend, Line: `["text", ["north"], {}]`},
	}
	for _, e := range entries {
		if err := s.Append(ctx, e); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := s.Session(ctx, "s1")
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Session returned %d entries, want 2", len(got))
	}
	if got[0].Direction != DirectionSend || got[1].Direction != DirectionReceive {
		t.Errorf("entries out of order: %+v", got)
	}
	if got[1].Line != `["text", ["You see a castle."], {}]` {
		t.Errorf("line = %q", got[1].Line)
	}
	for _, e := range got {
		if e.At.IsZero() {
			t.Error("stored entry lost its timestamp")
		}
	}

	other, err := s.Session(ctx, "s2")
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("s2 has %d entries, want 1", len(other))
	}
}

func TestAppendPreservesTimestamp(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	if err := s.Append(ctx, Entry{Session: "s1", Direction: DirectionSend, Line: "x", At: at}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	got, err := s.Session(ctx, "s1")
	if err != nil || len(got) != 1 {
		t.Fatalf("Session = (%v, %v)", got, err)
	}
	if !got[0].At.Equal(at) {
		t.Errorf("At = %v, want %v", got[0].At, at)
	}
}

func TestAppendRequiresSession(t *testing.T) {
	s := openTestStore(t)
	if err := s.Append(context.Background(), Entry{Line: "x"}); err == nil {
		t.Error("Append without a session should fail")
	}
}

func TestSessionEmpty(t *testing.T) {
	s := openTestStore(t)
	got, err := s.Session(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("unknown session returned %d entries", len(got))
	}
}

func TestNilStoreIsNoOp(t *testing.T) {
	var s *Store
	ctx := context.Background()

	if err := s.Append(ctx, Entry{Session: "s1", Line: "x"}); err != nil {
		t.Errorf("nil Append: %v", err)
	}
	if got, err := s.Session(ctx, "s1"); err != nil || got != nil {
		t.Errorf("nil Session = (%v, %v)", got, err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("nil Close: %v", err)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Error("blank path should fail")
	}
}
