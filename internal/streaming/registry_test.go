package streaming

import "testing"

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := NewRegistry()

	r.Register("conn-1", "sess-1")
	r.Register("conn-2", "sess-2")

	id, ok := r.SessionFor("conn-1")
	if !ok || id != "sess-1" {
		t.Errorf("expected sess-1, got %q (ok=%v)", id, ok)
	}
	if r.Count() != 2 {
		t.Errorf("expected 2 entries, got %d", r.Count())
	}
}

func TestRegistry_Unregister(t *testing.T) {
	r := NewRegistry()
	r.Register("conn-1", "sess-1")

	r.Unregister("conn-1")
	if _, ok := r.SessionFor("conn-1"); ok {
		t.Error("expected connection to be gone")
	}
	if r.Count() != 0 {
		t.Errorf("expected 0 entries, got %d", r.Count())
	}

	// unknown connection is a no-op
	r.Unregister("conn-unknown")
}

func TestRegistry_RegisterOverwrites(t *testing.T) {
	r := NewRegistry()
	r.Register("conn-1", "sess-1")
	r.Register("conn-1", "sess-2")

	id, _ := r.SessionFor("conn-1")
	if id != "sess-2" {
		t.Errorf("expected latest session, got %q", id)
	}
	if r.Count() != 1 {
		t.Errorf("expected 1 entry, got %d", r.Count())
	}
}
