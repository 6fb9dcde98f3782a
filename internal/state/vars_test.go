package state

import "testing"

func TestVarStoreGetSet(t *testing.T) {
	s := NewVarStore()
	if _, ok := s.Get("mouse-menu-on-word"); ok {
		t.Fatalf("expected empty store")
	}
	s.Set("mouse-menu-on-word", "Paste paste-yank-buffer")
	s.Set("a", "1")
	if v, ok := s.Get("mouse-menu-on-word"); !ok || v != "Paste paste-yank-buffer" {
		t.Fatalf("unexpected value %q", v)
	}
	names := s.Names()
	if len(names) != 2 || names[0] != "a" {
		t.Fatalf("expected sorted names, got %v", names)
	}
	snap := s.Snapshot()
	snap["a"] = "changed"
	if v, _ := s.Get("a"); v != "1" {
		t.Fatalf("snapshot mutation leaked into store")
	}
	s.Unset("a")
	if _, ok := s.Get("a"); ok {
		t.Fatalf("expected variable removed")
	}
}
