package pocketbook

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStore_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	if _, ok, err := s.Get("username"); err != nil || ok {
		t.Fatalf("Get on empty store = ok %v, err %v; want absent, nil", ok, err)
	}

	if err := s.Set("username", "alice"); err != nil {
		t.Fatal(err)
	}
	v, ok, err := s.Get("username")
	if err != nil || !ok || v != "alice" {
		t.Errorf("Get = %q, %v, %v; want alice, true, nil", v, ok, err)
	}

	// A second store over the same file sees the persisted value.
	v, ok, err = NewStore(s.Path()).Get("username")
	if err != nil || !ok || v != "alice" {
		t.Errorf("Get on reopened store = %q, %v, %v; want alice, true, nil", v, ok, err)
	}
}

func TestStore_Delete(t *testing.T) {
	s := newTestStore(t)
	if err := s.Set("loggedIn", "true"); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete("loggedIn"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := s.Get("loggedIn"); ok {
		t.Error("key still present after Delete")
	}
	// Deleting a missing key is a no-op.
	if err := s.Delete("loggedIn"); err != nil {
		t.Errorf("Delete on missing key = %v, want nil", err)
	}
}

func TestStore_CorruptFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pocketbook.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	s := NewStore(path)

	if _, ok, err := s.Get("username"); err != nil || ok {
		t.Errorf("Get on corrupt store = ok %v, err %v; want absent, nil", ok, err)
	}
	// Writing recovers the store.
	if err := s.Set("username", "alice"); err != nil {
		t.Fatal(err)
	}
	if v, _, _ := s.Get("username"); v != "alice" {
		t.Errorf("Get after recovery = %q, want alice", v)
	}
}

func TestStore_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "pocketbook.json")
	s := NewStore(path)
	if err := s.Set("username", "alice"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("store file not created: %v", err)
	}
}

func TestStore_WriteErrorIsSurfaced(t *testing.T) {
	// The store path points into a location that cannot be created.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	s := NewStore(filepath.Join(blocker, "pocketbook.json"))
	if err := s.Set("username", "alice"); err == nil {
		t.Error("Set under an unusable path = nil, want error")
	}
}
