package identity

import (
	"path/filepath"
	"testing"
)

func TestManagerLoadOrCreate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "identity.txt")

	m := NewManager(Config{DefaultType: TypeC25519, KeyFile: path})

	first, err := m.LoadOrCreate()
	if err != nil {
		t.Fatalf("LoadOrCreate (create): %v", err)
	}

	second, err := m.LoadOrCreate()
	if err != nil {
		t.Fatalf("LoadOrCreate (load): %v", err)
	}

	if first.Address() != second.Address() {
		t.Errorf("LoadOrCreate returned different identities across calls: %v != %v", first.Address(), second.Address())
	}
}

func TestManagerSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "identity.txt")

	m := NewManager(Config{DefaultType: TypeP384, KeyFile: path})

	id, err := m.Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := m.Save(id); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := m.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Address() != id.Address() || !loaded.HasPrivate() {
		t.Error("loaded identity does not match saved identity")
	}
}
