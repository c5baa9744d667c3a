package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func exerciseSlot(t *testing.T, slot Slot) {
	t.Helper()
	if _, found, err := slot.Load(); err != nil || found {
		t.Fatalf("expected empty slot, got found=%v err=%v", found, err)
	}
	if err := slot.Save([]byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := slot.Save([]byte(`[{"id":"2"}]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	data, found, err := slot.Load()
	if err != nil || !found {
		t.Fatalf("expected stored value, got found=%v err=%v", found, err)
	}
	if string(data) != `[{"id":"2"}]` {
		t.Fatalf("expected last write to win, got %s", data)
	}
}

func TestMemorySlot(t *testing.T) {
	slot := NewMemory("students")
	exerciseSlot(t, slot)
	if slot.Saves() != 2 {
		t.Fatalf("expected 2 saves, got %d", slot.Saves())
	}
}

func TestFileSlot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	slot, err := OpenFile(dir, "students")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	exerciseSlot(t, slot)
	if slot.Path() != filepath.Join(dir, "students.json") {
		t.Fatalf("unexpected path %s", slot.Path())
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected no temp files left behind, got %d entries", len(entries))
	}
}

func TestFileSlotSanitisesKey(t *testing.T) {
	dir := t.TempDir()
	slot, err := OpenFile(dir, "../escape")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if filepath.Dir(slot.Path()) != dir {
		t.Fatalf("expected slot inside %s, got %s", dir, slot.Path())
	}
}

func TestSQLiteSlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.db")
	slot, err := OpenSQLite(path, "students")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	exerciseSlot(t, slot)
	if err := slot.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := OpenSQLite(path, "students")
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	data, found, err := reopened.Load()
	if err != nil || !found || string(data) != `[{"id":"2"}]` {
		t.Fatalf("expected value to survive reopen, got %s found=%v err=%v", data, found, err)
	}

	other, err := OpenSQLite(path, "other")
	if err == nil {
		defer other.Close()
		if _, found, _ := other.Load(); found {
			t.Fatal("expected keys to be independent")
		}
	}
}

func TestOpenRejectsUnknownBackend(t *testing.T) {
	if _, err := Open(Backend("s3"), "", "students"); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("expected ErrUnknownBackend, got %v", err)
	}
	if _, err := Open(BackendMemory, "", " "); err == nil {
		t.Fatal("expected error for empty key")
	}
}

func TestParseBackend(t *testing.T) {
	b, err := ParseBackend(" SQLite ")
	if err != nil || b != BackendSQLite {
		t.Fatalf("expected sqlite, got %q %v", b, err)
	}
	if _, err := ParseBackend("redis"); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("expected ErrUnknownBackend, got %v", err)
	}
}
