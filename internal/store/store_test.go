package store

import (
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) *SQLite {
	t.Helper()
	s, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetAbsentKey(t *testing.T) {
	s := setupTestStore(t)

	value, ok, err := s.Get("missing")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("Expected ok=false for absent key")
	}
	if value != "" {
		t.Errorf("Expected empty value for absent key, got %q", value)
	}
}

func TestSetAndGet(t *testing.T) {
	s := setupTestStore(t)

	if err := s.Set("appLockEnabled", "true"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, ok, err := s.Get("appLockEnabled")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("Expected stored value to be present")
	}
	if value != "true" {
		t.Errorf("Expected 'true', got %q", value)
	}
}

func TestSetReplacesValue(t *testing.T) {
	s := setupTestStore(t)

	if err := s.Set("clipboardTimeout", "60"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Set("clipboardTimeout", "120"); err != nil {
		t.Fatalf("Second Set failed: %v", err)
	}

	value, ok, err := s.Get("clipboardTimeout")
	if err != nil || !ok {
		t.Fatalf("Get failed: ok=%v err=%v", ok, err)
	}
	if value != "120" {
		t.Errorf("Expected replaced value '120', got %q", value)
	}
}

func TestDelete(t *testing.T) {
	s := setupTestStore(t)

	if err := s.Set("startupDatabase", `{"name":"passwords.kdbx"}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Delete("startupDatabase"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	_, ok, err := s.Get("startupDatabase")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("Expected key to be gone after Delete")
	}
}

func TestDeleteAbsentKeyIsNoOp(t *testing.T) {
	s := setupTestStore(t)

	if err := s.Delete("neverExisted"); err != nil {
		t.Errorf("Delete of absent key should be a no-op, got %v", err)
	}
}

func TestValuesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	if err := s.Set("settingsVersion", "3"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer reopened.Close()

	value, ok, err := reopened.Get("settingsVersion")
	if err != nil || !ok {
		t.Fatalf("Get after reopen failed: ok=%v err=%v", ok, err)
	}
	if value != "3" {
		t.Errorf("Expected persisted value '3', got %q", value)
	}
}
