package keymap

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadOverrides_MissingFile verifies a missing file is not an error.
func TestLoadOverrides_MissingFile(t *testing.T) {
	overrides, err := LoadOverrides(filepath.Join(t.TempDir(), "keymap.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(overrides) != 0 {
		t.Fatalf("expected no overrides, got %d", len(overrides))
	}
}

// TestLoadOverrides_ParsesEntries verifies YAML entries are decoded.
func TestLoadOverrides_ParsesEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keymap.yaml")
	data := "IntlBackslash:\n  vk: 0xE2\nNumpadEqual:\n  vk: 0x92\n  extended: true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	overrides, err := LoadOverrides(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(overrides) != 2 {
		t.Fatalf("expected 2 overrides, got %d", len(overrides))
	}
	if m := overrides["NumpadEqual"]; m.VK != 0x92 || !m.Extended {
		t.Fatalf("unexpected NumpadEqual mapping %+v", m)
	}
}

// TestLoadOverrides_RejectsZeroVK verifies entries without a vk fail.
func TestLoadOverrides_RejectsZeroVK(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keymap.yaml")
	if err := os.WriteFile(path, []byte("Broken:\n  extended: true\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadOverrides(path); err == nil {
		t.Fatalf("expected an error for a zero vk")
	}
}
