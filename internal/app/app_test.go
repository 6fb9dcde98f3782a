package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadBuffers(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(existing, []byte("one\ntwo\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	buffers, err := LoadBuffers([]string{existing, filepath.Join(dir, "new.txt")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(buffers) != 2 {
		t.Fatalf("expected 2 buffers, got %d", len(buffers))
	}
	if buffers[0].LineCount() != 2 || buffers[1].LineCount() != 1 {
		t.Fatalf("unexpected line counts %d/%d", buffers[0].LineCount(), buffers[1].LineCount())
	}
}

func TestLoadBuffersRejectsDirectory(t *testing.T) {
	if _, err := LoadBuffers([]string{t.TempDir()}); err == nil {
		t.Fatalf("expected error for directory")
	}
}
