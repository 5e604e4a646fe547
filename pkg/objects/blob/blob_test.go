package blob

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestNewBlob(t *testing.T) {
	t.Run("content addressing", func(t *testing.T) {
		b1 := NewBlob([]byte("same content"))
		b2 := NewBlob([]byte("same content"))
		b3 := NewBlob([]byte("different content"))

		if b1.Hash() != b2.Hash() {
			t.Errorf("identical content should hash identically: %s vs %s", b1.Hash(), b2.Hash())
		}
		if b1.Hash() == b3.Hash() {
			t.Error("different content should hash differently")
		}
	})

	t.Run("content is copied", func(t *testing.T) {
		data := []byte("mutable")
		b := NewBlob(data)
		data[0] = 'X'

		if !bytes.Equal(b.Content(), []byte("mutable")) {
			t.Error("blob content should not alias the caller's slice")
		}
	})

	t.Run("empty blob", func(t *testing.T) {
		b := NewBlob(nil)
		if b.Size() != 0 {
			t.Errorf("expected size 0, got %d", b.Size())
		}
		if err := b.Hash().Validate(); err != nil {
			t.Errorf("empty blob hash invalid: %v", err)
		}
	})
}

func TestFromFile(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("reads file contents", func(t *testing.T) {
		path := filepath.Join(tmpDir, "a.txt")
		if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		b, err := FromFile(path)
		if err != nil {
			t.Fatalf("FromFile failed: %v", err)
		}

		if !bytes.Equal(b.Content(), []byte("hello")) {
			t.Errorf("got content %q, want %q", b.Content(), "hello")
		}
		if b.Hash() != NewBlob([]byte("hello")).Hash() {
			t.Error("file blob hash should equal in-memory blob hash for same bytes")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := FromFile(filepath.Join(tmpDir, "missing.txt")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}
