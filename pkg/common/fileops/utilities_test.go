package fileops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blip-vcs/blip/pkg/repository/blippath"
)

func TestExists(t *testing.T) {
	tmpDir := t.TempDir()
	existing := filepath.Join(tmpDir, "exists.txt")
	if err := os.WriteFile(existing, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	t.Run("existing file", func(t *testing.T) {
		ok, err := Exists(blippath.AbsolutePath(existing))
		if err != nil {
			t.Fatalf("Exists failed: %v", err)
		}
		if !ok {
			t.Error("expected file to exist")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		ok, err := Exists(blippath.AbsolutePath(filepath.Join(tmpDir, "missing.txt")))
		if err != nil {
			t.Fatalf("Exists failed: %v", err)
		}
		if ok {
			t.Error("expected file to be missing")
		}
	})
}

func TestEnsureDir(t *testing.T) {
	tmpDir := t.TempDir()
	nested := filepath.Join(tmpDir, "a", "b", "c")

	if err := EnsureDir(blippath.AbsolutePath(nested)); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}

	info, err := os.Stat(nested)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}

	// Already-existing directory is not an error
	if err := EnsureDir(blippath.AbsolutePath(nested)); err != nil {
		t.Errorf("EnsureDir on existing dir failed: %v", err)
	}
}

func TestReadStringStrict(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "content.txt")
	if err := os.WriteFile(file, []byte("  hello world \n"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	got, err := ReadStringStrict(blippath.AbsolutePath(file))
	if err != nil {
		t.Fatalf("ReadStringStrict failed: %v", err)
	}
	if got != "hello world" {
		t.Errorf("got %q, want %q", got, "hello world")
	}

	if _, err := ReadStringStrict(blippath.AbsolutePath(filepath.Join(tmpDir, "nope"))); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteFileCreatesParents(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "deep", "nested", "file.txt")

	if err := WriteFile(blippath.AbsolutePath(target), []byte("data")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	content, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(content) != "data" {
		t.Errorf("got %q, want %q", content, "data")
	}
}

func TestIsDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	if ok, _ := IsDirectory(blippath.AbsolutePath(tmpDir)); !ok {
		t.Error("expected tmpDir to be a directory")
	}
	if ok, _ := IsDirectory(blippath.AbsolutePath(file)); ok {
		t.Error("expected file not to be a directory")
	}
	if ok, _ := IsDirectory(blippath.AbsolutePath(filepath.Join(tmpDir, "missing"))); ok {
		t.Error("expected missing path not to be a directory")
	}
}
