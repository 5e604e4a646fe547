package store

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	xerr "github.com/blip-vcs/blip/pkg/common/err"
	"github.com/blip-vcs/blip/pkg/objects"
	"github.com/blip-vcs/blip/pkg/objects/blob"
	"github.com/blip-vcs/blip/pkg/objects/commit"
	"github.com/blip-vcs/blip/pkg/repository/blippath"
)

func setupStore(t *testing.T) *FileObjectStore {
	t.Helper()

	repoPath, err := blippath.NewRepositoryPath(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create repository path: %v", err)
	}

	s := NewFileObjectStore()
	if err := s.Initialize(repoPath); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	return s
}

func TestFileObjectStore_Initialize(t *testing.T) {
	s := NewFileObjectStore()
	if s.IsInitialized() {
		t.Error("store should not be initialized before Initialize()")
	}

	repoPath, err := blippath.NewRepositoryPath(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create repository path: %v", err)
	}
	if err := s.Initialize(repoPath); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	if !s.IsInitialized() {
		t.Error("store should be initialized after Initialize()")
	}
	if _, err := os.Stat(s.ObjectsPath().String()); os.IsNotExist(err) {
		t.Errorf("objects directory was not created at %s", s.ObjectsPath())
	}
}

func TestFileObjectStore_PutGet(t *testing.T) {
	s := setupStore(t)

	data := []byte("Hello, World!")
	hash := objects.NewObjectHash(data)

	if err := s.Put(hash, data); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := s.Get(hash)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("Get returned %q, want %q", got, data)
	}

	// Object file is named by the full hash, flat under objects/
	objFile := filepath.Join(s.ObjectsPath().String(), hash.String())
	if _, err := os.Stat(objFile); err != nil {
		t.Errorf("expected object file at %s: %v", objFile, err)
	}
}

func TestFileObjectStore_PutIdempotent(t *testing.T) {
	s := setupStore(t)

	data := []byte("same bytes every time")
	hash := objects.NewObjectHash(data)

	for range 3 {
		if err := s.Put(hash, data); err != nil {
			t.Fatalf("repeated Put failed: %v", err)
		}
	}

	got, err := s.Get(hash)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("Get returned %q, want %q", got, data)
	}
}

func TestFileObjectStore_GetMissing(t *testing.T) {
	s := setupStore(t)

	missing := objects.NewObjectHash([]byte("never stored"))
	_, err := s.Get(missing)
	if err == nil {
		t.Fatal("expected error for missing object")
	}
	if !xerr.IsCode(err, xerr.CodeCorruptObjectStore) {
		t.Errorf("expected code %s, got %s", xerr.CodeCorruptObjectStore, xerr.GetCode(err))
	}
}

func TestFileObjectStore_Has(t *testing.T) {
	s := setupStore(t)

	data := []byte("findable")
	hash := objects.NewObjectHash(data)

	ok, err := s.Has(hash)
	if err != nil {
		t.Fatalf("Has failed: %v", err)
	}
	if ok {
		t.Error("Has reported an object that was never stored")
	}

	if err := s.Put(hash, data); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	ok, err = s.Has(hash)
	if err != nil {
		t.Fatalf("Has failed: %v", err)
	}
	if !ok {
		t.Error("Has missed a stored object")
	}
}

func TestFileObjectStore_InvalidHash(t *testing.T) {
	s := setupStore(t)

	if err := s.Put(objects.ObjectHash("nothex"), []byte("x")); err == nil {
		t.Error("expected error for invalid hash on Put")
	}
	if _, err := s.Get(objects.ObjectHash("nothex")); err == nil {
		t.Error("expected error for invalid hash on Get")
	}
}

func TestFileObjectStore_Uninitialized(t *testing.T) {
	s := NewFileObjectStore()
	hash := objects.NewObjectHash([]byte("x"))
	if err := s.Put(hash, []byte("x")); err == nil {
		t.Error("expected error for uninitialized store")
	}
}

func TestFileObjectStore_Blob(t *testing.T) {
	s := setupStore(t)

	b := blob.NewBlob([]byte("blob content"))
	if err := s.PutBlob(b); err != nil {
		t.Fatalf("PutBlob failed: %v", err)
	}

	got, err := s.Get(b.Hash())
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !bytes.Equal(got, b.Content()) {
		t.Errorf("stored blob bytes differ: got %q, want %q", got, b.Content())
	}
}

func TestFileObjectStore_Commit(t *testing.T) {
	s := setupStore(t)

	c := commit.New(nil)
	if err := c.Add(objects.NewObjectHash([]byte("hello")), "a.txt"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := c.Finalize(); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}

	if err := s.PutCommit(c); err != nil {
		t.Fatalf("PutCommit failed: %v", err)
	}

	hash, _ := c.Hash()
	read, err := s.ReadCommit(hash)
	if err != nil {
		t.Fatalf("ReadCommit failed: %v", err)
	}

	want := c.Manifest()
	got := read.Manifest()
	if len(got) != len(want) {
		t.Fatalf("manifest size = %d, want %d", len(got), len(want))
	}
	for h, path := range want {
		if got[h] != path {
			t.Errorf("manifest[%s] = %q, want %q", h, got[h], path)
		}
	}
}

func TestFileObjectStore_PutCommitUnfinalized(t *testing.T) {
	s := setupStore(t)

	c := commit.New(nil)
	c.Add(objects.NewObjectHash([]byte("x")), "x.txt")

	if err := s.PutCommit(c); err == nil {
		t.Error("expected error storing unfinalized commit")
	}
}
