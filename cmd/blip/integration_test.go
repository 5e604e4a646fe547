package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blip-vcs/blip/pkg/objects"
	"github.com/blip-vcs/blip/pkg/repository/blippath"
)

// TestIntegrationBasicWorkflow exercises the complete workflow:
// init -> add -> commit -> add -> commit -> log, checking the on-disk
// state at each step.
func TestIntegrationBasicWorkflow(t *testing.T) {
	h := NewTestHelper(t)
	repo := h.InitRepo()
	h.Chdir()

	blipDir := filepath.Join(h.RepoPath, blippath.BlipDir)
	_, err := os.Stat(blipDir)
	require.NoError(t, err, ".blip directory was not created")

	// First file
	h.WriteFile("README.md", "Hello, blip!")

	addCmd := newAddCmd()
	addCmd.SetArgs([]string{"README.md"})
	require.NoError(t, addCmd.Execute(), "add command failed")

	h1 := objects.NewObjectHash([]byte("Hello, blip!"))
	blobData, err := repo.ObjectStore().Get(h1)
	require.NoError(t, err, "blob not stored after add")
	assert.Equal(t, "Hello, blip!", string(blobData))

	commitCmd := newCommitCmd()
	commitCmd.SetArgs([]string{})
	require.NoError(t, commitCmd.Execute(), "commit command failed")

	refPath := repo.BlipPath().BranchRefPath(blippath.DefaultBranch)
	firstHash, ok, err := repo.Refs().HashFromRef(refPath)
	require.NoError(t, err)
	require.True(t, ok, "branch ref missing after first commit")

	firstCommit, err := repo.ObjectStore().ReadCommit(firstHash)
	require.NoError(t, err)
	_, hasParent := firstCommit.Parent()
	assert.False(t, hasParent, "first commit must not have a parent")
	assert.Equal(t, "README.md", firstCommit.Manifest()[h1])

	// Second file
	h.WriteFile("main.go", "package main")

	addCmd = newAddCmd()
	addCmd.SetArgs([]string{"main.go"})
	require.NoError(t, addCmd.Execute(), "second add failed")

	commitCmd = newCommitCmd()
	commitCmd.SetArgs([]string{})
	require.NoError(t, commitCmd.Execute(), "second commit failed")

	secondHash, ok, err := repo.Refs().HashFromRef(refPath)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEqual(t, firstHash, secondHash, "ref did not advance")

	secondCommit, err := repo.ObjectStore().ReadCommit(secondHash)
	require.NoError(t, err)
	parentHash, hasParent := secondCommit.Parent()
	require.True(t, hasParent, "second commit must have a parent")
	assert.Equal(t, firstHash, parentHash)

	h2 := objects.NewObjectHash([]byte("package main"))
	manifest := secondCommit.Manifest()
	assert.Equal(t, "README.md", manifest[h1], "parent manifest entry lost")
	assert.Equal(t, "main.go", manifest[h2])

	// Index is empty again
	idx, err := repo.LoadIndex()
	require.NoError(t, err)
	assert.True(t, idx.IsEmpty(), "index not cleared after commit")

	// Log and fsck both succeed
	logCmd := newLogCmd()
	logCmd.SetArgs([]string{})
	assert.NoError(t, logCmd.Execute())

	fsckCmd := newFsckCmd()
	fsckCmd.SetArgs([]string{})
	assert.NoError(t, fsckCmd.Execute())
}

// TestIntegrationDuplicateContent checks that identical bytes staged under
// two paths collapse to a single stored blob.
func TestIntegrationDuplicateContent(t *testing.T) {
	h := NewTestHelper(t)
	repo := h.InitRepo()
	h.Chdir()

	h.WriteFile("one.txt", "same bytes")
	h.WriteFile("two.txt", "same bytes")

	addCmd := newAddCmd()
	addCmd.SetArgs([]string{"one.txt", "two.txt"})
	require.NoError(t, addCmd.Execute())

	entries, err := os.ReadDir(repo.BlipPath().ObjectsPath().String())
	require.NoError(t, err)
	assert.Len(t, entries, 1, "duplicate content stored more than once")

	// Both index entries share the hash
	idx, err := repo.LoadIndex()
	require.NoError(t, err)
	hash := objects.NewObjectHash([]byte("same bytes"))
	got1, _ := idx.Get("one.txt")
	got2, _ := idx.Get("two.txt")
	assert.Equal(t, hash, got1)
	assert.Equal(t, hash, got2)
}
