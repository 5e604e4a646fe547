package commit

import (
	"bytes"
	"fmt"
	"sort"

	xerr "github.com/blip-vcs/blip/pkg/common/err"
	"github.com/blip-vcs/blip/pkg/objects"
)

const pkgName = "commit"

// Commit is an immutable snapshot of the staging index at a point in time,
// chained to at most one parent. Commits form a singly-linked list of
// history, traversable backward from any commit hash.
//
// Canonical serialization (line-oriented text; parent first when present,
// then one line per manifest entry ordered by hash):
//
//	parent <40-hex>
//	blob <40-hex>, <path>
//
// The commit's own hash is the SHA-1 digest of exactly that byte sequence.
//
// A commit has two states. It starts unfinalized: the manifest and parent may
// still change and the hash does not exist yet. Finalize serializes and
// hashes it, after which nothing may change. Reading Hash or Data before
// Finalize is a caller bug, reported as an error rather than a zero value.
type Commit struct {
	parent    objects.ObjectHash // empty when this is the first commit
	manifest  map[objects.ObjectHash]string
	hash      objects.ObjectHash
	data      []byte
	finalized bool
}

// New creates an unfinalized commit whose manifest starts as a copy of the
// parent's manifest (or empty when parent is nil) and whose parent hash is
// the parent's finalized hash.
func New(parent *Commit) *Commit {
	c := &Commit{
		manifest: make(map[objects.ObjectHash]string),
	}

	if parent != nil {
		if parent.finalized {
			c.parent = parent.hash
		}
		for hash, path := range parent.manifest {
			c.manifest[hash] = path
		}
	}

	return c
}

// Add records a manifest entry for a content hash.
//
// The manifest is keyed by content hash, not by path: staging two different
// paths with identical content keeps only the last path association. This
// mirrors the staging design and is deliberately not re-keyed by path.
func (c *Commit) Add(hash objects.ObjectHash, path string) error {
	if c.finalized {
		return fmt.Errorf("cannot add to a finalized commit")
	}
	c.manifest[hash] = path
	return nil
}

// AddEntries merges staged (path, hash) entries into the manifest. Staged
// entries override any pre-existing manifest entry for the same hash.
func (c *Commit) AddEntries(entries map[string]objects.ObjectHash) error {
	for path, hash := range entries {
		if err := c.Add(hash, path); err != nil {
			return err
		}
	}
	return nil
}

// Finalize serializes the commit to its canonical text, computes the hash
// over that exact byte sequence, and fixes both. The transition is one-way;
// calling Finalize on an already finalized commit is a no-op.
//
// A commit with an empty manifest is rejected: a vacuous snapshot must never
// be written.
func (c *Commit) Finalize() error {
	if c.finalized {
		return nil
	}

	if len(c.manifest) == 0 {
		return xerr.New(pkgName, xerr.CodeEmptyCommit, "finalize",
			"no files staged for commit", nil)
	}

	c.data = c.serialize()
	c.hash = objects.NewObjectHash(c.data)
	c.finalized = true
	return nil
}

// Finalized reports whether the commit's identity has been fixed.
func (c *Commit) Finalized() bool {
	return c.finalized
}

// Hash returns the commit's identity.
// It is an error to call this before Finalize.
func (c *Commit) Hash() (objects.ObjectHash, error) {
	if !c.finalized {
		return "", fmt.Errorf("commit hash read before finalize")
	}
	return c.hash, nil
}

// Data returns the canonical serialized bytes.
// It is an error to call this before Finalize.
func (c *Commit) Data() ([]byte, error) {
	if !c.finalized {
		return nil, fmt.Errorf("commit data read before finalize")
	}
	return c.data, nil
}

// Parent returns the parent commit hash and whether one exists.
func (c *Commit) Parent() (objects.ObjectHash, bool) {
	return c.parent, c.parent != ""
}

// Manifest returns a copy of the hash → path file manifest.
func (c *Commit) Manifest() map[objects.ObjectHash]string {
	out := make(map[objects.ObjectHash]string, len(c.manifest))
	for hash, path := range c.manifest {
		out[hash] = path
	}
	return out
}

// Len returns the number of manifest entries.
func (c *Commit) Len() int {
	return len(c.manifest)
}

// PathFor returns the path recorded for a content hash.
func (c *Commit) PathFor(hash objects.ObjectHash) (string, bool) {
	path, ok := c.manifest[hash]
	return path, ok
}

// serialize builds the canonical byte sequence. Manifest entries are
// ordered by hash so the serialization, and therefore the commit's
// identity, is deterministic.
func (c *Commit) serialize() []byte {
	var buf bytes.Buffer

	if c.parent != "" {
		fmt.Fprintf(&buf, "parent %s\n", c.parent)
	}

	hashes := make([]string, 0, len(c.manifest))
	for hash := range c.manifest {
		hashes = append(hashes, hash.String())
	}
	sort.Strings(hashes)

	for _, hash := range hashes {
		fmt.Fprintf(&buf, "blob %s, %s\n", hash, c.manifest[objects.ObjectHash(hash)])
	}

	return buf.Bytes()
}

// String returns a human-readable representation
func (c *Commit) String() string {
	if !c.finalized {
		return fmt.Sprintf("Commit{unfinalized, files: %d}", len(c.manifest))
	}
	return fmt.Sprintf("Commit{hash: %s, files: %d}", c.hash.Short(), len(c.manifest))
}
