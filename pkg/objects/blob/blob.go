package blob

import (
	"fmt"
	"os"

	"github.com/blip-vcs/blip/pkg/objects"
)

// Blob is an immutable byte sequence whose identity is the SHA-1 digest of
// its raw bytes. Blobs are created when a file's contents are read from disk
// and are never mutated afterwards; two blobs with identical bytes have
// identical identity and are stored once.
type Blob struct {
	content []byte
	hash    objects.ObjectHash
}

// NewBlob creates a Blob from raw data. The hash is computed eagerly since
// the content can never change.
func NewBlob(data []byte) *Blob {
	content := make([]byte, len(data))
	copy(content, data)
	return &Blob{
		content: content,
		hash:    objects.NewObjectHash(content),
	}
}

// FromFile reads a file and creates a Blob from its contents.
func FromFile(path string) (*Blob, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read blob source %s: %w", path, err)
	}
	return NewBlob(data), nil
}

// Hash returns the SHA-1 identity of the blob
func (b *Blob) Hash() objects.ObjectHash {
	return b.hash
}

// Content returns the raw bytes of the blob
func (b *Blob) Content() []byte {
	return b.content
}

// Size returns the size of the content in bytes
func (b *Blob) Size() int64 {
	return int64(len(b.content))
}

// String returns a human-readable representation
func (b *Blob) String() string {
	return fmt.Sprintf("Blob{size: %d, hash: %s}", b.Size(), b.hash.Short())
}
