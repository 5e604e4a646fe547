package objects

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
)

// ObjectHash represents the SHA-1 identity of a stored object, rendered as a
// 40-character lowercase hex string. The digest is taken over the object's
// raw bytes: a blob's file contents, or a commit's canonical serialization.
// Example: "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d"
type ObjectHash string

// ShortHash represents an abbreviated hash (typically 7 characters)
type ShortHash string

const (
	// HashLength is the length of a full SHA-1 hash in hex (40 characters)
	HashLength = 40
	// ShortHashLength is the default length for abbreviated hashes
	ShortHashLength = 7
)

// NewObjectHash computes the identity of a byte sequence.
// Identical bytes always produce an identical hash; that property is what
// collapses duplicate content to a single stored object.
func NewObjectHash(data []byte) ObjectHash {
	sum := sha1.Sum(data)
	return ObjectHash(hex.EncodeToString(sum[:]))
}

// ParseObjectHash creates an ObjectHash from a hex string.
// Returns an error if the string is not a valid hash.
func ParseObjectHash(s string) (ObjectHash, error) {
	hash := ObjectHash(strings.ToLower(strings.TrimSpace(s)))
	if err := hash.Validate(); err != nil {
		return "", err
	}
	return hash, nil
}

// String returns the hash as a string
func (h ObjectHash) String() string {
	return string(h)
}

// IsValid returns true if this is a valid SHA-1 hash
func (h ObjectHash) IsValid() bool {
	return h.Validate() == nil
}

// Validate checks if the hash is valid
func (h ObjectHash) Validate() error {
	if len(h) != HashLength {
		return fmt.Errorf("hash must be %d characters long, got %d", HashLength, len(h))
	}

	for _, c := range h {
		if !isHexChar(c) {
			return fmt.Errorf("hash must contain only hex characters, found '%c'", c)
		}
	}

	return nil
}

// Short returns the abbreviated version of the hash
func (h ObjectHash) Short() ShortHash {
	if len(h) >= ShortHashLength {
		return ShortHash(h[:ShortHashLength])
	}
	return ShortHash(h)
}

// Equal compares two hashes for equality (case-insensitive)
func (h ObjectHash) Equal(other ObjectHash) bool {
	return strings.EqualFold(string(h), string(other))
}

// String returns the short hash as a string
func (sh ShortHash) String() string {
	return string(sh)
}

// isHexChar returns true if the character is a valid lowercase hex character
func isHexChar(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
}
