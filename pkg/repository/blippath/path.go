package blippath

import (
	"fmt"
	"path/filepath"
	"strings"
)

// RepositoryPath represents an absolute path to a repository root directory,
// the directory that contains .blip.
// Example: "/home/user/myproject"
type RepositoryPath string

// AbsolutePath represents any absolute filesystem path
type AbsolutePath string

// RelativePath represents a normalized repository-relative path
// (forward slashes, no leading ./, no ..)
// Example: "src/main.go"
type RelativePath string

// RepositoryPath methods

// String returns the path as a string
func (rp RepositoryPath) String() string {
	return string(rp)
}

// IsValid checks if this is a valid absolute path
func (rp RepositoryPath) IsValid() bool {
	return filepath.IsAbs(string(rp))
}

// Join joins path elements to the repository path
func (rp RepositoryPath) Join(elem ...string) AbsolutePath {
	parts := append([]string{string(rp)}, elem...)
	return AbsolutePath(filepath.Join(parts...))
}

// BlipPath returns the path to the .blip directory
func (rp RepositoryPath) BlipPath() BlipPath {
	return BlipPath(filepath.Join(string(rp), BlipDir))
}

// Relativize converts an absolute path inside the repository to a
// repository-relative path. Paths outside the repository are rejected.
func (rp RepositoryPath) Relativize(abs AbsolutePath) (RelativePath, error) {
	rel, err := filepath.Rel(string(rp), string(abs))
	if err != nil {
		return "", fmt.Errorf("failed to get relative path: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path escapes repository: %s", abs)
	}
	return RelativePath(rel).Normalize(), nil
}

// NewRepositoryPath creates a new RepositoryPath from a string
func NewRepositoryPath(path string) (RepositoryPath, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	return RepositoryPath(absPath), nil
}

// AbsolutePath methods

// String returns the path as a string
func (ap AbsolutePath) String() string {
	return string(ap)
}

// IsValid checks if this is a valid path
func (ap AbsolutePath) IsValid() bool {
	return len(ap) > 0
}

// Join joins path elements to the absolute path
func (ap AbsolutePath) Join(elem ...string) AbsolutePath {
	parts := append([]string{string(ap)}, elem...)
	return AbsolutePath(filepath.Join(parts...))
}

// Base returns the last element of the path
func (ap AbsolutePath) Base() string {
	return filepath.Base(string(ap))
}

// Dir returns all but the last element of the path
func (ap AbsolutePath) Dir() AbsolutePath {
	return AbsolutePath(filepath.Dir(string(ap)))
}

// RelativePath methods

// String returns the path as a string
func (rp RelativePath) String() string {
	return string(rp)
}

// IsValid checks if this is a valid repository-relative path
func (rp RelativePath) IsValid() bool {
	s := string(rp)
	if len(s) == 0 {
		return false
	}
	if filepath.IsAbs(s) || strings.HasPrefix(s, "/") {
		return false
	}
	if strings.Contains(s, "..") {
		return false
	}
	return true
}

// Normalize normalizes the path (forward slashes, cleaned, no leading ./)
func (rp RelativePath) Normalize() RelativePath {
	normalized := filepath.ToSlash(filepath.Clean(string(rp)))
	normalized = strings.TrimPrefix(normalized, "./")
	return RelativePath(normalized)
}

// NewRelativePath creates and validates a new RelativePath
func NewRelativePath(path string) (RelativePath, error) {
	rp := RelativePath(path).Normalize()
	if !rp.IsValid() {
		return "", fmt.Errorf("invalid relative path: %s", path)
	}
	return rp, nil
}
