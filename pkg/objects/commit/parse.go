package commit

import (
	"regexp"
	"strings"

	xerr "github.com/blip-vcs/blip/pkg/common/err"
	"github.com/blip-vcs/blip/pkg/objects"
)

const (
	parentLinePrefix = "parent "
	blobLinePrefix   = "blob "
)

var (
	parentLineRe = regexp.MustCompile(`^parent ([0-9a-f]{40})$`)
	blobLineRe   = regexp.MustCompile(`^blob ([0-9a-f]{40}), (.*)$`)
)

// Parse reconstructs a commit from its stored canonical text. The resulting
// commit is finalized: its hash is the one it was stored under and its data
// is the given text.
//
// Exactly two line shapes are meaningful: "parent <40-hex>" and
// "blob <40-hex>, <path>". A line that starts like one of those declarations
// but fails to yield a valid hash is a hard parse failure. Any other line is
// silently ignored, which keeps the format forward-compatible without a
// version field.
func Parse(hash objects.ObjectHash, raw string) (*Commit, error) {
	c := New(nil)

	for _, line := range strings.Split(raw, "\n") {
		switch {
		case strings.HasPrefix(line, parentLinePrefix):
			m := parentLineRe.FindStringSubmatch(line)
			if m == nil {
				return nil, corrupt("malformed parent line: " + line)
			}
			c.parent = objects.ObjectHash(m[1])

		case strings.HasPrefix(line, blobLinePrefix):
			m := blobLineRe.FindStringSubmatch(line)
			if m == nil {
				return nil, corrupt("malformed blob line: " + line)
			}
			c.manifest[objects.ObjectHash(m[1])] = m[2]
		}
	}

	c.hash = hash
	c.data = []byte(raw)
	c.finalized = true
	return c, nil
}

func corrupt(message string) error {
	return xerr.New(pkgName, xerr.CodeCorruptObjectStore, "parse", message, nil)
}
