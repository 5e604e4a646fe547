// Package integrity verifies that a repository's on-disk state is
// self-consistent. The object store trusts its files on every read, so
// verification is a separate full scan rather than a per-read check.
package integrity

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/blip-vcs/blip/pkg/common/logger"
	"github.com/blip-vcs/blip/pkg/objects"
	"github.com/blip-vcs/blip/pkg/objects/commit"
	"github.com/blip-vcs/blip/pkg/repository/bliprepo"
	"golang.org/x/sync/errgroup"
)

// Issue is one inconsistency found during verification.
type Issue struct {
	Object  objects.ObjectHash // empty for repository-level issues
	Problem string
}

func (i Issue) String() string {
	if i.Object == "" {
		return i.Problem
	}
	return fmt.Sprintf("%s: %s", i.Object, i.Problem)
}

// Report is the outcome of a verification scan.
type Report struct {
	Objects int // object files scanned
	Commits int // objects that parsed as commits

	mu     sync.Mutex
	issues []Issue
}

// Issues returns the inconsistencies found, if any.
func (r *Report) Issues() []Issue {
	return r.issues
}

// OK reports whether the scan found no inconsistencies.
func (r *Report) OK() bool {
	return len(r.issues) == 0
}

func (r *Report) add(issue Issue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.issues = append(r.issues, issue)
}

// Checker scans a repository for corruption.
type Checker struct {
	repo   *bliprepo.BlipRepository
	logger *slog.Logger
	jobs   int
}

// NewChecker creates a checker bound to an opened repository.
func NewChecker(repo *bliprepo.BlipRepository) *Checker {
	return &Checker{
		repo:   repo,
		logger: logger.With("component", "integrity"),
		jobs:   runtime.NumCPU(),
	}
}

// SetJobs bounds how many objects are hashed concurrently. Values below
// one keep the current bound.
func (c *Checker) SetJobs(n int) {
	if n > 0 {
		c.jobs = n
	}
}

// Verify scans the whole repository:
//
//   - every object file's name must be a valid hash, and the digest of
//     its bytes must equal that name
//   - every object that holds commit text must parse, and its parent
//     must exist in the store
//   - the current branch ref, when present, must point at a stored commit
//   - every index entry must reference a stored object
//
// Object files are hashed in parallel; everything else is a quick
// metadata pass afterwards.
func (c *Checker) Verify(ctx context.Context) (*Report, error) {
	report := &Report{}

	hashes, err := c.scanObjects(ctx, report)
	if err != nil {
		return nil, err
	}
	report.Objects = len(hashes)

	c.checkCommits(report, hashes)
	c.checkRef(report, hashes)
	c.checkIndex(report, hashes)

	c.logger.Info("verification finished",
		"objects", report.Objects, "commits", report.Commits, "issues", len(report.issues))
	return report, nil
}

// scanObjects re-hashes every object file concurrently and returns the
// set of object hashes present in the store.
func (c *Checker) scanObjects(ctx context.Context, report *Report) (map[objects.ObjectHash]bool, error) {
	entries, err := os.ReadDir(c.repo.BlipPath().ObjectsPath().String())
	if err != nil {
		return nil, fmt.Errorf("read objects directory: %w", err)
	}

	present := make(map[objects.ObjectHash]bool, len(entries))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.jobs)

	for _, entry := range entries {
		if entry.IsDir() {
			report.add(Issue{Problem: "unexpected directory in object store: " + entry.Name()})
			continue
		}
		name := entry.Name()

		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			hash, err := objects.ParseObjectHash(name)
			if err != nil {
				report.add(Issue{Problem: "object file with invalid name: " + name})
				return nil
			}

			data, err := os.ReadFile(c.repo.BlipPath().ObjectFilePath(name).String())
			if err != nil {
				report.add(Issue{Object: hash, Problem: "unreadable: " + err.Error()})
				return nil
			}
			if actual := objects.NewObjectHash(data); actual != hash {
				report.add(Issue{Object: hash,
					Problem: fmt.Sprintf("content digest mismatch: stored bytes hash to %s", actual)})
				return nil
			}

			mu.Lock()
			present[hash] = true
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return present, nil
}

// checkCommits parses every object that looks like commit text and
// verifies parent linkage.
func (c *Checker) checkCommits(report *Report, present map[objects.ObjectHash]bool) {
	for hash := range present {
		data, err := c.repo.ObjectStore().Get(hash)
		if err != nil {
			report.add(Issue{Object: hash, Problem: "unreadable: " + err.Error()})
			continue
		}
		if !utf8.Valid(data) || !looksLikeCommit(data) {
			continue // plain blob
		}

		parsed, err := commit.Parse(hash, string(data))
		if err != nil {
			report.add(Issue{Object: hash, Problem: "commit text does not parse: " + err.Error()})
			continue
		}
		report.Commits++

		if parentHash, ok := parsed.Parent(); ok && !present[parentHash] {
			report.add(Issue{Object: hash, Problem: "parent " + parentHash.String() + " missing from store"})
		}
		for blobHash := range parsed.Manifest() {
			if !present[blobHash] {
				report.add(Issue{Object: hash, Problem: "manifest references missing object " + blobHash.String()})
			}
		}
	}
}

// checkRef verifies the current branch ref points into the store.
func (c *Checker) checkRef(report *Report, present map[objects.ObjectHash]bool) {
	refPath, err := c.repo.Refs().ResolveHead()
	if err != nil {
		report.add(Issue{Problem: "HEAD does not resolve: " + err.Error()})
		return
	}
	hash, ok, err := c.repo.Refs().HashFromRef(refPath)
	if err != nil {
		report.add(Issue{Problem: "ref does not resolve: " + err.Error()})
		return
	}
	if ok && !present[hash] {
		report.add(Issue{Object: hash, Problem: "ref " + refPath.Base() + " points at missing object"})
	}
}

// checkIndex verifies every staged entry references a stored blob.
func (c *Checker) checkIndex(report *Report, present map[objects.ObjectHash]bool) {
	idx, err := c.repo.LoadIndex()
	if err != nil {
		report.add(Issue{Problem: "index does not load: " + err.Error()})
		return
	}
	for path, hash := range idx.Entries() {
		if !present[hash] {
			report.add(Issue{Object: hash, Problem: "index entry " + path + " references missing object"})
		}
	}
}

// looksLikeCommit reports whether data starts with one of the two
// canonical commit line shapes. Blobs that happen to contain such text
// will be parsed as commits; with no object type header this ambiguity
// is inherent to the format.
func looksLikeCommit(data []byte) bool {
	s := string(data)
	return strings.HasPrefix(s, "parent ") || strings.HasPrefix(s, "blob ")
}
