package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/extbuild/internal/core/domain"
	"go.trai.ch/extbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher provides hashing functionality for argument lists and install trees.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// Fingerprint hashes the ordered argument list. Arguments are NUL-separated so that
// ["-Da", "b"] and ["-Dab"] differ.
func (h *Hasher) Fingerprint(args []string) string {
	hasher := xxhash.New()
	for _, arg := range args {
		_, _ = hasher.WriteString(arg)
		_, _ = hasher.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}

	return hasher.Sum64(), nil
}

// HashTree hashes every regular file below root. Keys are slash-separated paths
// relative to root. A missing root yields an empty map.
func (h *Hasher) HashTree(root string) (map[string]string, error) {
	hashes := make(map[string]string)

	if _, err := os.Stat(root); os.IsNotExist(err) {
		return hashes, nil
	}

	for path := range h.walker.WalkFiles(root, nil) {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
		}

		sum, err := h.ComputeFileHash(path)
		if err != nil {
			return nil, err
		}
		hashes[filepath.ToSlash(rel)] = fmt.Sprintf("%016x", sum)
	}

	return hashes, nil
}
