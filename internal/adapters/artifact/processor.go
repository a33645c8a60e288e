// Package artifact post-processes the install tree and the package build output.
package artifact

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/extbuild/internal/core/domain"
	"go.trai.ch/extbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactProcessor = (*Processor)(nil)

// Processor implements ports.ArtifactProcessor on the local file system.
type Processor struct {
	logger ports.Logger
}

// NewProcessor creates a Processor.
func NewProcessor(logger ports.Logger) *Processor {
	return &Processor{logger: logger}
}

// RemoveDenylisted deletes the named files from the install root. Absent files are
// skipped. The removed names are returned in input order.
func (p *Processor) RemoveDenylisted(layout domain.InstallLayout, names []string) ([]string, error) {
	var removed []string
	for _, name := range names {
		path := layout.Path(name)
		if !layout.Contains(path) {
			continue
		}

		err := os.Remove(path)
		switch {
		case err == nil:
			removed = append(removed, name)
			p.logger.Info("removed " + path)
		case errors.Is(err, iofs.ErrNotExist):
		default:
			return removed, zerr.With(zerr.Wrap(err, domain.ErrArtifactRemoveFailed.Error()), "path", path)
		}
	}
	return removed, nil
}

// BundleData replaces dst with a recursive copy of src.
func (p *Processor) BundleData(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDataBundleFailed.Error()), "source", src)
	}
	if !info.IsDir() {
		return zerr.With(domain.ErrDataBundleFailed, "source", src)
	}

	if err := os.RemoveAll(dst); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDataBundleFailed.Error()), "destination", dst)
	}

	err = copyTree(src, dst)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDataBundleFailed.Error()), "destination", dst)
	}

	p.logger.Info("bundled " + src + " into " + dst)
	return nil
}

// copyTree copies src into dst. Symbolic links are followed: a linked file is
// copied by content and a linked directory is copied recursively.
func copyTree(src, dst string) error {
	root, err := filepath.EvalSymlinks(src)
	if err != nil {
		return err
	}
	return filepath.WalkDir(root, func(path string, d iofs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		switch {
		case d.IsDir():
			return os.MkdirAll(target, 0o750)
		case d.Type().IsRegular():
			return copyFile(path, target)
		case d.Type()&iofs.ModeSymlink != 0:
			info, err := os.Stat(path)
			if err != nil {
				return err
			}
			if info.IsDir() {
				return copyTree(path, target)
			}
			if info.Mode().IsRegular() {
				return copyFile(path, target)
			}
			return nil
		default:
			return nil
		}
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // walked from the project data directory
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // read-only

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm()) //nolint:gosec // destination below the bundle root
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
