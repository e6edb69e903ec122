// Package linker provides the directory symlink adapter.
package linker

import (
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/mono/internal/core/domain"
	"go.trai.ch/mono/internal/core/ports"
	"go.trai.ch/zerr"
)

const dirPerm = 0o750

var _ ports.Linker = (*Linker)(nil)

// Linker implements ports.Linker on a symlink capable afero.Fs.
type Linker struct {
	fs afero.Fs
}

// NewLinker creates a new Linker.
func NewLinker(fsys afero.Fs) *Linker {
	return &Linker{fs: fsys}
}

// Link makes dest a symlink to the directory src. A file, symlink or directory
// tree already present at dest is removed first.
func (l *Linker) Link(src, dest string) error {
	info, err := l.fs.Stat(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat link source"), "path", src)
	}
	if !info.IsDir() {
		return zerr.With(zerr.Wrap(domain.ErrNotADirectory, "link source is not a directory"), "path", src)
	}

	symlinker, ok := l.fs.(afero.Linker)
	if !ok {
		return zerr.With(zerr.Wrap(afero.ErrNoSymlink, "filesystem does not support symlinks"), "path", dest)
	}

	// RemoveAll does not follow a symlink at dest.
	if err := l.fs.RemoveAll(dest); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove link destination"), "path", dest)
	}
	if err := l.fs.MkdirAll(filepath.Dir(dest), dirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create link parent directory"), "path", dest)
	}
	if err := symlinker.SymlinkIfPossible(src, dest); err != nil {
		return zerr.With(zerr.With(zerr.Wrap(err, "failed to create symlink"), "src", src), "dest", dest)
	}
	return nil
}
