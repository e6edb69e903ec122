// Package fs provides filesystem adapters backed by afero.
package fs

import (
	"github.com/spf13/afero"
	"go.trai.ch/mono/internal/core/ports"
	"go.trai.ch/zerr"
)

const dirPerm = 0o750

var _ ports.FileSystem = (*FileSystem)(nil)

// FileSystem implements ports.FileSystem on an afero.Fs.
type FileSystem struct {
	fs afero.Fs
}

// NewFileSystem creates a FileSystem over fs.
func NewFileSystem(fs afero.Fs) *FileSystem {
	return &FileSystem{fs: fs}
}

// MkdirAll creates path and any missing parents.
func (f *FileSystem) MkdirAll(path string) error {
	if err := f.fs.MkdirAll(path, dirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", path)
	}
	return nil
}

// RemoveAll removes path and its children.
func (f *FileSystem) RemoveAll(path string) error {
	if err := f.fs.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove path"), "path", path)
	}
	return nil
}

// NewOsFs returns the operating system filesystem.
func NewOsFs() afero.Fs {
	return afero.NewOsFs()
}
