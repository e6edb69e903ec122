// Package jsonstore implements the manifest store on JSON files.
package jsonstore

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
	"go.trai.ch/mono/internal/adapters/fs"
	"go.trai.ch/mono/internal/core/domain"
	"go.trai.ch/mono/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	filePerm = 0o644
	dirPerm  = 0o750
)

var _ ports.ManifestStore = (*Store)(nil)

// Store implements ports.ManifestStore. Updates are staged in memory and
// written on Save.
type Store struct {
	fs     afero.Fs
	hasher *fs.Hasher

	mu     sync.Mutex
	staged map[string]*domain.Document
}

// NewStore creates a new Store working on fsys.
func NewStore(fsys afero.Fs, hasher *fs.Hasher) *Store {
	return &Store{
		fs:     fsys,
		hasher: hasher,
		staged: make(map[string]*domain.Document),
	}
}

// Read reads and decodes the document at path. It always reads from disk.
func (s *Store) Read(path string) (*domain.Document, error) {
	path = filepath.Clean(path)

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrManifestNotFound, "failed to read document"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read document"), "path", path)
	}

	doc, err := domain.ParseDocument(data)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidManifest, err.Error()), "path", path)
	}
	return doc, nil
}

// Update stages doc as the next content of path.
func (s *Store) Update(path string, doc *domain.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staged[filepath.Clean(path)] = doc
}

// Save writes the staged document of path. The file is left untouched when its
// content already matches.
func (s *Store) Save(path string) error {
	path = filepath.Clean(path)

	s.mu.Lock()
	doc, ok := s.staged[path]
	s.mu.Unlock()
	if !ok {
		return zerr.With(zerr.New("no staged document"), "path", path)
	}

	data, err := doc.Bytes()
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to encode document"), "path", path)
	}

	perm := os.FileMode(filePerm)
	info, err := s.fs.Stat(path)
	switch {
	case err == nil:
		perm = info.Mode().Perm()
		if current, hashErr := s.hasher.ComputeFileHash(path); hashErr == nil && current == s.hasher.ComputeHash(data) {
			s.clear(path, doc)
			return nil
		}
	case errors.Is(err, iofs.ErrNotExist):
		if err := s.fs.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create directory for document"), "path", path)
		}
	default:
		return zerr.With(zerr.Wrap(err, "failed to stat document"), "path", path)
	}

	if err := afero.WriteFile(s.fs, path, data, perm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write document"), "path", path)
	}
	s.clear(path, doc)
	return nil
}

// clear drops the staged document unless it was replaced meanwhile.
func (s *Store) clear(path string, doc *domain.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.staged[path] == doc {
		delete(s.staged, path)
	}
}
