// Package catalog builds the package catalog from the packages directory.
package catalog

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.trai.ch/mono/internal/core/domain"
	"go.trai.ch/mono/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CatalogLoader = (*Loader)(nil)

// Loader implements ports.CatalogLoader.
type Loader struct {
	fs     afero.Fs
	store  ports.ManifestStore
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(fsys afero.Fs, store ports.ManifestStore, logger ports.Logger) *Loader {
	return &Loader{fs: fsys, store: store, logger: logger}
}

// Load reads one manifest per sub-directory of packagesDir, in directory name
// order, and classifies the declared dependencies of every package.
func (l *Loader) Load(packagesDir string) (domain.Catalog, error) {
	entries, err := afero.ReadDir(l.fs, packagesDir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to list packages directory"), "path", packagesDir)
	}

	catalog := make(domain.Catalog, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		path := filepath.Join(packagesDir, entry.Name(), domain.ManifestFile)
		doc, err := l.store.Read(path)
		if err != nil {
			return nil, err
		}
		if err := manifestSchema.Validate(doc.Plain()); err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidManifest, err.Error()), "path", path)
		}

		catalog = append(catalog, domain.PackageFromManifest(entry.Name(), doc))
	}

	catalog.Classify()

	if dups := catalog.Duplicates(); len(dups) > 0 {
		l.logger.Warn("packages declared more than once, the last one wins: " + strings.Join(dups, ", "))
	}
	l.logger.Debug("loaded packages: " + strings.Join(catalog.Names(), ", "))

	return catalog, nil
}
