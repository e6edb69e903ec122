// Package config provides the workspace loader for mono.
package config

import (
	"bytes"
	"errors"
	"io"
	iofs "io/fs"
	"path/filepath"
	"runtime"

	"github.com/spf13/afero"
	"go.trai.ch/mono/internal/core/domain"
	"go.trai.ch/mono/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Filename is the name of the optional settings file at the workspace root.
const Filename = "mono.yaml"

const dirPerm = 0o750

var _ ports.WorkspaceLoader = (*Loader)(nil)

// Loader implements ports.WorkspaceLoader.
type Loader struct {
	fs     afero.Fs
	store  ports.ManifestStore
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(fsys afero.Fs, store ports.ManifestStore, logger ports.Logger) *Loader {
	return &Loader{fs: fsys, store: store, logger: logger}
}

// Load reads the root manifest and the settings file found in dir. The packages
// directory is created when it does not exist yet.
func (l *Loader) Load(dir string) (*domain.Workspace, error) {
	root, err := l.store.Read(filepath.Join(dir, domain.ManifestFile))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read root manifest")
	}

	packagesDir := root.String("packagesDir")
	if packagesDir == "" {
		packagesDir = domain.DefaultPackagesDir
	}
	packagesDir = filepath.Join(dir, packagesDir)
	if err := l.fs.MkdirAll(packagesDir, dirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create packages directory"), "path", packagesDir)
	}

	settings, err := l.loadSettings(filepath.Join(dir, Filename))
	if err != nil {
		return nil, err
	}

	return &domain.Workspace{
		Root:        dir,
		PackagesDir: packagesDir,
		Manifest:    root,
		Settings:    settings,
	}, nil
}

func (l *Loader) loadSettings(path string) (domain.Settings, error) {
	settings := domain.Settings{
		Parallelism:    runtime.NumCPU(),
		PackageManager: domain.DefaultPackageManager,
	}

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return settings, nil
		}
		return settings, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var monofile Monofile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&monofile); err != nil && !errors.Is(err, io.EOF) {
		return settings, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	if monofile.Parallelism < 0 {
		return settings, zerr.With(zerr.New("parallelism must not be negative"), "parallelism", monofile.Parallelism)
	}
	if monofile.Parallelism > 0 {
		settings.Parallelism = monofile.Parallelism
	}
	if monofile.PackageManager != "" {
		settings.PackageManager = monofile.PackageManager
	}
	settings.ValidateSkip = monofile.Validate.Skip

	l.logger.Debug("loaded settings from " + path)
	return settings, nil
}
