package domain

import "path/filepath"

const (
	// DefaultPackagesDir is the packages directory used when the root manifest declares none.
	DefaultPackagesDir = "packages"

	// DefaultPackageManager is the package manager executable base name.
	DefaultPackageManager = "npm"

	// NodeModulesDir is the directory local dependencies are linked into.
	NodeModulesDir = "node_modules"
)

// Settings are the tool settings of a workspace.
type Settings struct {
	// Parallelism bounds the number of pipelines running at once.
	Parallelism int
	// PackageManager is the executable base name of the package manager.
	PackageManager string
	// ValidateSkip lists dependencies always ignored by the version check.
	ValidateSkip []string
}

// Workspace is a loaded workspace root.
type Workspace struct {
	// Root is the workspace root directory.
	Root string
	// PackagesDir is the directory holding one sub-directory per package.
	PackagesDir string
	// Manifest is the root package.json.
	Manifest *Document
	// Settings are the resolved tool settings.
	Settings Settings
}

// Version returns the root manifest version.
func (w *Workspace) Version() string {
	return w.Manifest.String("version")
}

// ManifestPath returns the root manifest path.
func (w *Workspace) ManifestPath() string {
	return filepath.Join(w.Root, ManifestFile)
}

// PackageDir returns the directory of pkg.
func (w *Workspace) PackageDir(pkg *Package) string {
	return filepath.Join(w.PackagesDir, pkg.DirName)
}

// PackageManifestPath returns the manifest path of pkg.
func (w *Workspace) PackageManifestPath(pkg *Package) string {
	return filepath.Join(w.PackageDir(pkg), ManifestFile)
}
