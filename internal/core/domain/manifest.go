package domain

// ManifestFile is the file name of a package manifest.
const ManifestFile = "package.json"

// LockFile is the file name of the package manager lock artifact.
const LockFile = "package-lock.json"

// PackageFromManifest builds an unclassified Package from a manifest document.
// Every declared dependency is stored as external until Catalog.Classify runs.
func PackageFromManifest(dirName string, doc *Document) *Package {
	pkg := NewPackage(doc.String("name"), dirName, doc.String("version"))
	pkg.Private = doc.Bool("private")

	if scripts, ok := doc.Object("scripts"); ok {
		for _, name := range scripts.Keys() {
			pkg.Scripts[name] = scripts.String(name)
		}
	}

	for _, t := range DependencyTypes() {
		section, ok := doc.Object(t.ManifestKey())
		if !ok || section.Len() == 0 {
			continue
		}
		deps := pkg.Dependencies.External.Ensure(t)
		for _, name := range section.Keys() {
			deps.Set(name, section.String(name))
		}
	}
	return pkg
}

// StripLocalDependencies removes the package's local dependencies from the
// sections of doc that exist. Emptied sections are kept.
func StripLocalDependencies(doc *Document, pkg *Package) {
	for _, t := range DependencyTypes() {
		local, ok := pkg.Dependencies.Local[t]
		if !ok {
			continue
		}
		section, ok := doc.Object(t.ManifestKey())
		if !ok {
			continue
		}
		for _, name := range local.Names() {
			section.Delete(name)
		}
	}
}

// InsertLocalDependencies merges the package's local dependencies into doc,
// creating missing sections. Existing entries keep their position.
func InsertLocalDependencies(doc *Document, pkg *Package) {
	for _, t := range DependencyTypes() {
		local, ok := pkg.Dependencies.Local[t]
		if !ok {
			continue
		}
		section := doc.EnsureObject(t.ManifestKey())
		for name, r := range local.All() {
			section.Set(name, r)
		}
	}
}

// ApplyVersion writes the package version and its local dependency ranges into doc.
func ApplyVersion(doc *Document, pkg *Package) {
	doc.Set("version", pkg.Version)
	InsertLocalDependencies(doc, pkg)
}

// PatchLockVersion sets the top-level version of a lock document and, when
// present, the version of its root entry packages[""].
func PatchLockVersion(doc *Document, version string) {
	doc.Set("version", version)
	if packages, ok := doc.Object("packages"); ok {
		if root, ok := packages.Object(""); ok {
			root.Set("version", version)
		}
	}
}
