package app

import (
	"context"
	"net/url"
	"path/filepath"

	"go.trai.ch/mono/internal/core/domain"
	"go.trai.ch/mono/internal/core/ports"
	"go.trai.ch/zerr"
)

// inheritedFields are copied from the root manifest into new packages.
var inheritedFields = []string{"author", "bugs", "license", "repository"}

// Create scaffolds a package manifest under the packages directory from the
// root manifest and then runs the package manager's interactive init in it.
func (a *App) Create(ctx context.Context, dirName string) error {
	ws, err := a.loadWorkspace()
	if err != nil {
		return err
	}

	packageDir := filepath.Join(ws.PackagesDir, dirName)
	path := filepath.Join(packageDir, domain.ManifestFile)

	doc, err := a.store.Read(path)
	if err != nil {
		a.logger.Debug("starting a new manifest for " + path + ": " + err.Error())
		doc = domain.NewDocument()
		doc.Set("name", dirName)
	}

	root := ws.Manifest
	doc.Set("version", root.String("version"))
	doc.Set("description", "")
	doc.Set("main", "index.js")

	if homepage := root.String("homepage"); homepage != "" {
		u, err := packageHomepage(homepage, ws.Root, packageDir)
		if err != nil {
			return err
		}
		doc.Set("homepage", u)
	}

	for _, key := range inheritedFields {
		v, ok := root.Get(key)
		if !ok {
			doc.Delete(key)
			continue
		}
		doc.Set(key, domain.CloneValue(v))
	}

	if err := a.fs.MkdirAll(packageDir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create package directory"), "path", packageDir)
	}
	if err := a.saveManifest(path, doc); err != nil {
		return err
	}

	a.progress(dirName, "Creating", a.manager.CommandLine("init", nil))
	return a.manager.Invoke(ctx, packageDir, "init", nil, ports.InvokeOptions{
		Package:     dirName,
		Verbose:     true,
		Interactive: true,
	})
}

// packageHomepage appends the package path relative to the workspace root to
// the root homepage URL.
func packageHomepage(homepage, root, packageDir string) (string, error) {
	u, err := url.Parse(homepage)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "invalid homepage in root manifest"), "homepage", homepage)
	}

	rel, err := filepath.Rel(root, packageDir)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve package path")
	}

	u.Path += "/" + filepath.ToSlash(rel)
	u.RawPath = ""
	return u.String(), nil
}
