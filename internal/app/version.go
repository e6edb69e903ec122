package app

import (
	"context"
	"path/filepath"

	"github.com/hashicorp/go-version"
	"github.com/samber/lo"
	"go.trai.ch/mono/internal/core/domain"
	"go.trai.ch/mono/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// Version sets the selected packages to the root manifest version and rewrites
// every local dependency range to the current version of its target.
func (a *App) Version(ctx context.Context, packages []string) error {
	ws, catalog, err := a.load()
	if err != nil {
		return err
	}

	target := ws.Version()
	if _, err := version.NewSemver(target); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrInvalidVersion, "root manifest version is not a semantic version"), "version", target)
	}

	bumped := domain.BumpVersion(catalog, target, packages)

	pipelines := make([]pipeline.Pipeline, 0, len(catalog))
	for _, pkg := range catalog {
		path := ws.PackageManifestPath(pkg)
		steps := []pipeline.Step{stepFunc(func() error {
			return a.editManifest(path, func(doc *domain.Document) {
				domain.ApplyVersion(doc, pkg)
			})
		})}
		if lo.Contains(bumped, pkg) {
			lockPath := filepath.Join(ws.PackageDir(pkg), domain.LockFile)
			steps = append(steps, stepFunc(func() error {
				a.patchLockFile(lockPath, target)
				return nil
			}))
		}
		pipelines = append(pipelines, pipeline.Pipeline{
			Name:  "version " + pkg.Name,
			Steps: steps,
		})
	}
	for _, pkg := range bumped {
		a.progress(pkg.Name, "Versioning", target)
	}
	return a.runner.Run(ctx, pipelines)
}

// patchLockFile updates the version recorded in the lock file next to a
// manifest that was just written. Every failure is only logged.
func (a *App) patchLockFile(path, target string) {
	doc, err := a.store.Read(path)
	if err != nil {
		a.logger.Debug("skipping lock file " + path + ": " + err.Error())
		return
	}
	domain.PatchLockVersion(doc, target)
	if err := a.saveManifest(path, doc); err != nil {
		a.logger.Debug("skipping lock file " + path + ": " + err.Error())
	}
}
