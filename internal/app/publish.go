package app

import (
	"context"

	"go.trai.ch/mono/internal/core/domain"
)

// Publish publishes every public package whose version equals the root
// version, one at a time in dependencies-first order.
func (a *App) Publish(ctx context.Context) error {
	ws, catalog, err := a.load()
	if err != nil {
		return err
	}

	ordered, err := domain.Sort(catalog, domain.DependenciesFirst)
	if err != nil {
		return err
	}

	for _, pkg := range ordered {
		if pkg.Private || pkg.Version != ws.Version() {
			continue
		}
		a.progress(pkg.Name, "Publishing", a.manager.CommandLine("publish", nil))

		if err := a.manager.Invoke(ctx, ws.PackageDir(pkg), "publish", []string{foregroundScripts}, a.invokeOptions(pkg)); err != nil {
			return err
		}
	}
	return nil
}
