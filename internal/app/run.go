package app

import (
	"context"

	"go.trai.ch/mono/internal/core/domain"
)

// RunScript runs a package script in every selected package defining it, one
// package at a time in dependencies-first order. It stops at the first failure.
func (a *App) RunScript(ctx context.Context, script string, scriptArgs, packages []string) error {
	ws, catalog, err := a.load()
	if err != nil {
		return err
	}

	ordered, err := sorted(catalog, domain.DependenciesFirst, packages)
	if err != nil {
		return err
	}

	var extra []string
	if len(scriptArgs) > 0 {
		extra = append([]string{"--"}, scriptArgs...)
	}

	for _, pkg := range ordered {
		if !pkg.HasScript(script) {
			continue
		}
		a.progress(pkg.Name, "Running", a.manager.CommandLine("run", append([]string{script}, extra...)))

		args := append([]string{script, foregroundScripts}, extra...)
		if err := a.manager.Invoke(ctx, ws.PackageDir(pkg), "run", args, a.invokeOptions(pkg)); err != nil {
			return err
		}
	}
	return nil
}
