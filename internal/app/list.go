package app

import (
	"context"
	"fmt"

	"go.trai.ch/mono/internal/core/domain"
)

// ListOptions configures List.
type ListOptions struct {
	// Reverse prints dependents before their dependencies.
	Reverse bool
	// Packages filters the listed packages. Empty selects all.
	Packages []string
}

// List prints the selected packages in topological order, one per line.
func (a *App) List(_ context.Context, opts ListOptions) error {
	_, catalog, err := a.load()
	if err != nil {
		return err
	}

	order := domain.DependenciesFirst
	if opts.Reverse {
		order = domain.DependentsFirst
	}
	packages, err := sorted(catalog, order, opts.Packages)
	if err != nil {
		return err
	}

	for _, pkg := range packages {
		if _, err := fmt.Fprintf(a.out, "%s@%s\t%s\n", pkg.Name, pkg.Version, pkg.DirName); err != nil {
			return err
		}
	}
	return nil
}

// Graph prints the local dependency graph in DOT format.
func (a *App) Graph(_ context.Context) error {
	_, catalog, err := a.load()
	if err != nil {
		return err
	}
	return a.renderer.Render(a.out, catalog)
}
