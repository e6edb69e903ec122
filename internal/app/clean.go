package app

import (
	"context"
	"path/filepath"

	"go.trai.ch/mono/internal/core/domain"
	"go.trai.ch/mono/internal/engine/pipeline"
)

// Clean removes the node_modules directory of the selected packages.
func (a *App) Clean(ctx context.Context, packages []string) error {
	ws, catalog, err := a.load()
	if err != nil {
		return err
	}

	selected := catalog.Filter(packages)
	pipelines := make([]pipeline.Pipeline, 0, len(selected))
	for _, pkg := range selected {
		dir := filepath.Join(ws.PackageDir(pkg), domain.NodeModulesDir)
		pipelines = append(pipelines, pipeline.Pipeline{
			Name: "clean " + pkg.Name,
			Steps: []pipeline.Step{stepFunc(func() error {
				a.progress(pkg.Name, "Cleaning", domain.NodeModulesDir)
				return a.fs.RemoveAll(dir)
			})},
		})
	}
	return a.runner.Run(ctx, pipelines)
}
