package app

import (
	"context"
	"path/filepath"
	"slices"

	"go.trai.ch/mono/internal/core/domain"
	"go.trai.ch/mono/internal/engine/pipeline"
)

// InstallOptions configures Install.
type InstallOptions struct {
	// Dependencies are the packages to add. Empty means a plain install.
	Dependencies []string
	// Save is the bucket added dependencies are recorded under.
	Save domain.SaveType
	// Packages filters the packages to install into. Empty selects all.
	Packages []string
}

// Install runs the package manager in every selected package and links local
// dependencies afterwards. Local dependencies are hidden from the package
// manager while it runs and restored whatever its outcome.
func (a *App) Install(ctx context.Context, opts InstallOptions) error {
	ws, catalog, err := a.load()
	if err != nil {
		return err
	}

	save := opts.Save
	if save == "" {
		save = domain.SaveProd
	}

	jobs, err := domain.PlanInstall(ws.Version(), catalog, opts.Dependencies, save, opts.Packages)
	if err != nil {
		return err
	}

	pipelines := make([]pipeline.Pipeline, 0, len(jobs))
	for _, job := range jobs {
		pipelines = append(pipelines, a.installPipeline(ws, job))
	}
	if err := a.runner.Run(ctx, pipelines); err != nil {
		return err
	}

	return a.link(ctx, ws, catalog)
}

func (a *App) installPipeline(ws *domain.Workspace, job domain.InstallJob) pipeline.Pipeline {
	pkg := job.Package
	path := ws.PackageManifestPath(pkg)

	return pipeline.Pipeline{
		Name: "install " + pkg.Name,
		Steps: []pipeline.Step{
			stepFunc(func() error {
				return a.editManifest(path, func(doc *domain.Document) {
					domain.StripLocalDependencies(doc, pkg)
				})
			}),
			func(ctx context.Context) error {
				a.progress(pkg.Name, "Installing", a.manager.CommandLine(job.Command, job.Args))
				args := append(slices.Clone(job.Args), foregroundScripts)
				return a.manager.Invoke(ctx, ws.PackageDir(pkg), job.Command, args, a.invokeOptions(pkg))
			},
		},
		Finally: []pipeline.Step{
			// The package manager may have rewritten the manifest, so it is read again.
			stepFunc(func() error {
				return a.editManifest(path, func(doc *domain.Document) {
					domain.InsertLocalDependencies(doc, pkg)
				})
			}),
		},
	}
}

// Link symlinks the directory of every local dependency into the
// node_modules of its dependents.
func (a *App) Link(ctx context.Context) error {
	ws, catalog, err := a.load()
	if err != nil {
		return err
	}
	return a.link(ctx, ws, catalog)
}

func (a *App) link(ctx context.Context, ws *domain.Workspace, catalog domain.Catalog) error {
	index := catalog.Index()

	var pipelines []pipeline.Pipeline
	for _, pkg := range catalog {
		names := pkg.LocalDependencyNames()
		if len(names) == 0 {
			continue
		}

		steps := make([]pipeline.Step, 0, len(names))
		for _, name := range names {
			dep, ok := index[name]
			if !ok {
				continue
			}
			src := ws.PackageDir(dep)
			dest := filepath.Join(ws.PackageDir(pkg), domain.NodeModulesDir, filepath.FromSlash(name))
			steps = append(steps, stepFunc(func() error {
				a.logger.Debug("[" + pkg.Name + "] Linking: " + name)
				return a.linker.Link(src, dest)
			}))
		}
		pipelines = append(pipelines, pipeline.Pipeline{Name: "link " + pkg.Name, Steps: steps})
	}

	return a.runner.Run(ctx, pipelines)
}
