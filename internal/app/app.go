// Package app implements the application layer for mono.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"
	"go.trai.ch/mono/internal/core/domain"
	"go.trai.ch/mono/internal/core/ports"
	"go.trai.ch/mono/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// foregroundScripts makes the package manager print lifecycle script output inline.
const foregroundScripts = "--foreground-scripts"

// Dependencies groups the collaborators of an App.
type Dependencies struct {
	Workspaces ports.WorkspaceLoader
	Catalogs   ports.CatalogLoader
	Store      ports.ManifestStore
	Manager    ports.PackageManager
	Linker     ports.Linker
	FS         ports.FileSystem
	Renderer   ports.GraphRenderer
	Logger     ports.Logger
	Runner     *pipeline.Runner
}

// App represents the main application logic.
type App struct {
	workspaces ports.WorkspaceLoader
	catalogs   ports.CatalogLoader
	store      ports.ManifestStore
	manager    ports.PackageManager
	linker     ports.Linker
	fs         ports.FileSystem
	renderer   ports.GraphRenderer
	logger     ports.Logger
	runner     *pipeline.Runner

	dir     string
	out     io.Writer
	verbose bool
}

// New creates a new App instance working on the current directory.
func New(deps Dependencies) *App {
	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}
	return &App{
		workspaces: deps.Workspaces,
		catalogs:   deps.Catalogs,
		store:      deps.Store,
		manager:    deps.Manager,
		linker:     deps.Linker,
		fs:         deps.FS,
		renderer:   deps.Renderer,
		logger:     deps.Logger,
		runner:     deps.Runner,
		dir:        dir,
		out:        os.Stdout,
	}
}

// WithDir sets the workspace root directory.
func (a *App) WithDir(dir string) *App {
	a.dir = dir
	return a
}

// WithOutput sets the writer command results are printed to.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// SetVerbose enables debug logging and package manager output.
func (a *App) SetVerbose(verbose bool) {
	a.verbose = verbose
	if l, ok := a.logger.(interface{ SetVerbose(bool) }); ok {
		l.SetVerbose(verbose)
	}
}

// loadWorkspace reads the workspace root and applies its settings.
func (a *App) loadWorkspace() (*domain.Workspace, error) {
	ws, err := a.workspaces.Load(a.dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load workspace")
	}

	a.runner.SetParallelism(ws.Settings.Parallelism)
	if m, ok := a.manager.(interface{ SetExecutable(string) }); ok {
		m.SetExecutable(ws.Settings.PackageManager)
	}
	return ws, nil
}

// load reads the workspace root and its package catalog.
func (a *App) load() (*domain.Workspace, domain.Catalog, error) {
	ws, err := a.loadWorkspace()
	if err != nil {
		return nil, nil, err
	}

	catalog, err := a.catalogs.Load(ws.PackagesDir)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load packages")
	}
	return ws, catalog, nil
}

// progress logs a "[<package>] <Action>: <message>" line.
func (a *App) progress(pkg, action, msg string) {
	a.logger.Info(fmt.Sprintf("[%s] %s: %s", pkg, action, msg))
}

func (a *App) invokeOptions(pkg *domain.Package) ports.InvokeOptions {
	return ports.InvokeOptions{Package: pkg.Name, Verbose: a.verbose}
}

// saveManifest stages doc for path and commits it.
func (a *App) saveManifest(path string, doc *domain.Document) error {
	a.store.Update(path, doc)
	if err := a.store.Save(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to save manifest"), "path", path)
	}
	return nil
}

// editManifest reads the manifest at path, applies edit and saves it.
func (a *App) editManifest(path string, edit func(*domain.Document)) error {
	doc, err := a.store.Read(path)
	if err != nil {
		return err
	}
	edit(doc)
	return a.saveManifest(path, doc)
}

// sorted returns the filtered packages in the given topological order.
func sorted(catalog domain.Catalog, order domain.SortOrder, filters []string) ([]*domain.Package, error) {
	all, err := domain.Sort(catalog, order)
	if err != nil {
		return nil, err
	}
	selected := catalog.Filter(filters)
	return lo.Filter(all, func(p *domain.Package, _ int) bool {
		return lo.Contains(selected, p)
	}), nil
}

// stepFunc adapts a context free function to a pipeline step.
func stepFunc(fn func() error) pipeline.Step {
	return func(context.Context) error { return fn() }
}
