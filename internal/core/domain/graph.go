package domain

import (
	"iter"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// SortOrder selects the direction of a topological sort.
type SortOrder int

const (
	// DependenciesFirst places every package after all of its local dependencies.
	DependenciesFirst SortOrder = iota
	// DependentsFirst is the exact reverse of DependenciesFirst.
	DependentsFirst
)

// CycleError reports a cycle among local dependencies. Path starts and ends with
// the package that was met again while still on the active DFS path.
type CycleError struct {
	Path []string
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	return "cyclic dependency detected: " + strings.Join(e.Path, " -> ")
}

// Unwrap returns ErrCycleDetected.
func (e *CycleError) Unwrap() error {
	return ErrCycleDetected
}

// Graph is the local dependency graph of a catalog.
type Graph struct {
	packages       map[string]*Package
	names          []string
	executionOrder []string
}

// NewGraph builds the graph of the given catalog. Node order follows catalog order,
// children follow LocalDependencyNames.
func NewGraph(catalog Catalog) *Graph {
	g := &Graph{
		packages: make(map[string]*Package, len(catalog)),
		names:    make([]string, 0, len(catalog)),
	}
	for _, pkg := range catalog {
		if _, exists := g.packages[pkg.Name]; !exists {
			g.names = append(g.names, pkg.Name)
		}
		g.packages[pkg.Name] = pkg
	}
	return g
}

// Validate checks for cycles with a post-order depth-first search and populates
// the dependencies-first execution order if successful.
func (g *Graph) Validate() error {
	g.executionOrder = make([]string, 0, len(g.names))
	visited := make(map[string]int, len(g.names)) // 0: unvisited, 1: visiting, 2: visited
	var path []string

	var visit func(u string) error
	visit = func(u string) error {
		pkg, exists := g.packages[u]
		if !exists {
			return zerr.With(zerr.Wrap(ErrMissingDependency, "unknown local package"), "dependency", u)
		}

		visited[u] = 1
		path = append(path, u)

		for _, dep := range pkg.LocalDependencyNames() {
			if visited[dep] == 1 {
				return buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		g.executionOrder = append(g.executionOrder, u)
		return nil
	}

	for _, name := range g.names {
		if visited[name] == 0 {
			if err := visit(name); err != nil {
				g.executionOrder = nil
				return err
			}
		}
	}

	return nil
}

func buildCycleError(path []string, dep string) error {
	start := slices.Index(path, dep)
	cycle := make([]string, 0, len(path)-start+1)
	cycle = append(cycle, path[start:]...)
	cycle = append(cycle, dep)
	return &CycleError{Path: cycle}
}

// Walk returns an iterator that yields packages in dependencies-first order.
// It assumes Validate() has been called and returned nil.
func (g *Graph) Walk() iter.Seq[*Package] {
	return func(yield func(*Package) bool) {
		for _, name := range g.executionOrder {
			if !yield(g.packages[name]) {
				return
			}
		}
	}
}

// Edges yields every (dependent, dependency) pair in node order.
func (g *Graph) Edges() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, name := range g.names {
			for _, dep := range g.packages[name].LocalDependencyNames() {
				if !yield(name, dep) {
					return
				}
			}
		}
	}
}

// Names returns the node names in catalog order.
func (g *Graph) Names() []string {
	return slices.Clone(g.names)
}

// Sort returns the catalog packages topologically ordered. On a cycle no partial
// order is returned.
func Sort(catalog Catalog, order SortOrder) ([]*Package, error) {
	g := NewGraph(catalog)
	if err := g.Validate(); err != nil {
		return nil, err
	}

	sorted := slices.Collect(g.Walk())
	if order == DependentsFirst {
		slices.Reverse(sorted)
	}
	return sorted, nil
}
