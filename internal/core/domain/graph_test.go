package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mono/internal/core/domain"
)

// pkg builds a classified package with local prod dependencies.
func pkg(name string, localDeps ...string) *domain.Package {
	p := domain.NewPackage(name, name, "1.0.0")
	for _, dep := range localDeps {
		p.Dependencies.Local.Ensure(domain.DependencyTypeProd).Set(dep, "^1.0.0")
	}
	return p
}

func names(pkgs []*domain.Package) []string {
	out := make([]string, len(pkgs))
	for i, p := range pkgs {
		out[i] = p.Name
	}
	return out
}

func TestSort_DependenciesFirst(t *testing.T) {
	catalog := domain.Catalog{
		pkg("pkg4"),
		pkg("pkg2", "pkg1"),
		pkg("pkg1"),
		pkg("pkg3", "pkg1", "pkg2"),
	}

	sorted, err := domain.Sort(catalog, domain.DependenciesFirst)
	require.NoError(t, err)
	assert.Equal(t, []string{"pkg4", "pkg1", "pkg2", "pkg3"}, names(sorted))

	reversed, err := domain.Sort(catalog, domain.DependentsFirst)
	require.NoError(t, err)
	assert.Equal(t, []string{"pkg3", "pkg2", "pkg1", "pkg4"}, names(reversed))
}

func TestSort_SupplierBeforeConsumer(t *testing.T) {
	catalog := domain.Catalog{
		pkg("app", "ui", "core"),
		pkg("ui", "core"),
		pkg("cli", "core"),
		pkg("core"),
	}
	dev := pkg("tools")
	dev.Dependencies.Local.Ensure(domain.DependencyTypeDev).Set("cli", "^1.0.0")
	catalog = append(catalog, dev)

	sorted, err := domain.Sort(catalog, domain.DependenciesFirst)
	require.NoError(t, err)

	pos := make(map[string]int)
	for i, p := range sorted {
		pos[p.Name] = i
	}
	for _, p := range catalog {
		for _, dep := range p.LocalDependencyNames() {
			assert.Less(t, pos[dep], pos[p.Name], "%s must come before %s", dep, p.Name)
		}
	}
}

func TestSort_ChildrenFollowTypeOrder(t *testing.T) {
	root := pkg("root")
	root.Dependencies.Local.Ensure(domain.DependencyTypePeer).Set("c", "^1.0.0")
	root.Dependencies.Local.Ensure(domain.DependencyTypeDev).Set("b", "^1.0.0")
	root.Dependencies.Local.Ensure(domain.DependencyTypeProd).Set("a", "^1.0.0")

	sorted, err := domain.Sort(domain.Catalog{root, pkg("c"), pkg("b"), pkg("a")}, domain.DependenciesFirst)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "root"}, names(sorted))
}

func TestSort_Empty(t *testing.T) {
	sorted, err := domain.Sort(nil, domain.DependenciesFirst)
	require.NoError(t, err)
	assert.Empty(t, sorted)
}

func TestSort_Cycle(t *testing.T) {
	catalog := domain.Catalog{
		pkg("free"),
		pkg("a", "b"),
		pkg("b", "c"),
		pkg("c", "a"),
	}

	sorted, err := domain.Sort(catalog, domain.DependenciesFirst)
	require.Error(t, err)
	assert.Nil(t, sorted)
	assert.ErrorIs(t, err, domain.ErrCycleDetected)

	var cycleErr *domain.CycleError
	require.True(t, errors.As(err, &cycleErr))
	assert.Equal(t, []string{"a", "b", "c", "a"}, cycleErr.Path)
	assert.Equal(t, "cyclic dependency detected: a -> b -> c -> a", cycleErr.Error())
}

func TestSort_CycleEntersMidPath(t *testing.T) {
	catalog := domain.Catalog{
		pkg("entry", "x"),
		pkg("x", "y"),
		pkg("y", "x"),
	}

	_, err := domain.Sort(catalog, domain.DependenciesFirst)

	var cycleErr *domain.CycleError
	require.ErrorAs(t, err, &cycleErr)
	assert.Equal(t, []string{"x", "y", "x"}, cycleErr.Path)
}

func TestSort_SelfDependency(t *testing.T) {
	_, err := domain.Sort(domain.Catalog{pkg("self", "self")}, domain.DependenciesFirst)

	var cycleErr *domain.CycleError
	require.ErrorAs(t, err, &cycleErr)
	assert.Equal(t, []string{"self", "self"}, cycleErr.Path)
}

func TestGraph_Validate_MissingDependency(t *testing.T) {
	g := domain.NewGraph(domain.Catalog{pkg("a", "ghost")})

	err := g.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingDependency)
}

func TestGraph_Edges(t *testing.T) {
	g := domain.NewGraph(domain.Catalog{pkg("b", "a"), pkg("a"), pkg("c", "a", "b")})

	var edges [][2]string
	for from, to := range g.Edges() {
		edges = append(edges, [2]string{from, to})
	}
	assert.Equal(t, [][2]string{{"b", "a"}, {"c", "a"}, {"c", "b"}}, edges)
	assert.Equal(t, []string{"b", "a", "c"}, g.Names())
}
