package domain

import (
	"github.com/samber/lo"
)

// Catalog is the ordered collection of packages of a workspace, in directory
// scan order. It is not deduplicated by name.
type Catalog []*Package

// Names returns the package names in catalog order.
func (c Catalog) Names() []string {
	return lo.Map(c, func(p *Package, _ int) string { return p.Name })
}

// Index maps package names to packages. When names are duplicated the last
// package in catalog order wins.
func (c Catalog) Index() map[string]*Package {
	return lo.KeyBy(c, func(p *Package) string { return p.Name })
}

// Lookup returns the package with the given name.
func (c Catalog) Lookup(name string) (*Package, bool) {
	p, ok := c.Index()[name]
	return p, ok
}

// Filter returns the packages whose names appear in filters, in catalog order.
// An empty filter list selects every package.
func (c Catalog) Filter(filters []string) Catalog {
	if len(filters) == 0 {
		return c
	}
	return lo.Filter(c, func(p *Package, _ int) bool {
		return lo.Contains(filters, p.Name)
	})
}

// Duplicates returns names declared by more than one package, in first-seen order.
func (c Catalog) Duplicates() []string {
	counts := lo.CountValuesBy(c, func(p *Package) string { return p.Name })
	return lo.Uniq(lo.Filter(c.Names(), func(name string, _ int) bool {
		return counts[name] > 1
	}))
}

// Classify splits every package's declared dependencies into local and external.
// A dependency is local iff its name equals the name of a catalog package.
// Types left without entries are dropped. Classify is idempotent.
func (c Catalog) Classify() {
	names := lo.SliceToMap(c, func(p *Package) (string, struct{}) { return p.Name, struct{}{} })

	for _, pkg := range c {
		local := make(DependencySet)
		external := make(DependencySet)
		for _, t := range DependencyTypes() {
			for _, set := range []DependencySet{pkg.Dependencies.Local, pkg.Dependencies.External} {
				for name, r := range set[t].All() {
					if _, ok := names[name]; ok {
						local.Ensure(t).Set(name, r)
					} else {
						external.Ensure(t).Set(name, r)
					}
				}
			}
		}
		local.prune()
		external.prune()
		pkg.Dependencies = PackageDependencies{Local: local, External: external}
	}
}
