// Package domain contains the workspace package model and the pure algorithms of
// the package graph engine: classification, ordering, validation and planning.
package domain

import (
	"iter"
	"slices"
)

// DependencyType identifies one of the dependency sections of a manifest.
type DependencyType string

const (
	// DependencyTypeProd maps to the "dependencies" section.
	DependencyTypeProd DependencyType = "dep"
	// DependencyTypeDev maps to the "devDependencies" section.
	DependencyTypeDev DependencyType = "dev"
	// DependencyTypePeer maps to the "peerDependencies" section.
	DependencyTypePeer DependencyType = "peer"
)

// DependencyTypes returns the dependency types in canonical order.
func DependencyTypes() []DependencyType {
	return []DependencyType{DependencyTypeProd, DependencyTypeDev, DependencyTypePeer}
}

// ManifestKey returns the manifest section holding dependencies of this type.
func (t DependencyType) ManifestKey() string {
	switch t {
	case DependencyTypeDev:
		return "devDependencies"
	case DependencyTypePeer:
		return "peerDependencies"
	default:
		return "dependencies"
	}
}

// DependencyMap is an insertion-ordered mapping of dependency name to version range.
// The zero value is not usable; use NewDependencyMap. Read methods accept a nil receiver.
type DependencyMap struct {
	names  []string
	ranges map[string]string
}

// NewDependencyMap creates an empty DependencyMap.
func NewDependencyMap() *DependencyMap {
	return &DependencyMap{ranges: make(map[string]string)}
}

// Set assigns a range to name. New names are appended, existing ones keep their position.
func (m *DependencyMap) Set(name, versionRange string) {
	if _, ok := m.ranges[name]; !ok {
		m.names = append(m.names, name)
	}
	m.ranges[name] = versionRange
}

// Get returns the range declared for name.
func (m *DependencyMap) Get(name string) (string, bool) {
	if m == nil {
		return "", false
	}
	r, ok := m.ranges[name]
	return r, ok
}

// Delete removes name from the map.
func (m *DependencyMap) Delete(name string) {
	if _, ok := m.ranges[name]; !ok {
		return
	}
	delete(m.ranges, name)
	m.names = slices.DeleteFunc(m.names, func(n string) bool { return n == name })
}

// Len returns the number of entries.
func (m *DependencyMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.names)
}

// Names returns the dependency names in insertion order.
func (m *DependencyMap) Names() []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.names)
}

// All iterates over the entries in insertion order.
func (m *DependencyMap) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if m == nil {
			return
		}
		for _, name := range m.names {
			if !yield(name, m.ranges[name]) {
				return
			}
		}
	}
}

// Clone returns a deep copy.
func (m *DependencyMap) Clone() *DependencyMap {
	c := NewDependencyMap()
	for name, r := range m.All() {
		c.Set(name, r)
	}
	return c
}

// DependencySet groups dependency maps by type. Types without entries are absent.
type DependencySet map[DependencyType]*DependencyMap

// Ensure returns the map for t, creating it when missing.
func (s DependencySet) Ensure(t DependencyType) *DependencyMap {
	m, ok := s[t]
	if !ok {
		m = NewDependencyMap()
		s[t] = m
	}
	return m
}

// Names returns the union of dependency names across types, in type order
// dep, dev, peer and insertion order within a type.
func (s DependencySet) Names() []string {
	var names []string
	seen := make(map[string]struct{})
	for _, t := range DependencyTypes() {
		for name := range s[t].All() {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}

// Clone returns a deep copy.
func (s DependencySet) Clone() DependencySet {
	c := make(DependencySet, len(s))
	for t, m := range s {
		c[t] = m.Clone()
	}
	return c
}

// prune drops empty types.
func (s DependencySet) prune() {
	for t, m := range s {
		if m.Len() == 0 {
			delete(s, t)
		}
	}
}

// PackageDependencies holds the classified dependencies of a package.
type PackageDependencies struct {
	// Local references other packages of the same catalog.
	Local DependencySet
	// External references registry packages.
	External DependencySet
}

// Package is one workspace sub-package, as read from its manifest.
type Package struct {
	// Name is the manifest "name".
	Name string

	// DirName is the directory name under the packages root.
	DirName string

	// Version is the manifest "version".
	Version string

	// Private mirrors the manifest "private" flag.
	Private bool

	// Scripts are the manifest scripts by name.
	Scripts map[string]string

	// Dependencies are the declared dependencies. Before classification every
	// declared dependency sits in External.
	Dependencies PackageDependencies
}

// NewPackage creates a Package with empty dependency sets.
func NewPackage(name, dirName, version string) *Package {
	return &Package{
		Name:    name,
		DirName: dirName,
		Version: version,
		Scripts: make(map[string]string),
		Dependencies: PackageDependencies{
			Local:    make(DependencySet),
			External: make(DependencySet),
		},
	}
}

// LocalDependencyNames returns the names of every local dependency, deduplicated,
// in type order dep, dev, peer. This is the children list of the package's graph node.
func (p *Package) LocalDependencyNames() []string {
	return p.Dependencies.Local.Names()
}

// HasScript reports whether the manifest defines the named script.
func (p *Package) HasScript(name string) bool {
	_, ok := p.Scripts[name]
	return ok
}
