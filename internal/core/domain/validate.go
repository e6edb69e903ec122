package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// DependencyOccurrence is one declaration of an external dependency by a package.
type DependencyOccurrence struct {
	Version string
	Type    DependencyType
	Package string
}

// VersionConflictError reports an external dependency declared with more than
// one distinct version range.
type VersionConflictError struct {
	Dependency  string
	Occurrences []DependencyOccurrence
}

// Error renders every occurrence on its own line, the version column padded to
// the widest range of the group and the type column to four characters.
func (e *VersionConflictError) Error() string {
	width := lo.Max(lo.Map(e.Occurrences, func(o DependencyOccurrence, _ int) int { return utf8.RuneCountInString(o.Version) }))

	var b strings.Builder
	b.WriteString(e.Dependency)
	b.WriteString(" has conflicting versions at")
	for _, o := range e.Occurrences {
		fmt.Fprintf(&b, "\n%-*s - %-4s - %s", width, o.Version, o.Type, o.Package)
	}
	return b.String()
}

// Unwrap returns ErrVersionConflict.
func (e *VersionConflictError) Unwrap() error {
	return ErrVersionConflict
}

// CheckVersionsMatch verifies that every external dependency of the filtered
// packages is declared with a single version range. Dependencies named in skip
// are ignored. Only the first conflicting dependency, in first-encountered
// order, is reported.
func CheckVersionsMatch(catalog Catalog, filters, skip []string) error {
	var order []string
	groups := make(map[string][]DependencyOccurrence)

	for _, pkg := range catalog.Filter(filters) {
		for _, t := range DependencyTypes() {
			for name, r := range pkg.Dependencies.External[t].All() {
				if lo.Contains(skip, name) {
					continue
				}
				if _, ok := groups[name]; !ok {
					order = append(order, name)
				}
				groups[name] = append(groups[name], DependencyOccurrence{Version: r, Type: t, Package: pkg.Name})
			}
		}
	}

	for _, name := range order {
		occurrences := groups[name]
		distinct := lo.UniqBy(occurrences, func(o DependencyOccurrence) string { return o.Version })
		if len(distinct) > 1 {
			return &VersionConflictError{Dependency: name, Occurrences: occurrences}
		}
	}
	return nil
}
