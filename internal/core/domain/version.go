package domain

// BumpVersion sets the version of the filtered packages to version, then rewrites
// every local dependency range of the whole catalog to "^" followed by the
// dependency's current version. It returns the bumped packages in catalog order.
func BumpVersion(catalog Catalog, version string, filters []string) Catalog {
	bumped := catalog.Filter(filters)
	for _, pkg := range bumped {
		pkg.Version = version
	}

	index := catalog.Index()
	for _, pkg := range catalog {
		for _, deps := range pkg.Dependencies.Local {
			for _, name := range deps.Names() {
				if dep, ok := index[name]; ok {
					deps.Set(name, "^"+dep.Version)
				}
			}
		}
	}

	return bumped
}
