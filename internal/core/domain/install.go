package domain

import "github.com/samber/lo"

// SaveType is the bucket newly requested dependencies are recorded under.
type SaveType string

const (
	// SaveProd records dependencies under "dependencies".
	SaveProd SaveType = "save"
	// SaveDev records dependencies under "devDependencies".
	SaveDev SaveType = "save-dev"
	// SavePeer records dependencies under "peerDependencies".
	SavePeer SaveType = "save-peer"
)

// DependencyType returns the dependency type the bucket writes to.
func (s SaveType) DependencyType() DependencyType {
	switch s {
	case SaveDev:
		return DependencyTypeDev
	case SavePeer:
		return DependencyTypePeer
	default:
		return DependencyTypeProd
	}
}

// Flag returns the package manager flag selecting the bucket.
func (s SaveType) Flag() string {
	return "--" + string(s)
}

// CommandInstall is the package manager command used by install jobs.
const CommandInstall = "install"

// InstallJob is one planned package manager invocation for one package.
type InstallJob struct {
	Package *Package
	Command string
	Args    []string
}

// PlanInstall plans the install jobs for the filtered packages of catalog.
//
// Requested names matching a catalog package are recorded in memory as local
// dependencies "^version" of every filtered package, under the save bucket.
// The whole catalog is then sorted and a cycle aborts the plan with no jobs.
// Remaining names are installed from the registry.
func PlanInstall(version string, catalog Catalog, requested []string, save SaveType, filters []string) ([]InstallJob, error) {
	filtered := catalog.Filter(filters)

	plain := func() []InstallJob {
		return lo.Map(filtered, func(pkg *Package, _ int) InstallJob {
			return InstallJob{Package: pkg, Command: CommandInstall, Args: []string{}}
		})
	}

	if len(requested) == 0 {
		return plain(), nil
	}

	names := catalog.Index()
	external, local := lo.FilterReject(requested, func(name string, _ int) bool {
		_, ok := names[name]
		return !ok
	})

	var jobs []InstallJob
	if len(local) > 0 {
		depType := save.DependencyType()
		for _, pkg := range filtered {
			deps := pkg.Dependencies.Local.Ensure(depType)
			for _, name := range local {
				deps.Set(name, "^"+version)
			}
		}
		if len(external) == 0 {
			jobs = plain()
		}

		if _, err := Sort(catalog, DependenciesFirst); err != nil {
			return nil, err
		}
	}

	if len(external) > 0 {
		for _, pkg := range filtered {
			args := make([]string, 0, len(external)+1)
			args = append(args, external...)
			args = append(args, save.Flag())
			jobs = append(jobs, InstallJob{Package: pkg, Command: CommandInstall, Args: args})
		}
	}

	return jobs, nil
}
