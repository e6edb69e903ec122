package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/mono/internal/app"
	"go.trai.ch/mono/internal/core/domain"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install dependencies and link local packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, _ := cmd.Flags().GetStringSlice("deps")

			save := domain.SaveProd
			for _, t := range []domain.SaveType{domain.SaveDev, domain.SavePeer} {
				if set, _ := cmd.Flags().GetBool(string(t)); set {
					save = t
				}
			}

			return c.app.Install(cmd.Context(), app.InstallOptions{
				Dependencies: deps,
				Save:         save,
				Packages:     packagesFlag(cmd),
			})
		},
	}
	addPackagesFlag(cmd)
	cmd.Flags().StringSliceP("deps", "d", nil, "Dependencies to add")
	cmd.Flags().Bool(string(domain.SaveProd), false, "Record added dependencies under dependencies (default)")
	cmd.Flags().Bool(string(domain.SaveDev), false, "Record added dependencies under devDependencies")
	cmd.Flags().Bool(string(domain.SavePeer), false, "Record added dependencies under peerDependencies")
	cmd.MarkFlagsMutuallyExclusive(string(domain.SaveProd), string(domain.SaveDev), string(domain.SavePeer))
	return cmd
}

func (c *CLI) newLinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "link",
		Short: "Symlink local dependencies into node_modules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Link(cmd.Context())
		},
	}
}
