package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/mono/internal/app"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List packages in dependency order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reverse, _ := cmd.Flags().GetBool("reverse")
			return c.app.List(cmd.Context(), app.ListOptions{
				Reverse:  reverse,
				Packages: packagesFlag(cmd),
			})
		},
	}
	addPackagesFlag(cmd)
	cmd.Flags().BoolP("reverse", "r", false, "List dependents before their dependencies")
	return cmd
}

func (c *CLI) newGraphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Print the package graph in DOT format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Graph(cmd.Context())
		},
	}
}
