package commands

import "github.com/spf13/cobra"

func (c *CLI) newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Set packages to the root version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Version(cmd.Context(), packagesFlag(cmd))
		},
	}
	addPackagesFlag(cmd)
	return cmd
}
