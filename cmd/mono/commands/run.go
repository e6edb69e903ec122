package commands

import "github.com/spf13/cobra"

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <script> [-- args...]",
		Short: "Run a package script in dependency order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.RunScript(cmd.Context(), args[0], args[1:], packagesFlag(cmd))
		},
	}
	addPackagesFlag(cmd)
	return cmd
}
