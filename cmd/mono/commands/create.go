package commands

import "github.com/spf13/cobra"

func (c *CLI) newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <dir>",
		Short: "Create a package in the packages directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Create(cmd.Context(), args[0])
		},
	}
}
