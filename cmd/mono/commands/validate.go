package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/mono/internal/app"
)

func (c *CLI) newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the packages of the workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			versionMatch, _ := cmd.Flags().GetBool("version-match")
			if !versionMatch {
				_ = cmd.Help()
				return nil
			}
			skip, _ := cmd.Flags().GetStringSlice("skip")
			return c.app.Validate(cmd.Context(), app.ValidateOptions{
				Packages: packagesFlag(cmd),
				Skip:     skip,
			})
		},
	}
	addPackagesFlag(cmd)
	cmd.Flags().Bool("version-match", false, "Check that dependencies share one version range")
	cmd.Flags().StringSlice("skip", nil, "Dependencies ignored by the version check")
	return cmd
}
