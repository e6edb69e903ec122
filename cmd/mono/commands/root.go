// Package commands implements the CLI commands for the mono workspace tool.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/mono/internal/app"
	"go.trai.ch/mono/internal/build"
)

// CLI represents the command line interface for mono.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "mono",
		Short:         "Manage the packages of a JavaScript monorepo",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show debug logs and package manager output")

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		c.app.SetVerbose(verbose)
	}

	rootCmd.AddCommand(
		c.newInstallCmd(),
		c.newLinkCmd(),
		c.newCleanCmd(),
		c.newRunCmd(),
		c.newVersionCmd(),
		c.newPublishCmd(),
		c.newValidateCmd(),
		c.newCreateCmd(),
		c.newInitCmd(),
		c.newListCmd(),
		c.newGraphCmd(),
	)

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

func addPackagesFlag(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("packages", "p", nil, "Packages to filter")
}

func packagesFlag(cmd *cobra.Command) []string {
	packages, _ := cmd.Flags().GetStringSlice("packages")
	return packages
}
