// Package commands implements the CLI commands for the failed-target
// triage tool.
package commands

import (
	"context"

	"github.com/MOMA-AUH/gwf-failed-targets/internal/app"
	"github.com/MOMA-AUH/gwf-failed-targets/internal/build"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for gwf-failed-targets.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "gwf-failed-targets",
		Short:         "Triage failed workflow targets from scheduler accounting",
		Long: "Correlates failed workflow targets with their scheduler accounting\n" +
			"records, classifies each failure, and optionally resubmits eligible\n" +
			"targets with scaled resources.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			logPath, _ := cmd.Flags().GetString("log-path")
			restart, _ := cmd.Flags().GetBool("restart")
			multiplier, _ := cmd.Flags().GetFloat64("multiplier")
			return a.Run(cmd.Context(), app.RunOptions{
				Dir:        dir,
				LogPath:    logPath,
				Restart:    restart,
				Multiplier: multiplier,
			})
		},
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().StringP("dir", "C", ".", "Workflow project directory")
	rootCmd.Flags().StringP("log-path", "f", "", "Append structured records to this file instead of printing a table")
	rootCmd.Flags().BoolP("restart", "r", false, "Resubmit eligible targets and their dependents")
	rootCmd.Flags().Float64P("multiplier", "m", 1.0, "Scale factor for the resource implicated by each failure")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newVersionCmd())

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
