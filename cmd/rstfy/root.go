package main

import (
	"os"

	"github.com/nao1215/rstfy/internal/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for rstfy.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rstfy",
		Short: "Generate a reStructuredText report of a problem-set project",
		Long: `rstfy evaluates every problem of a project with the configured judge
and writes a reStructuredText section summarizing the results.

The report path and title are declared by the rstfy block of PROJECT.yaml.
Use "rstfy init" to create a PROJECT.yaml that contains one.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write diagnostic logs as JSON")

	// Add subcommands
	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		log.NewConsole(os.Stdout, os.Stderr).PrintError(err.Error())
		os.Exit(1)
	}
}
