package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nao1215/rstfy/internal/project"
	"github.com/spf13/cobra"
)

//go:embed templates/PROJECT.yaml
var projectTemplate embed.FS

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a PROJECT.yaml with an rstfy block",
		Long: `Init creates a PROJECT.yaml in the current directory.

The generated file includes:
- The rstfy block declaring the report path and title
- Example judge commands with their placeholders
- A commented problems list

Examples:
  # Create PROJECT.yaml in current directory
  rstfy init

  # Create the file at a specific path
  rstfy init -o contest/PROJECT.yaml

  # Force overwrite existing file
  rstfy init -f`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", project.ProjectFile,
		"Output file path for the project definition")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing project definition")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("project definition already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := projectTemplate.ReadFile("templates/PROJECT.yaml")
	if err != nil {
		return fmt.Errorf("failed to read project template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write project definition: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), //nolint:errcheck
		"Created project definition: %s\n\n"+
			"Edit the rstfy block to set the report path and title,\n"+
			"and the judge block to match your judge's commands.\n",
		outputPath)

	return nil
}
