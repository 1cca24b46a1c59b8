// Package cli provides the Cobra command structure for mdview.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdview/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mdview command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var themePath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "mdview",
		Short: "A single-pass Markdown viewer for the terminal",
		Long: `mdview parses Markdown in a single pass into position-tagged
annotations and renders it in the terminal.

It supports headings, emphasis, inline code, fenced code blocks, task
lists, blockquotes with GitHub-style alerts, links with clickable hit
regions, and inline color gradient and font tags. Themes are plain
YAML files discovered from the project or user configuration.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&themePath, "theme", "", "path to theme file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newViewCommand(&themePath))
	rootCmd.AddCommand(newRenderCommand(&themePath, &color))
	rootCmd.AddCommand(newInspectCommand(&color))
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
