package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdview/internal/configloader"
	"github.com/yaklabco/mdview/internal/logging"
	"github.com/yaklabco/mdview/pkg/config"
	"github.com/yaklabco/mdview/pkg/fsutil"
)

// themeFileHeader is written at the top of generated theme files.
const themeFileHeader = `# mdview theme file.
# All colors are #RRGGBB hex strings. Omitted keys keep their defaults.`

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default theme file",
		Long: `Create a theme file populated with the built-in defaults.

By default the file is written to the user configuration directory
($XDG_CONFIG_HOME/mdview/theme.yaml). Pass --output to write a
project theme instead.

Examples:
  mdview init                     Create the user theme file
  mdview init --output .mdview.yml  Create a project theme file`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd.Context(), flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing theme file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: user theme path)")

	return cmd
}

func runInit(ctx context.Context, flags *initFlags) error {
	logger := logging.FromContext(ctx)

	outputPath := flags.output
	if outputPath == "" {
		outputPath = configloader.UserThemePath()
		if outputPath == "" {
			return fmt.Errorf("cannot determine user config directory; use --output")
		}
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	content, err := config.NewConfig().ToYAMLWithHeader(themeFileHeader)
	if err != nil {
		return fmt.Errorf("generate theme: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	if err := fsutil.WriteAtomic(ctx, absPath, content, 0); err != nil {
		return err
	}

	logger.Info("created theme file", logging.FieldPath, outputPath)
	logger.Info("customize colors and glyphs by editing the file")

	return nil
}
