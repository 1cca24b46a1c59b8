package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/mdview/internal/logging"
	"github.com/yaklabco/mdview/internal/ui/ansi"
	"github.com/yaklabco/mdview/internal/ui/pretty"
)

// defaultRenderWidth is used when stdout is not a terminal.
const defaultRenderWidth = 80

func newRenderCommand(themePath, color *string) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a Markdown file to stdout",
		Long: `Render a Markdown file as styled text to stdout.

The output width defaults to the terminal width, or 80 columns when
stdout is not a terminal. Colors follow the --color flag and the
NO_COLOR convention.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := args[0]

			doc, err := loadDocument(ctx, path)
			if err != nil {
				return err
			}

			th, _, err := resolveTheme(ctx, *themePath)
			if err != nil {
				return err
			}

			if width <= 0 {
				width = detectWidth()
			}

			colorEnabled := pretty.IsColorEnabled(*color, os.Stdout)
			out, height := ansi.RenderDocument(doc, width, th, colorEnabled)

			logger := logging.FromContext(ctx)
			logger.Debug("rendered document",
				logging.FieldPath, path,
				logging.FieldWidth, width,
				logging.FieldHeight, height,
			)

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 0,
		"output width in columns (default: terminal width)")

	return cmd
}

// detectWidth returns the terminal width of stdout, or defaultRenderWidth
// when stdout is not a terminal.
func detectWidth() int {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return defaultRenderWidth
	}

	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultRenderWidth
	}
	return w
}
