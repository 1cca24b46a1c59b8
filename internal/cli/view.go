package cli

import (
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdview/internal/logging"
	"github.com/yaklabco/mdview/internal/ui/viewer"
)

func newViewCommand(themePath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view FILE",
		Short: "View a Markdown file interactively",
		Long: `Open a Markdown file in an interactive full-screen viewer.

Scroll with the arrow keys, j/k, PgUp/PgDn, Home/End or the mouse
wheel. Click a link to open it in the browser. Quit with q or Esc.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := args[0]

			doc, err := loadDocument(ctx, path)
			if err != nil {
				return err
			}

			th, themeFrom, err := resolveTheme(ctx, *themePath)
			if err != nil {
				return err
			}

			logger := logging.FromContext(ctx)
			logger.Debug("opening viewer",
				logging.FieldPath, path,
				logging.FieldRunes, utf8.RuneCountInString(doc.Display),
				logging.FieldTheme, themeFrom,
			)

			v, err := viewer.New(doc, th)
			if err != nil {
				return err
			}

			return v.Run()
		},
	}

	return cmd
}
