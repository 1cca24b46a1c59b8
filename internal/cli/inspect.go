package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdview/internal/ui/pretty"
)

func newInspectCommand(color *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Show the annotations extracted from a Markdown file",
		Long: `Parse a Markdown file and print every extracted annotation with its
span in the display text. Useful for debugging themes and checking
how markup maps onto rendered positions.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			styles := pretty.NewStyles(pretty.IsColorEnabled(*color, os.Stdout))
			formatter := pretty.NewInspectFormatter(styles)

			fmt.Fprint(cmd.OutOrStdout(), formatter.Format(doc))
			return nil
		},
	}

	return cmd
}
