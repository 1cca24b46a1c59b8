package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/yaklabco/mdview/internal/logging"
	"github.com/yaklabco/mdview/pkg/fsutil"
)

func newExportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Export a Markdown file to HTML",
		Long: `Convert a Markdown file to HTML using a standard GFM pipeline.

The HTML fragment is written to stdout, or to a file with --output.
Extended inline tags such as <color:...> and <font:...> pass through
untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := args[0]

			content, err := fsutil.ReadFile(ctx, path)
			if err != nil {
				return err
			}

			md := goldmark.New(goldmark.WithExtensions(extension.GFM))

			var buf bytes.Buffer
			if err := md.Convert(content, &buf); err != nil {
				return fmt.Errorf("convert %s: %w", path, err)
			}

			if output == "" {
				fmt.Fprint(cmd.OutOrStdout(), buf.String())
				return nil
			}

			if err := fsutil.WriteAtomic(ctx, output, buf.Bytes(), 0); err != nil {
				return err
			}

			logging.FromContext(ctx).Info("exported document",
				logging.FieldInput, path,
				logging.FieldOutput, output,
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path (default: stdout)")

	return cmd
}
