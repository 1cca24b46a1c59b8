package cli

import (
	"context"
	"fmt"

	"github.com/yaklabco/mdview/internal/configloader"
	"github.com/yaklabco/mdview/pkg/fsutil"
	"github.com/yaklabco/mdview/pkg/mdspan"
	"github.com/yaklabco/mdview/pkg/parser"
	"github.com/yaklabco/mdview/pkg/render"
)

// loadDocument reads and parses a Markdown file.
func loadDocument(ctx context.Context, path string) (*mdspan.Document, error) {
	content, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	doc, err := parser.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return doc, nil
}

// resolveTheme loads the active theme, honoring an explicit --theme path.
// The second return value is the file the theme came from, or empty
// string for built-in defaults.
func resolveTheme(ctx context.Context, explicit string) (*render.Theme, string, error) {
	result, err := configloader.Load(ctx, configloader.LoadOptions{ExplicitPath: explicit})
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrConfig, err)
	}

	th, err := result.Config.Theme()
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrConfig, err)
	}

	return th, result.LoadedFrom, nil
}
