// Package configloader resolves the active theme configuration.
// It implements XDG-compliant theme file discovery with a simple
// precedence chain: explicit flag, environment variable, project
// file, user file, built-in defaults.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/mdview/pkg/config"
)

// LoadOptions controls theme loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for a project theme.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit theme file path (from --theme flag).
	// If set, discovery is skipped and the file must exist.
	ExplicitPath string

	// IgnoreProjectTheme skips project-level theme discovery.
	IgnoreProjectTheme bool

	// IgnoreUserTheme skips user-level theme discovery.
	IgnoreUserTheme bool
}

// LoadResult contains the resolved theme and metadata.
type LoadResult struct {
	// Config is the resolved theme configuration.
	Config *config.Config

	// Paths contains the discovered theme file paths.
	Paths *ThemePaths

	// LoadedFrom is the file that was actually loaded, or empty
	// string when the built-in defaults were used.
	LoadedFrom string
}

// Load resolves the active theme. Exactly one source wins, by
// precedence (highest to lowest):
//  1. Explicit path (--theme flag)
//  2. MDVIEW_THEME environment variable
//  3. Project theme (.mdview.{yml,yaml}, searched upward)
//  4. User theme ($XDG_CONFIG_HOME/mdview/theme.{yaml,yml})
//  5. Built-in defaults
//
// Theme files overlay the defaults, so a partial file only needs
// the keys it changes.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	if opts.ExplicitPath != "" {
		if _, err := os.Stat(opts.ExplicitPath); err != nil {
			return nil, fmt.Errorf("theme file %s: %w", opts.ExplicitPath, err)
		}

		cfg, err := config.Load(opts.ExplicitPath)
		if err != nil {
			return nil, err
		}

		return &LoadResult{
			Config:     cfg,
			Paths:      &ThemePaths{Explicit: opts.ExplicitPath},
			LoadedFrom: opts.ExplicitPath,
		}, nil
	}

	paths, err := DiscoverPaths(ctx, opts.WorkingDir)
	if err != nil {
		return nil, err
	}

	if opts.IgnoreProjectTheme {
		paths.Project = ""
	}
	if opts.IgnoreUserTheme {
		paths.User = ""
	}

	path := paths.First()
	if path == "" {
		return &LoadResult{Config: config.NewConfig(), Paths: paths}, nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	return &LoadResult{Config: cfg, Paths: paths, LoadedFrom: path}, nil
}
