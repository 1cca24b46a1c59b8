package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ThemePaths represents discovered theme file paths.
type ThemePaths struct {
	// Explicit is a theme path provided via --theme flag.
	Explicit string

	// Env is a theme path provided via the MDVIEW_THEME environment variable.
	Env string

	// Project is the project-level theme path (e.g., ./.mdview.yml).
	Project string

	// User is the user-level theme path (e.g., ~/.config/mdview/theme.yaml).
	User string
}

// First returns the highest-precedence discovered path, or empty string.
func (p *ThemePaths) First() string {
	for _, path := range []string{p.Explicit, p.Env, p.Project, p.User} {
		if path != "" {
			return path
		}
	}
	return ""
}

// projectThemeFiles are the theme file names we search for, in order of preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectThemeFiles = []string{
	".mdview.yml",
	".mdview.yaml",
	"mdview.yml",
	"mdview.yaml",
}

// vcsRootMarkers are directories that indicate a VCS root.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// DiscoverPaths finds theme files in standard locations.
// It searches for:
//   - An MDVIEW_THEME environment variable
//   - A project theme by searching upward from workDir for .mdview.{yml,yaml}
//   - A user theme at $XDG_CONFIG_HOME/mdview/theme.{yaml,yml}
//
// Missing files are represented as empty strings (not errors).
func DiscoverPaths(ctx context.Context, workDir string) (*ThemePaths, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("context cancelled: %w", ctx.Err())
	default:
	}

	paths := &ThemePaths{}

	if env := os.Getenv("MDVIEW_THEME"); env != "" && fileExists(env) {
		paths.Env = env
	}

	projectTheme, err := FindProjectTheme(ctx, workDir)
	if err != nil {
		return nil, err
	}
	paths.Project = projectTheme

	paths.User = findUserTheme()

	return paths, nil
}

// findUserTheme returns the path to the user-level theme file, if it exists.
func findUserTheme() string {
	return findThemeInDir(userConfigDir())
}

// userConfigDir returns the mdview configuration directory for the current user.
func userConfigDir() string {
	if runtime.GOOS == "windows" {
		appData := os.Getenv("AppData")
		if appData == "" {
			return ""
		}
		return filepath.Join(appData, "mdview")
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, "mdview")
}

// UserThemePath returns the default location for the user theme file,
// whether or not it exists. Used by the init command.
func UserThemePath() string {
	dir := userConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "theme.yaml")
}

// findThemeInDir looks for theme files in the given directory.
// Returns the path to the first found file, or empty string if none.
func findThemeInDir(dir string) string {
	if dir == "" {
		return ""
	}
	for _, name := range []string{"theme.yaml", "theme.yml"} {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// FindProjectTheme searches upward from startDir for a project theme file.
// Returns the path to the first theme file found, or empty string if none.
// Stops at filesystem boundaries, VCS roots, or when reaching home.
func FindProjectTheme(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		var err error
		startDir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
	}

	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		// If we can't get home dir, we'll just skip the home boundary check.
		homeDir = ""
	}

	currentDir := absDir
	for {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		for _, name := range projectThemeFiles {
			path := filepath.Join(currentDir, name)
			if fileExists(path) {
				return path, nil
			}
		}

		// Stop at VCS roots so themes never leak across repositories.
		if isVCSRoot(currentDir) {
			return "", nil
		}

		if homeDir != "" && currentDir == homeDir {
			return "", nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached filesystem root
			return "", nil
		}
		currentDir = parentDir
	}
}

// isVCSRoot returns true if the directory contains a VCS root marker.
func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		path := filepath.Join(dir, marker)
		info, err := os.Stat(path)
		if err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
