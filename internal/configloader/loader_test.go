package configloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeTheme(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	ctx := context.Background()
	result, err := Load(ctx, LoadOptions{
		WorkingDir:      tmpDir,
		IgnoreUserTheme: true,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config == nil {
		t.Fatal("Load() returned nil config")
	}
	if result.LoadedFrom != "" {
		t.Errorf("LoadedFrom = %q, want empty for defaults", result.LoadedFrom)
	}
	if err := result.Config.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad_ExplicitPath(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "mytheme.yaml")
	writeTheme(t, path, "colors:\n  link: \"#FF00FF\"\n")

	ctx := context.Background()
	result, err := Load(ctx, LoadOptions{ExplicitPath: path})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.LoadedFrom != path {
		t.Errorf("LoadedFrom = %q, want %q", result.LoadedFrom, path)
	}
	if result.Config.Colors.Link != "#FF00FF" {
		t.Errorf("link color = %q, want overridden value", result.Config.Colors.Link)
	}
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, err := Load(ctx, LoadOptions{
		ExplicitPath: filepath.Join(t.TempDir(), "nope.yaml"),
	})
	if err == nil {
		t.Fatal("expected error for missing explicit theme")
	}
}

func TestLoad_ProjectThemeDiscoveredUpward(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	themePath := filepath.Join(tmpDir, ".mdview.yml")
	writeTheme(t, themePath, "colors:\n  code: \"#112233\"\n")

	subDir := filepath.Join(tmpDir, "docs", "guide")
	if err := os.MkdirAll(subDir, 0755); err != nil {
		t.Fatalf("setup: %v", err)
	}

	ctx := context.Background()
	result, err := Load(ctx, LoadOptions{
		WorkingDir:      subDir,
		IgnoreUserTheme: true,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.LoadedFrom != themePath {
		t.Errorf("LoadedFrom = %q, want %q", result.LoadedFrom, themePath)
	}
	if result.Config.Colors.Code != "#112233" {
		t.Errorf("code color = %q, want overridden value", result.Config.Colors.Code)
	}
}

func TestLoad_SearchStopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeTheme(t, filepath.Join(tmpDir, ".mdview.yml"), "")

	// A VCS root between workDir and the theme file blocks discovery.
	repoDir := filepath.Join(tmpDir, "repo")
	if err := os.MkdirAll(filepath.Join(repoDir, ".git"), 0755); err != nil {
		t.Fatalf("setup: %v", err)
	}

	ctx := context.Background()
	result, err := Load(ctx, LoadOptions{
		WorkingDir:      repoDir,
		IgnoreUserTheme: true,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.LoadedFrom != "" {
		t.Errorf("LoadedFrom = %q, want empty past VCS root", result.LoadedFrom)
	}
}

func TestLoad_EnvVariable(t *testing.T) {
	tmpDir := t.TempDir()
	envTheme := filepath.Join(tmpDir, "env-theme.yaml")
	writeTheme(t, envTheme, "colors:\n  text: \"#ABCDEF\"\n")

	// Project theme exists but env takes precedence.
	workDir := filepath.Join(tmpDir, "work")
	writeTheme(t, filepath.Join(workDir, ".mdview.yml"), "colors:\n  text: \"#000000\"\n")

	t.Setenv("MDVIEW_THEME", envTheme)

	ctx := context.Background()
	result, err := Load(ctx, LoadOptions{
		WorkingDir:      workDir,
		IgnoreUserTheme: true,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.LoadedFrom != envTheme {
		t.Errorf("LoadedFrom = %q, want %q", result.LoadedFrom, envTheme)
	}
	if result.Config.Colors.Text != "#ABCDEF" {
		t.Errorf("text color = %q, want env theme value", result.Config.Colors.Text)
	}
}

func TestLoad_UserTheme(t *testing.T) {
	tmpDir := t.TempDir()
	configHome := filepath.Join(tmpDir, "xdg")
	userTheme := filepath.Join(configHome, "mdview", "theme.yaml")
	writeTheme(t, userTheme, "colors:\n  bullet: \"#FFFFFF\"\n")

	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("MDVIEW_THEME", "")

	workDir := filepath.Join(tmpDir, "work")
	if err := os.MkdirAll(workDir, 0755); err != nil {
		t.Fatalf("setup: %v", err)
	}

	ctx := context.Background()
	result, err := Load(ctx, LoadOptions{WorkingDir: workDir})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.LoadedFrom != userTheme {
		t.Errorf("LoadedFrom = %q, want %q", result.LoadedFrom, userTheme)
	}
}

func TestLoad_InvalidThemeFails(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.yaml")
	writeTheme(t, path, "colors:\n  link: \"not-a-color\"\n")

	ctx := context.Background()
	_, err := Load(ctx, LoadOptions{ExplicitPath: path})
	if err == nil {
		t.Fatal("expected error for invalid theme")
	}
}

func TestUserThemePath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")

	got := UserThemePath()
	want := filepath.Join("/tmp/xdg-test", "mdview", "theme.yaml")
	if got != want {
		t.Errorf("UserThemePath() = %q, want %q", got, want)
	}
}
