package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdview/pkg/config"
	"github.com/yaklabco/mdview/pkg/mdspan"
)

func TestNewConfig_Validates(t *testing.T) {
	cfg := config.NewConfig()
	require.NoError(t, cfg.Validate())

	th, err := cfg.Theme()
	require.NoError(t, err)
	assert.Equal(t, mdspan.Color{R: 200, G: 0, B: 0}, th.Code)
	assert.Equal(t, '•', th.BulletGlyph)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"bad color", func(c *config.Config) { c.Colors.Link = "blue" }},
		{"bad alert color", func(c *config.Config) { c.Colors.Alerts.Tip = "#12345" }},
		{"empty glyph", func(c *config.Config) { c.Glyphs.Bullet = "" }},
		{"multi rune glyph", func(c *config.Config) { c.Glyphs.QuoteBar = ">>" }},
		{"zero indent", func(c *config.Config) { c.Layout.IndentWidth = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())

			_, err := cfg.Theme()
			assert.Error(t, err)
		})
	}
}

func TestFromYAML_PartialOverride(t *testing.T) {
	cfg, err := config.FromYAML([]byte("colors:\n  link: \"#FF00FF\"\n"))
	require.NoError(t, err)

	th, err := cfg.Theme()
	require.NoError(t, err)
	assert.Equal(t, mdspan.Color{R: 0xFF, B: 0xFF}, th.Link)
	// Untouched fields keep their stock values.
	assert.Equal(t, config.NewConfig().Colors.Code, cfg.Colors.Code)
}

func TestFromYAML_Invalid(t *testing.T) {
	_, err := config.FromYAML([]byte("colors: [not a map"))
	assert.Error(t, err)
}

func TestYAMLRoundTrip(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Colors.Text = "#102030"
	cfg.Glyphs.Bullet = "-"
	cfg.Layout.IndentWidth = 4

	data, err := cfg.ToYAML()
	require.NoError(t, err)

	back, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestToYAMLWithHeader(t *testing.T) {
	data, err := config.NewConfig().ToYAMLWithHeader("# mdview theme")
	require.NoError(t, err)
	assert.Contains(t, string(data), "# mdview theme\n\n")
	assert.Contains(t, string(data), "colors:")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layout:\n  indent_width: 3\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Layout.IndentWidth)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("colors:\n  text: nope\n"), 0o644))
	_, err = config.Load(bad)
	assert.Error(t, err)
}
