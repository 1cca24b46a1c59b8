// Package config defines the theme configuration for mdview: colors, glyphs,
// and layout knobs serialized as YAML, resolved into a render.Theme.
package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/yaklabco/mdview/pkg/mdspan"
	"github.com/yaklabco/mdview/pkg/render"
)

// ColorsConfig holds foreground colors as "#RRGGBB" strings.
type ColorsConfig struct {
	Text   string `mapstructure:"text" yaml:"text"`
	Link   string `mapstructure:"link" yaml:"link"`
	Code   string `mapstructure:"code" yaml:"code"`
	Quote  string `mapstructure:"quote" yaml:"quote"`
	Bullet string `mapstructure:"bullet" yaml:"bullet"`

	Alerts AlertColors `mapstructure:"alerts" yaml:"alerts"`
}

// AlertColors holds the accent color per blockquote alert subtype.
type AlertColors struct {
	Note      string `mapstructure:"note" yaml:"note"`
	Tip       string `mapstructure:"tip" yaml:"tip"`
	Important string `mapstructure:"important" yaml:"important"`
	Warning   string `mapstructure:"warning" yaml:"warning"`
	Caution   string `mapstructure:"caution" yaml:"caution"`
}

// GlyphsConfig holds the single-rune glyphs drawn as block prefixes.
type GlyphsConfig struct {
	Bullet      string `mapstructure:"bullet" yaml:"bullet"`
	TaskDone    string `mapstructure:"task_done" yaml:"task_done"`
	TaskPending string `mapstructure:"task_pending" yaml:"task_pending"`
	QuoteBar    string `mapstructure:"quote_bar" yaml:"quote_bar"`
}

// LayoutConfig holds layout knobs.
type LayoutConfig struct {
	// IndentWidth is the number of columns per list nesting level.
	IndentWidth int `mapstructure:"indent_width" yaml:"indent_width"`
}

// Config is the root theme configuration.
type Config struct {
	Colors ColorsConfig `mapstructure:"colors" yaml:"colors"`
	Glyphs GlyphsConfig `mapstructure:"glyphs" yaml:"glyphs"`
	Layout LayoutConfig `mapstructure:"layout" yaml:"layout"`
}

// NewConfig returns a Config mirroring the stock render theme.
func NewConfig() *Config {
	stock := render.DefaultTheme()
	return &Config{
		Colors: ColorsConfig{
			Text:   stock.Text.Hex(),
			Link:   stock.Link.Hex(),
			Code:   stock.Code.Hex(),
			Quote:  stock.Quote.Hex(),
			Bullet: stock.Bullet.Hex(),
			Alerts: AlertColors{
				Note:      stock.Alerts[mdspan.AlertNote].Hex(),
				Tip:       stock.Alerts[mdspan.AlertTip].Hex(),
				Important: stock.Alerts[mdspan.AlertImportant].Hex(),
				Warning:   stock.Alerts[mdspan.AlertWarning].Hex(),
				Caution:   stock.Alerts[mdspan.AlertCaution].Hex(),
			},
		},
		Glyphs: GlyphsConfig{
			Bullet:      string(stock.BulletGlyph),
			TaskDone:    string(stock.TaskDoneGlyph),
			TaskPending: string(stock.TaskPendingGlyph),
			QuoteBar:    string(stock.QuoteBar),
		},
		Layout: LayoutConfig{
			IndentWidth: stock.IndentWidth,
		},
	}
}

// Validate checks every color parses and every glyph is exactly one rune.
func (c *Config) Validate() error {
	colors := map[string]string{
		"colors.text":             c.Colors.Text,
		"colors.link":             c.Colors.Link,
		"colors.code":             c.Colors.Code,
		"colors.quote":            c.Colors.Quote,
		"colors.bullet":           c.Colors.Bullet,
		"colors.alerts.note":      c.Colors.Alerts.Note,
		"colors.alerts.tip":       c.Colors.Alerts.Tip,
		"colors.alerts.important": c.Colors.Alerts.Important,
		"colors.alerts.warning":   c.Colors.Alerts.Warning,
		"colors.alerts.caution":   c.Colors.Alerts.Caution,
	}
	for key, value := range colors {
		if _, err := mdspan.ParseHexColor(value); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}

	glyphs := map[string]string{
		"glyphs.bullet":       c.Glyphs.Bullet,
		"glyphs.task_done":    c.Glyphs.TaskDone,
		"glyphs.task_pending": c.Glyphs.TaskPending,
		"glyphs.quote_bar":    c.Glyphs.QuoteBar,
	}
	for key, value := range glyphs {
		if utf8.RuneCountInString(value) != 1 {
			return fmt.Errorf("%s: want exactly one rune, got %q", key, value)
		}
	}

	if c.Layout.IndentWidth < 1 {
		return fmt.Errorf("layout.indent_width: must be at least 1, got %d", c.Layout.IndentWidth)
	}
	return nil
}

// Theme resolves the configuration into a render theme. The configuration
// must validate first; Theme surfaces the same errors.
func (c *Config) Theme() (*render.Theme, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	th := &render.Theme{
		BulletGlyph:      firstRune(c.Glyphs.Bullet),
		TaskDoneGlyph:    firstRune(c.Glyphs.TaskDone),
		TaskPendingGlyph: firstRune(c.Glyphs.TaskPending),
		QuoteBar:         firstRune(c.Glyphs.QuoteBar),
		IndentWidth:      c.Layout.IndentWidth,
	}

	// Validate already proved these parse.
	th.Text, _ = mdspan.ParseHexColor(c.Colors.Text)
	th.Link, _ = mdspan.ParseHexColor(c.Colors.Link)
	th.Code, _ = mdspan.ParseHexColor(c.Colors.Code)
	th.Quote, _ = mdspan.ParseHexColor(c.Colors.Quote)
	th.Bullet, _ = mdspan.ParseHexColor(c.Colors.Bullet)
	th.Alerts[mdspan.AlertNote], _ = mdspan.ParseHexColor(c.Colors.Alerts.Note)
	th.Alerts[mdspan.AlertTip], _ = mdspan.ParseHexColor(c.Colors.Alerts.Tip)
	th.Alerts[mdspan.AlertImportant], _ = mdspan.ParseHexColor(c.Colors.Alerts.Important)
	th.Alerts[mdspan.AlertWarning], _ = mdspan.ParseHexColor(c.Colors.Alerts.Warning)
	th.Alerts[mdspan.AlertCaution], _ = mdspan.ParseHexColor(c.Colors.Alerts.Caution)

	return th, nil
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
