package render

import (
	"github.com/yaklabco/mdview/pkg/mdspan"
)

// Theme holds the colors and glyphs a render pass applies. Geometry (indent
// width) is expressed in space-widths of the active metrics.
type Theme struct {
	// Text is the default foreground for body text.
	Text mdspan.Color
	// Link colors link spans.
	Link mdspan.Color
	// Code colors inline code and fenced code lines.
	Code mdspan.Color
	// Quote colors normal blockquote text and its gutter bar.
	Quote mdspan.Color
	// Bullet colors list bullet glyphs.
	Bullet mdspan.Color

	// Alerts holds the accent color per blockquote alert subtype, indexed by
	// mdspan.Alert. The AlertNormal slot is unused.
	Alerts [6]mdspan.Color

	// Glyphs prefixed to list items. TaskDone and TaskPending replace the
	// plain bullet on checkbox items.
	BulletGlyph      rune
	TaskDoneGlyph    rune
	TaskPendingGlyph rune

	// QuoteBar is the gutter glyph drawn before each blockquote line.
	QuoteBar rune

	// IndentWidth is the number of space-widths per list nesting level.
	IndentWidth int
}

// AlertColor returns the accent color for an alert subtype, falling back to
// the quote color for the normal subtype.
func (t *Theme) AlertColor(a mdspan.Alert) mdspan.Color {
	if a == mdspan.AlertNormal || int(a) >= len(t.Alerts) {
		return t.Quote
	}
	return t.Alerts[a]
}

// DefaultTheme returns the stock theme. Alert accents follow the GitHub
// palette.
func DefaultTheme() *Theme {
	return &Theme{
		Text:   mdspan.Color{R: 0xE6, G: 0xE6, B: 0xE6},
		Link:   mdspan.Color{R: 9, G: 105, B: 218},
		Code:   mdspan.Color{R: 200, G: 0, B: 0},
		Quote:  mdspan.Color{R: 0x8B, G: 0x94, B: 0x9E},
		Bullet: mdspan.Color{R: 0x8B, G: 0x94, B: 0x9E},
		Alerts: [6]mdspan.Color{
			mdspan.AlertNote:      {R: 31, G: 111, B: 235},
			mdspan.AlertTip:       {R: 26, G: 127, B: 55},
			mdspan.AlertImportant: {R: 130, G: 80, B: 223},
			mdspan.AlertWarning:   {R: 154, G: 103, B: 0},
			mdspan.AlertCaution:   {R: 207, G: 34, B: 46},
		},
		BulletGlyph:      '•',
		TaskDoneGlyph:    '■',
		TaskPendingGlyph: '□',
		QuoteBar:         '▌',
		IndentWidth:      2,
	}
}
