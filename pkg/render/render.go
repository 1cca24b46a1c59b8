// Package render lays out and paints a parsed document onto an abstract
// drawing surface in one pass: word wrapping, style resolution, block
// prefixes, and link hit rectangles all come out of the same walk. Measuring
// runs the identical walk against a null surface, so measured and painted
// heights always agree exactly.
package render

import (
	"github.com/yaklabco/mdview/pkg/mdspan"
)

// CellStyle is the resolved style for one painted rune.
type CellStyle struct {
	Bold      bool
	Italic    bool
	Strike    bool
	Underline bool
	Code      bool

	// HeadingLevel is 1-4 inside a heading span, 0 for body text. Surfaces
	// with scalable fonts size the glyph by it.
	HeadingLevel int

	// Fg is the foreground color when HasFg is set; otherwise the surface
	// default applies.
	Fg    mdspan.Color
	HasFg bool

	// Family is a requested font family substitution, best effort. Empty
	// means the surface default.
	Family string
}

// Surface receives paint commands. Coordinates are in the units of the
// Metrics that drives the layout; painting outside the target rectangle is
// the surface's problem to clip.
type Surface interface {
	SetCell(x, y int, r rune, style CellStyle)
}

// Metrics supplies glyph geometry. A terminal reports cell counts (line
// height 1 regardless of level); a pixel surface reports pixels and may grow
// lines for headings.
type Metrics interface {
	// RuneWidth returns the advance width of a rune.
	RuneWidth(r rune) int
	// LineHeight returns the line height for a heading level, with 0
	// meaning body text. Level 1 is the largest.
	LineHeight(headingLevel int) int
}

// Render paints the document into area and returns the total height used.
// Link rectangles are rebuilt as a side effect: each link gets one rectangle
// per visual line it occupies, replacing whatever a previous render left.
//
// Render is not reentrant on the same document; concurrent calls race on the
// link rectangles.
func Render(s Surface, m Metrics, doc *mdspan.Document, area mdspan.Rect, th *Theme) int {
	w := &walker{surf: s, met: m, doc: doc, area: area, th: th, links: true}
	return w.walk()
}

// MeasureHeight runs the full layout without painting and returns the height
// Render would use for the same inputs. Link rectangles are left untouched.
func MeasureHeight(m Metrics, doc *mdspan.Document, area mdspan.Rect, th *Theme) int {
	w := &walker{surf: nopSurface{}, met: m, doc: doc, area: area, th: th}
	return w.walk()
}

type nopSurface struct{}

func (nopSurface) SetCell(int, int, rune, CellStyle) {}

type walker struct {
	surf  Surface
	met   Metrics
	doc   *mdspan.Document
	area  mdspan.Rect
	th    *Theme
	links bool // rebuild link rectangles

	runes []rune
	x, y  int
	lineH int

	// contIndent is where soft-wrapped continuations of the current logical
	// line resume.
	contIndent int

	curLink  int
	rectLeft int

	styleIdx []int
}

func (w *walker) walk() int {
	if w.doc == nil || w.th == nil {
		return 0
	}
	if w.links {
		for i := range w.doc.Links {
			w.doc.Links[i].Rects = nil
		}
	}

	w.runes = []rune(w.doc.Display)
	w.x = w.area.Left
	w.y = w.area.Top
	w.contIndent = w.area.Left
	w.curLink = -1

	for pos := 0; pos < len(w.runes); pos++ {
		if pos == 0 || w.runes[pos-1] == '\n' {
			w.beginLine(pos)
		}

		r := w.runes[pos]
		if r == '\n' {
			w.flushLinkRect()
			w.newline(w.area.Left)
			continue
		}

		if w.wordStart(pos) {
			width := w.wordWidth(pos)
			if w.x > w.contIndent && w.x+width > w.area.Right {
				w.flushLinkRect()
				w.newline(w.contIndent)
			}
		}

		w.drawRune(pos, r)
	}

	w.flushLinkRect()
	if w.x > w.contIndent || w.lineH > 0 {
		w.growLine(0)
		w.y += w.lineH
	}
	return w.y - w.area.Top
}

// beginLine draws the block prefix for the logical line starting at pos and
// establishes where soft-wrapped continuations resume.
func (w *walker) beginLine(pos int) {
	w.x = w.area.Left
	w.contIndent = w.area.Left
	space := w.met.RuneWidth(' ')

	if i, ok := w.doc.ListItemAt(pos); ok {
		li := w.doc.ListItems[i]
		w.x += li.Indent * w.th.IndentWidth * space

		glyph := w.th.BulletGlyph
		if li.Task {
			if li.Checked {
				glyph = w.th.TaskDoneGlyph
			} else {
				glyph = w.th.TaskPendingGlyph
			}
		}
		w.growLine(0)
		w.surf.SetCell(w.x, w.y, glyph, CellStyle{Fg: w.th.Bullet, HasFg: true})
		w.x += w.met.RuneWidth(glyph) + space
		w.contIndent = w.x
		return
	}

	if i, ok := w.doc.BlockquoteAt(pos); ok {
		q := w.doc.Blockquotes[i]
		accent := w.th.AlertColor(q.Alert)

		w.growLine(0)
		w.surf.SetCell(w.x, w.y, w.th.QuoteBar, CellStyle{Fg: accent, HasFg: true})
		w.x += w.met.RuneWidth(w.th.QuoteBar) + space

		// Alert label on the record's first line only.
		if q.Alert != mdspan.AlertNormal && pos == q.Start {
			st := CellStyle{Bold: true, Fg: accent, HasFg: true}
			for _, r := range q.Alert.String() {
				w.surf.SetCell(w.x, w.y, r, st)
				w.x += w.met.RuneWidth(r)
			}
			w.x += space
		}
		w.contIndent = w.x
	}
}

func (w *walker) drawRune(pos int, r rune) {
	st, link := w.styleAt(pos)
	w.growLine(st.HeadingLevel)

	if w.links && link != w.curLink {
		w.flushLinkRect()
		if link >= 0 {
			w.curLink = link
			w.rectLeft = w.x
		}
	}

	w.surf.SetCell(w.x, w.y, r, st)
	w.x += w.met.RuneWidth(r)
}

// styleAt resolves the combined style for the rune at pos and the index of
// the link covering it, or -1. Color precedence: body, quote accent, code,
// link, color tag gradient.
func (w *walker) styleAt(pos int) (CellStyle, int) {
	st := CellStyle{Fg: w.th.Text, HasFg: true}

	if i, ok := w.doc.HeadingAt(pos); ok {
		st.HeadingLevel = w.doc.Headings[i].Level
		st.Bold = true
	}
	if i, ok := w.doc.BlockquoteAt(pos); ok {
		st.Italic = true
		st.Fg = w.th.AlertColor(w.doc.Blockquotes[i].Alert)
	}

	w.styleIdx = w.doc.StylesAt(pos, w.styleIdx[:0])
	for _, i := range w.styleIdx {
		switch w.doc.Styles[i].Kind {
		case mdspan.StyleItalic:
			st.Italic = true
		case mdspan.StyleBold:
			st.Bold = true
		case mdspan.StyleBoldItalic:
			st.Bold = true
			st.Italic = true
		case mdspan.StyleCode:
			st.Code = true
			st.Fg = w.th.Code
		case mdspan.StyleStrikethrough:
			st.Strike = true
		}
	}

	link := -1
	if i, ok := w.doc.LinkIndexAt(pos); ok {
		link = i
		st.Underline = true
		st.Fg = w.th.Link
	}
	if i, ok := w.doc.ColorTagAt(pos); ok {
		st.Fg = w.doc.ColorTags[i].GradientAt(pos)
	}
	if i, ok := w.doc.FontTagAt(pos); ok {
		st.Family = w.doc.FontTags[i].Family
	}
	return st, link
}

// flushLinkRect closes the accumulating rectangle for the current link, one
// per visual line.
func (w *walker) flushLinkRect() {
	if !w.links || w.curLink < 0 {
		w.curLink = -1
		return
	}
	h := w.lineH
	if h == 0 {
		h = w.met.LineHeight(0)
	}
	if w.x > w.rectLeft {
		l := &w.doc.Links[w.curLink]
		l.Rects = append(l.Rects, mdspan.Rect{
			Left:   w.rectLeft,
			Top:    w.y,
			Right:  w.x,
			Bottom: w.y + h,
		})
	}
	w.curLink = -1
}

// newline advances to the next visual line. Lines that painted nothing still
// take the body line height.
func (w *walker) newline(indent int) {
	if w.lineH == 0 {
		w.lineH = w.met.LineHeight(0)
	}
	w.y += w.lineH
	w.lineH = 0
	w.x = indent
}

// growLine raises the current line height to fit a glyph of the given
// heading level.
func (w *walker) growLine(level int) {
	if h := w.met.LineHeight(level); h > w.lineH {
		w.lineH = h
	}
}

// wordStart reports whether pos begins a wrappable word.
func (w *walker) wordStart(pos int) bool {
	r := w.runes[pos]
	if r == ' ' || r == '\t' {
		return false
	}
	if pos == 0 {
		return true
	}
	prev := w.runes[pos-1]
	return prev == ' ' || prev == '\t' || prev == '\n'
}

// wordWidth measures the word starting at pos. A word wider than the whole
// drawing width is still placed on one line, unbroken.
func (w *walker) wordWidth(pos int) int {
	width := 0
	for i := pos; i < len(w.runes); i++ {
		r := w.runes[i]
		if r == ' ' || r == '\t' || r == '\n' {
			break
		}
		width += w.met.RuneWidth(r)
	}
	return width
}
