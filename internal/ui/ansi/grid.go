// Package ansi renders a parsed document to a styled string for
// non-interactive terminal output. A cell grid collects the paint calls of a
// render pass and flushes rows to text, styling runs with lipgloss.
package ansi

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/mdview/pkg/mdspan"
	"github.com/yaklabco/mdview/pkg/render"
)

type cell struct {
	r     rune
	style render.CellStyle
	// cont marks the shadow cell behind a double-width rune.
	cont bool
	set  bool
}

// Grid is a render.Surface over a fixed-width cell matrix. Rows grow on
// demand; cells painted outside the width are clipped.
type Grid struct {
	width int
	color bool
	rows  [][]cell
}

// NewGrid creates a grid clipped to the given width. With color unset, Flush
// emits plain text.
func NewGrid(width int, color bool) *Grid {
	return &Grid{width: width, color: color}
}

// SetCell implements render.Surface.
func (g *Grid) SetCell(x, y int, r rune, style render.CellStyle) {
	if x < 0 || y < 0 || x >= g.width {
		return
	}
	for y >= len(g.rows) {
		g.rows = append(g.rows, make([]cell, g.width))
	}

	row := g.rows[y]
	row[x] = cell{r: r, style: style, set: true}
	if runewidth.RuneWidth(r) == 2 && x+1 < g.width {
		row[x+1] = cell{cont: true, set: true}
	}
}

// Flush renders the grid to a newline-joined string. Unpainted cells inside a
// line become spaces; trailing unpainted cells are dropped.
func (g *Grid) Flush() string {
	var b strings.Builder
	for yi, row := range g.rows {
		if yi > 0 {
			b.WriteByte('\n')
		}
		g.flushRow(&b, row)
	}
	return b.String()
}

func (g *Grid) flushRow(b *strings.Builder, row []cell) {
	last := len(row) - 1
	for last >= 0 && !row[last].set {
		last--
	}

	// Group adjacent same-styled cells into one styled run.
	var run strings.Builder
	var runStyle render.CellStyle
	runOpen := false

	flush := func() {
		if !runOpen {
			return
		}
		b.WriteString(g.styleFor(runStyle).Render(run.String()))
		run.Reset()
		runOpen = false
	}

	for x := 0; x <= last; x++ {
		c := row[x]
		if c.cont {
			continue
		}
		r := c.r
		if !c.set {
			r = ' '
		}
		if !runOpen || c.style != runStyle {
			flush()
			runStyle = c.style
			runOpen = true
		}
		run.WriteRune(r)
	}
	flush()
}

func (g *Grid) styleFor(st render.CellStyle) lipgloss.Style {
	s := lipgloss.NewStyle()
	if !g.color {
		return s
	}
	if st.Bold {
		s = s.Bold(true)
	}
	if st.Italic {
		s = s.Italic(true)
	}
	if st.Strike {
		s = s.Strikethrough(true)
	}
	if st.Underline {
		s = s.Underline(true)
	}
	if st.HasFg {
		s = s.Foreground(lipgloss.Color(st.Fg.Hex()))
	}
	return s
}

// CellMetrics measures in terminal cells: East Asian wide runes take two
// columns, every line is one cell tall regardless of heading level.
type CellMetrics struct{}

// RuneWidth implements render.Metrics.
func (CellMetrics) RuneWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w == 0 {
		w = 1
	}
	return w
}

// LineHeight implements render.Metrics.
func (CellMetrics) LineHeight(int) int { return 1 }

// RenderDocument paints the document at the given width and returns the
// styled text and the height in lines.
func RenderDocument(doc *mdspan.Document, width int, th *render.Theme, color bool) (string, int) {
	if width < 1 {
		width = 1
	}
	grid := NewGrid(width, color)
	area := mdspan.Rect{Left: 0, Top: 0, Right: width, Bottom: 1 << 30}
	height := render.Render(grid, CellMetrics{}, doc, area, th)
	return grid.Flush(), height
}
