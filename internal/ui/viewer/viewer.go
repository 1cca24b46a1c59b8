// Package viewer is the interactive terminal viewer: a scrollable render of
// one parsed document on a tcell screen, with clickable links.
package viewer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/yaklabco/mdview/internal/logging"
	"github.com/yaklabco/mdview/internal/ui/ansi"
	"github.com/yaklabco/mdview/pkg/mdspan"
	"github.com/yaklabco/mdview/pkg/render"
)

// Viewer owns the screen and the scroll state for one document.
type Viewer struct {
	screen tcell.Screen
	doc    *mdspan.Document
	theme  *render.Theme

	scroll    int
	docHeight int

	// openURL is swappable so tests can observe clicks.
	openURL func(string) error
}

// New initializes a tcell screen and a viewer for the document.
func New(doc *mdspan.Document, th *render.Theme) (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	return NewWithScreen(screen, doc, th), nil
}

// NewWithScreen wraps an already initialized screen. The caller keeps
// ownership of Fini when Run is never called.
func NewWithScreen(screen tcell.Screen, doc *mdspan.Document, th *render.Theme) *Viewer {
	return &Viewer{
		screen:  screen,
		doc:     doc,
		theme:   th,
		openURL: OpenURL,
	}
}

// Run draws the document and services events until quit. The screen is
// finalized on return.
func (v *Viewer) Run() error {
	defer v.screen.Fini()

	v.draw()
	for {
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
			v.draw()
		case *tcell.EventKey:
			if v.handleKey(ev) {
				return nil
			}
		case *tcell.EventMouse:
			v.handleMouse(ev)
		case nil:
			return nil
		}
	}
}

// handleKey applies one key event and reports whether the viewer should quit.
func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	_, h := v.screen.Size()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		v.scrollBy(-1)
	case tcell.KeyDown:
		v.scrollBy(1)
	case tcell.KeyPgUp:
		v.scrollBy(-h)
	case tcell.KeyPgDn:
		v.scrollBy(h)
	case tcell.KeyHome:
		v.scrollTo(0)
	case tcell.KeyEnd:
		v.scrollTo(v.maxScroll())
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'k':
			v.scrollBy(-1)
		case 'j':
			v.scrollBy(1)
		case 'g':
			v.scrollTo(0)
		case 'G':
			v.scrollTo(v.maxScroll())
		}
	}
	return false
}

func (v *Viewer) handleMouse(ev *tcell.EventMouse) {
	switch {
	case ev.Buttons()&tcell.Button1 != 0:
		x, y := ev.Position()
		// Link rectangles are in document coordinates.
		if url, ok := v.doc.LinkAt(mdspan.Point{X: x, Y: y + v.scroll}); ok {
			if err := v.openURL(url); err != nil {
				logging.Default().Warn("open link",
					logging.FieldURL, url, logging.FieldError, err)
			}
		}
	case ev.Buttons()&tcell.WheelUp != 0:
		v.scrollBy(-3)
	case ev.Buttons()&tcell.WheelDown != 0:
		v.scrollBy(3)
	}
}

func (v *Viewer) scrollBy(delta int) {
	v.scrollTo(v.scroll + delta)
}

func (v *Viewer) scrollTo(target int) {
	if target > v.maxScroll() {
		target = v.maxScroll()
	}
	if target < 0 {
		target = 0
	}
	if target != v.scroll {
		v.scroll = target
		v.draw()
	}
}

func (v *Viewer) maxScroll() int {
	_, h := v.screen.Size()
	max := v.docHeight - h
	if max < 0 {
		max = 0
	}
	return max
}

// draw renders the whole document through a scroll-translating surface so the
// link rectangles stay in document coordinates across redraws.
func (v *Viewer) draw() {
	v.screen.Clear()
	w, _ := v.screen.Size()

	surf := &screenSurface{screen: v.screen, scroll: v.scroll}
	area := mdspan.Rect{Left: 0, Top: 0, Right: w, Bottom: 1 << 30}
	v.docHeight = render.Render(surf, ansi.CellMetrics{}, v.doc, area, v.theme)

	v.screen.Show()
}

// screenSurface translates document rows to screen rows and clips the rest.
type screenSurface struct {
	screen tcell.Screen
	scroll int
}

func (s *screenSurface) SetCell(x, y int, r rune, st render.CellStyle) {
	row := y - s.scroll
	_, h := s.screen.Size()
	if row < 0 || row >= h {
		return
	}
	s.screen.SetContent(x, row, r, nil, tcellStyle(st))
}

func tcellStyle(st render.CellStyle) tcell.Style {
	style := tcell.StyleDefault.
		Bold(st.Bold).
		Italic(st.Italic).
		StrikeThrough(st.Strike).
		Underline(st.Underline)
	if st.HasFg {
		style = style.Foreground(tcell.NewRGBColor(
			int32(st.Fg.R), int32(st.Fg.G), int32(st.Fg.B)))
	}
	return style
}
