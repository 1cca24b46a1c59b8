package viewer

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/yaklabco/mdview/pkg/parser"
	"github.com/yaklabco/mdview/pkg/render"
)

func newTestViewer(t *testing.T, content string, w, h int) (*Viewer, tcell.SimulationScreen) {
	t.Helper()

	scr := tcell.NewSimulationScreen("")
	if err := scr.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(scr.Fini)
	scr.SetSize(w, h)

	doc, err := parser.Parse([]byte(content))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return NewWithScreen(scr, doc, render.DefaultTheme()), scr
}

func screenRow(scr tcell.SimulationScreen, y int) string {
	cells, w, _ := scr.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) > 0 {
			b.WriteRune(c.Runes[0])
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func TestDraw_PaintsDocument(t *testing.T) {
	v, scr := newTestViewer(t, "hello\n- item", 40, 10)
	v.draw()

	if got := screenRow(scr, 0); got != "hello" {
		t.Errorf("row 0 = %q, want %q", got, "hello")
	}
	if got := screenRow(scr, 1); got != "• item" {
		t.Errorf("row 1 = %q, want %q", got, "• item")
	}
}

func TestClickOpensLink(t *testing.T) {
	v, _ := newTestViewer(t, "go [here](http://x) now", 40, 10)
	v.draw()

	var opened []string
	v.openURL = func(url string) error {
		opened = append(opened, url)
		return nil
	}

	// "here" occupies columns 3-6 on row 0.
	v.handleMouse(tcell.NewEventMouse(4, 0, tcell.Button1, tcell.ModNone))
	if len(opened) != 1 || opened[0] != "http://x" {
		t.Fatalf("opened = %v, want one http://x", opened)
	}

	v.handleMouse(tcell.NewEventMouse(20, 0, tcell.Button1, tcell.ModNone))
	if len(opened) != 1 {
		t.Errorf("click outside link opened %v", opened[1:])
	}
}

func TestClickAccountsForScroll(t *testing.T) {
	lines := strings.Repeat("filler\n", 20) + "[end](http://end)"
	v, _ := newTestViewer(t, lines, 40, 5)
	v.draw()
	v.scrollTo(v.maxScroll())

	var opened []string
	v.openURL = func(url string) error {
		opened = append(opened, url)
		return nil
	}

	// The link sits on document row 20; with 21 rows in a 5-row screen the
	// viewport bottom shows it at screen row 20 - maxScroll.
	row := 20 - v.maxScroll()
	v.handleMouse(tcell.NewEventMouse(0, row, tcell.Button1, tcell.ModNone))
	if len(opened) != 1 || opened[0] != "http://end" {
		t.Fatalf("opened = %v, want http://end", opened)
	}
}

func TestScrollClamps(t *testing.T) {
	v, _ := newTestViewer(t, strings.Repeat("x\n", 20), 40, 5)
	v.draw()

	v.scrollTo(-5)
	if v.scroll != 0 {
		t.Errorf("scroll = %d, want 0", v.scroll)
	}
	v.scrollTo(1000)
	if v.scroll != v.maxScroll() {
		t.Errorf("scroll = %d, want max %d", v.scroll, v.maxScroll())
	}
}

func TestShortDocumentNeverScrolls(t *testing.T) {
	v, _ := newTestViewer(t, "one line", 40, 10)
	v.draw()

	v.scrollBy(3)
	if v.scroll != 0 {
		t.Errorf("scroll = %d, want 0 for short document", v.scroll)
	}
}

func TestHandleKey(t *testing.T) {
	v, _ := newTestViewer(t, strings.Repeat("x\n", 30), 40, 5)
	v.draw()

	if !v.handleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q should quit")
	}
	if !v.handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("escape should quit")
	}
	if v.handleKey(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)) {
		t.Error("down should not quit")
	}
	if v.scroll != 1 {
		t.Errorf("scroll = %d after down, want 1", v.scroll)
	}

	v.handleKey(tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone))
	if v.scroll != v.maxScroll() {
		t.Errorf("scroll = %d after end, want %d", v.scroll, v.maxScroll())
	}
	v.handleKey(tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone))
	if v.scroll != 0 {
		t.Errorf("scroll = %d after home, want 0", v.scroll)
	}
}
