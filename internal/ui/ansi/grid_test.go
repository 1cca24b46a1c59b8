package ansi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdview/internal/ui/ansi"
	"github.com/yaklabco/mdview/pkg/parser"
	"github.com/yaklabco/mdview/pkg/render"
)

func renderPlain(t *testing.T, content string, width int) (string, int) {
	t.Helper()
	doc, err := parser.Parse([]byte(content))
	require.NoError(t, err)
	return ansi.RenderDocument(doc, width, render.DefaultTheme(), false)
}

func TestRenderDocument_Plain(t *testing.T) {
	out, height := renderPlain(t, "hello\nworld", 80)
	assert.Equal(t, "hello\nworld", out)
	assert.Equal(t, 2, height)
}

func TestRenderDocument_Wraps(t *testing.T) {
	out, height := renderPlain(t, "aa bb cc", 5)
	assert.Equal(t, "aa bb\ncc", out)
	assert.Equal(t, 2, height)
}

func TestRenderDocument_BulletPrefix(t *testing.T) {
	out, _ := renderPlain(t, "- item", 80)
	assert.Equal(t, "• item", out)
}

func TestRenderDocument_TaskGlyphs(t *testing.T) {
	out, _ := renderPlain(t, "- [x] a\n- [ ] b", 80)
	assert.Equal(t, "■ a\n□ b", out)
}

func TestRenderDocument_AlertLabel(t *testing.T) {
	out, _ := renderPlain(t, "> [!NOTE] hey", 80)
	assert.Equal(t, "▌ NOTE hey", out)
}

func TestRenderDocument_StripsMarkup(t *testing.T) {
	out, _ := renderPlain(t, "**bold** and [x](http://a)", 80)
	assert.Equal(t, "bold and x", out)
}

func TestRenderDocument_ColorAddsEscapes(t *testing.T) {
	doc, err := parser.Parse([]byte("plain"))
	require.NoError(t, err)

	colored, _ := ansi.RenderDocument(doc, 80, render.DefaultTheme(), true)
	plain, _ := ansi.RenderDocument(doc, 80, render.DefaultTheme(), false)
	assert.Equal(t, "plain", plain)
	// In a non-TTY test environment lipgloss may strip colors, so only the
	// plain variant has a guaranteed shape.
	assert.Contains(t, colored, "plain")
}

func TestGrid_ClipsOutsideWidth(t *testing.T) {
	g := ansi.NewGrid(3, false)
	g.SetCell(0, 0, 'a', render.CellStyle{})
	g.SetCell(5, 0, 'x', render.CellStyle{})
	g.SetCell(-1, 0, 'x', render.CellStyle{})
	assert.Equal(t, "a", g.Flush())
}

func TestGrid_GapsBecomeSpaces(t *testing.T) {
	g := ansi.NewGrid(10, false)
	g.SetCell(0, 0, 'a', render.CellStyle{})
	g.SetCell(2, 0, 'b', render.CellStyle{})
	assert.Equal(t, "a b", g.Flush())
}

func TestCellMetrics_WideRunes(t *testing.T) {
	m := ansi.CellMetrics{}
	assert.Equal(t, 1, m.RuneWidth('a'))
	assert.Equal(t, 2, m.RuneWidth('日'))
	assert.Equal(t, 1, m.LineHeight(0))
	assert.Equal(t, 1, m.LineHeight(1))
}
