package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdview/internal/ui/pretty"
	"github.com/yaklabco/mdview/pkg/parser"
)

func TestInspectFormatter_Format(t *testing.T) {
	doc, err := parser.Parse([]byte("# Hi\n- [x] done [a](http://x)\n"))
	require.NoError(t, err)

	out := pretty.NewInspectFormatter(pretty.NewStyles(false)).Format(doc)

	assert.Contains(t, out, "headings (1)")
	assert.Contains(t, out, "level=1")
	assert.Contains(t, out, "links (1)")
	assert.Contains(t, out, `url="http://x"`)
	assert.Contains(t, out, "list items (1)")
	assert.Contains(t, out, "checked=true")
	assert.Contains(t, out, "color tags (0)")
}

func TestInspectFormatter_Spans(t *testing.T) {
	doc, err := parser.Parse([]byte("**ab**"))
	require.NoError(t, err)

	out := pretty.NewInspectFormatter(pretty.NewStyles(false)).Format(doc)
	assert.Contains(t, out, "[0,1]")
	assert.Contains(t, out, "bold")
}

func TestInspectFormatter_NilDocument(t *testing.T) {
	out := pretty.NewInspectFormatter(pretty.NewStyles(false)).Format(nil)
	assert.Empty(t, out)
}
