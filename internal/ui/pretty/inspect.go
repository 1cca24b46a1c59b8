package pretty

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/mdview/pkg/mdspan"
)

// InspectFormatter renders a parsed document's annotation records as styled
// text for the inspect command.
type InspectFormatter struct {
	styles *Styles
}

// NewInspectFormatter creates an inspect formatter.
func NewInspectFormatter(styles *Styles) *InspectFormatter {
	return &InspectFormatter{styles: styles}
}

// Format renders the summary counts followed by one section per annotation
// kind that has records.
func (f *InspectFormatter) Format(doc *mdspan.Document) string {
	if doc == nil {
		return ""
	}

	var b strings.Builder

	runes := utf8.RuneCountInString(doc.Display)
	lines := strings.Count(doc.Display, "\n") + 1
	if doc.Display == "" {
		lines = 0
	}
	b.WriteString(f.styles.Title.Render(
		fmt.Sprintf("document: %d runes, %d lines", runes, lines)))
	b.WriteString("\n\n")

	f.section(&b, "links", len(doc.Links), func(i int) (mdspan.Span, string) {
		l := doc.Links[i]
		return l.Span, fmt.Sprintf("text=%q url=%q", l.Text, l.URL)
	})
	f.section(&b, "headings", len(doc.Headings), func(i int) (mdspan.Span, string) {
		h := doc.Headings[i]
		return h.Span, fmt.Sprintf("level=%d", h.Level)
	})
	f.section(&b, "styles", len(doc.Styles), func(i int) (mdspan.Span, string) {
		s := doc.Styles[i]
		return s.Span, s.Kind.String()
	})
	f.section(&b, "list items", len(doc.ListItems), func(i int) (mdspan.Span, string) {
		li := doc.ListItems[i]
		detail := fmt.Sprintf("indent=%d", li.Indent)
		if li.Task {
			detail += fmt.Sprintf(" checked=%t", li.Checked)
		}
		return li.Span, detail
	})
	f.section(&b, "blockquotes", len(doc.Blockquotes), func(i int) (mdspan.Span, string) {
		q := doc.Blockquotes[i]
		if q.Alert == mdspan.AlertNormal {
			return q.Span, "plain"
		}
		return q.Span, q.Alert.String()
	})
	f.section(&b, "color tags", len(doc.ColorTags), func(i int) (mdspan.Span, string) {
		t := doc.ColorTags[i]
		stops := make([]string, len(t.Colors))
		for j, c := range t.Colors {
			stops[j] = c.Hex()
		}
		return t.Span, strings.Join(stops, " -> ")
	})
	f.section(&b, "font tags", len(doc.FontTags), func(i int) (mdspan.Span, string) {
		t := doc.FontTags[i]
		return t.Span, fmt.Sprintf("family=%q", t.Family)
	})

	return b.String()
}

func (f *InspectFormatter) section(b *strings.Builder, kind string, n int, row func(int) (mdspan.Span, string)) {
	header := fmt.Sprintf("%s (%d)", kind, n)
	if n == 0 {
		b.WriteString(f.styles.Dim.Render(header))
		b.WriteString("\n")
		return
	}

	b.WriteString(f.styles.KindHeader.Render(header))
	b.WriteString("\n")
	for i := 0; i < n; i++ {
		span, detail := row(i)
		b.WriteString("  ")
		b.WriteString(f.styles.Span.Render(fmt.Sprintf("[%d,%d]", span.Start, span.End)))
		b.WriteString("  ")
		b.WriteString(f.styles.Detail.Render(detail))
		b.WriteString("\n")
	}
}
