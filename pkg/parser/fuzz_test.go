package parser

import (
	"testing"
	"unicode/utf8"
)

func FuzzParse(f *testing.F) {
	// Add seed corpus.
	f.Add("")
	f.Add("plain text\n")
	f.Add("# heading **bold** `code`\n")
	f.Add("- [x] done\n    - [ ] pending\n")
	f.Add("> [!CAUTION]\n> danger\n")
	f.Add("[link](http://example.com \"title\") and *em*\n")
	f.Add("<color:#FF0000_#0000FF>grad</color> <font:Mono>x</font>\n")
	f.Add("```go\ncode\n```\n")
	f.Add("***\n~~gone~~\r\nmixed\rendings")
	f.Add("**unterminated\n`also unterminated")

	f.Fuzz(func(t *testing.T, input string) {
		doc, err := Parse([]byte(input))
		if err != nil {
			// Only nil input may fail, and fuzz inputs are never nil.
			t.Fatalf("Parse failed: %v", err)
		}

		// Display never exceeds the input in runes.
		inRunes := utf8.RuneCountInString(input)
		outRunes := utf8.RuneCountInString(doc.Display)
		if outRunes > inRunes {
			t.Errorf("display has %d runes, input has %d", outRunes, inRunes)
		}

		// The count pass must agree with extraction exactly.
		counts := Count([]byte(input))
		if counts.Links != len(doc.Links) ||
			counts.Headings != len(doc.Headings) ||
			counts.Styles != len(doc.Styles) ||
			counts.ListItems != len(doc.ListItems) ||
			counts.Blockquotes != len(doc.Blockquotes) ||
			counts.ColorTags != len(doc.ColorTags) ||
			counts.FontTags != len(doc.FontTags) {
			t.Errorf("counts %+v disagree with extracted document", counts)
		}

		// Every span must lie within the display buffer with start <= end.
		checkSpan := func(kind string, start, end int) {
			if start < 0 || end < start || end >= outRunes {
				t.Errorf("%s span [%d,%d] outside display of %d runes",
					kind, start, end, outRunes)
			}
		}
		for _, l := range doc.Links {
			checkSpan("link", l.Start, l.End)
		}
		for _, h := range doc.Headings {
			checkSpan("heading", h.Start, h.End)
		}
		for _, s := range doc.Styles {
			checkSpan("style", s.Start, s.End)
		}
		for _, li := range doc.ListItems {
			checkSpan("list item", li.Start, li.End)
		}
		for _, q := range doc.Blockquotes {
			checkSpan("blockquote", q.Start, q.End)
		}
		for _, c := range doc.ColorTags {
			checkSpan("color tag", c.Start, c.End)
		}
		for _, ft := range doc.FontTags {
			checkSpan("font tag", ft.Start, ft.End)
		}
	})
}
