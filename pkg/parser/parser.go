// Package parser implements a single-pass markdown extractor. One forward
// scan over the raw input produces a markup-stripped display buffer together
// with position-tagged annotation records (links, headings, inline styles,
// list items, blockquotes, color tags, font tags), each anchored by rune
// offsets into the display buffer.
//
// Parsing is two-phase: a counting pass runs the extraction state machine
// without collecting output to size every annotation slice exactly, then the
// extraction pass fills them. The slices never grow during extraction.
//
// Malformed or unterminated markup is never an error; it degrades to literal
// text in the display buffer.
package parser

import (
	"errors"

	"github.com/yaklabco/mdview/pkg/mdspan"
)

// ErrNilInput is returned by Parse for nil input. An empty (non-nil) input is
// valid and produces an empty document.
var ErrNilInput = errors.New("parser: nil input")

// Counts holds the exact number of annotation records each kind's extraction
// will produce for a given input.
type Counts struct {
	Links       int
	Headings    int
	Styles      int
	ListItems   int
	Blockquotes int
	ColorTags   int
	FontTags    int
}

// Count scans the input once and returns the exact record counts extraction
// would produce. Nil or empty input yields zero counts.
func Count(input []byte) Counts {
	if len(input) == 0 {
		return Counts{}
	}
	e := &extractor{input: []rune(string(input))}
	e.run()
	return e.counts
}

// CountLinks returns the number of link records extraction would produce.
func CountLinks(input []byte) int { return Count(input).Links }

// CountHeadings returns the number of heading records extraction would produce.
func CountHeadings(input []byte) int { return Count(input).Headings }

// CountStyles returns the number of inline style records extraction would produce.
func CountStyles(input []byte) int { return Count(input).Styles }

// CountListItems returns the number of list item records extraction would produce.
func CountListItems(input []byte) int { return Count(input).ListItems }

// CountBlockquotes returns the number of blockquote records extraction would produce.
func CountBlockquotes(input []byte) int { return Count(input).Blockquotes }

// CountColorTags returns the number of color tag records extraction would produce.
func CountColorTags(input []byte) int { return Count(input).ColorTags }

// CountFontTags returns the number of font tag records extraction would produce.
func CountFontTags(input []byte) int { return Count(input).FontTags }

// Parse extracts the display buffer and all annotation records from raw
// markdown input. Nil input returns ErrNilInput; empty input returns an empty
// document. Parse either returns a complete document or an error, never a
// partial result.
func Parse(input []byte) (*mdspan.Document, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	runes := []rune(string(input))

	count := &extractor{input: runes}
	count.run()
	c := count.counts

	e := &extractor{
		input:   runes,
		collect: true,
		display: make([]rune, 0, len(runes)),
		doc: &mdspan.Document{
			Links:       make([]mdspan.Link, 0, c.Links),
			Headings:    make([]mdspan.Heading, 0, c.Headings),
			Styles:      make([]mdspan.Style, 0, c.Styles),
			ListItems:   make([]mdspan.ListItem, 0, c.ListItems),
			Blockquotes: make([]mdspan.Blockquote, 0, c.Blockquotes),
			ColorTags:   make([]mdspan.ColorTag, 0, c.ColorTags),
			FontTags:    make([]mdspan.FontTag, 0, c.FontTags),
		},
	}
	e.run()
	e.doc.Display = string(e.display)

	return e.doc, nil
}
