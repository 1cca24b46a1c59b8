package parser

import (
	"github.com/yaklabco/mdview/pkg/mdspan"
)

// extractor drives one forward scan over the raw input. With collect unset it
// only tallies counts; with collect set it also builds the display buffer and
// annotation slices. Both modes run the identical state machine, which is
// what keeps the pre-counted capacities exact.
type extractor struct {
	input   []rune
	pos     int
	collect bool

	display []rune
	cur     int // display length in runes, advances in both modes

	counts Counts
	doc    *mdspan.Document

	// Line-anchored records stay open until the end of their line and are
	// appended on close, so records with no surviving content vanish
	// identically in both modes.
	headingOpen  bool
	headingStart int
	headingLevel int

	itemOpen    bool
	itemStart   int
	itemIndent  int
	itemTask    bool
	itemChecked bool

	quoteOpen  bool
	quoteStart int
	quoteAlert mdspan.Alert
}

// run executes the scan over the whole input.
func (e *extractor) run() {
	atLineStart := true

	for e.pos < len(e.input) {
		if atLineStart {
			// Fences and rules consume whole lines including their
			// terminators, so the scan stays at a line start after them.
			if e.tryFence() {
				continue
			}
			if e.tryHorizontalRule() {
				continue
			}
			if e.tryHeading() || e.tryListItem() || e.tryBlockquote() {
				atLineStart = false
				continue
			}
		}

		r := e.input[e.pos]
		if r == '\n' || r == '\r' {
			e.closeLine()
			e.consumeNewline()
			e.emit('\n')
			atLineStart = true
			continue
		}

		if e.inlineStep() {
			atLineStart = false
			continue
		}

		e.emit(r)
		e.pos++
		atLineStart = false
	}

	e.closeLine()
}

// inlineStep attempts every inline extractor at the current position and
// reports whether one consumed input. First match wins.
func (e *extractor) inlineStep() bool {
	switch e.input[e.pos] {
	case '[':
		return e.tryLink()
	case '`':
		return e.tryCode()
	case '*', '_':
		return e.tryStyle()
	case '~':
		return e.tryStrikethrough()
	case '<':
		return e.tryColorTag() || e.tryFontTag()
	}
	return false
}

// emit appends one rune to the display buffer and advances the display
// position. In counting mode only the position advances.
func (e *extractor) emit(r rune) {
	if e.collect {
		e.display = append(e.display, r)
	}
	e.cur++
}

func (e *extractor) emitRunes(rs []rune) {
	for _, r := range rs {
		e.emit(r)
	}
}

// consumeNewline consumes LF, CR, or CRLF from the input. The caller emits
// the normalized '\n'.
func (e *extractor) consumeNewline() {
	if e.pos < len(e.input) && e.input[e.pos] == '\r' {
		e.pos++
		if e.pos < len(e.input) && e.input[e.pos] == '\n' {
			e.pos++
		}
		return
	}
	if e.pos < len(e.input) && e.input[e.pos] == '\n' {
		e.pos++
	}
}

// closeLine finalizes any open line-anchored records at the current display
// position.
func (e *extractor) closeLine() {
	if e.headingOpen {
		e.addHeading(e.headingStart, e.cur-1, e.headingLevel)
		e.headingOpen = false
	}
	if e.itemOpen {
		e.addListItem(e.itemStart, e.cur-1, e.itemIndent, e.itemTask, e.itemChecked)
		e.itemOpen = false
	}
	if e.quoteOpen {
		e.addBlockquote(e.quoteStart, e.cur-1, e.quoteAlert)
		e.quoteOpen = false
	}
}

// Record appends. Every add skips records with no surviving content so the
// counting and extraction modes always agree.

func (e *extractor) addLink(start, end int, text, url string) {
	if end < start {
		return
	}
	if !e.collect {
		e.counts.Links++
		return
	}
	e.doc.Links = append(e.doc.Links, mdspan.Link{
		Span: mdspan.Span{Start: start, End: end},
		Text: text,
		URL:  url,
	})
}

func (e *extractor) addHeading(start, end, level int) {
	if end < start {
		return
	}
	if !e.collect {
		e.counts.Headings++
		return
	}
	e.doc.Headings = append(e.doc.Headings, mdspan.Heading{
		Span:  mdspan.Span{Start: start, End: end},
		Level: level,
	})
}

func (e *extractor) addStyle(start, end int, kind mdspan.StyleKind) {
	if end < start {
		return
	}
	if !e.collect {
		e.counts.Styles++
		return
	}
	e.doc.Styles = append(e.doc.Styles, mdspan.Style{
		Span: mdspan.Span{Start: start, End: end},
		Kind: kind,
	})
}

func (e *extractor) addListItem(start, end, indent int, task, checked bool) {
	if end < start {
		return
	}
	if !e.collect {
		e.counts.ListItems++
		return
	}
	e.doc.ListItems = append(e.doc.ListItems, mdspan.ListItem{
		Span:    mdspan.Span{Start: start, End: end},
		Indent:  indent,
		Task:    task,
		Checked: checked,
	})
}

func (e *extractor) addBlockquote(start, end int, alert mdspan.Alert) {
	if end < start {
		return
	}
	if !e.collect {
		e.counts.Blockquotes++
		return
	}
	e.doc.Blockquotes = append(e.doc.Blockquotes, mdspan.Blockquote{
		Span:  mdspan.Span{Start: start, End: end},
		Alert: alert,
	})
}

func (e *extractor) addColorTag(start, end int, colors []mdspan.Color) {
	if end < start {
		return
	}
	if !e.collect {
		e.counts.ColorTags++
		return
	}
	e.doc.ColorTags = append(e.doc.ColorTags, mdspan.ColorTag{
		Span:   mdspan.Span{Start: start, End: end},
		Colors: colors,
	})
}

func (e *extractor) addFontTag(start, end int, family string) {
	if end < start {
		return
	}
	if !e.collect {
		e.counts.FontTags++
		return
	}
	e.doc.FontTags = append(e.doc.FontTags, mdspan.FontTag{
		Span:   mdspan.Span{Start: start, End: end},
		Family: family,
	})
}

func isLineSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

// indentWidth returns the visual width of leading whitespace: a space counts
// 1, a tab counts 4. List nesting derives one indent level per 4 columns.
func indentWidth(r rune) int {
	if r == '\t' {
		return 4
	}
	return 1
}
