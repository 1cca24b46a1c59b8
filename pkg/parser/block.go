package parser

import (
	"github.com/yaklabco/mdview/pkg/mdspan"
)

// Block-level dispatch. Each try* is invoked only at the start of a logical
// line, in priority order: fence, horizontal rule, heading, list item,
// blockquote. All tolerate leading indentation before the marker.

const maxHeadingLevel = 4

// tryFence handles a fenced code block: an opening line whose first
// non-indentation content is a run of three or more backticks or tildes,
// content lines copied verbatim with one code style record per non-empty
// line, and a closing line of at least as many fence runes. An unterminated
// fence consumes to end of input.
func (e *extractor) tryFence() bool {
	j := e.pos
	for j < len(e.input) && isLineSpace(e.input[j]) {
		j++
	}
	if j >= len(e.input) || (e.input[j] != '`' && e.input[j] != '~') {
		return false
	}

	fenceChar := e.input[j]
	runLen := 0
	for j < len(e.input) && e.input[j] == fenceChar {
		j++
		runLen++
	}
	if runLen < 3 {
		return false
	}

	// Rest of the opening line is the info string; it is discarded.
	e.pos = j
	e.skipToLineEnd()
	e.consumeNewline()

	for e.pos < len(e.input) {
		if e.consumeCloseFence(fenceChar, runLen) {
			return true
		}
		e.copyCodeLine()
	}

	return true
}

// consumeCloseFence consumes a valid closing fence line (up to three leading
// spaces, at least fenceLen fence runes, trailing whitespace only) and
// reports whether it did.
func (e *extractor) consumeCloseFence(fenceChar rune, fenceLen int) bool {
	j := e.pos
	spaces := 0
	for j < len(e.input) && e.input[j] == ' ' && spaces < 3 {
		j++
		spaces++
	}

	runLen := 0
	for j < len(e.input) && e.input[j] == fenceChar {
		j++
		runLen++
	}
	if runLen < fenceLen {
		return false
	}

	for j < len(e.input) && e.input[j] != '\n' && e.input[j] != '\r' {
		if !isLineSpace(e.input[j]) {
			return false
		}
		j++
	}

	e.pos = j
	e.consumeNewline()
	return true
}

// copyCodeLine copies one code block content line verbatim, annotating its
// content as a code style span.
func (e *extractor) copyCodeLine() {
	start := e.cur
	for e.pos < len(e.input) && e.input[e.pos] != '\n' && e.input[e.pos] != '\r' {
		e.emit(e.input[e.pos])
		e.pos++
	}
	e.addStyle(start, e.cur-1, mdspan.StyleCode)

	if e.pos < len(e.input) {
		e.consumeNewline()
		e.emit('\n')
	}
}

// tryHorizontalRule consumes a line consisting solely of three or more
// repeated '-', '*', or '_' runes (spaces between them allowed). The line
// and its terminator vanish: no text, no record.
func (e *extractor) tryHorizontalRule() bool {
	j := e.pos
	for j < len(e.input) && isLineSpace(e.input[j]) {
		j++
	}
	if j >= len(e.input) {
		return false
	}

	marker := e.input[j]
	if marker != '-' && marker != '*' && marker != '_' {
		return false
	}

	count := 0
	for j < len(e.input) && e.input[j] != '\n' && e.input[j] != '\r' {
		switch {
		case e.input[j] == marker:
			count++
		case e.input[j] == ' ':
		default:
			return false
		}
		j++
	}
	if count < 3 {
		return false
	}

	e.pos = j
	e.consumeNewline()
	return true
}

// tryHeading opens a heading for '#'×1-4 followed by a space. Five or more
// hashes are not a heading and fall through to literal text.
func (e *extractor) tryHeading() bool {
	j := e.pos
	for j < len(e.input) && isLineSpace(e.input[j]) {
		j++
	}

	level := 0
	for j < len(e.input) && e.input[j] == '#' && level < maxHeadingLevel {
		j++
		level++
	}
	if level == 0 || j >= len(e.input) || e.input[j] != ' ' {
		return false
	}

	e.pos = j + 1
	e.headingOpen = true
	e.headingStart = e.cur
	e.headingLevel = level
	return true
}

// tryListItem opens a list item for '-' or '*' followed by a space, with
// leading whitespace determining the indent level (one level per four
// columns; tabs count four). A '- [x] ', '- [X] ', or '- [ ] ' prefix marks
// a task item. Markers and indentation are consumed, not echoed.
func (e *extractor) tryListItem() bool {
	j := e.pos
	width := 0
	for j < len(e.input) && isLineSpace(e.input[j]) {
		width += indentWidth(e.input[j])
		j++
	}
	if j+1 >= len(e.input) || (e.input[j] != '-' && e.input[j] != '*') || e.input[j+1] != ' ' {
		return false
	}

	e.pos = j + 2
	e.itemOpen = true
	e.itemStart = e.cur
	e.itemIndent = width / 4
	e.itemTask = false
	e.itemChecked = false

	// Task checkbox: "[x] ", "[X] ", or "[ ] " immediately after the marker.
	if e.pos+3 < len(e.input) && e.input[e.pos] == '[' &&
		e.input[e.pos+2] == ']' && e.input[e.pos+3] == ' ' {
		switch e.input[e.pos+1] {
		case 'x', 'X':
			e.itemTask = true
			e.itemChecked = true
			e.pos += 4
		case ' ':
			e.itemTask = true
			e.pos += 4
		}
	}

	return true
}

var alertNames = []struct {
	name  string
	alert mdspan.Alert
}{
	{"NOTE", mdspan.AlertNote},
	{"TIP", mdspan.AlertTip},
	{"IMPORTANT", mdspan.AlertImportant},
	{"WARNING", mdspan.AlertWarning},
	{"CAUTION", mdspan.AlertCaution},
}

// tryBlockquote opens a blockquote for '>' with an optional following space.
// A leading [!TYPE] marker (case-sensitive) sets the alert subtype and is
// stripped; when the marker sits alone on its line the following line's '> '
// continuation prefix is absorbed so the quote content stays in one record.
func (e *extractor) tryBlockquote() bool {
	j := e.pos
	for j < len(e.input) && isLineSpace(e.input[j]) {
		j++
	}
	if j >= len(e.input) || e.input[j] != '>' {
		return false
	}

	e.pos = j + 1
	if e.pos < len(e.input) && e.input[e.pos] == ' ' {
		e.pos++
	}

	alert := mdspan.AlertNormal
	if a, ok := e.consumeAlertMarker(); ok {
		alert = a
	}

	e.quoteOpen = true
	e.quoteStart = e.cur
	e.quoteAlert = alert
	return true
}

// consumeAlertMarker consumes a [!TYPE] marker at the current position and
// returns its subtype. Unknown or malformed markers consume nothing and the
// bracket text stays literal.
func (e *extractor) consumeAlertMarker() (mdspan.Alert, bool) {
	if e.pos+1 >= len(e.input) || e.input[e.pos] != '[' || e.input[e.pos+1] != '!' {
		return mdspan.AlertNormal, false
	}

	nameStart := e.pos + 2
	nameEnd := nameStart
	for nameEnd < len(e.input) && e.input[nameEnd] != ']' &&
		e.input[nameEnd] != '\n' && e.input[nameEnd] != '\r' {
		nameEnd++
	}
	if nameEnd >= len(e.input) || e.input[nameEnd] != ']' {
		return mdspan.AlertNormal, false
	}

	name := string(e.input[nameStart:nameEnd])
	for _, a := range alertNames {
		if name == a.name {
			e.pos = nameEnd + 1
			e.skipAlertContinuation()
			return a.alert, true
		}
	}
	return mdspan.AlertNormal, false
}

// skipAlertContinuation absorbs whitespace after a [!TYPE] marker and, when
// the marker sat alone on its line, the line break plus the next line's '> '
// prefix.
func (e *extractor) skipAlertContinuation() {
	for e.pos < len(e.input) && e.input[e.pos] == ' ' {
		e.pos++
	}
	if e.pos >= len(e.input) || (e.input[e.pos] != '\n' && e.input[e.pos] != '\r') {
		return
	}
	e.consumeNewline()
	if e.pos+1 < len(e.input) && e.input[e.pos] == '>' && e.input[e.pos+1] == ' ' {
		e.pos += 2
	}
}

// skipToLineEnd advances to the next line terminator without emitting.
func (e *extractor) skipToLineEnd() {
	for e.pos < len(e.input) && e.input[e.pos] != '\n' && e.input[e.pos] != '\r' {
		e.pos++
	}
}
