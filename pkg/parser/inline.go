package parser

import (
	"github.com/yaklabco/mdview/pkg/mdspan"
)

// Inline extraction. Every try* either consumes a complete, well-formed
// construct and reports true, or consumes nothing and reports false so the
// main loop echoes the trigger rune literally. Inline constructs never cross
// a line break.

// tryLink consumes [text](url) or [text](url "title"). The text is emitted
// with style markers stripped (nested style records survive at their display
// positions), the url ends at the first space or quote, and an optional
// quoted title is discarded. Links with empty text or an empty url keep
// their text but produce no link record.
func (e *extractor) tryLink() bool {
	textStart := e.pos + 1
	textEnd := textStart
	for textEnd < len(e.input) && e.input[textEnd] != ']' &&
		e.input[textEnd] != '\n' && e.input[textEnd] != '\r' {
		textEnd++
	}
	if textEnd >= len(e.input) || e.input[textEnd] != ']' {
		return false
	}
	if textEnd+1 >= len(e.input) || e.input[textEnd+1] != '(' {
		return false
	}

	j := textEnd + 2
	for j < len(e.input) && e.input[j] == ' ' {
		j++
	}

	urlStart := j
	for j < len(e.input) && e.input[j] != ')' && e.input[j] != ' ' &&
		e.input[j] != '"' && e.input[j] != '\n' && e.input[j] != '\r' {
		j++
	}
	urlEnd := j

	for j < len(e.input) && e.input[j] == ' ' {
		j++
	}
	if j < len(e.input) && e.input[j] == '"' {
		j++
		for j < len(e.input) && e.input[j] != '"' &&
			e.input[j] != '\n' && e.input[j] != '\r' {
			j++
		}
		if j >= len(e.input) || e.input[j] != '"' {
			return false
		}
		j++
		for j < len(e.input) && e.input[j] == ' ' {
			j++
		}
	}
	if j >= len(e.input) || e.input[j] != ')' {
		return false
	}

	start := e.cur
	stripped := e.emitStripped(e.input[textStart:textEnd])
	url := string(e.input[urlStart:urlEnd])
	if url != "" {
		e.addLink(start, e.cur-1, string(stripped), url)
	}
	e.pos = j + 1
	return true
}

// tryCode consumes `code` with non-empty content, copied verbatim.
func (e *extractor) tryCode() bool {
	j := e.pos + 1
	for j < len(e.input) && e.input[j] != '`' &&
		e.input[j] != '\n' && e.input[j] != '\r' {
		j++
	}
	if j >= len(e.input) || e.input[j] != '`' || j == e.pos+1 {
		return false
	}

	start := e.cur
	e.emitRunes(e.input[e.pos+1 : j])
	e.addStyle(start, e.cur-1, mdspan.StyleCode)
	e.pos = j + 1
	return true
}

// tryStyle consumes *italic*, **bold**, or ***bold italic*** (underscores
// work the same). The opening run must not be followed by a space, and the
// closing run must repeat the opener exactly. Without a matching close the
// marker stays literal.
func (e *extractor) tryStyle() bool {
	marker := e.input[e.pos]
	runLen := 0
	for e.pos+runLen < len(e.input) && e.input[e.pos+runLen] == marker && runLen < 3 {
		runLen++
	}

	contentStart := e.pos + runLen
	if contentStart >= len(e.input) || e.input[contentStart] == ' ' ||
		e.input[contentStart] == '\n' || e.input[contentStart] == '\r' {
		return false
	}

	close := e.findStyleClose(marker, runLen, contentStart)
	if close < 0 {
		return false
	}

	var kind mdspan.StyleKind
	switch runLen {
	case 1:
		kind = mdspan.StyleItalic
	case 2:
		kind = mdspan.StyleBold
	default:
		kind = mdspan.StyleBoldItalic
	}

	start := e.cur
	e.emitRunes(e.input[contentStart:close])
	e.addStyle(start, e.cur-1, kind)
	e.pos = close + runLen
	return true
}

// findStyleClose scans the rest of the line for a marker run of exactly
// runLen and returns its start, or -1.
func (e *extractor) findStyleClose(marker rune, runLen, from int) int {
	j := from
	for j < len(e.input) && e.input[j] != '\n' && e.input[j] != '\r' {
		if e.input[j] != marker {
			j++
			continue
		}
		runStart := j
		for j < len(e.input) && e.input[j] == marker {
			j++
		}
		if j-runStart == runLen && runStart > from {
			return runStart
		}
	}
	return -1
}

// tryStrikethrough consumes ~~text~~ with non-empty content.
func (e *extractor) tryStrikethrough() bool {
	if e.pos+1 >= len(e.input) || e.input[e.pos+1] != '~' {
		return false
	}

	contentStart := e.pos + 2
	j := contentStart
	for j+1 < len(e.input) && e.input[j] != '\n' && e.input[j] != '\r' {
		if e.input[j] == '~' && e.input[j+1] == '~' {
			break
		}
		j++
	}
	if j+1 >= len(e.input) || e.input[j] != '~' || e.input[j+1] != '~' || j == contentStart {
		return false
	}

	start := e.cur
	e.emitRunes(e.input[contentStart:j])
	e.addStyle(start, e.cur-1, mdspan.StyleStrikethrough)
	e.pos = j + 2
	return true
}

// tryColorTag consumes <color:#RRGGBB[_#RRGGBB...]>text</color> with one to
// eight stops. The text is emitted with style markers stripped and the tag
// span records the gradient stops. Malformed tags stay literal.
func (e *extractor) tryColorTag() bool {
	j, ok := e.matchKeyword(e.pos+1, "color:")
	if !ok {
		return false
	}

	var colors []mdspan.Color
	for {
		if len(colors) >= mdspan.MaxColorStops {
			return false
		}
		if j+6 >= len(e.input) || e.input[j] != '#' {
			return false
		}
		c, err := mdspan.ParseHexColor(string(e.input[j : j+7]))
		if err != nil {
			return false
		}
		colors = append(colors, c)
		j += 7
		if j < len(e.input) && e.input[j] == '_' {
			j++
			continue
		}
		break
	}
	if j >= len(e.input) || e.input[j] != '>' {
		return false
	}

	contentStart := j + 1
	contentEnd, after, ok := e.findCloseTag(contentStart, "</color>")
	if !ok {
		return false
	}

	start := e.cur
	e.emitStripped(e.input[contentStart:contentEnd])
	e.addColorTag(start, e.cur-1, colors)
	e.pos = after
	return true
}

// tryFontTag consumes <font:Family Name>text</font>. The family name may
// contain spaces and is truncated to the maximum stored length.
func (e *extractor) tryFontTag() bool {
	j, ok := e.matchKeyword(e.pos+1, "font:")
	if !ok {
		return false
	}

	nameStart := j
	for j < len(e.input) && e.input[j] != '>' &&
		e.input[j] != '<' && e.input[j] != '\n' && e.input[j] != '\r' {
		j++
	}
	if j >= len(e.input) || e.input[j] != '>' || j == nameStart {
		return false
	}

	family := e.input[nameStart:j]
	if len(family) > mdspan.MaxFontFamilyLen {
		family = family[:mdspan.MaxFontFamilyLen]
	}

	contentStart := j + 1
	contentEnd, after, ok := e.findCloseTag(contentStart, "</font>")
	if !ok {
		return false
	}

	start := e.cur
	e.emitStripped(e.input[contentStart:contentEnd])
	e.addFontTag(start, e.cur-1, string(family))
	e.pos = after
	return true
}

// matchKeyword matches a literal ASCII keyword at from and returns the
// position past it.
func (e *extractor) matchKeyword(from int, kw string) (int, bool) {
	if from+len(kw) > len(e.input) {
		return 0, false
	}
	for i, r := range kw {
		if e.input[from+i] != r {
			return 0, false
		}
	}
	return from + len(kw), true
}

// findCloseTag scans the rest of the line for a literal closing tag and
// returns the content end and the position past the tag.
func (e *extractor) findCloseTag(from int, tag string) (end, after int, ok bool) {
	for j := from; j < len(e.input) && e.input[j] != '\n' && e.input[j] != '\r'; j++ {
		if _, hit := e.matchKeyword(j, tag); hit {
			return j, j + len(tag), true
		}
	}
	return 0, 0, false
}

// emitStripped copies text into the display buffer with style markers
// removed. Marker runs toggle their style on and off; a close appends the
// style record at the display positions the content landed on. Unbalanced
// markers are still stripped but leave no record. The stripped runes are
// returned for callers that keep a copy of the text.
func (e *extractor) emitStripped(text []rune) []rune {
	var stripped []rune

	type toggle struct {
		open  bool
		start int
	}
	var italic, bold, boldItalic, strike toggle

	flip := func(t *toggle, kind mdspan.StyleKind) {
		if t.open {
			e.addStyle(t.start, e.cur-1, kind)
			t.open = false
			return
		}
		t.open = true
		t.start = e.cur
	}

	i := 0
	for i < len(text) {
		r := text[i]
		switch r {
		case '*', '_':
			runLen := 0
			for i+runLen < len(text) && text[i+runLen] == r && runLen < 3 {
				runLen++
			}
			switch runLen {
			case 3:
				flip(&boldItalic, mdspan.StyleBoldItalic)
			case 2:
				flip(&bold, mdspan.StyleBold)
			default:
				flip(&italic, mdspan.StyleItalic)
			}
			i += runLen
		case '~':
			if i+1 < len(text) && text[i+1] == '~' {
				flip(&strike, mdspan.StyleStrikethrough)
				i += 2
				continue
			}
			e.emit(r)
			stripped = append(stripped, r)
			i++
		default:
			e.emit(r)
			stripped = append(stripped, r)
			i++
		}
	}

	return stripped
}
