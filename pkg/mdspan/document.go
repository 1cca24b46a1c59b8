package mdspan

// Document bundles the display buffer and every annotation array produced by
// one parse call. All spans index into Display by rune offset. Each slice is
// insertion-ordered by ascending Start as encountered during extraction.
//
// A render pass mutates Link.Rects in place; Document is otherwise immutable
// after construction. It is not safe to render the same Document from two
// goroutines without external serialization.
type Document struct {
	// Display is the markup-stripped text all spans index into.
	Display string

	Links       []Link
	Headings    []Heading
	Styles      []Style
	ListItems   []ListItem
	Blockquotes []Blockquote
	ColorTags   []ColorTag
	FontTags    []FontTag
}

// LinkAt returns the URL of the first link whose rendered rectangles contain
// the point. Valid only after a render pass at the layout the point refers to.
func (d *Document) LinkAt(p Point) (string, bool) {
	for i := range d.Links {
		for _, r := range d.Links[i].Rects {
			if r.Contains(p) {
				return d.Links[i].URL, true
			}
		}
	}
	return "", false
}

// LinkIndexAt returns the index of the first link covering the rune offset.
func (d *Document) LinkIndexAt(pos int) (int, bool) {
	for i := range d.Links {
		if d.Links[i].Contains(pos) {
			return i, true
		}
	}
	return 0, false
}

// HeadingAt returns the index of the first heading covering the rune offset.
func (d *Document) HeadingAt(pos int) (int, bool) {
	for i := range d.Headings {
		if d.Headings[i].Contains(pos) {
			return i, true
		}
	}
	return 0, false
}

// StyleAt returns the index of the first style covering the rune offset.
// Several styles may cover one offset; use StylesAt to union them.
func (d *Document) StyleAt(pos int) (int, bool) {
	for i := range d.Styles {
		if d.Styles[i].Contains(pos) {
			return i, true
		}
	}
	return 0, false
}

// StylesAt appends the indices of every style covering the rune offset to
// dst and returns the result. dst may be nil.
func (d *Document) StylesAt(pos int, dst []int) []int {
	for i := range d.Styles {
		if d.Styles[i].Contains(pos) {
			dst = append(dst, i)
		}
	}
	return dst
}

// ListItemAt returns the index of the first list item covering the rune offset.
func (d *Document) ListItemAt(pos int) (int, bool) {
	for i := range d.ListItems {
		if d.ListItems[i].Contains(pos) {
			return i, true
		}
	}
	return 0, false
}

// BlockquoteAt returns the index of the first blockquote covering the rune offset.
func (d *Document) BlockquoteAt(pos int) (int, bool) {
	for i := range d.Blockquotes {
		if d.Blockquotes[i].Contains(pos) {
			return i, true
		}
	}
	return 0, false
}

// ColorTagAt returns the index of the first color tag covering the rune offset.
func (d *Document) ColorTagAt(pos int) (int, bool) {
	for i := range d.ColorTags {
		if d.ColorTags[i].Contains(pos) {
			return i, true
		}
	}
	return 0, false
}

// FontTagAt returns the index of the first font tag covering the rune offset.
func (d *Document) FontTagAt(pos int) (int, bool) {
	for i := range d.FontTags {
		if d.FontTags[i].Contains(pos) {
			return i, true
		}
	}
	return 0, false
}
