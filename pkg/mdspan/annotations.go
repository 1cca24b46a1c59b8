package mdspan

// Bounds on kind-specific payloads.
const (
	// MaxColorStops is the maximum number of gradient stops in a color tag.
	MaxColorStops = 8

	// MaxFontFamilyLen is the maximum length of a font tag's family name in
	// runes. Longer names are truncated during extraction.
	MaxFontFamilyLen = 63
)

// StyleKind classifies an inline style span.
type StyleKind uint8

// Style kinds, exactly one per Style record. Overlapping requests produce
// separate records; a rune offset may be covered by several of them.
const (
	StyleNone StyleKind = iota
	StyleItalic
	StyleBold
	StyleBoldItalic
	StyleCode
	StyleStrikethrough
)

// String returns the lowercase name of the style kind.
func (k StyleKind) String() string {
	switch k {
	case StyleItalic:
		return "italic"
	case StyleBold:
		return "bold"
	case StyleBoldItalic:
		return "bold-italic"
	case StyleCode:
		return "code"
	case StyleStrikethrough:
		return "strikethrough"
	default:
		return "none"
	}
}

// Alert classifies a blockquote's GitHub-style alert subtype.
type Alert uint8

// Alert subtypes, derived from a leading [!TYPE] marker after '>'.
const (
	AlertNormal Alert = iota
	AlertNote
	AlertTip
	AlertImportant
	AlertWarning
	AlertCaution
)

// String returns the uppercase marker name of the alert subtype, or "" for a
// normal blockquote.
func (a Alert) String() string {
	switch a {
	case AlertNote:
		return "NOTE"
	case AlertTip:
		return "TIP"
	case AlertImportant:
		return "IMPORTANT"
	case AlertWarning:
		return "WARNING"
	case AlertCaution:
		return "CAUTION"
	default:
		return ""
	}
}

// Link is a [text](url) annotation. Rects is populated by a render pass, one
// rectangle per visual line the link occupies, and is only valid for the
// layout the most recent render used.
type Link struct {
	Span
	Text  string
	URL   string
	Rects []Rect
}

// Heading is a #-prefixed heading annotation. Level is 1-4; level 1 renders
// largest.
type Heading struct {
	Span
	Level int
}

// Style is an inline style annotation covering a rune range.
type Style struct {
	Span
	Kind StyleKind
}

// ListItem is a bullet or task list item. Indent is the nesting level derived
// from leading whitespace. Task marks a checkbox item; Checked is true only
// for completed ones.
type ListItem struct {
	Span
	Indent  int
	Task    bool
	Checked bool
}

// Blockquote is a single quoted line. Alert is the subtype when the content
// opened with a [!TYPE] marker.
type Blockquote struct {
	Span
	Alert Alert
}

// ColorTag overrides text color over a span: one stop is a solid color, two
// or more form a gradient sampled by rune position within the span.
type ColorTag struct {
	Span
	Colors []Color
}

// FontTag substitutes the named font family over a span, best effort.
type FontTag struct {
	Span
	Family string
}
