// Package mdspan defines the annotation data model produced by the markdown
// parser: position-tagged records over a markup-stripped display buffer, plus
// the geometry types and hit-test queries the renderer and viewer consume.
package mdspan

// Span is an inclusive rune range [Start, End] into a display buffer.
// End is the index of the last covered rune, not one past it.
type Span struct {
	Start int
	End   int
}

// Contains reports whether the rune offset pos falls inside the span.
func (s Span) Contains(pos int) bool {
	return pos >= s.Start && pos <= s.End
}

// Len returns the number of runes the span covers.
func (s Span) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start + 1
}

// Point is a position on a drawing surface (cell or pixel coordinates,
// depending on the surface).
type Point struct {
	X int
	Y int
}

// Rect is a half-open rectangle on a drawing surface: a point is inside when
// Left <= x < Right and Top <= y < Bottom.
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// IsEmpty reports whether the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}
