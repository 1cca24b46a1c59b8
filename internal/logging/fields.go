// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldInput  = "input"
	FieldOutput = "output"

	// Document fields.
	FieldBytes       = "bytes"
	FieldRunes       = "runes"
	FieldLinks       = "links"
	FieldHeadings    = "headings"
	FieldStyles      = "styles"
	FieldListItems   = "list_items"
	FieldBlockquotes = "blockquotes"
	FieldColorTags   = "color_tags"
	FieldFontTags    = "font_tags"

	// Render fields.
	FieldWidth  = "width"
	FieldHeight = "height"
	FieldTheme  = "theme"
	FieldURL    = "url"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
