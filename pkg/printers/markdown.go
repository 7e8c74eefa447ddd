package printers

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	"tableflip.dev/notes/pkg/note"
)

// DefaultStyle is the glamour style used when rendering to a terminal.
const DefaultStyle = "dark"

// Markdown renders src with glamour, word-wrapped to width.
func Markdown(src, style string, width int) (string, error) {
	if style == "" {
		style = DefaultStyle
	}
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}
	return r.Render(src)
}

// Document lays the note out as Markdown: title heading, italic date, then
// the content as written.
func Document(n *note.Note) string {
	doc := "# " + n.Title + "\n\n"
	if n.Date != "" {
		doc += "*" + n.Date + "*\n\n"
	}
	return doc + n.Content + "\n"
}
