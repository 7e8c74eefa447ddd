// Package export converts a note into a standalone HTML page.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"io"

	"github.com/fatih/color"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"tableflip.dev/notes/pkg/note"
	"tableflip.dev/notes/pkg/store"
)

// Export writes the note as HTML to Out.
type Export struct {
	Filename string

	Persistence store.Persistence
	Out         io.Writer
}

func (e *Export) Do(_ context.Context) error {
	if e.Persistence == nil {
		return errors.New("failed to create persistence object")
	}
	out := e.Out
	if out == nil {
		out = color.Output
	}

	n, err := e.Persistence.Load(e.Filename)
	if err != nil {
		return err
	}
	page, err := HTML(n)
	if err != nil {
		return err
	}
	_, err = out.Write(page)
	return err
}

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// HTML renders the note: the title as a heading, the date in italics and the
// content converted from Markdown.
func HTML(n *note.Note) ([]byte, error) {
	var body bytes.Buffer
	if err := md.Convert([]byte(n.Content), &body); err != nil {
		return nil, fmt.Errorf("convert %s: %w", n.Filename, err)
	}

	title := html.EscapeString(n.Title)
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n", title)
	fmt.Fprintf(&buf, "<h1>%s</h1>\n", title)
	if n.Date != "" {
		fmt.Fprintf(&buf, "<p><em>%s</em></p>\n", html.EscapeString(n.Date))
	}
	buf.Write(body.Bytes())
	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes(), nil
}
