// Package show prints a single note.
package show

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/notes/pkg/printers"
	"tableflip.dev/notes/pkg/store"
)

// Show prints a note, either as plain text, as rendered Markdown or in a
// structured format.
type Show struct {
	Filename string
	Render   bool
	Style    string
	Width    int
	Format   printers.Format

	Persistence store.Persistence
	Out         io.Writer
}

func (s *Show) Do(_ context.Context) error {
	if s.Persistence == nil {
		return errors.New("failed to create persistence object")
	}
	out := s.Out
	if out == nil {
		out = color.Output
	}

	n, err := s.Persistence.Load(s.Filename)
	if err != nil {
		return err
	}

	switch s.Format {
	case printers.FormatJSON, printers.FormatYAML:
		return printers.Structured(out, s.Format, n)
	}

	if !s.Render {
		pp := printers.PrettyPrint{Out: out}
		pp.Note(n)
		return nil
	}

	rendered, err := printers.Markdown(printers.Document(n), s.Style, s.Width)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, rendered)
	return err
}
