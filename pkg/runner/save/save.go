// Package save creates a note or rewrites an existing one.
package save

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/notes/pkg/note"
	"tableflip.dev/notes/pkg/store"
)

// Save writes a note. With an empty Filename a new note is created and Date
// defaults to today. With a Filename the note is loaded first and any empty
// field keeps its stored value.
type Save struct {
	Filename string
	Title    string
	Date     string
	Content  string

	Persistence store.Persistence
	Out         io.Writer
}

func (s *Save) Do(_ context.Context) error {
	if s.Persistence == nil {
		return errors.New("failed to create persistence object")
	}
	out := s.Out
	if out == nil {
		out = color.Output
	}

	title, date, content := s.Title, s.Date, s.Content
	if s.Filename != "" {
		existing, err := s.Persistence.Load(s.Filename)
		if err != nil {
			return err
		}
		title = keep(title, existing.Title)
		date = keep(date, existing.Date)
		content = keep(content, existing.Content)
	} else if strings.TrimSpace(date) == "" {
		date = note.Today()
	}

	if err := Validate(title, content); err != nil {
		return err
	}

	name, err := s.Persistence.Save(s.Filename, title, date, content)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out, name)
	return nil
}

// Validate reports which required field is blank. The error wraps
// store.ErrEmptyField.
func Validate(title, content string) error {
	switch {
	case strings.TrimSpace(title) == "":
		return fmt.Errorf("%w: title cannot be empty", store.ErrEmptyField)
	case strings.TrimSpace(content) == "":
		return fmt.Errorf("%w: content cannot be empty", store.ErrEmptyField)
	}
	return nil
}

func keep(value, existing string) string {
	if value == "" {
		return existing
	}
	return value
}
