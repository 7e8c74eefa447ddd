// Package remove deletes a note after an optional confirmation.
package remove

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/notes/pkg/printers"
	"tableflip.dev/notes/pkg/store"
)

const (
	// Question is asked before a note is deleted.
	Question = "Are you sure you want to delete this note?"

	msgDeleted = "Note deleted."
	msgFailed  = "Failed to delete note."
)

// Remove deletes one note. When Confirm is set it is asked first and a
// negative answer leaves the note in place.
type Remove struct {
	Filename string
	Confirm  func(question string) (bool, error)

	Persistence store.Persistence
	Out         io.Writer
}

func (r *Remove) Do(_ context.Context) error {
	if r.Persistence == nil {
		return errors.New("failed to create persistence object")
	}
	out := r.Out
	if out == nil {
		out = color.Output
	}
	pp := printers.PrettyPrint{Out: out}

	if r.Confirm != nil {
		ok, err := r.Confirm(Question)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	if err := r.Persistence.Delete(r.Filename); err != nil {
		pp.Notice(msgFailed)
		return err
	}
	pp.Notice(msgDeleted)
	return nil
}
