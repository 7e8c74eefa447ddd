// Package list prints the notes in the notes directory, optionally filtered.
package list

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"
	"github.com/sahilm/fuzzy"

	"tableflip.dev/notes/pkg/note"
	"tableflip.dev/notes/pkg/printers"
	"tableflip.dev/notes/pkg/store"
)

// List prints note summaries, newest first.
type List struct {
	Query    string
	Fuzzy    bool
	ShowFile bool
	Format   printers.Format

	Persistence store.Persistence
	Out         io.Writer
}

func (l *List) Do(ctx context.Context) error {
	if l.Persistence == nil {
		return errors.New("failed to create persistence object")
	}
	out := l.Out
	if out == nil {
		out = color.Output
	}

	all := l.Persistence.ListAll(ctx)
	var notes []note.Summary
	if l.Fuzzy && l.Query != "" {
		notes = Rank(all, l.Query)
	} else {
		notes = l.Persistence.Search(all, l.Query)
	}

	switch l.Format {
	case printers.FormatJSON, printers.FormatYAML:
		return printers.Structured(out, l.Format, notes)
	}
	pp := printers.PrettyPrint{Out: out, ShowFile: l.ShowFile}
	pp.Summaries(notes)
	return nil
}

// Rank keeps the notes whose titles fuzzy-match query, best match first.
func Rank(notes []note.Summary, query string) []note.Summary {
	titles := make([]string, len(notes))
	for i, n := range notes {
		titles[i] = n.Title
	}
	matches := fuzzy.Find(query, titles)
	ranked := make([]note.Summary, 0, len(matches))
	for _, m := range matches {
		ranked = append(ranked, notes[m.Index])
	}
	return ranked
}
