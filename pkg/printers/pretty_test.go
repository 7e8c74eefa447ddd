package printers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/notes/pkg/note"
)

func init() {
	color.NoColor = true
}

func TestSummariesEmpty(t *testing.T) {
	out := &bytes.Buffer{}
	pp := &PrettyPrint{Out: out}
	pp.Summaries(nil)

	if !strings.Contains(out.String(), "Write something!") {
		t.Fatalf("expected empty state, got %q", out.String())
	}
}

func TestSummariesTable(t *testing.T) {
	out := &bytes.Buffer{}
	pp := &PrettyPrint{Out: out, ShowFile: true}
	pp.Summaries([]note.Summary{
		{Filename: "Groceries_1.txt", Title: "Groceries", Date: "02-01-2024", Preview: "milk"},
		{Filename: "Ideas_2.txt", Title: "Ideas", Date: "01-01-2024", Preview: strings.Repeat("x", 200)},
	})

	got := out.String()
	for _, want := range []string{"Date", "Title", "Preview", "File", "Groceries", "02-01-2024", "milk", "Ideas_2.txt", "…"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in output:\n%s", want, got)
		}
	}
	if strings.Contains(got, strings.Repeat("x", 100)) {
		t.Error("expected long preview to be truncated")
	}
}

func TestSummariesHideFile(t *testing.T) {
	out := &bytes.Buffer{}
	pp := &PrettyPrint{Out: out}
	pp.Summaries([]note.Summary{{Filename: "a_1.txt", Title: "a", Date: "01-01-2024"}})

	if strings.Contains(out.String(), "a_1.txt") {
		t.Fatalf("file column shown without ShowFile:\n%s", out.String())
	}
}

func TestNote(t *testing.T) {
	out := &bytes.Buffer{}
	pp := &PrettyPrint{Out: out}
	pp.Note(&note.Note{Title: "T", Date: "01-01-2024", Content: "line one\nline two"})

	want := "T\n01-01-2024\n\nline one\nline two\n"
	if out.String() != want {
		t.Fatalf("got %q, want %q", out.String(), want)
	}
}

func TestDocument(t *testing.T) {
	got := Document(&note.Note{Title: "Plan", Date: "01-01-2024", Content: "step one\nstep two"})
	want := "# Plan\n\n*01-01-2024*\n\nstep one\nstep two\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestMarkdownNoTTY(t *testing.T) {
	out, err := Markdown("# Heading\n\nbody text\n", "notty", 40)
	if err != nil {
		t.Fatalf("markdown: %v", err)
	}
	if !strings.Contains(out, "Heading") || !strings.Contains(out, "body text") {
		t.Fatalf("unexpected render %q", out)
	}
}
