package export

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tableflip.dev/notes/pkg/note"
	"tableflip.dev/notes/pkg/store/storetest"
)

func TestExport(t *testing.T) {
	mem := storetest.NewMemory(note.Note{
		Filename: "Plan_1.txt",
		Title:    "Plan <A>",
		Date:     "01-01-2024",
		Content:  "Some **bold** text\n\n- one\n- two",
	})
	out := &bytes.Buffer{}
	e := Export{Filename: "Plan_1.txt", Persistence: mem, Out: out}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("export: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"<h1>Plan &lt;A&gt;</h1>",
		"<p><em>01-01-2024</em></p>",
		"<strong>bold</strong>",
		"<li>one</li>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in:\n%s", want, got)
		}
	}
}

func TestExportMissing(t *testing.T) {
	e := Export{Filename: "gone.txt", Persistence: storetest.NewMemory(), Out: &bytes.Buffer{}}
	if err := e.Do(context.Background()); err == nil {
		t.Fatal("expected an error")
	}
}
