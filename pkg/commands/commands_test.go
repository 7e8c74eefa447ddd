package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/notes/pkg/auth"
	"tableflip.dev/notes/pkg/note"
	"tableflip.dev/notes/pkg/runner/info"
	"tableflip.dev/notes/pkg/store"
)

const password = "secret"

func init() {
	color.NoColor = true
}

type scriptedPrompter struct {
	answers []string
	asked   []string
	notices []string
}

func (p *scriptedPrompter) PromptPassword(message string) (string, bool, error) {
	p.asked = append(p.asked, message)
	if len(p.answers) == 0 {
		return "", false, nil
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, true, nil
}

func (p *scriptedPrompter) Notify(message string) {
	p.notices = append(p.notices, message)
}

type result struct {
	out      string
	err      error
	prompter *scriptedPrompter
}

func run(t *testing.T, dir, stdin string, answers []string, args ...string) result {
	t.Helper()
	p := &scriptedPrompter{answers: answers}
	cmd := NewWithPrompter(p)
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append(args, "--path", dir))
	err := cmd.ExecuteContext(context.Background())
	return result{out: out.String(), err: err, prompter: p}
}

// unlocked returns a notes directory with the password already set.
func unlocked(t *testing.T, notes ...note.Note) (string, store.Persistence) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "saved_notes")
	cfg, err := store.NewConfig(dir, "")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	p, err := store.Load(cfg)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := auth.NewPasswordStore(dir).Initialize(password); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	for _, n := range notes {
		if _, err := p.Save("", n.Title, n.Date, n.Content); err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	return dir, p
}

func only(t *testing.T, p store.Persistence) note.Summary {
	t.Helper()
	all := p.ListAll(context.Background())
	if len(all) != 1 {
		t.Fatalf("expected one note, got %d", len(all))
	}
	return all[0]
}

func TestFirstRunSetsPassword(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "saved_notes")

	r := run(t, dir, "milk\neggs\n", []string{password}, "add", "--title", "Grocery List", "--date", "01-01-2024")
	if r.err != nil {
		t.Fatalf("add: %v", r.err)
	}
	if len(r.prompter.asked) != 1 || r.prompter.asked[0] != "Set a password to protect your notes:" {
		t.Fatalf("unexpected prompts %v", r.prompter.asked)
	}
	if !strings.HasPrefix(r.out, "Grocery_List_") {
		t.Fatalf("expected the new file name, got %q", r.out)
	}

	record, err := os.ReadFile(filepath.Join(dir, auth.RecordName))
	if err != nil {
		t.Fatalf("read record: %v", err)
	}
	if string(record) != auth.Hash(password) {
		t.Fatalf("unexpected record %q", record)
	}

	n, err := store.NewDiskv(dir).Read(strings.TrimSpace(r.out))
	if err != nil {
		t.Fatalf("read note: %v", err)
	}
	if string(n) != "Grocery List\n01-01-2024\nmilk\neggs" {
		t.Fatalf("unexpected file %q", n)
	}
}

func TestFirstRunCancelled(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "saved_notes")

	r := run(t, dir, "", nil, "list")
	if !errors.Is(r.err, auth.ErrAuthFailed) {
		t.Fatalf("expected ErrAuthFailed, got %v", r.err)
	}
	if auth.NewPasswordStore(dir).IsInitialized() {
		t.Fatal("expected no password record")
	}
}

func TestWrongPasswordBlocks(t *testing.T) {
	dir, _ := unlocked(t, note.Note{Title: "Diary", Date: "01-01-2024", Content: "private"})

	r := run(t, dir, "", []string{"a", "b", "c", password}, "list")
	if !errors.Is(r.err, auth.ErrAuthFailed) {
		t.Fatalf("expected ErrAuthFailed, got %v", r.err)
	}
	if len(r.prompter.asked) != auth.MaxAttempts || len(r.prompter.notices) != auth.MaxAttempts {
		t.Fatalf("unexpected prompts %v notices %v", r.prompter.asked, r.prompter.notices)
	}
	if strings.Contains(r.out, "Diary") {
		t.Fatalf("notes shown without the password:\n%s", r.out)
	}
}

func TestSecondAttemptUnlocks(t *testing.T) {
	dir, _ := unlocked(t, note.Note{Title: "Diary", Date: "01-01-2024", Content: "private"})

	r := run(t, dir, "", []string{"wrong", password}, "list")
	if r.err != nil {
		t.Fatalf("list: %v", r.err)
	}
	if !strings.Contains(r.out, "Diary") {
		t.Fatalf("expected the note listed:\n%s", r.out)
	}
}

func TestListAndSearch(t *testing.T) {
	dir, _ := unlocked(t,
		note.Note{Title: "Grocery List", Date: "01-01-2024", Content: "milk"},
		note.Note{Title: "Meeting notes", Date: "03-01-2024", Content: "agenda"},
	)

	r := run(t, dir, "", []string{password}, "ls")
	if r.err != nil {
		t.Fatalf("list: %v", r.err)
	}
	if strings.Index(r.out, "Meeting notes") > strings.Index(r.out, "Grocery List") {
		t.Fatalf("expected newest first:\n%s", r.out)
	}

	r = run(t, dir, "", []string{password}, "search", "GROC")
	if r.err != nil {
		t.Fatalf("search: %v", r.err)
	}
	if !strings.Contains(r.out, "Grocery List") || strings.Contains(r.out, "Meeting notes") {
		t.Fatalf("unexpected search result:\n%s", r.out)
	}

	r = run(t, dir, "", []string{password}, "list", "-o", "json")
	if r.err != nil {
		t.Fatalf("list json: %v", r.err)
	}
	var got []note.Summary
	if err := json.Unmarshal([]byte(r.out), &got); err != nil {
		t.Fatalf("decode %q: %v", r.out, err)
	}
	if len(got) != 2 || got[0].Title != "Meeting notes" || got[1].Preview != "milk" {
		t.Fatalf("unexpected summaries %+v", got)
	}
}

func TestSearchNeedsQuery(t *testing.T) {
	dir, _ := unlocked(t)
	if r := run(t, dir, "", []string{password}, "search"); r.err == nil {
		t.Fatal("expected an argument error")
	}
}

func TestShow(t *testing.T) {
	dir, p := unlocked(t, note.Note{Title: "Plan", Date: "01-01-2024", Content: "step one"})
	s := only(t, p)

	r := run(t, dir, "", []string{password}, "show", s.Filename, "-o", "yaml")
	if r.err != nil {
		t.Fatalf("show: %v", r.err)
	}
	for _, want := range []string{"title: Plan", "date: 01-01-2024", "content: step one"} {
		if !strings.Contains(r.out, want) {
			t.Errorf("expected %q in:\n%s", want, r.out)
		}
	}
}

func TestShowNeedsFilenameWithoutTerminal(t *testing.T) {
	dir, _ := unlocked(t)
	r := run(t, dir, "", []string{password}, "show")
	if !errors.Is(r.err, errNoFilename) {
		t.Fatalf("expected errNoFilename, got %v", r.err)
	}
}

func TestShowMissingAsJSON(t *testing.T) {
	dir, _ := unlocked(t)
	r := run(t, dir, "", []string{password}, "show", "missing_1.txt", "--json")
	if r.err != nil {
		t.Fatalf("expected the error on output, got %v", r.err)
	}
	var out map[string]string
	if err := json.Unmarshal([]byte(r.out), &out); err != nil {
		t.Fatalf("decode %q: %v", r.out, err)
	}
	if out["error"] == "" {
		t.Fatalf("expected an error message, got %v", out)
	}
}

func TestAddRejectsEmptyContent(t *testing.T) {
	dir, p := unlocked(t)
	r := run(t, dir, "", []string{password}, "add", "--title", "Empty")
	if !errors.Is(r.err, store.ErrEmptyField) {
		t.Fatalf("expected ErrEmptyField, got %v", r.err)
	}
	if n := len(p.ListAll(context.Background())); n != 0 {
		t.Fatalf("expected nothing saved, got %d notes", n)
	}
}

func TestAddDefaultsDateToToday(t *testing.T) {
	dir, p := unlocked(t)
	r := run(t, dir, "", []string{password}, "new", "-t", "Today", "-c", "body")
	if r.err != nil {
		t.Fatalf("add: %v", r.err)
	}
	if s := only(t, p); s.Date != note.Today() {
		t.Fatalf("expected today, got %q", s.Date)
	}
}

func TestEditKeepsFields(t *testing.T) {
	dir, p := unlocked(t, note.Note{Title: "Old", Date: "01-01-2024", Content: "body"})
	s := only(t, p)

	r := run(t, dir, "", []string{password}, "edit", s.Filename, "--title", "New")
	if r.err != nil {
		t.Fatalf("edit: %v", r.err)
	}
	if strings.TrimSpace(r.out) != s.Filename {
		t.Fatalf("expected the same file name, got %q", r.out)
	}
	n, err := p.Load(s.Filename)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if n.Title != "New" || n.Date != "01-01-2024" || n.Content != "body" {
		t.Fatalf("unexpected note %+v", n)
	}
}

func TestEditContentFromStdin(t *testing.T) {
	dir, p := unlocked(t, note.Note{Title: "Plan", Date: "01-01-2024", Content: "old"})
	s := only(t, p)

	r := run(t, dir, "new plan\n", []string{password}, "edit", s.Filename)
	if r.err != nil {
		t.Fatalf("edit: %v", r.err)
	}
	n, err := p.Load(s.Filename)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if n.Content != "new plan" || n.Title != "Plan" {
		t.Fatalf("unexpected note %+v", n)
	}
}

func TestDelete(t *testing.T) {
	dir, p := unlocked(t, note.Note{Title: "Old", Date: "01-01-2024", Content: "body"})
	s := only(t, p)

	r := run(t, dir, "n\n", []string{password}, "delete", s.Filename)
	if r.err != nil {
		t.Fatalf("delete: %v", r.err)
	}
	if !strings.Contains(r.out, "Are you sure you want to delete this note?") {
		t.Fatalf("expected the question:\n%s", r.out)
	}
	only(t, p)

	r = run(t, dir, "y\n", []string{password}, "rm", s.Filename)
	if r.err != nil {
		t.Fatalf("delete: %v", r.err)
	}
	if !strings.Contains(r.out, "Note deleted.") {
		t.Fatalf("expected the notice:\n%s", r.out)
	}
	if n := len(p.ListAll(context.Background())); n != 0 {
		t.Fatalf("expected the note gone, got %d", n)
	}
}

func TestDeleteForceMissing(t *testing.T) {
	dir, _ := unlocked(t)
	r := run(t, dir, "", []string{password}, "delete", "--force", "gone_1.txt")
	if !errors.Is(r.err, store.ErrDelete) {
		t.Fatalf("expected ErrDelete, got %v", r.err)
	}
	if !strings.Contains(r.out, "Failed to delete note.") {
		t.Fatalf("expected the failure notice:\n%s", r.out)
	}
}

func TestDeleteKeepsPasswordRecord(t *testing.T) {
	dir, _ := unlocked(t)
	r := run(t, dir, "", []string{password}, "delete", "--force", auth.RecordName)
	if r.err == nil {
		t.Fatal("expected the password record to be refused")
	}
	if !auth.NewPasswordStore(dir).IsInitialized() {
		t.Fatal("password record deleted")
	}
}

func TestExportToFile(t *testing.T) {
	dir, p := unlocked(t, note.Note{Title: "Plan", Date: "01-01-2024", Content: "- one\n- two"})
	s := only(t, p)
	page := filepath.Join(t.TempDir(), "plan.html")

	r := run(t, dir, "", []string{password}, "export", s.Filename, "--out", page)
	if r.err != nil {
		t.Fatalf("export: %v", r.err)
	}
	b, err := os.ReadFile(page)
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	if !strings.Contains(string(b), "<h1>Plan</h1>") || !strings.Contains(string(b), "<li>one</li>") {
		t.Fatalf("unexpected page:\n%s", b)
	}
}

func TestInfo(t *testing.T) {
	dir, _ := unlocked(t, note.Note{Title: "Plan", Date: "01-01-2024", Content: "x"})

	r := run(t, dir, "", []string{password}, "info", "-o", "json")
	if r.err != nil {
		t.Fatalf("info: %v", r.err)
	}
	var d info.Details
	if err := json.Unmarshal([]byte(r.out), &d); err != nil {
		t.Fatalf("decode %q: %v", r.out, err)
	}
	if d.NotesPath != dir || d.Notes != 1 || !d.PasswordSet {
		t.Fatalf("unexpected details %+v", d)
	}
}

func TestVersionSkipsAuth(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "saved_notes")
	r := run(t, dir, "", nil, "version", "--short")
	if r.err != nil {
		t.Fatalf("version: %v", r.err)
	}
	if len(r.prompter.asked) != 0 {
		t.Fatalf("unexpected password prompt %v", r.prompter.asked)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("expected no notes directory, got %v", err)
	}
}

func TestCompletionSkipsAuth(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "saved_notes")
	r := run(t, dir, "", nil, "completion", "zsh")
	if r.err != nil {
		t.Fatalf("completion: %v", r.err)
	}
	if !strings.Contains(r.out, "notes") {
		t.Fatalf("unexpected script:\n%s", r.out)
	}
}

func TestSkipAuth(t *testing.T) {
	root := &cobra.Command{Use: "notes"}
	plain := &cobra.Command{Use: "list"}
	free := &cobra.Command{Use: "version", Annotations: noAuth()}
	root.AddCommand(plain, free)

	if skipAuth(root) || skipAuth(plain) {
		t.Error("expected the password for notes commands")
	}
	if !skipAuth(free) {
		t.Error("expected annotated commands to skip the password")
	}
}
