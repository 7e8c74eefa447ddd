// Package snake asks for missing command input on the terminal.
package snake

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"tableflip.dev/notes/pkg/note"
)

// ErrNoNotes is returned by SelectNote when there is nothing to pick.
var ErrNoNotes = errors.New("no notes to choose from")

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// NopCloser returns a WriteCloser with a no-op Close method wrapping w.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopWriteCloser{Writer: w}
}

// Confirm asks a yes/no question. An interrupted prompt counts as no.
func Confirm(cmd *cobra.Command, question string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     question,
		IsConfirm: true,
		Stdin:     io.NopCloser(cmd.InOrStdin()),
		Stdout:    NopCloser(cmd.OutOrStdout()),
	}
	answer, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return false, nil
		}
		return false, err
	}
	ok, err := ParseBool(strings.TrimSpace(answer))
	if err != nil {
		return false, nil
	}
	return ok, nil
}

// ConfirmLine asks question on out and reads a single y/N answer from in.
// Anything but a yes, including end of input, is a no.
func ConfirmLine(in io.Reader, out io.Writer, question string) (bool, error) {
	_, _ = fmt.Fprintf(out, "%s [y/N] ", question)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	ok, err := ParseBool(strings.TrimSpace(line))
	if err != nil {
		return false, nil
	}
	return ok, nil
}

// PromptString asks for a single line. def is offered as the editable
// default. A required answer may not be blank.
func PromptString(cmd *cobra.Command, label, def string, required bool) (string, error) {
	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }}: ",
		Valid:   "{{ . | green }}: ",
		Invalid: "{{ . | red }}: ",
		Success: "{{ . | bold }}: ",
	}

	prompt := promptui.Prompt{
		Label:     label,
		Default:   def,
		AllowEdit: def != "",
		Templates: templates,
		Validate:  Required(label, required),
		Stdin:     io.NopCloser(cmd.InOrStdin()),
		Stdout:    NopCloser(cmd.OutOrStdout()),
	}
	return prompt.Run()
}

// Required returns a promptui validator rejecting blank input when required
// is set.
func Required(label string, required bool) promptui.ValidateFunc {
	return func(input string) error {
		if required && strings.TrimSpace(input) == "" {
			return fmt.Errorf("%s cannot be empty", strings.ToLower(label))
		}
		return nil
	}
}

// SelectNote lets the user pick one of notes and returns its file name.
func SelectNote(cmd *cobra.Command, label string, notes []note.Summary) (string, error) {
	if len(notes) == 0 {
		return "", ErrNoNotes
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Title | bold }} {{ .Date | cyan }}",
		Inactive: "   {{ .Title }} {{ .Date | faint }}",
		Selected: "{{ .Title | bold }}",
		Details: `
--------- Note ----------
{{ .Preview }}
`,
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     label,
		Items:     notes,
		Templates: templates,
		Size:      10,
		Searcher:  Searcher(notes),
		Stdin:     io.NopCloser(cmd.InOrStdin()),
		Stdout:    NopCloser(cmd.OutOrStdout()),
	}

	i, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return notes[i].Filename, nil
}

// Searcher matches typed input against note titles, ignoring case and
// spaces.
func Searcher(notes []note.Summary) func(input string, index int) bool {
	return func(input string, index int) bool {
		title := strings.ReplaceAll(strings.ToLower(notes[index].Title), " ", "")
		input = strings.ReplaceAll(strings.ToLower(input), " ", "")
		return strings.Contains(title, input)
	}
}

// ParseBool is strconv.ParseBool with the addition of Yes/No parsing.
func ParseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "y", "Y", "yes", "YES", "Yes":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "n", "N", "no", "NO", "No":
		return false, nil
	}
	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}
