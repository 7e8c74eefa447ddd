package commands

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/notes/pkg/commands/options"
	"tableflip.dev/notes/pkg/note"
	"tableflip.dev/notes/pkg/runner/save"
	"tableflip.dev/notes/pkg/snake"
)

func addAdd(topLevel *cobra.Command, s *session) {
	no := &options.NoteOptions{}

	cmd := &cobra.Command{
		Use:     "add",
		Aliases: []string{"new"},
		Short:   "Write a new note.",
		Long: `Write a new note. The date defaults to today. Content is read from
stdin when --content is not given and stdin is not a terminal. On a
terminal any missing field is asked for.`,
		Example: `
notes add --title "Grocery List" --content "milk, eggs"
echo "call back" | notes add -t Reminders
notes new
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.output.HandleError(cmd, s.add(cmd, no))
		},
	}

	options.AddNoteArgs(cmd, no)

	topLevel.AddCommand(cmd)
}

func (s *session) add(cmd *cobra.Command, no *options.NoteOptions) error {
	in := cmd.InOrStdin()
	if isTerminal(in) {
		var err error
		if no.Title == "" {
			if no.Title, err = snake.PromptString(cmd, "Title", "", true); err != nil {
				return err
			}
		}
		if no.Date == "" {
			if no.Date, err = snake.PromptString(cmd, "Date", note.Today(), false); err != nil {
				return err
			}
		}
		if no.Content == "" {
			if no.Content, err = snake.PromptString(cmd, "Content", "", true); err != nil {
				return err
			}
		}
	} else if no.Content == "" {
		content, err := readAll(in)
		if err != nil {
			return err
		}
		no.Content = content
	}

	sv := save.Save{
		Title:       no.Title,
		Date:        no.Date,
		Content:     no.Content,
		Persistence: s.persistence,
		Out:         cmd.OutOrStdout(),
	}
	return sv.Do(cmd.Context())
}

func addEdit(topLevel *cobra.Command, s *session) {
	no := &options.NoteOptions{}

	cmd := &cobra.Command{
		Use:   "edit [file]",
		Short: "Change the title, date or content of a note.",
		Long: `Change the title, date or content of a note. Fields that are not
given keep their stored value. Content is read from stdin when --content
is not given and stdin is not a terminal. On a terminal without any field
flags each field is asked for with its current value.`,
		Example: `
notes edit Grocery_List_1700000000000.txt --title "Groceries"
cat plan.md | notes edit Plan_1.txt
notes edit
`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: noCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.output.HandleError(cmd, s.edit(cmd, args, no))
		},
	}

	options.AddNoteArgs(cmd, no)

	topLevel.AddCommand(cmd)
}

func (s *session) edit(cmd *cobra.Command, args []string, no *options.NoteOptions) error {
	filename, err := s.pickNote(cmd, args, "Edit which note")
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if isTerminal(in) {
		if no.Empty() {
			existing, err := s.persistence.Load(filename)
			if err != nil {
				return err
			}
			if no.Title, err = snake.PromptString(cmd, "Title", existing.Title, true); err != nil {
				return err
			}
			if no.Date, err = snake.PromptString(cmd, "Date", existing.Date, false); err != nil {
				return err
			}
			if no.Content, err = snake.PromptString(cmd, "Content", existing.Content, true); err != nil {
				return err
			}
		}
	} else if no.Content == "" {
		if no.Content, err = readAll(in); err != nil {
			return err
		}
	}

	sv := save.Save{
		Filename:    filename,
		Title:       no.Title,
		Date:        no.Date,
		Content:     no.Content,
		Persistence: s.persistence,
		Out:         cmd.OutOrStdout(),
	}
	return sv.Do(cmd.Context())
}

// readAll reads piped content, dropping the trailing newline.
func readAll(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}
