package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/notes/pkg/commands/options"
	"tableflip.dev/notes/pkg/runner/show"
	"tableflip.dev/notes/pkg/snake"
)

var errNoFilename = errors.New("a note file name is required when stdin is not a terminal")

func addShow(topLevel *cobra.Command, s *session) {
	fo := &options.FormatOptions{}
	render := false
	style := ""

	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Print one note.",
		Long: `Print one note. Without a file name the note is picked from a list.
With --render the note is rendered as markdown.`,
		Example: `
notes show Grocery_List_1700000000000.txt
notes show --render
notes show Plan_1.txt -o yaml
`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: noCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := fo.Format()
			if err != nil {
				return s.output.HandleError(cmd, err)
			}
			filename, err := s.pickNote(cmd, args, "Show which note")
			if err != nil {
				return s.output.HandleError(cmd, err)
			}

			sh := show.Show{
				Filename:    filename,
				Render:      render,
				Format:      format,
				Persistence: s.persistence,
				Out:         cmd.OutOrStdout(),
			}
			sh.Style, sh.Width = terminalLayout(cmd.OutOrStdout())
			if style != "" {
				sh.Style = style
			}
			return s.output.HandleError(cmd, sh.Do(cmd.Context()))
		},
	}

	cmd.Flags().BoolVarP(&render, "render", "r", false, "Render the note as markdown.")
	cmd.Flags().StringVar(&style, "style", "", "Markdown style for --render, for example 'dark', 'light' or 'notty'.")
	options.AddFormatArg(cmd, fo)

	topLevel.AddCommand(cmd)
}

// pickNote returns the file name given in args, or lets the user choose one
// when stdin is a terminal.
func (s *session) pickNote(cmd *cobra.Command, args []string, label string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if !isTerminal(cmd.InOrStdin()) {
		return "", errNoFilename
	}
	return snake.SelectNote(cmd, label, s.persistence.ListAll(cmd.Context()))
}

// noCompletions keeps shell completion from listing file names, which carry
// note titles, without the password.
func noCompletions(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return nil, cobra.ShellCompDirectiveNoFileComp
}
