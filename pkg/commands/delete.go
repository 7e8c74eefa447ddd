package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/notes/pkg/commands/options"
	"tableflip.dev/notes/pkg/runner/remove"
	"tableflip.dev/notes/pkg/snake"
)

func addDelete(topLevel *cobra.Command, s *session) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:     "delete [file]",
		Aliases: []string{"rm"},
		Short:   "Delete a note.",
		Long: `Delete a note after asking for confirmation. Without a file name the
note is picked from a list.`,
		Example: `
notes delete Grocery_List_1700000000000.txt
notes rm --force Plan_1.txt
`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: noCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename, err := s.pickNote(cmd, args, "Delete which note")
			if err != nil {
				return s.output.HandleError(cmd, err)
			}
			r := remove.Remove{
				Filename:    filename,
				Persistence: s.persistence,
				Out:         cmd.OutOrStdout(),
			}
			if !co.Force {
				r.Confirm = func(question string) (bool, error) {
					if isTerminal(cmd.InOrStdin()) {
						return snake.Confirm(cmd, question)
					}
					return snake.ConfirmLine(cmd.InOrStdin(), cmd.OutOrStdout(), question)
				}
			}
			return s.output.HandleError(cmd, r.Do(cmd.Context()))
		},
	}

	options.AddForceArg(cmd, co)

	topLevel.AddCommand(cmd)
}
