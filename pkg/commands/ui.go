package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/notes/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command, s *session) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the text-based user interface.",
		Example: `
notes ui
notes
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u := ui.UI{Persistence: s.persistence}
			return s.output.HandleError(cmd, u.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
