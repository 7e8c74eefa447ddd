package commands

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/notes/pkg/runner/export"
)

func addExport(topLevel *cobra.Command, s *session) {
	file := ""

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export a note as an HTML page.",
		Long: `Export a note as an HTML page. The content is treated as markdown.
The page is written to stdout unless --out is given.`,
		Example: `
notes export Plan_1.txt > plan.html
notes export Plan_1.txt --out plan.html
`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: noCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename, err := s.pickNote(cmd, args, "Export which note")
			if err != nil {
				return s.output.HandleError(cmd, err)
			}
			if file == "" {
				e := export.Export{Filename: filename, Persistence: s.persistence, Out: cmd.OutOrStdout()}
				return s.output.HandleError(cmd, e.Do(cmd.Context()))
			}

			page := &bytes.Buffer{}
			e := export.Export{Filename: filename, Persistence: s.persistence, Out: page}
			if err := e.Do(cmd.Context()); err != nil {
				return s.output.HandleError(cmd, err)
			}
			if err := os.WriteFile(file, page.Bytes(), 0o644); err != nil {
				return s.output.HandleError(cmd, fmt.Errorf("write %s: %w", file, err))
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), file)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "out", "o", "", "Write the page to this file.")

	topLevel.AddCommand(cmd)
}
