package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/notes/pkg/commands/options"
	"tableflip.dev/notes/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command, s *session) {
	fo := &options.FormatOptions{}

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about where notes are stored.",
		Example: `
notes info
notes info -o json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := fo.Format()
			if err != nil {
				return s.output.HandleError(cmd, err)
			}
			i := info.Info{
				Config:      s.config,
				Persistence: s.persistence,
				Passwords:   s.passwords,
				Format:      format,
				Out:         cmd.OutOrStdout(),
			}
			return s.output.HandleError(cmd, i.Do(cmd.Context()))
		},
	}

	options.AddFormatArg(cmd, fo)

	topLevel.AddCommand(cmd)
}
