package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/notes/pkg/commands/options"
	"tableflip.dev/notes/pkg/runner/list"
)

func addList(topLevel *cobra.Command, s *session) {
	so := &options.SearchOptions{}
	fo := &options.FormatOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List notes, newest first.",
		Example: `
notes list
notes list --query grocery
notes ls -o json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.output.HandleError(cmd, s.list(cmd, so, fo))
		},
	}

	options.AddQueryArg(cmd, so)
	options.AddFuzzyArg(cmd, so)
	options.AddShowFileArgs(cmd, so)
	options.AddFormatArg(cmd, fo)

	topLevel.AddCommand(cmd)
}

func addSearch(topLevel *cobra.Command, s *session) {
	so := &options.SearchOptions{}
	fo := &options.FormatOptions{}

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "List notes whose title contains the query.",
		Long: `List notes whose title contains the query, ignoring case.
With --fuzzy the titles are ranked by fuzzy match instead.`,
		Example: `
notes search grocery
notes search "meeting notes"
notes search --fuzzy grcy
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			so.Query = strings.Join(args, " ")
			return s.output.HandleError(cmd, s.list(cmd, so, fo))
		},
	}

	options.AddFuzzyArg(cmd, so)
	options.AddShowFileArgs(cmd, so)
	options.AddFormatArg(cmd, fo)

	topLevel.AddCommand(cmd)
}

func (s *session) list(cmd *cobra.Command, so *options.SearchOptions, fo *options.FormatOptions) error {
	format, err := fo.Format()
	if err != nil {
		return err
	}
	l := list.List{
		Query:       so.Query,
		Fuzzy:       so.Fuzzy,
		ShowFile:    so.ShowFile,
		Format:      format,
		Persistence: s.persistence,
		Out:         cmd.OutOrStdout(),
	}
	return l.Do(cmd.Context())
}
