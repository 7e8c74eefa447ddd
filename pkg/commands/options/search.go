package options

import (
	"github.com/spf13/cobra"
)

// SearchOptions
type SearchOptions struct {
	Query    string
	Fuzzy    bool
	ShowFile bool
}

func AddQueryArg(cmd *cobra.Command, o *SearchOptions) {
	cmd.Flags().StringVarP(&o.Query, "query", "q", "",
		"Only list notes whose title contains the query.")
}

func AddFuzzyArg(cmd *cobra.Command, o *SearchOptions) {
	cmd.Flags().BoolVar(&o.Fuzzy, "fuzzy", false,
		"Rank titles by fuzzy match instead of substring.")
}

func AddShowFileArgs(cmd *cobra.Command, o *SearchOptions) {
	cmd.Flags().BoolVarP(&o.ShowFile, "show-file", "k", false,
		"Show the file name of each note.")
}
