package options

import (
	"github.com/spf13/cobra"
)

// RootOptions override the config file for one invocation.
type RootOptions struct {
	Path    string
	LogFile string
}

func AddRootArgs(cmd *cobra.Command, o *RootOptions) {
	cmd.PersistentFlags().StringVar(&o.Path, "path", "",
		"Notes directory. Overrides the config file and NOTES_PATH.")
	cmd.PersistentFlags().StringVar(&o.LogFile, "log-file", "",
		"Write a debug log to this file. Overrides the config file and NOTES_LOG.")
}
