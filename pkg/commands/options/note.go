package options

import (
	"github.com/spf13/cobra"
)

// NoteOptions carries the fields of a note given on the command line.
type NoteOptions struct {
	Title   string
	Date    string
	Content string
}

func AddNoteArgs(cmd *cobra.Command, o *NoteOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"Title of the note.")
	cmd.Flags().StringVarP(&o.Date, "date", "d", "",
		`Date of the note, example: --date="31-12-2024".`)
	cmd.Flags().StringVarP(&o.Content, "content", "c", "",
		"Content of the note. Read from stdin when omitted and stdin is not a terminal.")
}

// Empty reports whether no field was given.
func (o *NoteOptions) Empty() bool {
	return o.Title == "" && o.Date == "" && o.Content == ""
}
