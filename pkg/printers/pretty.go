package printers

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/notes/pkg/note"
)

const (
	previewWidth = 48
	contentWidth = 80
)

type PrettyPrint struct {
	Out      io.Writer
	ShowFile bool
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Empty is the listing shown when there are no notes.
func (pp *PrettyPrint) Empty() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprintln(pp.out(), "✍️ Write something!")
}

// Summaries renders one row per note card: date, title and a preview of the
// first content line.
func (pp *PrettyPrint) Summaries(notes []note.Summary) {
	if len(notes) == 0 {
		pp.Empty()
		return
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	file := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	header := []interface{}{bold.Sprint("Date"), bold.Sprint("Title"), bold.Sprint("Preview")}
	if pp.ShowFile {
		header = append(header, bold.Sprint("File"))
	}
	tbl.AddRow(header...)

	for _, n := range notes {
		row := []interface{}{
			faint.Sprint(n.Date),
			n.Title,
			truncate.StringWithTail(n.Preview, previewWidth, "…"),
		}
		if pp.ShowFile {
			row = append(row, file.Sprint(n.Filename))
		}
		tbl.AddRow(row...)
	}

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Note renders a whole note: title, date, then the content wrapped to the
// terminal-friendly width.
func (pp *PrettyPrint) Note(n *note.Note) {
	t := color.New(color.Bold, color.Underline)
	d := color.New(color.Faint)

	_, _ = t.Fprintln(pp.out(), n.Title)
	_, _ = d.Fprintln(pp.out(), n.Date)
	pp.NewLine()
	_, _ = fmt.Fprintln(pp.out(), wordwrap.String(n.Content, contentWidth))
}

// Notice prints a one-line status message such as "Note deleted.".
func (pp *PrettyPrint) Notice(msg string) {
	_, _ = color.New(color.FgCyan).Fprintln(pp.out(), msg)
}
