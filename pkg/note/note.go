// Package note holds the note model and its on-disk text format.
package note

import (
	"fmt"
	"strings"
	"time"
)

const (
	// Extension marks a file in the notes directory as a note.
	Extension = ".txt"

	// LayoutDate is the DD-MM-YYYY form a note's date line is written in.
	LayoutDate = "02-01-2006"
)

// Note is a titled, dated, free-text record stored as one file.
type Note struct {
	Filename string `json:"filename" yaml:"filename"`
	Title    string `json:"title" yaml:"title"`
	Date     string `json:"date" yaml:"date"`
	Content  string `json:"content" yaml:"content"`
}

// Summary is the title and date projection of a note used for listing.
type Summary struct {
	Filename string    `json:"filename" yaml:"filename"`
	Title    string    `json:"title" yaml:"title"`
	Date     string    `json:"date" yaml:"date"`
	Preview  string    `json:"preview,omitempty" yaml:"preview,omitempty"`
	Time     time.Time `json:"-" yaml:"-"`
}

// Dated reports whether the summary's date line parsed.
func (s Summary) Dated() bool {
	return !s.Time.IsZero()
}

// Today returns the current date in LayoutDate.
func Today() string {
	return FormatDate(time.Now())
}

// FormatDate renders t in LayoutDate.
func FormatDate(t time.Time) string {
	return t.Format(LayoutDate)
}

// layoutShortDate accepts one or two digit days and months, as in 5-12-2024.
const layoutShortDate = "2-1-2006"

// ParseDate parses a DD-MM-YYYY date line. Days and months may be written
// with a single digit.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(LayoutDate, s)
	if err == nil {
		return t, nil
	}
	if t, short := time.Parse(layoutShortDate, s); short == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("date %q is not DD-MM-YYYY: %w", s, err)
}

// Filename derives the file name for a new note from its title and creation
// time: whitespace runs become "_", then "_<epoch millis>.txt" is appended.
// Path separators are replaced as well so the note stays in the notes
// directory.
func Filename(title string, created time.Time) string {
	slug := strings.Join(strings.Fields(title), "_")
	slug = strings.NewReplacer("/", "_", "\\", "_").Replace(slug)
	return fmt.Sprintf("%s_%d%s", slug, created.UnixMilli(), Extension)
}
