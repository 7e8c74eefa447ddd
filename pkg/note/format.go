package note

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// ErrHeader is returned when a note file has no title and date lines.
var ErrHeader = errors.New("note: missing title or date line")

// Encode renders a note as file content: title line, date line, then the
// content verbatim.
func Encode(title, date, content string) []byte {
	return []byte(title + "\n" + date + "\n" + content)
}

// Decode parses file content. Line 1 is the title, line 2 the date and
// everything after line 2 is content, joined with "\n" and trimmed as a
// whole.
func Decode(filename string, data []byte) (*Note, error) {
	lines := splitLines(string(data))
	if len(lines) < 2 {
		return nil, ErrHeader
	}
	return &Note{
		Filename: filename,
		Title:    lines[0],
		Date:     lines[1],
		Content:  strings.TrimSpace(strings.Join(lines[2:], "\n")),
	}, nil
}

// ReadSummary reads at most the first three lines from r: title, date and
// the first content line as preview. Missing lines are left empty.
func ReadSummary(filename string, r io.Reader) (Summary, error) {
	s := Summary{Filename: filename}
	br := bufio.NewReader(r)

	fields := []*string{&s.Title, &s.Date, &s.Preview}
	for _, f := range fields {
		line, err := br.ReadString('\n')
		if line != "" || err == nil {
			*f = strings.TrimRight(line, "\r\n")
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return s, err
		}
	}

	if t, err := ParseDate(s.Date); err == nil {
		s.Time = t
	}
	return s, nil
}

// splitLines splits s the way a line reader would: "\n" or "\r\n"
// terminated, with a final unterminated line counted and a trailing
// terminator not producing an extra empty line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
