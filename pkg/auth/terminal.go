package auth

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// TerminalPrompter prompts on a terminal without echo, or reads one line per
// prompt from In when it is not a terminal. Lines are read a byte at a time
// so whatever follows the password on a pipe is left for the command.
type TerminalPrompter struct {
	In  *os.File
	Out io.Writer
}

// NewTerminalPrompter prompts on stdin and writes prompts and notices to stderr.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{In: os.Stdin, Out: os.Stderr}
}

func (p *TerminalPrompter) PromptPassword(message string) (string, bool, error) {
	fmt.Fprintf(p.Out, "%s ", message)

	fd := p.In.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		b, err := term.ReadPassword(int(fd))
		fmt.Fprintln(p.Out) // newline after hidden input
		if errors.Is(err, io.EOF) {
			return "", false, nil
		}
		if err != nil {
			return "", false, fmt.Errorf("read password: %w", err)
		}
		return string(b), true, nil
	}
	return p.readLine()
}

func (p *TerminalPrompter) readLine() (string, bool, error) {
	var line strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := p.In.Read(buf)
		if n == 1 {
			if buf[0] == '\n' {
				break
			}
			line.WriteByte(buf[0])
		}
		if errors.Is(err, io.EOF) {
			if line.Len() == 0 {
				return "", false, nil
			}
			break
		}
		if err != nil {
			return "", false, fmt.Errorf("read password: %w", err)
		}
	}
	return strings.TrimRight(line.String(), "\r"), true, nil
}

func (p *TerminalPrompter) Notify(message string) {
	fmt.Fprintln(p.Out, message)
}
