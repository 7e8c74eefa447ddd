package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/notes/pkg/printers"
	"tableflip.dev/notes/pkg/store"
)

// Passwords reports whether the password record exists.
type Passwords interface {
	IsInitialized() bool
}

// Info describes where notes are kept and what is there.
type Info struct {
	Config      store.Config
	Persistence store.Persistence
	Passwords   Passwords
	Format      printers.Format
	Out         io.Writer
}

// Details is the structured form of the info report.
type Details struct {
	ConfigPath  string `json:"configPath,omitempty" yaml:"configPath,omitempty"`
	ConfigFile  string `json:"configFile,omitempty" yaml:"configFile,omitempty"`
	NotesPath   string `json:"notesPath" yaml:"notesPath"`
	LogPath     string `json:"logPath,omitempty" yaml:"logPath,omitempty"`
	Notes       int    `json:"notes" yaml:"notes"`
	PasswordSet bool   `json:"passwordSet" yaml:"passwordSet"`
}

func (n *Info) Do(ctx context.Context) error {
	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if n.Persistence == nil {
		return fmt.Errorf("failed to create persistence object")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	d := Details{
		ConfigPath: os.Getenv("NOTES_CONFIG_PATH"),
		ConfigFile: store.ConfigFile(),
		NotesPath:  n.Persistence.BasePath(),
		LogPath:    n.Config.LogPath(),
		Notes:      len(n.Persistence.ListAll(ctx)),
	}
	if n.Passwords != nil {
		d.PasswordSet = n.Passwords.IsInitialized()
	}

	switch n.Format {
	case printers.FormatJSON, printers.FormatYAML:
		return printers.Structured(out, n.Format, d)
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	or := func(s, fallback string) string {
		if s == "" {
			return faint.Sprint(fallback)
		}
		return s
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("NOTES_CONFIG_PATH"), or(d.ConfigPath, "not set"))
	tbl.AddRow(bold.Sprint("Config file"), or(d.ConfigFile, "none"))
	tbl.AddRow(bold.Sprint("Notes path"), d.NotesPath)
	tbl.AddRow(bold.Sprint("Log file"), or(d.LogPath, "disabled"))
	tbl.AddRow(bold.Sprint("Notes"), d.Notes)
	tbl.AddRow(bold.Sprint("Password set"), d.PasswordSet)

	_, err := fmt.Fprintln(out, tbl)
	return err
}
