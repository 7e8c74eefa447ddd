package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/notes/pkg/auth"
	"tableflip.dev/notes/pkg/commands/options"
	"tableflip.dev/notes/pkg/logs"
	"tableflip.dev/notes/pkg/printers"
	"tableflip.dev/notes/pkg/runner/ui"
	"tableflip.dev/notes/pkg/store"
)

const (
	// annotationNoAuth marks commands that run without the notes directory.
	annotationNoAuth = "notes.tableflip.dev/no-auth"

	defaultWidth = 80
)

// session is what a command needs once the root has opened the notes.
type session struct {
	prompter auth.Prompter

	root   options.RootOptions
	output options.OutputOptions

	config      store.Config
	persistence store.Persistence
	passwords   *auth.PasswordStore
}

// New returns the notes command, asking for the password on the terminal.
func New() *cobra.Command {
	return NewWithPrompter(auth.NewTerminalPrompter())
}

// NewWithPrompter returns the notes command using prompter for the password.
func NewWithPrompter(prompter auth.Prompter) *cobra.Command {
	s := &session{prompter: prompter}

	cmd := &cobra.Command{
		Use:   "notes",
		Short: base.Wrap80("Password protected notes on the command line."),
		Long: base.Wrap80("Password protected notes on the command line. " +
			"Run without a subcommand to browse, search and edit notes in a full screen UI."),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if skipAuth(cmd) {
				return nil
			}
			return s.open()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			logs.Sync()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			u := ui.UI{Persistence: s.persistence}
			return s.output.HandleError(cmd, u.Do(cmd.Context()))
		},
	}

	options.AddRootArgs(cmd, &s.root)
	options.AddOutputArg(cmd, &s.output)

	addCommands(cmd, s)
	return cmd
}

func addCommands(topLevel *cobra.Command, s *session) {
	addUI(topLevel, s)
	addList(topLevel, s)
	addSearch(topLevel, s)
	addShow(topLevel, s)
	addAdd(topLevel, s)
	addEdit(topLevel, s)
	addDelete(topLevel, s)
	addExport(topLevel, s)
	addInfo(topLevel, s)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// open loads the config, starts logging, opens the notes directory and asks
// for the password. Nothing is read before the password is accepted.
func (s *session) open() error {
	cfg, err := store.LoadConfig()
	if err != nil {
		return err
	}
	if s.root.Path != "" || s.root.LogFile != "" {
		path, log := cfg.BasePath(), cfg.LogPath()
		if s.root.Path != "" {
			path = s.root.Path
		}
		if s.root.LogFile != "" {
			log = s.root.LogFile
		}
		if cfg, err = store.NewConfig(path, log); err != nil {
			return err
		}
	}
	s.config = cfg

	if err := logs.Initialize(cfg.LogPath()); err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	p, err := store.Load(cfg)
	if err != nil {
		return err
	}
	s.persistence = p
	s.passwords = auth.NewPasswordStore(p.BasePath())

	logs.Logger.Debug("notes opened", zap.String("path", p.BasePath()))
	return auth.Authenticate(s.passwords, s.prompter)
}

// skipAuth reports whether cmd or one of its parents runs without the notes.
func skipAuth(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[annotationNoAuth]; ok {
			return true
		}
		switch c.Name() {
		case "help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return true
		}
	}
	return false
}

func noAuth() map[string]string {
	return map[string]string{annotationNoAuth: "true"}
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// terminalLayout picks the markdown style and wrap width for w.
func terminalLayout(w io.Writer) (string, int) {
	if !isTerminal(w) {
		return "notty", defaultWidth
	}
	width, _, err := term.GetSize(int(w.(*os.File).Fd()))
	if err != nil || width <= 0 {
		return printers.DefaultStyle, defaultWidth
	}
	return printers.DefaultStyle, width
}
