package theme

import "github.com/charmbracelet/lipgloss"

// Palette of the notes UI.
var (
	Primary   = lipgloss.Color("#006077")
	Secondary = lipgloss.Color("#83C5BE")
	Light     = lipgloss.Color("#EDF6F9")
	Accent    = lipgloss.Color("#FFDDD2")

	Muted  = lipgloss.Color("245")
	Danger = lipgloss.Color("#E76F51")
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header HeaderTheme
	Card   CardTheme
	Editor EditorTheme
	Modal  ModalTheme
	Footer FooterTheme
}

// HeaderTheme styles the title banner and the search box.
type HeaderTheme struct {
	Title        lipgloss.Style
	Search       lipgloss.Style
	SearchActive lipgloss.Style
}

// CardTheme styles one note in the list.
type CardTheme struct {
	Frame    lipgloss.Style
	Selected lipgloss.Style
	Title    lipgloss.Style
	Date     lipgloss.Style
	Preview  lipgloss.Style
	Empty    lipgloss.Style
}

// EditorTheme styles the note editor.
type EditorTheme struct {
	Frame      lipgloss.Style
	Label      lipgloss.Style
	LabelFocus lipgloss.Style
	Error      lipgloss.Style
	Help       lipgloss.Style
}

// ModalTheme styles centered dialogs.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Yes   lipgloss.Style
	No    lipgloss.Style
}

// FooterTheme styles the help line and status messages.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Secondary).
		Padding(0, 1)

	return Theme{
		Header: HeaderTheme{
			Title: lipgloss.NewStyle().
				Bold(true).
				Foreground(Light).
				Background(Primary).
				Padding(0, 2),
			Search: lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(Muted).
				Padding(0, 1),
			SearchActive: lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(Secondary).
				Padding(0, 1),
		},
		Card: CardTheme{
			Frame:    frame,
			Selected: frame.BorderForeground(Accent).BorderStyle(lipgloss.ThickBorder()),
			Title:    lipgloss.NewStyle().Bold(true).Foreground(Secondary),
			Date:     lipgloss.NewStyle().Italic(true).Foreground(Muted),
			Preview:  lipgloss.NewStyle().Foreground(Light),
			Empty:    lipgloss.NewStyle().Italic(true).Foreground(Muted).Padding(1, 2),
		},
		Editor: EditorTheme{
			Frame:      frame.BorderForeground(Primary).Padding(1, 2),
			Label:      lipgloss.NewStyle().Foreground(Muted),
			LabelFocus: lipgloss.NewStyle().Bold(true).Foreground(Secondary),
			Error:      lipgloss.NewStyle().Bold(true).Foreground(Danger),
			Help:       lipgloss.NewStyle().Foreground(Muted),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Accent).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true).Foreground(Accent),
			Yes:   lipgloss.NewStyle().Bold(true).Foreground(Secondary),
			No:    lipgloss.NewStyle().Bold(true).Foreground(Danger),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(Muted),
			Status: lipgloss.NewStyle().Foreground(Secondary),
			Error:  lipgloss.NewStyle().Bold(true).Foreground(Danger),
		},
	}
}
