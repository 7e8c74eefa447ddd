package pager

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/notes/pkg/printers"
	"tableflip.dev/notes/pkg/tui/theme"
)

// CloseMsg is sent when the user dismisses the pager.
type CloseMsg struct{}

// Model renders a Markdown document inside a bordered, scrollable viewport.
type Model struct {
	viewport viewport.Model
	markdown string
	width    int
	height   int

	frame lipgloss.Style
	err   error
}

// New constructs a pager for markdown sized to the provided bounds.
func New(markdown string, width, height int) *Model {
	m := &Model{
		viewport: viewport.New(1, 1),
		markdown: markdown,
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Secondary),
	}
	m.viewport.MouseWheelEnabled = true
	m.SetSize(width, height)
	return m
}

// Update scrolls the viewport; q or esc closes the pager.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc":
			return m, func() tea.Msg { return CloseMsg{} }
		}
	}
	vp, cmd := m.viewport.Update(msg)
	m.viewport = vp
	return m, cmd
}

// View renders the document inside a rounded frame.
func (m *Model) View() string {
	body := m.viewport.View()
	if m.err != nil {
		body = "preview unavailable: " + m.err.Error()
	}
	return m.frame.Width(m.width - m.frame.GetHorizontalBorderSize()).Render(body)
}

// SetSize configures the pager dimensions and re-renders the markdown to fit.
func (m *Model) SetSize(width, height int) {
	width = max(width, 32)
	height = max(height, 8)
	if m.width == width && m.height == height {
		return
	}
	m.width = width
	m.height = height

	innerWidth := max(width-m.frame.GetHorizontalFrameSize(), 1)
	innerHeight := max(height-m.frame.GetVerticalFrameSize(), 1)
	m.viewport.Width = innerWidth
	m.viewport.Height = innerHeight

	m.render(innerWidth)
}

func (m *Model) render(wrap int) {
	content, err := printers.Markdown(strings.TrimSpace(m.markdown), printers.DefaultStyle, max(wrap-2, 10))
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.viewport.SetContent(stripANSI(content))
	m.viewport.SetYOffset(0)
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;:]*[A-Za-z~]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
