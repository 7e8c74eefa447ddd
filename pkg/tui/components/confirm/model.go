package confirm

import (
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/notes/pkg/tui/theme"
)

// Model displays a yes/no question about one subject.
type Model struct {
	Message string
	Subject string
	Width   int

	theme theme.ModalTheme
}

// ResultMsg is sent when the user answers.
type ResultMsg struct {
	Subject   string
	Confirmed bool
}

// New creates a confirmation dialog for subject.
func New(message, subject string, width int) *Model {
	return &Model{
		Message: message,
		Subject: subject,
		Width:   width,
		theme:   theme.Default().Modal,
	}
}

// Update handles key events for the dialog.
func (m *Model) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "enter":
		return m.answer(true)
	case "n", "esc":
		return m.answer(false)
	}
	return nil
}

func (m *Model) answer(ok bool) tea.Cmd {
	subject := m.Subject
	return func() tea.Msg {
		return ResultMsg{Subject: subject, Confirmed: ok}
	}
}

func (m *Model) View() string {
	content := m.theme.Title.Render(m.Message) + "\n"
	content += "\n"
	content += m.theme.Yes.Render("[y]") + " Yes  "
	content += m.theme.No.Render("[n/esc]") + " No"

	style := m.theme.Frame
	if m.Width > 0 {
		style = style.Width(m.Width)
	}
	return style.Render(content)
}
