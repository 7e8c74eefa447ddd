package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/notes/pkg/note"
	"tableflip.dev/notes/pkg/tui/theme"
)

type field int

const (
	fieldTitle field = iota
	fieldDate
	fieldContent
	fieldCount
)

// SubmitMsg is sent when the user saves a valid note.
type SubmitMsg struct {
	Filename string
	Title    string
	Date     string
	Content  string
}

// CancelMsg is sent when the user leaves the editor without saving.
type CancelMsg struct{}

// Model edits the title, date and content of one note. An empty Filename
// means a new note.
type Model struct {
	Filename string
	Err      string

	title   textinput.Model
	date    textinput.Model
	content textarea.Model
	focus   field

	width  int
	height int
	theme  theme.EditorTheme
}

// New opens the editor on n, or on a blank note dated today when n is nil.
func New(n *note.Note, width, height int) *Model {
	title := textinput.New()
	title.Prompt = ""
	title.Placeholder = "Title"

	date := textinput.New()
	date.Prompt = ""
	date.Placeholder = note.LayoutDate
	date.CharLimit = 32

	content := textarea.New()
	content.Placeholder = "Write something…"
	content.ShowLineNumbers = false
	content.CharLimit = 0

	m := &Model{
		title:   title,
		date:    date,
		content: content,
		theme:   theme.Default().Editor,
	}
	if n != nil {
		m.Filename = n.Filename
		m.title.SetValue(n.Title)
		m.date.SetValue(n.Date)
		m.content.SetValue(n.Content)
	} else {
		m.date.SetValue(note.Today())
	}
	m.SetSize(width, height)
	m.title.Focus()
	return m
}

// SetSize fits the inputs to the available space.
func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
	inner := max(width-8, 20)
	m.title.Width = inner
	m.date.Width = inner
	m.content.SetWidth(inner)
	m.content.SetHeight(max(height-14, 3))
}

// Init starts the cursor blinking in the focused field.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update routes keys to the focused field. tab cycles focus, ctrl+s submits
// and esc cancels.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, func() tea.Msg { return CancelMsg{} }
		case "ctrl+s":
			return m, m.submit()
		case "tab":
			return m, m.setFocus((m.focus + 1) % fieldCount)
		case "shift+tab":
			return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldTitle:
		m.title, cmd = m.title.Update(msg)
	case fieldDate:
		m.date, cmd = m.date.Update(msg)
	case fieldContent:
		m.content, cmd = m.content.Update(msg)
	}
	return m, cmd
}

func (m *Model) submit() tea.Cmd {
	title := strings.TrimSpace(m.title.Value())
	content := strings.TrimSpace(m.content.Value())
	switch {
	case title == "":
		m.Err = "Title cannot be empty."
		return nil
	case content == "":
		m.Err = "Content cannot be empty."
		return nil
	}
	m.Err = ""
	out := SubmitMsg{
		Filename: m.Filename,
		Title:    title,
		Date:     strings.TrimSpace(m.date.Value()),
		Content:  content,
	}
	return func() tea.Msg { return out }
}

func (m *Model) setFocus(f field) tea.Cmd {
	m.title.Blur()
	m.date.Blur()
	m.content.Blur()
	m.focus = f
	switch f {
	case fieldTitle:
		return m.title.Focus()
	case fieldDate:
		return m.date.Focus()
	default:
		return m.content.Focus()
	}
}

func (m *Model) label(f field, text string) string {
	if m.focus == f {
		return m.theme.LabelFocus.Render(text)
	}
	return m.theme.Label.Render(text)
}

func (m *Model) View() string {
	heading := "New Note"
	if m.Filename != "" {
		heading = "Edit Note"
	}

	var b strings.Builder
	b.WriteString(m.theme.LabelFocus.Render(heading))
	b.WriteString("\n\n")
	b.WriteString(m.label(fieldTitle, "Title") + "\n")
	b.WriteString(m.title.View() + "\n\n")
	b.WriteString(m.label(fieldDate, "Date") + "\n")
	b.WriteString(m.date.View() + "\n\n")
	b.WriteString(m.label(fieldContent, "Content") + "\n")
	b.WriteString(m.content.View() + "\n")
	if m.Err != "" {
		b.WriteString("\n" + m.theme.Error.Render(m.Err) + "\n")
	}
	b.WriteString("\n" + m.theme.Help.Render("tab next field • ctrl+s save • esc cancel"))

	style := m.theme.Frame
	if m.width > 0 {
		style = style.Width(m.width - 2)
	}
	return style.Render(b.String())
}
