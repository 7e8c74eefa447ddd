// Package tui is the full-screen notes browser: a searchable list of note
// cards with an editor, a preview pane and a delete confirmation.
package tui

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"go.uber.org/zap"

	"tableflip.dev/notes/pkg/logs"
	"tableflip.dev/notes/pkg/note"
	"tableflip.dev/notes/pkg/printers"
	"tableflip.dev/notes/pkg/store"
	"tableflip.dev/notes/pkg/tui/components/confirm"
	"tableflip.dev/notes/pkg/tui/components/editor"
	"tableflip.dev/notes/pkg/tui/components/pager"
	"tableflip.dev/notes/pkg/tui/theme"
)

//go:embed help.md
var helpMarkdown string

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type mode int

const (
	modeList mode = iota
	modeSearch
	modeEdit
	modeConfirm
	modeView
)

const (
	msgDeleted      = "Note deleted."
	msgDeleteFailed = "Failed to delete note."
	msgSaved        = "Note saved."
	msgSaveFailed   = "Failed to save note."
	deleteQuestion  = "Are you sure you want to delete this note?"

	cardHeight = 5 // three lines plus border
)

// Model contains UI state. The note list is always what the last reload
// read from disk.
type Model struct {
	persistence store.Persistence
	ctx         context.Context
	theme       theme.Theme
	mode        mode

	all     []note.Summary
	visible []note.Summary
	cursor  int
	offset  int

	search  textinput.Model
	editor  *editor.Model
	confirm *confirm.Model
	pager   *pager.Model

	status    string
	statusErr bool

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc

	width  int
	height int
}

// New builds the UI over p.
func New(ctx context.Context, p store.Persistence) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	search := textinput.New()
	search.Prompt = "🔎 "
	search.Placeholder = "Search Notes"

	return &Model{
		persistence: p,
		ctx:         ctx,
		theme:       theme.Default(),
		search:      search,
		width:       80,
		height:      24,
	}
}

// Run launches the interactive TUI program.
func Run(ctx context.Context, p store.Persistence) error {
	m := New(ctx, p)
	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := prog.Run()
	m.stopWatch()
	return err
}

type notesLoadedMsg struct {
	notes []note.Summary
}

type noteOpenedMsg struct {
	note *note.Note
	view bool
	err  error
}

type noteSavedMsg struct {
	filename string
	err      error
}

type noteCopiedMsg struct {
	lines int
	err   error
}

type noteDeletedMsg struct {
	filename string
	err      error
}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadNotes(), startWatchCmd(m.ctx, m.persistence))
}

func (m *Model) loadNotes() tea.Cmd {
	p, ctx := m.persistence, m.ctx
	return func() tea.Msg {
		return notesLoadedMsg{notes: p.ListAll(ctx)}
	}
}

func (m *Model) openNote(filename string, view bool) tea.Cmd {
	p := m.persistence
	return func() tea.Msg {
		n, err := p.Load(filename)
		return noteOpenedMsg{note: n, view: view, err: err}
	}
}

func (m *Model) saveNote(s editor.SubmitMsg) tea.Cmd {
	p := m.persistence
	return func() tea.Msg {
		name, err := p.Save(s.Filename, s.Title, s.Date, s.Content)
		return noteSavedMsg{filename: name, err: err}
	}
}

func (m *Model) copyNote(filename string) tea.Cmd {
	p := m.persistence
	return func() tea.Msg {
		n, err := p.Load(filename)
		if err != nil {
			return noteCopiedMsg{err: err}
		}
		if err := writeClipboard(n.Content); err != nil {
			return noteCopiedMsg{err: err}
		}
		return noteCopiedMsg{lines: strings.Count(n.Content, "\n") + 1}
	}
}

func (m *Model) deleteNote(filename string) tea.Cmd {
	p := m.persistence
	return func() tea.Msg {
		return noteDeletedMsg{filename: filename, err: p.Delete(filename)}
	}
}

func startWatchCmd(parent context.Context, p store.Persistence) tea.Cmd {
	if p == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := p.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.search.Width = max(m.width-10, 10)
		if m.editor != nil {
			m.editor.SetSize(m.width, m.height)
		}
		if m.pager != nil {
			m.pager.SetSize(m.width, m.height-2)
		}
		m.clampCursor()
		return m, nil

	case notesLoadedMsg:
		m.all = msg.notes
		m.applyFilter()
		return m, nil

	case noteOpenedMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("Error reading note: %v", msg.err))
			return m, nil
		}
		if msg.view {
			m.pager = pager.New(printers.Document(msg.note), m.width, m.height-2)
			m.mode = modeView
			return m, nil
		}
		m.editor = editor.New(msg.note, m.width, m.height)
		m.mode = modeEdit
		return m, m.editor.Init()

	case editor.SubmitMsg:
		return m, m.saveNote(msg)

	case editor.CancelMsg:
		m.closeEditor()
		return m, nil

	case noteSavedMsg:
		if msg.err != nil {
			logs.Logger.Warn("save failed", zap.Error(msg.err))
			if m.editor != nil {
				m.editor.Err = msgSaveFailed
			}
			return m, nil
		}
		m.closeEditor()
		m.setStatus(msgSaved)
		return m, m.loadNotes()

	case noteCopiedMsg:
		if msg.err != nil {
			logs.Logger.Warn("copy failed", zap.Error(msg.err))
			m.setError("Copy failed: " + msg.err.Error())
			return m, nil
		}
		m.setStatus(fmt.Sprintf("Copied %d line(s)", msg.lines))
		return m, nil

	case confirm.ResultMsg:
		m.confirm = nil
		m.mode = modeList
		if !msg.Confirmed {
			return m, nil
		}
		return m, m.deleteNote(msg.Subject)

	case noteDeletedMsg:
		if msg.err != nil {
			logs.Logger.Warn("delete failed", zap.String("file", msg.filename), zap.Error(msg.err))
			m.setError(msgDeleteFailed)
		} else {
			m.setStatus(msgDeleted)
		}
		return m, m.loadNotes()

	case pager.CloseMsg:
		m.pager = nil
		m.mode = modeList
		return m, nil

	case watchStartedMsg:
		if msg.err != nil {
			logs.Logger.Warn("watch unavailable", zap.Error(msg.err))
			return m, nil
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		return m, m.waitForWatch()

	case watchEventMsg:
		return m, tea.Batch(m.loadNotes(), m.waitForWatch())

	case watchStoppedMsg:
		m.stopWatch()
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, m.forward(msg)
}

// forward hands non-key messages, such as cursor blinks, to the active input.
func (m *Model) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.mode {
	case modeEdit:
		if m.editor != nil {
			m.editor, cmd = m.editor.Update(msg)
		}
	case modeSearch:
		m.search, cmd = m.search.Update(msg)
	case modeView:
		if m.pager != nil {
			m.pager, cmd = m.pager.Update(msg)
		}
	}
	return cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		m.stopWatch()
		return tea.Quit
	}

	switch m.mode {
	case modeEdit, modeView:
		return m.forward(msg)
	case modeConfirm:
		if m.confirm == nil {
			m.mode = modeList
			return nil
		}
		return m.confirm.Update(msg)
	case modeSearch:
		return m.handleSearchKey(msg)
	}
	return m.handleListKey(msg)
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.search.SetValue("")
		m.search.Blur()
		m.mode = modeList
		m.applyFilter()
		return nil
	case "enter", "down", "tab":
		m.search.Blur()
		m.mode = modeList
		return nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applyFilter()
	return cmd
}

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	m.clearStatus()
	switch msg.String() {
	case "q":
		m.stopWatch()
		return tea.Quit
	case "esc":
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.applyFilter()
		}
	case "/":
		m.mode = modeSearch
		return m.search.Focus()
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "g", "home":
		m.cursor = 0
		m.clampCursor()
	case "G", "end":
		m.cursor = len(m.visible) - 1
		m.clampCursor()
	case "n":
		m.editor = editor.New(nil, m.width, m.height)
		m.mode = modeEdit
		return m.editor.Init()
	case "enter", "e":
		if s, ok := m.selected(); ok {
			return m.openNote(s.Filename, false)
		}
	case "v", " ":
		if s, ok := m.selected(); ok {
			return m.openNote(s.Filename, true)
		}
	case "y":
		if s, ok := m.selected(); ok {
			return m.copyNote(s.Filename)
		}
	case "d", "delete":
		if s, ok := m.selected(); ok {
			m.confirm = confirm.New(deleteQuestion, s.Filename, min(m.width-4, 60))
			m.mode = modeConfirm
		}
	case "r":
		return m.loadNotes()
	case "?":
		m.pager = pager.New(helpMarkdown, m.width, m.height-2)
		m.mode = modeView
	}
	return nil
}

func (m *Model) selected() (note.Summary, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return note.Summary{}, false
	}
	return m.visible[m.cursor], true
}

// applyFilter narrows the loaded notes by the search box, keeping the
// cursor on the same note when it is still visible.
func (m *Model) applyFilter() {
	current, had := m.selected()
	m.visible = m.persistence.Search(m.all, m.search.Value())
	m.cursor = 0
	if had {
		for i, s := range m.visible {
			if s.Filename == current.Filename {
				m.cursor = i
				break
			}
		}
	}
	m.clampCursor()
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	per := m.cardsPerPage()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+per {
		m.offset = m.cursor - per + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m *Model) cardsPerPage() int {
	// title bar, search box and footer
	return max((m.height-7)/cardHeight, 1)
}

func (m *Model) closeEditor() {
	m.editor = nil
	m.mode = modeList
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
}

func (m *Model) clearStatus() {
	m.status = ""
	m.statusErr = false
}

func (m *Model) View() string {
	switch m.mode {
	case modeEdit:
		if m.editor != nil {
			return m.editor.View()
		}
	case modeView:
		if m.pager != nil {
			return lipgloss.JoinVertical(lipgloss.Left, m.pager.View(), m.theme.Footer.Help.Render("↑/↓ scroll • q close"))
		}
	case modeConfirm:
		if m.confirm != nil {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.confirm.View())
		}
	}

	parts := []string{
		m.theme.Header.Title.Width(m.width).Render("📓 My Stylish Notes"),
		m.searchView(),
		m.cardsView(),
		m.footerView(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) searchView() string {
	style := m.theme.Header.Search
	if m.mode == modeSearch {
		style = m.theme.Header.SearchActive
	}
	return style.Width(max(m.width-2, 10)).Render(m.search.View())
}

func (m *Model) cardsView() string {
	if len(m.visible) == 0 {
		return m.theme.Card.Empty.Render("✍️ Write something!")
	}

	width := max(m.width-2, 20)
	textWidth := uint(max(width-4, 8))
	end := min(m.offset+m.cardsPerPage(), len(m.visible))

	cards := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		s := m.visible[i]
		body := strings.Join([]string{
			m.theme.Card.Title.Render(truncate.StringWithTail(s.Title, textWidth, "…")),
			m.theme.Card.Date.Render(s.Date),
			m.theme.Card.Preview.Render(truncate.StringWithTail(s.Preview, textWidth, "…")),
		}, "\n")
		style := m.theme.Card.Frame
		if i == m.cursor {
			style = m.theme.Card.Selected
		}
		cards = append(cards, style.Width(width).Render(body))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (m *Model) footerView() string {
	help := m.theme.Footer.Help.Render(fmt.Sprintf("%d/%d • / search • n new • enter edit • v view • d delete • ? help • q quit", len(m.visible), len(m.all)))
	if m.status == "" {
		return help
	}
	style := m.theme.Footer.Status
	if m.statusErr {
		style = m.theme.Footer.Error
	}
	return lipgloss.JoinVertical(lipgloss.Left, style.Render(m.status), help)
}
