// Package storetest provides an in-memory store.Persistence for tests.
package storetest

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"tableflip.dev/notes/pkg/note"
	"tableflip.dev/notes/pkg/store"
)

// Memory keeps notes in a map keyed by file name. It follows the same
// validation rules as the disk store.
type Memory struct {
	mu      sync.Mutex
	counter int
	notes   map[string]note.Note
	events  chan store.Event

	// Deleted records every successfully deleted file name.
	Deleted []string
}

var _ store.Persistence = (*Memory)(nil)

// NewMemory seeds the store with notes. Notes without a file name get one.
func NewMemory(notes ...note.Note) *Memory {
	m := &Memory{notes: make(map[string]note.Note), events: make(chan store.Event, 16)}
	for _, n := range notes {
		if n.Filename == "" {
			n.Filename = m.newFilename(n.Title)
		}
		m.notes[n.Filename] = n
	}
	return m
}

func (m *Memory) newFilename(title string) string {
	m.counter++
	return fmt.Sprintf("%s_%d%s", strings.Join(strings.Fields(title), "_"), m.counter, note.Extension)
}

func (m *Memory) BasePath() string {
	return "memory"
}

func (m *Memory) ListAll(_ context.Context) []note.Summary {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]note.Summary, 0, len(m.notes))
	for _, n := range m.notes {
		s, _ := note.ReadSummary(n.Filename, strings.NewReader(string(note.Encode(n.Title, n.Date, n.Content))))
		out = append(out, s)
	}
	note.SortByDate(out)
	return out
}

func (m *Memory) Search(notes []note.Summary, query string) []note.Summary {
	return note.Filter(notes, query)
}

func (m *Memory) Load(filename string) (*note.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.notes[filename]
	if !ok {
		return nil, fmt.Errorf("%w: %s: not found", store.ErrRead, filename)
	}
	return &n, nil
}

func (m *Memory) Save(filename, title, date, content string) (string, error) {
	title = strings.TrimSpace(title)
	date = strings.TrimSpace(date)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return "", store.ErrEmptyField
	}
	if strings.ContainsAny(title, "\r\n") || strings.ContainsAny(date, "\r\n") {
		return "", store.ErrInvalidField
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if filename == "" {
		filename = m.newFilename(title)
	}
	m.notes[filename] = note.Note{Filename: filename, Title: title, Date: date, Content: content}
	m.emit(filename)
	return filename, nil
}

func (m *Memory) Delete(filename string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.notes[filename]; !ok {
		return fmt.Errorf("%w: %s: not found", store.ErrDelete, filename)
	}
	delete(m.notes, filename)
	m.Deleted = append(m.Deleted, filename)
	m.emit(filename)
	return nil
}

// Watch returns the store's change channel. It is never closed.
func (m *Memory) Watch(_ context.Context) (<-chan store.Event, error) {
	return m.events, nil
}

func (m *Memory) emit(filename string) {
	select {
	case m.events <- store.Event{Type: store.EventNoteChanged, Filename: filename}:
	default:
	}
}
