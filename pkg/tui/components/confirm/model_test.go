package confirm

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestUpdate(t *testing.T) {
	tests := []struct {
		key  tea.KeyMsg
		want bool
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}, true},
		{tea.KeyMsg{Type: tea.KeyEnter}, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, false},
	}
	for _, tt := range tests {
		m := New("Delete?", "a.txt", 40)
		cmd := m.Update(tt.key)
		if cmd == nil {
			t.Fatalf("%s: expected a command", tt.key)
		}
		res, ok := cmd().(ResultMsg)
		if !ok {
			t.Fatalf("%s: expected ResultMsg", tt.key)
		}
		if res.Confirmed != tt.want || res.Subject != "a.txt" {
			t.Errorf("%s: got %+v", tt.key, res)
		}
	}
}

func TestUpdateIgnoresOtherKeys(t *testing.T) {
	m := New("Delete?", "a.txt", 40)
	if cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}); cmd != nil {
		t.Fatal("expected no command")
	}
}

func TestView(t *testing.T) {
	v := New("Are you sure?", "a.txt", 0).View()
	if !strings.Contains(v, "Are you sure?") || !strings.Contains(v, "[y]") {
		t.Fatalf("unexpected view %q", v)
	}
}
