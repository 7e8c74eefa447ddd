package auth

import (
	"bytes"
	"os"
	"testing"
)

func pipedPrompter(t *testing.T, input string) (*TerminalPrompter, *bytes.Buffer) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	if _, err := w.WriteString(input); err != nil {
		t.Fatalf("write: %v", err)
	}
	w.Close()

	out := &bytes.Buffer{}
	return &TerminalPrompter{In: r, Out: out}, out
}

func TestTerminalPrompterReadsLines(t *testing.T) {
	p, out := pipedPrompter(t, "first\r\nsecond")

	for _, want := range []string{"first", "second"} {
		got, ok, err := p.PromptPassword(msgEnter)
		if err != nil || !ok {
			t.Fatalf("prompt: %q, %v, %v", got, ok, err)
		}
		if got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	}
	if !bytes.Contains(out.Bytes(), []byte(msgEnter)) {
		t.Fatalf("prompt not written: %q", out.String())
	}
}

func TestTerminalPrompterEOFCancels(t *testing.T) {
	p, _ := pipedPrompter(t, "")

	_, ok, err := p.PromptPassword(msgEnter)
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if ok {
		t.Fatal("expected EOF to cancel")
	}
}

func TestTerminalPrompterNotify(t *testing.T) {
	p, out := pipedPrompter(t, "")
	p.Notify(msgIncorrect)
	if out.String() != msgIncorrect+"\n" {
		t.Fatalf("unexpected notice %q", out.String())
	}
}
