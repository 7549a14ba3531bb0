package sink

import (
	"strings"
	"testing"
)

func TestTerminalWrapsLongLines(t *testing.T) {
	term := NewTerminal(20, false)
	term.WriteText("this is a long sentence that should wrap across several lines of output")
	got := term.String()
	for _, line := range strings.Split(got, "\n") {
		if len([]rune(line)) > 20 {
			t.Fatalf("line exceeds width: %q", line)
		}
	}
}

func TestTerminalParaInsertsBlankLine(t *testing.T) {
	term := NewTerminal(80, false)
	term.WriteText("first")
	term.Para()
	term.WriteText("second")
	got := term.String()
	if !strings.Contains(got, "first\n\nsecond") {
		t.Fatalf("expected a blank line between the paragraphs, got %q", got)
	}
}

func TestTerminalColorWrapsAnsiReset(t *testing.T) {
	term := NewTerminal(80, true)
	term.EnterInline("heading")
	term.WriteText("Lobby")
	term.Leave()
	got := term.String()
	if !strings.Contains(got, AnsiBold) || !strings.HasSuffix(strings.TrimRight(got, "\n"), AnsiReset) {
		t.Fatalf("expected ansi bold+reset wrapping, got %q", got)
	}
}

func TestTerminalNoColorOmitsEscapes(t *testing.T) {
	term := NewTerminal(80, false)
	term.EnterInline("heading")
	term.WriteText("Lobby")
	term.Leave()
	got := term.String()
	if strings.Contains(got, "\x1b[") {
		t.Fatalf("expected no ANSI escapes, got %q", got)
	}
}
