package sink

import (
	"strings"
	"testing"

	"textadv/internal/engine"
)

func newTestWorld() (*engine.World, engine.ID, engine.ID) {
	w := engine.NewWorld()
	w.MakeRoom("lobby", "Lobby", "")
	w.MakeThing("ball", "red ball", "lobby", engine.ContainedBy)
	w.MakePerson("alice", "Alice", "lobby")
	w.SetPlayer("alice")
	return w, "alice", "ball"
}

func TestWriteLiteralText(t *testing.T) {
	w, actor, _ := newTestWorld()
	r := NewRenderer(w, actor)
	term := NewTerminal(80, false)
	r.Write(term, "hello there")
	if got := term.String(); got != "hello there" {
		t.Fatalf("want %q, got %q", "hello there", got)
	}
}

func TestWriteBracketCommand(t *testing.T) {
	w, actor, ball := newTestWorld()
	r := NewRenderer(w, actor)
	term := NewTerminal(80, false)
	r.Write(term, "You see [the '"+string(ball)+"'] here.")
	got := term.String()
	if !strings.Contains(got, "the red ball") {
		t.Fatalf("want rendered object reference, got %q", got)
	}
}

func TestWriteRewordSugar(t *testing.T) {
	w, actor, _ := newTestWorld()
	r := NewRenderer(w, actor)
	term := NewTerminal(80, false)
	r.Write(term, "{bob} {take} the ball.")
	got := term.String()
	if got != "you take the ball." {
		t.Fatalf("want %q, got %q", "you take the ball.", got)
	}
}

func TestWriteRewordThirdPerson(t *testing.T) {
	w := engine.NewWorld()
	w.MakeRoom("lobby", "Lobby", "")
	w.MakePerson("alice", "Alice", "lobby")
	w.MakePerson("bob", "Bob", "lobby")
	w.SetPlayer("alice")

	r := NewRenderer(w, "bob")
	term := NewTerminal(80, false)
	r.Write(term, "{bob} {take} the ball.")
	got := term.String()
	if got != "Bob takes the ball." {
		t.Fatalf("want %q, got %q", "Bob takes the ball.", got)
	}
}

func TestRewordIdentityOnReservedStems(t *testing.T) {
	w, actor, _ := newTestWorld()
	for _, stem := range []string{"we", "us", "our", "ours", "ourself", "ourselves", "bobs"} {
		if got := reword(w, actor, stem, nil); got != stem {
			t.Fatalf("reword(%q) should be identity, got %q", stem, got)
		}
	}
}

func TestRewordIdentityForPlayerOnUnknownStem(t *testing.T) {
	w, actor, _ := newTestWorld()
	if got := reword(w, actor, "climb", nil); got != "climb" {
		t.Fatalf("want identity for player on unmapped stem, got %q", got)
	}
}

func TestRewordThirdPersonSuffix(t *testing.T) {
	w := engine.NewWorld()
	w.MakeRoom("lobby", "Lobby", "")
	w.MakePerson("alice", "Alice", "lobby")
	w.MakePerson("bob", "Bob", "lobby")
	w.SetPlayer("alice")

	cases := map[string]string{
		"climb": "climbs",
		"wash":  "washes",
		"fly":   "flies",
		"go":    "goes",
		"are":   "is",
		"have":  "has",
		"do":    "does",
		"can":   "can",
	}
	for base, want := range cases {
		if got := reword(w, "bob", base, nil); got != want {
			t.Fatalf("reword(%q) third person: want %q, got %q", base, want, got)
		}
	}
}
