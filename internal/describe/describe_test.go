package describe

import (
	"strings"
	"testing"

	"textadv/internal/engine"
	"textadv/internal/sink"
)

func newDescribeWorld() (*engine.World, engine.ID) {
	w := engine.NewWorld()
	RegisterDefaults(w)
	w.MakeRoom("lobby", "Lobby", "A bare entrance hall.")
	w.Property("makes_light").Set([]engine.ID{"lobby"}, engine.Bool(true))
	w.MakePerson("alice", "Alice", "lobby")
	w.SetPlayer("alice")
	return w, "alice"
}

func render(w *engine.World, actor engine.ID) (*sink.Terminal, string) {
	term := sink.NewTerminal(80, false)
	renderer := sink.NewRenderer(w, actor)
	Room(w, actor, term, renderer)
	return term, term.String()
}

func TestRoomRendersHeadingAndDescription(t *testing.T) {
	w, alice := newDescribeWorld()
	_, text := render(w, alice)
	if !strings.Contains(text, "Lobby") {
		t.Fatalf("want heading Lobby, got %q", text)
	}
	if !strings.Contains(text, "A bare entrance hall.") {
		t.Fatalf("want description rendered, got %q", text)
	}
}

func TestRoomMarksVisited(t *testing.T) {
	w, alice := newDescribeWorld()
	if w.IsVisited("lobby", alice) {
		t.Fatal("should start unvisited")
	}
	render(w, alice)
	if !w.IsVisited("lobby", alice) {
		t.Fatal("want lobby marked visited after a lit look")
	}
}

func TestRoomListsNotableContents(t *testing.T) {
	w, alice := newDescribeWorld()
	w.MakeThing("ball", "red ball", "lobby", engine.ContainedBy)
	_, text := render(w, alice)
	if !strings.Contains(text, "a red ball") {
		t.Fatalf("want ball mentioned, got %q", text)
	}
}

func TestRoomSuppressesSceneryAndActor(t *testing.T) {
	w, alice := newDescribeWorld()
	w.MakeThing("wall", "stone wall", "lobby", engine.ContainedBy)
	w.Property("scenery").Set([]engine.ID{"wall"}, engine.Bool(true))
	_, text := render(w, alice)
	if strings.Contains(text, "stone wall") {
		t.Fatalf("scenery should be suppressed, got %q", text)
	}
	if strings.Contains(text, "Alice") {
		t.Fatalf("the actor should not list itself, got %q", text)
	}
}

func TestOpenContainerListsContentsInline(t *testing.T) {
	w, alice := newDescribeWorld()
	w.MakeContainer("box", "cardboard box", "lobby", engine.ContainedBy, true, false)
	w.MakeThing("key", "brass key", "box", engine.ContainedBy)
	_, text := render(w, alice)
	if !strings.Contains(text, "In the cardboard box you also see a brass key.") {
		t.Fatalf("want inline sub-listing, got %q", text)
	}
}

func TestClosedOpaqueContainerHidesContentsAndAddsSuffix(t *testing.T) {
	w, alice := newDescribeWorld()
	w.MakeContainer("box", "cardboard box", "lobby", engine.ContainedBy, false, false)
	w.Property("opaque").Set([]engine.ID{"box"}, engine.Bool(true))
	w.MakeThing("key", "brass key", "box", engine.ContainedBy)
	_, text := render(w, alice)
	if !strings.Contains(text, "a cardboard box (which is closed)") {
		t.Fatalf("want closed suffix, got %q", text)
	}
	if strings.Contains(text, "brass key") {
		t.Fatalf("contents of a closed opaque container must not be listed, got %q", text)
	}
}

func TestDarknessSuppressesDescriptionAndVisited(t *testing.T) {
	w := engine.NewWorld()
	RegisterDefaults(w)
	w.MakeRoom("cellar", "Cellar", "A damp cellar.")
	w.MakePerson("alice", "Alice", "cellar")
	w.SetPlayer("alice")

	_, text := render(w, "alice")
	if !strings.Contains(text, "Darkness") {
		t.Fatalf("want Darkness heading, got %q", text)
	}
	if strings.Contains(text, "damp cellar") {
		t.Fatalf("description must not leak through darkness, got %q", text)
	}
	if w.IsVisited("cellar", "alice") {
		t.Fatal("darkness must not set visited")
	}
}
