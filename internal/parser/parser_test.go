package parser

import (
	"testing"

	"textadv/internal/engine"
)

func newParserWorld() *engine.World {
	w := engine.NewWorld()
	w.MakeRoom("lobby", "Lobby", "")
	w.Property("makes_light").Set([]engine.ID{"lobby"}, engine.Bool(true))
	w.MakePerson("alice", "Alice", "lobby")
	w.SetPlayer("alice")
	w.MakeThing("ball", "red ball", "lobby", engine.ContainedBy)
	w.Property("words").Set([]engine.ID{"ball"}, engine.List(engine.Str("red"), engine.Str("@ball")))
	w.MakeThing("box", "cardboard box", "lobby", engine.ContainedBy)
	w.Property("words").Set([]engine.ID{"box"}, engine.List(engine.Str("cardboard"), engine.Str("@box")))
	return w
}

func TestTokenizeLowercasesAndTracksByteRanges(t *testing.T) {
	tokens := Tokenize("Take the RED ball.")
	want := []string{"take", "the", "red", "ball"}
	if len(tokens) != len(want) {
		t.Fatalf("want %d tokens, got %d: %v", len(want), len(tokens), tokens)
	}
	for i, w := range want {
		if tokens[i].Text != w {
			t.Fatalf("token %d: want %q, got %q", i, w, tokens[i].Text)
		}
	}
	if tokens[0].Start != 0 || tokens[0].End != 4 {
		t.Fatalf("unexpected byte range for first token: %+v", tokens[0])
	}
}

func TestMatchNounPhraseResolvesByWordIntersection(t *testing.T) {
	w := newParserWorld()
	universe := w.AllEntities()
	tokens := Tokenize("the red ball")

	matches := MatchNounPhrase(w, universe, tokens, 0)
	var found bool
	for _, m := range matches {
		if m.Value.ID() == "ball" && m.End == len(tokens) {
			found = true
			if m.Score < 3 { // +1 adjective + 2 noun
				t.Fatalf("want score >= 3 for adjective+noun match, got %d", m.Score)
			}
		}
	}
	if !found {
		t.Fatal("expected a full-phrase match resolving to ball")
	}
}

func TestMatchNounPhraseDisambiguatesByAdjective(t *testing.T) {
	w := newParserWorld()
	universe := w.AllEntities()

	ballOnly := MatchNounPhrase(w, universe, Tokenize("red ball"), 0)
	resolvesTo := func(matches []Match, id engine.ID) bool {
		for _, m := range matches {
			if m.Value.ID() == id {
				return true
			}
		}
		return false
	}
	if !resolvesTo(ballOnly, "ball") {
		t.Fatal("'red ball' should resolve to ball")
	}
	if resolvesTo(ballOnly, "box") {
		t.Fatal("'red ball' should not resolve to box")
	}
}

func TestUnderstandAndParseSimpleVerb(t *testing.T) {
	w := newParserWorld()
	g := NewGrammar(w)
	g.Understand("command", "take [something dobj]", func(b Bindings) engine.Value {
		return engine.Map(map[string]engine.Value{
			"verb": engine.Str("taking"),
			"dobj": b["dobj"],
		})
	}, nil)

	matches := g.ParseLine("alice", "take the red ball")
	if len(matches) == 0 {
		t.Fatal("expected at least one parse")
	}
	action := matches[0].Value.Map()
	if action["verb"].Str() != "taking" {
		t.Fatalf("want verb taking, got %q", action["verb"].Str())
	}
	if action["dobj"].ID() != "ball" {
		t.Fatalf("want dobj ball, got %q", action["dobj"].ID())
	}
}

func TestUnderstandDirectionFrontend(t *testing.T) {
	w := newParserWorld()
	w.MakeRoom("hall", "Hall", "")
	w.ConnectRooms("lobby", "north", "hall", false)
	g := NewGrammar(w)
	g.Understand("command", "go [direction dir]", func(b Bindings) engine.Value {
		return engine.Map(map[string]engine.Value{"verb": engine.Str("going"), "dir": b["dir"]})
	}, nil)

	matches := g.ParseLine("alice", "go n")
	if len(matches) != 1 {
		t.Fatalf("want 1 parse, got %d", len(matches))
	}
	if matches[0].Value.Map()["dir"].Str() != "north" {
		t.Fatalf("want canonical direction north, got %q", matches[0].Value.Map()["dir"].Str())
	}
}

func TestUnderstandAlternationWords(t *testing.T) {
	w := newParserWorld()
	w.MakeRoom("hall", "Hall", "")
	w.ConnectRooms("lobby", "north", "hall", false)
	g := NewGrammar(w)
	g.Understand("command", "go/walk [direction dir]", func(b Bindings) engine.Value {
		return engine.Map(map[string]engine.Value{"verb": engine.Str("going")})
	}, nil)

	if len(g.ParseLine("alice", "go north")) != 1 {
		t.Fatal("go north should parse")
	}
	if len(g.ParseLine("alice", "walk north")) != 1 {
		t.Fatal("walk north should parse")
	}
	if len(g.ParseLine("alice", "run north")) != 0 {
		t.Fatal("run north should not parse")
	}
}

func TestSomethingFiltersByVisibility(t *testing.T) {
	w := engine.NewWorld()
	w.MakeRoom("cellar", "Cellar", "")
	w.MakePerson("alice", "Alice", "cellar")
	w.SetPlayer("alice")
	w.MakeThing("ball", "red ball", "cellar", engine.ContainedBy)
	w.Property("words").Set([]engine.ID{"ball"}, engine.List(engine.Str("@ball")))

	g := NewGrammar(w)
	g.Understand("command", "examine [something dobj]", func(b Bindings) engine.Value {
		return engine.Map(map[string]engine.Value{"verb": engine.Str("examining"), "dobj": b["dobj"]})
	}, nil)

	// Dark room: the ball is not visible, so "something" should reject it.
	if matches := g.ParseLine("alice", "examine ball"); len(matches) != 0 {
		t.Fatalf("want no parse in darkness, got %d", len(matches))
	}

	w.Property("makes_light").Set([]engine.ID{"cellar"}, engine.Bool(true))
	if matches := g.ParseLine("alice", "examine ball"); len(matches) == 0 {
		t.Fatal("want a parse once the room is lit")
	}
}
