package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPropertyMapOverridesRuleDefault(t *testing.T) {
	w := NewWorld()
	w.MakeThing("ball", "red ball", "", "")

	if w.IsOpen("ball") {
		t.Fatal("open should default to false")
	}
	w.Property("open").Set([]ID{"ball"}, Bool(true))
	if !w.IsOpen("ball") {
		t.Fatal("explicit map entry should override the default rule")
	}
	w.Property("open").Unset([]ID{"ball"})
	if w.IsOpen("ball") {
		t.Fatal("unsetting the explicit entry should fall back to the default")
	}
}

func TestDefaultPronounAndArticle(t *testing.T) {
	w := NewWorld()
	w.MakeThing("ball", "red ball", "", "")
	if w.Pronoun("ball") != "it" {
		t.Fatalf("want default pronoun it, got %q", w.Pronoun("ball"))
	}
	if w.Article("ball") != "a" {
		t.Fatalf("want default article a, got %q", w.Article("ball"))
	}
}

func TestScriptedTextEvaluatesAgainstWorld(t *testing.T) {
	w := NewWorld()
	w.MakeRoom("lobby", "Lobby", "")
	source := `
func Value(ctx map[string]interface{}) string {
	self := ctx["self"].(string)
	name := ctx["name"].(func(string) string)
	return "this is " + name(self)
}
`
	w.Property("description").Set([]ID{"lobby"}, w.ScriptedText(source))
	got := w.Description("lobby")
	if got != "this is Lobby" {
		t.Fatalf("want %q, got %q", "this is Lobby", got)
	}
}

func TestScriptedTextCompileErrorIsReportedInline(t *testing.T) {
	w := NewWorld()
	w.MakeRoom("lobby", "Lobby", "")
	w.Property("description").Set([]ID{"lobby"}, w.ScriptedText("not valid go"))
	got := w.Description("lobby")
	if got == "" {
		t.Fatal("a compile error should still produce a non-empty diagnostic string")
	}
}

func TestSaveAndLoadStateRoundTrip(t *testing.T) {
	w := NewWorld()
	w.MakeRoom("lobby", "Lobby", "A plain lobby.")
	w.MakeRoom("hall", "Hall", "A long hall.")
	w.ConnectRooms("lobby", "north", "hall", false)
	w.MakeThing("ball", "red ball", "lobby", ContainedBy)
	w.MakePerson("alice", "Alice", "lobby")
	w.SetPlayer("alice")
	w.SetVisited("lobby", "alice", true)

	dir := t.TempDir()
	path := filepath.Join(dir, "save.json")
	if err := w.SaveState(path); err != nil {
		t.Fatalf("SaveState: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("save file missing: %v", err)
	}

	w2 := NewWorld()
	w2.DeclareKind(KindRoom, KindKind) // no-op re-declare is harmless
	if err := w2.LoadState(path); err != nil {
		t.Fatalf("LoadState: %v", err)
	}

	if w2.Player() != "alice" {
		t.Fatalf("want player alice, got %v", w2.Player())
	}
	dest, ok := w2.ExitTo("lobby", "north")
	if !ok || dest != "hall" {
		t.Fatalf("exits should survive a round trip, got %v %v", dest, ok)
	}
	loc, tag, ok := w2.LocationOf("ball")
	if !ok || loc != "lobby" || tag != ContainedBy {
		t.Fatalf("ball location should survive a round trip, got %v %v %v", loc, tag, ok)
	}
	if !w2.IsVisited("lobby", "alice") {
		t.Fatal("visited flag should survive a round trip")
	}
}

func TestLoadAreaFromDirectory(t *testing.T) {
	dir := t.TempDir()
	area := `{
		"name": "demo",
		"rooms": [
			{"id": "lobby", "name": "Lobby", "description": "A plain lobby.", "exits": {"north": "hall"}},
			{"id": "hall", "name": "Hall", "description": "A long hall.", "exits": {"south": "lobby"}}
		],
		"things": [
			{"id": "ball", "kind": "thing", "name": "red ball", "location": "lobby", "words": ["red", "ball"]}
		]
	}`
	if err := os.WriteFile(filepath.Join(dir, "demo.json"), []byte(area), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	w := NewWorld()
	if err := LoadArea(w, dir); err != nil {
		t.Fatalf("LoadArea: %v", err)
	}
	if w.Name("lobby") != "Lobby" {
		t.Fatalf("want Lobby, got %q", w.Name("lobby"))
	}
	dest, ok := w.ExitTo("lobby", "north")
	if !ok || dest != "hall" {
		t.Fatalf("want hall, got %v %v", dest, ok)
	}
	words := w.Words("ball")
	if len(words) != 2 || words[0] != "red" || words[1] != "ball" {
		t.Fatalf("unexpected words: %v", words)
	}
}

func TestLoadAreaMintsIdForAnonymousThing(t *testing.T) {
	dir := t.TempDir()
	area := `{
		"name": "demo",
		"rooms": [
			{"id": "lobby", "name": "Lobby", "description": "A plain lobby."}
		],
		"things": [
			{"kind": "thing", "name": "loose pebble", "location": "lobby"},
			{"kind": "thing", "name": "loose pebble", "location": "lobby"}
		]
	}`
	if err := os.WriteFile(filepath.Join(dir, "demo.json"), []byte(area), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	w := NewWorld()
	if err := LoadArea(w, dir); err != nil {
		t.Fatalf("LoadArea: %v", err)
	}
	var pebbles []ID
	for _, id := range w.AllEntities() {
		loc, _, ok := w.LocationOf(id)
		if ok && loc == ID("lobby") && w.Name(id) == "loose pebble" {
			pebbles = append(pebbles, id)
		}
	}
	if len(pebbles) != 2 {
		t.Fatalf("want 2 minted pebbles, got %d: %v", len(pebbles), pebbles)
	}
	if pebbles[0] == pebbles[1] {
		t.Fatalf("minted ids should be distinct, both %q", pebbles[0])
	}
}

func TestWithActorRestoresOnPanic(t *testing.T) {
	w := NewWorld()
	w.SetPlayer("alice")

	func() {
		defer func() { recover() }()
		w.WithActor("bob", func() {
			if w.Actor() != "bob" {
				t.Fatal("actor should be swapped inside WithActor")
			}
			panic("boom")
		})
	}()

	if w.Actor() != "alice" {
		t.Fatalf("actor should be restored after panic, got %v", w.Actor())
	}
}
