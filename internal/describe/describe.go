// Package describe renders a room or container's heading, description, and
// notable-contents listing the way a look/examine command needs it: a
// heading, a description paragraph, and a terse contents listing grouped by
// immediate sub-location.
package describe

import (
	"strings"

	"textadv/internal/engine"
	"textadv/internal/sink"
)

// NotablePair is one {o, n} result from the get_notable_objects activity: o
// is the candidate entity, n is how many times it is worth reporting (a
// count rather than a boolean so a method can fold a pile of identical
// coins into one mention). n=0 suppresses the entity entirely.
type NotablePair struct {
	Obj   engine.ID
	Count int
}

// RegisterDefaults installs the default get_notable_objects rule: anything
// directly related to x that is notable, not scenery, and not the viewing
// actor itself counts once. Authors override by appending a more specific
// method ahead of this default.
func RegisterDefaults(w *engine.World) {
	w.Activity("get_notable_objects").Prepend("default", nil, func(args []engine.ID, next engine.Next) (engine.Value, error) {
		if len(args) < 2 {
			return engine.List(), nil
		}
		x, actor := args[0], args[1]
		var pairs []engine.Value
		for _, o := range w.RelatedTo(x) {
			if o == actor {
				continue
			}
			notable := w.Property("notable").GetWorld(w, []engine.ID{o}).Bool()
			scenery := w.Property("scenery").GetWorld(w, []engine.ID{o}).Bool()
			if !notable || scenery {
				continue
			}
			pairs = append(pairs, engine.Map(map[string]engine.Value{
				"o": engine.IDVal(o),
				"n": engine.Int(1),
			}))
		}
		return engine.List(pairs...), nil
	})
}

func getNotableObjects(w *engine.World, x, actor engine.ID) []NotablePair {
	v, err := w.Activity("get_notable_objects").Call([]engine.ID{x, actor})
	if err != nil {
		return nil
	}
	out := make([]NotablePair, 0, len(v.List()))
	for _, item := range v.List() {
		m := item.Map()
		if n := m["n"].Int(); n > 0 {
			out = append(out, NotablePair{Obj: m["o"].ID(), Count: n})
		}
	}
	return out
}

// listsInline reports whether a container's contents are shown inline at
// the point it is mentioned: open containers always do, closed ones only
// if they are transparent.
func listsInline(w *engine.World, o engine.ID) bool {
	if w.IsOpen(o) {
		return true
	}
	return w.IsTransparent(o)
}

func describeOneLine(w *engine.World, o engine.ID) string {
	text := w.Article(o) + " " + w.Name(o)
	if w.IsA(o, engine.KindContainer) && !listsInline(w, o) {
		text += " (which is closed)"
	}
	return text
}

func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}

// Room writes the heading, description paragraph, and notable-contents
// listing for the actor's visible container to snk. If the visible
// container does not contain light, it emits the fixed "Darkness" heading
// and canned message instead, and does not mark anything visited.
func Room(w *engine.World, actor engine.ID, snk sink.Sink, renderer *sink.Renderer) {
	vc := w.VisibleContainer(actor)

	if !w.ContainsLight(vc) {
		snk.EnterBlock("heading")
		snk.WriteText("Darkness")
		snk.Leave()
		snk.Para()
		renderer.Write(snk, "It is pitch dark, and you can't see a thing.")
		snk.Para()
		return
	}

	w.SetVisited(vc, actor, true)

	snk.EnterBlock("heading")
	snk.WriteText(w.Name(vc))
	snk.Leave()
	snk.Para()

	if desc := w.Description(vc); desc != "" {
		renderer.Write(snk, desc)
		snk.Para()
	}

	writeContents(w, vc, actor, snk, renderer, "", "")
}

// writeContents lists vc's notable contents, recursing into any
// sub-container or supporter whose contents list inline. prep/name are the
// "In"/"the box" pair used to introduce a sub-listing; both empty means this
// is the top-level room listing.
func writeContents(w *engine.World, container, actor engine.ID, snk sink.Sink, renderer *sink.Renderer, prep, name string) {
	pairs := getNotableObjects(w, container, actor)
	if len(pairs) == 0 {
		return
	}

	names := make([]string, 0, len(pairs))
	for _, p := range pairs {
		names = append(names, describeOneLine(w, p.Obj))
	}

	var line string
	if prep == "" {
		line = "You can see " + joinList(names) + " here."
	} else {
		line = prep + " " + name + " you also see " + joinList(names) + "."
	}
	renderer.Write(snk, line)
	snk.Para()

	for _, p := range pairs {
		sub := p.Obj
		switch {
		case w.IsA(sub, engine.KindContainer) && listsInline(w, sub):
			writeContents(w, sub, actor, snk, renderer, "In", "the "+w.Name(sub))
		case w.IsA(sub, engine.KindSupporter):
			writeContents(w, sub, actor, snk, renderer, "On", "the "+w.Name(sub))
		}
	}
}
