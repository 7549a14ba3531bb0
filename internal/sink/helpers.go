package sink

import (
	"strings"

	"textadv/internal/engine"
)

// registerHelperCommands installs reword and the object-reference helpers
// (the/The/a/A/we/us/our/ours/ourself/ourselves) as template commands, so
// `[the 'ball']` and `{take}` both work from Write.
func registerHelperCommands(r *Renderer) {
	r.Register("reword", func(r *Renderer, s Sink, args []string) {
		if len(args) == 0 {
			return
		}
		s.WriteText(reword(r.World, r.Actor, args[0], args[1:]))
	})
	r.Register("the", objectCommand(refThe, false))
	r.Register("The", objectCommand(refThe, true))
	r.Register("a", objectCommand(refA, false))
	r.Register("A", objectCommand(refA, true))
	r.Register("we", actorPronounCommand("subject", false))
	r.Register("us", actorPronounCommand("object", false))
	r.Register("our", actorPronounCommand("possessive", false))
	r.Register("ours", actorPronounCommand("possessive-pronoun", false))
	r.Register("ourself", actorPronounCommand("reflexive", false))
	r.Register("ourselves", actorPronounCommand("reflexive", false))
}

func objectCommand(render func(w *engine.World, o engine.ID, capitalize bool) string, defaultCapitalize bool) Command {
	return func(r *Renderer, s Sink, args []string) {
		if len(args) == 0 {
			return
		}
		o := engine.ID(args[0])
		capitalize := defaultCapitalize || (len(args) > 1 && args[1] == "cap")
		text := render(r.World, o, capitalize)
		s.WrapActionLink("examine "+string(o), func() {
			s.WriteText(text)
		})
	}
}

// The/the ("The red ball"/"the red ball") always use the definite article,
// regardless of the object's own Article property.
func refThe(w *engine.World, o engine.ID, capitalize bool) string {
	return maybeCapitalize("the "+w.Name(o), capitalize)
}

// A/a ("A red ball"/"a red ball") use the object's own article property
// ("an" for vowel-initial names that declare it).
func refA(w *engine.World, o engine.ID, capitalize bool) string {
	return maybeCapitalize(w.Article(o)+" "+w.Name(o), capitalize)
}

func maybeCapitalize(s string, capitalize bool) string {
	if !capitalize || s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] = r[0] - ('a' - 'A')
	}
	return string(r)
}

// actorPronounCommand renders a first-person-plural-style reference to the
// renderer's own actor: "you"/"your"/"yourself" when the actor is the
// player, otherwise the actor's declared pronoun in the requested case.
func actorPronounCommand(grammaticalCase string, capitalize bool) Command {
	return func(r *Renderer, s Sink, args []string) {
		text := actorPronoun(r.World, r.Actor, grammaticalCase)
		if capitalize {
			text = maybeCapitalize(text, true)
		}
		s.WriteText(text)
	}
}

func actorPronoun(w *engine.World, actor engine.ID, grammaticalCase string) string {
	if actor != "" && w != nil && actor == w.Player() {
		switch grammaticalCase {
		case "subject":
			return "you"
		case "object":
			return "you"
		case "possessive":
			return "your"
		case "possessive-pronoun":
			return "yours"
		case "reflexive":
			return "yourself"
		}
		return "you"
	}
	base := "it"
	if w != nil {
		base = w.Pronoun(actor)
	}
	switch grammaticalCase {
	case "subject", "object":
		return base
	case "possessive":
		if strings.HasSuffix(base, "s") {
			return base + "'"
		}
		return base + "s"
	case "possessive-pronoun":
		if base == "it" {
			return "its"
		}
		return base + "s"
	case "reflexive":
		return base + "self"
	}
	return base
}
