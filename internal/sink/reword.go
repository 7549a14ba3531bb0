package sink

import (
	"strings"

	"textadv/internal/engine"
)

// reservedStems are pronoun words reword never rewrites, regardless of
// actor, matching the spec's reserved-stem list.
var reservedStems = map[string]bool{
	"we": true, "us": true, "our": true, "ours": true,
	"ourself": true, "ourselves": true, "bobs": true,
}

// secondToThird maps a template's base (second-person, "you"-form) word to
// its third-person-singular irregular form. Regular verbs fall through to
// the default -s/-ies suffix rule.
var secondToThird = map[string]string{
	"are":  "is",
	"have": "has",
	"do":   "does",
	"can":  "can",
}

// reword implements §4.3's second/third-person conjugation. Templates are
// written as if a second-person narrator ("you take the ball") were acting;
// when the actor is not the player, reword renders the same word in the
// third person for the actor's name ("Bob takes the ball"). "bob" is the
// name placeholder: it becomes "you" for the player and the actor's actual
// name otherwise; the "obj" flag selects the actor's object pronoun instead
// of their name, for phrasing like "Alice hands it to {bob|obj}".
func reword(w *engine.World, actor engine.ID, word string, flags []string) string {
	lower := strings.ToLower(word)
	if reservedStems[lower] {
		return word
	}
	isPlayer := actor != "" && w != nil && actor == w.Player()
	obj := hasFlag(flags, "obj")

	if lower == "bob" {
		if isPlayer {
			return applyCase(word, "you")
		}
		if obj {
			return applyCase(word, w.Pronoun(actor))
		}
		return w.Name(actor)
	}

	if isPlayer {
		return word
	}
	if repl, ok := secondToThird[lower]; ok {
		return applyCase(word, repl)
	}
	return applyCase(word, thirdPersonSuffix(lower))
}

func hasFlag(flags []string, want string) bool {
	for _, f := range flags {
		if f == want {
			return true
		}
	}
	return false
}

// thirdPersonSuffix applies the regular English third-person-singular
// suffix: -es after a sibilant or after a consonant+o, y->ies after a
// consonant, else -s.
func thirdPersonSuffix(word string) string {
	if word == "" {
		return word
	}
	switch {
	case strings.HasSuffix(word, "s"), strings.HasSuffix(word, "x"),
		strings.HasSuffix(word, "z"), strings.HasSuffix(word, "ch"),
		strings.HasSuffix(word, "sh"):
		return word + "es"
	case strings.HasSuffix(word, "o") && len(word) > 1 && !isVowel(word[len(word)-2]):
		return word + "es"
	case strings.HasSuffix(word, "y") && len(word) > 1 && !isVowel(word[len(word)-2]):
		return word[:len(word)-1] + "ies"
	default:
		return word + "s"
	}
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	default:
		return false
	}
}

// applyCase matches the capitalization pattern of original onto replacement:
// an initial-capital original ("Bob") yields an initial-capital result.
func applyCase(original, replacement string) string {
	if original == "" || replacement == "" {
		return replacement
	}
	r := []rune(original)
	if r[0] >= 'A' && r[0] <= 'Z' {
		out := []rune(replacement)
		if out[0] >= 'a' && out[0] <= 'z' {
			out[0] = out[0] - ('a' - 'A')
		}
		return string(out)
	}
	return replacement
}
