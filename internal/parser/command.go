package parser

import (
	"strings"

	"textadv/internal/engine"
)

// KnownWords is the global known-words set §7 wants a parse failure checked
// against: every literal word any rule matches on, every direction alias,
// and every word any entity in w answers to. It is recomputed on each call
// rather than cached, since content can register new rules and entities
// between turns.
func (g *Grammar) KnownWords(w *engine.World) map[string]bool {
	known := make(map[string]bool)
	for dir := range directionAliases {
		known[dir] = true
	}
	for _, article := range []string{"a", "an", "the", "some"} {
		known[article] = true
	}
	for _, rules := range g.rules {
		for _, r := range rules {
			for _, el := range r.pattern {
				for _, lit := range el.literal {
					known[lit] = true
				}
			}
		}
	}
	for _, id := range w.AllEntities() {
		for _, word := range w.Words(id) {
			known[strings.TrimPrefix(word, "@")] = true
		}
	}
	return known
}

// ParseLine tokenizes input, sets the acting entity for visibility-sensitive
// frontends (something, somewhere), and returns every full-length parse of
// the "command" nonterminal — the candidates the disambiguator in
// internal/action chooses among.
func (g *Grammar) ParseLine(actor engine.ID, input string) []Match {
	g.Actor = actor
	g.memo = make(map[memoKey][]Match)
	tokens := Tokenize(input)
	matches := g.Parse("command", tokens, 0)
	out := matches[:0:0]
	for _, m := range matches {
		if m.End == len(tokens) {
			out = append(out, m)
		}
	}
	return out
}
