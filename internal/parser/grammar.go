package parser

import (
	"strings"

	"textadv/internal/engine"
)

// Bindings collects the values a rule's frontends matched, keyed by the
// binding name given in the pattern (e.g. `[something x]` binds "x").
type Bindings map[string]engine.Value

// BuildFunc turns a successful match's bindings into an action value
// (typically engine.Map with at least a "verb" entry).
type BuildFunc func(b Bindings) engine.Value

// GuardFunc optionally restricts when a rule applies, given its bindings.
type GuardFunc func(b Bindings) bool

type patternElem struct {
	literal  []string // word alternatives, e.g. go/walk -> ["go","walk"]
	frontend string   // frontend name, e.g. "something"
	bindName string   // binding name for a frontend slot
	arg      string   // frontend-specific argument, e.g. obj's literal id
}

type rule struct {
	pattern []patternElem
	build   BuildFunc
	when    GuardFunc
}

// Grammar holds nonterminal -> rule-list registrations and the frontend
// matchers available to `[frontend name]` slots.
type Grammar struct {
	World     *engine.World
	Actor     engine.ID
	rules     map[string][]*rule
	frontends map[string]Frontend
	memo      map[memoKey][]Match
}

type memoKey struct {
	nonterminal string
	pos         int
}

// NewGrammar creates a grammar bound to w with the standard frontends
// (something, anything, somewhere, anywhere, obj, direction, text, action)
// registered.
func NewGrammar(w *engine.World) *Grammar {
	g := &Grammar{
		World:     w,
		rules:     make(map[string][]*rule),
		frontends: make(map[string]Frontend),
		memo:      make(map[memoKey][]Match),
	}
	registerStandardFrontends(g)
	return g
}

// RegisterFrontend installs a custom `[name ...]` slot matcher.
func (g *Grammar) RegisterFrontend(name string, f Frontend) {
	g.frontends[name] = f
}

// Understand registers a grammar rule against nonterminal: pattern mixes
// literal words, slash-alternations, and `[frontend name]` slots; build
// turns a match's bindings into an action value; when, if non-nil,
// additionally restricts when the rule fires.
func (g *Grammar) Understand(nonterminal, pattern string, build BuildFunc, when GuardFunc) {
	g.rules[nonterminal] = append(g.rules[nonterminal], &rule{
		pattern: compilePattern(pattern),
		build:   build,
		when:    when,
	})
	g.memo = make(map[memoKey][]Match) // grammar changed; invalidate memo
}

func compilePattern(pattern string) []patternElem {
	var elems []patternElem
	for _, tok := range splitPatternTokens(pattern) {
		if strings.HasPrefix(tok, "[") && strings.HasSuffix(tok, "]") {
			inner := strings.Fields(tok[1 : len(tok)-1])
			elem := patternElem{frontend: inner[0]}
			if len(inner) > 1 {
				elem.bindName = inner[1]
				if len(inner) > 2 {
					elem.arg = strings.Join(inner[2:], " ")
				}
			} else {
				elem.bindName = inner[0]
			}
			elems = append(elems, elem)
			continue
		}
		elems = append(elems, patternElem{literal: strings.Split(tok, "/")})
	}
	return elems
}

// splitPatternTokens is like strings.Fields but keeps a `[frontend name
// arg]` slot — which may itself contain internal spaces — as one token.
func splitPatternTokens(pattern string) []string {
	var tokens []string
	var cur strings.Builder
	depth := 0
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for _, r := range pattern {
		switch {
		case r == '[':
			depth++
			cur.WriteRune(r)
		case r == ']':
			depth--
			cur.WriteRune(r)
		case (r == ' ' || r == '\t') && depth == 0:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return tokens
}
