package action

import (
	"textadv/internal/engine"
	"textadv/internal/parser"
	"textadv/internal/sink"
)

// Candidate is one of the parser's alternative parses paired with the
// verify score it earns when actually checked against the world.
type Candidate struct {
	Match  parser.Match
	Action Action
	Verify VerifyResult
}

// Outcome of disambiguation: either a unique winner to run, or a menu of
// too-similar alternatives to put to the player.
type Disambiguated struct {
	Winner     *Candidate
	Menu       []Candidate
	Overflowed bool // true if Menu was truncated to menuLimit entries
}

const menuLimit = 6

// Disambiguate implements §4.5: verify every candidate parse, drop the
// ones the actor can't even see, let an author-registered making_mistake
// parse win outright, and otherwise narrow by verify score and
// then by grammar score until one parse remains or a menu is offered.
func Disambiguate(world *engine.World, actor engine.ID, snk sink.Sink, renderer *sink.Renderer, reg *Registry, matches []parser.Match) Disambiguated {
	candidates := make([]Candidate, 0, len(matches))
	for _, m := range matches {
		a := FromValue(m.Value)
		ctx := &Context{World: world, Actor: actor, Action: a, Sink: snk, Renderer: renderer}
		verb := reg.Verb(a.Verb)
		result := runVerify(ctx, verb.Verify)
		candidates = append(candidates, Candidate{Match: m, Action: a, Verify: result})
	}

	// Drop parses the actor can't even perceive the objects of: these are
	// not real alternatives, just noun phrases that happened to parse.
	filtered := candidates[:0:0]
	for _, c := range candidates {
		if c.Verify.Score > IllogicalNotVisible {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == 0 {
		filtered = candidates
	}
	candidates = filtered

	if len(candidates) == 0 {
		return Disambiguated{}
	}

	// making_mistake is the verb authors register grammar rules under to
	// catch a known-wrong phrasing with a tailored reply. A parse of it
	// always wins outright over every other candidate.
	for i := range candidates {
		if candidates[i].Action.Verb == "making_mistake" {
			return Disambiguated{Winner: &candidates[i]}
		}
	}

	if len(candidates) == 1 {
		return Disambiguated{Winner: &candidates[0]}
	}

	best := candidates[0].Verify.Score
	for _, c := range candidates[1:] {
		if c.Verify.Score > best {
			best = c.Verify.Score
		}
	}

	// No candidate reached the line for "this seems plausible": rather than
	// present a menu of nonsense, run the worst-scoring one so its rejection
	// message reaches the player.
	if best < ReasonableCutoff {
		worst := candidates[0]
		for _, c := range candidates[1:] {
			if c.Verify.Score < worst.Verify.Score {
				worst = c
			}
		}
		return Disambiguated{Winner: &worst}
	}

	reasonable := candidates[:0:0]
	for _, c := range candidates {
		if c.Verify.Score == best {
			reasonable = append(reasonable, c)
		}
	}
	if len(reasonable) == 1 {
		return Disambiguated{Winner: &reasonable[0]}
	}

	bestGrammar := reasonable[0].Match.Score
	for _, c := range reasonable[1:] {
		if c.Match.Score > bestGrammar {
			bestGrammar = c.Match.Score
		}
	}
	final := reasonable[:0:0]
	for _, c := range reasonable {
		if c.Match.Score == bestGrammar {
			final = append(final, c)
		}
	}

	if len(final) == 1 {
		return Disambiguated{Winner: &final[0]}
	}
	overflowed := len(final) > menuLimit
	if overflowed {
		final = final[:menuLimit]
	}
	return Disambiguated{Menu: final, Overflowed: overflowed}
}
