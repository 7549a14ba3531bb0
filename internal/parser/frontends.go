package parser

import "textadv/internal/engine"

var directionAliases = map[string]string{
	"north": "north", "n": "north",
	"south": "south", "s": "south",
	"east": "east", "e": "east",
	"west": "west", "w": "west",
	"northeast": "northeast", "ne": "northeast",
	"northwest": "northwest", "nw": "northwest",
	"southeast": "southeast", "se": "southeast",
	"southwest": "southwest", "sw": "southwest",
	"up": "up", "u": "up",
	"down": "down", "d": "down",
	"in": "in", "out": "out",
}

// registerStandardFrontends installs something/anything/somewhere/anywhere/
// obj/direction/text, the frontends §4.4 names explicitly. `action` needs no
// registration: an unrecognized frontend name falls back to a nonterminal
// reference (see stepElement), and game content registers "action" rules
// with Understand the same way it registers any other nonterminal.
func registerStandardFrontends(g *Grammar) {
	g.frontends["anything"] = func(g *Grammar, tokens []Token, pos int, arg string) []Match {
		return MatchNounPhrase(g.World, g.World.AllEntities(), tokens, pos)
	}
	g.frontends["something"] = func(g *Grammar, tokens []Token, pos int, arg string) []Match {
		all := MatchNounPhrase(g.World, g.World.AllEntities(), tokens, pos)
		var out []Match
		for _, m := range all {
			if g.World.VisibleTo(m.Value.ID(), g.Actor) {
				out = append(out, m)
			}
		}
		return out
	}
	g.frontends["anywhere"] = func(g *Grammar, tokens []Token, pos int, arg string) []Match {
		var rooms []engine.ID
		for _, id := range g.World.AllEntities() {
			if g.World.IsA(id, engine.KindRoom) {
				rooms = append(rooms, id)
			}
		}
		return MatchNounPhrase(g.World, rooms, tokens, pos)
	}
	g.frontends["somewhere"] = func(g *Grammar, tokens []Token, pos int, arg string) []Match {
		var known []engine.ID
		for _, id := range g.World.AllEntities() {
			if g.World.IsA(id, engine.KindRoom) && g.World.IsKnown(id, g.Actor) {
				known = append(known, id)
			}
		}
		return MatchNounPhrase(g.World, known, tokens, pos)
	}
	g.frontends["obj"] = func(g *Grammar, tokens []Token, pos int, arg string) []Match {
		return []Match{{Start: pos, End: pos, Value: engine.IDVal(engine.ID(arg)), Score: 0}}
	}
	g.frontends["direction"] = func(g *Grammar, tokens []Token, pos int, arg string) []Match {
		if pos >= len(tokens) {
			return nil
		}
		canon, ok := directionAliases[tokens[pos].Text]
		if !ok {
			return nil
		}
		return []Match{{Start: pos, End: pos + 1, Value: engine.Str(canon), Score: 0}}
	}
	g.frontends["text"] = func(g *Grammar, tokens []Token, pos int, arg string) []Match {
		if pos >= len(tokens) {
			return nil
		}
		var out []Match
		for end := pos + 1; end <= len(tokens); end++ {
			out = append(out, Match{Start: pos, End: end, Value: engine.Str(spanText(tokens[pos:end])), Score: 0})
		}
		return out
	}
}
