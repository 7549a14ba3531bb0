package parser

import (
	"strings"

	"textadv/internal/engine"
)

var articles = map[string]bool{"a": true, "an": true, "the": true, "some": true}

func containsWord(words []string, word string) bool {
	for _, w := range words {
		if w == word {
			return true
		}
	}
	return false
}

// MatchNounPhrase resolves a noun phrase against universe starting at pos:
// an optional leading article is skipped, then adjective and noun tokens
// are interleaved, narrowing the candidate set by intersection at each
// step. A match is emitted at every position where the candidate set is
// still non-empty, one per surviving id, so both "ball" and "red ball" can
// match the same object at different spans.
func MatchNounPhrase(w *engine.World, universe []engine.ID, tokens []Token, pos int) []Match {
	start := pos
	if start < len(tokens) && articles[tokens[start].Text] {
		start++
	}

	candidates := append([]engine.ID(nil), universe...)
	scores := make(map[engine.ID]int, len(candidates))

	var out []Match
	for i := start; i < len(tokens); i++ {
		word := tokens[i].Text
		var next []engine.ID
		nextScores := make(map[engine.ID]int, len(candidates))
		for _, id := range candidates {
			words := w.Words(id)
			isNoun := containsWord(words, "@"+word)
			isAdj := containsWord(words, word)
			if !isNoun && !isAdj {
				continue
			}
			add := 1
			if isNoun {
				add = 2
			}
			next = append(next, id)
			nextScores[id] = scores[id] + add
		}
		if len(next) == 0 {
			break
		}
		candidates = next
		scores = nextScores

		span := spanText(tokens[pos : i+1])
		for _, id := range candidates {
			score := scores[id]
			if strings.EqualFold(span, w.Name(id)) {
				score++
			}
			out = append(out, Match{Start: pos, End: i + 1, Value: engine.IDVal(id), Score: score})
		}
	}
	return out
}

func spanText(tokens []Token) string {
	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = t.Text
	}
	return strings.Join(words, " ")
}
