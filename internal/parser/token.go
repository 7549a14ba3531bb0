// Package parser implements the command grammar: tokenization, pattern
// registration, a memoized combinator-style matcher, and noun-phrase
// resolution against the world model.
package parser

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Token is one lower-cased word (letters, digits, hyphen, apostrophe) from
// the input, with the byte range it came from.
type Token struct {
	Text  string
	Start int
	End   int
}

var lowerer = cases.Lower(language.English)

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '\''
}

// Tokenize splits s on whitespace and punctuation, lower-casing each run of
// word runes with Unicode-aware casing rules (golang.org/x/text/cases)
// rather than a byte-wise ASCII lower. Token.Start/End are byte offsets
// into s.
func Tokenize(s string) []Token {
	var tokens []Token
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isWordRune(r) {
			i += size
			continue
		}
		start := i
		for i < len(s) {
			r, size := utf8.DecodeRuneInString(s[i:])
			if !isWordRune(r) {
				break
			}
			i += size
		}
		tokens = append(tokens, Token{
			Text:  lowerer.String(s[start:i]),
			Start: start,
			End:   i,
		})
	}
	return tokens
}
