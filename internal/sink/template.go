package sink

import (
	"fmt"
	"strings"

	"textadv/internal/engine"
)

// Command is a named template command invoked by `[cmd arg arg ...]`. It
// runs against the renderer's world and actor and writes to s.
type Command func(r *Renderer, s Sink, args []string)

// Renderer binds bracket templating to a world and the actor the narration
// is being rendered for (needed by reword's second/third-person choice and
// by the pronoun helpers' visibility-sensitive wording).
type Renderer struct {
	World    *engine.World
	Actor    engine.ID
	commands map[string]Command
}

// NewRenderer creates a renderer with the standard helper commands
// (the/The/a/A/we/... and reword) registered; callers can Register more.
func NewRenderer(w *engine.World, actor engine.ID) *Renderer {
	r := &Renderer{World: w, Actor: actor, commands: make(map[string]Command)}
	registerHelperCommands(r)
	return r
}

// Register adds or replaces a named template command.
func (r *Renderer) Register(name string, cmd Command) {
	r.commands[name] = cmd
}

// Write parses s left to right, emitting literal runs verbatim and
// dispatching `[cmd arg arg …]` and `{word|flag…}` sequences to registered
// commands. Quoted arguments (`'red apple'` or `"red apple"`) may contain
// spaces.
func (r *Renderer) Write(s Sink, text string) {
	runes := []rune(text)
	i := 0
	var literal strings.Builder
	flush := func() {
		if literal.Len() > 0 {
			s.WriteText(literal.String())
			literal.Reset()
		}
	}
	for i < len(runes) {
		c := runes[i]
		switch c {
		case '[':
			flush()
			end := matchingBracket(runes, i, '[', ']')
			if end < 0 {
				literal.WriteRune(c)
				i++
				continue
			}
			name, args := splitCommand(string(runes[i+1 : end]))
			r.dispatch(s, name, args)
			i = end + 1
		case '{':
			flush()
			end := matchingBracket(runes, i, '{', '}')
			if end < 0 {
				literal.WriteRune(c)
				i++
				continue
			}
			parts := strings.Split(string(runes[i+1:end]), "|")
			word := parts[0]
			flags := parts[1:]
			r.dispatch(s, "reword", append([]string{word}, flags...))
			i = end + 1
		default:
			literal.WriteRune(c)
			i++
		}
	}
	flush()
}

func (r *Renderer) dispatch(s Sink, name string, args []string) {
	cmd, ok := r.commands[name]
	if !ok {
		s.WriteText(fmt.Sprintf("[unknown template command %q]", name))
		return
	}
	cmd(r, s, args)
}

func matchingBracket(runes []rune, start int, open, close rune) int {
	depth := 0
	for i := start; i < len(runes); i++ {
		switch runes[i] {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// splitCommand tokenizes "name arg 'quoted arg' arg" respecting single and
// double quotes, the way `[the 'red apple']` needs.
func splitCommand(s string) (name string, args []string) {
	tokens := tokenize(s)
	if len(tokens) == 0 {
		return "", nil
	}
	return tokens[0], tokens[1:]
}

func tokenize(s string) []string {
	var tokens []string
	var cur strings.Builder
	inQuote := rune(0)
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for _, c := range s {
		switch {
		case inQuote != 0:
			if c == inQuote {
				inQuote = 0
			} else {
				cur.WriteRune(c)
			}
		case c == '\'' || c == '"':
			inQuote = c
		case c == ' ' || c == '\t':
			flush()
		default:
			cur.WriteRune(c)
		}
	}
	flush()
	return tokens
}
