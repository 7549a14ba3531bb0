package sink

import "strings"

// ANSI attribute codes, carried over from the teacher's ansi.go styling
// table.
const (
	AnsiReset     = "\x1b[0m"
	AnsiBold      = "\x1b[1m"
	AnsiDim       = "\x1b[2m"
	AnsiItalic    = "\x1b[3m"
	AnsiUnderline = "\x1b[4m"
	AnsiCyan      = "\x1b[36m"
	AnsiYellow    = "\x1b[33m"
	AnsiGreen     = "\x1b[32m"
	AnsiMagenta   = "\x1b[35m"
)

var tagAttrs = map[string][]string{
	"heading": {AnsiBold, AnsiCyan},
	"link":    {AnsiUnderline, AnsiGreen},
	"emph":    {AnsiItalic},
	"warning": {AnsiBold, AnsiYellow},
}

type region struct {
	block bool
	attrs []string
}

// Terminal is a Sink that renders narration as word-wrapped, optionally
// ANSI-styled plain text, the way the teacher's telnet sessions rendered
// room descriptions and prompts.
type Terminal struct {
	width   int
	color   bool
	buf     strings.Builder
	regions []region
	lineLen int
}

// NewTerminal creates a terminal sink wrapping output at width columns
// (messages narrower than 20 columns are clamped up, matching WrapText's
// minimum). Pass color=false for a plain-text client (or a dumb MTTS
// terminal that negotiated no ANSI support).
func NewTerminal(width int, color bool) *Terminal {
	if width <= 0 {
		width = 78
	}
	return &Terminal{width: width, color: color}
}

func (t *Terminal) currentAttrs() []string {
	var attrs []string
	for _, r := range t.regions {
		attrs = append(attrs, r.attrs...)
	}
	return attrs
}

func (t *Terminal) WriteText(s string) {
	attrs := t.currentAttrs()
	if t.color && len(attrs) > 0 {
		s = strings.Join(attrs, "") + s + AnsiReset
	}
	t.buf.WriteString(s)
}

func (t *Terminal) WriteElement(e string) {
	t.WriteText(e)
}

func (t *Terminal) EnterInline(tag string) {
	t.regions = append(t.regions, region{block: false, attrs: tagAttrs[tag]})
}

func (t *Terminal) EnterBlock(tag string) {
	if t.buf.Len() > 0 {
		t.buf.WriteString("\n")
	}
	t.regions = append(t.regions, region{block: true, attrs: tagAttrs[tag]})
}

func (t *Terminal) Leave() {
	if len(t.regions) == 0 {
		return
	}
	last := t.regions[len(t.regions)-1]
	t.regions = t.regions[:len(t.regions)-1]
	if last.block {
		t.buf.WriteString("\n")
	}
}

func (t *Terminal) Para() {
	t.buf.WriteString("\n\n")
}

// AddClass, CSS, and On are no-ops on a terminal: there is no stylesheet or
// DOM event model to attach to. Attr with key "title" is rendered inline as
// a parenthetical, since that's the one attribute a terminal user can see.
func (t *Terminal) AddClass(class string) {}
func (t *Terminal) CSS(key, value string) {}
func (t *Terminal) On(event, handler string) {}

func (t *Terminal) Attr(key, value string) {
	if key == "title" && value != "" {
		t.WriteText(" (" + value + ")")
	}
}

// WrapActionLink renders body inline; a terminal has no clickable regions,
// so the command text is not shown unless body chooses to write it.
func (t *Terminal) WrapActionLink(command string, body func()) {
	t.EnterInline("link")
	body()
	t.Leave()
}

// String returns the rendered, word-wrapped transcript so far.
func (t *Terminal) String() string {
	return wrapText(t.buf.String(), t.width)
}

// Reset clears the buffer for the next turn's output.
func (t *Terminal) Reset() {
	t.buf.Reset()
	t.regions = nil
}

// wrapText and wrapLine are adapted from the teacher's internal/game/text.go
// WrapText/wrapLine, unchanged in algorithm: soft line breaks at width
// columns, paragraph breaks preserved, a 20-column floor.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	if width < 20 {
		width = 20
	}
	lines := strings.Split(text, "\n")
	wrapped := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			wrapped = append(wrapped, "")
			continue
		}
		wrapped = append(wrapped, wrapLine(trimmed, width))
	}
	return strings.Join(wrapped, "\n")
}

func wrapLine(line string, width int) string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return ""
	}
	var builder strings.Builder
	current := 0
	for _, word := range words {
		runes := []rune(word)
		for len(runes) > 0 {
			if len(runes) > width {
				if current != 0 {
					builder.WriteString("\n")
				}
				builder.WriteString(string(runes[:width]))
				runes = runes[width:]
				current = width
				if len(runes) > 0 {
					builder.WriteString("\n")
					current = 0
				}
				continue
			}
			wordLen := len(runes)
			if current == 0 {
				builder.WriteString(string(runes))
				current = wordLen
			} else if current+1+wordLen > width {
				builder.WriteString("\n")
				builder.WriteString(string(runes))
				current = wordLen
			} else {
				builder.WriteByte(' ')
				builder.WriteString(string(runes))
				current += 1 + wordLen
			}
			runes = runes[:0]
		}
	}
	return builder.String()
}
