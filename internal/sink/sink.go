// Package sink renders narration the way the engine produces it: as a
// sequence of calls against an abstract text sink, never by concatenating
// strings by hand. A terminal implementation lives in terminal.go; an HTML
// or other rich client would implement the same interface.
package sink

// Sink is the minimal surface game content and the engine write prose
// through. Region management (enter/leave) lets a renderer track nesting
// without the caller knowing whether the target is a terminal, a browser
// DOM, or a test buffer.
type Sink interface {
	WriteText(s string)
	WriteElement(e string)
	EnterInline(tag string)
	EnterBlock(tag string)
	Leave()
	Para()
	AddClass(class string)
	Attr(key, value string)
	CSS(key, value string)
	On(event, handler string)
	// WrapActionLink runs body with the sink positioned in a link region
	// whose activation re-submits command as though the player had typed
	// it. Terminal sinks that cannot offer clickable links still run body,
	// just without an actual link affordance.
	WrapActionLink(command string, body func())
}
