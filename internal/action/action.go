// Package action implements the verify/try_before/before/carry_out/report
// pipeline and the disambiguation algorithm that picks among a parser's
// candidate parses.
package action

import (
	"textadv/internal/engine"
	"textadv/internal/sink"
)

// Action is the plain record the parser produces: a verb name plus whatever
// verb-specific bindings the grammar rule captured (dobj, iobj, dir, text,
// ...).
type Action struct {
	Verb string
	Args map[string]engine.Value
}

// FromValue unpacks a parser match's action value (a Map with at least a
// "verb" entry) into an Action.
func FromValue(v engine.Value) Action {
	m := v.Map()
	return Action{Verb: m["verb"].Str(), Args: m}
}

func (a Action) dobj() engine.ID { return a.Args["dobj"].ID() }
func (a Action) iobj() engine.ID { return a.Args["iobj"].ID() }

// Context carries everything a pipeline handler needs: the world, the
// acting entity, the action being run, and where narration goes.
type Context struct {
	World    *engine.World
	Actor    engine.ID
	Action   Action
	Sink     sink.Sink
	Renderer *sink.Renderer
}

// withAction returns a shallow copy of ctx for a different action, as
// do_instead/do_first need to run a second action through the same world
// and sink without mutating the caller's Context.
func (ctx *Context) withAction(a Action) *Context {
	cp := *ctx
	cp.Action = a
	return &cp
}
