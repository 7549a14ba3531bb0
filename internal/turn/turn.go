// Package turn drives the cooperative, single-actor turn loop: parse a
// line, disambiguate it, run the winning action's pipeline, then the
// step_turn hook (backdrop repositioning and conditional re-render).
package turn

import (
	"fmt"
	"strconv"
	"strings"

	"textadv/internal/action"
	"textadv/internal/describe"
	"textadv/internal/engine"
	"textadv/internal/parser"
	"textadv/internal/sink"
)

const menuOverflowMessage = "That's too many things to choose between. Try naming it more precisely."

// Loop owns one actor's turn-by-turn state: what was visible and lit as of
// the end of the last turn, so step_turn can tell whether a re-render is
// warranted.
type Loop struct {
	World    *engine.World
	Grammar  *parser.Grammar
	Registry *action.Registry
	Actor    engine.ID
	Sink     sink.Sink
	Renderer *sink.Renderer

	lastVisibleContainer engine.ID
	lastHadLight         bool

	// pendingMenu holds the last disambiguation menu offered, so the next
	// line can select from it by number per §4.5; any other input clears it
	// and is reinterpreted as a fresh command.
	pendingMenu []action.Candidate
}

// NewLoop wires a turn loop for actor and renders the actor's starting
// location before returning.
func NewLoop(w *engine.World, g *parser.Grammar, reg *action.Registry, actor engine.ID, snk sink.Sink) *Loop {
	l := &Loop{
		World:    w,
		Grammar:  g,
		Registry: reg,
		Actor:    actor,
		Sink:     snk,
		Renderer: sink.NewRenderer(w, actor),
	}
	describe.Room(w, actor, snk, l.Renderer)
	l.snapshot()
	return l
}

func (l *Loop) snapshot() {
	l.lastVisibleContainer = l.World.VisibleContainer(l.Actor)
	l.lastHadLight = l.World.ContainsLight(l.lastVisibleContainer)
}

// Step runs exactly one turn for the given input line: parse, disambiguate,
// execute, then step_turn. This is the loop's sole suspension point — it
// returns once the turn is complete and the next call supplies the next
// line, matching the "yields only for input" concurrency model.
func (l *Loop) Step(input string) {
	if len(l.pendingMenu) > 0 {
		menu := l.pendingMenu
		l.pendingMenu = nil
		if n, ok := parseMenuChoice(input, len(menu)); ok {
			l.runWinner(&menu[n-1])
			return
		}
		// anything else is reinterpreted as a fresh command, per §4.5.
	}

	matches := l.Grammar.ParseLine(l.Actor, input)
	if len(matches) == 0 {
		l.reportParseFailure(input)
		return
	}

	result := action.Disambiguate(l.World, l.Actor, l.Sink, l.Renderer, l.Registry, matches)
	if result.Winner == nil {
		if result.Overflowed {
			l.Sink.WriteText(menuOverflowMessage)
			l.Sink.Para()
		}
		l.writeMenu(result.Menu)
		l.pendingMenu = result.Menu
		return
	}

	l.runWinner(result.Winner)
}

func parseMenuChoice(input string, n int) (int, bool) {
	i, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || i < 1 || i > n {
		return 0, false
	}
	return i, true
}

func (l *Loop) runWinner(c *action.Candidate) {
	ctx := &action.Context{
		World:    l.World,
		Actor:    l.Actor,
		Action:   c.Action,
		Sink:     l.Sink,
		Renderer: l.Renderer,
	}
	outcome := action.Run(ctx, l.Registry, false)
	if outcome.Aborted {
		return
	}
	l.stepTurn()
}

// reportParseFailure implements §7's parse-failure taxonomy: if some token
// in the line is outside the known-words set, name it; otherwise a generic
// failure.
func (l *Loop) reportParseFailure(input string) {
	known := l.Grammar.KnownWords(l.World)
	for _, tok := range parser.Tokenize(input) {
		if !known[tok.Text] {
			l.Sink.WriteText(fmt.Sprintf("I don't know what you mean by '%s'.", tok.Text))
			l.Sink.Para()
			return
		}
	}
	l.Sink.WriteText("I don't understand what you mean.")
	l.Sink.Para()
}

func (l *Loop) writeMenu(menu []action.Candidate) {
	if len(menu) == 0 {
		l.Sink.WriteText("You can't do that.")
		l.Sink.Para()
		return
	}
	l.Sink.WriteText("Which do you mean?")
	l.Sink.Para()
	for i, c := range menu {
		dobj := c.Action.Args["dobj"].ID()
		l.Sink.WriteText(fmt.Sprintf("%d. %s", i+1, l.World.Name(dobj)))
		l.Sink.Para()
	}
}

// stepTurn is the hook run after every successful action: reposition
// backdrops, then re-render if the actor's visible container or its light
// state changed since the last turn.
func (l *Loop) stepTurn() {
	repositionBackdrops(l.World, l.Actor)

	vc := l.World.VisibleContainer(l.Actor)
	hasLight := l.World.ContainsLight(vc)
	if vc != l.lastVisibleContainer || hasLight != l.lastHadLight {
		describe.Room(l.World, l.Actor, l.Sink, l.Renderer)
	}
	l.lastVisibleContainer = vc
	l.lastHadLight = hasLight
}

// repositionBackdrops moves every backdrop whose declared location list
// includes actor's room (or a region containing it) into that room, so a
// scenery object that exists "in every forest room" tracks the player
// between rooms of the same region without per-room duplication.
func repositionBackdrops(w *engine.World, actor engine.ID) {
	room := w.VisibleContainer(actor)
	if !w.IsA(room, engine.KindRoom) {
		return
	}
	roomRegion := w.Region(room)

	for _, id := range w.AllEntities() {
		if !w.IsA(id, engine.KindBackdrop) {
			continue
		}
		if backdropBelongsHere(w, id, room, roomRegion) {
			w.Relate(id, room, engine.ContainedBy)
		}
	}
}

func backdropBelongsHere(w *engine.World, backdrop, room, roomRegion engine.ID) bool {
	for _, v := range w.Property("backdrop_locations").GetWorld(w, []engine.ID{backdrop}).List() {
		declared := v.ID()
		if declared == room {
			return true
		}
		if roomRegion != "" && declared == roomRegion {
			return true
		}
	}
	return false
}
