// Package verbs declares the playable CLI verb surface named in §6: the
// grammar rules and the verify/try_before/before/carry_out/report chains
// that give each one its behavior. The core (internal/action,
// internal/parser) knows nothing about "take" or "open" — this package is
// ordinary game content built on top of it, the way a game author would
// write it.
package verbs

import (
	"fmt"

	"textadv/internal/action"
	"textadv/internal/describe"
	"textadv/internal/engine"
	"textadv/internal/parser"
)

// Register wires every verb in the CLI surface into g and reg.
func Register(g *parser.Grammar, reg *action.Registry) {
	registerLooking(g, reg)
	registerExamining(g, reg)
	registerInventory(g, reg)
	registerTaking(g, reg)
	registerDropping(g, reg)
	registerPutting(g, reg)
	registerOpening(g, reg)
	registerClosing(g, reg)
	registerLocking(g, reg)
	registerMovement(g, reg)
	registerWearing(g, reg)
	registerSwitching(g, reg)
	registerUsing(g, reg)
	registerEating(g, reg)
	registerAttacking(g, reg)
	registerClimbing(g, reg)
	registerWaiting(g, reg)
	registerSocial(g, reg)
	registerHelp(g, reg)
}

func mapAction(verb string, extra map[string]engine.Value) engine.Value {
	m := map[string]engine.Value{"verb": engine.Str(verb)}
	for k, v := range extra {
		m[k] = v
	}
	return engine.Map(m)
}

func subAction(verb string, extra map[string]engine.Value) action.Action {
	return action.Action{Verb: verb, Args: extra}
}

func runSub(ctx *action.Context, reg *action.Registry, verb string, extra map[string]engine.Value, silent bool) action.Outcome {
	sub := &action.Context{World: ctx.World, Actor: ctx.Actor, Action: subAction(verb, extra), Sink: ctx.Sink, Renderer: ctx.Renderer}
	return action.Run(sub, reg, silent)
}

func theName(w *engine.World, id engine.ID) string {
	return "the " + w.Name(id)
}

func say(chain *action.Chain[struct{}], text string) {
	chain.Append("say", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		ctx.Sink.WriteText(text)
		ctx.Sink.Para()
		return struct{}{}
	})
}

// --- looking --------------------------------------------------------------

func registerLooking(g *parser.Grammar, reg *action.Registry) {
	g.Understand("command", "look/l", func(b parser.Bindings) engine.Value {
		return mapAction("looking", nil)
	}, nil)
	g.Understand("command", "look/l at [something dobj]", func(b parser.Bindings) engine.Value {
		return mapAction("examining", map[string]engine.Value{"dobj": b["dobj"]})
	}, nil)
	g.Understand("command", "look/l [direction dir]", func(b parser.Bindings) engine.Value {
		return mapAction("looking_direction", map[string]engine.Value{"dir": b["dir"]})
	}, nil)

	reg.Verb("looking").Report.Append("say", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		describe.Room(ctx.World, ctx.Actor, ctx.Sink, ctx.Renderer)
		return struct{}{}
	})

	verb := reg.Verb("looking_direction")
	verb.Report.Append("say", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		dir := ctx.Action.Args["dir"].Str()
		room, _, _ := ctx.World.LocationOf(ctx.Actor)
		target, ok := ctx.World.ExitTo(room, dir)
		if !ok {
			ctx.Sink.WriteText("You see nothing special that way.")
			ctx.Sink.Para()
			return struct{}{}
		}
		if ctx.World.IsA(target, engine.KindDoor) {
			if !ctx.World.IsOpen(target) {
				ctx.Sink.WriteText(fmt.Sprintf("You see %s, closed, that way.", theName(ctx.World, target)))
				ctx.Sink.Para()
				return struct{}{}
			}
			if other, ok := ctx.World.DoorOtherSideFrom(target, room); ok {
				target = other
			}
		}
		ctx.Sink.WriteText(fmt.Sprintf("You see %s that way.", ctx.World.Name(target)))
		ctx.Sink.Para()
		return struct{}{}
	})
}

// --- examining / inventory -------------------------------------------------

func registerExamining(g *parser.Grammar, reg *action.Registry) {
	g.Understand("command", "examine/x [something dobj]", func(b parser.Bindings) engine.Value {
		return mapAction("examining", map[string]engine.Value{"dobj": b["dobj"]})
	}, nil)

	verb := reg.Verb("examining")
	action.RequireDobjVisible(verb.Verify)
	verb.Report.Append("say", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		dobj := ctx.Action.Args["dobj"].ID()
		w := ctx.World
		if desc := w.Description(dobj); desc != "" {
			ctx.Renderer.Write(ctx.Sink, desc)
		} else {
			ctx.Sink.WriteText(fmt.Sprintf("You see nothing special about %s.", theName(w, dobj)))
		}
		ctx.Sink.Para()
		if w.IsA(dobj, engine.KindContainer) && !w.IsOpen(dobj) {
			ctx.Sink.WriteText(fmt.Sprintf("%s is closed.", capitalize(theName(w, dobj))))
			ctx.Sink.Para()
		}
		return struct{}{}
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-('a'-'A')) + s[1:]
}

func registerInventory(g *parser.Grammar, reg *action.Registry) {
	g.Understand("command", "inventory/i", func(b parser.Bindings) engine.Value {
		return mapAction("taking_inventory", nil)
	}, nil)

	reg.Verb("taking_inventory").Report.Append("say", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		w := ctx.World
		var held []string
		for _, o := range w.RelatedTo(ctx.Actor) {
			held = append(held, "  "+w.Article(o)+" "+w.Name(o))
		}
		if len(held) == 0 {
			ctx.Sink.WriteText("You are carrying nothing.")
			ctx.Sink.Para()
			return struct{}{}
		}
		ctx.Sink.WriteText("You are carrying:")
		ctx.Sink.Para()
		for _, line := range held {
			ctx.Sink.WriteText(line)
			ctx.Sink.Para()
		}
		return struct{}{}
	})
}

// --- take / drop ------------------------------------------------------------

func registerTaking(g *parser.Grammar, reg *action.Registry) {
	g.Understand("command", "take/get [something dobj]", func(b parser.Bindings) engine.Value {
		return mapAction("taking", map[string]engine.Value{"dobj": b["dobj"]})
	}, nil)

	verb := reg.Verb("taking")
	action.RequireDobjAccessible(verb.Verify)
	action.HintDobjNotHeld(verb.Verify)

	verb.TryBefore.Append("auto_open", nil, func(ctx *action.Context, next action.Next[action.Signal]) action.Signal {
		dobj := ctx.Action.Args["dobj"].ID()
		if loc, tag, ok := ctx.World.LocationOf(dobj); ok && tag == engine.ContainedBy &&
			ctx.World.IsA(loc, engine.KindContainer) && !ctx.World.IsOpen(loc) {
			if outcome := action.DoFirst(ctx, reg, subAction("opening", map[string]engine.Value{"dobj": engine.IDVal(loc)})); outcome.Aborted {
				return action.Abort("")
			}
		}
		return next(ctx)
	})
	verb.Before.Append("fixed_check", nil, func(ctx *action.Context, next action.Next[action.Signal]) action.Signal {
		dobj := ctx.Action.Args["dobj"].ID()
		if ctx.World.IsFixed(dobj) {
			return action.Abort(fmt.Sprintf("%s is fixed in place.", capitalize(theName(ctx.World, dobj))))
		}
		return next(ctx)
	})
	verb.CarryOut.Append("do_take", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		ctx.World.Relate(ctx.Action.Args["dobj"].ID(), ctx.Actor, engine.OwnedBy)
		return struct{}{}
	})
	say(verb.Report, "Taken.")
}

func registerDropping(g *parser.Grammar, reg *action.Registry) {
	g.Understand("command", "drop [something dobj]", func(b parser.Bindings) engine.Value {
		return mapAction("dropping", map[string]engine.Value{"dobj": b["dobj"]})
	}, nil)

	verb := reg.Verb("dropping")
	action.RequireDobjHeld(verb.Verify, action.HeldOptions{})

	verb.CarryOut.Append("do_drop", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		room, _, _ := ctx.World.LocationOf(ctx.Actor)
		ctx.World.Relate(ctx.Action.Args["dobj"].ID(), room, engine.ContainedBy)
		return struct{}{}
	})
	say(verb.Report, "Dropped.")
}

// --- put in / put on --------------------------------------------------------

func registerPutting(g *parser.Grammar, reg *action.Registry) {
	g.Understand("command", "put [something dobj] in/into [something iobj]", func(b parser.Bindings) engine.Value {
		return mapAction("putting_in", map[string]engine.Value{"dobj": b["dobj"], "iobj": b["iobj"]})
	}, nil)
	g.Understand("command", "put [something dobj] on/onto [something iobj]", func(b parser.Bindings) engine.Value {
		return mapAction("putting_on", map[string]engine.Value{"dobj": b["dobj"], "iobj": b["iobj"]})
	}, nil)

	registerPutIn(reg)
	registerPutOn(reg)
}

// autoTakeDobj is the try_before step shared by putting_in, putting_on, and
// any other verb that implicitly needs its dobj in hand first (scenario 3:
// "put ball in box" auto-takes the ball).
func autoTakeDobj(reg *action.Registry) func(ctx *action.Context, next action.Next[action.Signal]) action.Signal {
	return func(ctx *action.Context, next action.Next[action.Signal]) action.Signal {
		dobj := ctx.Action.Args["dobj"].ID()
		loc, tag, ok := ctx.World.LocationOf(dobj)
		if ok && loc == ctx.Actor && (tag == engine.OwnedBy || tag == engine.WornBy) {
			return next(ctx)
		}
		if outcome := action.DoFirst(ctx, reg, subAction("taking", map[string]engine.Value{"dobj": engine.IDVal(dobj)})); outcome.Aborted {
			return action.Abort("")
		}
		return next(ctx)
	}
}

func registerPutIn(reg *action.Registry) {
	verb := reg.Verb("putting_in")
	action.RequireIobjAccessible(verb.Verify)
	action.RequireDobjVisible(verb.Verify)

	verb.Verify.Append("require_container", nil, func(ctx *action.Context, next action.Next[action.VerifyResult]) action.VerifyResult {
		iobj := ctx.Action.Args["iobj"].ID()
		if !ctx.World.IsA(iobj, engine.KindContainer) {
			return action.Verified(action.Illogical, fmt.Sprintf("%s isn't a container.", capitalize(theName(ctx.World, iobj))))
		}
		return next(ctx)
	})

	// TryBefore.Call scans tail to head, so whichever of these is appended
	// last runs first: auto_take_dobj goes on first so auto_open_iobj (added
	// after it) fires ahead of it, matching scenario 3's message order
	// ("(first opening the cardboard box)" precedes "(first taking the ball)").
	verb.TryBefore.Append("auto_take_dobj", nil, autoTakeDobj(reg))
	verb.TryBefore.Append("auto_open_iobj", nil, func(ctx *action.Context, next action.Next[action.Signal]) action.Signal {
		iobj := ctx.Action.Args["iobj"].ID()
		if !ctx.World.IsOpen(iobj) {
			if outcome := action.DoFirst(ctx, reg, subAction("opening", map[string]engine.Value{"dobj": engine.IDVal(iobj)})); outcome.Aborted {
				return action.Abort("")
			}
		}
		return next(ctx)
	})

	verb.CarryOut.Append("do_put", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		ctx.World.Relate(ctx.Action.Args["dobj"].ID(), ctx.Action.Args["iobj"].ID(), engine.ContainedBy)
		return struct{}{}
	})
	verb.Report.Append("say", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		dobj := ctx.Action.Args["dobj"].ID()
		iobj := ctx.Action.Args["iobj"].ID()
		ctx.Sink.WriteText(fmt.Sprintf("You put %s into %s.", theName(ctx.World, dobj), theName(ctx.World, iobj)))
		ctx.Sink.Para()
		return struct{}{}
	})
}

func registerPutOn(reg *action.Registry) {
	verb := reg.Verb("putting_on")
	action.RequireIobjAccessible(verb.Verify)
	action.RequireDobjVisible(verb.Verify)

	verb.Verify.Append("require_supporter", nil, func(ctx *action.Context, next action.Next[action.VerifyResult]) action.VerifyResult {
		iobj := ctx.Action.Args["iobj"].ID()
		if !ctx.World.IsA(iobj, engine.KindSupporter) {
			return action.Verified(action.Illogical, fmt.Sprintf("You can't put anything on %s.", theName(ctx.World, iobj)))
		}
		return next(ctx)
	})
	verb.TryBefore.Append("auto_take_dobj", nil, autoTakeDobj(reg))

	verb.CarryOut.Append("do_put", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		ctx.World.Relate(ctx.Action.Args["dobj"].ID(), ctx.Action.Args["iobj"].ID(), engine.SupportedBy)
		return struct{}{}
	})
	verb.Report.Append("say", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		dobj := ctx.Action.Args["dobj"].ID()
		iobj := ctx.Action.Args["iobj"].ID()
		ctx.Sink.WriteText(fmt.Sprintf("You put %s on %s.", theName(ctx.World, dobj), theName(ctx.World, iobj)))
		ctx.Sink.Para()
		return struct{}{}
	})
}

// --- open / close / lock ----------------------------------------------------

func registerOpening(g *parser.Grammar, reg *action.Registry) {
	g.Understand("command", "open [something dobj]", func(b parser.Bindings) engine.Value {
		return mapAction("opening", map[string]engine.Value{"dobj": b["dobj"]})
	}, nil)

	verb := reg.Verb("opening")
	action.RequireDobjAccessible(verb.Verify)
	verb.Verify.Append("require_openable", nil, func(ctx *action.Context, next action.Next[action.VerifyResult]) action.VerifyResult {
		dobj := ctx.Action.Args["dobj"].ID()
		w := ctx.World
		if !w.IsA(dobj, engine.KindContainer) && !w.IsA(dobj, engine.KindDoor) {
			return action.Verified(action.Illogical, fmt.Sprintf("You can't open %s.", theName(w, dobj)))
		}
		if w.IsOpen(dobj) {
			return action.Verified(action.IllogicalAlready, fmt.Sprintf("%s is already open.", capitalize(theName(w, dobj))))
		}
		return next(ctx)
	})
	verb.Before.Append("require_unlocked", nil, func(ctx *action.Context, next action.Next[action.Signal]) action.Signal {
		dobj := ctx.Action.Args["dobj"].ID()
		if ctx.World.IsLocked(dobj) {
			return action.Abort(fmt.Sprintf("%s is locked.", capitalize(theName(ctx.World, dobj))))
		}
		return next(ctx)
	})
	verb.CarryOut.Append("do_open", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		ctx.World.Property("open").Set([]engine.ID{ctx.Action.Args["dobj"].ID()}, engine.Bool(true))
		return struct{}{}
	})
	verb.Report.Append("say", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		ctx.Sink.WriteText(fmt.Sprintf("You open %s.", theName(ctx.World, ctx.Action.Args["dobj"].ID())))
		ctx.Sink.Para()
		return struct{}{}
	})
}

func registerClosing(g *parser.Grammar, reg *action.Registry) {
	g.Understand("command", "close/shut [something dobj]", func(b parser.Bindings) engine.Value {
		return mapAction("closing", map[string]engine.Value{"dobj": b["dobj"]})
	}, nil)

	verb := reg.Verb("closing")
	action.RequireDobjAccessible(verb.Verify)
	verb.Verify.Append("require_closeable", nil, func(ctx *action.Context, next action.Next[action.VerifyResult]) action.VerifyResult {
		dobj := ctx.Action.Args["dobj"].ID()
		w := ctx.World
		if !w.IsA(dobj, engine.KindContainer) && !w.IsA(dobj, engine.KindDoor) {
			return action.Verified(action.Illogical, fmt.Sprintf("You can't close %s.", theName(w, dobj)))
		}
		if !w.IsOpen(dobj) {
			return action.Verified(action.IllogicalAlready, fmt.Sprintf("%s is already closed.", capitalize(theName(w, dobj))))
		}
		return next(ctx)
	})
	verb.CarryOut.Append("do_close", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		ctx.World.Property("open").Set([]engine.ID{ctx.Action.Args["dobj"].ID()}, engine.Bool(false))
		return struct{}{}
	})
	verb.Report.Append("say", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		ctx.Sink.WriteText(fmt.Sprintf("You close %s.", theName(ctx.World, ctx.Action.Args["dobj"].ID())))
		ctx.Sink.Para()
		return struct{}{}
	})
}

func registerLocking(g *parser.Grammar, reg *action.Registry) {
	g.Understand("command", "lock [something dobj] with [something iobj]", func(b parser.Bindings) engine.Value {
		return mapAction("locking", map[string]engine.Value{"dobj": b["dobj"], "iobj": b["iobj"]})
	}, nil)
	g.Understand("command", "lock [something dobj]", func(b parser.Bindings) engine.Value {
		return mapAction("locking", map[string]engine.Value{"dobj": b["dobj"]})
	}, nil)
	g.Understand("command", "unlock [something dobj] with [something iobj]", func(b parser.Bindings) engine.Value {
		return mapAction("unlocking", map[string]engine.Value{"dobj": b["dobj"], "iobj": b["iobj"]})
	}, nil)
	g.Understand("command", "unlock [something dobj]", func(b parser.Bindings) engine.Value {
		return mapAction("unlocking", map[string]engine.Value{"dobj": b["dobj"]})
	}, nil)

	lock := reg.Verb("locking")
	action.RequireDobjAccessible(lock.Verify)
	lock.Verify.Append("require_closed", nil, func(ctx *action.Context, next action.Next[action.VerifyResult]) action.VerifyResult {
		dobj := ctx.Action.Args["dobj"].ID()
		if ctx.World.IsLocked(dobj) {
			return action.Verified(action.IllogicalAlready, fmt.Sprintf("%s is already locked.", capitalize(theName(ctx.World, dobj))))
		}
		if ctx.World.IsOpen(dobj) {
			return action.Verified(action.Illogical, fmt.Sprintf("%s is open.", capitalize(theName(ctx.World, dobj))))
		}
		return next(ctx)
	})
	lock.CarryOut.Append("do_lock", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		ctx.World.Property("locked").Set([]engine.ID{ctx.Action.Args["dobj"].ID()}, engine.Bool(true))
		return struct{}{}
	})
	lock.Report.Append("say", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		ctx.Sink.WriteText(fmt.Sprintf("You lock %s.", theName(ctx.World, ctx.Action.Args["dobj"].ID())))
		ctx.Sink.Para()
		return struct{}{}
	})

	unlock := reg.Verb("unlocking")
	action.RequireDobjAccessible(unlock.Verify)
	unlock.Verify.Append("require_locked", nil, func(ctx *action.Context, next action.Next[action.VerifyResult]) action.VerifyResult {
		dobj := ctx.Action.Args["dobj"].ID()
		if !ctx.World.IsLocked(dobj) {
			return action.Verified(action.IllogicalAlready, fmt.Sprintf("%s isn't locked.", capitalize(theName(ctx.World, dobj))))
		}
		return next(ctx)
	})
	unlock.CarryOut.Append("do_unlock", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		ctx.World.Property("locked").Set([]engine.ID{ctx.Action.Args["dobj"].ID()}, engine.Bool(false))
		return struct{}{}
	})
	unlock.Report.Append("say", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		ctx.Sink.WriteText(fmt.Sprintf("You unlock %s.", theName(ctx.World, ctx.Action.Args["dobj"].ID())))
		ctx.Sink.Para()
		return struct{}{}
	})
}

// --- movement ---------------------------------------------------------------

func registerMovement(g *parser.Grammar, reg *action.Registry) {
	g.Understand("command", "go/walk [direction dir]", func(b parser.Bindings) engine.Value {
		return mapAction("going", map[string]engine.Value{"dir": b["dir"]})
	}, nil)
	g.Understand("command", "[direction dir]", func(b parser.Bindings) engine.Value {
		return mapAction("going", map[string]engine.Value{"dir": b["dir"]})
	}, nil)
	g.Understand("command", "go to [anywhere dobj]", func(b parser.Bindings) engine.Value {
		return mapAction("going_to", map[string]engine.Value{"dobj": b["dobj"]})
	}, nil)
	g.Understand("command", "enter [something dobj]", func(b parser.Bindings) engine.Value {
		return mapAction("entering", map[string]engine.Value{"dobj": b["dobj"]})
	}, nil)
	g.Understand("command", "exit/out/leave", func(b parser.Bindings) engine.Value {
		return mapAction("exiting", nil)
	}, nil)
	g.Understand("command", "get off [something dobj]", func(b parser.Bindings) engine.Value {
		return mapAction("getting_off", map[string]engine.Value{"dobj": b["dobj"]})
	}, nil)

	registerGoing(reg)
	registerGoingTo(reg)
	registerEntering(reg)
	registerExiting(reg)
	registerGettingOff(reg)
}

func registerGoing(reg *action.Registry) {
	verb := reg.Verb("going")
	verb.Verify.Append("require_exit", nil, func(ctx *action.Context, next action.Next[action.VerifyResult]) action.VerifyResult {
		dir := ctx.Action.Args["dir"].Str()
		room, _, _ := ctx.World.LocationOf(ctx.Actor)
		if _, ok := ctx.World.ExitTo(room, dir); !ok {
			return action.Verified(action.Illogical, "You can't go that way.")
		}
		return next(ctx)
	})
	verb.TryBefore.Append("auto_open_door", nil, func(ctx *action.Context, next action.Next[action.Signal]) action.Signal {
		dir := ctx.Action.Args["dir"].Str()
		room, _, _ := ctx.World.LocationOf(ctx.Actor)
		target, ok := ctx.World.ExitTo(room, dir)
		if ok && ctx.World.IsA(target, engine.KindDoor) && !ctx.World.IsOpen(target) {
			if outcome := action.DoFirst(ctx, reg, subAction("opening", map[string]engine.Value{"dobj": engine.IDVal(target)})); outcome.Aborted {
				return action.Abort("")
			}
		}
		return next(ctx)
	})
	verb.CarryOut.Append("move", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		dir := ctx.Action.Args["dir"].Str()
		room, _, _ := ctx.World.LocationOf(ctx.Actor)
		target, ok := ctx.World.ExitTo(room, dir)
		if !ok {
			return struct{}{}
		}
		dest := target
		if ctx.World.IsA(target, engine.KindDoor) {
			if other, ok := ctx.World.DoorOtherSideFrom(target, room); ok {
				dest = other
			}
		}
		ctx.World.Relate(ctx.Actor, dest, engine.ContainedBy)
		return struct{}{}
	})
	// No Report: the turn loop's step_turn re-renders the new room on its
	// own once it notices the actor's visible container changed.
}

// findPath breadth-first searches the exits graph (doors transparently
// resolved to the room on their other side) for a direction sequence from
// from to to.
func findPath(w *engine.World, from, to engine.ID) ([]string, bool) {
	if from == to {
		return nil, true
	}
	type node struct {
		room engine.ID
		dir  string
		prev *node
	}
	seen := map[engine.ID]bool{from: true}
	queue := []*node{{room: from}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range w.Exits(cur.room) {
			next := e.Obj
			if w.IsA(next, engine.KindDoor) {
				other, ok := w.DoorOtherSideFrom(next, cur.room)
				if !ok {
					continue
				}
				next = other
			}
			if seen[next] {
				continue
			}
			seen[next] = true
			n := &node{room: next, dir: e.Tag, prev: cur}
			if next == to {
				var dirs []string
				for p := n; p.prev != nil; p = p.prev {
					dirs = append([]string{p.dir}, dirs...)
				}
				return dirs, true
			}
			queue = append(queue, n)
		}
	}
	return nil, false
}

func registerGoingTo(reg *action.Registry) {
	verb := reg.Verb("going_to")
	verb.Verify.Append("require_path", nil, func(ctx *action.Context, next action.Next[action.VerifyResult]) action.VerifyResult {
		dest := ctx.Action.Args["dobj"].ID()
		room, _, _ := ctx.World.LocationOf(ctx.Actor)
		if room == dest {
			return action.Verified(action.IllogicalAlready, "You are already there.")
		}
		if _, ok := findPath(ctx.World, room, dest); !ok {
			return action.Verified(action.Illogical, "You don't know a way to get there.")
		}
		return next(ctx)
	})
	verb.CarryOut.Append("walk_path", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		dest := ctx.Action.Args["dobj"].ID()
		room, _, _ := ctx.World.LocationOf(ctx.Actor)
		path, ok := findPath(ctx.World, room, dest)
		if !ok {
			return struct{}{}
		}
		for _, dir := range path {
			runSub(ctx, reg, "going", map[string]engine.Value{"dir": engine.Str(dir)}, true)
		}
		return struct{}{}
	})
	verb.Report.Append("say", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		describe.Room(ctx.World, ctx.Actor, ctx.Sink, ctx.Renderer)
		return struct{}{}
	})
}

func registerEntering(reg *action.Registry) {
	verb := reg.Verb("entering")
	action.RequireDobjAccessible(verb.Verify)
	verb.Verify.Append("require_enterable", nil, func(ctx *action.Context, next action.Next[action.VerifyResult]) action.VerifyResult {
		dobj := ctx.Action.Args["dobj"].ID()
		w := ctx.World
		if !w.IsA(dobj, engine.KindContainer) && !w.IsA(dobj, engine.KindSupporter) {
			return action.Verified(action.Illogical, fmt.Sprintf("You can't enter %s.", theName(w, dobj)))
		}
		if w.IsA(dobj, engine.KindContainer) && !w.IsOpen(dobj) {
			return action.Verified(action.Illogical, fmt.Sprintf("%s is closed.", capitalize(theName(w, dobj))))
		}
		return next(ctx)
	})
	verb.CarryOut.Append("do_enter", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		dobj := ctx.Action.Args["dobj"].ID()
		tag := engine.ContainedBy
		if ctx.World.IsA(dobj, engine.KindSupporter) {
			tag = engine.SupportedBy
		}
		ctx.World.Relate(ctx.Actor, dobj, tag)
		return struct{}{}
	})
	verb.Report.Append("say", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		ctx.Sink.WriteText(fmt.Sprintf("You get into %s.", theName(ctx.World, ctx.Action.Args["dobj"].ID())))
		ctx.Sink.Para()
		return struct{}{}
	})
}

func registerExiting(reg *action.Registry) {
	verb := reg.Verb("exiting")
	verb.Verify.Append("require_nested", nil, func(ctx *action.Context, next action.Next[action.VerifyResult]) action.VerifyResult {
		loc, _, ok := ctx.World.LocationOf(ctx.Actor)
		if !ok || ctx.World.IsA(loc, engine.KindRoom) {
			return action.Verified(action.IllogicalAlready, "You're not in anything.")
		}
		return next(ctx)
	})
	verb.CarryOut.Append("do_exit", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		loc, _, _ := ctx.World.LocationOf(ctx.Actor)
		room := ctx.World.EffectiveContainer(loc)
		ctx.World.Relate(ctx.Actor, room, engine.ContainedBy)
		return struct{}{}
	})
	say(verb.Report, "You get out.")
}

func registerGettingOff(reg *action.Registry) {
	verb := reg.Verb("getting_off")
	verb.Verify.Append("require_on", nil, func(ctx *action.Context, next action.Next[action.VerifyResult]) action.VerifyResult {
		dobj := ctx.Action.Args["dobj"].ID()
		loc, tag, ok := ctx.World.LocationOf(ctx.Actor)
		if !ok || loc != dobj || tag != engine.SupportedBy {
			return action.Verified(action.IllogicalAlready, fmt.Sprintf("You aren't on %s.", theName(ctx.World, dobj)))
		}
		return next(ctx)
	})
	verb.CarryOut.Append("do_off", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		dobj := ctx.Action.Args["dobj"].ID()
		room := ctx.World.EffectiveContainer(dobj)
		ctx.World.Relate(ctx.Actor, room, engine.ContainedBy)
		return struct{}{}
	})
	say(verb.Report, "You get off.")
}

// --- wear / remove -----------------------------------------------------------

func registerWearing(g *parser.Grammar, reg *action.Registry) {
	g.Understand("command", "wear [something dobj]", func(b parser.Bindings) engine.Value {
		return mapAction("wearing", map[string]engine.Value{"dobj": b["dobj"]})
	}, nil)
	g.Understand("command", "remove [something dobj]", func(b parser.Bindings) engine.Value {
		return mapAction("removing", map[string]engine.Value{"dobj": b["dobj"]})
	}, nil)
	g.Understand("command", "take off [something dobj]", func(b parser.Bindings) engine.Value {
		return mapAction("removing", map[string]engine.Value{"dobj": b["dobj"]})
	}, nil)

	wear := reg.Verb("wearing")
	action.RequireDobjHeld(wear.Verify, action.HeldOptions{OnlyHint: true})
	wear.Verify.Append("require_wearable", nil, func(ctx *action.Context, next action.Next[action.VerifyResult]) action.VerifyResult {
		if ctx.World.IsWorn(ctx.Action.Args["dobj"].ID()) {
			return action.Verified(action.IllogicalAlready, "You're already wearing that.")
		}
		return next(ctx)
	})
	wear.TryBefore.Append("auto_take", nil, func(ctx *action.Context, next action.Next[action.Signal]) action.Signal {
		dobj := ctx.Action.Args["dobj"].ID()
		loc, tag, ok := ctx.World.LocationOf(dobj)
		if ok && loc == ctx.Actor && (tag == engine.OwnedBy || tag == engine.WornBy) {
			return next(ctx)
		}
		if outcome := action.DoFirst(ctx, reg, subAction("taking", map[string]engine.Value{"dobj": engine.IDVal(dobj)})); outcome.Aborted {
			return action.Abort("")
		}
		return next(ctx)
	})
	wear.CarryOut.Append("do_wear", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		dobj := ctx.Action.Args["dobj"].ID()
		ctx.World.Relate(dobj, ctx.Actor, engine.WornBy)
		ctx.World.Property("worn").Set([]engine.ID{dobj}, engine.Bool(true))
		return struct{}{}
	})
	wear.Report.Append("say", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		ctx.Sink.WriteText(fmt.Sprintf("You put on %s.", theName(ctx.World, ctx.Action.Args["dobj"].ID())))
		ctx.Sink.Para()
		return struct{}{}
	})

	remove := reg.Verb("removing")
	remove.Verify.Append("require_worn", nil, func(ctx *action.Context, next action.Next[action.VerifyResult]) action.VerifyResult {
		if !ctx.World.IsWorn(ctx.Action.Args["dobj"].ID()) {
			return action.Verified(action.Illogical, "You aren't wearing that.")
		}
		return next(ctx)
	})
	remove.CarryOut.Append("do_remove", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		dobj := ctx.Action.Args["dobj"].ID()
		ctx.World.Property("worn").Set([]engine.ID{dobj}, engine.Bool(false))
		ctx.World.Relate(dobj, ctx.Actor, engine.OwnedBy)
		return struct{}{}
	})
	remove.Report.Append("say", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		ctx.Sink.WriteText(fmt.Sprintf("You take off %s.", theName(ctx.World, ctx.Action.Args["dobj"].ID())))
		ctx.Sink.Para()
		return struct{}{}
	})
}

// --- switch on/off / use / eat / attack / climb -----------------------------

func registerSwitching(g *parser.Grammar, reg *action.Registry) {
	g.Understand("command", "switch/turn on [something dobj]", func(b parser.Bindings) engine.Value {
		return mapAction("switching_on", map[string]engine.Value{"dobj": b["dobj"]})
	}, nil)
	g.Understand("command", "switch/turn off [something dobj]", func(b parser.Bindings) engine.Value {
		return mapAction("switching_off", map[string]engine.Value{"dobj": b["dobj"]})
	}, nil)

	on := reg.Verb("switching_on")
	action.RequireDobjAccessible(on.Verify)
	on.Verify.Append("require_off", nil, func(ctx *action.Context, next action.Next[action.VerifyResult]) action.VerifyResult {
		if ctx.World.IsOn(ctx.Action.Args["dobj"].ID()) {
			return action.Verified(action.IllogicalAlready, "That's already on.")
		}
		return next(ctx)
	})
	on.CarryOut.Append("do_on", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		ctx.World.Property("on").Set([]engine.ID{ctx.Action.Args["dobj"].ID()}, engine.Bool(true))
		return struct{}{}
	})
	on.Report.Append("say", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		ctx.Sink.WriteText(fmt.Sprintf("You switch on %s.", theName(ctx.World, ctx.Action.Args["dobj"].ID())))
		ctx.Sink.Para()
		return struct{}{}
	})

	off := reg.Verb("switching_off")
	action.RequireDobjAccessible(off.Verify)
	off.Verify.Append("require_on", nil, func(ctx *action.Context, next action.Next[action.VerifyResult]) action.VerifyResult {
		if !ctx.World.IsOn(ctx.Action.Args["dobj"].ID()) {
			return action.Verified(action.IllogicalAlready, "That's already off.")
		}
		return next(ctx)
	})
	off.CarryOut.Append("do_off", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		ctx.World.Property("on").Set([]engine.ID{ctx.Action.Args["dobj"].ID()}, engine.Bool(false))
		return struct{}{}
	})
	off.Report.Append("say", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		ctx.Sink.WriteText(fmt.Sprintf("You switch off %s.", theName(ctx.World, ctx.Action.Args["dobj"].ID())))
		ctx.Sink.Para()
		return struct{}{}
	})
}

func registerUsing(g *parser.Grammar, reg *action.Registry) {
	g.Understand("command", "use [something dobj]", func(b parser.Bindings) engine.Value {
		return mapAction("using", map[string]engine.Value{"dobj": b["dobj"]})
	}, nil)

	verb := reg.Verb("using")
	action.RequireDobjAccessible(verb.Verify)
	say(verb.Report, "Nothing obvious happens.")
}

func registerEating(g *parser.Grammar, reg *action.Registry) {
	g.Understand("command", "eat [something dobj]", func(b parser.Bindings) engine.Value {
		return mapAction("eating", map[string]engine.Value{"dobj": b["dobj"]})
	}, nil)

	verb := reg.Verb("eating")
	action.RequireDobjHeld(verb.Verify, action.HeldOptions{OnlyHint: true, Transitive: true})
	verb.TryBefore.Append("auto_take", nil, func(ctx *action.Context, next action.Next[action.Signal]) action.Signal {
		dobj := ctx.Action.Args["dobj"].ID()
		loc, tag, ok := ctx.World.LocationOf(dobj)
		if ok && loc == ctx.Actor && (tag == engine.OwnedBy || tag == engine.WornBy) {
			return next(ctx)
		}
		if outcome := action.DoFirst(ctx, reg, subAction("taking", map[string]engine.Value{"dobj": engine.IDVal(dobj)})); outcome.Aborted {
			return action.Abort("")
		}
		return next(ctx)
	})
	verb.CarryOut.Append("do_eat", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		ctx.World.RemoveObj(ctx.Action.Args["dobj"].ID())
		return struct{}{}
	})
	say(verb.Report, "You eat it. Not bad.")
}

func registerAttacking(g *parser.Grammar, reg *action.Registry) {
	g.Understand("command", "attack/hit/kill [something dobj]", func(b parser.Bindings) engine.Value {
		return mapAction("attacking", map[string]engine.Value{"dobj": b["dobj"]})
	}, nil)

	verb := reg.Verb("attacking")
	action.RequireDobjAccessible(verb.Verify)
	say(verb.Report, "Violence isn't the answer to this one.")
}

func registerClimbing(g *parser.Grammar, reg *action.Registry) {
	g.Understand("command", "climb [something dobj]", func(b parser.Bindings) engine.Value {
		return mapAction("climbing", map[string]engine.Value{"dobj": b["dobj"]})
	}, nil)

	verb := reg.Verb("climbing")
	action.RequireDobjAccessible(verb.Verify)
	say(verb.Report, "You don't see how climbing that would help.")
}

// --- wait / social -----------------------------------------------------------

func registerWaiting(g *parser.Grammar, reg *action.Registry) {
	g.Understand("command", "wait/z", func(b parser.Bindings) engine.Value {
		return mapAction("waiting", nil)
	}, nil)
	g.Understand("command", "jump", func(b parser.Bindings) engine.Value {
		return mapAction("jumping", nil)
	}, nil)

	say(reg.Verb("waiting").Report, "Time passes.")
	say(reg.Verb("jumping").Report, "You jump on the spot, achieving little.")
}

func registerSocial(g *parser.Grammar, reg *action.Registry) {
	g.Understand("command", "sing", func(b parser.Bindings) engine.Value {
		return mapAction("singing", nil)
	}, nil)
	g.Understand("command", "laugh", func(b parser.Bindings) engine.Value {
		return mapAction("laughing", nil)
	}, nil)
	g.Understand("command", "greet [something dobj]", func(b parser.Bindings) engine.Value {
		return mapAction("greeting", map[string]engine.Value{"dobj": b["dobj"]})
	}, nil)
	g.Understand("command", "ask [something dobj] about [text topic]", func(b parser.Bindings) engine.Value {
		return mapAction("asking_about", map[string]engine.Value{"dobj": b["dobj"], "topic": b["topic"]})
	}, nil)

	say(reg.Verb("singing").Report, "You sing a little tune.")
	say(reg.Verb("laughing").Report, "You laugh out loud.")

	greet := reg.Verb("greeting")
	action.RequireDobjVisible(greet.Verify)
	greet.Report.Append("say", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		ctx.Sink.WriteText(fmt.Sprintf("You greet %s.", theName(ctx.World, ctx.Action.Args["dobj"].ID())))
		ctx.Sink.Para()
		return struct{}{}
	})

	ask := reg.Verb("asking_about")
	action.RequireDobjVisible(ask.Verify)
	ask.Report.Append("say", nil, func(ctx *action.Context, next action.Next[struct{}]) struct{} {
		dobj := ctx.Action.Args["dobj"].ID()
		topic := ctx.Action.Args["topic"].Str()
		ctx.Sink.WriteText(fmt.Sprintf("%s has nothing to say about %s.", capitalize(theName(ctx.World, dobj)), topic))
		ctx.Sink.Para()
		return struct{}{}
	})
}

func registerHelp(g *parser.Grammar, reg *action.Registry) {
	g.Understand("command", "help", func(b parser.Bindings) engine.Value {
		return mapAction("helping", nil)
	}, nil)
	say(reg.Verb("helping").Report,
		"Try commands like: look, examine <something>, take/drop <something>, "+
			"open/close/lock/unlock <something>, go <direction>, inventory, wear/remove "+
			"<something>, put <something> in/on <something>.")
}
