package action

import "fmt"

// Signal is what try_before/before hand back to the pipeline: either
// "proceed normally" (the zero value), an abort, or a redirect to a
// different action (do_instead).
type Signal struct {
	Abort        bool
	AbortReason  string
	Instead      *Action
	InsteadQuiet bool // suppress "(doing X instead)"
}

// Abort builds a Signal that unwinds the pipeline without running
// carry_out or report.
func Abort(reason string) Signal {
	return Signal{Abort: true, AbortReason: reason}
}

// DoInstead builds a Signal that replaces the current action with other,
// printing "(doing X instead)" first unless quiet is set.
func DoInstead(other Action, quiet bool) Signal {
	return Signal{Instead: &other, InsteadQuiet: quiet}
}

// VerbDef is one verb's full five-phase pipeline.
type VerbDef struct {
	Name      string
	Verify    *Chain[VerifyResult]
	TryBefore *Chain[Signal]
	Before    *Chain[Signal]
	CarryOut  *Chain[struct{}]
	Report    *Chain[struct{}]
}

func newVerbDef(name string) *VerbDef {
	v := &VerbDef{
		Name:      name,
		Verify:    NewChain[VerifyResult]("verify:" + name),
		TryBefore: NewChain[Signal]("try_before:" + name),
		Before:    NewChain[Signal]("before:" + name),
		CarryOut:  NewChain[struct{}]("carry_out:" + name),
		Report:    NewChain[struct{}]("report:" + name),
	}
	v.Verify.Prepend("default", nil, func(ctx *Context, next Next[VerifyResult]) VerifyResult {
		return Verified(Logical, "")
	})
	return v
}

// Registry holds every verb's pipeline, keyed by verb name.
type Registry struct {
	verbs map[string]*VerbDef
}

func NewRegistry() *Registry {
	return &Registry{verbs: make(map[string]*VerbDef)}
}

// Verb returns the named verb's pipeline, creating it (with baseline
// defaults) on first use.
func (r *Registry) Verb(name string) *VerbDef {
	v, ok := r.verbs[name]
	if !ok {
		v = newVerbDef(name)
		r.verbs[name] = v
	}
	return v
}

// Outcome is the terminal result of running a full pipeline, reported back
// to the turn loop.
type Outcome struct {
	Aborted bool
	Reason  string
}

// Run executes ctx.Action's full pipeline: verify, try_before, before,
// carry_out, report. silent skips the report phase (used by do_first's
// sub-actions are NOT silent — silent is for programmatic checks that
// should not narrate).
func Run(ctx *Context, reg *Registry, silent bool) Outcome {
	verb := reg.Verb(ctx.Action.Verb)

	result := runVerify(ctx, verb.Verify)
	if result.Score < ReasonableCutoff {
		if !silent {
			ctx.Renderer.Write(ctx.Sink, result.Reason)
		}
		return Outcome{Aborted: true, Reason: result.Reason}
	}

	if sig := verb.TryBefore.Call(ctx); sig.Abort || sig.Instead != nil {
		return handleSignal(ctx, reg, sig, silent)
	}
	if sig := verb.Before.Call(ctx); sig.Abort || sig.Instead != nil {
		return handleSignal(ctx, reg, sig, silent)
	}

	verb.CarryOut.Call(ctx)
	if !silent {
		verb.Report.Call(ctx)
	}
	return Outcome{}
}

func handleSignal(ctx *Context, reg *Registry, sig Signal, silent bool) Outcome {
	if sig.Abort {
		if !silent && sig.AbortReason != "" {
			ctx.Renderer.Write(ctx.Sink, sig.AbortReason)
		}
		return Outcome{Aborted: true, Reason: sig.AbortReason}
	}
	if !silent && !sig.InsteadQuiet {
		ctx.Sink.WriteText(fmt.Sprintf("(doing %s instead)\n", sig.Instead.Verb))
	}
	return Run(ctx.withAction(*sig.Instead), reg, silent)
}

// DoFirst runs sub as a complete sub-action (the mechanism behind implicit
// prerequisites such as auto-opening a door before going through it),
// narrating it with a "(first ...)" prefix.
func DoFirst(ctx *Context, reg *Registry, sub Action) Outcome {
	ctx.Sink.WriteText(fmt.Sprintf("(first %s) ", describeAction(ctx, sub)))
	outcome := Run(ctx.withAction(sub), reg, false)
	ctx.Sink.Para()
	return outcome
}

func describeAction(ctx *Context, a Action) string {
	dobj := a.dobj()
	if dobj == "" {
		return a.Verb
	}
	return a.Verb + " the " + ctx.World.Name(dobj)
}
