package action

import "textadv/internal/engine"

// Verification scores, additive: authors compose these across a verb's
// registered verify methods. ReasonableCutoff (90) is the line between an
// action that may proceed and one that is rejected outright.
const (
	VeryLogical           = 150
	Logical               = 100
	NonObvious            = 99
	BarelyLogical         = 90
	ReasonableCutoff      = BarelyLogical
	IllogicalAlready      = 60
	IllogicalInaccessible = 20
	Illogical             = 10
	IllogicalNotVisible   = 0
)

// VerifyResult is the score plus a human-readable reason, shown to the
// player only when the action does not proceed.
type VerifyResult struct {
	Score  int
	Reason string
}

// Verified is shorthand for constructing a VerifyResult.
func Verified(score int, reason string) VerifyResult {
	return VerifyResult{Score: score, Reason: reason}
}

// Combine implements §4.5's combining rule: if both scores are at least
// barely logical, the higher (more specific, more permissive) reason wins;
// otherwise the lower (worst) reason wins, since that is the one the player
// needs to see.
func Combine(a, b VerifyResult) VerifyResult {
	if a.Score >= ReasonableCutoff && b.Score >= ReasonableCutoff {
		if a.Score >= b.Score {
			return a
		}
		return b
	}
	if a.Score <= b.Score {
		return a
	}
	return b
}

func runVerify(ctx *Context, chain *Chain[VerifyResult]) VerifyResult {
	if chain == nil {
		return Verified(Logical, "")
	}
	return chain.Call(ctx)
}

// --- reusable verify adornments -----------------------------------------
//
// Authors compose these onto a verb's Verify chain with Append so they run
// before (are tried ahead of) the verb's own logic, the way a mixin would.

// RequireDobjVisible rejects the action outright if its dobj is not visible
// to the actor.
func RequireDobjVisible(chain *Chain[VerifyResult]) {
	chain.Append("require_dobj_visible", nil, func(ctx *Context, next Next[VerifyResult]) VerifyResult {
		dobj := ctx.Action.dobj()
		if dobj != "" && !ctx.World.VisibleTo(dobj, ctx.Actor) {
			return Verified(IllogicalNotVisible, "You can't see that.")
		}
		return next(ctx)
	})
}

// RequireDobjAccessible rejects the action if the dobj is visible but not
// physically reachable (behind a closed container, say).
func RequireDobjAccessible(chain *Chain[VerifyResult]) {
	chain.Append("require_dobj_accessible", nil, func(ctx *Context, next Next[VerifyResult]) VerifyResult {
		dobj := ctx.Action.dobj()
		if dobj == "" {
			return next(ctx)
		}
		if !ctx.World.VisibleTo(dobj, ctx.Actor) {
			return Verified(IllogicalNotVisible, "You can't see that.")
		}
		if !ctx.World.AccessibleTo(dobj, ctx.Actor) {
			return Verified(IllogicalInaccessible, "You can't get to that.")
		}
		return next(ctx)
	})
}

// HeldOptions configures RequireDobjHeld.
type HeldOptions struct {
	// OnlyHint downgrades a not-held dobj to a hint (non-obvious) instead of
	// an outright rejection, for verbs that can auto-take (try_before does
	// the actual pickup).
	OnlyHint bool
	// Transitive also accepts the dobj being inside something the actor
	// holds (a held open bag's contents), not just owned_by the actor
	// directly.
	Transitive bool
}

// RequireDobjHeld rejects (or hints, per opts) unless the dobj is held by
// the actor.
func RequireDobjHeld(chain *Chain[VerifyResult], opts HeldOptions) {
	chain.Append("require_dobj_held", nil, func(ctx *Context, next Next[VerifyResult]) VerifyResult {
		dobj := ctx.Action.dobj()
		if dobj == "" {
			return next(ctx)
		}
		held := isHeldBy(ctx.World, dobj, ctx.Actor, opts.Transitive)
		if held {
			return next(ctx)
		}
		if opts.OnlyHint {
			r := next(ctx)
			if r.Score < ReasonableCutoff {
				return r
			}
			return Verified(NonObvious, "(first taking that)")
		}
		return Verified(Illogical, "You aren't holding that.")
	})
}

// HintDobjNotHeld rejects with IllogicalAlready ("You already have that.")
// when the actor already holds the dobj directly, for verbs like "take"
// whose effect would already be done.
func HintDobjNotHeld(chain *Chain[VerifyResult]) {
	chain.Append("hint_dobj_not_held", nil, func(ctx *Context, next Next[VerifyResult]) VerifyResult {
		dobj := ctx.Action.dobj()
		if dobj != "" && isHeldBy(ctx.World, dobj, ctx.Actor, false) {
			return Verified(IllogicalAlready, "You already have that.")
		}
		return next(ctx)
	})
}

func isHeldBy(w *engine.World, dobj, actor engine.ID, transitive bool) bool {
	loc, tag, ok := w.LocationOf(dobj)
	if !ok {
		return false
	}
	if loc == actor && (tag == engine.OwnedBy || tag == engine.WornBy) {
		return true
	}
	if transitive && (tag == engine.ContainedBy || tag == engine.SupportedBy) {
		return isHeldBy(w, loc, actor, transitive)
	}
	return false
}

// RequireIobjVisible / RequireIobjAccessible mirror the dobj adornments for
// the indirect object ("put ball in box": box is the iobj).
func RequireIobjVisible(chain *Chain[VerifyResult]) {
	chain.Append("require_iobj_visible", nil, func(ctx *Context, next Next[VerifyResult]) VerifyResult {
		iobj := ctx.Action.iobj()
		if iobj != "" && !ctx.World.VisibleTo(iobj, ctx.Actor) {
			return Verified(IllogicalNotVisible, "You can't see that.")
		}
		return next(ctx)
	})
}

func RequireIobjAccessible(chain *Chain[VerifyResult]) {
	chain.Append("require_iobj_accessible", nil, func(ctx *Context, next Next[VerifyResult]) VerifyResult {
		iobj := ctx.Action.iobj()
		if iobj == "" {
			return next(ctx)
		}
		if !ctx.World.VisibleTo(iobj, ctx.Actor) {
			return Verified(IllogicalNotVisible, "You can't see that.")
		}
		if !ctx.World.AccessibleTo(iobj, ctx.Actor) {
			return Verified(IllogicalInaccessible, "You can't get to that.")
		}
		return next(ctx)
	})
}
