package action

import (
	"testing"

	"textadv/internal/engine"
)

func newVerifyWorld() (*engine.World, engine.ID) {
	w := engine.NewWorld()
	w.MakeRoom("lobby", "Lobby", "")
	w.Property("makes_light").Set([]engine.ID{"lobby"}, engine.Bool(true))
	w.MakePerson("alice", "Alice", "lobby")
	w.SetPlayer("alice")
	w.MakeThing("ball", "red ball", "lobby", engine.ContainedBy)
	w.MakeThing("coin", "gold coin", "alice", engine.OwnedBy)
	return w, "alice"
}

func TestCombinePrefersHigherWhenBothReasonable(t *testing.T) {
	got := Combine(Verified(VeryLogical, "a"), Verified(Logical, "b"))
	if got.Score != VeryLogical {
		t.Fatalf("want VeryLogical, got %d", got.Score)
	}
}

func TestCombinePrefersWorstWhenEitherUnreasonable(t *testing.T) {
	got := Combine(Verified(Logical, "fine"), Verified(Illogical, "nope"))
	if got.Score != Illogical || got.Reason != "nope" {
		t.Fatalf("want the illogical reason to win, got %+v", got)
	}
}

func TestRequireDobjVisibleRejectsUnseenObject(t *testing.T) {
	w, alice := newVerifyWorld()
	w.MakeRoom("attic", "Attic", "")
	w.MakeThing("key", "brass key", "attic", engine.ContainedBy)

	chain := NewChain[VerifyResult]("verify")
	RequireDobjVisible(chain)
	chain.Prepend("base", nil, func(ctx *Context, next Next[VerifyResult]) VerifyResult {
		return Verified(Logical, "")
	})

	ctx := &Context{World: w, Actor: alice, Action: Action{Verb: "take", Args: map[string]engine.Value{"dobj": engine.IDVal("key")}}}
	got := chain.Call(ctx)
	if got.Score != IllogicalNotVisible {
		t.Fatalf("want IllogicalNotVisible, got %d (%s)", got.Score, got.Reason)
	}
}

func TestRequireDobjHeldHintsWhenOnlyHint(t *testing.T) {
	w, alice := newVerifyWorld()
	chain := NewChain[VerifyResult]("verify")
	RequireDobjHeld(chain, HeldOptions{OnlyHint: true})
	chain.Prepend("base", nil, func(ctx *Context, next Next[VerifyResult]) VerifyResult {
		return Verified(Logical, "")
	})

	ctx := &Context{World: w, Actor: alice, Action: Action{Verb: "drop", Args: map[string]engine.Value{"dobj": engine.IDVal("ball")}}}
	got := chain.Call(ctx)
	if got.Score != NonObvious {
		t.Fatalf("want NonObvious hint for un-held dobj, got %d", got.Score)
	}
}

func TestRequireDobjHeldAcceptsOwned(t *testing.T) {
	w, alice := newVerifyWorld()
	chain := NewChain[VerifyResult]("verify")
	RequireDobjHeld(chain, HeldOptions{})
	chain.Append("base", nil, func(ctx *Context, next Next[VerifyResult]) VerifyResult {
		return Verified(Logical, "")
	})

	ctx := &Context{World: w, Actor: alice, Action: Action{Verb: "drop", Args: map[string]engine.Value{"dobj": engine.IDVal("coin")}}}
	got := chain.Call(ctx)
	if got.Score != Logical {
		t.Fatalf("want Logical for held coin, got %d (%s)", got.Score, got.Reason)
	}
}

func TestHintDobjNotHeldRejectsAlreadyHeld(t *testing.T) {
	w, alice := newVerifyWorld()
	chain := NewChain[VerifyResult]("verify")
	HintDobjNotHeld(chain)
	chain.Prepend("base", nil, func(ctx *Context, next Next[VerifyResult]) VerifyResult {
		return Verified(Logical, "")
	})

	ctx := &Context{World: w, Actor: alice, Action: Action{Verb: "take", Args: map[string]engine.Value{"dobj": engine.IDVal("coin")}}}
	got := chain.Call(ctx)
	if got.Score != IllogicalAlready {
		t.Fatalf("want IllogicalAlready, got %d", got.Score)
	}
}
