package action

import "testing"

func TestChainCallsTailFirst(t *testing.T) {
	c := NewChain[int]("test")
	c.Append("a", nil, func(ctx *Context, next Next[int]) int { return 1 })
	c.Append("b", nil, func(ctx *Context, next Next[int]) int { return 2 })
	if got := c.Call(nil); got != 2 {
		t.Fatalf("want 2, got %d", got)
	}
}

func TestChainNextFallsThrough(t *testing.T) {
	c := NewChain[int]("test")
	c.Append("a", nil, func(ctx *Context, next Next[int]) int { return 1 })
	c.Append("b", nil, func(ctx *Context, next Next[int]) int { return next(ctx) + 10 })
	if got := c.Call(nil); got != 11 {
		t.Fatalf("want 11, got %d", got)
	}
}

func TestChainGuardSkipsMethod(t *testing.T) {
	c := NewChain[int]("test")
	c.Append("a", nil, func(ctx *Context, next Next[int]) int { return 1 })
	c.Append("b", func(ctx *Context) bool { return false }, func(ctx *Context, next Next[int]) int { return 2 })
	if got := c.Call(nil); got != 1 {
		t.Fatalf("want 1 (guard should skip b), got %d", got)
	}
}

func TestChainEmptyReturnsZero(t *testing.T) {
	c := NewChain[int]("test")
	if got := c.Call(nil); got != 0 {
		t.Fatalf("want zero value, got %d", got)
	}
}

func TestChainInsertBeforeAndAfter(t *testing.T) {
	c := NewChain[string]("test")
	c.Append("base", nil, func(ctx *Context, next Next[string]) string { return "base" })
	c.InsertBefore("base", "early", nil, func(ctx *Context, next Next[string]) string { return "early" })
	c.InsertAfter("base", "late", nil, func(ctx *Context, next Next[string]) string { return "late" })
	// list order is early, base, late; scanning tail-first, late runs first
	if got := c.Call(nil); got != "late" {
		t.Fatalf("want late, got %q", got)
	}
	c.RemoveByName("late")
	if got := c.Call(nil); got != "base" {
		t.Fatalf("want base after removing late, got %q", got)
	}
}
