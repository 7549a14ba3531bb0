package engine

import "testing"

func TestGenericOperationDispatchOrder(t *testing.T) {
	op := NewGenericOperation("greet")
	op.Prepend("default", nil, func(args []ID, next Next) (Value, error) {
		return Str("hello, stranger"), nil
	})
	op.Append("named", func(args []ID) bool {
		return len(args) > 0 && args[0] == "alice"
	}, func(args []ID, next Next) (Value, error) {
		return Str("hello, alice"), nil
	})

	v, err := op.Call([]ID{"alice"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Str() != "hello, alice" {
		t.Fatalf("want hello, alice, got %q", v.Str())
	}

	v, err = op.Call([]ID{"bob"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Str() != "hello, stranger" {
		t.Fatalf("want hello, stranger, got %q", v.Str())
	}
}

func TestGenericOperationNext(t *testing.T) {
	op := NewGenericOperation("describe")
	op.Prepend("base", nil, func(args []ID, next Next) (Value, error) {
		return Str("a thing"), nil
	})
	op.Append("wrap", nil, func(args []ID, next Next) (Value, error) {
		inner, err := next(args)
		if err != nil {
			return Nil(), err
		}
		return Str("it looks like " + inner.Str()), nil
	})

	v, err := op.Call(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Str() != "it looks like a thing" {
		t.Fatalf("got %q", v.Str())
	}
}

func TestGenericOperationNoApplicableMethod(t *testing.T) {
	op := NewGenericOperation("mystery")
	_, err := op.Call([]ID{"x"})
	if err == nil {
		t.Fatal("expected NoApplicableMethodError")
	}
	if _, ok := err.(*NoApplicableMethodError); !ok {
		t.Fatalf("want *NoApplicableMethodError, got %T", err)
	}
}

func TestGenericOperationInsertBeforeAfterAndRemove(t *testing.T) {
	op := NewGenericOperation("op")
	op.Append("a", nil, func(args []ID, next Next) (Value, error) { return Str("a"), nil })
	op.InsertBefore("a", "b", nil, func(args []ID, next Next) (Value, error) { return Str("b"), nil })
	op.InsertAfter("a", "c", nil, func(args []ID, next Next) (Value, error) { return Str("c"), nil })

	// Dispatch order (tail to head) should be: c, a, b.
	got := op.Methods()
	want := []string{"c", "a", "b"}
	if len(got) != len(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("want %v, got %v", want, got)
		}
	}

	op.RemoveByName("a")
	v, err := op.Call(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Str() != "c" {
		t.Fatalf("want c (still tried first), got %q", v.Str())
	}
}

func TestGenericOperationApplicable(t *testing.T) {
	op := NewGenericOperation("op")
	if op.Applicable(nil) {
		t.Fatal("empty operation should not be applicable")
	}
	op.Append("only-x", func(args []ID) bool { return len(args) > 0 && args[0] == "x" }, func(args []ID, next Next) (Value, error) {
		return Nil(), nil
	})
	if op.Applicable([]ID{"y"}) {
		t.Fatal("should not be applicable to y")
	}
	if !op.Applicable([]ID{"x"}) {
		t.Fatal("should be applicable to x")
	}
}
