package engine

import "testing"

func TestIsAWalksKindTree(t *testing.T) {
	w := NewWorld()
	w.DeclareKind("ball", KindThing)
	w.DeclareKind("red_ball", "ball")
	w.NewEntity("b1", "red_ball")

	if !w.IsA("b1", "red_ball") {
		t.Fatal("b1 should be a red_ball")
	}
	if !w.IsA("b1", "ball") {
		t.Fatal("b1 should be a ball (ancestor)")
	}
	if !w.IsA("b1", KindThing) {
		t.Fatal("b1 should be a thing (grandparent)")
	}
	if !w.IsA("b1", KindKind) {
		t.Fatal("b1 should be a kind (root)")
	}
	if w.IsA("b1", KindRoom) {
		t.Fatal("b1 should not be a room")
	}
}

func TestDeclareKindUnknownParentPanics(t *testing.T) {
	w := NewWorld()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown parent kind")
		}
	}()
	w.DeclareKind("bogus", "no-such-kind")
}

func TestPredeclaredKindTree(t *testing.T) {
	w := NewWorld()
	for _, k := range []ID{KindDoor, KindContainer, KindSupporter, KindPerson, KindBackdrop} {
		if !w.kinds.isA(k, KindThing) {
			t.Fatalf("%s should descend from thing", k)
		}
	}
	if !w.kinds.isA(KindRoom, KindKind) {
		t.Fatal("room should descend from kind")
	}
}
