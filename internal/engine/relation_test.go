package engine

import "testing"

func TestRelateAndReverseIndexConsistency(t *testing.T) {
	w := NewWorld()
	w.MakeRoom("lobby", "Lobby", "A plain lobby.")
	w.MakeThing("ball", "red ball", "lobby", ContainedBy)
	w.MakeThing("box", "cardboard box", "lobby", ContainedBy)

	related := w.RelatedTo("lobby")
	if len(related) != 2 {
		t.Fatalf("want 2 related entities, got %d: %v", len(related), related)
	}

	loc, tag, ok := w.LocationOf("ball")
	if !ok || loc != "lobby" || tag != ContainedBy {
		t.Fatalf("unexpected location for ball: %v %v %v", loc, tag, ok)
	}

	// Re-relate to the box; lobby's reverse index must drop the ball.
	w.Relate("ball", "box", ContainedBy)
	if contains(w.RelatedTo("lobby"), "ball") {
		t.Fatal("lobby should no longer contain ball after re-relate")
	}
	if !contains(w.RelatedTo("box"), "ball") {
		t.Fatal("box should now contain ball")
	}
}

func TestClearForLeavesNoTrace(t *testing.T) {
	w := NewWorld()
	w.MakeRoom("lobby", "Lobby", "")
	w.MakeThing("ball", "ball", "lobby", ContainedBy)

	before := len(w.RelatedTo("lobby"))
	w.ClearFor("ball")
	w.Relate("ball", "lobby", ContainedBy)
	w.ClearFor("ball")

	after := len(w.RelatedTo("lobby"))
	if before-1 != after {
		// before includes ball; after clearing it should not.
		if after != before-1 {
			t.Fatalf("clearFor/relate/clearFor should leave index as if neither happened: before=%d after=%d", before, after)
		}
	}
	if _, _, ok := w.LocationOf("ball"); ok {
		t.Fatal("ball should have no location after ClearFor")
	}
}

func TestRelateRefusesRoomSource(t *testing.T) {
	w := NewWorld()
	w.MakeRoom("lobby", "Lobby", "")
	w.MakeRoom("hall", "Hall", "")

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when relating a room as a location-edge source")
		}
	}()
	w.Relate("lobby", "hall", ContainedBy)
}

func TestContainsIsIrreflexiveAndTransitive(t *testing.T) {
	w := NewWorld()
	w.MakeRoom("lobby", "Lobby", "")
	w.MakeContainer("box", "box", "lobby", ContainedBy, true, false)
	w.MakeThing("ball", "ball", "box", ContainedBy)

	if w.Contains("ball", "ball") {
		t.Fatal("an object must not contain itself")
	}
	if !w.Contains("lobby", "ball") {
		t.Fatal("lobby should transitively contain ball via box")
	}
	if !w.Contains("box", "ball") {
		t.Fatal("box should directly contain ball")
	}
	if w.Contains("ball", "box") {
		t.Fatal("containment should not run backwards")
	}
}

func TestExitsInverseConsistency(t *testing.T) {
	w := NewWorld()
	w.MakeRoom("lobby", "Lobby", "")
	w.MakeRoom("hall", "Hall", "")
	w.ConnectRooms("lobby", "north", "hall", false)

	dest, ok := w.ExitTo("lobby", "north")
	if !ok || dest != "hall" {
		t.Fatalf("lobby north should lead to hall, got %v %v", dest, ok)
	}
	back, ok := w.ExitTo("hall", "south")
	if !ok || back != "lobby" {
		t.Fatalf("hall south should lead back to lobby, got %v %v", back, ok)
	}
}

func TestDoorInvolution(t *testing.T) {
	w := NewWorld()
	w.MakeRoom("lobby", "Lobby", "")
	w.MakeRoom("hall", "Hall", "")
	w.MakeDoor("plaindoor", "plain door", "lobby", "north", "hall", "south", true, false)

	other, ok := w.DoorOtherSideFrom("plaindoor", "lobby")
	if !ok || other != "hall" {
		t.Fatalf("want hall, got %v %v", other, ok)
	}
	other, ok = w.DoorOtherSideFrom("plaindoor", "hall")
	if !ok || other != "lobby" {
		t.Fatalf("want lobby, got %v %v", other, ok)
	}
	if _, ok := w.DoorOtherSideFrom("plaindoor", "nowhere"); ok {
		t.Fatal("door should not report a side it is not on")
	}
}

func contains(ids []ID, want ID) bool {
	for _, id := range ids {
		if id == want {
			return true
		}
	}
	return false
}
