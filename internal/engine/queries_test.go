package engine

import "testing"

func TestEffectiveAndVisibleContainerAreRoomForRoom(t *testing.T) {
	w := NewWorld()
	w.MakeRoom("lobby", "Lobby", "")
	if w.EffectiveContainer("lobby") != "lobby" {
		t.Fatal("a room is its own effective container")
	}
	if w.VisibleContainer("lobby") != "lobby" {
		t.Fatal("a room is its own visible container")
	}
}

func TestEffectiveContainerStopsAtClosedContainer(t *testing.T) {
	w := NewWorld()
	w.MakeRoom("lobby", "Lobby", "")
	w.MakeContainer("box", "box", "lobby", ContainedBy, false, false)
	w.MakeThing("ball", "ball", "box", ContainedBy)

	if got := w.EffectiveContainer("ball"); got != "box" {
		t.Fatalf("closed box should terminate the walk, got %v", got)
	}
	w.Property("open").Set([]ID{"box"}, Bool(true))
	if got := w.EffectiveContainer("ball"); got != "lobby" {
		t.Fatalf("open box should pass through to lobby, got %v", got)
	}
}

func TestVisibleContainerPassesThroughTransparentClosedContainer(t *testing.T) {
	w := NewWorld()
	w.MakeRoom("lobby", "Lobby", "")
	w.MakeContainer("jar", "glass jar", "lobby", ContainedBy, false, true)
	w.MakeThing("coin", "coin", "jar", ContainedBy)

	if got := w.VisibleContainer("coin"); got != "lobby" {
		t.Fatalf("closed transparent jar should not block visibility, got %v", got)
	}
	if got := w.EffectiveContainer("coin"); got != "jar" {
		t.Fatalf("closed jar should still block reaching in, got %v", got)
	}
}

func TestVisibleToRequiresLight(t *testing.T) {
	w := NewWorld()
	w.MakeRoom("cellar", "Cellar", "")
	w.MakePerson("alice", "Alice", "cellar")
	w.MakeThing("ball", "ball", "cellar", ContainedBy)

	if w.VisibleTo("ball", "alice") {
		t.Fatal("ball should not be visible in a dark room")
	}
	w.Property("makes_light").Set([]ID{"cellar"}, Bool(true))
	if !w.VisibleTo("ball", "alice") {
		t.Fatal("ball should be visible once the room makes light")
	}
}

func TestVisibleToCarriedLightSource(t *testing.T) {
	w := NewWorld()
	w.MakeRoom("cellar", "Cellar", "")
	w.MakePerson("alice", "Alice", "cellar")
	w.MakeThing("lamp", "lamp", "alice", OwnedBy)
	w.Property("makes_light").Set([]ID{"lamp"}, Bool(true))
	w.MakeThing("ball", "ball", "cellar", ContainedBy)

	if !w.VisibleTo("ball", "alice") {
		t.Fatal("ball should be visible when alice carries a lit lamp")
	}
	if !w.VisibleTo("lamp", "alice") {
		t.Fatal("alice should see her own lamp regardless of room light")
	}
}

func TestAccessibleImpliesVisible(t *testing.T) {
	w := NewWorld()
	w.MakeRoom("lobby", "Lobby", "")
	w.Property("makes_light").Set([]ID{"lobby"}, Bool(true))
	w.MakePerson("alice", "Alice", "lobby")
	w.MakeContainer("box", "box", "lobby", ContainedBy, true, false)
	w.MakeThing("ball", "ball", "box", ContainedBy)

	cases := []ID{"lobby", "box", "ball", "alice"}
	for _, x := range cases {
		if w.AccessibleTo(x, "alice") && !w.VisibleTo(x, "alice") {
			t.Fatalf("%s is accessible but not visible, which should never happen", x)
		}
	}

	w.Property("open").Set([]ID{"box"}, Bool(false))
	if w.AccessibleTo("ball", "alice") {
		t.Fatal("ball inside a closed box should not be accessible")
	}
}

func TestAccessibleImpliesVisibleInDarkness(t *testing.T) {
	w := NewWorld()
	w.MakeRoom("cellar", "Cellar", "")
	w.MakePerson("alice", "Alice", "cellar")
	w.MakeThing("ball", "ball", "cellar", ContainedBy)

	if w.AccessibleTo("ball", "alice") && !w.VisibleTo("ball", "alice") {
		t.Fatal("a ball in a dark room sharing alice's effective container should not be accessible without being visible")
	}
	if w.AccessibleTo("ball", "alice") {
		t.Fatal("a ball in a pitch dark room should not be accessible")
	}
}

func TestTrappedInsideClosedContainerCanStillReachIt(t *testing.T) {
	// "trapped by take box; enter box; close box" scenario: an actor shut
	// inside a container must still be able to reach (open) the container
	// from the inside, but nothing beyond it.
	w := NewWorld()
	w.MakeRoom("lobby", "Lobby", "")
	w.MakeContainer("box", "big box", "lobby", ContainedBy, true, false)
	w.MakePerson("alice", "Alice", "box")
	w.Property("open").Set([]ID{"box"}, Bool(false))

	if !w.AccessibleTo("box", "alice") {
		t.Fatal("alice trapped in the box must still be able to reach the box itself")
	}
	if w.AccessibleTo("lobby", "alice") {
		t.Fatal("alice should not be able to reach beyond the closed box")
	}
}

func TestDoorVisibleAndAccessibleFromEitherRoom(t *testing.T) {
	w := NewWorld()
	w.MakeRoom("lobby", "Lobby", "")
	w.MakeRoom("hall", "Hall", "")
	w.Property("makes_light").Set([]ID{"lobby"}, Bool(true))
	w.Property("makes_light").Set([]ID{"hall"}, Bool(true))
	w.MakeDoor("plaindoor", "plain door", "lobby", "north", "hall", "south", true, false)
	w.MakePerson("alice", "Alice", "lobby")
	w.MakePerson("bob", "Bob", "hall")

	if !w.VisibleTo("plaindoor", "alice") || !w.AccessibleTo("plaindoor", "alice") {
		t.Fatal("door should be visible and accessible from lobby")
	}
	if !w.VisibleTo("plaindoor", "bob") || !w.AccessibleTo("plaindoor", "bob") {
		t.Fatal("door should be visible and accessible from hall")
	}
}
