package engine

import (
	"fmt"
	"sync"
)

// World is the live game state: entities (by kind), relations (location,
// exits), named properties and activities, and the actor/player pointers
// that the action pipeline and parser consult. Mutation happens only during
// carry_out (see internal/action); verify/before/report are read-only by
// convention enforced at the call sites, not by the type system.
type World struct {
	mu sync.RWMutex

	kinds  *kindTable
	kindOf map[ID]ID

	location *manyToOne
	exits    *manyToMany

	properties map[string]*Property
	activities map[string]*Activity

	globals map[string]Value

	actor  ID
	player ID

	scripts *scriptEngine
}

// NewWorld creates an empty world with the predeclared kind tree and the
// standard properties documented in DATA MODEL.
func NewWorld() *World {
	w := &World{
		kinds:      newKindTable(),
		kindOf:     make(map[ID]ID),
		location:   newManyToOne(),
		exits:      newManyToMany(),
		properties: make(map[string]*Property),
		activities: make(map[string]*Activity),
		globals:    make(map[string]Value),
		scripts:    newScriptEngine(),
	}
	registerStandardProperties(w)
	return w
}

// Property returns the named property, creating it with no rules and no
// data if it does not yet exist. Authors extend properties this way without
// the library needing to know about them in advance.
func (w *World) Property(name string) *Property {
	p, ok := w.properties[name]
	if !ok {
		p = NewProperty(name)
		w.properties[name] = p
	}
	return p
}

// Activity returns the named activity, creating it if necessary.
func (w *World) Activity(name string) *Activity {
	a, ok := w.activities[name]
	if !ok {
		a = NewActivity(name)
		w.activities[name] = a
	}
	return a
}

// Global gets a world-scoped value (not tied to any entity), such as
// darkness message text or the known-words set marker.
func (w *World) Global(name string) Value {
	return w.globals[name]
}

// SetGlobal sets a world-scoped value.
func (w *World) SetGlobal(name string, v Value) {
	w.globals[name] = v
}

// Actor is the entity whose turn is being processed.
func (w *World) Actor() ID { return w.actor }

// Player is the narrative viewpoint entity.
func (w *World) Player() ID { return w.player }

// SetPlayer sets the narrative viewpoint. Also sets the actor if unset.
func (w *World) SetPlayer(id ID) {
	w.player = id
	if w.actor == "" {
		w.actor = id
	}
}

// WithActor swaps the acting entity for the duration of fn, restoring the
// previous actor on all exits including panics.
func (w *World) WithActor(a ID, fn func()) {
	prev := w.actor
	w.actor = a
	defer func() { w.actor = prev }()
	fn()
}

// --- entity lifecycle -------------------------------------------------

// entityCounter is only used by NewID to mint ids for content that does not
// supply its own; game authors normally pass explicit ids.
var entityCounter struct {
	mu sync.Mutex
	n  int
}

// NewID mints a fresh, process-unique id prefixed with kind; the area
// loader uses it for things declared without an id.
func NewID(prefix string) ID {
	entityCounter.mu.Lock()
	defer entityCounter.mu.Unlock()
	entityCounter.n++
	return ID(fmt.Sprintf("%s_%d", prefix, entityCounter.n))
}

// NewEntity creates an entity of the given kind with id, running no
// constructors beyond the kind edge. Game-specific constructors (MakeRoom,
// MakeThing, ...) layer default properties on top of this.
func (w *World) NewEntity(id, kind ID) ID {
	w.setKind(id, kind)
	return id
}

// MakeRoom declares a room entity with a title and description.
func (w *World) MakeRoom(id ID, title, description string) ID {
	w.NewEntity(id, KindRoom)
	w.Property("name").Set([]ID{id}, Str(title))
	w.Property("description").Set([]ID{id}, Str(description))
	return id
}

// MakeThing declares a portable thing with a name, placed at location under
// tag.
func (w *World) MakeThing(id ID, name string, location ID, tag LocationTag) ID {
	w.NewEntity(id, KindThing)
	w.Property("name").Set([]ID{id}, Str(name))
	w.Relate(id, location, tag)
	return id
}

// MakeContainer declares a container thing.
func (w *World) MakeContainer(id ID, name string, location ID, tag LocationTag, open, transparent bool) ID {
	w.NewEntity(id, KindContainer)
	w.Property("name").Set([]ID{id}, Str(name))
	w.Property("open").Set([]ID{id}, Bool(open))
	w.Property("transparent").Set([]ID{id}, Bool(transparent))
	w.Relate(id, location, tag)
	return id
}

// MakeSupporter declares a supporter thing (objects placed "on" it).
func (w *World) MakeSupporter(id ID, name string, location ID, tag LocationTag) ID {
	w.NewEntity(id, KindSupporter)
	w.Property("name").Set([]ID{id}, Str(name))
	w.Relate(id, location, tag)
	return id
}

// MakeDoor declares a door between two rooms via a pair of direction tags.
// The two rooms a door connects are derived from the exits relation itself
// (see doorSides); no separate bookkeeping is kept.
func (w *World) MakeDoor(id ID, name string, roomA ID, dirA string, roomB ID, dirB string, open, locked bool) ID {
	w.NewEntity(id, KindDoor)
	w.Property("name").Set([]ID{id}, Str(name))
	w.Property("open").Set([]ID{id}, Bool(open))
	w.Property("locked").Set([]ID{id}, Bool(locked))
	w.AddExit(roomA, dirA, id)
	w.AddExit(roomB, dirB, id)
	return id
}

// MakePerson declares a person (player or NPC) placed in a room.
func (w *World) MakePerson(id ID, name string, room ID) ID {
	w.NewEntity(id, KindPerson)
	w.Property("name").Set([]ID{id}, Str(name))
	w.Relate(id, room, ContainedBy)
	return id
}

// MakeRegion declares a region grouping rooms together, for backdrops and
// scenery declared at the region level rather than room-by-room.
func (w *World) MakeRegion(id ID, name string) ID {
	w.NewEntity(id, KindRegion)
	w.Property("name").Set([]ID{id}, Str(name))
	return id
}

// AssignRegion marks room as belonging to region, for backdrop placement
// and any other region-scoped lookup.
func (w *World) AssignRegion(room, region ID) {
	w.Property("region").Set([]ID{room}, IDVal(region))
}

// MakeBackdrop declares scenery visible in the given rooms (and regions).
func (w *World) MakeBackdrop(id ID, name string, rooms ...ID) ID {
	w.NewEntity(id, KindBackdrop)
	w.Property("name").Set([]ID{id}, Str(name))
	vals := make([]Value, len(rooms))
	for i, r := range rooms {
		vals[i] = IDVal(r)
	}
	w.Property("backdrop_locations").Set([]ID{id}, List(vals...))
	if len(rooms) > 0 {
		w.Relate(id, rooms[0], ContainedBy)
	}
	return id
}
