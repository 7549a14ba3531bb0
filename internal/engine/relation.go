package engine

// LocationTag distinguishes what it means for one entity to be "at"
// another.
type LocationTag string

const (
	ContainedBy LocationTag = "contained_by"
	SupportedBy LocationTag = "supported_by"
	OwnedBy     LocationTag = "owned_by"
	PartOf      LocationTag = "part_of"
	WornBy      LocationTag = "worn_by"
)

type locationEdge struct {
	target ID
	tag    LocationTag
}

// manyToOne is the location relation: one forward edge per object, tagged,
// with a reverse index kept consistent under Relate/ClearFor.
type manyToOne struct {
	forward map[ID]locationEdge
	reverse map[ID]map[ID]struct{}
}

func newManyToOne() *manyToOne {
	return &manyToOne{
		forward: make(map[ID]locationEdge),
		reverse: make(map[ID]map[ID]struct{}),
	}
}

func (m *manyToOne) clearFor(o ID) {
	if edge, ok := m.forward[o]; ok {
		if set, ok := m.reverse[edge.target]; ok {
			delete(set, o)
			if len(set) == 0 {
				delete(m.reverse, edge.target)
			}
		}
		delete(m.forward, o)
	}
}

func (m *manyToOne) relate(o, target ID, tag LocationTag) {
	m.clearFor(o)
	m.forward[o] = locationEdge{target: target, tag: tag}
	set, ok := m.reverse[target]
	if !ok {
		set = make(map[ID]struct{})
		m.reverse[target] = set
	}
	set[o] = struct{}{}
}

func (m *manyToOne) get(o ID) (ID, LocationTag, bool) {
	edge, ok := m.forward[o]
	if !ok {
		return "", "", false
	}
	return edge.target, edge.tag, true
}

func (m *manyToOne) relatedTo(target ID) []ID {
	set := m.reverse[target]
	out := make([]ID, 0, len(set))
	for o := range set {
		out = append(out, o)
	}
	return out
}

// Relate sets the location of o to (target, tag), replacing any prior edge
// and keeping the reverse index consistent atomically.
func (w *World) Relate(o, target ID, tag LocationTag) {
	if w.IsA(o, KindRoom) {
		panic("engine: a room may not be the source of a location edge")
	}
	w.location.relate(o, target, tag)
}

// ClearFor removes o's forward location edge, if any.
func (w *World) ClearFor(o ID) {
	w.location.clearFor(o)
}

// LocationOf returns the (target, tag) of o's location edge.
func (w *World) LocationOf(o ID) (ID, LocationTag, bool) {
	return w.location.get(o)
}

// RelatedTo returns the set of entities whose location points at target.
func (w *World) RelatedTo(target ID) []ID {
	return w.location.relatedTo(target)
}

// RemoveObj clears o's location edge. The id persists and can be re-placed.
func (w *World) RemoveObj(o ID) {
	w.ClearFor(o)
}

// Contains reports the reflexive-free transitive closure of location,
// ignoring tag: does outer eventually contain inner by a chain of location
// edges. An object does not contain itself. This is the newer sense per
// DESIGN NOTES: contains(outer, inner).
func (w *World) Contains(outer, inner ID) bool {
	cur := inner
	seen := map[ID]struct{}{inner: {}}
	for {
		next, _, ok := w.location.get(cur)
		if !ok {
			return false
		}
		if next == outer {
			return true
		}
		if _, loop := seen[next]; loop {
			return false
		}
		seen[next] = struct{}{}
		cur = next
	}
}

// taggedEdge is one entry of a tagged many-to-many relation: exits maps a
// room to a list of {obj, tag} pairs where tag is typically a direction.
type taggedEdge struct {
	obj ID
	tag string
}

type manyToMany struct {
	edges map[ID][]taggedEdge
}

func newManyToMany() *manyToMany {
	return &manyToMany{edges: make(map[ID][]taggedEdge)}
}

func (m *manyToMany) add(source, obj ID, tag string) {
	list := m.edges[source]
	for i, e := range list {
		if e.tag == tag {
			list[i].obj = obj
			return
		}
	}
	m.edges[source] = append(list, taggedEdge{obj: obj, tag: tag})
}

func (m *manyToMany) get(source ID, tag string) (ID, bool) {
	for _, e := range m.edges[source] {
		if e.tag == tag {
			return e.obj, true
		}
	}
	return "", false
}

func (m *manyToMany) list(source ID) []taggedEdge {
	out := make([]taggedEdge, len(m.edges[source]))
	copy(out, m.edges[source])
	return out
}

func (m *manyToMany) removeTag(source ID, tag string) {
	list := m.edges[source]
	for i, e := range list {
		if e.tag == tag {
			m.edges[source] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// Exits returns the {obj, tag} edges registered for room, in registration
// order.
func (w *World) Exits(room ID) []struct {
	Obj ID
	Tag string
} {
	raw := w.exits.list(room)
	out := make([]struct {
		Obj ID
		Tag string
	}, len(raw))
	for i, e := range raw {
		out[i] = struct {
			Obj ID
			Tag string
		}{Obj: e.obj, Tag: e.tag}
	}
	return out
}

// ExitTo returns the entity reachable from room via the given direction tag.
func (w *World) ExitTo(room ID, dir string) (ID, bool) {
	return w.exits.get(room, dir)
}

// AddExit registers an exit edge from source via tag to obj, replacing any
// existing edge with the same tag (at most one edge per source/tag pair).
// Doors appear only here, never in the location relation.
func (w *World) AddExit(source ID, tag string, obj ID) {
	w.exits.add(source, obj, tag)
}

var oppositeDirection = map[string]string{
	"north": "south", "south": "north",
	"east": "west", "west": "east",
	"northeast": "southwest", "southwest": "northeast",
	"northwest": "southeast", "southeast": "northwest",
	"up": "down", "down": "up",
	"in": "out", "out": "in",
}

// Inverse returns the opposite of a direction tag, or "" if unknown.
func Inverse(dir string) string {
	return oppositeDirection[dir]
}

// ConnectRooms wires a two-way exit between a and b via dir/inverse(dir)
// unless oneWay is set, in which case only a->b is created.
func (w *World) ConnectRooms(a ID, dir string, b ID, oneWay bool) {
	w.AddExit(a, dir, b)
	if oneWay {
		return
	}
	if inv := Inverse(dir); inv != "" {
		w.AddExit(b, inv, a)
	}
}

// DoorOtherSideFrom returns the room on the other side of door from room,
// given the door appears in exactly two exits lists. The relation is an
// involution over those two endpoints.
func (w *World) DoorOtherSideFrom(door, room ID) (ID, bool) {
	sides := w.doorSides(door)
	if len(sides) != 2 {
		return "", false
	}
	switch room {
	case sides[0]:
		return sides[1], true
	case sides[1]:
		return sides[0], true
	default:
		return "", false
	}
}

func (w *World) doorSides(door ID) []ID {
	var sides []ID
	for room, list := range w.exits.edges {
		for _, e := range list {
			if e.obj == door {
				sides = append(sides, room)
				break
			}
		}
	}
	return sides
}
