package engine

// Predeclared kinds. Kinds form a tree via the kind_of relation; is_a walks
// it from an entity's own kind upward.
const (
	KindKind       ID = "kind"
	KindRoom       ID = "room"
	KindThing      ID = "thing"
	KindDoor       ID = "door"
	KindContainer  ID = "container"
	KindSupporter  ID = "supporter"
	KindPerson     ID = "person"
	KindBackdrop   ID = "backdrop"
	KindRegion     ID = "region"
)

type kindTable struct {
	parent map[ID]ID
}

func newKindTable() *kindTable {
	kt := &kindTable{parent: make(map[ID]ID)}
	kt.declare(KindKind, "")
	kt.declare(KindRoom, KindKind)
	kt.declare(KindThing, KindKind)
	kt.declare(KindDoor, KindThing)
	kt.declare(KindContainer, KindThing)
	kt.declare(KindSupporter, KindThing)
	kt.declare(KindPerson, KindThing)
	kt.declare(KindBackdrop, KindThing)
	kt.declare(KindRegion, KindKind)
	return kt
}

// Declare registers a new kind as a child of parent. Declaring a kind that
// already exists re-parents it.
func (kt *kindTable) declare(kind, parent ID) {
	kt.parent[kind] = parent
}

func (kt *kindTable) exists(kind ID) bool {
	_, ok := kt.parent[kind]
	return ok
}

func (kt *kindTable) isA(kind, ancestor ID) bool {
	for cur := kind; cur != ""; {
		if cur == ancestor {
			return true
		}
		parent, ok := kt.parent[cur]
		if !ok {
			return false
		}
		if parent == cur {
			return false
		}
		cur = parent
	}
	return false
}

// DeclareKind registers a new kind id as a child of parent kind. Panics if
// parent is not a known kind, matching the invariant that every non-kind
// entity has exactly one kind edge rooted in this tree.
func (w *World) DeclareKind(kind, parent ID) {
	if !w.kinds.exists(parent) {
		panic("engine: unknown parent kind " + string(parent))
	}
	w.kinds.declare(kind, parent)
}

// Kind returns the kind of entity o.
func (w *World) Kind(o ID) ID {
	return w.kindOf[o]
}

// AllEntities returns every entity id that has been given a kind, in no
// particular order. Used by the parser to build its initial noun-phrase
// universe ("anything").
func (w *World) AllEntities() []ID {
	out := make([]ID, 0, len(w.kindOf))
	for id := range w.kindOf {
		out = append(out, id)
	}
	return out
}

// IsA reports whether o's kind is k or a descendant of k in the kind tree.
func (w *World) IsA(o, k ID) bool {
	return w.kinds.isA(w.kindOf[o], k)
}

func (w *World) setKind(o, kind ID) {
	if !w.kinds.exists(kind) {
		panic("engine: unknown kind " + string(kind))
	}
	w.kindOf[o] = kind
}
