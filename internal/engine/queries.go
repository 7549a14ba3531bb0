package engine

// isOpenable reports whether an entity has a door/lid that can be open or
// closed. Containers are openable unless explicitly marked otherwise (a
// sealed glass jar, say); doors are always openable.
func (w *World) isOpenable(o ID) bool {
	if w.Property("openable").HasExplicit([]ID{o}) {
		return w.Property("openable").GetWorld(w, []ID{o}).Bool()
	}
	return w.IsA(o, KindContainer) || w.IsA(o, KindDoor)
}

func (w *World) blocksContainment(loc ID) bool {
	if !w.IsA(loc, KindContainer) {
		return false
	}
	if w.IsOpaque(loc) {
		return true
	}
	if w.isOpenable(loc) && !w.IsOpen(loc) {
		return true
	}
	return false
}

func (w *World) blocksVisibility(loc ID) bool {
	if !w.IsA(loc, KindContainer) {
		return false
	}
	return w.IsOpaque(loc)
}

// EffectiveContainer returns the nearest enclosing location from which the
// contents of x are reachable. Rooms are their own effective container. An
// opaque or closed-and-openable container terminates the walk at itself.
func (w *World) EffectiveContainer(x ID) ID {
	if w.IsA(x, KindRoom) {
		return x
	}
	loc, _, ok := w.LocationOf(x)
	if !ok {
		return x
	}
	if w.IsA(loc, KindRoom) {
		return loc
	}
	if w.blocksContainment(loc) {
		return loc
	}
	return w.EffectiveContainer(loc)
}

// VisibleContainer is the same upward walk as EffectiveContainer but only
// opaque containers terminate it; closed-but-transparent containers (a
// shut glass box) are passed through. Rooms terminate.
func (w *World) VisibleContainer(x ID) ID {
	if w.IsA(x, KindRoom) {
		return x
	}
	loc, _, ok := w.LocationOf(x)
	if !ok {
		return x
	}
	if w.IsA(loc, KindRoom) {
		return loc
	}
	if w.blocksVisibility(loc) {
		return loc
	}
	return w.VisibleContainer(loc)
}

func (w *World) contentsByTag(x ID, tags ...LocationTag) []ID {
	want := make(map[LocationTag]bool, len(tags))
	for _, t := range tags {
		want[t] = true
	}
	var out []ID
	for _, o := range w.RelatedTo(x) {
		_, tag, ok := w.LocationOf(o)
		if ok && want[tag] {
			out = append(out, o)
		}
	}
	return out
}

// ContainsLight reports whether x contains a light source. Rooms contain
// light if they make light themselves or any immediate content contributes
// light; containers/supporters if any content contributes light; persons if
// they carry (hold or wear) a contributor.
func (w *World) ContainsLight(x ID) bool {
	switch {
	case w.IsA(x, KindRoom):
		if w.MakesLight(x) {
			return true
		}
		for _, o := range w.RelatedTo(x) {
			if w.ContributesLight(o) {
				return true
			}
		}
		return false
	case w.IsA(x, KindContainer), w.IsA(x, KindSupporter):
		for _, o := range w.RelatedTo(x) {
			if w.ContributesLight(o) {
				return true
			}
		}
		return false
	case w.IsA(x, KindPerson):
		for _, o := range w.contentsByTag(x, OwnedBy, WornBy) {
			if w.ContributesLight(o) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// ContributesLight reports whether x itself contributes light to its
// surroundings: it makes light, is part of something that contributes, is
// a person carrying or wearing a light source, or is a non-opaque container
// / a supporter whose contents contain light (a supporter's top is always
// visible, so no opacity test applies to it).
func (w *World) ContributesLight(x ID) bool {
	if w.MakesLight(x) {
		return true
	}
	if w.IsA(x, KindPerson) && w.ContainsLight(x) {
		return true
	}
	if loc, tag, ok := w.LocationOf(x); ok && tag == PartOf {
		if w.ContributesLight(loc) {
			return true
		}
	}
	if w.IsA(x, KindContainer) && !w.IsOpaque(x) && w.ContainsLight(x) {
		return true
	}
	if w.IsA(x, KindSupporter) && w.ContainsLight(x) {
		return true
	}
	return false
}

// VisibleTo reports whether x is visible to actor.
func (w *World) VisibleTo(x, actor ID) bool {
	if loc, tag, ok := w.LocationOf(x); ok && loc == actor && (tag == OwnedBy || tag == WornBy) {
		return true
	}
	vc := w.VisibleContainer(x)
	if vc == w.VisibleContainer(actor) && w.ContainsLight(vc) {
		return true
	}
	if loc, tag, ok := w.LocationOf(x); ok && tag == PartOf {
		if w.VisibleTo(loc, actor) {
			return true
		}
	}
	if w.IsA(x, KindDoor) {
		actorVC := w.VisibleContainer(actor)
		if w.IsA(actorVC, KindRoom) {
			if _, ok := w.doorInRoom(actorVC, x); ok {
				return true
			}
		}
	}
	return false
}

func (w *World) doorInRoom(room, door ID) (ID, bool) {
	for _, e := range w.exits.list(room) {
		if e.obj == door {
			return e.obj, true
		}
	}
	return "", false
}

// accessibleChain walks up from actor's immediate location, stopping after
// (and including) the first closed openable container, so an actor shut
// inside a box can still reach the box to open it but nothing beyond it.
func (w *World) accessibleChain(actor ID) []ID {
	var chain []ID
	cur := actor
	for {
		loc, _, ok := w.LocationOf(cur)
		if !ok {
			break
		}
		chain = append(chain, loc)
		if w.IsA(loc, KindContainer) && w.isOpenable(loc) && !w.IsOpen(loc) {
			break
		}
		if w.IsA(loc, KindRoom) {
			break
		}
		cur = loc
	}
	return chain
}

// AccessibleTo reports whether x can be physically interacted with by
// actor. Accessible implies visible.
func (w *World) AccessibleTo(x, actor ID) bool {
	if loc, tag, ok := w.LocationOf(x); ok && loc == actor && (tag == OwnedBy || tag == WornBy) {
		return true
	}
	if ec := w.EffectiveContainer(x); ec == w.EffectiveContainer(actor) && w.ContainsLight(ec) {
		return true
	}
	if loc, tag, ok := w.LocationOf(x); ok && tag == PartOf {
		if w.AccessibleTo(loc, actor) {
			return true
		}
	}
	for _, node := range w.accessibleChain(actor) {
		if node == x {
			return true
		}
	}
	if w.IsA(x, KindDoor) {
		ec := w.EffectiveContainer(actor)
		if w.IsA(ec, KindRoom) {
			if _, ok := w.doorInRoom(ec, x); ok {
				return true
			}
		}
	}
	return false
}
