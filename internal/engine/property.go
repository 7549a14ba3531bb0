package engine

import "strings"

func tupleKey(args []ID) string {
	if len(args) == 1 {
		return string(args[0])
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = string(a)
	}
	return strings.Join(parts, "\x1f")
}

// Property is a named, arity-n partial function from tuples of ids to a
// Value, backed by a nested map and a dispatch list of rules. A lookup first
// walks the map; only when no explicit value is stored does it delegate to
// the method chain. This keeps the fast path O(arity) and means data
// overrides rule defaults.
type Property struct {
	Name string
	op   *GenericOperation
	data map[string]Value
}

// NewProperty creates a property with the given name.
func NewProperty(name string) *Property {
	return &Property{Name: name, op: NewGenericOperation(name), data: make(map[string]Value)}
}

// Get is the property's built-in on_call interceptor: try the map, and only
// on a miss fall back to the rule chain.
func (p *Property) Get(args []ID) Value {
	if v, ok := p.data[tupleKey(args)]; ok {
		return v.Resolve(nil, args)
	}
	v, err := p.op.Call(args)
	if err != nil {
		return Nil()
	}
	return v
}

// GetWorld is Get but resolves Computed closures against a world.
func (p *Property) GetWorld(w *World, args []ID) Value {
	if v, ok := p.data[tupleKey(args)]; ok {
		return v.Resolve(w, args)
	}
	v, err := p.op.Call(args)
	if err != nil {
		return Nil()
	}
	return v.Resolve(w, args)
}

// Set writes a value into the nested map for the given argument tuple.
func (p *Property) Set(args []ID, v Value) {
	p.data[tupleKey(args)] = v
}

// Unset removes any explicit map entry, causing future lookups to fall
// through to the rule chain.
func (p *Property) Unset(args []ID) {
	delete(p.data, tupleKey(args))
}

// HasExplicit reports whether an explicit map entry exists for args.
func (p *Property) HasExplicit(args []ID) bool {
	_, ok := p.data[tupleKey(args)]
	return ok
}

func (p *Property) Append(name string, guard Guard, handler Handler) {
	p.op.Append(name, guard, handler)
}

func (p *Property) Prepend(name string, guard Guard, handler Handler) {
	p.op.Prepend(name, guard, handler)
}

func (p *Property) InsertBefore(before, name string, guard Guard, handler Handler) {
	p.op.InsertBefore(before, name, guard, handler)
}

func (p *Property) InsertAfter(after, name string, guard Guard, handler Handler) {
	p.op.InsertAfter(after, name, guard, handler)
}

func (p *Property) RemoveByName(name string) {
	p.op.RemoveByName(name)
}

// Activity is like a Property but has no nested map: a pure dispatchable
// operation used for procedures (move_backdrops, describe_*).
type Activity struct {
	Name string
	op   *GenericOperation
}

func NewActivity(name string) *Activity {
	return &Activity{Name: name, op: NewGenericOperation(name)}
}

func (a *Activity) Call(args []ID) (Value, error) {
	return a.op.Call(args)
}

func (a *Activity) Append(name string, guard Guard, handler Handler) {
	a.op.Append(name, guard, handler)
}

func (a *Activity) Prepend(name string, guard Guard, handler Handler) {
	a.op.Prepend(name, guard, handler)
}

func (a *Activity) InsertBefore(before, name string, guard Guard, handler Handler) {
	a.op.InsertBefore(before, name, guard, handler)
}

func (a *Activity) InsertAfter(after, name string, guard Guard, handler Handler) {
	a.op.InsertAfter(after, name, guard, handler)
}

func (a *Activity) RemoveByName(name string) {
	a.op.RemoveByName(name)
}
