package engine

import "fmt"

// ID identifies an entity by a stable string. All state about an entity
// lives in property tables keyed by ID, never on the entity itself, so the
// world can be serialised as one blob.
type ID string

// Closure is the "Computed" shape of a dynamic property value: a function of
// the world and the tuple of ids the property was looked up with, producing
// a rendered value lazily. See script.go for the yaegi-backed variant authors
// can declare from source instead of Go code.
type Closure func(w *World, args []ID) Value

// Value is the small tagged union stored in property and relation maps:
// bool, int, string, id, list, map, or a dynamic closure. Keys throughout the
// engine are string ids; this type only describes values.
type Value struct {
	kind     valueKind
	b        bool
	i        int
	s        string
	id       ID
	list     []Value
	m        map[string]Value
	closure  Closure
}

type valueKind int

const (
	valNil valueKind = iota
	valBool
	valInt
	valString
	valID
	valList
	valMap
	valClosure
)

func Nil() Value                { return Value{kind: valNil} }
func Bool(b bool) Value         { return Value{kind: valBool, b: b} }
func Int(i int) Value           { return Value{kind: valInt, i: i} }
func Str(s string) Value        { return Value{kind: valString, s: s} }
func IDVal(id ID) Value         { return Value{kind: valID, id: id} }
func List(vs ...Value) Value    { return Value{kind: valList, list: vs} }
func Map(m map[string]Value) Value {
	return Value{kind: valMap, m: m}
}
func ComputedVal(fn Closure) Value { return Value{kind: valClosure, closure: fn} }

func (v Value) IsNil() bool { return v.kind == valNil }

func (v Value) Bool() bool {
	switch v.kind {
	case valBool:
		return v.b
	case valNil:
		return false
	default:
		return true
	}
}

func (v Value) Int() int {
	if v.kind == valInt {
		return v.i
	}
	return 0
}

func (v Value) Str() string {
	switch v.kind {
	case valString:
		return v.s
	case valID:
		return string(v.id)
	default:
		return ""
	}
}

func (v Value) ID() ID {
	if v.kind == valID {
		return v.id
	}
	if v.kind == valString {
		return ID(v.s)
	}
	return ""
}

func (v Value) List() []Value {
	if v.kind == valList {
		return v.list
	}
	return nil
}

func (v Value) Map() map[string]Value {
	if v.kind == valMap {
		return v.m
	}
	return nil
}

// Resolve evaluates a closure value against the world and arguments,
// returning non-closure values unchanged.
func (v Value) Resolve(w *World, args []ID) Value {
	if v.kind == valClosure && v.closure != nil {
		return v.closure(w, args)
	}
	return v
}

func (v Value) String() string {
	switch v.kind {
	case valNil:
		return ""
	case valBool:
		return fmt.Sprintf("%v", v.b)
	case valInt:
		return fmt.Sprintf("%d", v.i)
	case valString:
		return v.s
	case valID:
		return string(v.id)
	case valList:
		return fmt.Sprintf("%v", v.list)
	case valMap:
		return fmt.Sprintf("%v", v.m)
	case valClosure:
		return "<computed>"
	default:
		return ""
	}
}
