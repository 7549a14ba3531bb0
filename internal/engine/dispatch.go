package engine

import "fmt"

// NoApplicableMethodError is raised when a generic operation's method chain
// is scanned from tail to head without any guard passing.
type NoApplicableMethodError struct {
	Operation string
	Args      []ID
}

func (e *NoApplicableMethodError) Error() string {
	return fmt.Sprintf("no applicable method for %s%v", e.Operation, e.Args)
}

// Guard decides whether a method applies to a given call. A nil guard always
// applies.
type Guard func(args []ID) bool

// Next is the continuation a handler calls to resume the scan at the method
// just before the one currently running, the way a `next()` call would in an
// open method chain. Calling it beyond the head of the chain raises
// NoApplicableMethodError.
type Next func(args []ID) (Value, error)

// Handler is the body of a method. It receives the call arguments and a
// Next continuation for deferring to earlier-registered methods.
type Handler func(args []ID, next Next) (Value, error)

type method struct {
	name    string
	guard   Guard
	handler Handler
}

// GenericOperation is an ordered list of methods. Dispatch scans from the
// tail toward the head; order of registration is order of dispatch, and
// authors rely on that being deliberate rather than incidental.
type GenericOperation struct {
	name    string
	methods []*method
}

// NewGenericOperation creates an empty operation under the given name, used
// only for diagnostics (NoApplicableMethodError, logging).
func NewGenericOperation(name string) *GenericOperation {
	return &GenericOperation{name: name}
}

// Append adds a method to the tail of the chain: it is tried first.
func (g *GenericOperation) Append(name string, guard Guard, handler Handler) {
	g.methods = append(g.methods, &method{name: name, guard: guard, handler: handler})
}

// Prepend adds a method to the head of the chain: the default fallback,
// tried only if nothing later in the chain applies.
func (g *GenericOperation) Prepend(name string, guard Guard, handler Handler) {
	g.methods = append([]*method{{name: name, guard: guard, handler: handler}}, g.methods...)
}

// InsertBefore registers a method immediately before (earlier in dispatch
// order than) the named method. If the name is not found it is appended.
func (g *GenericOperation) InsertBefore(before, name string, guard Guard, handler Handler) {
	idx := g.indexOf(before)
	m := &method{name: name, guard: guard, handler: handler}
	if idx < 0 {
		g.methods = append(g.methods, m)
		return
	}
	g.methods = append(g.methods[:idx], append([]*method{m}, g.methods[idx:]...)...)
}

// InsertAfter registers a method immediately after (later in dispatch order
// than, i.e. tried before) the named method. If the name is not found it is
// prepended (the safest default position: it still runs, just last).
func (g *GenericOperation) InsertAfter(after, name string, guard Guard, handler Handler) {
	idx := g.indexOf(after)
	m := &method{name: name, guard: guard, handler: handler}
	if idx < 0 {
		g.methods = append([]*method{m}, g.methods...)
		return
	}
	g.methods = append(g.methods[:idx+1], append([]*method{m}, g.methods[idx+1:]...)...)
}

// RemoveByName deletes the first method with the given name, if any.
func (g *GenericOperation) RemoveByName(name string) {
	idx := g.indexOf(name)
	if idx < 0 {
		return
	}
	g.methods = append(g.methods[:idx], g.methods[idx+1:]...)
}

func (g *GenericOperation) indexOf(name string) int {
	for i, m := range g.methods {
		if m.name == name {
			return i
		}
	}
	return -1
}

// Call scans methods from the tail toward the head, running the first whose
// guard passes (a nil guard always passes). Inside a handler, calling next
// resumes the scan at the position just before the current method.
func (g *GenericOperation) Call(args []ID) (Value, error) {
	return g.callFrom(len(g.methods)-1, args)
}

func (g *GenericOperation) callFrom(start int, args []ID) (Value, error) {
	for i := start; i >= 0; i-- {
		m := g.methods[i]
		if m.guard != nil && !m.guard(args) {
			continue
		}
		pos := i
		next := func(nextArgs []ID) (Value, error) {
			return g.callFrom(pos-1, nextArgs)
		}
		return m.handler(args, next)
	}
	return Nil(), &NoApplicableMethodError{Operation: g.name, Args: args}
}

// Applicable reports whether at least one method would fire for args,
// without invoking any handler. Useful for predicate-style generics.
func (g *GenericOperation) Applicable(args []ID) bool {
	for i := len(g.methods) - 1; i >= 0; i-- {
		if g.methods[i].guard == nil || g.methods[i].guard(args) {
			return true
		}
	}
	return false
}

// Methods returns the method names in dispatch order (tail to head, i.e.
// the order they are tried in).
func (g *GenericOperation) Methods() []string {
	names := make([]string, 0, len(g.methods))
	for i := len(g.methods) - 1; i >= 0; i-- {
		names = append(names, g.methods[i].name)
	}
	return names
}
