package engine

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// scriptEngine compiles author-supplied Go source into callable closures and
// caches the result by source hash, so the same dynamic-description snippet
// attached to many entities is only compiled once.
type scriptEngine struct {
	mu      sync.RWMutex
	entries map[string]*scriptEntry
}

type scriptEntry struct {
	fn  func(map[string]any) string
	err error
}

func newScriptEngine() *scriptEngine {
	return &scriptEngine{entries: make(map[string]*scriptEntry)}
}

func hashSource(src string) string {
	sum := sha1.Sum([]byte(src))
	return hex.EncodeToString(sum[:])
}

// compile evaluates source, which must declare a top-level function named
// Value with signature func(map[string]any) string, and returns it.
func (e *scriptEngine) compile(source string) (func(map[string]any) string, error) {
	key := hashSource(source)
	e.mu.RLock()
	if entry, ok := e.entries[key]; ok {
		e.mu.RUnlock()
		return entry.fn, entry.err
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	if entry, ok := e.entries[key]; ok {
		return entry.fn, entry.err
	}

	interpreter := interp.New(interp.Options{})
	if err := interpreter.Use(stdlib.Symbols); err != nil {
		e.entries[key] = &scriptEntry{err: err}
		return nil, err
	}
	if _, err := interpreter.Eval(source); err != nil {
		err = fmt.Errorf("compile: %w", err)
		e.entries[key] = &scriptEntry{err: err}
		return nil, err
	}
	value, err := interpreter.Eval("Value")
	if err != nil {
		err = fmt.Errorf("Value: %w", err)
		e.entries[key] = &scriptEntry{err: err}
		return nil, err
	}
	fn, ok := value.Interface().(func(map[string]any) string)
	if !ok {
		err = fmt.Errorf("Value has unexpected type %T", value.Interface())
		e.entries[key] = &scriptEntry{err: err}
		return nil, err
	}
	e.entries[key] = &scriptEntry{fn: fn}
	return fn, nil
}

// contextFor builds the payload a scripted property sees: read-only
// accessors into the world plus the argument tuple it was looked up with.
func (w *World) contextFor(args []ID) map[string]any {
	ctx := map[string]any{
		"name": func(id string) string { return w.Name(ID(id)) },
		"description": func(id string) string {
			return w.Description(ID(id))
		},
		"is_open":   func(id string) bool { return w.IsOpen(ID(id)) },
		"is_locked": func(id string) bool { return w.IsLocked(ID(id)) },
		"is_on":     func(id string) bool { return w.IsOn(ID(id)) },
		"is_a":      func(id, kind string) bool { return w.IsA(ID(id), ID(kind)) },
		"global":    func(key string) string { return w.Global(key).Str() },
		"actor":     string(w.Actor()),
		"player":    string(w.Player()),
	}
	argStrs := make([]string, len(args))
	for i, a := range args {
		argStrs[i] = string(a)
	}
	ctx["args"] = argStrs
	if len(args) > 0 {
		ctx["self"] = string(args[0])
	}
	return ctx
}

// ScriptedText compiles source on first use and returns a Computed Value
// that evaluates it against the world each time the owning property is
// read. Panics from the script are recovered and rendered as an inline
// diagnostic rather than crashing the turn loop.
func (w *World) ScriptedText(source string) Value {
	trimmed := strings.TrimSpace(source)
	return ComputedVal(func(world *World, args []ID) (result Value) {
		if world == nil {
			world = w
		}
		fn, err := world.scripts.compile(trimmed)
		if err != nil {
			return Str(fmt.Sprintf("[script error: %v]", err))
		}
		defer func() {
			if r := recover(); r != nil {
				result = Str(fmt.Sprintf("[script panic: %v]", r))
			}
		}()
		return Str(fn(world.contextFor(args)))
	})
}
