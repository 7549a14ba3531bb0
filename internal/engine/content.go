package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// kindDef declares a new kind id as a child of an existing one.
type kindDef struct {
	ID     string `json:"id"`
	Parent string `json:"parent"`
}

// roomDef declares a room and its exits, read from a content file the way
// the teacher's areaFile/Room types were.
type roomDef struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	MakesLight  bool              `json:"makes_light"`
	Exits       map[string]string `json:"exits"`
}

// thingDef declares any non-room entity: a thing, container, supporter,
// door, person, or backdrop.
type thingDef struct {
	ID          string   `json:"id"`
	Kind        string   `json:"kind"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Tag         string   `json:"tag"`
	Open        bool     `json:"open"`
	Locked      bool     `json:"locked"`
	Opaque      bool     `json:"opaque"`
	Transparent bool     `json:"transparent"`
	MakesLight  bool     `json:"makes_light"`
	Words       []string `json:"words"`
	Script      string   `json:"description_script"`
	BackdropIn  []string `json:"backdrop_rooms"`
}

type areaFile struct {
	Name   string     `json:"name"`
	Kinds  []kindDef  `json:"kinds"`
	Rooms  []roomDef  `json:"rooms"`
	Things []thingDef `json:"things"`
}

// LoadArea reads every *.json file in dir (sorted for determinism, matching
// the teacher's loadRooms) and declares the kinds, rooms, and things it
// describes into w.
func LoadArea(w *World, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read area dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("read area %s: %w", name, err)
		}
		var file areaFile
		if err := json.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("decode area %s: %w", name, err)
		}
		if err := applyArea(w, file); err != nil {
			return fmt.Errorf("apply area %s: %w", name, err)
		}
	}
	return nil
}

func applyArea(w *World, file areaFile) error {
	for _, k := range file.Kinds {
		w.DeclareKind(ID(k.ID), ID(k.Parent))
	}
	for _, r := range file.Rooms {
		if r.ID == "" {
			return fmt.Errorf("room without id in area %s", file.Name)
		}
		w.MakeRoom(ID(r.ID), r.Name, r.Description)
		if r.MakesLight {
			w.Property("makes_light").Set([]ID{ID(r.ID)}, Bool(true))
		}
	}
	for _, r := range file.Rooms {
		for dir, dest := range r.Exits {
			w.AddExit(ID(r.ID), dir, ID(dest))
		}
	}
	for _, t := range file.Things {
		id := ID(t.ID)
		if id == "" {
			// Anonymous dressing (a handful of identical rocks, say) gets a
			// minted id rather than forcing the author to invent unique ones.
			kind := t.Kind
			if kind == "" {
				kind = "thing"
			}
			id = NewID(kind)
		}
		switch t.Kind {
		case "container":
			w.MakeContainer(id, t.Name, ID(t.Location), LocationTag(defaultTag(t.Tag, ContainedBy)), t.Open, t.Transparent)
		case "supporter":
			w.MakeSupporter(id, t.Name, ID(t.Location), LocationTag(defaultTag(t.Tag, SupportedBy)))
		case "door":
			// doors are wired via exits, not location; authors declare the
			// two exits themselves in the rooms' exits maps, pointing at the
			// door id, then describe it here.
			w.NewEntity(id, KindDoor)
			w.Property("name").Set([]ID{id}, Str(t.Name))
			w.Property("open").Set([]ID{id}, Bool(t.Open))
			w.Property("locked").Set([]ID{id}, Bool(t.Locked))
		case "person":
			w.MakePerson(id, t.Name, ID(t.Location))
		case "backdrop":
			rooms := make([]ID, len(t.BackdropIn))
			for i, r := range t.BackdropIn {
				rooms[i] = ID(r)
			}
			w.MakeBackdrop(id, t.Name, rooms...)
		default:
			w.MakeThing(id, t.Name, ID(t.Location), LocationTag(defaultTag(t.Tag, ContainedBy)))
		}
		if t.Description != "" {
			w.Property("description").Set([]ID{id}, Str(t.Description))
		}
		if t.Script != "" {
			w.Property("description").Set([]ID{id}, w.ScriptedText(t.Script))
		}
		if t.Opaque {
			w.Property("opaque").Set([]ID{id}, Bool(true))
		}
		if t.MakesLight {
			w.Property("makes_light").Set([]ID{id}, Bool(true))
		}
		if len(t.Words) > 0 {
			vals := make([]Value, len(t.Words))
			for i, word := range t.Words {
				vals[i] = Str(word)
			}
			w.Property("words").Set([]ID{id}, List(vals...))
		}
	}
	return nil
}

func defaultTag(tag string, fallback LocationTag) LocationTag {
	if tag == "" {
		return fallback
	}
	return LocationTag(tag)
}

// --- optional save / restore --------------------------------------------
//
// Not required by the core (no wire format is mandated), but the data model
// is a pure tree of primitives and strings, so a trivial serializer
// suffices. Written with the teacher's atomic-temp-file-then-rename pattern
// (AccountManager.saveLocked).

type stateSnapshot struct {
	Actor      string                       `json:"actor"`
	Player     string                       `json:"player"`
	KindOf     map[string]string            `json:"kind_of"`
	Location   map[string]locationSnapshot  `json:"location"`
	Exits      map[string][]exitSnapshot    `json:"exits"`
	Properties map[string]map[string]any    `json:"properties"`
	Globals    map[string]any               `json:"globals"`
}

type locationSnapshot struct {
	Target string `json:"target"`
	Tag    string `json:"tag"`
}

type exitSnapshot struct {
	Obj string `json:"obj"`
	Tag string `json:"tag"`
}

func scalarOf(v Value) (any, bool) {
	switch v.kind {
	case valNil:
		return nil, true
	case valBool:
		return v.b, true
	case valInt:
		return v.i, true
	case valString:
		return v.s, true
	case valID:
		return string(v.id), true
	default:
		return nil, false // lists, maps, and closures are not persisted
	}
}

// SaveState writes a JSON snapshot of the world's relations, kind edges,
// scalar property values (nil, bool, int, string, id), and globals to path;
// list, map and computed values are not saved.
func (w *World) SaveState(path string) error {
	snap := stateSnapshot{
		Actor:      string(w.actor),
		Player:     string(w.player),
		KindOf:     make(map[string]string, len(w.kindOf)),
		Location:   make(map[string]locationSnapshot),
		Exits:      make(map[string][]exitSnapshot),
		Properties: make(map[string]map[string]any),
		Globals:    make(map[string]any),
	}
	for id, kind := range w.kindOf {
		snap.KindOf[string(id)] = string(kind)
	}
	for id := range w.location.forward {
		target, tag, _ := w.LocationOf(id)
		snap.Location[string(id)] = locationSnapshot{Target: string(target), Tag: string(tag)}
	}
	for room, edges := range w.exits.edges {
		list := make([]exitSnapshot, len(edges))
		for i, e := range edges {
			list[i] = exitSnapshot{Obj: string(e.obj), Tag: e.tag}
		}
		snap.Exits[string(room)] = list
	}
	for name, prop := range w.properties {
		entries := make(map[string]any)
		for key, v := range prop.data {
			if scalar, ok := scalarOf(v); ok {
				entries[key] = scalar
			}
		}
		if len(entries) > 0 {
			snap.Properties[name] = entries
		}
	}
	for name, v := range w.globals {
		if scalar, ok := scalarOf(v); ok {
			snap.Globals[name] = scalar
		}
	}
	return writeJSONAtomic(path, snap)
}

func writeJSONAtomic(path string, v any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create save directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "state-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp save file: %w", err)
	}
	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write save file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp save file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace save file: %w", err)
	}
	return nil
}

// LoadState restores a snapshot written by SaveState into w. The kind tree
// and built-in default rules must already be present (NewWorld followed by
// any DeclareKind calls the content needs) before calling LoadState.
func (w *World) LoadState(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read save file: %w", err)
	}
	var snap stateSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decode save file: %w", err)
	}
	w.actor = ID(snap.Actor)
	w.player = ID(snap.Player)
	for id, kind := range snap.KindOf {
		w.kindOf[ID(id)] = ID(kind)
	}
	w.location = newManyToOne()
	for id, loc := range snap.Location {
		w.location.relate(ID(id), ID(loc.Target), LocationTag(loc.Tag))
	}
	w.exits = newManyToMany()
	for room, edges := range snap.Exits {
		for _, e := range edges {
			w.exits.add(ID(room), ID(e.Obj), e.Tag)
		}
	}
	for name, entries := range snap.Properties {
		prop := w.Property(name)
		for key, raw := range entries {
			prop.data[key] = valueFromAny(raw)
		}
	}
	for name, raw := range snap.Globals {
		w.globals[name] = valueFromAny(raw)
	}
	return nil
}

func valueFromAny(raw any) Value {
	switch t := raw.(type) {
	case nil:
		return Nil()
	case bool:
		return Bool(t)
	case float64:
		return Int(int(t))
	case string:
		return Str(t)
	default:
		return Nil()
	}
}
