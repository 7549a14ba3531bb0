// Command textadv is the runnable telnet demo: it loads a content area (or
// falls back to a small built-in one), wires the grammar and verb registry
// from internal/parser, internal/action, and verbs, and serves one player
// at a time over telnet, the way the teacher's main.go served its MUD.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"time"

	"textadv/internal/action"
	"textadv/internal/describe"
	"textadv/internal/engine"
	"textadv/internal/parser"
	"textadv/verbs"
)

const (
	acceptBackoffStart = 50 * time.Millisecond
	acceptBackoffMax   = time.Second
	playerID           = engine.ID("player")
)

func main() {
	addr := flag.String("addr", ":4000", "telnet listen address")
	contentDir := flag.String("content", "content", "directory of area JSON files to load")
	savePath := flag.String("save", "textadv.save.json", "world save file path (empty disables save/restore)")
	profilePath := flag.String("profile", "", "optional bcrypt-gated save-profile file (empty disables the password gate)")
	setPassword := flag.String("setpassword", "", "set the save slot's password on the -profile file, then exit")
	flag.Parse()

	if *setPassword != "" {
		gate := newProfileGate(*profilePath)
		if err := gate.setPassword(*setPassword); err != nil {
			log.Fatalf("set password: %v", err)
		}
		fmt.Printf("password set on %s\n", *profilePath)
		return
	}

	w := engine.NewWorld()
	describe.RegisterDefaults(w)
	if err := loadContent(w, *contentDir); err != nil {
		log.Fatalf("load content: %v", err)
	}
	// Convention: whichever content declares the player sees the world
	// through the entity id "player" (buildDemoArea does this directly;
	// an area directory must declare a person with that id).
	w.SetPlayer(playerID)
	if *savePath != "" {
		if err := w.LoadState(*savePath); err != nil && !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "restore save: %v\n", err)
		}
	}

	g := parser.NewGrammar(w)
	reg := action.NewRegistry()
	verbs.Register(g, reg)

	gate := newProfileGate(*profilePath)

	ln, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	fmt.Printf("textadv listening on %s (telnet ready)\n", ln.Addr())

	// Connections are served one at a time: the spec's engine is
	// single-actor (§1 names multiplayer a non-goal), so there is exactly
	// one narrative viewpoint to hand the socket to.
	acceptConnections(ln, func(conn net.Conn) {
		runSession(conn, w, g, reg, playerID, gate, *savePath)
	})
}

// loadContent tries dir as an area directory first; if it doesn't exist,
// it falls back to a tiny built-in demo so the binary is playable with no
// setup.
func loadContent(w *engine.World, dir string) error {
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return engine.LoadArea(w, dir)
	}
	buildDemoArea(w)
	return nil
}

// buildDemoArea declares the same small Lobby/Hall/ball/box layout used
// throughout the engine's own tests, so a fresh checkout has something to
// explore immediately.
func buildDemoArea(w *engine.World) {
	w.MakeRoom("lobby", "Lobby", "A bare entrance hall. A cardboard box sits in the corner.")
	w.Property("makes_light").Set([]engine.ID{"lobby"}, engine.Bool(true))
	w.MakeRoom("hall", "Hall", "A long hall leading deeper into the building.")
	w.Property("makes_light").Set([]engine.ID{"hall"}, engine.Bool(true))
	w.MakeDoor("door", "plain door", "lobby", "north", "hall", "south", false, false)
	w.Property("words").Set([]engine.ID{"door"}, engine.List(engine.Str("plain"), engine.Str("@door")))

	w.MakeThing("ball", "red ball", "lobby", engine.ContainedBy)
	w.Property("words").Set([]engine.ID{"ball"}, engine.List(engine.Str("red"), engine.Str("@ball")))
	w.MakeContainer("box", "cardboard box", "lobby", engine.ContainedBy, false, false)
	w.Property("words").Set([]engine.ID{"box"}, engine.List(engine.Str("cardboard"), engine.Str("@box")))

	w.MakePerson(playerID, "you", "lobby")
}

func acceptConnections(ln net.Listener, handle func(net.Conn)) {
	backoff := acceptBackoffStart
	for {
		conn, err := ln.Accept()
		if err != nil {
			fmt.Fprintf(os.Stderr, "accept: %v; retrying in %s\n", err, backoff)
			time.Sleep(backoff)
			backoff *= 2
			if backoff > acceptBackoffMax {
				backoff = acceptBackoffMax
			}
			continue
		}
		backoff = acceptBackoffStart
		handle(conn)
	}
}
