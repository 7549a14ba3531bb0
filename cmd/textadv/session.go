package main

import (
	"fmt"
	"net"
	"os"

	"textadv/internal/action"
	"textadv/internal/engine"
	"textadv/internal/parser"
	"textadv/internal/sink"
	"textadv/internal/turn"
)

// runSession drives one telnet connection end to end: an optional password
// gate, then one input line in, one turn's narration out, until the
// connection drops or the player quits.
func runSession(conn net.Conn, w *engine.World, g *parser.Grammar, reg *action.Registry, actor engine.ID, gate *profileGate, savePath string) {
	session := NewTelnetSession(conn)
	defer session.Close()

	if gate.path != "" && !authenticateSession(session, gate) {
		_ = session.WriteString("Wrong password. Goodbye.\r\n")
		return
	}

	term := sink.NewTerminal(80, false)
	loop := turn.NewLoop(w, g, reg, actor, term)
	flush(session, term)

	_ = session.WriteString("> ")
	for {
		line, err := session.ReadLine()
		if err != nil {
			return
		}
		if line == "quit" {
			saveOnQuit(w, savePath)
			_ = session.WriteString("Goodbye.\r\n")
			return
		}
		loop.Step(line)
		flush(session, term)
		_ = session.WriteString("> ")
	}
}

func flush(session *TelnetSession, term *sink.Terminal) {
	if text := term.String(); text != "" {
		_ = session.WriteString(text)
	}
	term.Reset()
}

func saveOnQuit(w *engine.World, savePath string) {
	if savePath == "" {
		return
	}
	if err := w.SaveState(savePath); err != nil {
		fmt.Fprintf(os.Stderr, "save on quit: %v\n", err)
	}
}

// authenticateSession prompts for the save slot's password once per
// connection. An unset gate (see profileGate.authenticate) accepts anything,
// so the prompt still appears but never actually blocks an unprotected demo.
func authenticateSession(session *TelnetSession, gate *profileGate) bool {
	_ = session.WriteString("Save password (blank if none set): ")
	pass, err := session.ReadLine()
	if err != nil {
		return false
	}
	return gate.authenticate(pass)
}
