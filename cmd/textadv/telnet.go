package main

import (
	"bufio"
	"bytes"
	"net"
	"strings"
	"sync"

	"golang.org/x/text/encoding/charmap"
)

// Telnet protocol bytes, carried over from the teacher's telnet.go constant
// tables (internal/game/telnet.go) — a single-session demo still has to
// speak the same wire protocol a real client expects.
const (
	telnetIAC  byte = 255
	telnetDONT byte = 254
	telnetDO   byte = 253
	telnetWONT byte = 252
	telnetWILL byte = 251
	telnetSB   byte = 250
	telnetSE   byte = 240
	telnetNOP  byte = 241
	telnetDM   byte = 242
	telnetBRK  byte = 243
	telnetIP   byte = 244
	telnetAO   byte = 245
	telnetAYT  byte = 246
	telnetEC   byte = 247
	telnetEL   byte = 248
	telnetGA   byte = 249
)

const (
	telnetOptEcho       byte = 1
	telnetOptSuppressGA byte = 3
	telnetOptLineMode   byte = 34
	telnetOptCharset    byte = 42
)

const (
	charsetSubnegotiationRequest byte = 1
	charsetSubnegotiationAccept  byte = 2
	charsetSubnegotiationReject  byte = 3
)

// namedCharmaps is the legacy character-set table a client can request via
// charset subnegotiation: CP437 (the one legacy terminal encoding the
// teacher's client-profile table special-cased, for CYGWIN) and ISO-8859-1;
// everything else falls back to UTF-8, which needs no charmap.
var namedCharmaps = map[string]*charmap.Charmap{
	"CP437":      charmap.CodePage437,
	"IBM437":     charmap.CodePage437,
	"ISO-8859-1": charmap.ISO8859_1,
	"LATIN1":     charmap.ISO8859_1,
}

// TelnetSession wraps one accepted connection: IAC-aware line reading and
// writing, with an optional legacy charset translation negotiated via the
// charset option. Unlike the teacher's multi-session TelnetSession, this
// demo never tracks MTTS feature bits or terminal-type/window-size
// subnegotiation — a single local player has no other session to adapt to,
// so that machinery (grounded on handling many concurrent, unknown clients)
// does not carry over; see DESIGN.md.
type TelnetSession struct {
	conn    net.Conn
	reader  *bufio.Reader
	mu      sync.Mutex
	charMap *charmap.Charmap
}

func NewTelnetSession(conn net.Conn) *TelnetSession {
	s := &TelnetSession{conn: conn, reader: bufio.NewReader(conn)}
	s.performHandshake()
	return s
}

func (s *TelnetSession) performHandshake() {
	_ = s.writeCommand(telnetWILL, telnetOptSuppressGA)
	_ = s.writeCommand(telnetDO, telnetOptSuppressGA)
	_ = s.writeCommand(telnetWILL, telnetOptCharset)
	_ = s.writeCommand(telnetWONT, telnetOptEcho)
	_ = s.writeCommand(telnetDONT, telnetOptLineMode)
}

func (s *TelnetSession) writeCommand(cmd, opt byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.conn.Write([]byte{telnetIAC, cmd, opt})
	return err
}

// WriteString sends msg to the client, encoding it through the negotiated
// charmap if one is active, then translating bare LF to CRLF and doubling
// any literal IAC byte.
func (s *TelnetSession) WriteString(msg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data := []byte(msg)
	if s.charMap != nil {
		if encoded, err := s.charMap.NewEncoder().Bytes(data); err == nil {
			data = encoded
		}
	}
	data = translateForTelnet(data)
	_, err := s.conn.Write(data)
	return err
}

func translateForTelnet(data []byte) []byte {
	var buf bytes.Buffer
	var prev byte
	for _, b := range data {
		switch b {
		case '\n':
			if prev != '\r' {
				buf.WriteByte('\r')
			}
			buf.WriteByte('\n')
		case telnetIAC:
			buf.WriteByte(telnetIAC)
			buf.WriteByte(telnetIAC)
		default:
			buf.WriteByte(b)
		}
		prev = b
	}
	return buf.Bytes()
}

// ReadLine reads one newline-terminated line, stripping IAC sequences and
// honoring backspace/delete, decoding through the active charmap.
func (s *TelnetSession) ReadLine() (string, error) {
	var buf bytes.Buffer
	for {
		b, err := s.reader.ReadByte()
		if err != nil {
			return "", err
		}
		switch b {
		case '\r':
			if next, err := s.reader.Peek(1); err == nil && len(next) > 0 && next[0] == '\n' {
				_, _ = s.reader.ReadByte()
			}
			return s.decodeInput(buf.Bytes()), nil
		case '\n':
			return s.decodeInput(buf.Bytes()), nil
		case 0x08, 0x7f:
			if bs := buf.Bytes(); len(bs) > 0 {
				buf.Truncate(len(bs) - 1)
			}
		case 0x00:
			// ignore NULs, as telnet clients sometimes pad them
		case telnetIAC:
			if err := s.handleIAC(&buf); err != nil {
				return "", err
			}
		default:
			buf.WriteByte(b)
		}
	}
}

func (s *TelnetSession) decodeInput(data []byte) string {
	if s.charMap == nil || len(data) == 0 {
		return string(data)
	}
	out, err := s.charMap.NewDecoder().String(string(data))
	if err != nil {
		return string(data)
	}
	return out
}

func (s *TelnetSession) handleIAC(buf *bytes.Buffer) error {
	cmd, err := s.reader.ReadByte()
	if err != nil {
		return err
	}
	switch cmd {
	case telnetIAC:
		buf.WriteByte(telnetIAC)
	case telnetDO, telnetDONT, telnetWILL, telnetWONT:
		if _, err := s.reader.ReadByte(); err != nil {
			return err
		}
	case telnetSB:
		return s.handleSubnegotiation()
	case telnetNOP, telnetDM, telnetBRK, telnetIP, telnetAO, telnetAYT, telnetEC, telnetEL, telnetGA:
		// ignored control commands
	}
	return nil
}

// handleSubnegotiation only understands charset negotiation: it accepts the
// first charset in the client's proposal list that namedCharmaps knows,
// otherwise stays on UTF-8.
func (s *TelnetSession) handleSubnegotiation() error {
	var payload bytes.Buffer
	for {
		b, err := s.reader.ReadByte()
		if err != nil {
			return err
		}
		if b == telnetIAC {
			next, err := s.reader.ReadByte()
			if err != nil {
				return err
			}
			if next == telnetSE {
				break
			}
			payload.WriteByte(b)
			payload.WriteByte(next)
			continue
		}
		payload.WriteByte(b)
	}
	data := payload.Bytes()
	if len(data) < 2 || data[0] != telnetOptCharset || data[1] != charsetSubnegotiationRequest {
		return nil
	}
	for _, name := range strings.Split(string(data[2:]), ";") {
		name = strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(name, string(rune(1)))))
		if cm, ok := namedCharmaps[name]; ok {
			s.charMap = cm
			return nil
		}
	}
	return nil
}

func (s *TelnetSession) Close() error {
	return s.conn.Close()
}
