package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/bcrypt"
)

// saveProfile is the on-disk record for the optional password gate: one
// local save slot, not a multiplayer account system.
type saveProfile struct {
	PasswordHash string `json:"password_hash,omitempty"`
}

// profileGate guards the save slot the way the teacher's AccountManager
// guards a directory of accounts, narrowed to a single file and a single
// optional password rather than a registry of named accounts.
type profileGate struct {
	path string
}

func newProfileGate(path string) *profileGate {
	return &profileGate{path: path}
}

func (g *profileGate) load() (saveProfile, bool) {
	if g.path == "" {
		return saveProfile{}, false
	}
	data, err := os.ReadFile(g.path)
	if err != nil {
		return saveProfile{}, false
	}
	var p saveProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return saveProfile{}, false
	}
	return p, true
}

// setPassword hashes pass and persists it as the save slot's gate.
func (g *profileGate) setPassword(pass string) error {
	if g.path == "" {
		return fmt.Errorf("no profile path configured")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return writeProfileAtomic(g.path, saveProfile{PasswordHash: string(hashed)})
}

// authenticate reports whether pass unlocks the save slot. A gate with no
// configured path, or a profile file with no password hash yet, always
// authenticates — the gate only blocks once a password has been set.
func (g *profileGate) authenticate(pass string) bool {
	if g.path == "" {
		return true
	}
	p, ok := g.load()
	if !ok || p.PasswordHash == "" {
		return true
	}
	return bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(pass)) == nil
}

func writeProfileAtomic(path string, p saveProfile) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create profile directory: %w", err)
		}
	}
	tmp, err := os.CreateTemp(dir, "profile-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp profile file: %w", err)
	}
	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write profile file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp profile file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace profile file: %w", err)
	}
	return nil
}
