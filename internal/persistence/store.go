// Package persistence saves and loads per-player snapshots. Two
// backends implement the same Store contract: a flat-file JSON store
// (the default) and a PostgreSQL store selected by connection string.
package persistence

import (
	"errors"
	"strings"

	"github.com/Thwargle/BrowseronsCall-sub000/internal/state"
)

// ErrNotFound reports that a player has no saved snapshot yet.
var ErrNotFound = errors.New("persistence: player not found")

// Store is the persistence contract. SavePlayer fully overwrites the
// prior snapshot and is safe to call on every equipment mutation.
type Store interface {
	SavePlayer(name string, snapshot *state.PlayerSnapshot) error
	LoadPlayer(name string) (*state.PlayerSnapshot, error)
	Close() error
}

// SanitizeName maps a display name onto a filesystem- and key-safe
// identifier. Distinct display names can collide after sanitizing;
// the session layer's live-name uniqueness check keeps that harmless.
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "player"
	}
	return b.String()
}
