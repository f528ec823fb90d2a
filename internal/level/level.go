// Package level loads level documents: JSON files describing floors,
// vendors, spawners, and portals. A missing file falls back to the
// compiled-in default level so the server always has somewhere to put
// players.
package level

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Thwargle/BrowseronsCall-sub000/internal/state"
)

// Level is one playable map.
type Level struct {
	Name     string        `json:"name"`
	Width    float64       `json:"width"`
	GroundY  float64       `json:"groundY"`
	SpawnX   float64       `json:"spawnX"`
	SpawnY   float64       `json:"spawnY"`
	Floors   []Floor       `json:"floors"`
	Vendors  []VendorSpot  `json:"vendors"`
	Spawners []SpawnerSpot `json:"spawners"`
	Portals  []Portal      `json:"portals,omitempty"`
}

// Floor is a horizontal walkable segment.
type Floor struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Width float64 `json:"width"`
}

// VendorSpot places the level's merchant.
type VendorSpot struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SpawnerSpot configures one enemy spawner.
type SpawnerSpot struct {
	X              float64         `json:"x"`
	Y              float64         `json:"y"`
	EnemyType      state.EnemyType `json:"enemyType"`
	MinLevel       int             `json:"minLevel"`
	MaxLevel       int             `json:"maxLevel"`
	RespawnDelayMs int64           `json:"respawnDelayMs,omitempty"`
}

// Portal links to another level.
type Portal struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Target string  `json:"target"`
	Label  string  `json:"label,omitempty"`
}

// DefaultRespawnDelayMs is applied to spawners that omit a delay.
const DefaultRespawnDelayMs = 8000

// Default returns the built-in level used when no document matches.
func Default() *Level {
	return &Level{
		Name:    "holtburg",
		Width:   3200,
		GroundY: 600,
		SpawnX:  400,
		SpawnY:  560,
		Floors: []Floor{
			{X: 0, Y: 600, Width: 3200},
			{X: 900, Y: 460, Width: 260},
			{X: 1700, Y: 430, Width: 320},
		},
		Vendors: []VendorSpot{{X: 620, Y: 560}},
		Spawners: []SpawnerSpot{
			{X: 1100, Y: 560, EnemyType: state.EnemyTypeBasic, MinLevel: 1, MaxLevel: 3},
			{X: 1650, Y: 560, EnemyType: state.EnemyTypeBasic, MinLevel: 2, MaxLevel: 4},
			{X: 2100, Y: 560, EnemyType: state.EnemyTypeSpellcaster, MinLevel: 3, MaxLevel: 6},
			{X: 2600, Y: 560, EnemyType: state.EnemyTypeElite, MinLevel: 5, MaxLevel: 8},
			{X: 3000, Y: 560, EnemyType: state.EnemyTypeBoss, MinLevel: 10, MaxLevel: 12},
		},
		Portals: []Portal{{X: 3150, Y: 560, Target: "direlands", Label: "To the Direlands"}},
	}
}

// Normalize fills in omitted spawner delays and the level name.
func (l *Level) Normalize(name string) {
	if l.Name == "" {
		l.Name = name
	}
	for i := range l.Spawners {
		if l.Spawners[i].RespawnDelayMs <= 0 {
			l.Spawners[i].RespawnDelayMs = DefaultRespawnDelayMs
		}
	}
}

// Load reads a level document by name from the directory, falling back
// to the default level when the file does not exist.
func Load(dir, name string) (*Level, error) {
	clean := persistSafe(name)
	data, err := os.ReadFile(filepath.Join(dir, clean+".json"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			lvl := Default()
			lvl.Normalize(lvl.Name)
			return lvl, nil
		}
		return nil, fmt.Errorf("level: read %q: %w", name, err)
	}

	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("level: decode %q: %w", name, err)
	}
	lvl.Normalize(clean)
	return &lvl, nil
}

// List names every level document in the directory.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{Default().Name}, nil
		}
		return nil, fmt.Errorf("level: list %q: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	if len(names) == 0 {
		names = append(names, Default().Name)
	}
	return names, nil
}

func persistSafe(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return Default().Name
	}
	return b.String()
}
