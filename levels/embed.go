package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed *.json
var LevelsFS embed.FS

// DefaultLevel is loaded when no level is named.
const DefaultLevel = "test_level.json"

// KillMargin is how far below the bottom row a body may fall before it is
// respawned.
const KillMargin = 4.0

var ErrInvalidLevel = errors.New("levels: invalid level")

// Level is a tile grid. Row 0 is the top row; one tile is one world unit.
type Level struct {
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Layers    [][]int     `json:"layers"`
	LayerMeta []LayerMeta `json:"layer_meta,omitempty"`
	Entities  []Entity    `json:"entities,omitempty"`
}

type LayerMeta struct {
	Physics bool   `json:"physics"`
	Color   string `json:"color,omitempty"`
}

type Entity struct {
	Type  string                 `json:"type"`
	X     int                    `json:"x"`
	Y     int                    `json:"y"`
	Props map[string]interface{} `json:"props,omitempty"`
}

// Load reads name from disk if it exists there, otherwise from the
// embedded levels.
func Load(name string) (*Level, error) {
	if name == "" {
		name = DefaultLevel
	}
	if data, err := os.ReadFile(name); err == nil {
		return Parse(data)
	}
	return LoadLevelFromFS(filepath.Base(name))
}

func LoadLevelFromFS(name string) (*Level, error) {
	data, err := LevelsFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidLevel, l.Width, l.Height)
	}
	for i, layer := range l.Layers {
		if len(layer) != l.Width*l.Height {
			return fmt.Errorf("%w: layer %d has %d tiles, want %d", ErrInvalidLevel, i, len(layer), l.Width*l.Height)
		}
	}
	return nil
}

// Physics reports whether tiles on layer i collide.
func (l *Level) Physics(i int) bool {
	return i >= 0 && i < len(l.LayerMeta) && l.LayerMeta[i].Physics
}

// LayerColor returns the display colour of layer i as "#rrggbb".
func (l *Level) LayerColor(i int) string {
	if i >= 0 && i < len(l.LayerMeta) && l.LayerMeta[i].Color != "" {
		return l.LayerMeta[i].Color
	}
	return "#3c78ff"
}
