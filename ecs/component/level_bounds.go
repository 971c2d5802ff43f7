package component

// LevelBounds stores the world-space extent of the current level. Bodies
// falling below KillY are respawned.
type LevelBounds struct {
	MinX  float64
	MinY  float64
	MaxX  float64
	MaxY  float64
	KillY float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
