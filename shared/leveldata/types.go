// Package leveldata provides TMX level parsing shared between observers and
// the server. It has no dependencies on donburi or resolv, pure data only.
//
// All values are in world units with y pointing up. TMX pixel coordinates are
// divided by PixelsPerUnit and flipped against the map height.
package leveldata

import "github.com/automoto/stomp-mp/shared/netconfig"

// PixelsPerUnit converts TMX pixels to world units.
const PixelsPerUnit = 32.0

// CollisionData holds all simulation-relevant data parsed from a TMX level file.
type CollisionData struct {
	SolidRects   []SolidRect
	SpawnPoints  []SpawnPoint
	EntitySpawns []EntitySpawn
	Width        float64
	Height       float64
	TileSize     float64
	Loops        bool // level wraps horizontally
}

// SolidRect represents a solid collision tile. X, Y is the bottom-left corner.
type SolidRect struct {
	X, Y, W, H float64
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// EntitySpawn places a killable entity. Respawning entities start despawned
// and come back on a timer after each death.
type EntitySpawn struct {
	X, Y       float64
	Kind       netconfig.EntityKind
	Respawning bool
}
