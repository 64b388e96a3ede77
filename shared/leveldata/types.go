// Package leveldata provides TMX arena parsing for the simulation.
// It has no dependencies on donburi or resolv, pure data only.
package leveldata

// Tiled layer and object group names read by the loader.
const (
	SolidLayer = "wg-tiles"
	SpawnGroup = "PlayerSpawn"
)

// CollisionData holds all collision-relevant data parsed from a TMX level file.
type CollisionData struct {
	SolidRects  []SolidRect
	SpawnPoints []SpawnPoint
	MapWidth    int
	MapHeight   int
}

// SolidRect represents a solid collision tile.
type SolidRect struct {
	X, Y, W, H float64
}

// SpawnPoint represents a combatant spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}
