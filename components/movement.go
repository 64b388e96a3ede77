package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type MovementData struct {
	// Facing direction, unit length
	Orientation math.Vec2

	// Desired movement as a fraction of full speed, set by the current action
	Intent math.Vec2

	// Velocity from received hits, decays over time
	Knockback math.Vec2

	Speed float64
}

var Movement = donburi.NewComponentType[MovementData]()
