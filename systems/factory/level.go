package factory

import (
	"github.com/automoto/doomerang-actions/archetypes"
	"github.com/automoto/doomerang-actions/components"
	"github.com/automoto/doomerang-actions/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel records the arena and builds walls for its solid tiles. The
// space must already exist.
func CreateLevel(ecs *ecs.ECS, name string, data *leveldata.CollisionData) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Name:   name,
		Width:  data.MapWidth,
		Height: data.MapHeight,
		Spawns: data.SpawnPoints,
	})

	for _, rect := range data.SolidRects {
		CreateWall(ecs, rect.X, rect.Y, rect.W, rect.H)
	}
	return level
}
