package factory

import (
	"github.com/automoto/doomerang-actions/archetypes"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Clock.Spawn(ecs)
}

func CreateSink(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Sink.Spawn(ecs)
}
