package archetypes

import (
	"github.com/automoto/doomerang-actions/components"
	cfg "github.com/automoto/doomerang-actions/config"
	"github.com/automoto/doomerang-actions/mutation"
	"github.com/automoto/doomerang-actions/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Combatant = newArchetype(
		tags.Combatant,
		components.Character,
		components.Input,
		components.Object,
		components.Movement,
		components.Health,
		components.Energy,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Sink = newArchetype(
		mutation.Component,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
