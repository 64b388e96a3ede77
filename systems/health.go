package systems

import (
	"github.com/automoto/doomerang-actions/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHealth keeps vitals within range and defeats combatants whose health
// reached zero, interrupting whatever they were doing.
func UpdateHealth(ecs *ecs.ECS) {
	var tick uint64
	if clock, ok := components.Clock.First(ecs.World); ok {
		tick = components.Clock.Get(clock).Tick
	}

	var fallen []*donburi.Entry
	for e := range components.Health.Iter(ecs.World) {
		hp := components.Health.Get(e)
		if hp.Current < 0 {
			hp.Current = 0
		}
		if hp.Current > hp.Max {
			hp.Current = hp.Max
		}

		if e.HasComponent(components.Energy) {
			energy := components.Energy.Get(e)
			if energy.Current < 0 {
				energy.Current = 0
			}
			if energy.Current > energy.Max {
				energy.Current = energy.Max
			}
		}

		if hp.Current == 0 && !e.HasComponent(components.Defeated) {
			fallen = append(fallen, e)
		}
	}

	// Adding components changes archetypes, so it waits until iteration is done.
	for _, e := range fallen {
		donburi.Add(e, components.Defeated, &components.DefeatedData{Tick: tick})
		Interrupt(ecs.World, e)
		if e.HasComponent(components.Movement) {
			components.Movement.Get(e).Intent.X = 0
			components.Movement.Get(e).Intent.Y = 0
		}
	}
}
