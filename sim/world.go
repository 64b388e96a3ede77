// Package sim wires the action systems into a headless, fixed-order ecs
// pipeline driven one tick at a time.
package sim

import (
	"time"

	"github.com/automoto/doomerang-actions/components"
	cfg "github.com/automoto/doomerang-actions/config"
	"github.com/automoto/doomerang-actions/mutation"
	"github.com/automoto/doomerang-actions/shared/leveldata"
	"github.com/automoto/doomerang-actions/systems"
	"github.com/automoto/doomerang-actions/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type World struct {
	ecs   *ecs.ECS
	clock *donburi.Entry
	sink  *donburi.Entry
	space *donburi.Entry
	level *donburi.Entry
	bots  int64
}

// NewWorld builds a world with an empty arena of the configured size.
func NewWorld() *World {
	return newWorld("", nil)
}

// NewWorldWithLevel builds a world around a loaded arena.
func NewWorldWithLevel(name string, level *leveldata.CollisionData) *World {
	return newWorld(name, level)
}

func newWorld(name string, level *leveldata.CollisionData) *World {
	e := ecs.NewECS(donburi.NewWorld())

	// Bots write inputs before behavior reads them. Behavior requests are
	// applied before hit resolution reads the markers, and hit results are
	// applied before health and movement react to them.
	e.AddSystem(systems.UpdateBots)
	e.AddSystem(systems.UpdateCharacterBehavior)
	e.AddSystem(systems.ApplyMutations)
	e.AddSystem(systems.UpdateHitResolution)
	e.AddSystem(systems.ApplyMutations)
	e.AddSystem(systems.UpdateHealth)
	e.AddSystem(systems.UpdateMovement)

	w := &World{ecs: e}
	w.clock = factory.CreateClock(e)
	w.sink = factory.CreateSink(e)

	width, height := cfg.Sim.ArenaWidth, cfg.Sim.ArenaHeight
	if level != nil {
		width, height = level.MapWidth, level.MapHeight
	}
	w.space = factory.CreateSpace(e, width, height, cfg.Sim.SpaceCellSize, cfg.Sim.SpaceCellSize)
	if level != nil {
		w.level = factory.CreateLevel(e, name, level)
	}
	return w
}

// ECS exposes the underlying pipeline.
func (w *World) ECS() *ecs.ECS {
	return w.ecs
}

// Step advances the simulation by one tick of length dt.
func (w *World) Step(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	clock := components.Clock.Get(w.clock)
	clock.Dt = dt
	clock.Tick++
	clock.Elapsed += dt

	w.ecs.Update()
}

// Tick returns the number of ticks simulated.
func (w *World) Tick() uint64 {
	return components.Clock.Get(w.clock).Tick
}

// Spawn creates an idle combatant at x, y.
func (w *World) Spawn(x, y float64, extra ...donburi.IComponentType) *donburi.Entry {
	return factory.CreateCombatant(w.ecs, x, y, extra...)
}

// SpawnAtNextPoint creates a combatant at the arena's next spawn point.
func (w *World) SpawnAtNextPoint(extra ...donburi.IComponentType) *donburi.Entry {
	x, y := float64(cfg.Sim.ArenaWidth)/2, float64(cfg.Sim.ArenaHeight)/2
	if w.level != nil {
		x, y = components.Level.Get(w.level).TakeSpawn()
	}
	return w.Spawn(x, y, extra...)
}

// SpawnBot creates a bot-controlled combatant at the arena's next spawn
// point. Bots are seeded from the bot config in spawn order.
func (w *World) SpawnBot(difficulty cfg.BotDifficulty, combo *cfg.ComboSpec, extra ...donburi.IComponentType) *donburi.Entry {
	x, y := float64(cfg.Sim.ArenaWidth)/2, float64(cfg.Sim.ArenaHeight)/2
	if w.level != nil {
		x, y = components.Level.Get(w.level).TakeSpawn()
	}
	seed := cfg.Bot.Seed + w.bots
	w.bots++
	return factory.CreateBot(w.ecs, x, y, difficulty, combo, seed, extra...)
}

// Despawn removes an entity and its collision body.
func (w *World) Despawn(e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil {
			components.Space.Get(w.space).Remove(obj.Object)
		}
	}
	w.ecs.World.Remove(e.Entity())
}

// MutationStats returns the sink's running totals.
func (w *World) MutationStats() mutation.Stats {
	return mutation.Component.Get(w.sink).Totals()
}
