package systems

import (
	"math"

	"github.com/automoto/doomerang-actions/action"
	"github.com/automoto/doomerang-actions/components"
	"github.com/automoto/doomerang-actions/mutation"
	"github.com/automoto/doomerang-actions/shared/gamemath"
	"github.com/automoto/doomerang-actions/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateHitResolution resolves every attack marker that has not been
// resolved yet against the combatants around its owner. Each target hit gets
// a HealthChange; the marker records the outcome for the owner's next tick.
func UpdateHitResolution(ecs *ecs.ECS) {
	sink := mutation.Get(ecs.World)
	spaceEntry, ok := components.Space.First(ecs.World)
	if sink == nil || !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	components.Attacking.Each(ecs.World, func(e *donburi.Entry) {
		marker := components.Attacking.Get(e)
		if marker.Applied {
			return
		}
		marker.HitCount = resolveAttack(space, sink, e, marker)
		marker.Applied = true
	})
}

func resolveAttack(space *resolv.Space, sink *mutation.Sink, attacker *donburi.Entry, marker *components.AttackingData) uint32 {
	if !attacker.HasComponent(components.Object) || marker.Range <= 0 {
		return 0
	}
	origin := components.Object.Get(attacker).Center()

	var facing dmath.Vec2
	if attacker.HasComponent(components.Movement) {
		facing = components.Movement.Get(attacker).Orientation
	}

	// Probe the space with a square covering the attack's reach.
	r := float64(marker.Range)
	probe := resolv.NewObject(origin.X-r, origin.Y-r, 2*r, 2*r)
	probe.SetShape(resolv.NewRectangle(0, 0, 2*r, 2*r))
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvCombatant)
	if check == nil {
		return 0
	}

	var hits uint32
	seen := make(map[donburi.Entity]bool)
	for _, obj := range check.Objects {
		target, ok := obj.Data.(*donburi.Entry)
		if !ok || !target.Valid() || target.Entity() == attacker.Entity() {
			continue
		}
		if seen[target.Entity()] || target.HasComponent(components.Defeated) {
			continue
		}
		seen[target.Entity()] = true

		center := dmath.Vec2{X: obj.X + obj.W/2, Y: obj.Y + obj.H/2}
		reach := r + math.Max(obj.W, obj.H)/2
		if !gamemath.WithinCone(origin, facing, center, reach, float64(marker.MaxAngle)) {
			continue
		}

		sink.Push(target.Entity(), action.HealthChange{
			Amount:    marker.HealthChange,
			Knockback: marker.Knockback,
			Direction: dmath.Vec2{X: center.X - origin.X, Y: center.Y - origin.Y},
		})
		hits++
	}
	return hits
}
