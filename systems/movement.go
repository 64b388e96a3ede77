package systems

import (
	"github.com/automoto/doomerang-actions/components"
	cfg "github.com/automoto/doomerang-actions/config"
	"github.com/automoto/doomerang-actions/shared/gamemath"
	"github.com/automoto/doomerang-actions/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement moves every body by its action's move intent plus any
// knockback, stopping against solids and at the arena edge.
func UpdateMovement(ecs *ecs.ECS) {
	dt := components.Dt(ecs.World).Seconds()
	if dt <= 0 {
		return
	}

	width, height := float64(cfg.Sim.ArenaWidth), float64(cfg.Sim.ArenaHeight)
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		level := components.Level.Get(levelEntry)
		width, height = float64(level.Width), float64(level.Height)
	}

	components.Movement.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		mv := components.Movement.Get(e)
		obj := components.Object.Get(e).Object

		vx, vy := mv.Knockback.X, mv.Knockback.Y
		if !e.HasComponent(components.Defeated) {
			vx += mv.Intent.X * mv.Speed
			vy += mv.Intent.Y * mv.Speed
		}

		if dx := vx * dt; dx != 0 {
			if stop, ok := solidContactX(obj, dx); ok {
				dx = stop
				mv.Knockback.X = 0
			}
			obj.X += dx
		}
		if dy := vy * dt; dy != 0 {
			if stop, ok := solidContactY(obj, dy); ok {
				dy = stop
				mv.Knockback.Y = 0
			}
			obj.Y += dy
		}

		obj.X = gamemath.Clamp(obj.X, 0, width-obj.W)
		obj.Y = gamemath.Clamp(obj.Y, 0, height-obj.H)
		obj.Update()

		mv.Knockback = gamemath.DecayVector(mv.Knockback, cfg.Combat.KnockbackDecay*dt)
	})
}

func solidContactX(obj *resolv.Object, dx float64) (float64, bool) {
	check := obj.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		return 0, false
	}
	solids := check.ObjectsByTags(tags.ResolvSolid)
	if len(solids) == 0 {
		return 0, false
	}
	return check.ContactWithObject(solids[0]).X(), true
}

func solidContactY(obj *resolv.Object, dy float64) (float64, bool) {
	check := obj.Check(0, dy, tags.ResolvSolid)
	if check == nil {
		return 0, false
	}
	solids := check.ObjectsByTags(tags.ResolvSolid)
	if len(solids) == 0 {
		return 0, false
	}
	return check.ContactWithObject(solids[0]).Y(), true
}
