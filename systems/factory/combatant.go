package factory

import (
	"github.com/automoto/doomerang-actions/action"
	"github.com/automoto/doomerang-actions/archetypes"
	"github.com/automoto/doomerang-actions/components"
	cfg "github.com/automoto/doomerang-actions/config"
	"github.com/automoto/doomerang-actions/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCombatant spawns an idle combatant at x, y facing right. Extra
// component types (usually a tag) are added to the archetype.
func CreateCombatant(ecs *ecs.ECS, x, y float64, extra ...donburi.IComponentType) *donburi.Entry {
	combatant := archetypes.Combatant.Spawn(ecs, extra...)

	w, h := cfg.Combatant.CollisionWidth, cfg.Combatant.CollisionHeight
	obj := resolv.NewObject(x, y, w, h, tags.ResolvCombatant)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = combatant
	components.Object.SetValue(combatant, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Character.SetValue(combatant, components.CharacterData{State: action.Wielding{}})
	components.Movement.SetValue(combatant, components.MovementData{
		Orientation: math.Vec2{X: 1, Y: 0},
		Speed:       cfg.Combat.MoveSpeed,
	})
	components.Health.SetValue(combatant, components.HealthData{
		Current: cfg.Combatant.Health,
		Max:     cfg.Combatant.Health,
	})
	components.Energy.SetValue(combatant, components.EnergyData{
		Current: cfg.Combatant.Energy,
		Max:     cfg.Combatant.MaxEnergy,
	})

	return combatant
}
