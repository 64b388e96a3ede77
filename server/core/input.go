package core

import (
	"errors"
	"log"
	stdmath "math"

	"github.com/automoto/doomerang-actions/action"
	"github.com/automoto/doomerang-actions/components"
	cfg "github.com/automoto/doomerang-actions/config"
	"github.com/automoto/doomerang-actions/shared/gamemath"
	"github.com/automoto/doomerang-actions/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// applyInput copies a client's latest input onto its combatant. Pressing
// primary while idle starts the requested combo.
func (s *Server) applyInput(slot *playerSlot) {
	world := s.sim.ECS().World
	if !world.Valid(slot.entity) {
		return
	}
	entry := world.Entry(slot.entity)

	in := components.Input.Get(entry)
	in.Primary.Press(slot.input.Primary || slot.latched)
	in.Move = gamemath.ClampLength(finiteVec(slot.input.MoveX, slot.input.MoveY), 1)
	in.Aim = finiteVec(slot.input.AimX, slot.input.AimY)
	in.HasAim = slot.input.HasAim

	if in.Primary.JustPressed && components.Character.Get(entry).Kind() == action.KindWielding {
		s.startCombo(entry, slot.input.Combo)
	}
}

func (s *Server) startCombo(entry *donburi.Entry, name string) {
	if name == "" {
		name = cfg.Combat.DefaultCombo
	}
	spec, ok := s.combos.Lookup(name)
	if !ok {
		log.Printf("[server] Unknown combo %q, using %q", name, cfg.Combat.DefaultCombo)
		if spec, ok = s.combos.Lookup(cfg.Combat.DefaultCombo); !ok {
			return
		}
	}

	err := systems.EnterComboMelee(entry, spec)
	switch {
	case err == nil:
	case errors.Is(err, systems.ErrDefeated), errors.Is(err, systems.ErrBusy):
		// Presses while defeated or mid-action are ignored
	default:
		log.Printf("[server] Entity %v could not start combo %q: %v", entry.Entity(), spec.Name, err)
	}
}

// finiteVec drops non-finite client values.
func finiteVec(x, y float64) math.Vec2 {
	if stdmath.IsNaN(x) || stdmath.IsInf(x, 0) || stdmath.IsNaN(y) || stdmath.IsInf(y, 0) {
		return math.Vec2{}
	}
	return math.Vec2{X: x, Y: y}
}
