package core

import (
	"github.com/automoto/doomerang-actions/action"
	"github.com/automoto/doomerang-actions/components"
	"github.com/automoto/doomerang-actions/shared/netcomponents"
	"github.com/automoto/doomerang-actions/shared/netconfig"
	"github.com/yohamta/donburi"
)

var phaseIDs = map[action.Phase]netconfig.PhaseID{
	action.PhaseBuildup:     netconfig.PhaseBuildup,
	action.PhaseActiveHit:   netconfig.PhaseActiveHit,
	action.PhaseRecovery:    netconfig.PhaseRecovery,
	action.PhaseChainWindow: netconfig.PhaseChainWindow,
	action.PhaseDone:        netconfig.PhaseDone,
}

// writeNetState copies the simulated state of a combatant into its synced
// components.
func writeNetState(entry *donburi.Entry) {
	obj := components.Object.Get(entry)
	netcomponents.NetPosition.SetValue(entry, netcomponents.NetPositionData{X: obj.X, Y: obj.Y})

	state := netcomponents.NetActionStateData{Kind: netconfig.ActionWielding}
	if combo, ok := components.Character.Get(entry).State.(action.ComboMelee); ok {
		state.Kind = netconfig.ActionComboMelee
		state.Phase = phaseIDs[combo.Phase()]
		state.Stage = combo.Stage
		state.Chain = combo.Combo
		if combo.Spec != nil {
			state.Combo = combo.Spec.Name
		}
	}
	if entry.HasComponent(components.Defeated) {
		state.Kind = netconfig.ActionDefeated
	}

	state.Health = components.Health.Get(entry).Current
	state.Energy = components.Energy.Get(entry).Current

	facing := components.Movement.Get(entry).Orientation
	state.FacingX, state.FacingY = facing.X, facing.Y

	netcomponents.NetActionState.SetValue(entry, state)
}

// syncNetState refreshes the synced components of every player and bot.
func (s *Server) syncNetState() {
	world := s.sim.ECS().World
	for _, entity := range s.bots {
		if world.Valid(entity) {
			writeNetState(world.Entry(entity))
		}
	}
	for _, slot := range s.players {
		if !world.Valid(slot.entity) {
			continue
		}
		entry := world.Entry(slot.entity)
		writeNetState(entry)
		netcomponents.NetActionState.Get(entry).LastSequence = slot.input.Sequence
	}
}
