// Package netconfig defines lightweight types shared between client and server
// for network serialization. It has no dependencies so it can be imported
// by any client without pulling in the simulation.
package netconfig

// ActionKindID identifies the action a combatant is performing.
type ActionKindID int

const (
	ActionWielding ActionKindID = iota
	ActionComboMelee
	ActionDefeated
)

var actionKindNames = map[ActionKindID]string{
	ActionWielding:   "wielding",
	ActionComboMelee: "combo_melee",
	ActionDefeated:   "defeated",
}

func (a ActionKindID) String() string {
	if name, ok := actionKindNames[a]; ok {
		return name
	}
	return "unknown"
}

// PhaseID is the timing phase of a combo stage. PhaseNone is reported for
// actions without phases.
type PhaseID int

const (
	PhaseNone PhaseID = iota
	PhaseBuildup
	PhaseActiveHit
	PhaseRecovery
	PhaseChainWindow
	PhaseDone
)

var phaseNames = map[PhaseID]string{
	PhaseNone:        "none",
	PhaseBuildup:     "buildup",
	PhaseActiveHit:   "active_hit",
	PhaseRecovery:    "recovery",
	PhaseChainWindow: "chain_window",
	PhaseDone:        "done",
}

func (p PhaseID) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}
