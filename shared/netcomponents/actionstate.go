package netcomponents

import (
	"github.com/automoto/doomerang-actions/shared/netconfig"
	"github.com/yohamta/donburi"
)

// NetActionStateData is the synced view of a combatant's action and vitals.
type NetActionStateData struct {
	Kind   netconfig.ActionKindID
	Phase  netconfig.PhaseID
	Combo  string // combo table name, empty when idle
	Stage  uint32
	Chain  uint32 // consecutive chained strikes
	Health int32
	Energy int32

	FacingX, FacingY float64

	LastSequence uint32 // last input sequence applied by the server
}

var NetActionState = donburi.NewComponentType[NetActionStateData]()
