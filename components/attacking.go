package components

import (
	"github.com/automoto/doomerang-actions/action"
	"github.com/yohamta/donburi"
)

// AttackingData is the active attack marker placed by an AttackRequest.
// Hit resolution fills in Applied and HitCount; the owner reads them back
// the following tick.
type AttackingData struct {
	HealthChange int32
	Range        float32
	MaxAngle     float32 // radians
	Knockback    float32

	Applied  bool
	HitCount uint32
}

// Report returns the hit resolution outcome for the owner's next tick.
func (a *AttackingData) Report() *action.AttackReport {
	return &action.AttackReport{Applied: a.Applied, HitCount: a.HitCount}
}

var Attacking = donburi.NewComponentType[AttackingData]()
