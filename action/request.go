package action

import dmath "github.com/yohamta/donburi/features/math"

// Request is a deferred mutation produced during a tick and applied once
// every entity has been evaluated.
type Request interface {
	isRequest()
}

// EnergySource tags why energy changed.
type EnergySource uint8

const (
	EnergySourceHitEnemy EnergySource = iota + 1
)

func (s EnergySource) String() string {
	if s == EnergySourceHitEnemy {
		return "hit_enemy"
	}
	return "unknown"
}

// AttackRequest places (or replaces) the attack marker on the requesting
// entity.
type AttackRequest struct {
	HealthChange int32 // never positive
	Range        float32
	MaxAngle     float32 // radians
	Knockback    float32
}

// AttackWithdraw removes the attack marker if one is present.
type AttackWithdraw struct{}

// EnergyGain adds to the requesting entity's energy.
type EnergyGain struct {
	Amount int32
	Source EnergySource
}

// HealthChange adjusts a target's health and pushes it along Direction.
type HealthChange struct {
	Amount    int32
	Knockback float32
	Direction dmath.Vec2
}

func (AttackRequest) isRequest()  {}
func (AttackWithdraw) isRequest() {}
func (EnergyGain) isRequest()     {}
func (HealthChange) isRequest()   {}
