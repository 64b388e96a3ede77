// Package action implements character actions: timed behaviors an entity is
// in at any tick. Each action is a value advanced once per tick by its
// Behavior method, which returns the replacement state plus the mutations it
// wants applied to the world after every entity has run.
package action

import (
	"time"

	dmath "github.com/yohamta/donburi/features/math"
)

// Kind identifies an action type.
type Kind uint8

const (
	KindWielding Kind = iota
	KindComboMelee
)

func (k Kind) String() string {
	switch k {
	case KindWielding:
		return "wielding"
	case KindComboMelee:
		return "combo_melee"
	default:
		return "unknown"
	}
}

// State is the action an entity is currently performing. Implementations are
// values: Behavior never mutates the receiver, it returns the next state in
// the Update.
type State interface {
	Kind() Kind
	Behavior(data *JoinData) Update
}

// PrimaryInput is the primary action button for this tick.
type PrimaryInput struct {
	Pressed bool // went down this tick
	Held    bool
}

// Inputs is the per-entity control snapshot for one tick.
type Inputs struct {
	Primary PrimaryInput
	Move    dmath.Vec2
	Aim     *dmath.Vec2 // nil holds the current facing
}

// AttackReport is the hit resolution outcome for the entity's attack marker.
type AttackReport struct {
	Applied  bool
	HitCount uint32
}

// JoinData is everything an action reads for one tick.
type JoinData struct {
	Dt          time.Duration
	Inputs      Inputs
	Attack      *AttackReport // nil when no attack marker is active
	Orientation dmath.Vec2
}

// Update is the result of one Behavior call.
type Update struct {
	State       State
	Orientation dmath.Vec2
	MoveIntent  dmath.Vec2
	Requests    []Request

	// Violation is set when the incoming state was inconsistent and the
	// entity was forced back to Wielding.
	Violation error
}

func newUpdate(data *JoinData, current State) Update {
	return Update{
		State:       current,
		Orientation: data.Orientation,
	}
}

func (u *Update) push(r Request) {
	u.Requests = append(u.Requests, r)
}
