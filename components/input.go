package components

import (
	"github.com/automoto/doomerang-actions/action"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ActionState represents the temporal state of a button
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this tick
	JustReleased bool // Released this tick
}

// Press records this tick's raw button level against the previous tick.
func (a *ActionState) Press(down bool) {
	a.JustPressed = down && !a.Pressed
	a.JustReleased = !down && a.Pressed
	a.Pressed = down
}

// InputData is the control state of one combatant for the current tick,
// written by a player connection or a test driver before the tick runs.
type InputData struct {
	Primary ActionState
	Move    math.Vec2
	Aim     math.Vec2
	HasAim  bool
}

// Snapshot returns the read-only view handed to actions.
func (i *InputData) Snapshot() action.Inputs {
	in := action.Inputs{
		Primary: action.PrimaryInput{
			Pressed: i.Primary.JustPressed,
			Held:    i.Primary.Pressed,
		},
		Move: i.Move,
	}
	if i.HasAim {
		aim := i.Aim
		in.Aim = &aim
	}
	return in
}

var Input = donburi.NewComponentType[InputData]()
