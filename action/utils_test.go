package action

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/doomerang-actions/config"
	dmath "github.com/yohamta/donburi/features/math"
)

var facingRight = dmath.Vec2{X: 1, Y: 0}

func TestComboTurnsAndSlowsMovement(t *testing.T) {
	aim := dmath.Vec2{X: 0, Y: 5}
	u := NewComboMelee(twoStageSpec()).Behavior(&JoinData{
		Dt:          100 * time.Millisecond,
		Inputs:      Inputs{Move: dmath.Vec2{X: 3, Y: 4}, Aim: &aim},
		Orientation: facingRight,
	})

	// 5.0/s over 100ms blends halfway toward the aim.
	if math.Abs(u.Orientation.X-u.Orientation.Y) > 1e-6 || u.Orientation.X <= 0 {
		t.Fatalf("expected halfway facing, got %v", u.Orientation)
	}
	eff := config.Combat.ComboMoveEfficiency
	if math.Abs(u.MoveIntent.X-0.6*eff) > 1e-6 || math.Abs(u.MoveIntent.Y-0.8*eff) > 1e-6 {
		t.Fatalf("expected unit move scaled by %.1f, got %v", eff, u.MoveIntent)
	}
}

func TestMissingAimHoldsFacing(t *testing.T) {
	zero := dmath.Vec2{}
	for _, aim := range []*dmath.Vec2{nil, &zero} {
		u := Wielding{}.Behavior(&JoinData{
			Dt:          time.Second,
			Inputs:      Inputs{Aim: aim},
			Orientation: facingRight,
		})
		if u.Orientation != facingRight {
			t.Fatalf("aim %v should hold facing, got %v", aim, u.Orientation)
		}
	}
}

func TestWieldingRequestsNothing(t *testing.T) {
	u := Wielding{}.Behavior(&JoinData{
		Dt:     time.Second,
		Inputs: Inputs{Primary: PrimaryInput{Pressed: true}, Move: dmath.Vec2{X: 0.5}},
		Attack: &AttackReport{Applied: true, HitCount: 1},
	})
	if len(u.Requests) != 0 {
		t.Fatalf("wielding should not request anything, got %v", u.Requests)
	}
	if u.State.Kind() != KindWielding {
		t.Fatalf("expected to stay wielding, got %T", u.State)
	}
	if u.MoveIntent.X != 0.5*config.Combat.WieldMoveEfficiency {
		t.Fatalf("unexpected move intent %v", u.MoveIntent)
	}
}

func TestAdvanceTimer(t *testing.T) {
	if got := advanceTimer(time.Second, time.Second); got != 2*time.Second {
		t.Fatalf("expected 2s, got %s", got)
	}
	if got := advanceTimer(maxDuration-time.Nanosecond, 2*time.Nanosecond); got != 0 {
		t.Fatalf("expected overflow to reset, got %s", got)
	}
	if got := saturatingAdd(maxDuration, time.Second); got != maxDuration {
		t.Fatalf("expected saturation, got %s", got)
	}
}
