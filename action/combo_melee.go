package action

import (
	"math"
	"time"

	"github.com/automoto/doomerang-actions/config"
)

// ComboMelee is a sequence of melee stages that chain into each other while
// the player keeps pressing primary, growing more damaging and more
// rewarding with every chained strike.
type ComboMelee struct {
	// Shared stage table; never modified after load
	Spec *config.ComboSpec

	Stage     uint32 // 1-based
	Combo     uint32 // consecutive chained strikes
	Exhausted bool   // the current stage's hit has been issued
	Timer     time.Duration
}

// NewComboMelee returns a fresh combo at its first stage.
func NewComboMelee(spec *config.ComboSpec) ComboMelee {
	return ComboMelee{Spec: spec, Stage: 1}
}

func (ComboMelee) Kind() Kind {
	return KindComboMelee
}

// Validate reports whether the state can be advanced.
func (c ComboMelee) Validate() error {
	if c.Spec == nil {
		return &InvariantError{Kind: KindComboMelee, Stage: c.Stage, Reason: "no stage table"}
	}
	if c.Stage < 1 || c.Stage > c.Spec.NumStages || int(c.Spec.NumStages) != len(c.Spec.Stages) {
		return &InvariantError{
			Kind:      KindComboMelee,
			Combo:     c.Spec.Name,
			Stage:     c.Stage,
			NumStages: c.Spec.NumStages,
			Reason:    "stage outside the stage table",
		}
	}
	return nil
}

// Phase classifies the stored state. Invalid states report PhaseDone.
func (c ComboMelee) Phase() Phase {
	if c.Validate() != nil {
		return PhaseDone
	}
	return ClassifyPhase(c.Spec.StageAt(c.Stage), c.Spec.ComboDuration, c.Exhausted, c.Timer)
}

// Damage is the current stage's damage at the current combo count. It steps
// up once per full cycle through the stages and never exceeds the stage's
// max damage.
func (c ComboMelee) Damage() uint32 {
	stage := c.Spec.StageAt(c.Stage)
	if stage == nil {
		return 0
	}
	cycles := uint64(c.Combo / c.Spec.NumStages)
	scaled := uint64(stage.BaseDamage) + cycles*uint64(stage.DamageIncrease)
	return uint32(min(uint64(stage.MaxDamage), scaled))
}

// EnergyReward is the energy granted when a strike lands at the current combo
// count, capped at the combo's max energy gain.
func (c ComboMelee) EnergyReward() int32 {
	if c.Spec == nil {
		return 0
	}
	scaled := uint64(c.Spec.InitialEnergyGain) + uint64(c.Combo)*uint64(c.Spec.EnergyIncrease)
	return narrow(min(uint64(c.Spec.MaxEnergyGain), scaled))
}

func (c ComboMelee) attackRequest() AttackRequest {
	stage := c.Spec.StageAt(c.Stage)
	return AttackRequest{
		HealthChange: -narrow(uint64(c.Damage())),
		Range:        stage.Range,
		MaxAngle:     float32(float64(stage.Angle) * math.Pi / 180),
		Knockback:    stage.Knockback,
	}
}

func (c ComboMelee) Behavior(data *JoinData) Update {
	update := newUpdate(data, c)

	handleOrientation(data, &update, config.Combat.ComboTurnRate)
	handleMove(data, &update, config.Combat.ComboMoveEfficiency)

	if err := c.Validate(); err != nil {
		update.State = Wielding{}
		update.Violation = err
		update.push(AttackWithdraw{})
		return update
	}

	next := c
	next.Timer = advanceTimer(c.Timer, data.Dt)
	stage := c.Spec.StageAt(c.Stage)

	switch ClassifyPhase(stage, c.Spec.ComboDuration, c.Exhausted, next.Timer) {
	case PhaseBuildup, PhaseRecovery:
		update.State = next
	case PhaseActiveHit:
		update.push(c.attackRequest())
		next.Exhausted = true
		next.Timer = 0
		update.State = next
	case PhaseChainWindow:
		if data.Inputs.Primary.Pressed {
			next.Stage = c.Stage%c.Spec.NumStages + 1
			if c.Combo < math.MaxUint32 {
				next.Combo = c.Combo + 1
			}
			next.Exhausted = false
			next.Timer = 0
		}
		update.State = next
	case PhaseDone:
		update.State = Wielding{}
		update.push(AttackWithdraw{})
	}

	// The report belongs to the previous tick's marker and may arrive in any
	// phase.
	if r := data.Attack; r != nil && r.Applied && r.HitCount > 0 {
		update.push(AttackWithdraw{})
		update.push(EnergyGain{Amount: c.EnergyReward(), Source: EnergySourceHitEnemy})
	}

	return update
}
