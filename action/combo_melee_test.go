package action

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/automoto/doomerang-actions/config"
)

// twoStageSpec matches the documented two-stage scenario.
func twoStageSpec() *config.ComboSpec {
	return &config.ComboSpec{
		Name:      "scenario",
		NumStages: 2,
		Stages: []config.StageSpec{
			{Stage: 1, BaseDamage: 10, MaxDamage: 20, DamageIncrease: 5, Knockback: 2, Range: 3, Angle: 30,
				BuildupDuration: 200 * time.Millisecond, RecoverDuration: 100 * time.Millisecond},
			{Stage: 2, BaseDamage: 15, MaxDamage: 40, DamageIncrease: 10, Knockback: 4, Range: 3.5, Angle: 45,
				BuildupDuration: 150 * time.Millisecond, RecoverDuration: 120 * time.Millisecond},
		},
		InitialEnergyGain: 5,
		MaxEnergyGain:     20,
		EnergyIncrease:    5,
		ComboDuration:     150 * time.Millisecond,
	}
}

func threeStageSpec() *config.ComboSpec {
	spec := &config.ComboSpec{Name: "triple", NumStages: 3, ComboDuration: 100 * time.Millisecond, MaxEnergyGain: 10}
	for i := uint32(1); i <= 3; i++ {
		spec.Stages = append(spec.Stages, config.StageSpec{
			Stage: i, BaseDamage: 10 * i, MaxDamage: 50 * i, DamageIncrease: 5,
			BuildupDuration: 50 * time.Millisecond, RecoverDuration: 50 * time.Millisecond,
		})
	}
	return spec
}

func step(s State, dt time.Duration, pressed bool, report *AttackReport) Update {
	return s.Behavior(&JoinData{
		Dt:          dt,
		Inputs:      Inputs{Primary: PrimaryInput{Pressed: pressed, Held: pressed}},
		Attack:      report,
		Orientation: facingRight,
	})
}

func count[T Request](reqs []Request) int {
	n := 0
	for _, r := range reqs {
		if _, ok := r.(T); ok {
			n++
		}
	}
	return n
}

func mustCombo(t *testing.T, s State) ComboMelee {
	t.Helper()
	c, ok := s.(ComboMelee)
	if !ok {
		t.Fatalf("expected ComboMelee, got %T", s)
	}
	return c
}

func TestScenarioHitRecoverChain(t *testing.T) {
	state := NewComboMelee(twoStageSpec())

	// 250ms crosses the 200ms buildup and fires the hit.
	u := step(state, 250*time.Millisecond, false, nil)
	if len(u.Requests) != 1 {
		t.Fatalf("expected one request, got %v", u.Requests)
	}
	attack, ok := u.Requests[0].(AttackRequest)
	if !ok {
		t.Fatalf("expected AttackRequest, got %T", u.Requests[0])
	}
	if attack.HealthChange != -10 {
		t.Fatalf("expected health change -10, got %d", attack.HealthChange)
	}
	if math.Abs(float64(attack.MaxAngle)-math.Pi/6) > 1e-6 {
		t.Fatalf("expected 30 degrees in radians, got %f", attack.MaxAngle)
	}
	c := mustCombo(t, u.State)
	if !c.Exhausted || c.Timer != 0 {
		t.Fatalf("expected exhausted with reset timer, got %+v", c)
	}

	// 100ms lands exactly on the end of recovery.
	u = step(c, 100*time.Millisecond, false, nil)
	c = mustCombo(t, u.State)
	if c.Timer != 100*time.Millisecond {
		t.Fatalf("expected timer 100ms, got %s", c.Timer)
	}
	if c.Phase() != PhaseChainWindow {
		t.Fatalf("expected chain window, got %s", c.Phase())
	}
	if len(u.Requests) != 0 {
		t.Fatalf("recovery should not request anything, got %v", u.Requests)
	}

	// Pressing with no elapsed time chains to stage 2.
	u = step(c, 0, true, nil)
	c = mustCombo(t, u.State)
	if c.Stage != 2 || c.Combo != 1 || c.Exhausted || c.Timer != 0 {
		t.Fatalf("expected stage 2 combo 1 fresh, got %+v", c)
	}
}

func TestScenarioNoInputReachesDone(t *testing.T) {
	var state State = NewComboMelee(twoStageSpec())

	var last Update
	for i := 0; i < 100; i++ {
		last = step(state, 20*time.Millisecond, false, nil)
		state = last.State
		if state.Kind() == KindWielding {
			break
		}
	}
	if state.Kind() != KindWielding {
		t.Fatalf("expected the combo to end, still %T", state)
	}
	if count[AttackWithdraw](last.Requests) != 1 {
		t.Fatalf("expected a withdraw on the final tick, got %v", last.Requests)
	}
}

func TestScenarioReportDuringRecoveryGrantsEnergy(t *testing.T) {
	state := NewComboMelee(twoStageSpec())
	state.Exhausted = true
	state.Timer = 20 * time.Millisecond
	state.Combo = 2

	u := step(state, 10*time.Millisecond, false, &AttackReport{Applied: true, HitCount: 1})
	if c := mustCombo(t, u.State); c.Phase() != PhaseRecovery {
		t.Fatalf("expected to stay in recovery, got %s", c.Phase())
	}
	if got := count[EnergyGain](u.Requests); got != 1 {
		t.Fatalf("expected exactly one energy gain, got %d", got)
	}
	if got := count[AttackWithdraw](u.Requests); got != 1 {
		t.Fatalf("expected the marker to be withdrawn, got %d", got)
	}
	for _, r := range u.Requests {
		if gain, ok := r.(EnergyGain); ok {
			if gain.Amount != 15 || gain.Source != EnergySourceHitEnemy {
				t.Fatalf("expected 15 from hit_enemy, got %+v", gain)
			}
		}
	}
}

func TestReportWithoutHitsGrantsNothing(t *testing.T) {
	state := NewComboMelee(twoStageSpec())
	state.Exhausted = true

	for _, report := range []*AttackReport{nil, {Applied: false, HitCount: 3}, {Applied: true, HitCount: 0}} {
		u := step(state, time.Millisecond, false, report)
		if count[EnergyGain](u.Requests) != 0 {
			t.Fatalf("report %+v should not grant energy", report)
		}
	}
}

func TestPhasesPartitionStateSpace(t *testing.T) {
	spec := twoStageSpec()
	timers := []time.Duration{maxDuration}
	for ms := 0; ms <= 600; ms += 5 {
		timers = append(timers, time.Duration(ms)*time.Millisecond)
	}

	for stageIdx := uint32(1); stageIdx <= spec.NumStages; stageIdx++ {
		stage := spec.StageAt(stageIdx)
		b, r, w := stage.BuildupDuration, stage.RecoverDuration, spec.ComboDuration
		for _, exhausted := range []bool{false, true} {
			for _, timer := range timers {
				holds := map[Phase]bool{
					PhaseBuildup:     !exhausted && timer < b,
					PhaseActiveHit:   !exhausted && timer >= b,
					PhaseRecovery:    exhausted && timer < r,
					PhaseChainWindow: exhausted && r <= timer && timer < r+w,
					PhaseDone:        exhausted && timer >= r+w,
				}
				n := 0
				for _, ok := range holds {
					if ok {
						n++
					}
				}
				if n != 1 {
					t.Fatalf("stage %d exhausted=%v timer=%s: %d phases hold", stageIdx, exhausted, timer, n)
				}
				got := ClassifyPhase(stage, w, exhausted, timer)
				if !holds[got] {
					t.Fatalf("stage %d exhausted=%v timer=%s: classified %s", stageIdx, exhausted, timer, got)
				}
			}
		}
	}
}

func TestActiveHitFiresOncePerStage(t *testing.T) {
	for _, dt := range []time.Duration{time.Millisecond, 7 * time.Millisecond, 50 * time.Millisecond, time.Second} {
		var state State = NewComboMelee(twoStageSpec())
		attacks := 0
		for i := 0; i < 2000 && state.Kind() == KindComboMelee; i++ {
			u := step(state, dt, false, nil)
			attacks += count[AttackRequest](u.Requests)
			state = u.State
		}
		if attacks != 1 {
			t.Fatalf("dt=%s: expected exactly one attack request, got %d", dt, attacks)
		}
	}
}

func TestDamageMonotoneAndCapped(t *testing.T) {
	spec := twoStageSpec()
	for stage := uint32(1); stage <= spec.NumStages; stage++ {
		max := spec.StageAt(stage).MaxDamage
		prev := uint32(0)
		for combo := uint32(0); combo < 200; combo++ {
			c := ComboMelee{Spec: spec, Stage: stage, Combo: combo}
			d := c.Damage()
			if d < prev {
				t.Fatalf("stage %d combo %d: damage fell from %d to %d", stage, combo, prev, d)
			}
			if d > max {
				t.Fatalf("stage %d combo %d: damage %d exceeds max %d", stage, combo, d, max)
			}
			prev = d
		}
	}

	huge := ComboMelee{Spec: spec, Stage: 2, Combo: math.MaxUint32}
	if huge.Damage() != spec.StageAt(2).MaxDamage {
		t.Fatalf("expected max damage at max combo, got %d", huge.Damage())
	}
}

func TestDamageStepsOncePerCycle(t *testing.T) {
	spec := twoStageSpec()
	want := map[uint32]uint32{0: 10, 1: 10, 2: 15, 3: 15, 4: 20, 6: 20}
	for combo, dmg := range want {
		c := ComboMelee{Spec: spec, Stage: 1, Combo: combo}
		if got := c.Damage(); got != dmg {
			t.Fatalf("combo %d: expected damage %d, got %d", combo, dmg, got)
		}
	}
}

func TestEnergyRewardMonotoneAndCapped(t *testing.T) {
	spec := twoStageSpec()
	prev := int32(0)
	for combo := uint32(0); combo < 100; combo++ {
		e := ComboMelee{Spec: spec, Stage: 1, Combo: combo}.EnergyReward()
		if e < prev {
			t.Fatalf("combo %d: reward fell from %d to %d", combo, prev, e)
		}
		if e > int32(spec.MaxEnergyGain) {
			t.Fatalf("combo %d: reward %d exceeds max %d", combo, e, spec.MaxEnergyGain)
		}
		prev = e
	}

	spec.MaxEnergyGain = math.MaxUint32
	spec.EnergyIncrease = math.MaxUint32
	if got := (ComboMelee{Spec: spec, Stage: 1, Combo: math.MaxUint32}).EnergyReward(); got != math.MaxInt32 {
		t.Fatalf("expected reward clamped to MaxInt32, got %d", got)
	}
}

func TestZeroDtIsIdempotent(t *testing.T) {
	var state State = NewComboMelee(twoStageSpec())
	for i := 0; i < 200 && state.Kind() == KindComboMelee; i++ {
		before := mustCombo(t, state)
		held := State(before)
		for j := 0; j < 5; j++ {
			held = step(held, 0, false, nil).State
		}
		after := mustCombo(t, held)
		if after.Stage != before.Stage || after.Combo != before.Combo || after.Exhausted != before.Exhausted {
			t.Fatalf("dt=0 changed %+v into %+v", before, after)
		}
		state = step(state, 10*time.Millisecond, false, nil).State
	}
}

func TestChainWrapsAfterLastStage(t *testing.T) {
	spec := threeStageSpec()
	state := ComboMelee{Spec: spec, Stage: 3, Combo: 2, Exhausted: true, Timer: 60 * time.Millisecond}
	if state.Phase() != PhaseChainWindow {
		t.Fatalf("expected chain window, got %s", state.Phase())
	}

	c := mustCombo(t, step(state, 0, true, nil).State)
	if c.Stage != 1 || c.Combo != 3 {
		t.Fatalf("expected wrap to stage 1 combo 3, got %+v", c)
	}
}

func TestSingleStageChainsIndefinitely(t *testing.T) {
	spec := &config.ComboSpec{
		Name: "jab", NumStages: 1, ComboDuration: 50 * time.Millisecond,
		Stages: []config.StageSpec{{Stage: 1, BaseDamage: 1, MaxDamage: 1,
			BuildupDuration: 10 * time.Millisecond, RecoverDuration: 10 * time.Millisecond}},
	}

	var state State = NewComboMelee(spec)
	attacks := 0
	for i := 0; i < 300; i++ {
		// Press every tick; only presses inside the chain window count.
		u := step(state, 5*time.Millisecond, true, nil)
		attacks += count[AttackRequest](u.Requests)
		state = u.State
		if state.Kind() != KindComboMelee {
			t.Fatalf("tick %d: a single stage combo should keep chaining", i)
		}
		if c := mustCombo(t, state); c.Stage != 1 {
			t.Fatalf("tick %d: expected stage 1, got %d", i, c.Stage)
		}
	}
	if c := mustCombo(t, state); c.Combo < 10 {
		t.Fatalf("expected many chained strikes, got combo %d", c.Combo)
	}
	if attacks < 10 {
		t.Fatalf("expected an attack per chained strike, got %d", attacks)
	}
}

func TestTimerOverflowResetsToZero(t *testing.T) {
	state := NewComboMelee(twoStageSpec())
	state.Exhausted = true
	state.Timer = 50 * time.Millisecond

	c := mustCombo(t, step(state, maxDuration, false, nil).State)
	if c.Timer != 0 {
		t.Fatalf("expected overflow to reset the timer, got %s", c.Timer)
	}
	if c.Stage != 1 || !c.Exhausted {
		t.Fatalf("overflow must not change stage or exhaustion, got %+v", c)
	}
}

func TestNegativeDtIsIgnored(t *testing.T) {
	state := NewComboMelee(twoStageSpec())
	state.Timer = 30 * time.Millisecond

	c := mustCombo(t, step(state, -time.Second, false, nil).State)
	if c.Timer != 30*time.Millisecond {
		t.Fatalf("expected timer to hold, got %s", c.Timer)
	}
}

func TestInvalidStageRevertsToWielding(t *testing.T) {
	tests := []struct {
		name  string
		state ComboMelee
	}{
		{"stage zero", ComboMelee{Spec: twoStageSpec(), Stage: 0}},
		{"stage past table", ComboMelee{Spec: twoStageSpec(), Stage: 3}},
		{"no table", ComboMelee{Stage: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var invErr *InvariantError
			if err := tt.state.Validate(); !errors.As(err, &invErr) {
				t.Fatalf("expected *InvariantError, got %v", err)
			}

			u := step(tt.state, 10*time.Millisecond, true, nil)
			if u.State.Kind() != KindWielding {
				t.Fatalf("expected wielding, got %T", u.State)
			}
			if !errors.As(u.Violation, &invErr) {
				t.Fatalf("expected violation to be reported, got %v", u.Violation)
			}
			if len(u.Requests) != 1 || count[AttackWithdraw](u.Requests) != 1 {
				t.Fatalf("expected a lone withdraw, got %v", u.Requests)
			}
		})
	}
}

func TestDoneWithReportWithdrawsAndRewards(t *testing.T) {
	state := NewComboMelee(twoStageSpec())
	state.Exhausted = true
	state.Timer = 240 * time.Millisecond

	u := step(state, 20*time.Millisecond, false, &AttackReport{Applied: true, HitCount: 2})
	if u.State.Kind() != KindWielding {
		t.Fatalf("expected the combo to end, got %T", u.State)
	}
	if count[EnergyGain](u.Requests) != 1 {
		t.Fatalf("expected the reward on the final tick, got %v", u.Requests)
	}
}
