package mutation

import (
	"testing"

	"github.com/automoto/doomerang-actions/action"
	"github.com/automoto/doomerang-actions/components"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func newFighter(w donburi.World) *donburi.Entry {
	e := w.Entry(w.Create(components.Health, components.Energy, components.Movement))
	components.Health.SetValue(e, components.HealthData{Current: 100, Max: 100})
	components.Energy.SetValue(e, components.EnergyData{Current: 0, Max: 50})
	return e
}

func TestAttackRequestLastWriteWins(t *testing.T) {
	w := donburi.NewWorld()
	e := newFighter(w)
	var sink Sink

	sink.Push(e.Entity(), action.AttackRequest{HealthChange: -10, Range: 2})
	sink.Apply(w)
	components.Attacking.Get(e).Applied = true
	components.Attacking.Get(e).HitCount = 4

	sink.Push(e.Entity(), action.AttackRequest{HealthChange: -20, Range: 3})
	sink.Push(e.Entity(), action.AttackRequest{HealthChange: -30, Range: 4})
	stats := sink.Apply(w)
	if stats.Applied != 2 || stats.Dropped != 0 {
		t.Fatalf("unexpected stats %+v", stats)
	}

	marker := components.Attacking.Get(e)
	if marker.HealthChange != -30 || marker.Range != 4 {
		t.Fatalf("expected the last request to win, got %+v", marker)
	}
	if marker.Applied || marker.HitCount != 0 {
		t.Fatalf("replaced marker must start unresolved, got %+v", marker)
	}
}

func TestAttackWithdrawIsIdempotent(t *testing.T) {
	w := donburi.NewWorld()
	e := newFighter(w)
	var sink Sink

	sink.Push(e.Entity(), action.AttackRequest{HealthChange: -5})
	sink.Push(e.Entity(), action.AttackWithdraw{}, action.AttackWithdraw{})
	stats := sink.Apply(w)
	if e.HasComponent(components.Attacking) {
		t.Fatal("expected marker to be withdrawn")
	}
	if stats.Applied != 3 {
		t.Fatalf("expected all three to apply, got %+v", stats)
	}

	sink.Push(e.Entity(), action.AttackWithdraw{})
	if stats := sink.Apply(w); stats.Dropped != 0 {
		t.Fatalf("withdraw without a marker should not fail, got %+v", stats)
	}
}

func TestEnergyGainClamps(t *testing.T) {
	w := donburi.NewWorld()
	e := newFighter(w)
	var sink Sink

	sink.Push(e.Entity(), action.EnergyGain{Amount: 30, Source: action.EnergySourceHitEnemy})
	sink.Apply(w)
	if got := components.Energy.Get(e).Current; got != 30 {
		t.Fatalf("expected 30 energy, got %d", got)
	}

	sink.Push(e.Entity(), action.EnergyGain{Amount: 30, Source: action.EnergySourceHitEnemy})
	sink.Apply(w)
	if got := components.Energy.Get(e).Current; got != 50 {
		t.Fatalf("expected energy capped at 50, got %d", got)
	}

	sink.Push(e.Entity(), action.EnergyGain{Amount: -500})
	sink.Apply(w)
	if got := components.Energy.Get(e).Current; got != 0 {
		t.Fatalf("expected energy floored at 0, got %d", got)
	}
}

func TestHealthChangeClampsAndKnocksBack(t *testing.T) {
	w := donburi.NewWorld()
	e := newFighter(w)
	var sink Sink

	sink.Push(e.Entity(), action.HealthChange{Amount: -40, Knockback: 2, Direction: dmath.Vec2{X: 3, Y: 0}})
	sink.Apply(w)
	if got := components.Health.Get(e).Current; got != 60 {
		t.Fatalf("expected 60 health, got %d", got)
	}
	kb := components.Movement.Get(e).Knockback
	if kb.X <= 0 || kb.Y != 0 {
		t.Fatalf("expected knockback along +x, got %v", kb)
	}

	sink.Push(e.Entity(), action.HealthChange{Amount: -1000})
	sink.Apply(w)
	if got := components.Health.Get(e).Current; got != 0 {
		t.Fatalf("expected health floored at 0, got %d", got)
	}
}

func TestDropsInvalidTargets(t *testing.T) {
	w := donburi.NewWorld()
	e := newFighter(w)
	bare := w.Entry(w.Create(components.Object))
	gone := newFighter(w)
	goneID := gone.Entity()
	w.Remove(goneID)

	var sink Sink
	sink.Push(goneID, action.AttackRequest{HealthChange: -1})
	sink.Push(bare.Entity(), action.EnergyGain{Amount: 5})
	sink.Push(bare.Entity(), action.HealthChange{Amount: -5})
	sink.Push(e.Entity(), action.EnergyGain{Amount: 5})

	stats := sink.Apply(w)
	if stats.Dropped != 3 || stats.Applied != 1 {
		t.Fatalf("expected 3 dropped and 1 applied, got %+v", stats)
	}
	if sink.Len() != 0 {
		t.Fatalf("apply should drain the queue, %d left", sink.Len())
	}
	if totals := sink.Totals(); totals.Dropped != 3 {
		t.Fatalf("expected totals to accumulate, got %+v", totals)
	}
}

func TestGetFindsSingleton(t *testing.T) {
	w := donburi.NewWorld()
	if Get(w) != nil {
		t.Fatal("expected no sink in an empty world")
	}
	w.Entry(w.Create(Component))
	if Get(w) == nil {
		t.Fatal("expected the singleton sink")
	}
}
