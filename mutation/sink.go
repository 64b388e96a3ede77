// Package mutation is the deferred command buffer between action behaviors
// and the world. Requests pushed during a tick are applied together, on one
// goroutine, once every entity has been evaluated.
package mutation

import (
	"github.com/automoto/doomerang-actions/action"
	"github.com/automoto/doomerang-actions/components"
	"github.com/automoto/doomerang-actions/config"
	"github.com/automoto/doomerang-actions/shared/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Message is one request addressed to an entity.
type Message struct {
	Entity  donburi.Entity
	Request action.Request
}

// Stats counts the outcome of applied messages.
type Stats struct {
	Applied int
	Dropped int
}

func (s *Stats) add(o Stats) {
	s.Applied += o.Applied
	s.Dropped += o.Dropped
}

// Sink buffers messages until Apply. It is not safe for concurrent use;
// parallel producers hand their batches over after their barrier.
type Sink struct {
	pending []Message
	total   Stats
}

// Push queues requests for one entity, preserving their order.
func (s *Sink) Push(e donburi.Entity, reqs ...action.Request) {
	for _, r := range reqs {
		s.pending = append(s.pending, Message{Entity: e, Request: r})
	}
}

// PushBatch queues a prepared batch.
func (s *Sink) PushBatch(msgs []Message) {
	s.pending = append(s.pending, msgs...)
}

// Len returns the number of queued messages.
func (s *Sink) Len() int {
	return len(s.pending)
}

// Totals returns the counts accumulated over every Apply call.
func (s *Sink) Totals() Stats {
	return s.total
}

// Apply applies and clears every queued message in push order. Messages for
// entities that no longer exist, or that lack the component a request
// targets, are dropped.
func (s *Sink) Apply(w donburi.World) Stats {
	batch := s.pending
	s.pending = nil

	var stats Stats
	for _, msg := range batch {
		if applyOne(w, msg) {
			stats.Applied++
		} else {
			stats.Dropped++
		}
	}
	s.total.add(stats)
	return stats
}

func applyOne(w donburi.World, msg Message) bool {
	if !w.Valid(msg.Entity) {
		return false
	}
	entry := w.Entry(msg.Entity)

	switch r := msg.Request.(type) {
	case action.AttackRequest:
		marker := components.AttackingData{
			HealthChange: r.HealthChange,
			Range:        r.Range,
			MaxAngle:     r.MaxAngle,
			Knockback:    r.Knockback,
		}
		// Last write wins over any marker hit resolution has not consumed.
		if entry.HasComponent(components.Attacking) {
			components.Attacking.SetValue(entry, marker)
		} else {
			donburi.Add(entry, components.Attacking, &marker)
		}
		return true

	case action.AttackWithdraw:
		if entry.HasComponent(components.Attacking) {
			entry.RemoveComponent(components.Attacking)
		}
		return true

	case action.EnergyGain:
		if !entry.HasComponent(components.Energy) {
			return false
		}
		energy := components.Energy.Get(entry)
		energy.Current = clampAdd(energy.Current, r.Amount, energy.Max)
		return true

	case action.HealthChange:
		if !entry.HasComponent(components.Health) {
			return false
		}
		health := components.Health.Get(entry)
		health.Current = clampAdd(health.Current, r.Amount, health.Max)

		if entry.HasComponent(components.Movement) && r.Knockback != 0 {
			if dir, ok := gamemath.Normalize(r.Direction); ok {
				mv := components.Movement.Get(entry)
				impulse := gamemath.Scale(dir, float64(r.Knockback)*config.Combat.KnockbackScale)
				mv.Knockback = dmath.Vec2{X: mv.Knockback.X + impulse.X, Y: mv.Knockback.Y + impulse.Y}
			}
		}
		return true
	}

	return false
}

// clampAdd adds delta to cur and clamps the result to [0, max].
func clampAdd(cur, delta, max int32) int32 {
	v := int64(cur) + int64(delta)
	if v < 0 {
		return 0
	}
	if v > int64(max) {
		return max
	}
	return int32(v)
}

// Component holds the world's sink as a singleton.
var Component = donburi.NewComponentType[Sink]()

// Get returns the world's sink, or nil when none has been created.
func Get(w donburi.World) *Sink {
	entry, ok := Component.First(w)
	if !ok {
		return nil
	}
	return Component.Get(entry)
}
