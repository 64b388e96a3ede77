package systems

import (
	"log"
	"runtime"
	"time"

	"github.com/automoto/doomerang-actions/action"
	"github.com/automoto/doomerang-actions/components"
	cfg "github.com/automoto/doomerang-actions/config"
	"github.com/automoto/doomerang-actions/mutation"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
	"golang.org/x/sync/errgroup"
)

var behaviorQuery = query.NewQuery(filter.Contains(
	components.Character,
	components.Input,
	components.Movement,
))

type behaviorJob struct {
	entry *donburi.Entry
	state action.State
	data  action.JoinData
}

// UpdateCharacterBehavior advances every combatant's action by one tick.
// All read views are captured before any action runs, actions run in
// parallel, and results are written back in query order once every action
// has finished, so no entity sees another's result from the same tick.
func UpdateCharacterBehavior(ecs *ecs.ECS) {
	sink := mutation.Get(ecs.World)
	if sink == nil {
		return
	}
	dt := components.Dt(ecs.World)

	var jobs []behaviorJob
	behaviorQuery.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Defeated) {
			return
		}
		jobs = append(jobs, snapshotBehavior(e, dt))
	})
	if len(jobs) == 0 {
		return
	}

	results := make([]action.Update, len(jobs))
	var g errgroup.Group
	g.SetLimit(behaviorWorkers())
	for i := range jobs {
		g.Go(func() error {
			results[i] = jobs[i].state.Behavior(&jobs[i].data)
			return nil
		})
	}
	_ = g.Wait()

	for i, job := range jobs {
		writeBehavior(sink, job.entry, results[i])
	}
}

func snapshotBehavior(e *donburi.Entry, dt time.Duration) behaviorJob {
	character := components.Character.Get(e)
	input := components.Input.Get(e)
	movement := components.Movement.Get(e)

	state := character.State
	if state == nil {
		state = action.Wielding{}
	}

	data := action.JoinData{
		Dt:          dt,
		Inputs:      input.Snapshot(),
		Orientation: movement.Orientation,
	}
	if e.HasComponent(components.Attacking) {
		data.Attack = components.Attacking.Get(e).Report()
	}
	return behaviorJob{entry: e, state: state, data: data}
}

func writeBehavior(sink *mutation.Sink, e *donburi.Entry, u action.Update) {
	if u.Violation != nil {
		log.Printf("[action] Entity %v forced to wielding: %v", e.Entity(), u.Violation)
	}

	components.Character.Get(e).State = u.State

	movement := components.Movement.Get(e)
	movement.Orientation = u.Orientation
	movement.Intent = u.MoveIntent

	// Button edges are consumed by the tick that read them.
	input := components.Input.Get(e)
	input.Primary.JustPressed = false
	input.Primary.JustReleased = false

	sink.Push(e.Entity(), u.Requests...)
}

func behaviorWorkers() int {
	if cfg.Sim.Workers > 0 {
		return cfg.Sim.Workers
	}
	return runtime.GOMAXPROCS(0)
}
