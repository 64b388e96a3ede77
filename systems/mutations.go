package systems

import (
	"github.com/automoto/doomerang-actions/mutation"
	"github.com/yohamta/donburi/ecs"
)

// ApplyMutations flushes the sink. It runs after the behavior barrier and
// again after hit resolution, so everything requested in a tick is visible
// before the next one starts.
func ApplyMutations(ecs *ecs.ECS) {
	if sink := mutation.Get(ecs.World); sink != nil {
		sink.Apply(ecs.World)
	}
}
