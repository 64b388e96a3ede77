package action

import "github.com/automoto/doomerang-actions/config"

// Wielding is the idle action: the entity holds its weapon, turns and moves
// freely, and requests nothing.
type Wielding struct{}

func (Wielding) Kind() Kind {
	return KindWielding
}

func (w Wielding) Behavior(data *JoinData) Update {
	update := newUpdate(data, w)
	handleOrientation(data, &update, config.Combat.WieldTurnRate)
	handleMove(data, &update, config.Combat.WieldMoveEfficiency)
	return update
}
