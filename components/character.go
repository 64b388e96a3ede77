package components

import (
	"github.com/automoto/doomerang-actions/action"
	"github.com/yohamta/donburi"
)

// CharacterData holds the action an entity is performing. The state is
// replaced wholesale every tick by the behavior system.
type CharacterData struct {
	State action.State
}

// Kind returns the current action kind, treating an unset state as idle.
func (c *CharacterData) Kind() action.Kind {
	if c.State == nil {
		return action.KindWielding
	}
	return c.State.Kind()
}

var Character = donburi.NewComponentType[CharacterData]()
