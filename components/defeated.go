package components

import "github.com/yohamta/donburi"

// DefeatedData marks a combatant whose health reached zero.
type DefeatedData struct {
	Tick uint64 // tick on which the combatant fell
}

var Defeated = donburi.NewComponentType[DefeatedData]()
