package tags

import "github.com/yohamta/donburi"

var (
	Combatant = donburi.NewTag().SetName("Combatant")
	Player    = donburi.NewTag().SetName("Player")
	Dummy     = donburi.NewTag().SetName("Dummy")
	Wall      = donburi.NewTag().SetName("Wall")
)

// Resolv tags for space queries
const (
	ResolvSolid     = "solid"
	ResolvCombatant = "combatant"
)
