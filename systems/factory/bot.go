package factory

import (
	"math/rand"

	"github.com/automoto/doomerang-actions/components"
	cfg "github.com/automoto/doomerang-actions/config"
	"github.com/automoto/doomerang-actions/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBot spawns a combatant controlled by the bot system. Bots seeded
// alike make the same decisions.
func CreateBot(ecs *ecs.ECS, x, y float64, difficulty cfg.BotDifficulty, combo *cfg.ComboSpec, seed int64, extra ...donburi.IComponentType) *donburi.Entry {
	bot := CreateCombatant(ecs, x, y, append([]donburi.IComponentType{tags.Dummy, components.Bot}, extra...)...)
	components.Bot.SetValue(bot, components.BotData{
		Difficulty:    difficulty,
		Combo:         combo,
		ReactionTimer: cfg.Bot.Difficulties[difficulty].ReactionDelay,
		Rand:          rand.New(rand.NewSource(seed)),
	})
	return bot
}
