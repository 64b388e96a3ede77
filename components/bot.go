package components

import (
	"math/rand"
	"time"

	cfg "github.com/automoto/doomerang-actions/config"
	"github.com/yohamta/donburi"
)

type BotState int

const (
	BotStateIdle BotState = iota
	BotStateChase
	BotStateAttack
	BotStateRetreat
)

func (s BotState) String() string {
	switch s {
	case BotStateChase:
		return "chase"
	case BotStateAttack:
		return "attack"
	case BotStateRetreat:
		return "retreat"
	default:
		return "idle"
	}
}

// BotData drives a combatant's input from simple target-seeking rules.
type BotData struct {
	Difficulty cfg.BotDifficulty
	Combo      *cfg.ComboSpec // entered on every fresh press while idle

	AIState BotState
	Target  donburi.Entity

	// Counts down to the next allowed press
	ReactionTimer time.Duration

	Rand *rand.Rand
}

// Tuning returns the difficulty's tuning values.
func (b *BotData) Tuning() cfg.BotDifficultyConfig {
	return cfg.Bot.Difficulties[b.Difficulty]
}

var Bot = donburi.NewComponentType[BotData]()
