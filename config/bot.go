package config

import "time"

// BotDifficulty affects reaction time and decision quality
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

var botDifficultyNames = map[string]BotDifficulty{
	"easy":   BotDifficultyEasy,
	"normal": BotDifficultyNormal,
	"hard":   BotDifficultyHard,
}

// ParseBotDifficulty maps a difficulty name to its value.
func ParseBotDifficulty(name string) (BotDifficulty, bool) {
	d, ok := botDifficultyNames[name]
	return d, ok
}

// BotDifficultyConfig holds tuning values for bot behavior at a specific difficulty
type BotDifficultyConfig struct {
	ReactionDelay    time.Duration // Minimum time between primary presses
	AttackRange      float64       // Centre distance to start attacking
	ChaseRange       float64       // Centre distance to start chasing
	RetreatThreshold float64       // Health fraction to start retreating
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig

	// Seed for the first bot; each later bot adds one
	Seed int64
}

// Bot holds bot AI configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay:    500 * time.Millisecond,
				AttackRange:      30.0,
				ChaseRange:       150.0,
				RetreatThreshold: 0.2, // Retreat at 20% health
			},
			BotDifficultyNormal: {
				ReactionDelay:    250 * time.Millisecond,
				AttackRange:      36.0,
				ChaseRange:       200.0,
				RetreatThreshold: 0.3,
			},
			BotDifficultyHard: {
				ReactionDelay:    80 * time.Millisecond, // Near-instant reaction
				AttackRange:      40.0,
				ChaseRange:       250.0,
				RetreatThreshold: 0.15,
			},
		},
		Seed: 42,
	}
}
