package config

import "github.com/yohamta/donburi/ecs"

// Default is the ecs layer every simulated entity lives on.
const Default ecs.LayerID = 0

// SimConfig contains simulation scheduling values
type SimConfig struct {
	// Ticks per second of the fixed-rate loop
	TickRate int

	// Maximum number of behavior evaluations running in parallel (0 = GOMAXPROCS)
	Workers int

	// Resolv broadphase cell size in world units
	SpaceCellSize int

	// Arena dimensions used when no level is loaded
	ArenaWidth  int
	ArenaHeight int
}

// CombatConfig contains action and combat tuning values
type CombatConfig struct {
	// Orientation turn rate (per second) and move efficiency while in a combo
	ComboTurnRate       float64
	ComboMoveEfficiency float64

	// Orientation turn rate and move efficiency while wielding (idle)
	WieldTurnRate       float64
	WieldMoveEfficiency float64

	// World units per second at full move intent
	MoveSpeed float64

	// Knockback velocity lost per second
	KnockbackDecay float64

	// Knockback impulse multiplier applied to a stage's knockback value
	KnockbackScale float64

	// Combo entered when a combatant presses primary while idle
	DefaultCombo string
}

// CombatantConfig contains the default vitals and body of a spawned combatant
type CombatantConfig struct {
	Health    int32
	Energy    int32
	MaxEnergy int32

	CollisionWidth  float64
	CollisionHeight float64
}

// Global configuration instances
var Sim SimConfig
var Combat CombatConfig
var Combatant CombatantConfig

func init() {
	Sim = SimConfig{
		TickRate:      30,
		Workers:       0,
		SpaceCellSize: 16,
		ArenaWidth:    640,
		ArenaHeight:   360,
	}

	Combat = CombatConfig{
		ComboTurnRate:       5.0,
		ComboMoveEfficiency: 0.8,
		WieldTurnRate:       10.0,
		WieldMoveEfficiency: 1.0,
		MoveSpeed:           90.0,
		KnockbackDecay:      240.0,
		KnockbackScale:      20.0,
		DefaultCombo:        "sword",
	}

	Combatant = CombatantConfig{
		Health:    1000,
		Energy:    0,
		MaxEnergy: 1000,

		CollisionWidth:  16,
		CollisionHeight: 16,
	}
}
