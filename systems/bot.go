package systems

import (
	"errors"
	"log"
	"math"
	"time"

	"github.com/automoto/doomerang-actions/action"
	"github.com/automoto/doomerang-actions/components"
	cfg "github.com/automoto/doomerang-actions/config"
	"github.com/automoto/doomerang-actions/shared/gamemath"
	"github.com/automoto/doomerang-actions/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

type combatantInfo struct {
	entity   donburi.Entity
	center   dmath.Vec2
	defeated bool
}

// UpdateBots generates input for bot-controlled combatants. Must run before
// UpdateCharacterBehavior so the inputs are seen the same tick.
func UpdateBots(ecs *ecs.ECS) {
	dt := components.Dt(ecs.World)

	// Collect all combatant positions for target selection
	var combatants []combatantInfo
	tags.Combatant.Each(ecs.World, func(e *donburi.Entry) {
		combatants = append(combatants, combatantInfo{
			entity:   e.Entity(),
			center:   components.Object.Get(e).Center(),
			defeated: e.HasComponent(components.Defeated),
		})
	})

	components.Bot.Each(ecs.World, func(e *donburi.Entry) {
		updateBotAI(e, combatants, dt)
	})
}

func updateBotAI(e *donburi.Entry, combatants []combatantInfo, dt time.Duration) {
	bot := components.Bot.Get(e)
	in := components.Input.Get(e)

	if bot.ReactionTimer > 0 {
		bot.ReactionTimer -= dt
	}

	if e.HasComponent(components.Defeated) {
		bot.AIState = components.BotStateIdle
		in.Primary.Press(false)
		in.Move = dmath.Vec2{}
		in.HasAim = false
		return
	}

	self := components.Object.Get(e).Center()
	target, found := findNearestTarget(e.Entity(), self, combatants)
	if !found {
		bot.AIState = components.BotStateIdle
		in.Primary.Press(false)
		in.Move = dmath.Vec2{}
		in.HasAim = false
		return
	}
	bot.Target = target.entity

	toTarget := gamemath.Sub(target.center, self)
	dist := gamemath.Length(toTarget)
	dir, _ := gamemath.Normalize(toTarget)

	updateBotState(bot, dist, healthFraction(e))

	in.Aim = toTarget
	in.HasAim = true
	press := false

	switch bot.AIState {
	case components.BotStateChase:
		in.Move = dir
	case components.BotStateRetreat:
		in.Move = gamemath.Scale(dir, -1)
	case components.BotStateAttack:
		in.Move = dmath.Vec2{}
		// Release between presses so every press is a fresh edge
		if !in.Primary.Pressed && bot.ReactionTimer <= 0 {
			press = true
			bot.ReactionTimer = reactionDelay(bot)
		}
	default:
		in.Move = dmath.Vec2{}
		in.HasAim = false
	}

	in.Primary.Press(press)
	if in.Primary.JustPressed && bot.Combo != nil && components.Character.Get(e).Kind() == action.KindWielding {
		startBotCombo(e, bot.Combo)
	}
}

func startBotCombo(e *donburi.Entry, spec *cfg.ComboSpec) {
	err := EnterComboMelee(e, spec)
	switch {
	case err == nil:
	case errors.Is(err, ErrBusy), errors.Is(err, ErrDefeated):
		// Presses while defeated or mid-action are ignored
	default:
		log.Printf("[bot] Entity %v could not start combo %q: %v", e.Entity(), spec.Name, err)
	}
}

func findNearestTarget(self donburi.Entity, center dmath.Vec2, combatants []combatantInfo) (combatantInfo, bool) {
	var nearest combatantInfo
	found := false
	nearestDist := math.MaxFloat64

	for _, c := range combatants {
		if c.entity == self || c.defeated {
			continue
		}
		dist := gamemath.Length(gamemath.Sub(c.center, center))
		if dist < nearestDist {
			nearestDist = dist
			nearest = c
			found = true
		}
	}

	return nearest, found
}

func updateBotState(bot *components.BotData, dist, health float64) {
	tuning := bot.Tuning()

	switch {
	case health < tuning.RetreatThreshold && dist < tuning.ChaseRange:
		bot.AIState = components.BotStateRetreat
	case dist <= tuning.AttackRange:
		bot.AIState = components.BotStateAttack
	case dist <= tuning.ChaseRange:
		bot.AIState = components.BotStateChase
	default:
		bot.AIState = components.BotStateIdle
	}
}

// reactionDelay is the difficulty's delay plus up to half again of jitter.
func reactionDelay(bot *components.BotData) time.Duration {
	delay := bot.Tuning().ReactionDelay
	if bot.Rand == nil || delay <= 1 {
		return delay
	}
	return delay + time.Duration(bot.Rand.Int63n(int64(delay/2)+1))
}

func healthFraction(e *donburi.Entry) float64 {
	if !e.HasComponent(components.Health) {
		return 1
	}
	hp := components.Health.Get(e)
	if hp.Max <= 0 {
		return 1
	}
	return float64(hp.Current) / float64(hp.Max)
}
