package action

import (
	"time"

	"github.com/automoto/doomerang-actions/config"
)

// Phase is the timing phase of a combo stage.
type Phase uint8

const (
	PhaseBuildup Phase = iota
	PhaseActiveHit
	PhaseRecovery
	PhaseChainWindow
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseBuildup:
		return "buildup"
	case PhaseActiveHit:
		return "active_hit"
	case PhaseRecovery:
		return "recovery"
	case PhaseChainWindow:
		return "chain_window"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// ClassifyPhase maps a stage's exhaustion flag and timer to exactly one
// phase. window is the combo's chain window width.
func ClassifyPhase(stage *config.StageSpec, window time.Duration, exhausted bool, timer time.Duration) Phase {
	switch {
	case !exhausted && timer < stage.BuildupDuration:
		return PhaseBuildup
	case !exhausted:
		return PhaseActiveHit
	case timer < stage.RecoverDuration:
		return PhaseRecovery
	case timer < saturatingAdd(stage.RecoverDuration, window):
		return PhaseChainWindow
	default:
		return PhaseDone
	}
}
