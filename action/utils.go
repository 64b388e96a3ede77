package action

import (
	"math"
	"time"

	"github.com/automoto/doomerang-actions/shared/gamemath"
)

const maxDuration = time.Duration(math.MaxInt64)

// handleOrientation turns the facing toward the aim direction at rate
// (fraction of the remaining angle per second). A missing or zero aim holds
// the current facing.
func handleOrientation(data *JoinData, update *Update, rate float64) {
	if data.Inputs.Aim == nil {
		return
	}
	target, ok := gamemath.Normalize(*data.Inputs.Aim)
	if !ok {
		return
	}
	t := math.Min(1, rate*data.Dt.Seconds())
	update.Orientation = gamemath.TurnToward(data.Orientation, target, t)
}

// handleMove sets the movement intent to the move input, capped to unit
// length and scaled by efficiency.
func handleMove(data *JoinData, update *Update, efficiency float64) {
	update.MoveIntent = gamemath.Scale(gamemath.ClampLength(data.Inputs.Move, 1), efficiency)
}

// advanceTimer adds dt to a phase timer. A sum past the representable range
// resets to zero; negative deltas are ignored.
func advanceTimer(timer, dt time.Duration) time.Duration {
	if dt <= 0 {
		return timer
	}
	if timer > maxDuration-dt {
		return 0
	}
	return timer + dt
}

// saturatingAdd adds two non-negative thresholds, capping at the largest
// duration.
func saturatingAdd(a, b time.Duration) time.Duration {
	if b > 0 && a > maxDuration-b {
		return maxDuration
	}
	return a + b
}

// narrow converts a clamped 64-bit quantity to int32 without wrapping.
func narrow(v uint64) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(v)
}
