package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the timebase singleton: the duration of the tick being
// simulated plus running totals.
type ClockData struct {
	Dt      time.Duration
	Tick    uint64
	Elapsed time.Duration
}

var Clock = donburi.NewComponentType[ClockData]()

// Dt returns the current tick duration, or zero when no clock exists.
func Dt(w donburi.World) time.Duration {
	entry, ok := Clock.First(w)
	if !ok {
		return 0
	}
	return Clock.Get(entry).Dt
}
