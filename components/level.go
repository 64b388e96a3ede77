package components

import (
	"github.com/automoto/doomerang-actions/shared/leveldata"
	"github.com/yohamta/donburi"
)

// LevelData describes the loaded arena.
type LevelData struct {
	Name      string
	Width     int
	Height    int
	Spawns    []leveldata.SpawnPoint
	NextSpawn int
}

// TakeSpawn returns the next spawn point, cycling through the list, or the
// arena centre when the arena has none.
func (l *LevelData) TakeSpawn() (x, y float64) {
	if len(l.Spawns) == 0 {
		return float64(l.Width) / 2, float64(l.Height) / 2
	}
	sp := l.Spawns[l.NextSpawn%len(l.Spawns)]
	l.NextSpawn++
	return sp.X, sp.Y
}

var Level = donburi.NewComponentType[LevelData]()
