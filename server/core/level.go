package core

import (
	"fmt"

	"github.com/automoto/doomerang-actions/assets"
	"github.com/automoto/doomerang-actions/shared/leveldata"
)

// LoadArena loads the named arena, preferring arenasDir/arenas on disk over
// the embedded arenas.
func LoadArena(assetsDir, name string) (string, *leveldata.CollisionData, error) {
	if name == "" {
		name = assets.DefaultArena
	}
	data, err := assets.LoadArena(assets.Arenas(assetsDir), name)
	if err != nil {
		return "", nil, fmt.Errorf("load arena %s: %w", name, err)
	}
	return name, data, nil
}
