// Package assets embeds the arenas shipped with the server.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/automoto/doomerang-actions/shared/leveldata"
)

// ArenasDir is the directory holding arena TMX files, both in the embedded
// filesystem and in an on-disk assets directory.
const ArenasDir = "arenas"

// DefaultArena is loaded when no arena is configured.
const DefaultArena = "duel"

//go:embed arenas/*.tmx
var arenaFS embed.FS

// Arenas returns the arenas in dir when it is set and holds an arenas
// directory, falling back to the embedded arenas otherwise.
func Arenas(dir string) fs.FS {
	if dir != "" {
		if info, err := os.Stat(filepath.Join(dir, ArenasDir)); err == nil && info.IsDir() {
			return os.DirFS(dir)
		}
	}
	return arenaFS
}

// LoadArena loads the named arena from fsys.
func LoadArena(fsys fs.FS, name string) (*leveldata.CollisionData, error) {
	if name == "" {
		name = DefaultArena
	}
	data, err := leveldata.LoadLevel(fsys, ArenasDir, name)
	if err != nil {
		return nil, fmt.Errorf("arena: %w", err)
	}
	return data, nil
}

// ArenaNames lists the arenas available in fsys.
func ArenaNames(fsys fs.FS) ([]string, error) {
	_, names, err := leveldata.LoadAllLevels(fsys, ArenasDir)
	if err != nil {
		return nil, fmt.Errorf("arena: %w", err)
	}
	return names, nil
}
