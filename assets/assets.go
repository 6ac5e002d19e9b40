package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/bamboo/shared/leveldata"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	// Levels holds the bundled Tiled maps under levels/.
	Levels fs.FS = levelFS
)

// LevelDir is the directory in Levels holding the maps.
const LevelDir = "levels"

type LevelLoader struct {
	fsys fs.FS
	dir  string
}

// NewLevelLoader returns a loader for the bundled levels.
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: Levels, dir: LevelDir}
}

// NewLevelLoaderFS returns a loader for the maps in dir of fsys.
func NewLevelLoaderFS(fsys fs.FS, dir string) *LevelLoader {
	return &LevelLoader{fsys: fsys, dir: dir}
}

// LoadLevels loads every map, returning them by name along with the names
// in sorted order.
func (l *LevelLoader) LoadLevels() (map[string]*leveldata.LevelData, []string, error) {
	return leveldata.LoadAll(l.fsys, l.dir)
}

// LoadLevel loads the map called name.
func (l *LevelLoader) LoadLevel(name string) (*leveldata.LevelData, error) {
	levels, _, err := l.LoadLevels()
	if err != nil {
		return nil, err
	}
	data, ok := levels[name]
	if !ok {
		return nil, fmt.Errorf("no level named %q", name)
	}
	return data, nil
}

// MustLoadLevels is LoadLevels for levels that ship with the game.
func (l *LevelLoader) MustLoadLevels() (map[string]*leveldata.LevelData, []string) {
	levels, names, err := l.LoadLevels()
	if err != nil {
		panic(err)
	}
	if len(names) == 0 {
		panic("no levels found in " + l.dir)
	}
	return levels, names
}
