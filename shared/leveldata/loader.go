package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/bamboo/shared/gamemath"
	"github.com/automoto/bamboo/shared/terrain"
	"github.com/lafriks/go-tiled"
)

const (
	groundName = "Ground"
	spawnGroup = "Spawns"
)

// Load parses a TMX file and returns its level data. It takes an fs.FS so
// callers can pass embed.FS (client) or os.DirFS (runner).
//
// Tiled's y axis points down; the returned geometry is mirrored about the
// map's horizontal midline so y points up.
func Load(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &LevelData{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}
	mirror, err := gamemath.NewPlane(gamemath.V(0, 1), data.Height*0.5)
	if err != nil {
		return nil, err
	}

	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			if objectKind(o) == groundName && data.Ground == nil {
				ground, err := groundPoints(o, mirror)
				if err != nil {
					return nil, fmt.Errorf("load TMX %s: ground object %d: %w", tmxPath, o.ID, err)
				}
				data.Ground = ground
				continue
			}
			if og.Name != spawnGroup {
				continue
			}
			data.Spawns = append(data.Spawns, Spawn{
				Name:     objectKind(o),
				X:        o.X,
				Y:        data.Height - o.Y,
				OnGround: o.Properties.GetBool("onground"),
				Height:   o.Properties.GetInt("height"),
			})
		}
	}

	if len(data.Ground) < 2 {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoGround)
	}

	// Sort spawns left-to-right for a stable spawn order
	sort.SliceStable(data.Spawns, func(i, j int) bool {
		return data.Spawns[i].X < data.Spawns[j].X
	})

	return data, nil
}

// objectKind names a TMX object by its class, falling back to its type
// (older Tiled) and then its name.
func objectKind(o *tiled.Object) string {
	switch {
	case o.Class != "":
		return o.Class
	case o.Type != "":
		return o.Type
	default:
		return o.Name
	}
}

// groundPoints returns the walkable surface of a Ground object in y-up
// coordinates. A polyline is walked as drawn; for a polygon only the
// upward-facing edges count.
func groundPoints(o *tiled.Object, mirror gamemath.Plane) ([]gamemath.Vec2, error) {
	var pts []gamemath.Vec2
	switch {
	case len(o.PolyLines) > 0 && o.PolyLines[0].Points != nil:
		for _, p := range *o.PolyLines[0].Points {
			pts = append(pts, mirror.Mirror(gamemath.V(o.X+p.X, o.Y+p.Y)))
		}
		if len(pts) < 2 {
			return nil, ErrNoGround
		}
		return pts, nil
	case len(o.Polygons) > 0 && o.Polygons[0].Points != nil:
		for _, p := range *o.Polygons[0].Points {
			pts = append(pts, gamemath.V(o.X+p.X, o.Y+p.Y))
		}
	}
	if len(pts) < 3 {
		return nil, ErrNoGround
	}
	surface, err := terrain.SurfaceFromPolygon(gamemath.NewPolygon(pts...).Mirror(mirror))
	if err != nil {
		return nil, err
	}
	return surface.Points(), nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys, loads each, and
// returns a map keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*LevelData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*LevelData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := Load(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
