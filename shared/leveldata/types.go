// Package leveldata provides TMX level parsing. It has no dependencies on
// ebitengine, donburi, or resolv; pure data only.
package leveldata

import (
	"errors"

	"github.com/automoto/bamboo/shared/gamemath"
)

// ErrNoGround is returned when a map has no Ground object to walk on.
var ErrNoGround = errors.New("no Ground object found")

// LevelData holds everything a level needs to be built: its extent, the
// walkable surface and the objects to spawn. Coordinates are y-up.
type LevelData struct {
	Name   string
	Width  float64
	Height float64

	// Ground is the walkable surface, left to right.
	Ground []gamemath.Vec2

	Spawns []Spawn
}

// Spawn is a named object placed in the level.
type Spawn struct {
	Name string
	X, Y float64

	// OnGround spawns ignore Y and sit on the terrain.
	OnGround bool

	// Height in segments, for trees. Zero means the default.
	Height int
}
