package factory

import (
	"math"
	"sort"

	cfg "github.com/automoto/bamboo/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Spawn names a level may use.
const (
	BambooTree    = "BambooTree"
	Torii         = "Torii"
	EatingSamurai = "EatingSamurai"
	Campfire      = "Campfire"
	StandingNinja = "StandingNinja"
	Samurai       = cfg.Samurai
	Ninja         = cfg.Ninja
)

// SpawnOptions tune a spawn beyond its name and position.
type SpawnOptions struct {
	// Height of a tree in segments; zero means the default height.
	Height int
	// Angle a tree leans by, in radians.
	Angle float64
}

type spawnFunc func(ecs *ecs.ECS, x, y float64, opts SpawnOptions) (*donburi.Entry, error)

var spawners = map[string]spawnFunc{
	BambooTree: func(ecs *ecs.ECS, x, y float64, opts SpawnOptions) (*donburi.Entry, error) {
		height := opts.Height
		if height == 0 {
			height = cfg.Tree.DefaultHeight
		}
		return CreateTree(ecs, x, y, height, opts.Angle)
	},
	Torii:         scenery(Torii),
	EatingSamurai: scenery(EatingSamurai),
	Campfire:      scenery(Campfire),
	StandingNinja: opponent(cfg.Ninja),
	Samurai:       opponent(cfg.Samurai),
	Ninja:         opponent(cfg.Ninja),
}

func scenery(kind string) spawnFunc {
	return func(ecs *ecs.ECS, x, y float64, _ SpawnOptions) (*donburi.Entry, error) {
		return CreateScenery(ecs, kind, x, y), nil
	}
}

func opponent(kind string) spawnFunc {
	return func(ecs *ecs.ECS, x, y float64, _ SpawnOptions) (*donburi.Entry, error) {
		return CreateOpponent(ecs, kind, x, y)
	}
}

// SpawnKinds lists the known spawn names in sorted order.
func SpawnKinds() []string {
	names := make([]string, 0, len(spawners))
	for name := range spawners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CheckSpawn reports whether name can be spawned.
func CheckSpawn(name string) error {
	if _, ok := spawners[name]; !ok {
		return &UnknownSpawnTypeError{Name: name}
	}
	return nil
}

// Spawn creates the entity a level names at (x, y). A NaN y places it on
// the ground.
func Spawn(ecs *ecs.ECS, name string, x, y float64, opts SpawnOptions) (*donburi.Entry, error) {
	spawn, ok := spawners[name]
	if !ok {
		return nil, &UnknownSpawnTypeError{Name: name}
	}
	if math.IsNaN(y) {
		y = groundHeight(ecs, x)
	}
	return spawn(ecs, x, y, opts)
}

// SpawnOnGround is Spawn with the entity standing on the terrain.
func SpawnOnGround(ecs *ecs.ECS, name string, x float64, opts SpawnOptions) (*donburi.Entry, error) {
	return Spawn(ecs, name, x, math.NaN(), opts)
}
