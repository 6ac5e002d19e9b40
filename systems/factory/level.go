package factory

import (
	"github.com/automoto/bamboo/archetypes"
	"github.com/automoto/bamboo/components"
	cfg "github.com/automoto/bamboo/config"
	"github.com/automoto/bamboo/shared/terrain"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel creates the level-wide state: terrain, tree index and the
// removal queue.
func CreateLevel(ecs *ecs.ECS, width, height float64, ground terrain.HeightField) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, components.NewLevelData(width, height, ground))
	return level
}

func levelOf(ecs *ecs.ECS) *components.LevelData {
	if entry, ok := components.Level.First(ecs.World); ok {
		return components.Level.Get(entry)
	}
	return nil
}

func nextSerial(ecs *ecs.ECS) int {
	if level := levelOf(ecs); level != nil {
		return level.Serial()
	}
	return 0
}

// groundHeight is the terrain height at x, or the default ground height
// outside a level.
func groundHeight(ecs *ecs.ECS, x float64) float64 {
	if level := levelOf(ecs); level != nil && level.Ground != nil {
		return level.Ground.HeightAt(x)
	}
	return cfg.Level.GroundHeight
}
