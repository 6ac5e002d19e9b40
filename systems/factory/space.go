package factory

import (
	"github.com/automoto/bamboo/archetypes"
	"github.com/automoto/bamboo/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the collision space for a level of the given size,
// padded on every side.
func CreateSpace(ecs *ecs.ECS, width, height float64, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	w := int(width) + 2*components.SpacePad
	h := int(height) + 2*components.SpacePad
	components.Space.Set(space, resolv.NewSpace(w, h, cellSize, cellSize))
	return space
}

func spaceOf(ecs *ecs.ECS) *resolv.Space {
	if entry, ok := components.Space.First(ecs.World); ok {
		return components.Space.Get(entry)
	}
	return nil
}
