package factory

import (
	"math"

	"github.com/automoto/bamboo/archetypes"
	"github.com/automoto/bamboo/components"
	cfg "github.com/automoto/bamboo/config"
	"github.com/automoto/bamboo/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTree plants a bamboo tree of height segments with its base at
// (x, y), leaning by angle radians.
func CreateTree(ecs *ecs.ECS, x, y float64, height int, angle float64) (*donburi.Entry, error) {
	if height <= 0 {
		return nil, &ConfigError{Field: "tree height", Value: height}
	}

	tree := archetypes.Tree.Spawn(ecs)
	data := components.ClimbableData{
		Serial:    nextSerial(ecs),
		Height:    height,
		Base:      gamemath.V(x, y),
		BaseAngle: angle,
		Phase:     cfg.Tree.WindPhasePerX * x,
		Foliage:   foliage(height),
	}
	data.Rebuild()
	data.LayoutFoliage()
	components.Climbable.SetValue(tree, data)

	if level := levelOf(ecs); level != nil {
		if err := level.IndexTree(tree.Entity(), treeBounds(x, y, height, angle)); err != nil {
			ecs.World.Remove(tree.Entity())
			return nil, err
		}
	}
	return tree, nil
}

// foliage scatters leaves up the trunk, denser towards the top, and puts a
// crown on it.
func foliage(height int) []components.Foliage {
	var leaves []components.Foliage
	for i := 0; i < height; i++ {
		prob := float64(height - i)
		for _, side := range []int{components.LeafLeft, components.LeafRight} {
			if rng.Float64()*prob < 1 {
				leaves = append(leaves, components.Foliage{Segment: i, Side: side})
			}
		}
	}
	return append(leaves, components.Foliage{Segment: height, Side: components.Crown})
}

// treeBounds covers everything the trunk can reach while swaying.
func treeBounds(x, y float64, height int, angle float64) gamemath.Rect {
	tall := float64(height+1) * cfg.Tree.PieceHeight
	lean := math.Min(math.Abs(angle)+cfg.Tree.SwayPrimary+cfg.Tree.SwaySecondary, math.Pi/2)
	margin := cfg.Tree.IndexMargin + math.Sin(lean)*tall
	return gamemath.Rect{
		L: x - margin,
		B: y - cfg.Tree.PieceHeight,
		W: 2 * margin,
		H: tall + cfg.Tree.PieceHeight,
	}
}
