package systems

import (
	"github.com/automoto/bamboo/components"
	cfg "github.com/automoto/bamboo/config"
	"github.com/automoto/bamboo/shared/gamemath"
	"github.com/automoto/bamboo/systems/factory"
	"github.com/automoto/bamboo/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScenery lets smoking scenery such as campfires give off the
// occasional wisp.
func UpdateScenery(ecs *ecs.ECS) {
	fx := cfg.Effects
	for _, e := range collect(ecs.World, tags.Scenery) {
		scenery := components.Scenery.Get(e)
		if scenery.SmokeChance <= 0 || rng.Intn(scenery.SmokeChance) != 0 {
			continue
		}
		pos := components.Body.Get(e).Pos
		v := gamemath.V(rng.Float64()*2-1, rng.Float64()*2)
		at := gamemath.V(pos.X()+rng.Float64()*20-10, pos.Y()+fx.CampfireSmokeHeight)
		factory.CreateSmokeScaled(ecs, at, v, cfg.DirNone, fx.CampfireSmokeScale)
	}
}
