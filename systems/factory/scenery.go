package factory

import (
	"github.com/automoto/bamboo/archetypes"
	"github.com/automoto/bamboo/components"
	cfg "github.com/automoto/bamboo/config"
	"github.com/automoto/bamboo/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateScenery places a decoration. Campfires smoke.
func CreateScenery(ecs *ecs.ECS, kind string, x, y float64) *donburi.Entry {
	scenery := archetypes.Scenery.Spawn(ecs)

	components.Body.SetValue(scenery, components.BodyData{Pos: gamemath.V(x, y), Mass: 1})
	data := components.SceneryData{Kind: kind}
	if kind == Campfire {
		data.SmokeChance = cfg.Effects.CampfireChance
	}
	components.Scenery.SetValue(scenery, data)
	return scenery
}
