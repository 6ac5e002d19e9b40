package factory

import (
	"github.com/automoto/bamboo/archetypes"
	"github.com/automoto/bamboo/components"
	cfg "github.com/automoto/bamboo/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Position: math.Vec2{X: float64(cfg.C.Width) / 2, Y: float64(cfg.C.Height) / 2},
	})
	return camera
}
