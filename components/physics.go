package components

import (
	"github.com/automoto/bamboo/shared/gamemath"
	"github.com/automoto/bamboo/shared/terrain"
	"github.com/yohamta/donburi"
)

// BodyData is a point mass resting on, or flying over, the terrain.
// Force accumulates over a tick and is consumed once by the integrator.
type BodyData struct {
	Pos   gamemath.Vec2
	Vel   gamemath.Vec2
	Force gamemath.Vec2

	Mass          float64
	Friction      float64
	LinearDamping float64

	// RunForce is the ratio of the last ground reaction to weight. It scales
	// running force so that steep slopes are harder to climb.
	RunForce float64

	Ground terrain.Probe
}

var Body = donburi.NewComponentType[BodyData]()
