package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the world point at the centre of the screen.
type CameraData struct {
	Position   math.Vec2
	LookAheadX float64 // smoothed offset in the direction of travel
}

var Camera = donburi.NewComponentType[CameraData]()

type ScreenShakeData struct {
	Intensity float64
	Duration  int
	Elapsed   int
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
