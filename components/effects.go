package components

import (
	"github.com/automoto/bamboo/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SpriteData is the presentation state of a simple entity.
type SpriteData struct {
	Dir      config.Direction
	Rotation float64
	Scale    float64
	Opacity  float64 // 0-255
}

var Sprite = donburi.NewComponentType[SpriteData]()

// SmokeData is a puff of smoke that drifts, spins, grows and fades.
type SmokeData struct {
	Lifetime int
	Age      int

	Fade *gween.Tween
	Grow *gween.Tween
}

var Smoke = donburi.NewComponentType[SmokeData]()
