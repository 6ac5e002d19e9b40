package components

import (
	"github.com/automoto/bamboo/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CorpseData drives a dead character through falling, lying still and
// sinking into the ground.
type CorpseData struct {
	Kind  string
	Dir   config.Direction
	Timer int

	// Sink is the depth below SinkFrom, the resting height; started once
	// the body has settled.
	Sink     *gween.Tween
	SinkFrom float64
}

var Corpse = donburi.NewComponentType[CorpseData]()
