package components

import "github.com/yohamta/donburi"

// SceneryData is a static decoration placed by the level.
type SceneryData struct {
	Kind string

	// SmokeChance is one in N ticks for emitting smoke; zero for none.
	SmokeChance int
}

var Scenery = donburi.NewComponentType[SceneryData]()
