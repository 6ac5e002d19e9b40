package components

import (
	"github.com/automoto/bamboo/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CharacterDiedEvent is published when a character's health runs out.
type CharacterDiedEvent struct {
	Entity donburi.Entity
	Kind   string
	Pos    gamemath.Vec2
	Player bool
	Slot   donburi.Entity
}

var CharacterDied = events.NewEventType[CharacterDiedEvent]()
