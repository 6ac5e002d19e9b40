package components

import (
	"github.com/yohamta/donburi"
)

// PlayerData marks a character driven by a player slot.
type PlayerData struct {
	Slot donburi.Entity
}

var Player = donburi.NewComponentType[PlayerData]()
