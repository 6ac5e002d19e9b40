package components

import "github.com/yohamta/donburi"

// LivesData is a player slot: the lives left and the character currently
// representing it.
type LivesData struct {
	Lives    int
	MaxLives int

	Kind      string
	Character donburi.Entity

	// RespawnTimer counts down to the next spawn while positive.
	RespawnTimer int
	GameOver     bool
}

var Lives = donburi.NewComponentType[LivesData]()
