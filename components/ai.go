package components

import (
	"github.com/automoto/bamboo/config"
	"github.com/yohamta/donburi"
)

// AIData is the state of an autonomous opponent.
type AIData struct {
	Target      donburi.Entity
	AttackTimer int

	Strategy     config.StrategyID
	StrategyTime int

	TargetTree donburi.Entity
}

var AI = donburi.NewComponentType[AIData]()
