package components

import (
	"github.com/yohamta/donburi"
)

// ProjectileData is a thrown shuriken.
type ProjectileData struct {
	Owner  donburi.Entity
	Damage float64

	// RestTimer counts ticks spent without moving.
	RestTimer int
}

var Projectile = donburi.NewComponentType[ProjectileData]()
