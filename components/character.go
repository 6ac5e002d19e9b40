package components

import (
	"github.com/automoto/bamboo/config"
	"github.com/automoto/bamboo/shared/gamemath"
	"github.com/yohamta/donburi"
)

// PendingAttack is a melee strike captured when the attack command was
// issued and resolved once the tick's movement has settled.
type PendingAttack struct {
	Offset gamemath.Vec2 // strike point relative to the attacker's feet
	Facing config.Direction
	Force  gamemath.Vec2
}

type CharacterData struct {
	Serial int
	Kind   string

	Dir     config.Direction
	Looking config.Direction // only used when climbing trees

	Crouching   bool
	AttackTimer int

	// Tree the character is climbing. The tree's climber list is
	// authoritative; this is a handle into it.
	Climbing  donburi.Entity
	ClimbRate float64

	Rotation float64
	Player   bool
	Dying    bool

	Attack *PendingAttack
}

// IsClimbing reports whether the character holds a tree handle.
func (c *CharacterData) IsClimbing() bool {
	return c.Climbing != donburi.Null
}

func (c *CharacterData) IsAttacking() bool {
	return c.AttackTimer > config.Combat.AttackRate
}

func (c *CharacterData) CanAttack() bool {
	return c.AttackTimer == 0
}

var Character = donburi.NewComponentType[CharacterData]()
