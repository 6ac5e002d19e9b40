package systems

import (
	"github.com/automoto/bamboo/components"
	cfg "github.com/automoto/bamboo/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func setState(e *donburi.Entry, id cfg.StateID) {
	state := components.State.Get(e)
	if state.CurrentState == id {
		return
	}
	state.PreviousState = state.CurrentState
	state.CurrentState = id
	state.StateTimer = 0
}

// UpdateStates picks the pose each character shows this tick.
func UpdateStates(ecs *ecs.ECS) {
	for _, e := range Characters(ecs.World) {
		components.State.Get(e).StateTimer++
		setState(e, characterPose(ecs.World, e))
	}
}

func isClimbingPose(id cfg.StateID) bool {
	switch id {
	case cfg.Clinging, cfg.ClingingLookingOut, cfg.ClingingLookingAcross,
		cfg.Climbing, cfg.SlidingDown, cfg.LookingOutAttacking, cfg.LookingAcrossAttacking:
		return true
	}
	return false
}

func characterPose(w donburi.World, e *donburi.Entry) cfg.StateID {
	ch := components.Character.Get(e)
	body := components.Body.Get(e)
	current := components.State.Get(e).CurrentState

	if ch.IsAttacking() {
		switch {
		case ch.IsClimbing() && ch.Looking != ch.Dir:
			return cfg.LookingOutAttacking
		case ch.IsClimbing():
			return cfg.LookingAcrossAttacking
		case ch.Crouching:
			return cfg.CrouchingAttacking
		}
		return cfg.Attacking
	}

	if ch.IsClimbing() {
		switch {
		case ch.ClimbRate > 0:
			return cfg.Climbing
		case ch.ClimbRate < 0:
			return cfg.SlidingDown
		case ch.Looking == cfg.DirNone:
			return cfg.Clinging
		case ch.Looking != ch.Dir:
			return cfg.ClingingLookingOut
		}
		return cfg.ClingingLookingAcross
	}

	if ch.Crouching {
		return cfg.Crouching
	}
	if IsOnGround(body, groundOf(w)) {
		if body.Vel.Mag() < kindOf(ch).StandingSpeed {
			return cfg.Standing
		}
		return cfg.Running
	}

	// In the air the last pose holds until the character starts to fall.
	if body.Vel.Y() <= cfg.Body.FallingSpeed {
		return cfg.Falling
	}
	if isClimbingPose(current) || current == cfg.StateNone {
		return cfg.Jumping
	}
	return current
}
