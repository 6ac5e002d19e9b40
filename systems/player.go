package systems

import (
	"github.com/automoto/bamboo/components"
	cfg "github.com/automoto/bamboo/config"
	"github.com/automoto/bamboo/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayers turns the commands latched on each player character into
// character commands. A tick without any movement lets the character come
// to rest.
func UpdatePlayers(ecs *ecs.ECS) {
	for _, e := range PlayerCharacters(ecs.World) {
		if !e.HasComponent(components.Control) {
			continue
		}
		control := components.Control.Get(e)
		updateSinglePlayer(ecs.World, e, control)
		control.Clear()
	}
}

func updateSinglePlayer(w donburi.World, e *donburi.Entry, control *components.ControlData) {
	pressed := func(a cfg.ActionID) bool { return control.Commands[a] }
	active := false

	switch {
	case pressed(cfg.ActionJump):
		Jump(w, e)
		active = true
	case pressed(cfg.ActionAttack):
		Attack(w, e)
	}

	switch {
	case pressed(cfg.ActionUp):
		active = playerUp(w, e)
	case pressed(cfg.ActionDown):
		active = playerDown(w, e)
	case pressed(cfg.ActionRight):
		RunRight(w, e)
		active = true
	case pressed(cfg.ActionLeft):
		RunLeft(w, e)
		active = true
	}

	if !active {
		Stop(w, e)
	}
}

// playerUp climbs, or grabs a tree within reach.
func playerUp(w donburi.World, e *donburi.Entry) bool {
	if components.Character.Get(e).IsClimbing() {
		ClimbUp(w, e)
		return true
	}
	tree := NearbyClimbable(w, e)
	if tree == nil {
		return false
	}
	Climb(w, e, tree, 1)
	return true
}

func playerDown(w donburi.World, e *donburi.Entry) bool {
	if components.Character.Get(e).IsClimbing() {
		ClimbDown(w, e)
		return true
	}
	if IsOnGround(components.Body.Get(e), groundOf(w)) {
		Crouch(w, e)
		return true
	}
	tree := NearbyClimbable(w, e)
	if tree == nil {
		return false
	}
	Climb(w, e, tree, -1)
	return true
}

// playerCharacterFor returns the live character of a player slot.
func playerCharacterFor(w donburi.World, slot *donburi.Entry) *donburi.Entry {
	lives := components.Lives.Get(slot)
	if !IsAlive(w, lives.Character) {
		return nil
	}
	return w.Entry(lives.Character)
}

// PlayerSlots returns the player slots in creation order.
func PlayerSlots(w donburi.World) []*donburi.Entry {
	var out []*donburi.Entry
	tags.PlayerSlot.Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	sortBySerial(out)
	return out
}
