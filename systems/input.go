package systems

import (
	"github.com/automoto/bamboo/archetypes"
	"github.com/automoto/bamboo/components"
	cfg "github.com/automoto/bamboo/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// held actions are latched every tick they are down; the others only on
// the tick they are pressed
var heldActions = []cfg.ActionID{cfg.ActionLeft, cfg.ActionRight, cfg.ActionUp, cfg.ActionDown}
var pressedActions = []cfg.ActionID{cfg.ActionJump, cfg.ActionAttack}

// UpdateInput polls the keyboard and gamepads and latches the result onto
// the player characters' controls.
// Must run BEFORE UpdatePlayers in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	LatchControls(ecs, input)
}

// LatchControls presses the commands input asks for on every player
// character.
func LatchControls(ecs *ecs.ECS, input *components.InputData) {
	for _, e := range PlayerCharacters(ecs.World) {
		if !e.HasComponent(components.Control) {
			continue
		}
		control := components.Control.Get(e)
		for _, a := range heldActions {
			if input.Current[a] {
				control.Press(a)
			}
		}
		for _, a := range pressedActions {
			if input.JustPressed(a) {
				control.Press(a)
			}
		}
	}
}

// GetOrCreateInput returns the polled input state, creating it on first
// use.
func GetOrCreateInput(ecs *ecs.ECS) *components.InputData {
	if entry, ok := components.Input.First(ecs.World); ok {
		return components.Input.Get(entry)
	}
	entry := archetypes.Input.Spawn(ecs)
	return components.Input.Get(entry)
}
