package factory

import (
	"github.com/automoto/bamboo/archetypes"
	"github.com/automoto/bamboo/components"
	cfg "github.com/automoto/bamboo/config"
	"github.com/automoto/bamboo/shared/gamemath"
	"github.com/automoto/bamboo/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewBody returns a body at rest at pos with its weight already acting on
// it.
func NewBody(pos gamemath.Vec2, mass, friction, damping float64) (components.BodyData, error) {
	if mass <= 0 {
		return components.BodyData{}, &ConfigError{Field: "mass", Value: mass}
	}
	if friction < 0 {
		return components.BodyData{}, &ConfigError{Field: "friction", Value: friction}
	}
	return components.BodyData{
		Pos:           pos,
		Force:         cfg.Physics.Gravity.Vec().Scale(mass),
		Mass:          mass,
		Friction:      friction,
		LinearDamping: damping,
	}, nil
}

// body builds an effect's body. LoadTuning rejects masses and frictions a
// body cannot have, so an error here is a broken invariant.
func body(pos, v gamemath.Vec2, mass, friction float64) components.BodyData {
	b, err := NewBody(pos, mass, friction, 0)
	if err != nil {
		panic(err)
	}
	b.Vel = v
	return b
}

// CreateCharacter spawns a character of the given kind standing at (x, y).
func CreateCharacter(ecs *ecs.ECS, kind string, x, y float64, extra ...donburi.IComponentType) (*donburi.Entry, error) {
	kc, ok := cfg.Characters[kind]
	if !ok {
		return nil, &ConfigError{Field: "character kind", Value: kind}
	}
	body, err := NewBody(gamemath.V(x, y), kc.Mass, kc.Friction, kc.LinearDamping)
	if err != nil {
		return nil, err
	}
	if kc.MaxHealth <= 0 {
		return nil, &ConfigError{Field: "max health", Value: kc.MaxHealth}
	}

	character := archetypes.Character.Spawn(ecs, extra...)

	size := cfg.Body.Standing
	bounds := gamemath.Rect{L: x - size.W/2, B: y, W: size.W, H: size.H}
	obj := resolv.NewObject(bounds.L+components.SpacePad, bounds.B+components.SpacePad, size.W, size.H, tags.ResolvCharacter)
	obj.Data = character
	components.Object.SetValue(character, components.ObjectData{Object: obj})
	if space := spaceOf(ecs); space != nil {
		space.Add(obj)
	}

	components.Character.SetValue(character, components.CharacterData{
		Serial:   nextSerial(ecs),
		Kind:     kind,
		Dir:      cfg.DirRight,
		Climbing: donburi.Null,
	})
	components.Body.SetValue(character, body)
	components.Health.SetValue(character, components.HealthData{
		Current: kc.MaxHealth,
		Max:     kc.MaxHealth,
	})
	components.State.SetValue(character, components.StateData{
		CurrentState:  cfg.Standing,
		PreviousState: cfg.StateNone,
	})

	if kc.SpawnSmoke {
		CreatePuffOfSmoke(ecs, bounds)
	}
	return character, nil
}

// CreateOpponent spawns a character driven by the AI.
func CreateOpponent(ecs *ecs.ECS, kind string, x, y float64) (*donburi.Entry, error) {
	e, err := CreateCharacter(ecs, kind, x, y, tags.Enemy, components.AI)
	if err != nil {
		return nil, err
	}
	components.AI.SetValue(e, components.AIData{
		Target:     donburi.Null,
		TargetTree: donburi.Null,
	})
	return e, nil
}

// CreatePlayerSlot creates a player with a number of lives but no character
// yet.
func CreatePlayerSlot(ecs *ecs.ECS, kind string, lives int) *donburi.Entry {
	slot := archetypes.PlayerSlot.Spawn(ecs)
	components.Lives.SetValue(slot, components.LivesData{
		Lives:     lives,
		MaxLives:  lives,
		Kind:      kind,
		Character: donburi.Null,
	})
	return slot
}

// CreatePlayerCharacter spends one of the slot's lives on a new character
// standing on the ground at x.
func CreatePlayerCharacter(ecs *ecs.ECS, slot *donburi.Entry, x float64) (*donburi.Entry, error) {
	lives := components.Lives.Get(slot)
	if lives.Lives <= 0 {
		return nil, &ConfigError{Field: "lives", Value: lives.Lives}
	}

	e, err := CreateCharacter(ecs, lives.Kind, x, groundHeight(ecs, x), tags.Player, components.Player, components.Control)
	if err != nil {
		return nil, err
	}
	components.Character.Get(e).Player = true
	components.Player.SetValue(e, components.PlayerData{Slot: slot.Entity()})

	lives.Lives--
	lives.Character = e.Entity()
	lives.RespawnTimer = 0
	return e, nil
}
