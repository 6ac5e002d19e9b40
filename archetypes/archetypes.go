package archetypes

import (
	"github.com/automoto/bamboo/components"
	cfg "github.com/automoto/bamboo/config"
	"github.com/automoto/bamboo/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Level = newArchetype(
		components.Level,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Input = newArchetype(
		components.Input,
	)
	PlayerSlot = newArchetype(
		tags.PlayerSlot,
		components.Lives,
	)
	Character = newArchetype(
		tags.Character,
		components.Character,
		components.Body,
		components.Health,
		components.State,
		components.Object,
	)
	Tree = newArchetype(
		tags.Tree,
		components.Climbable,
	)
	BloodSpray = newArchetype(
		tags.Debris,
		components.Body,
		components.Sprite,
	)
	Corpse = newArchetype(
		tags.Corpse,
		components.Corpse,
		components.Body,
		components.Sprite,
		components.State,
	)
	Smoke = newArchetype(
		tags.Smoke,
		components.Smoke,
		components.Body,
		components.Sprite,
	)
	Shuriken = newArchetype(
		tags.Shuriken,
		components.Projectile,
		components.Body,
		components.Sprite,
	)
	Scenery = newArchetype(
		tags.Scenery,
		components.Scenery,
		components.Body,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
