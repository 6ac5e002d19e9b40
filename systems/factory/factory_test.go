package factory

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/bamboo/components"
	cfg "github.com/automoto/bamboo/config"
	"github.com/automoto/bamboo/shared/gamemath"
	"github.com/automoto/bamboo/shared/terrain"
	"github.com/automoto/bamboo/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	UseRand(rand.New(rand.NewSource(1)))
	e := ecs.NewECS(donburi.NewWorld())
	CreateLevel(e, 3200, 768, terrain.Flat{Height: 60})
	CreateSpace(e, 3200, 768, 64)
	return e
}

func TestSpawnUnknownName(t *testing.T) {
	e := newTestECS(t)

	_, err := Spawn(e, "Dragon", 100, 60, SpawnOptions{})
	var serr *UnknownSpawnTypeError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "Dragon", serr.Name)
	assert.ErrorAs(t, CheckSpawn("Dragon"), &serr)
	assert.NoError(t, CheckSpawn(BambooTree))
}

func TestSpawnKinds(t *testing.T) {
	kinds := SpawnKinds()
	assert.IsIncreasing(t, kinds)
	assert.Contains(t, kinds, StandingNinja)
	assert.Contains(t, kinds, Campfire)
	for _, k := range kinds {
		assert.NoError(t, CheckSpawn(k))
	}
}

func TestCreateTreeRejectsBadHeight(t *testing.T) {
	e := newTestECS(t)

	_, err := CreateTree(e, 100, 60, 0, 0)
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "tree height", cerr.Field)

	_, err = Spawn(e, BambooTree, 100, 60, SpawnOptions{Height: -2})
	assert.ErrorAs(t, err, &cerr)
}

func TestSpawnTreeDefaults(t *testing.T) {
	e := newTestECS(t)

	entry, err := SpawnOnGround(e, BambooTree, 400, SpawnOptions{})
	require.NoError(t, err)
	tree := components.Climbable.Get(entry)
	assert.Equal(t, cfg.Tree.DefaultHeight, tree.Height)
	assert.Equal(t, gamemath.V(400, 60), tree.Base)
	assert.InDelta(t, 60+float64(tree.Height)*cfg.Tree.PieceHeight, tree.Top().Y(), 1e-9)
	require.NotEmpty(t, tree.Foliage)
	assert.Equal(t, components.Crown, tree.Foliage[len(tree.Foliage)-1].Side)

	found := levelOf(e).TreesIn(gamemath.Rect{L: 390, B: 100, W: 20, H: 20})
	assert.Equal(t, []donburi.Entity{entry.Entity()}, found)
}

func TestSpawnOpponentOnGround(t *testing.T) {
	e := newTestECS(t)

	entry, err := Spawn(e, StandingNinja, 250, math.NaN(), SpawnOptions{})
	require.NoError(t, err)
	assert.True(t, entry.HasComponent(components.AI))
	assert.True(t, entry.HasComponent(tags.Enemy))
	assert.Equal(t, gamemath.V(250, 60), components.Body.Get(entry).Pos)

	ai := components.AI.Get(entry)
	assert.Equal(t, donburi.Null, ai.Target)
	assert.Equal(t, cfg.StrategyNone, ai.Strategy)

	ch := components.Character.Get(entry)
	assert.Equal(t, cfg.Ninja, ch.Kind)
	assert.False(t, ch.IsClimbing())
	assert.Equal(t, cfg.Characters[cfg.Ninja].MaxHealth, components.Health.Get(entry).Current)
	assert.Equal(t, cfg.Standing, components.State.Get(entry).CurrentState)
}

func TestCharactersGetIncreasingSerials(t *testing.T) {
	e := newTestECS(t)

	a, err := CreateCharacter(e, cfg.Ninja, 100, 60)
	require.NoError(t, err)
	b, err := CreateCharacter(e, cfg.Samurai, 200, 60)
	require.NoError(t, err)
	assert.Less(t, components.Character.Get(a).Serial, components.Character.Get(b).Serial)
}

func TestCreateCharacterUnknownKind(t *testing.T) {
	e := newTestECS(t)

	_, err := CreateCharacter(e, "Ronin", 100, 60)
	var cerr *ConfigError
	assert.ErrorAs(t, err, &cerr)
}

func TestSamuraiArriveInSmoke(t *testing.T) {
	e := newTestECS(t)

	_, err := CreateCharacter(e, cfg.Samurai, 100, 60)
	require.NoError(t, err)
	n := 0
	tags.Smoke.Each(e.World, func(*donburi.Entry) { n++ })
	assert.Equal(t, cfg.Effects.PuffCount, n)
}

func TestPlayerCharacterSpendsALife(t *testing.T) {
	e := newTestECS(t)
	slot := CreatePlayerSlot(e, cfg.Ninja, 1)

	player, err := CreatePlayerCharacter(e, slot, 300)
	require.NoError(t, err)
	lives := components.Lives.Get(slot)
	assert.Zero(t, lives.Lives)
	assert.Equal(t, player.Entity(), lives.Character)
	assert.True(t, components.Character.Get(player).Player)
	assert.Equal(t, slot.Entity(), components.Player.Get(player).Slot)

	_, err = CreatePlayerCharacter(e, slot, 300)
	var cerr *ConfigError
	assert.ErrorAs(t, err, &cerr)
}

func TestCampfireSmokes(t *testing.T) {
	e := newTestECS(t)

	fire, err := Spawn(e, Campfire, 100, math.NaN(), SpawnOptions{})
	require.NoError(t, err)
	torii, err := Spawn(e, Torii, 300, math.NaN(), SpawnOptions{})
	require.NoError(t, err)
	assert.Equal(t, cfg.Effects.CampfireChance, components.Scenery.Get(fire).SmokeChance)
	assert.Zero(t, components.Scenery.Get(torii).SmokeChance)
}

func TestBodiesCarryTheirWeight(t *testing.T) {
	e := newTestECS(t)

	s := CreateShuriken(e, gamemath.V(0, 100), gamemath.V(1, 0), donburi.Null)
	b := components.Body.Get(s)
	assert.Equal(t, cfg.Projectile.Mass, b.Mass)
	assert.InDelta(t, cfg.Physics.Gravity.Y*cfg.Projectile.Mass, b.Force.Y(), 1e-12)
}

func TestEffectBodyNeverSubstitutesMass(t *testing.T) {
	e := newTestECS(t)
	mass := cfg.Projectile.Mass
	t.Cleanup(func() { cfg.Projectile.Mass = mass })

	cfg.Projectile.Mass = 0
	assert.Panics(t, func() {
		CreateShuriken(e, gamemath.V(0, 100), gamemath.V(1, 0), donburi.Null)
	})
}
