package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/bamboo/components"
	cfg "github.com/automoto/bamboo/config"
	"github.com/automoto/bamboo/shared/terrain"
	"github.com/automoto/bamboo/systems/factory"
	"github.com/automoto/bamboo/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testGround = 60.0

// newTestECS returns a world holding an empty level on flat ground.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	return newTestECSOnGround(t, testGround)
}

func newTestECSOnGround(t *testing.T, ground float64) *ecs.ECS {
	t.Helper()
	SetRandSource(rand.NewSource(1))
	e := ecs.NewECS(donburi.NewWorld())
	height := cfg.Level.Height + ground
	factory.CreateLevel(e, cfg.Level.Width, height, terrain.Flat{Height: ground})
	factory.CreateSpace(e, cfg.Level.Width, height, cfg.Level.CellSize)
	return e
}

func spawnCharacter(t *testing.T, e *ecs.ECS, kind string, x, y float64) *donburi.Entry {
	t.Helper()
	entry, err := factory.CreateCharacter(e, kind, x, y)
	require.NoError(t, err)
	return entry
}

func spawnTree(t *testing.T, e *ecs.ECS, x float64, height int) *donburi.Entry {
	t.Helper()
	return spawnTreeOn(t, e, x, testGround, height)
}

func spawnTreeOn(t *testing.T, e *ecs.ECS, x, base float64, height int) *donburi.Entry {
	t.Helper()
	tree, err := factory.CreateTree(e, x, base, height, 0)
	require.NoError(t, err)
	return tree
}

func spawnPlayer(t *testing.T, e *ecs.ECS, kind string, lives int, x float64) (*donburi.Entry, *donburi.Entry) {
	t.Helper()
	slot := factory.CreatePlayerSlot(e, kind, lives)
	character, err := factory.CreatePlayerCharacter(e, slot, x)
	require.NoError(t, err)
	return slot, character
}

func count[T any](w donburi.World, c *donburi.ComponentType[T]) int {
	n := 0
	c.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func climbers(tree *donburi.Entry) []components.Climber {
	return components.Climbable.Get(tree).Climbers
}

func countDebris(e *ecs.ECS) int {
	n := 0
	tags.Debris.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}
