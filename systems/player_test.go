package systems

import (
	"testing"

	"github.com/automoto/bamboo/components"
	cfg "github.com/automoto/bamboo/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerRuns(t *testing.T) {
	e := newTestECS(t)
	_, player := spawnPlayer(t, e, cfg.Ninja, 3, 100)
	control := components.Control.Get(player)

	for i := 0; i < 3; i++ {
		control.Press(cfg.ActionRight)
		UpdatePlayers(e)
		UpdateCharacters(e)
	}
	assert.Greater(t, components.Body.Get(player).Vel.X(), 0.0)
	assert.Equal(t, cfg.DirRight, components.Character.Get(player).Dir)
	assert.Equal(t, [cfg.ActionCount]bool{}, control.Commands)

	control.Press(cfg.ActionLeft)
	UpdatePlayers(e)
	assert.Equal(t, cfg.DirLeft, components.Character.Get(player).Dir)
}

func TestPlayerJumpsAndCrouches(t *testing.T) {
	e := newTestECS(t)
	_, player := spawnPlayer(t, e, cfg.Ninja, 3, 100)
	control := components.Control.Get(player)

	control.Press(cfg.ActionDown)
	UpdatePlayers(e)
	assert.True(t, components.Character.Get(player).Crouching)

	UpdatePlayers(e)
	assert.False(t, components.Character.Get(player).Crouching)

	control.Press(cfg.ActionJump)
	UpdatePlayers(e)
	assert.InDelta(t, cfg.Characters[cfg.Ninja].JumpImpulse.Y, components.Body.Get(player).Vel.Y(), 1e-9)
}

func TestPlayerGrabsAndClimbsTree(t *testing.T) {
	e := newTestECS(t)
	tree := spawnTree(t, e, 500, 9)
	_, player := spawnPlayer(t, e, cfg.Ninja, 3, 510)
	control := components.Control.Get(player)

	control.Press(cfg.ActionUp)
	UpdatePlayers(e)
	ch := components.Character.Get(player)
	require.True(t, ch.IsClimbing())
	assert.Equal(t, tree.Entity(), ch.Climbing)

	control.Press(cfg.ActionUp)
	UpdatePlayers(e)
	h, ok := ClimbHeight(e.World, player)
	require.True(t, ok)
	assert.InDelta(t, cfg.Climb.UpRate/cfg.Tree.PieceHeight, h, 1e-9)
	assert.Equal(t, cfg.Climb.UpRate, ch.ClimbRate)

	UpdatePlayers(e)
	assert.Zero(t, ch.ClimbRate)

	control.Press(cfg.ActionDown)
	UpdatePlayers(e)
	assert.False(t, ch.IsClimbing())
}

func TestPlayerUpWithoutTreeDoesNothing(t *testing.T) {
	e := newTestECS(t)
	spawnTree(t, e, 500, 9)
	_, player := spawnPlayer(t, e, cfg.Ninja, 3, 900)

	components.Control.Get(player).Press(cfg.ActionUp)
	UpdatePlayers(e)
	assert.False(t, components.Character.Get(player).IsClimbing())
}

func TestPlayerAttackLatch(t *testing.T) {
	e := newTestECS(t)
	_, player := spawnPlayer(t, e, cfg.Ninja, 3, 100)

	components.Control.Get(player).Press(cfg.ActionAttack)
	UpdatePlayers(e)
	assert.NotNil(t, components.Character.Get(player).Attack)
}

func TestLatchControls(t *testing.T) {
	e := newTestECS(t)
	_, player := spawnPlayer(t, e, cfg.Ninja, 3, 100)

	input := &components.InputData{}
	input.Current[cfg.ActionRight] = true
	input.Current[cfg.ActionJump] = true
	input.Previous[cfg.ActionJump] = true
	input.Current[cfg.ActionAttack] = true
	LatchControls(e, input)

	commands := components.Control.Get(player).Commands
	assert.True(t, commands[cfg.ActionRight])
	assert.False(t, commands[cfg.ActionJump])
	assert.True(t, commands[cfg.ActionAttack])
}
