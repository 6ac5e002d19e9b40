package systems

import (
	"testing"

	"github.com/automoto/bamboo/components"
	cfg "github.com/automoto/bamboo/config"
	"github.com/automoto/bamboo/shared/gamemath"
	"github.com/automoto/bamboo/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestPlayerRespawnsUntilOutOfLives(t *testing.T) {
	e := newTestECS(t)
	components.CharacterDied.Subscribe(e.World, OnCharacterDied)
	slot, player := spawnPlayer(t, e, cfg.Ninja, 2, 100)
	lives := components.Lives.Get(slot)
	require.Equal(t, 1, lives.Lives)

	Hit(e, player, gamemath.V(100, 100), gamemath.V(0, 0), 1000)
	components.CharacterDied.ProcessEvents(e.World)
	UpdateRemovals(e)

	assert.Equal(t, donburi.Null, lives.Character)
	assert.Equal(t, cfg.Level.RespawnDelay, lives.RespawnTimer)
	assert.False(t, GameOver(e.World))

	for i := 0; i < cfg.Level.RespawnDelay-1; i++ {
		UpdateLives(e)
	}
	assert.Empty(t, PlayerCharacters(e.World))

	UpdateLives(e)
	players := PlayerCharacters(e.World)
	require.Len(t, players, 1)
	assert.Equal(t, players[0].Entity(), lives.Character)
	assert.Zero(t, lives.Lives)
	assert.InDelta(t, cfg.Level.PlayerSpawnX, components.Body.Get(players[0]).Pos.X(), 1e-9)

	Hit(e, players[0], gamemath.V(100, 100), gamemath.V(0, 0), 1000)
	components.CharacterDied.ProcessEvents(e.World)
	UpdateRemovals(e)

	assert.True(t, lives.GameOver)
	assert.True(t, GameOver(e.World))
}

func TestOpponentDeathLeavesSlotsAlone(t *testing.T) {
	e := newTestECS(t)
	components.CharacterDied.Subscribe(e.World, OnCharacterDied)
	slot, _ := spawnPlayer(t, e, cfg.Ninja, 2, 100)
	opponent := spawnOpponent(t, e, 500, testGround)

	Hit(e, opponent, gamemath.V(500, 100), gamemath.V(0, 0), 1000)
	components.CharacterDied.ProcessEvents(e.World)

	lives := components.Lives.Get(slot)
	assert.Zero(t, lives.RespawnTimer)
	assert.NotEqual(t, donburi.Null, lives.Character)
}

func TestReachingTheEndCompletesLevel(t *testing.T) {
	e := newTestECS(t)
	_, player := spawnPlayer(t, e, cfg.Ninja, 2, 100)
	level := levelOf(e.World)

	UpdateLives(e)
	assert.False(t, level.Completed)

	components.Body.Get(player).Pos = gamemath.V(level.Width+1, testGround)
	UpdateLives(e)
	assert.True(t, level.Completed)
}

func TestGameOverNeedsPlayers(t *testing.T) {
	e := newTestECS(t)
	assert.False(t, GameOver(e.World))
}

func TestCameraFollowsPlayer(t *testing.T) {
	e := newTestECS(t)
	factory.CreateCamera(e)
	_, player := spawnPlayer(t, e, cfg.Ninja, 2, 1500)

	for i := 0; i < 200; i++ {
		UpdateCamera(e)
	}
	x, y := CameraOffset(e.World, cfg.C.Width, cfg.C.Height)
	assert.InDelta(t, components.Body.Get(player).Pos.X()-float64(cfg.C.Width)/2, x, 1)
	assert.InDelta(t, 0, y, 1e-9)

	TriggerScreenShake(e.World, 5, 3)
	for i := 0; i < 3; i++ {
		UpdateCamera(e)
	}
	camera, _ := components.Camera.First(e.World)
	assert.False(t, camera.HasComponent(components.ScreenShake))
}
