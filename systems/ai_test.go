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
	"github.com/yohamta/donburi/ecs"
)

func spawnOpponent(t *testing.T, e *ecs.ECS, x, y float64) *donburi.Entry {
	t.Helper()
	entry, err := factory.CreateOpponent(e, cfg.Ninja, x, y)
	require.NoError(t, err)
	return entry
}

func TestAIIdlesWithoutTarget(t *testing.T) {
	e := newTestECS(t)
	opponent := spawnOpponent(t, e, 1000, testGround)
	spawnPlayer(t, e, cfg.Ninja, 3, 1000+cfg.AI.SleepDistance+50)

	for i := 0; i < 10; i++ {
		UpdateAI(e)
	}

	ai := components.AI.Get(opponent)
	assert.Equal(t, donburi.Null, ai.Target)
	assert.Equal(t, cfg.StrategyNone, ai.Strategy)
	assert.Nil(t, components.Character.Get(opponent).Attack)
	assert.Equal(t, components.Body.Get(opponent).Force, Weight(components.Body.Get(opponent)))
}

func TestAITargetsNearestPlayer(t *testing.T) {
	e := newTestECS(t)
	opponent := spawnOpponent(t, e, 1000, testGround)
	spawnPlayer(t, e, cfg.Ninja, 3, 1400)
	_, near := spawnPlayer(t, e, cfg.Ninja, 3, 800)

	UpdateAI(e)

	ai := components.AI.Get(opponent)
	assert.Equal(t, near.Entity(), ai.Target)
	assert.NotEqual(t, cfg.StrategyNone, ai.Strategy)
}

func TestAIDropsDeadTarget(t *testing.T) {
	e := newTestECS(t)
	opponent := spawnOpponent(t, e, 1000, testGround)
	_, player := spawnPlayer(t, e, cfg.Ninja, 3, 1200)

	UpdateAI(e)
	require.Equal(t, player.Entity(), components.AI.Get(opponent).Target)

	Kill(e.World, player)
	UpdateAI(e)
	ai := components.AI.Get(opponent)
	assert.Equal(t, donburi.Null, ai.Target)
	assert.Equal(t, cfg.StrategyNone, ai.Strategy)
}

func TestAIClimbTreeFallsBackToAwait(t *testing.T) {
	e := newTestECS(t)
	tree := spawnTree(t, e, 2000, 9)
	opponent := spawnOpponent(t, e, 1900, testGround)
	_, player := spawnPlayer(t, e, cfg.Ninja, 3, 2000)
	components.Body.Get(player).Pos = components.Body.Get(player).Pos.WithY(testGround + 300)
	Attach(e.World, tree, player, 0)

	ai := components.AI.Get(opponent)
	ai.Strategy = cfg.StrategyClimbTree
	ai.StrategyTime = 5

	UpdateAI(e)

	assert.Equal(t, player.Entity(), ai.Target)
	assert.Equal(t, cfg.StrategyAwait, ai.Strategy)
	assert.Equal(t, donburi.Null, ai.TargetTree)
	assert.False(t, components.Character.Get(opponent).IsClimbing())
}

func TestAIClimbTreeMountsFreeTree(t *testing.T) {
	e := newTestECS(t)
	occupied := spawnTree(t, e, 1000, 9)
	free := spawnTree(t, e, 1100, 9)
	opponent := spawnOpponent(t, e, 1105, testGround)
	_, player := spawnPlayer(t, e, cfg.Ninja, 3, 1000)
	components.Body.Get(player).Pos = components.Body.Get(player).Pos.WithY(testGround + 300)
	Attach(e.World, occupied, player, 0)

	ai := components.AI.Get(opponent)
	ai.Strategy = cfg.StrategyClimbTree
	ai.StrategyTime = 5

	UpdateAI(e)

	assert.Equal(t, free.Entity(), ai.TargetTree)
	assert.Equal(t, cfg.StrategyTreeFight, ai.Strategy)
	assert.Equal(t, free.Entity(), components.Character.Get(opponent).Climbing)
	assert.Len(t, climbers(free), 1)
}

func TestAIClimbTreeOnHighGround(t *testing.T) {
	const ground = 1700.0
	e := newTestECSOnGround(t, ground)
	occupied := spawnTreeOn(t, e, 1000, ground, 9)
	free := spawnTreeOn(t, e, 1100, ground, 9)
	opponent := spawnOpponent(t, e, 1105, ground)
	_, player := spawnPlayer(t, e, cfg.Ninja, 3, 1000)
	components.Body.Get(player).Pos = components.Body.Get(player).Pos.WithY(ground + 300)
	Attach(e.World, occupied, player, 0)

	ai := components.AI.Get(opponent)
	ai.Strategy = cfg.StrategyClimbTree
	ai.StrategyTime = 5

	UpdateAI(e)

	assert.Equal(t, free.Entity(), ai.TargetTree)
	assert.Equal(t, cfg.StrategyTreeFight, ai.Strategy)
}

func TestAIPickTree(t *testing.T) {
	const targetX = 1000.0
	tests := []struct {
		name     string
		selfX    float64
		trees    []float64
		occupied int // index of a tree someone else is on, or -1
		selfOn   int // index of the tree we are on, or -1
		want     int // index of the picked tree, or -1
	}{
		{"from the left skips trees past the target", 600, []float64{950, 1080}, -1, -1, 0},
		{"from the right skips trees past the target", 1400, []float64{950, 1080}, -1, -1, 1},
		{"close to the target takes the nearest", 1050, []float64{950, 1080}, -1, -1, 0},
		{"occupied tree is rejected", 1050, []float64{950, 1080}, 0, -1, 1},
		{"our own tree is not occupied", 950, []float64{950, 1080}, -1, 0, 0},
		{"every tree occupied", 1050, []float64{950}, 0, -1, -1},
		{"too far from the target", 1050, []float64{1400}, -1, -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			var trees []*donburi.Entry
			for _, x := range tt.trees {
				trees = append(trees, spawnTree(t, e, x, 9))
			}
			opponent := spawnOpponent(t, e, tt.selfX, testGround)
			_, player := spawnPlayer(t, e, cfg.Ninja, 3, targetX)
			if tt.occupied >= 0 {
				x := tt.trees[tt.occupied]
				other := spawnCharacter(t, e, cfg.Ninja, x, testGround+200)
				Attach(e.World, trees[tt.occupied], other, 0)
			}
			if tt.selfOn >= 0 {
				Attach(e.World, trees[tt.selfOn], opponent, 0)
			}

			b := &brain{ecs: e, w: e.World, self: opponent, ai: components.AI.Get(opponent), target: player}
			got, _ := b.pickTree(cfg.AI.TreePickMaxDistance)

			if tt.want < 0 {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, trees[tt.want].Entity(), got.Entity())
		})
	}
}

func TestAITreeFight(t *testing.T) {
	selfY := testGround + 3*cfg.Tree.PieceHeight
	tests := []struct {
		name       string
		targetX    float64
		dy         float64
		wantRate   float64
		wantClimb  int // sign of the change in climb height
		wantAttack bool
	}{
		{"well above climbs up", 1100, cfg.AI.TreeFightClimbUp + 70, cfg.Climb.UpRate, 1, false},
		{"just above holds and strikes", 1100, cfg.AI.TreeFightClimbUp - 10, 0, 0, true},
		{"just below holds and strikes", 1100, -cfg.AI.TreeFightClimbDown + 5, 0, 0, true},
		{"well below climbs down", 1100, -cfg.AI.TreeFightClimbDown - 40, -cfg.Climb.DownRate, -1, false},
		{"level but out of reach", 1000 + cfg.AI.TreeFightAttackRange + 50, 0, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			tree := spawnTree(t, e, 1000, 9)
			opponent := spawnOpponent(t, e, 1000, selfY)
			Attach(e.World, tree, opponent, 0)
			_, player := spawnPlayer(t, e, cfg.Ninja, 3, tt.targetX)
			components.Body.Get(player).Pos = gamemath.V(tt.targetX, selfY+tt.dy)

			ai := components.AI.Get(opponent)
			ai.Strategy = cfg.StrategyTreeFight
			ai.StrategyTime = 5
			before, ok := ClimbHeight(e.World, opponent)
			require.True(t, ok)

			UpdateAI(e)

			ch := components.Character.Get(opponent)
			assert.Equal(t, cfg.StrategyTreeFight, ai.Strategy)
			assert.Equal(t, tt.wantRate, ch.ClimbRate)
			after, ok := ClimbHeight(e.World, opponent)
			require.True(t, ok)
			switch tt.wantClimb {
			case 1:
				assert.Greater(t, after, before)
			case -1:
				assert.Less(t, after, before)
			default:
				assert.InDelta(t, before, after, 1e-9)
			}
			assert.Equal(t, tt.wantAttack, ch.Attack != nil)
		})
	}
}

func TestAIAwait(t *testing.T) {
	tests := []struct {
		name       string
		selfX      float64
		onTree     bool
		wantCrouch bool
	}{
		{"far away on the ground runs over", 1500, false, false},
		{"in range on the ground crouches", 1700, false, true},
		{"in range up a tree jumps down", 1800, true, false},
		{"far away up a tree jumps down", 1400, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			targetTree := spawnTree(t, e, 2000, 9)
			_, player := spawnPlayer(t, e, cfg.Ninja, 3, 2000)
			components.Body.Get(player).Pos = components.Body.Get(player).Pos.WithY(testGround + 300)
			Attach(e.World, targetTree, player, 0)

			var opponent *donburi.Entry
			if tt.onTree {
				own := spawnTree(t, e, tt.selfX, 9)
				opponent = spawnOpponent(t, e, tt.selfX, testGround+cfg.Tree.PieceHeight)
				Attach(e.World, own, opponent, 0)
			} else {
				opponent = spawnOpponent(t, e, tt.selfX, testGround)
			}

			ai := components.AI.Get(opponent)
			ai.Strategy = cfg.StrategyAwait
			ai.StrategyTime = 5

			UpdateAI(e)

			ch := components.Character.Get(opponent)
			assert.Equal(t, cfg.StrategyAwait, ai.Strategy)
			assert.False(t, ch.IsClimbing())
			assert.Equal(t, tt.wantCrouch, ch.Crouching)
			assert.Equal(t, cfg.DirRight, ch.Dir)
		})
	}
}

func TestAIAwaitRepicksWhenTargetComesDown(t *testing.T) {
	e := newTestECS(t)
	opponent := spawnOpponent(t, e, 1700, testGround)
	spawnPlayer(t, e, cfg.Ninja, 3, 2000)

	ai := components.AI.Get(opponent)
	ai.Strategy = cfg.StrategyAwait
	ai.StrategyTime = 5

	UpdateAI(e)

	assert.NotEqual(t, cfg.StrategyAwait, ai.Strategy)
	assert.Equal(t, 2, ai.StrategyTime)
}

func TestAITreeSnipe(t *testing.T) {
	t.Run("no tree re-rolls", func(t *testing.T) {
		e := newTestECS(t)
		opponent := spawnOpponent(t, e, 1000, testGround)
		spawnPlayer(t, e, cfg.Ninja, 3, 1200)

		ai := components.AI.Get(opponent)
		ai.Strategy = cfg.StrategyTreeSnipe
		ai.StrategyTime = 5

		UpdateAI(e)

		assert.Equal(t, donburi.Null, ai.TargetTree)
		assert.Equal(t, 2, ai.StrategyTime)
	})

	t.Run("heads for a tree on its side", func(t *testing.T) {
		e := newTestECS(t)
		tree := spawnTree(t, e, 500, 9)
		opponent := spawnOpponent(t, e, 1000, testGround)
		spawnPlayer(t, e, cfg.Ninja, 3, 1200)

		ai := components.AI.Get(opponent)
		ai.Strategy = cfg.StrategyTreeSnipe
		ai.StrategyTime = 5

		UpdateAI(e)

		assert.Equal(t, tree.Entity(), ai.TargetTree)
		assert.Equal(t, cfg.StrategyTreeSnipe, ai.Strategy)
		assert.Equal(t, cfg.DirLeft, components.Character.Get(opponent).Dir)
	})
}

func TestAIApproachKeepsDistance(t *testing.T) {
	e := newTestECS(t)
	opponent := spawnOpponent(t, e, 1000, testGround)
	_, player := spawnPlayer(t, e, cfg.Ninja, 3, 1100)

	ai := components.AI.Get(opponent)
	ai.Strategy = cfg.StrategyApproach
	ai.StrategyTime = 5

	UpdateAI(e)
	assert.Equal(t, cfg.DirLeft, components.Character.Get(opponent).Dir)
	assert.Nil(t, components.Character.Get(opponent).Attack)

	components.Body.Get(player).Pos = components.Body.Get(player).Pos.WithX(1200)
	UpdateAI(e)
	assert.Equal(t, cfg.DirRight, components.Character.Get(opponent).Dir)
	assert.NotNil(t, components.Character.Get(opponent).Attack)
	assert.Equal(t, cfg.AI.AttackRate, ai.AttackTimer)
}

func TestAITreeSnipingThrows(t *testing.T) {
	e := newTestECS(t)
	tree := spawnTree(t, e, 1000, 9)
	opponent := spawnOpponent(t, e, 1000, testGround+cfg.AI.SnipeAltitude+50)
	spawnPlayer(t, e, cfg.Ninja, 3, 1300)
	Attach(e.World, tree, opponent, 0)

	ai := components.AI.Get(opponent)
	ai.Strategy = cfg.StrategyTreeSniping
	ai.StrategyTime = 5

	UpdateAI(e)

	assert.Equal(t, 1, count(e.World, components.Projectile))
	assert.Equal(t, cfg.StrategyTreeFight, ai.Strategy)
}
