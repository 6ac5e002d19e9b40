package systems

import (
	"math"

	"github.com/automoto/bamboo/components"
	cfg "github.com/automoto/bamboo/config"
	"github.com/automoto/bamboo/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAI runs the opponents' controllers. Each one fights the nearest
// player in range using whichever strategy it last rolled.
func UpdateAI(ecs *ecs.ECS) {
	for _, e := range Characters(ecs.World) {
		if !e.HasComponent(components.AI) {
			continue
		}
		updateSingleAI(ecs, e)
	}
}

type brain struct {
	ecs    *ecs.ECS
	w      donburi.World
	self   *donburi.Entry
	ai     *components.AIData
	target *donburi.Entry
}

func (b *brain) ch() *components.CharacterData { return components.Character.Get(b.self) }
func (b *brain) pos() gamemath.Vec2             { return components.Body.Get(b.self).Pos }

func updateSingleAI(ecs *ecs.ECS, e *donburi.Entry) {
	b := &brain{ecs: ecs, w: ecs.World, self: e, ai: components.AI.Get(e)}

	if b.ai.AttackTimer > 0 {
		b.ai.AttackTimer--
	}
	if !b.reconsiderTarget() {
		return
	}

	if b.ai.Strategy == cfg.StrategyNone || b.ai.StrategyTime%cfg.AI.RerollInterval == 0 {
		b.pickStrategy()
	}

	switch b.ai.Strategy {
	case cfg.StrategyApproach:
		b.approach()
	case cfg.StrategyClimbTree:
		b.climbTree()
	case cfg.StrategyTreeFight:
		b.treeFight()
	case cfg.StrategyAwait:
		b.await()
	case cfg.StrategyTreeSnipe:
		b.treeSnipe()
	case cfg.StrategyTreeSniping:
		b.treeSniping()
	case cfg.StrategyNone:
	}
	b.ai.StrategyTime++
}

// reconsiderTarget drops a target that died or wandered off and looks for a
// new one. It reports whether there is a target to fight.
func (b *brain) reconsiderTarget() bool {
	if IsAlive(b.w, b.ai.Target) {
		target := b.w.Entry(b.ai.Target)
		if b.rangeTo(components.Body.Get(target).Pos) <= cfg.AI.SleepDistance {
			b.target = target
			return true
		}
	}
	if b.ai.Target != donburi.Null {
		b.ai.Target = donburi.Null
		b.ai.Strategy = cfg.StrategyNone
	}

	b.target = b.chooseTarget()
	if b.target == nil {
		return false
	}
	b.ai.Target = b.target.Entity()
	return true
}

// chooseTarget returns the nearest player character within range. Ties go
// to the earliest spawned.
func (b *brain) chooseTarget() *donburi.Entry {
	var nearest *donburi.Entry
	best := cfg.AI.SleepDistance
	for _, p := range PlayerCharacters(b.w) {
		if d := b.rangeTo(components.Body.Get(p).Pos); d < best {
			nearest, best = p, d
		}
	}
	return nearest
}

func (b *brain) targetPos() gamemath.Vec2 {
	return components.Body.Get(b.target).Pos
}

func (b *brain) rangeTo(p gamemath.Vec2) float64 {
	return p.Sub(b.pos()).Mag()
}

func (b *brain) directionTo(p gamemath.Vec2) cfg.Direction {
	if b.pos().X() < p.X() {
		return cfg.DirRight
	}
	return cfg.DirLeft
}

func (b *brain) runTowards(p gamemath.Vec2) {
	if b.directionTo(p) == cfg.DirRight {
		RunRight(b.w, b.self)
	} else {
		RunLeft(b.w, b.self)
	}
}

func (b *brain) runFrom(p gamemath.Vec2) {
	if b.directionTo(p) == cfg.DirLeft {
		RunRight(b.w, b.self)
	} else {
		RunLeft(b.w, b.self)
	}
}

// targetTree returns the tree the target is on, if any.
func (b *brain) targetTree() *donburi.Entry {
	c := components.Character.Get(b.target).Climbing
	if !IsAlive(b.w, c) {
		return nil
	}
	return b.w.Entry(c)
}

func (b *brain) isTargetClimbing() bool {
	h, ok := ClimbHeight(b.w, b.target)
	return ok && h > cfg.AI.TargetClimbingHeight
}

func (b *brain) setStrategy(s cfg.StrategyID) {
	b.ai.Strategy = s
	b.ai.StrategyTime = 1
}

func (b *brain) pickStrategy() {
	switch {
	case rng.Intn(cfg.AI.SnipeChance) == 0:
		b.setStrategy(cfg.StrategyTreeSnipe)
	case components.Character.Get(b.target).IsClimbing():
		b.setStrategy(cfg.StrategyClimbTree)
	default:
		b.setStrategy(cfg.StrategyApproach)
	}
}

// pickTree finds the free tree nearest the target horizontally, preferring
// trees on our side of it. Trees further than maxDist are ignored.
func (b *brain) pickTree(maxDist float64) (*donburi.Entry, float64) {
	sx, tx := b.pos().X(), b.targetPos().X()

	var candidates []*donburi.Entry
	if math.IsInf(maxDist, 1) {
		candidates = Climbables(b.w)
	} else if level := levelOf(b.w); level != nil {
		// Any altitude: imported levels can be far taller than the default.
		window := gamemath.Rect{L: tx - maxDist, B: -math.MaxFloat64 / 4, W: 2 * maxDist, H: math.MaxFloat64 / 2}
		for _, e := range level.TreesIn(window) {
			if IsAlive(b.w, e) {
				candidates = append(candidates, b.w.Entry(e))
			}
		}
		sortBySerial(candidates)
	}

	var nearest *donburi.Entry
	best := maxDist
	for _, e := range candidates {
		tree := components.Climbable.Get(e)
		ax := tree.Base.X()
		switch {
		case sx < tx-cfg.AI.TreeSideBias && ax > tx:
			continue
		case sx > tx+cfg.AI.TreeSideBias && ax < tx:
			continue
		}
		if tree.Occupied(b.self.Entity()) {
			continue
		}
		if d := math.Abs(tx - ax); d < best {
			nearest, best = e, d
		}
	}
	return nearest, best
}

func (b *brain) currentTargetTree() *donburi.Entry {
	if !IsAlive(b.w, b.ai.TargetTree) {
		b.ai.TargetTree = donburi.Null
		return nil
	}
	return b.w.Entry(b.ai.TargetTree)
}

// mountTree runs to the chosen tree and climbs it, then switches to next.
func (b *brain) mountTree(tree *donburi.Entry, next cfg.StrategyID) {
	ch := b.ch()
	treePos := components.Climbable.Get(tree).Base

	switch {
	case ch.IsClimbing() && ch.Climbing != tree.Entity():
		b.runTowards(treePos)
		Jump(b.w, b.self)
	case math.Abs(b.pos().X()-treePos.X()) < cfg.AI.MountDistance:
		Climb(b.w, b.self, tree, 1)
		b.setStrategy(next)
	default:
		b.runTowards(treePos)
	}
}

// climbTree heads for a tree near the target to fight it up there.
func (b *brain) climbTree() {
	tree := b.currentTargetTree()
	if tree == nil || b.ai.StrategyTime%cfg.AI.TreePickInterval == 0 {
		tree, _ = b.pickTree(cfg.AI.TreePickMaxDistance)
		if tree == nil {
			if b.ch().IsClimbing() {
				Jump(b.w, b.self)
			}
			b.ai.TargetTree = donburi.Null
			b.setStrategy(cfg.StrategyAwait)
			return
		}
		b.ai.TargetTree = tree.Entity()
	}
	b.mountTree(tree, cfg.StrategyTreeFight)
}

// treeFight climbs level with the target and strikes when close.
func (b *brain) treeFight() {
	if !b.ch().IsClimbing() {
		b.pickStrategy()
		return
	}

	dy := b.targetPos().Y() - b.pos().Y()
	switch {
	case dy > cfg.AI.TreeFightClimbUp:
		ClimbUp(b.w, b.self)
	case dy < -cfg.AI.TreeFightClimbDown:
		ClimbDown(b.w, b.self)
		if !b.ch().IsClimbing() {
			b.setStrategy(cfg.StrategyApproach)
		}
	default:
		b.ch().Looking = b.directionTo(b.targetPos())
		if b.rangeTo(b.targetPos()) < cfg.AI.TreeFightAttackRange {
			Attack(b.w, b.self)
		}
		Stop(b.w, b.self)
	}
}

// approach fights on the ground at a comfortable distance.
func (b *brain) approach() {
	if b.isTargetClimbing() && b.ai.StrategyTime%cfg.AI.ApproachRecheck == 0 {
		b.pickStrategy()
		return
	}

	r := b.rangeTo(b.targetPos())
	switch {
	case r > cfg.AI.ApproachFar:
		b.runTowards(b.targetPos())
	case r < cfg.AI.ApproachNear:
		b.runFrom(b.targetPos())
	default:
		b.ch().Dir = b.directionTo(b.targetPos())
		if b.ai.AttackTimer == 0 {
			Attack(b.w, b.self)
			b.ai.AttackTimer = cfg.AI.AttackRate
		}
		Stop(b.w, b.self)
	}
	if b.ch().IsClimbing() {
		Jump(b.w, b.self)
	}
}

// await waits near the target's tree for it to come down.
func (b *brain) await() {
	tree := b.targetTree()
	if tree == nil || !b.isTargetClimbing() {
		b.pickStrategy()
		return
	}
	treePos := components.Climbable.Get(tree).Base

	if b.rangeTo(treePos) > cfg.AI.AwaitRange {
		b.runTowards(treePos)
		if b.ch().IsClimbing() {
			Jump(b.w, b.self)
		}
		return
	}

	b.ch().Dir = b.directionTo(treePos)
	switch {
	case IsOnGround(components.Body.Get(b.self), groundOf(b.w)):
		Crouch(b.w, b.self)
	case b.ch().IsClimbing():
		Jump(b.w, b.self)
	}
}

// treeSnipe heads for any free tree to throw from.
func (b *brain) treeSnipe() {
	tree := b.currentTargetTree()
	if tree == nil || b.ai.StrategyTime%cfg.AI.TreePickInterval == 0 {
		tree, _ = b.pickTree(math.Inf(1))
		if tree == nil {
			b.ai.TargetTree = donburi.Null
			b.pickStrategy()
			return
		}
		b.ai.TargetTree = tree.Entity()
	}
	b.mountTree(tree, cfg.StrategyTreeSniping)
}

// treeSniping climbs high enough, throws one shuriken and then fights.
func (b *brain) treeSniping() {
	if !b.ch().IsClimbing() {
		b.pickStrategy()
		return
	}

	body := components.Body.Get(b.self)
	alt := body.Pos.Y() - GroundLevel(body, groundOf(b.w))
	switch {
	case alt < cfg.AI.SnipeAltitude:
		ClimbUp(b.w, b.self)
	case b.ch().CanAttack():
		ThrowProjectile(b.ecs, b.self, b.targetPos().Add(gamemath.V(0, cfg.AI.SnipeAimHeight)))
		b.setStrategy(cfg.StrategyTreeFight)
	}
}
